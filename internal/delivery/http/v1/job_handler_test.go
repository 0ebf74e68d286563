package v1

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSalaryAmountCoercion(t *testing.T) {
	var req JobRequest

	t.Run("Accepts numbers", func(t *testing.T) {
		err := json.Unmarshal([]byte(`{"min_salary": 50000, "max_salary": 75000.5}`), &req)
		assert.NoError(t, err)
		assert.Equal(t, SalaryAmount("50000"), req.MinSalary)
		assert.Equal(t, SalaryAmount("75000.5"), req.MaxSalary)
	})

	t.Run("Accepts numeric strings", func(t *testing.T) {
		err := json.Unmarshal([]byte(`{"min_salary": " 50000 ", "max_salary": "75000"}`), &req)
		assert.NoError(t, err)
		assert.Equal(t, SalaryAmount("50000"), req.MinSalary)
		assert.Equal(t, SalaryAmount("75000"), req.MaxSalary)
	})

	t.Run("Rejects non-numeric JSON values", func(t *testing.T) {
		err := json.Unmarshal([]byte(`{"min_salary": true}`), &req)
		assert.Error(t, err)
	})
}
