package validation_test

import (
	"testing"

	"go-jobboard-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestCustomValidators(t *testing.T) {
	v := validator.New()
	validation.RegisterValidators(v)

	t.Run("Phone", func(t *testing.T) {
		assert.NoError(t, v.Var("+6281234567890", "valid_phone"))
		assert.NoError(t, v.Var("08123456789", "valid_phone"))
		assert.NoError(t, v.Var("", "valid_phone")) // optional
		assert.Error(t, v.Var("0812-3456", "valid_phone"))
		assert.Error(t, v.Var("12345", "valid_phone"))
	})

	t.Run("Salary", func(t *testing.T) {
		assert.NoError(t, v.Var("50000", "salary"))
		assert.NoError(t, v.Var("50000.50", "salary"))
		assert.Error(t, v.Var("50,000", "salary"))
		assert.Error(t, v.Var("abc", "salary"))
		assert.Error(t, v.Var("-100", "salary"))
	})
}
