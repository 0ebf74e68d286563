package token_test

import (
	"testing"
	"time"

	"go-jobboard-backend/pkg/token"

	"github.com/stretchr/testify/assert"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	m := token.NewManager("secret", time.Hour, 15*time.Minute)

	signed, err := m.IssueAccess(42, "a@b.com", "User")
	assert.NoError(t, err)

	claims, err := m.Verify(signed, token.PurposeAccess)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "a@b.com", claims.Email)
	assert.Equal(t, "User", claims.Role)
	assert.Equal(t, token.PurposeAccess, claims.Purpose)
}

func TestPurposeSeparation(t *testing.T) {
	m := token.NewManager("secret", time.Hour, 15*time.Minute)

	access, _ := m.IssueAccess(42, "a@b.com", "User")
	reset, _ := m.IssueReset(42, "a@b.com")

	t.Run("Reset token is not an access token", func(t *testing.T) {
		_, err := m.Verify(reset, token.PurposeAccess)
		assert.ErrorIs(t, err, token.ErrWrongPurpose)
	})

	t.Run("Access token is not a reset token", func(t *testing.T) {
		_, err := m.Verify(access, token.PurposePasswordReset)
		assert.ErrorIs(t, err, token.ErrWrongPurpose)
	})
}

func TestVerifyRejectsBadTokens(t *testing.T) {
	m := token.NewManager("secret", time.Hour, 15*time.Minute)

	t.Run("Garbage input", func(t *testing.T) {
		_, err := m.Verify("not.a.token", token.PurposeAccess)
		assert.ErrorIs(t, err, token.ErrInvalidToken)
	})

	t.Run("Wrong signing key", func(t *testing.T) {
		other := token.NewManager("other-secret", time.Hour, 15*time.Minute)
		signed, _ := other.IssueAccess(42, "a@b.com", "User")

		_, err := m.Verify(signed, token.PurposeAccess)
		assert.ErrorIs(t, err, token.ErrInvalidToken)
	})

	t.Run("Expired token", func(t *testing.T) {
		expired := token.NewManager("secret", -time.Minute, -time.Minute)
		signed, _ := expired.IssueAccess(42, "a@b.com", "User")

		_, err := m.Verify(signed, token.PurposeAccess)
		assert.ErrorIs(t, err, token.ErrInvalidToken)
	})
}
