package token

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token purposes. Access tokens authenticate API requests; reset tokens are
// single-purpose credentials for the password-reset flow and are never
// accepted by the auth middleware.
const (
	PurposeAccess        = "access"
	PurposePasswordReset = "password_reset"
)

var (
	ErrInvalidToken = errors.New("token: invalid or expired token")
	ErrWrongPurpose = errors.New("token: token not valid for this purpose")
)

// Claims is the payload carried by both token kinds.
type Claims struct {
	UserID  int64
	Email   string
	Role    string
	Purpose string
}

// Manager signs and verifies HS256 JWTs.
type Manager struct {
	secret    []byte
	accessTTL time.Duration
	resetTTL  time.Duration
}

func NewManager(secret string, accessTTL, resetTTL time.Duration) *Manager {
	return &Manager{
		secret:    []byte(secret),
		accessTTL: accessTTL,
		resetTTL:  resetTTL,
	}
}

// IssueAccess creates an access token for an authenticated user.
func (m *Manager) IssueAccess(userID int64, email, role string) (string, error) {
	return m.issue(userID, email, role, PurposeAccess, m.accessTTL)
}

// IssueReset creates a short-lived password-reset token. The token is the
// possession proof for the reset flow: the credential is only replaced when
// a valid reset token is presented.
func (m *Manager) IssueReset(userID int64, email string) (string, error) {
	return m.issue(userID, email, "", PurposePasswordReset, m.resetTTL)
}

func (m *Manager) issue(userID int64, email, role, purpose string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":     strconv.FormatInt(userID, 10),
		"email":   email,
		"purpose": purpose,
		"iat":     now.Unix(),
		"exp":     now.Add(ttl).Unix(),
	}
	if role != "" {
		claims["role"] = role
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(m.secret)
}

// Verify parses a token and checks that it was issued for the given purpose.
func (m *Manager) Verify(tokenString, purpose string) (*Claims, error) {
	parsed, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	gotPurpose, _ := mapClaims["purpose"].(string)
	if gotPurpose != purpose {
		return nil, ErrWrongPurpose
	}

	sub, _ := mapClaims["sub"].(string)
	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return nil, ErrInvalidToken
	}

	email, _ := mapClaims["email"].(string)
	role, _ := mapClaims["role"].(string)

	return &Claims{
		UserID:  userID,
		Email:   email,
		Role:    role,
		Purpose: gotPurpose,
	}, nil
}
