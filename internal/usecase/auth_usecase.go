package usecase

import (
	"context"
	"errors"
	"strings"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/token"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

const maxProfileFieldLen = 500

type authUsecase struct {
	userRepo domain.UserRepository
	tokens   *token.Manager
	validate *validator.Validate
}

// NewAuthUsecase creates the identity and access usecase
func NewAuthUsecase(userRepo domain.UserRepository, tokens *token.Manager, validate *validator.Validate) domain.AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		tokens:   tokens,
		validate: validate,
	}
}

// Register creates a new account. Uniqueness of username and email is
// enforced by the storage layer; the caller-supplied role is ignored and
// every registration starts as a regular user.
func (u *authUsecase) Register(ctx context.Context, user *domain.User, password string) (*domain.User, error) {
	user.Username = strings.TrimSpace(user.Username)
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))

	if user.Username == "" {
		return nil, apperror.BadRequest("Username is required")
	}
	if user.Email == "" {
		return nil, apperror.BadRequest("Email is required")
	}
	if password == "" {
		return nil, apperror.BadRequest("Password is required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	user.PasswordHash = string(hash)
	user.Role = domain.RoleUser

	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login authenticates by username and password and issues an access token.
// The same error is returned for an unknown username and a wrong password;
// storage failures are not disguised as bad credentials.
func (u *authUsecase) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	user, err := u.userRepo.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", nil, apperror.Unauthorized("Invalid username or password")
		}
		return "", nil, apperror.Internal(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, apperror.Unauthorized("Invalid username or password")
	}

	accessToken, err := u.tokens.IssueAccess(user.ID, user.Email, user.Role)
	if err != nil {
		return "", nil, apperror.Internal(err)
	}
	return accessToken, user, nil
}

func (u *authUsecase) GetProfile(ctx context.Context, callerID int64) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err)
	}
	return user, nil
}

// GetCurrentUser loads fresh account data for the auth middleware. Role is
// always read from the database, never trusted from the token.
func (u *authUsecase) GetCurrentUser(ctx context.Context, id int64) (*domain.User, error) {
	return u.userRepo.GetByID(ctx, id)
}

// UpdateProfile applies the owner-editable fields. Username, email, and role
// never change through this path regardless of input.
func (u *authUsecase) UpdateProfile(ctx context.Context, callerID int64, update *domain.ProfileUpdate) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err)
	}

	apply := func(dst *string, src *string) error {
		if src == nil {
			return nil
		}
		if err := u.validate.Var(*src, "max=500"); err != nil {
			return apperror.BadRequest("Profile fields must be at most 500 characters")
		}
		*dst = *src
		return nil
	}

	fields := []struct {
		dst *string
		src *string
	}{
		{&user.FirstName, update.FirstName},
		{&user.LastName, update.LastName},
		{&user.Gender, update.Gender},
		{&user.Mobile, update.Mobile},
		{&user.Location, update.Location},
		{&user.UserTitle, update.UserTitle},
		{&user.Bio, update.Bio},
		{&user.Linkedin, update.Linkedin},
		{&user.Github, update.Github},
	}
	for _, f := range fields {
		if err := apply(f.dst, f.src); err != nil {
			return nil, err
		}
	}

	if update.Skills != nil {
		for _, s := range *update.Skills {
			if len(s) > maxProfileFieldLen {
				return nil, apperror.BadRequest("Profile fields must be at most 500 characters")
			}
		}
		user.Skills = *update.Skills
	}

	if err := u.userRepo.UpdateProfile(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ForgotPassword starts the reset flow. The (username, email) pair must
// resolve to exactly one account; on success a short-lived single-purpose
// reset token is issued, and only that token can complete the reset.
func (u *authUsecase) ForgotPassword(ctx context.Context, username, email string) (string, error) {
	user, err := u.userRepo.GetByUsernameAndEmail(ctx, strings.TrimSpace(username), strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", apperror.BadRequest("Username and email do not match")
		}
		return "", apperror.Internal(err)
	}

	resetToken, err := u.tokens.IssueReset(user.ID, user.Email)
	if err != nil {
		return "", apperror.Internal(err)
	}
	return resetToken, nil
}

// ResetPassword replaces the credential after verifying the reset token.
func (u *authUsecase) ResetPassword(ctx context.Context, resetToken, newPassword string) error {
	claims, err := u.tokens.Verify(resetToken, token.PurposePasswordReset)
	if err != nil {
		return apperror.BadRequest("Invalid or expired reset token")
	}
	if newPassword == "" {
		return apperror.BadRequest("Password is required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return apperror.Internal(err)
	}

	if err := u.userRepo.UpdatePassword(ctx, claims.UserID, string(hash)); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

// SearchProfiles runs a case-insensitive substring search on username and
// email. Non-admin callers never see admin profiles or their own profile.
// An empty query and an empty result both fail with NotFound.
func (u *authUsecase) SearchProfiles(ctx context.Context, callerID int64, callerRole, query string) ([]domain.User, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperror.NotFound("No profiles matched your search")
	}

	filter := domain.ProfileSearchFilter{Query: query}
	if callerRole != domain.RoleAdmin {
		filter.ExcludeAdmins = true
		filter.ExcludeUserID = callerID
	}

	users, err := u.userRepo.Search(ctx, filter)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if len(users) == 0 {
		return nil, apperror.NotFound("No profiles matched your search")
	}
	return users, nil
}
