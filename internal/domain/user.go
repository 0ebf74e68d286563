package domain

import (
	"context"
	"time"
)

// Role constants. Admins gain cross-user visibility in profile search and
// may delete any job posting; everything else is owner-scoped.
const (
	RoleUser  = "User"
	RoleAdmin = "Admin"
)

// Gender choices carried over from the registration form
const (
	GenderMale        = "Male"
	GenderFemale      = "Female"
	GenderOthers      = "Others"
	GenderNotDisclose = "Prefer not to Say"
)

type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Gender       string    `json:"gender"`
	Mobile       string    `json:"mobile"`
	Location     string    `json:"location"`
	UserTitle    string    `json:"user_title"`
	Bio          string    `json:"bio"`
	Skills       []string  `json:"skills"`
	Linkedin     string    `json:"linkedin"`
	Github       string    `json:"github"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ProfileUpdate carries the owner-editable profile fields. Username, email
// and role are immutable through the profile path; nil pointers mean
// "leave unchanged" so a partial update never zeroes a field.
type ProfileUpdate struct {
	FirstName *string   `json:"first_name"`
	LastName  *string   `json:"last_name"`
	Gender    *string   `json:"gender"`
	Mobile    *string   `json:"mobile"`
	Location  *string   `json:"location"`
	UserTitle *string   `json:"user_title"`
	Bio       *string   `json:"bio"`
	Skills    *[]string `json:"skills"`
	Linkedin  *string   `json:"linkedin"`
	Github    *string   `json:"github"`
}

// ProfileSearchFilter restricts what a profile search may return.
// ExcludeAdmins and ExcludeUserID implement the visibility rules for
// non-admin callers at the query level.
type ProfileSearchFilter struct {
	Query         string
	ExcludeAdmins bool
	ExcludeUserID int64
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByUsernameAndEmail(ctx context.Context, username, email string) (*User, error)
	UpdateProfile(ctx context.Context, user *User) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	Search(ctx context.Context, filter ProfileSearchFilter) ([]User, error)
}

type AuthUsecase interface {
	Register(ctx context.Context, user *User, password string) (*User, error)
	Login(ctx context.Context, username, password string) (string, *User, error)
	GetProfile(ctx context.Context, callerID int64) (*User, error)
	UpdateProfile(ctx context.Context, callerID int64, update *ProfileUpdate) (*User, error)
	ForgotPassword(ctx context.Context, username, email string) (string, error)
	ResetPassword(ctx context.Context, resetToken, newPassword string) error
	SearchProfiles(ctx context.Context, callerID int64, callerRole, query string) ([]User, error)
	GetCurrentUser(ctx context.Context, id int64) (*User, error)
}
