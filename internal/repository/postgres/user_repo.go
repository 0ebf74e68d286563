package postgres

import (
	"context"
	"errors"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

// PostgreSQL error codes
const (
	pgUniqueViolation = "23505"
)

type userRepo struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) domain.UserRepository {
	return &userRepo{db: db}
}

const userColumns = `id, username, email, password_hash, first_name, last_name, gender, mobile, location, user_title, bio, skills, linkedin, github, role, created_at, updated_at`

func scanUser(row interface{ Scan(...any) error }, u *domain.User) error {
	return row.Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName,
		&u.Gender, &u.Mobile, &u.Location, &u.UserTitle, &u.Bio, pq.Array(&u.Skills),
		&u.Linkedin, &u.Github, &u.Role, &u.CreatedAt, &u.UpdatedAt,
	)
}

// Create inserts a new account. Email and username uniqueness is enforced by
// the database so concurrent duplicate registrations cannot slip past a
// check-then-insert race; the unique violation surfaces as a validation error.
func (r *userRepo) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (username, email, password_hash, first_name, last_name, gender, mobile, location, user_title, bio, skills, linkedin, github, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING id`

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	if user.Role == "" {
		user.Role = domain.RoleUser
	}

	err := r.db.QueryRow(ctx, query,
		user.Username, user.Email, user.PasswordHash, user.FirstName, user.LastName,
		user.Gender, user.Mobile, user.Location, user.UserTitle, user.Bio,
		pq.Array(user.Skills), user.Linkedin, user.Github, user.Role,
		user.CreatedAt, user.UpdatedAt,
	).Scan(&user.ID)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			if pgErr.ConstraintName == "users_username_key" {
				return apperror.BadRequest("A user with this username already exists")
			}
			return apperror.BadRequest("A user with this email already exists")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (r *userRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	var user domain.User
	if err := scanUser(r.db.QueryRow(ctx, query, id), &user); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	var user domain.User
	if err := scanUser(r.db.QueryRow(ctx, query, username), &user); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetByUsernameAndEmail resolves the (username, email) pair used by the
// password-reset flow. Both fields must match the same row.
func (r *userRepo) GetByUsernameAndEmail(ctx context.Context, username, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1 AND email = $2`
	var user domain.User
	if err := scanUser(r.db.QueryRow(ctx, query, username, email), &user); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// UpdateProfile writes the owner-editable profile fields. Username, email and
// role are deliberately absent from the statement.
func (r *userRepo) UpdateProfile(ctx context.Context, user *domain.User) error {
	query := `UPDATE users SET
		first_name = $2,
		last_name = $3,
		gender = $4,
		mobile = $5,
		location = $6,
		user_title = $7,
		bio = $8,
		skills = $9,
		linkedin = $10,
		github = $11,
		updated_at = $12
	WHERE id = $1`

	user.UpdatedAt = time.Now()
	result, err := r.db.Exec(ctx, query,
		user.ID, user.FirstName, user.LastName, user.Gender, user.Mobile,
		user.Location, user.UserTitle, user.Bio, pq.Array(user.Skills),
		user.Linkedin, user.Github, user.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *userRepo) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	query := `UPDATE users SET password_hash = $2, updated_at = $3 WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id, passwordHash, time.Now())
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Search runs a case-insensitive substring match on username and email.
// Visibility restrictions for non-admin callers are part of the query so a
// forbidden profile is never loaded at all.
func (r *userRepo) Search(ctx context.Context, filter domain.ProfileSearchFilter) ([]domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users
		WHERE (username ILIKE '%' || $1 || '%' OR email ILIKE '%' || $1 || '%')
		  AND ($2 = false OR role <> $3)
		  AND id <> $4
		ORDER BY username ASC`

	rows, err := r.db.Query(ctx, query, filter.Query, filter.ExcludeAdmins, domain.RoleAdmin, filter.ExcludeUserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var user domain.User
		if err := scanUser(rows, &user); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}
