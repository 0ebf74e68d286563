package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/token"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// Mock Repositories

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByUsernameAndEmail(ctx context.Context, username, email string) (*domain.User, error) {
	args := m.Called(ctx, username, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) UpdateProfile(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	return m.Called(ctx, id, passwordHash).Error(0)
}
func (m *MockUserRepo) Search(ctx context.Context, filter domain.ProfileSearchFilter) ([]domain.User, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) Create(ctx context.Context, job *domain.JobPosting) error {
	return m.Called(ctx, job).Error(0)
}
func (m *MockJobRepo) GetByID(ctx context.Context, id int64) (*domain.JobPosting, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobPosting), args.Error(1)
}
func (m *MockJobRepo) Fetch(ctx context.Context, limit, offset int) ([]domain.JobPosting, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.JobPosting), args.Get(1).(int64), args.Error(2)
}
func (m *MockJobRepo) SearchByTitle(ctx context.Context, query string, limit, offset int) ([]domain.JobPosting, int64, error) {
	args := m.Called(ctx, query, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.JobPosting), args.Get(1).(int64), args.Error(2)
}
func (m *MockJobRepo) Update(ctx context.Context, job *domain.JobPosting) error {
	return m.Called(ctx, job).Error(0)
}
func (m *MockJobRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Create(ctx context.Context, app *domain.Application) error {
	return m.Called(ctx, app).Error(0)
}
func (m *MockApplicationRepo) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) GetByApplicant(ctx context.Context, userID int64, status string) ([]domain.Application, error) {
	args := m.Called(ctx, userID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) GetByJobAuthor(ctx context.Context, authorID int64) ([]domain.Application, error) {
	args := m.Called(ctx, authorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) CheckExists(ctx context.Context, userID, jobID int64) (bool, error) {
	args := m.Called(ctx, userID, jobID)
	return args.Bool(0), args.Error(1)
}
func (m *MockApplicationRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	return m.Called(ctx, id, status).Error(0)
}

func newTokens() *token.Manager {
	return token.NewManager("test-secret", time.Hour, 15*time.Minute)
}

func assertCode(t *testing.T, err error, code int) {
	t.Helper()
	var appErr *apperror.AppError
	assert.True(t, errors.As(err, &appErr), "expected an AppError, got %v", err)
	assert.Equal(t, code, appErr.Code)
}

func validJob() *domain.JobPosting {
	return &domain.JobPosting{
		ID:        1,
		Title:     "Backend Engineer",
		Company:   "Acme",
		Location:  "Jakarta",
		Setup:     domain.JobSetupRemote,
		Type:      domain.JobTypeFullTime,
		MinSalary: "1000",
		MaxSalary: "2000",
	}
}

// Auth

func TestRegister(t *testing.T) {
	mockRepo := new(MockUserRepo)
	uc := usecase.NewAuthUsecase(mockRepo, newTokens(), validator.New())

	t.Run("Should force regular role and hash password", func(t *testing.T) {
		mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

		user := &domain.User{Username: "alice", Email: "Alice@Example.com", Role: domain.RoleAdmin}
		created, err := uc.Register(context.Background(), user, "secret123")

		assert.NoError(t, err)
		assert.Equal(t, domain.RoleUser, created.Role)
		assert.Equal(t, "alice@example.com", created.Email)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("secret123")))
	})

	t.Run("Should fail on missing fields", func(t *testing.T) {
		_, err := uc.Register(context.Background(), &domain.User{Email: "a@b.com"}, "secret123")
		assert.Contains(t, err.Error(), "Username is required")

		_, err = uc.Register(context.Background(), &domain.User{Username: "alice"}, "secret123")
		assert.Contains(t, err.Error(), "Email is required")

		_, err = uc.Register(context.Background(), &domain.User{Username: "alice", Email: "a@b.com"}, "")
		assert.Contains(t, err.Error(), "Password is required")
	})
}

func TestLogin(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	stored := &domain.User{ID: 7, Username: "alice", Email: "a@b.com", PasswordHash: string(hash), Role: domain.RoleUser}

	t.Run("Should return a verifiable access token", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		mockRepo.On("GetByUsername", mock.Anything, "alice").Return(stored, nil)
		tokens := newTokens()
		uc := usecase.NewAuthUsecase(mockRepo, tokens, validator.New())

		accessToken, user, err := uc.Login(context.Background(), "alice", "secret123")
		assert.NoError(t, err)
		assert.Equal(t, int64(7), user.ID)

		claims, err := tokens.Verify(accessToken, token.PurposeAccess)
		assert.NoError(t, err)
		assert.Equal(t, int64(7), claims.UserID)
		assert.Equal(t, domain.RoleUser, claims.Role)
	})

	t.Run("Should not reveal whether username or password was wrong", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		mockRepo.On("GetByUsername", mock.Anything, "ghost").Return(nil, domain.ErrNotFound)
		mockRepo.On("GetByUsername", mock.Anything, "alice").Return(stored, nil)
		uc := usecase.NewAuthUsecase(mockRepo, newTokens(), validator.New())

		_, _, errUnknown := uc.Login(context.Background(), "ghost", "secret123")
		_, _, errWrongPass := uc.Login(context.Background(), "alice", "wrong")

		assert.Error(t, errUnknown)
		assert.Error(t, errWrongPass)
		assert.Equal(t, errUnknown.Error(), errWrongPass.Error())
		assertCode(t, errUnknown, http.StatusUnauthorized)
	})

	t.Run("Should not disguise storage failures as bad credentials", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		mockRepo.On("GetByUsername", mock.Anything, "alice").Return(nil, errors.New("connection refused"))
		uc := usecase.NewAuthUsecase(mockRepo, newTokens(), validator.New())

		_, _, err := uc.Login(context.Background(), "alice", "secret123")
		assertCode(t, err, http.StatusInternalServerError)
		assert.NotContains(t, err.Error(), "Invalid username or password")
	})
}

func TestGetProfile(t *testing.T) {
	t.Run("Should report a missing user as not found", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		mockRepo.On("GetByID", mock.Anything, int64(7)).Return(nil, domain.ErrNotFound)
		uc := usecase.NewAuthUsecase(mockRepo, newTokens(), validator.New())

		_, err := uc.GetProfile(context.Background(), 7)
		assertCode(t, err, http.StatusNotFound)
		assert.Contains(t, err.Error(), "User not found")
	})

	t.Run("Should report a failing backend as an internal error", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		mockRepo.On("GetByID", mock.Anything, int64(7)).Return(nil, errors.New("connection refused"))
		uc := usecase.NewAuthUsecase(mockRepo, newTokens(), validator.New())

		_, err := uc.GetProfile(context.Background(), 7)
		assertCode(t, err, http.StatusInternalServerError)
	})
}

func TestPasswordReset(t *testing.T) {
	stored := &domain.User{ID: 7, Username: "alice", Email: "a@b.com"}

	t.Run("Should fail when username and email do not pair", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		mockRepo.On("GetByUsernameAndEmail", mock.Anything, "alice", "wrong@b.com").Return(nil, domain.ErrNotFound)
		uc := usecase.NewAuthUsecase(mockRepo, newTokens(), validator.New())

		_, err := uc.ForgotPassword(context.Background(), "alice", "wrong@b.com")
		assert.Contains(t, err.Error(), "Username and email do not match")
		assertCode(t, err, http.StatusBadRequest)
	})

	t.Run("Should complete reset with a token from the forgot flow", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		mockRepo.On("GetByUsernameAndEmail", mock.Anything, "alice", "a@b.com").Return(stored, nil)
		mockRepo.On("UpdatePassword", mock.Anything, int64(7), mock.AnythingOfType("string")).Return(nil).Once()
		uc := usecase.NewAuthUsecase(mockRepo, newTokens(), validator.New())

		resetToken, err := uc.ForgotPassword(context.Background(), "alice", "a@b.com")
		assert.NoError(t, err)

		err = uc.ResetPassword(context.Background(), resetToken, "newsecret")
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Should reject an access token on the reset path", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		tokens := newTokens()
		uc := usecase.NewAuthUsecase(mockRepo, tokens, validator.New())

		accessToken, _ := tokens.IssueAccess(7, "a@b.com", domain.RoleUser)
		err := uc.ResetPassword(context.Background(), accessToken, "newsecret")
		assert.Contains(t, err.Error(), "Invalid or expired reset token")
		mockRepo.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestUpdateProfile(t *testing.T) {
	t.Run("Should leave omitted fields unchanged", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		mockRepo.On("GetByID", mock.Anything, int64(7)).
			Return(&domain.User{ID: 7, Username: "alice", Bio: "old bio", Location: "Jakarta"}, nil)
		mockRepo.On("UpdateProfile", mock.Anything, mock.Anything).Return(nil)
		uc := usecase.NewAuthUsecase(mockRepo, newTokens(), validator.New())

		newBio := "new bio"
		updated, err := uc.UpdateProfile(context.Background(), 7, &domain.ProfileUpdate{Bio: &newBio})

		assert.NoError(t, err)
		assert.Equal(t, "new bio", updated.Bio)
		assert.Equal(t, "Jakarta", updated.Location)
		assert.Equal(t, "alice", updated.Username)
	})

	t.Run("Should reject oversized fields", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		mockRepo.On("GetByID", mock.Anything, int64(7)).Return(&domain.User{ID: 7}, nil)
		uc := usecase.NewAuthUsecase(mockRepo, newTokens(), validator.New())

		long := make([]byte, 501)
		for i := range long {
			long[i] = 'x'
		}
		bio := string(long)
		_, err := uc.UpdateProfile(context.Background(), 7, &domain.ProfileUpdate{Bio: &bio})
		assert.Contains(t, err.Error(), "at most 500 characters")
		mockRepo.AssertNotCalled(t, "UpdateProfile", mock.Anything, mock.Anything)
	})
}

func TestSearchProfiles(t *testing.T) {
	t.Run("Should hide admins and self from regular users", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		expected := domain.ProfileSearchFilter{Query: "ali", ExcludeAdmins: true, ExcludeUserID: 7}
		mockRepo.On("Search", mock.Anything, expected).Return([]domain.User{{ID: 2}}, nil)
		uc := usecase.NewAuthUsecase(mockRepo, newTokens(), validator.New())

		users, err := uc.SearchProfiles(context.Background(), 7, domain.RoleUser, "ali")
		assert.NoError(t, err)
		assert.Len(t, users, 1)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Should apply no exclusions for admins", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		expected := domain.ProfileSearchFilter{Query: "ali"}
		mockRepo.On("Search", mock.Anything, expected).Return([]domain.User{{ID: 2}, {ID: 7}}, nil)
		uc := usecase.NewAuthUsecase(mockRepo, newTokens(), validator.New())

		users, err := uc.SearchProfiles(context.Background(), 7, domain.RoleAdmin, "ali")
		assert.NoError(t, err)
		assert.Len(t, users, 2)
	})

	t.Run("Should fail on empty query and empty result", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		mockRepo.On("Search", mock.Anything, mock.Anything).Return([]domain.User{}, nil)
		uc := usecase.NewAuthUsecase(mockRepo, newTokens(), validator.New())

		_, err := uc.SearchProfiles(context.Background(), 7, domain.RoleUser, "   ")
		assertCode(t, err, http.StatusNotFound)

		_, err = uc.SearchProfiles(context.Background(), 7, domain.RoleUser, "nobody")
		assertCode(t, err, http.StatusNotFound)
		assert.Contains(t, err.Error(), "No profiles matched your search")
	})
}

// Jobs

func TestCreateJob(t *testing.T) {
	t.Run("Should pin the author to the caller", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
		uc := usecase.NewJobUsecase(mockRepo)

		job := validJob()
		job.AuthorID = 999 // payload lies about authorship
		err := uc.CreateJob(context.Background(), 7, job)

		assert.NoError(t, err)
		assert.Equal(t, int64(7), job.AuthorID)
		assert.False(t, job.CreatedAt.IsZero())
	})

	t.Run("Should validate field constraints", func(t *testing.T) {
		uc := usecase.NewJobUsecase(new(MockJobRepo))

		short := validJob()
		short.Title = "Go"
		err := uc.CreateJob(context.Background(), 7, short)
		assert.Contains(t, err.Error(), "at least 3 characters")

		badSetup := validJob()
		badSetup.Setup = "Moon"
		err = uc.CreateJob(context.Background(), 7, badSetup)
		assert.Contains(t, err.Error(), "Onsite, Remote, Hybrid")

		badType := validJob()
		badType.Type = "Gig"
		err = uc.CreateJob(context.Background(), 7, badType)
		assert.Contains(t, err.Error(), "Full-Time, Part-Time, Contract, Internship")

		noSalary := validJob()
		noSalary.MinSalary = ""
		err = uc.CreateJob(context.Background(), 7, noSalary)
		assert.Contains(t, err.Error(), "salary")
	})
}

func TestListJobs(t *testing.T) {
	t.Run("Should normalize page defaults", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		mockRepo.On("Fetch", mock.Anything, 10, 0).Return([]domain.JobPosting{*validJob()}, int64(1), nil)
		uc := usecase.NewJobUsecase(mockRepo)

		jobs, total, err := uc.ListJobs(context.Background(), 0, 0)
		assert.NoError(t, err)
		assert.Len(t, jobs, 1)
		assert.Equal(t, int64(1), total)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Should translate page numbers to offsets", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		mockRepo.On("Fetch", mock.Anything, 20, 40).Return([]domain.JobPosting{}, int64(55), nil)
		uc := usecase.NewJobUsecase(mockRepo)

		_, total, err := uc.ListJobs(context.Background(), 3, 20)
		assert.NoError(t, err)
		assert.Equal(t, int64(55), total)
		mockRepo.AssertExpectations(t)
	})
}

func TestSearchJobs(t *testing.T) {
	t.Run("Should match everything on a blank query", func(t *testing.T) {
		// A blank job search is a browse, not an error. Profile search
		// treats the same input as not found.
		mockRepo := new(MockJobRepo)
		mockRepo.On("SearchByTitle", mock.Anything, "", 10, 0).Return([]domain.JobPosting{*validJob()}, int64(25), nil)
		uc := usecase.NewJobUsecase(mockRepo)

		jobs, total, err := uc.SearchJobs(context.Background(), "   ", 1, 10)
		assert.NoError(t, err)
		assert.Len(t, jobs, 1)
		assert.Equal(t, int64(25), total)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Should trim the query and paginate", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		mockRepo.On("SearchByTitle", mock.Anything, "engineer", 5, 5).Return([]domain.JobPosting{}, int64(7), nil)
		uc := usecase.NewJobUsecase(mockRepo)

		_, total, err := uc.SearchJobs(context.Background(), " engineer ", 2, 5)
		assert.NoError(t, err)
		assert.Equal(t, int64(7), total)
		mockRepo.AssertExpectations(t)
	})
}

func TestUpdateJob(t *testing.T) {
	created := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("Should look missing to a non-author", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		existing := validJob()
		existing.AuthorID = 1
		mockRepo.On("GetByID", mock.Anything, int64(1)).Return(existing, nil)
		uc := usecase.NewJobUsecase(mockRepo)

		err := uc.UpdateJob(context.Background(), 2, validJob())
		assertCode(t, err, http.StatusNotFound)
		mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Should preserve creation time and re-pin the author", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		existing := validJob()
		existing.AuthorID = 7
		existing.CreatedAt = created
		mockRepo.On("GetByID", mock.Anything, int64(1)).Return(existing, nil)
		mockRepo.On("Update", mock.Anything, mock.Anything).Return(nil)
		uc := usecase.NewJobUsecase(mockRepo)

		update := validJob()
		update.AuthorID = 999
		update.CreatedAt = time.Now()
		err := uc.UpdateJob(context.Background(), 7, update)

		assert.NoError(t, err)
		assert.Equal(t, int64(7), update.AuthorID)
		assert.Equal(t, created, update.CreatedAt)
	})
}

func TestDeleteJob(t *testing.T) {
	t.Run("Should allow the author and any admin", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		existing := validJob()
		existing.AuthorID = 7
		mockRepo.On("GetByID", mock.Anything, int64(1)).Return(existing, nil)
		mockRepo.On("Delete", mock.Anything, int64(1)).Return(nil)
		uc := usecase.NewJobUsecase(mockRepo)

		assert.NoError(t, uc.DeleteJob(context.Background(), 7, domain.RoleUser, 1))
		assert.NoError(t, uc.DeleteJob(context.Background(), 99, domain.RoleAdmin, 1))
	})

	t.Run("Should look missing to everyone else", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		existing := validJob()
		existing.AuthorID = 7
		mockRepo.On("GetByID", mock.Anything, int64(1)).Return(existing, nil)
		uc := usecase.NewJobUsecase(mockRepo)

		err := uc.DeleteJob(context.Background(), 2, domain.RoleUser, 1)
		assertCode(t, err, http.StatusNotFound)
		mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

// Applications

func TestApply(t *testing.T) {
	t.Run("Should create with the initial status", func(t *testing.T) {
		mockAppRepo := new(MockApplicationRepo)
		mockJobRepo := new(MockJobRepo)
		job := validJob()
		job.AuthorID = 1
		mockJobRepo.On("GetByID", mock.Anything, int64(1)).Return(job, nil)
		mockAppRepo.On("CheckExists", mock.Anything, int64(2), int64(1)).Return(false, nil)
		mockAppRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
		uc := usecase.NewApplicationUsecase(mockAppRepo, mockJobRepo)

		app, err := uc.Apply(context.Background(), 2, 1)
		assert.NoError(t, err)
		assert.Equal(t, domain.ApplicationStatusUnderReview, app.Status)
		assert.Equal(t, int64(2), app.UserID)
		assert.Equal(t, "Backend Engineer", *app.JobTitle)
	})

	t.Run("Should reject applying to own posting", func(t *testing.T) {
		mockAppRepo := new(MockApplicationRepo)
		mockJobRepo := new(MockJobRepo)
		job := validJob()
		job.AuthorID = 7
		mockJobRepo.On("GetByID", mock.Anything, int64(1)).Return(job, nil)
		uc := usecase.NewApplicationUsecase(mockAppRepo, mockJobRepo)

		_, err := uc.Apply(context.Background(), 7, 1)
		assert.Contains(t, err.Error(), "cannot apply to your own job posting")
		mockAppRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should reject a duplicate application", func(t *testing.T) {
		mockAppRepo := new(MockApplicationRepo)
		mockJobRepo := new(MockJobRepo)
		job := validJob()
		job.AuthorID = 1
		mockJobRepo.On("GetByID", mock.Anything, int64(1)).Return(job, nil)
		mockAppRepo.On("CheckExists", mock.Anything, int64(2), int64(1)).Return(true, nil)
		uc := usecase.NewApplicationUsecase(mockAppRepo, mockJobRepo)

		_, err := uc.Apply(context.Background(), 2, 1)
		assert.Contains(t, err.Error(), "already applied to this job")
		assertCode(t, err, http.StatusBadRequest)
	})

	t.Run("Should fail for a missing job", func(t *testing.T) {
		mockAppRepo := new(MockApplicationRepo)
		mockJobRepo := new(MockJobRepo)
		mockJobRepo.On("GetByID", mock.Anything, int64(42)).Return(nil, domain.ErrNotFound)
		uc := usecase.NewApplicationUsecase(mockAppRepo, mockJobRepo)

		_, err := uc.Apply(context.Background(), 2, 42)
		assertCode(t, err, http.StatusNotFound)
	})
}

func TestListMyApplications(t *testing.T) {
	mockAppRepo := new(MockApplicationRepo)
	uc := usecase.NewApplicationUsecase(mockAppRepo, new(MockJobRepo))

	t.Run("Should reject an unknown status filter", func(t *testing.T) {
		_, err := uc.ListMyApplications(context.Background(), 2, "Pending")
		assert.Contains(t, err.Error(), "Under Review, Interview, Accepted, or Rejected")
	})

	t.Run("Should pass a valid filter through", func(t *testing.T) {
		mockAppRepo.On("GetByApplicant", mock.Anything, int64(2), domain.ApplicationStatusInterview).
			Return([]domain.Application{{ID: 1}}, nil)

		apps, err := uc.ListMyApplications(context.Background(), 2, domain.ApplicationStatusInterview)
		assert.NoError(t, err)
		assert.Len(t, apps, 1)
	})
}

func TestUpdateApplicationStatus(t *testing.T) {
	app := &domain.Application{ID: 5, UserID: 2, JobID: 1, Status: domain.ApplicationStatusUnderReview}

	t.Run("Should allow only the job author", func(t *testing.T) {
		mockAppRepo := new(MockApplicationRepo)
		mockJobRepo := new(MockJobRepo)
		job := validJob()
		job.AuthorID = 7
		mockAppRepo.On("GetByID", mock.Anything, int64(5)).Return(app, nil)
		mockJobRepo.On("GetByID", mock.Anything, int64(1)).Return(job, nil)
		uc := usecase.NewApplicationUsecase(mockAppRepo, mockJobRepo)

		err := uc.UpdateStatus(context.Background(), 3, 5, domain.ApplicationStatusInterview)
		assertCode(t, err, http.StatusForbidden)
		assert.Contains(t, err.Error(), "Only the job author")
		mockAppRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should allow any defined status in any order", func(t *testing.T) {
		mockAppRepo := new(MockApplicationRepo)
		mockJobRepo := new(MockJobRepo)
		job := validJob()
		job.AuthorID = 7
		mockAppRepo.On("GetByID", mock.Anything, int64(5)).Return(app, nil)
		mockJobRepo.On("GetByID", mock.Anything, int64(1)).Return(job, nil)
		mockAppRepo.On("UpdateStatus", mock.Anything, int64(5), mock.AnythingOfType("string")).Return(nil)
		uc := usecase.NewApplicationUsecase(mockAppRepo, mockJobRepo)

		assert.NoError(t, uc.UpdateStatus(context.Background(), 7, 5, domain.ApplicationStatusAccepted))
		assert.NoError(t, uc.UpdateStatus(context.Background(), 7, 5, domain.ApplicationStatusUnderReview))
	})

	t.Run("Should reject an unknown status before any lookup", func(t *testing.T) {
		mockAppRepo := new(MockApplicationRepo)
		uc := usecase.NewApplicationUsecase(mockAppRepo, new(MockJobRepo))

		err := uc.UpdateStatus(context.Background(), 7, 5, "Onboarded")
		assert.Contains(t, err.Error(), "Invalid status")
		mockAppRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})
}
