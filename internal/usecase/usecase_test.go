package usecase_test

import (
	"context"
	"net/http"
	"os"
	"testing"

	"resume-builder-backend/internal/domain"
	"resume-builder-backend/internal/usecase"
	"resume-builder-backend/pkg/apperror"
	"resume-builder-backend/pkg/auth"
	"resume-builder-backend/pkg/logger"
	"resume-builder-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

// Mock Repositories

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) (int64, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) List(ctx context.Context, q domain.ListQuery) ([]domain.User, int64, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.User), args.Get(1).(int64), args.Error(2)
}
func (m *MockUserRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	return m.Called(ctx, id, status).Error(0)
}
func (m *MockUserRepo) CountByStatus(ctx context.Context) (domain.StatusCounts, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.StatusCounts), args.Error(1)
}

type MockAdminRepo struct {
	mock.Mock
}

func (m *MockAdminRepo) Create(ctx context.Context, admin *domain.Admin) (int64, error) {
	args := m.Called(ctx, admin)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockAdminRepo) GetByID(ctx context.Context, id int64) (*domain.Admin, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Admin), args.Error(1)
}
func (m *MockAdminRepo) GetByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Admin), args.Error(1)
}
func (m *MockAdminRepo) List(ctx context.Context, q domain.ListQuery) ([]domain.Admin, int64, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Admin), args.Get(1).(int64), args.Error(2)
}
func (m *MockAdminRepo) Update(ctx context.Context, admin *domain.Admin) error {
	return m.Called(ctx, admin).Error(0)
}
func (m *MockAdminRepo) SoftDelete(ctx context.Context, id, deletedBy int64) error {
	return m.Called(ctx, id, deletedBy).Error(0)
}
func (m *MockAdminRepo) CountByStatus(ctx context.Context) (domain.StatusCounts, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.StatusCounts), args.Error(1)
}

type MockProfileRepo struct {
	mock.Mock
}

func (m *MockProfileRepo) SaveUserDetails(ctx context.Context, input *domain.SubmitDetailsInput, actorID int64) (*domain.SubmitDetailsResult, error) {
	args := m.Called(ctx, input, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SubmitDetailsResult), args.Error(1)
}
func (m *MockProfileRepo) UpsertProfile(ctx context.Context, userID int64, in *domain.ProfileInput, actorID int64) error {
	return m.Called(ctx, userID, in, actorID).Error(0)
}
func (m *MockProfileRepo) ReplaceEducation(ctx context.Context, userID int64, entries []domain.EducationInput) error {
	return m.Called(ctx, userID, entries).Error(0)
}
func (m *MockProfileRepo) ReplaceExperience(ctx context.Context, userID int64, entries []domain.ExperienceInput) error {
	return m.Called(ctx, userID, entries).Error(0)
}
func (m *MockProfileRepo) ReplaceSkills(ctx context.Context, userID int64, skillIDs []int64) error {
	return m.Called(ctx, userID, skillIDs).Error(0)
}
func (m *MockProfileRepo) GetProfile(ctx context.Context, userID int64) (*domain.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}
func (m *MockProfileRepo) ListEducation(ctx context.Context, userID int64) ([]domain.Education, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Education), args.Error(1)
}
func (m *MockProfileRepo) ListExperience(ctx context.Context, userID int64) ([]domain.Experience, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Experience), args.Error(1)
}
func (m *MockProfileRepo) ListSkills(ctx context.Context, userID int64) ([]domain.Skill, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Skill), args.Error(1)
}

type MockResumeRepo struct {
	mock.Mock
}

func (m *MockResumeRepo) Create(ctx context.Context, resume *domain.Resume) (int64, error) {
	args := m.Called(ctx, resume)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockResumeRepo) GetByID(ctx context.Context, id int64) (*domain.Resume, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Resume), args.Error(1)
}
func (m *MockResumeRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Resume, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Resume), args.Error(1)
}
func (m *MockResumeRepo) Update(ctx context.Context, resume *domain.Resume) error {
	return m.Called(ctx, resume).Error(0)
}
func (m *MockResumeRepo) SoftDelete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockResumeRepo) NameExists(ctx context.Context, userID int64, name string, excludeID int64) (bool, error) {
	args := m.Called(ctx, userID, name, excludeID)
	return args.Bool(0), args.Error(1)
}
func (m *MockResumeRepo) CountByTemplate(ctx context.Context, templateID int64) (int64, error) {
	args := m.Called(ctx, templateID)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockResumeRepo) CountByStatus(ctx context.Context) (domain.StatusCounts, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.StatusCounts), args.Error(1)
}

type MockTemplateRepo struct {
	mock.Mock
}

func (m *MockTemplateRepo) Create(ctx context.Context, t *domain.ResumeTemplate) (int64, error) {
	args := m.Called(ctx, t)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockTemplateRepo) GetByID(ctx context.Context, id int64) (*domain.ResumeTemplate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ResumeTemplate), args.Error(1)
}
func (m *MockTemplateRepo) List(ctx context.Context, q domain.ListQuery) ([]domain.ResumeTemplate, int64, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.ResumeTemplate), args.Get(1).(int64), args.Error(2)
}
func (m *MockTemplateRepo) ListActive(ctx context.Context) ([]domain.ResumeTemplate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ResumeTemplate), args.Error(1)
}
func (m *MockTemplateRepo) Update(ctx context.Context, t *domain.ResumeTemplate) error {
	return m.Called(ctx, t).Error(0)
}
func (m *MockTemplateRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockTemplateRepo) NameExists(ctx context.Context, name string, excludeID int64) (bool, error) {
	args := m.Called(ctx, name, excludeID)
	return args.Bool(0), args.Error(1)
}
func (m *MockTemplateRepo) CountByStatus(ctx context.Context) (domain.StatusCounts, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.StatusCounts), args.Error(1)
}

// Context helpers mirroring what the auth middleware sets.

func userCtx(id int64) context.Context {
	return context.WithValue(context.Background(), domain.KeyUserID, id)
}

func adminCtx(id int64, role string) context.Context {
	ctx := context.WithValue(context.Background(), domain.KeyUserID, id)
	return context.WithValue(ctx, domain.KeyUserRole, role)
}

func newValidator() *validator.Validate {
	v := validator.New()
	validation.RegisterValidators(v)
	return v
}

func appCode(t *testing.T, err error) *apperror.AppError {
	t.Helper()
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok, "expected *apperror.AppError, got %T", err)
	return appErr
}

const testSigningKey = "unit-test-signing-key-0123456789"

func TestLoginEnumeration(t *testing.T) {
	mockRepo := new(MockUserRepo)
	tokens := auth.NewTokenManager(testSigningKey)
	uc := usecase.NewAuthUsecase(mockRepo, tokens)

	hash, err := auth.HashPassword("Corr3ct!Pass")
	require.NoError(t, err)

	t.Run("Should return the same error for unknown email and wrong password", func(t *testing.T) {
		mockRepo.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, pgx.ErrNoRows).Once()
		_, unknownErr := uc.Login(context.Background(), domain.LoginRequest{
			Email: "ghost@example.com", Password: "whatever1!A",
		})

		mockRepo.On("GetByEmail", mock.Anything, "real@example.com").Return(&domain.User{
			UserID: 7, Email: "real@example.com", PasswordHash: hash, Status: domain.StatusActive,
		}, nil).Once()
		_, wrongErr := uc.Login(context.Background(), domain.LoginRequest{
			Email: "real@example.com", Password: "Wr0ng!Pass",
		})

		require.Error(t, unknownErr)
		require.Error(t, wrongErr)
		assert.Equal(t, unknownErr.Error(), wrongErr.Error())
		assert.Equal(t, "INVALID_CREDENTIALS", appCode(t, unknownErr).ErrCode)
		assert.Equal(t, http.StatusUnauthorized, appCode(t, wrongErr).Code)
	})

	t.Run("Should reveal disabled state only after the password verifies", func(t *testing.T) {
		mockRepo.On("GetByEmail", mock.Anything, "disabled@example.com").Return(&domain.User{
			UserID: 8, Email: "disabled@example.com", PasswordHash: hash, Status: domain.StatusInactive,
		}, nil).Twice()

		_, err := uc.Login(context.Background(), domain.LoginRequest{
			Email: "disabled@example.com", Password: "Wr0ng!Pass",
		})
		assert.Equal(t, "INVALID_CREDENTIALS", appCode(t, err).ErrCode)

		_, err = uc.Login(context.Background(), domain.LoginRequest{
			Email: "disabled@example.com", Password: "Corr3ct!Pass",
		})
		assert.Equal(t, "ACCOUNT_DISABLED", appCode(t, err).ErrCode)
		assert.Equal(t, http.StatusForbidden, appCode(t, err).Code)
	})

	t.Run("Should issue a user-audience token on success", func(t *testing.T) {
		mockRepo.On("GetByEmail", mock.Anything, "real@example.com").Return(&domain.User{
			UserID: 7, Name: "Real User", Email: "real@example.com",
			PasswordHash: hash, Status: domain.StatusActive,
		}, nil).Once()

		result, err := uc.Login(context.Background(), domain.LoginRequest{
			Email: "real@example.com", Password: "Corr3ct!Pass",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(7), result.UserID)

		claims, err := tokens.Verify(result.Token, auth.AudienceUsers)
		require.NoError(t, err)
		assert.Equal(t, "7", claims.UserID)

		_, err = tokens.Verify(result.Token, auth.AudienceAdmins)
		assert.Error(t, err, "a user token must not pass admin verification")
	})
}

func TestRegister(t *testing.T) {
	tokens := auth.NewTokenManager(testSigningKey)

	t.Run("Should reject weak passwords before touching the store", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, tokens)

		for _, password := range []string{"Sh0rt!", "alllowercase1!", "NoDigits!!", "NoSymbols123a"} {
			_, err := uc.Register(context.Background(), domain.RegisterRequest{
				Name: "Jane Doe", Email: "jane@example.com", Password: password,
			})
			require.Error(t, err, "password %q should be rejected", password)
			assert.Equal(t, http.StatusBadRequest, appCode(t, err).Code)
		}
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Should reject a duplicate email with a conflict", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, tokens)

		mockRepo.On("GetByEmail", mock.Anything, "taken@example.com").Return(&domain.User{
			UserID: 3, Email: "taken@example.com",
		}, nil).Once()

		_, err := uc.Register(context.Background(), domain.RegisterRequest{
			Name: "Jane Doe", Email: "taken@example.com", Password: "Str0ng!Pass",
		})
		assert.Equal(t, http.StatusConflict, appCode(t, err).Code)
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Should create the account and default the status to Active", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, tokens)

		mockRepo.On("GetByEmail", mock.Anything, "new@example.com").Return(nil, pgx.ErrNoRows).Once()
		mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
			return u.Status == domain.StatusActive && u.PasswordHash != "" && u.PasswordHash != "Str0ng!Pass"
		})).Return(int64(42), nil).Once()

		result, err := uc.Register(context.Background(), domain.RegisterRequest{
			Name: "Jane Doe", Email: "new@example.com", Password: "Str0ng!Pass",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(42), result.UserID)
		assert.NotEmpty(t, result.Token)
		mockRepo.AssertExpectations(t)
	})
}

func TestSubmitUserDetailsOwnership(t *testing.T) {
	mockUsers := new(MockUserRepo)
	mockProfiles := new(MockProfileRepo)
	uc := usecase.NewProfileUsecase(mockUsers, mockProfiles, new(MockResumeRepo), newValidator())

	t.Run("Should refuse another user's payload", func(t *testing.T) {
		_, err := uc.SubmitUserDetails(userCtx(1), &domain.SubmitDetailsInput{UserID: 2})
		assert.Equal(t, http.StatusForbidden, appCode(t, err).Code)
		mockProfiles.AssertNotCalled(t, "SaveUserDetails")
	})

	t.Run("Should fail safe with no identity in context", func(t *testing.T) {
		_, err := uc.SubmitUserDetails(context.Background(), &domain.SubmitDetailsInput{UserID: 2})
		assert.Equal(t, http.StatusForbidden, appCode(t, err).Code)
	})

	t.Run("Should let an admin submit on behalf of a user", func(t *testing.T) {
		input := &domain.SubmitDetailsInput{UserID: 2}
		mockUsers.On("GetByID", mock.Anything, int64(2)).Return(&domain.User{UserID: 2}, nil).Once()
		mockProfiles.On("SaveUserDetails", mock.Anything, input, int64(99)).
			Return(&domain.SubmitDetailsResult{UserID: 2}, nil).Once()

		result, err := uc.SubmitUserDetails(adminCtx(99, domain.RoleAdmin), input)
		require.NoError(t, err)
		assert.Equal(t, int64(2), result.UserID)
		mockProfiles.AssertExpectations(t)
	})
}

func TestSubmitUserDetailsValidation(t *testing.T) {
	mockUsers := new(MockUserRepo)
	mockProfiles := new(MockProfileRepo)
	uc := usecase.NewProfileUsecase(mockUsers, mockProfiles, new(MockResumeRepo), newValidator())

	t.Run("Should reject a malformed date before any write", func(t *testing.T) {
		_, err := uc.SubmitUserDetails(userCtx(1), &domain.SubmitDetailsInput{
			UserID:  1,
			Profile: &domain.ProfileInput{DateOfBirth: "31-12-1990"},
		})
		appErr := appCode(t, err)
		assert.Equal(t, "VALIDATION_ERROR", appErr.ErrCode)
		assert.NotEmpty(t, appErr.Details)
		mockProfiles.AssertNotCalled(t, "SaveUserDetails")
	})

	t.Run("Should reject an education entry missing its degree", func(t *testing.T) {
		_, err := uc.SubmitUserDetails(userCtx(1), &domain.SubmitDetailsInput{
			UserID:    1,
			Education: []domain.EducationInput{{InstituteName: "MIT"}},
		})
		assert.Equal(t, "VALIDATION_ERROR", appCode(t, err).ErrCode)
	})

	t.Run("Should reject non-positive skill ids", func(t *testing.T) {
		_, err := uc.SubmitUserDetails(userCtx(1), &domain.SubmitDetailsInput{
			UserID:   1,
			SkillIDs: []int64{4, 0},
		})
		assert.Equal(t, "VALIDATION_ERROR", appCode(t, err).ErrCode)
	})

	t.Run("Should reject an unknown user", func(t *testing.T) {
		mockUsers.On("GetByID", mock.Anything, int64(1)).Return(nil, pgx.ErrNoRows).Once()
		_, err := uc.SubmitUserDetails(userCtx(1), &domain.SubmitDetailsInput{UserID: 1})
		assert.Equal(t, http.StatusNotFound, appCode(t, err).Code)
	})
}

func TestSubmitUserDetailsSections(t *testing.T) {
	mockUsers := new(MockUserRepo)
	mockProfiles := new(MockProfileRepo)
	uc := usecase.NewProfileUsecase(mockUsers, mockProfiles, new(MockResumeRepo), newValidator())

	mockUsers.On("GetByID", mock.Anything, int64(5)).Return(&domain.User{UserID: 5}, nil)

	t.Run("Should pass nil and empty sections through unchanged", func(t *testing.T) {
		// Education omitted entirely, skills explicitly cleared.
		input := &domain.SubmitDetailsInput{
			UserID:   5,
			SkillIDs: []int64{},
			Experience: []domain.ExperienceInput{
				{CompanyName: "Acme", JobTitle: "Engineer", StartDate: "2020-01-15"},
			},
		}
		mockProfiles.On("SaveUserDetails", mock.Anything, mock.MatchedBy(func(in *domain.SubmitDetailsInput) bool {
			return in.Education == nil && in.SkillIDs != nil && len(in.SkillIDs) == 0 && len(in.Experience) == 1
		}), int64(5)).Return(&domain.SubmitDetailsResult{
			UserID: 5, ExperienceCount: 1,
		}, nil).Once()

		result, err := uc.SubmitUserDetails(userCtx(5), input)
		require.NoError(t, err)
		assert.Equal(t, 1, result.ExperienceCount)
		assert.Equal(t, 0, result.SkillsCount)
		mockProfiles.AssertExpectations(t)
	})
}

func TestGetResumeInfoCompleteness(t *testing.T) {
	mockUsers := new(MockUserRepo)
	mockProfiles := new(MockProfileRepo)
	mockResumes := new(MockResumeRepo)
	uc := usecase.NewProfileUsecase(mockUsers, mockProfiles, mockResumes, newValidator())

	mockUsers.On("GetByID", mock.Anything, int64(3)).Return(&domain.User{UserID: 3, Status: domain.StatusActive}, nil)
	mockProfiles.On("GetProfile", mock.Anything, int64(3)).Return(nil, nil)
	mockProfiles.On("ListEducation", mock.Anything, int64(3)).Return([]domain.Education{{EducationID: 1}}, nil)
	mockProfiles.On("ListExperience", mock.Anything, int64(3)).Return([]domain.Experience{}, nil)
	mockProfiles.On("ListSkills", mock.Anything, int64(3)).Return([]domain.Skill{{SkillID: 1}, {SkillID: 2}}, nil)
	mockResumes.On("ListByUser", mock.Anything, int64(3)).Return([]domain.Resume{}, nil)

	info, err := uc.GetResumeInfo(userCtx(3), 3)
	require.NoError(t, err)

	// Account + education + skills filled, profile and experience missing.
	assert.Equal(t, 60, info.Completeness.Percent)
	assert.True(t, info.Completeness.Account)
	assert.False(t, info.Completeness.Profile)
	assert.True(t, info.Completeness.Education)
	assert.False(t, info.Completeness.Experience)
	assert.True(t, info.Completeness.Skills)
}

func TestResumeUsecase(t *testing.T) {
	t.Run("Should reject a duplicate resume name", func(t *testing.T) {
		mockUsers := new(MockUserRepo)
		mockResumes := new(MockResumeRepo)
		uc := usecase.NewResumeUsecase(mockUsers, mockResumes)

		mockUsers.On("GetByID", mock.Anything, int64(4)).Return(&domain.User{UserID: 4}, nil).Once()
		mockResumes.On("NameExists", mock.Anything, int64(4), "My Resume", int64(0)).Return(true, nil).Once()

		_, err := uc.Add(userCtx(4), domain.AddResumeRequest{UserID: 4, ResumeName: "My Resume"})
		appErr := appCode(t, err)
		assert.Equal(t, http.StatusConflict, appErr.Code)
		assert.Contains(t, appErr.Message, "already exists")
		mockResumes.AssertNotCalled(t, "Create")
	})

	t.Run("Should refuse to update a resume owned by someone else", func(t *testing.T) {
		mockResumes := new(MockResumeRepo)
		uc := usecase.NewResumeUsecase(new(MockUserRepo), mockResumes)

		mockResumes.On("GetByID", mock.Anything, int64(10)).Return(&domain.Resume{
			ResumeID: 10, UserID: 99, ResumeName: "Not Yours",
		}, nil).Once()

		name := "Renamed"
		_, err := uc.Update(userCtx(4), domain.UpdateResumeRequest{
			UserID: 4, ResumeID: 10, ResumeName: &name,
		})
		assert.Equal(t, http.StatusForbidden, appCode(t, err).Code)
		mockResumes.AssertNotCalled(t, "Update")
	})

	t.Run("Should soft delete an owned resume", func(t *testing.T) {
		mockResumes := new(MockResumeRepo)
		uc := usecase.NewResumeUsecase(new(MockUserRepo), mockResumes)

		mockResumes.On("GetByID", mock.Anything, int64(10)).Return(&domain.Resume{
			ResumeID: 10, UserID: 4,
		}, nil).Once()
		mockResumes.On("SoftDelete", mock.Anything, int64(10)).Return(nil).Once()

		err := uc.Delete(userCtx(4), 4, 10)
		require.NoError(t, err)
		mockResumes.AssertExpectations(t)
	})

	t.Run("Should refuse to delete a resume owned by someone else", func(t *testing.T) {
		mockResumes := new(MockResumeRepo)
		uc := usecase.NewResumeUsecase(new(MockUserRepo), mockResumes)

		mockResumes.On("GetByID", mock.Anything, int64(10)).Return(&domain.Resume{
			ResumeID: 10, UserID: 99,
		}, nil).Once()

		err := uc.Delete(userCtx(4), 4, 10)
		assert.Equal(t, http.StatusForbidden, appCode(t, err).Code)
		mockResumes.AssertNotCalled(t, "SoftDelete")
	})
}

func TestTemplateDeleteGuard(t *testing.T) {
	t.Run("Should block deletion while resumes reference the template", func(t *testing.T) {
		mockTemplates := new(MockTemplateRepo)
		mockResumes := new(MockResumeRepo)
		uc := usecase.NewTemplateUsecase(mockTemplates, mockResumes, 10)

		mockTemplates.On("GetByID", mock.Anything, int64(6)).Return(&domain.ResumeTemplate{TemplateID: 6}, nil).Once()
		mockResumes.On("CountByTemplate", mock.Anything, int64(6)).Return(int64(3), nil).Once()

		err := uc.Delete(adminCtx(1, domain.RoleAdmin), 6)
		appErr := appCode(t, err)
		assert.Equal(t, "RESOURCE_IN_USE", appErr.ErrCode)
		assert.Equal(t, http.StatusConflict, appErr.Code)
		mockTemplates.AssertNotCalled(t, "Delete")
	})

	t.Run("Should hard delete an unused template", func(t *testing.T) {
		mockTemplates := new(MockTemplateRepo)
		mockResumes := new(MockResumeRepo)
		uc := usecase.NewTemplateUsecase(mockTemplates, mockResumes, 10)

		mockTemplates.On("GetByID", mock.Anything, int64(6)).Return(&domain.ResumeTemplate{TemplateID: 6}, nil).Once()
		mockResumes.On("CountByTemplate", mock.Anything, int64(6)).Return(int64(0), nil).Once()
		mockTemplates.On("Delete", mock.Anything, int64(6)).Return(nil).Once()

		err := uc.Delete(adminCtx(1, domain.RoleAdmin), 6)
		require.NoError(t, err)
		mockTemplates.AssertExpectations(t)
	})

	t.Run("Should refuse template admin operations without an admin role", func(t *testing.T) {
		uc := usecase.NewTemplateUsecase(new(MockTemplateRepo), new(MockResumeRepo), 10)
		err := uc.Delete(userCtx(4), 6)
		assert.Equal(t, http.StatusForbidden, appCode(t, err).Code)
	})
}

func TestTemplateDuplicateName(t *testing.T) {
	mockTemplates := new(MockTemplateRepo)
	uc := usecase.NewTemplateUsecase(mockTemplates, new(MockResumeRepo), 10)

	mockTemplates.On("NameExists", mock.Anything, "Modern", int64(0)).Return(true, nil).Once()

	_, err := uc.Create(adminCtx(1, domain.RoleAdmin), domain.CreateTemplateRequest{
		TemplateName: "Modern", TemplateHTML: "<html></html>",
	})
	assert.Equal(t, http.StatusConflict, appCode(t, err).Code)
	mockTemplates.AssertNotCalled(t, "Create")
}

func TestAdminPrivilege(t *testing.T) {
	mockAdmins := new(MockAdminRepo)
	uc := usecase.NewAdminManagementUsecase(mockAdmins, new(MockUserRepo), new(MockProfileRepo),
		new(MockResumeRepo), new(MockTemplateRepo), 10)

	t.Run("Should restrict admin account listing to super admins", func(t *testing.T) {
		_, err := uc.ListAdmins(adminCtx(1, domain.RoleAdmin), domain.ListQuery{})
		appErr := appCode(t, err)
		assert.Equal(t, http.StatusForbidden, appErr.Code)
		assert.Contains(t, appErr.Message, "Super admin")
		mockAdmins.AssertNotCalled(t, "List")
	})

	t.Run("Should fail safe with no role in context", func(t *testing.T) {
		_, err := uc.ListAdmins(context.Background(), domain.ListQuery{})
		assert.Equal(t, http.StatusForbidden, appCode(t, err).Code)
	})

	t.Run("Should forbid an admin deleting their own account", func(t *testing.T) {
		err := uc.DeleteAdmin(adminCtx(5, domain.RoleSuperAdmin), 5)
		appErr := appCode(t, err)
		assert.Equal(t, http.StatusForbidden, appErr.Code)
		assert.Contains(t, appErr.Message, "own account")
		mockAdmins.AssertNotCalled(t, "SoftDelete")
	})

	t.Run("Should soft delete another admin and record the actor", func(t *testing.T) {
		mockAdmins.On("SoftDelete", mock.Anything, int64(6), int64(5)).Return(nil).Once()
		err := uc.DeleteAdmin(adminCtx(5, domain.RoleSuperAdmin), 6)
		require.NoError(t, err)
		mockAdmins.AssertExpectations(t)
	})
}

func TestDeleteUserSoftDeletes(t *testing.T) {
	mockUsers := new(MockUserRepo)
	uc := usecase.NewAdminManagementUsecase(new(MockAdminRepo), mockUsers, new(MockProfileRepo),
		new(MockResumeRepo), new(MockTemplateRepo), 10)

	mockUsers.On("UpdateStatus", mock.Anything, int64(9), domain.StatusInactive).Return(nil).Once()

	err := uc.DeleteUser(adminCtx(1, domain.RoleAdmin), 9)
	require.NoError(t, err)
	mockUsers.AssertExpectations(t)
}

func TestListUsersPaginationClamp(t *testing.T) {
	mockUsers := new(MockUserRepo)
	uc := usecase.NewAdminManagementUsecase(new(MockAdminRepo), mockUsers, new(MockProfileRepo),
		new(MockResumeRepo), new(MockTemplateRepo), 10)

	t.Run("Should clamp out-of-range page and limit before querying", func(t *testing.T) {
		mockUsers.On("List", mock.Anything, mock.MatchedBy(func(q domain.ListQuery) bool {
			return q.Page == 1 && q.Limit == 10
		})).Return([]domain.User{{UserID: 1}}, int64(25), nil).Once()

		result, err := uc.ListUsers(adminCtx(1, domain.RoleAdmin), domain.ListQuery{Page: 0, Limit: 500})
		require.NoError(t, err)
		assert.Equal(t, 1, result.Page)
		assert.Equal(t, 10, result.Limit)
		assert.Equal(t, int64(25), result.Total)
		assert.Equal(t, 3, result.TotalPages)
		mockUsers.AssertExpectations(t)
	})

	t.Run("Should keep an in-range query untouched", func(t *testing.T) {
		mockUsers.On("List", mock.Anything, mock.MatchedBy(func(q domain.ListQuery) bool {
			return q.Page == 2 && q.Limit == 5 && q.Search == "jane"
		})).Return([]domain.User{}, int64(0), nil).Once()

		_, err := uc.ListUsers(adminCtx(1, domain.RoleAdmin), domain.ListQuery{Page: 2, Limit: 5, Search: "jane"})
		require.NoError(t, err)
		mockUsers.AssertExpectations(t)
	})
}

func TestDashboardStats(t *testing.T) {
	mockAdmins := new(MockAdminRepo)
	mockUsers := new(MockUserRepo)
	mockResumes := new(MockResumeRepo)
	mockTemplates := new(MockTemplateRepo)
	uc := usecase.NewAdminManagementUsecase(mockAdmins, mockUsers, new(MockProfileRepo),
		mockResumes, mockTemplates, 10)

	mockAdmins.On("CountByStatus", mock.Anything).Return(domain.StatusCounts{Total: 3, Active: 2, Inactive: 1}, nil)
	mockUsers.On("CountByStatus", mock.Anything).Return(domain.StatusCounts{Total: 100, Active: 90, Inactive: 10}, nil)
	mockTemplates.On("CountByStatus", mock.Anything).Return(domain.StatusCounts{Total: 5, Active: 5}, nil)
	mockResumes.On("CountByStatus", mock.Anything).Return(domain.StatusCounts{Total: 40, Active: 35, Inactive: 5}, nil)

	stats, err := uc.DashboardStats(adminCtx(1, domain.RoleAdmin))
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.Admins.Total)
	assert.Equal(t, int64(90), stats.Users.Active)
	assert.Equal(t, int64(5), stats.Templates.Active)
	assert.Equal(t, int64(5), stats.Resumes.Inactive)

	t.Run("Should require an admin role", func(t *testing.T) {
		_, err := uc.DashboardStats(userCtx(1))
		assert.Equal(t, http.StatusForbidden, appCode(t, err).Code)
	})
}

func TestAdminAuth(t *testing.T) {
	tokens := auth.NewTokenManager(testSigningKey)

	t.Run("Should default the role to admin on register", func(t *testing.T) {
		mockAdmins := new(MockAdminRepo)
		uc := usecase.NewAdminAuthUsecase(mockAdmins, tokens)

		mockAdmins.On("GetByEmail", mock.Anything, "ops@example.com").Return(nil, pgx.ErrNoRows).Once()
		mockAdmins.On("Create", mock.Anything, mock.MatchedBy(func(a *domain.Admin) bool {
			return a.Role == domain.RoleAdmin && a.Status == domain.StatusActive
		})).Return(int64(11), nil).Once()

		result, err := uc.Register(context.Background(), domain.RegisterAdminRequest{
			Name: "Ops Admin", Email: "ops@example.com", Password: "Str0ng!Pass",
		})
		require.NoError(t, err)
		assert.Equal(t, domain.RoleAdmin, result.Role)

		claims, err := tokens.Verify(result.Token, auth.AudienceAdmins)
		require.NoError(t, err)
		assert.Equal(t, domain.RoleAdmin, claims.Role)
	})

	t.Run("Should resolve the profile from the context identity", func(t *testing.T) {
		mockAdmins := new(MockAdminRepo)
		uc := usecase.NewAdminAuthUsecase(mockAdmins, tokens)

		mockAdmins.On("GetByID", mock.Anything, int64(11)).Return(&domain.Admin{
			AdminID: 11, Name: "Ops Admin", Role: domain.RoleAdmin, Status: domain.StatusActive,
		}, nil).Once()

		admin, err := uc.Profile(adminCtx(11, domain.RoleAdmin))
		require.NoError(t, err)
		assert.Equal(t, int64(11), admin.AdminID)
	})
}

func TestUpdateAdminPartialMerge(t *testing.T) {
	mockAdmins := new(MockAdminRepo)
	uc := usecase.NewAdminManagementUsecase(mockAdmins, new(MockUserRepo), new(MockProfileRepo),
		new(MockResumeRepo), new(MockTemplateRepo), 10)

	mockAdmins.On("GetByID", mock.Anything, int64(7)).Return(&domain.Admin{
		AdminID: 7, Name: "Old Name", Email: "old@example.com", Phone: "+15550100",
		Role: domain.RoleAdmin, Status: domain.StatusActive,
	}, nil).Once()

	newName := "New Name"
	mockAdmins.On("Update", mock.Anything, mock.MatchedBy(func(a *domain.Admin) bool {
		// Only the name changes; everything else keeps its stored value.
		return a.Name == newName && a.Email == "old@example.com" &&
			a.Role == domain.RoleAdmin && a.UpdatedBy != nil && *a.UpdatedBy == 1
	})).Return(nil).Once()

	admin, err := uc.UpdateAdmin(adminCtx(1, domain.RoleSuperAdmin), 7, domain.UpdateAdminRequest{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, newName, admin.Name)
	mockAdmins.AssertExpectations(t)
}
