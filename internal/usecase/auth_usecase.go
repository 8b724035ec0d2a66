package usecase

import (
	"context"
	"net/http"
	"resume-builder-backend/internal/domain"
	"resume-builder-backend/pkg/apperror"
	"resume-builder-backend/pkg/auth"
	"resume-builder-backend/pkg/logger"
)

type authUsecase struct {
	userRepo domain.UserRepository
	tokens   *auth.TokenManager
}

func NewAuthUsecase(userRepo domain.UserRepository, tokens *auth.TokenManager) domain.AuthUsecase {
	return &authUsecase{userRepo: userRepo, tokens: tokens}
}

func (u *authUsecase) Register(ctx context.Context, req domain.RegisterRequest) (*domain.UserAuthResult, error) {
	if err := auth.ValidatePasswordStrength(req.Password); err != nil {
		return nil, err
	}

	existing, err := u.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if appErr := apperror.FromPgError(err, "user"); appErr.Code != http.StatusNotFound {
			return nil, appErr
		}
	}
	if existing != nil {
		return nil, apperror.Conflict("Email already registered")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	status := req.Status
	if status == "" {
		status = domain.StatusActive
	}

	user := &domain.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Phone:        req.Phone,
		Status:       status,
	}

	id, err := u.userRepo.Create(ctx, user)
	if err != nil {
		// The unique index backs up the pre-check under concurrent registrations.
		return nil, apperror.FromPgError(err, "user")
	}

	token, err := u.tokens.Generate(formatID(id), req.Email, req.Name, "", auth.AudienceUsers)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	logger.Log.Info("user registered", "user_id", id)
	return &domain.UserAuthResult{
		UserID: id,
		Name:   req.Name,
		Email:  req.Email,
		Token:  token,
	}, nil
}

// Login authenticates a user. Unknown email and wrong password produce the
// identical error; the dummy compare keeps the two paths at the same cost
// so account existence does not leak through timing.
func (u *authUsecase) Login(ctx context.Context, req domain.LoginRequest) (*domain.UserAuthResult, error) {
	user, err := u.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if appErr := apperror.FromPgError(err, "user"); appErr.Code != http.StatusNotFound {
			return nil, appErr
		}
		auth.VerifyDummy(req.Password)
		return nil, invalidCredentials()
	}

	if !auth.VerifyPassword(user.PasswordHash, req.Password) {
		return nil, invalidCredentials()
	}

	// Only reveal the disabled state once the caller has proven the password.
	if user.Status != domain.StatusActive {
		return nil, accountDisabled()
	}

	token, err := u.tokens.Generate(formatID(user.UserID), user.Email, user.Name, "", auth.AudienceUsers)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &domain.UserAuthResult{
		UserID: user.UserID,
		Name:   user.Name,
		Email:  user.Email,
		Token:  token,
	}, nil
}

func invalidCredentials() *apperror.AppError {
	return apperror.New(http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password", nil)
}

func accountDisabled() *apperror.AppError {
	return apperror.New(http.StatusForbidden, "ACCOUNT_DISABLED", "Account is disabled", nil)
}
