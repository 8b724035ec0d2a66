package usecase

import (
	"context"
	"net/http"
	"resume-builder-backend/internal/domain"
	"resume-builder-backend/pkg/apperror"
	"resume-builder-backend/pkg/auth"
	"resume-builder-backend/pkg/logger"
)

type adminAuthUsecase struct {
	adminRepo domain.AdminRepository
	tokens    *auth.TokenManager
}

func NewAdminAuthUsecase(adminRepo domain.AdminRepository, tokens *auth.TokenManager) domain.AdminAuthUsecase {
	return &adminAuthUsecase{adminRepo: adminRepo, tokens: tokens}
}

func (u *adminAuthUsecase) Register(ctx context.Context, req domain.RegisterAdminRequest) (*domain.AdminAuthResult, error) {
	if err := auth.ValidatePasswordStrength(req.Password); err != nil {
		return nil, err
	}

	existing, err := u.adminRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if appErr := apperror.FromPgError(err, "admin"); appErr.Code != http.StatusNotFound {
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

	role := req.Role
	if role == "" {
		role = domain.RoleAdmin
	}

	admin := &domain.Admin{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Phone:        req.Phone,
		Role:         role,
		Status:       domain.StatusActive,
	}

	id, err := u.adminRepo.Create(ctx, admin)
	if err != nil {
		return nil, apperror.FromPgError(err, "admin")
	}

	token, err := u.tokens.Generate(formatID(id), req.Email, req.Name, role, auth.AudienceAdmins)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	logger.Log.Info("admin registered", "admin_id", id, "role", role)
	return &domain.AdminAuthResult{
		AdminID: id,
		Name:    req.Name,
		Email:   req.Email,
		Role:    role,
		Token:   token,
	}, nil
}

func (u *adminAuthUsecase) Login(ctx context.Context, req domain.LoginRequest) (*domain.AdminAuthResult, error) {
	admin, err := u.adminRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if appErr := apperror.FromPgError(err, "admin"); appErr.Code != http.StatusNotFound {
			return nil, appErr
		}
		auth.VerifyDummy(req.Password)
		return nil, invalidCredentials()
	}

	if !auth.VerifyPassword(admin.PasswordHash, req.Password) {
		return nil, invalidCredentials()
	}

	if admin.Status != domain.StatusActive {
		return nil, accountDisabled()
	}

	token, err := u.tokens.Generate(formatID(admin.AdminID), admin.Email, admin.Name, admin.Role, auth.AudienceAdmins)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &domain.AdminAuthResult{
		AdminID: admin.AdminID,
		Name:    admin.Name,
		Email:   admin.Email,
		Role:    admin.Role,
		Token:   token,
	}, nil
}

// Profile returns the calling admin's own record.
func (u *adminAuthUsecase) Profile(ctx context.Context) (*domain.Admin, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	admin, err := u.adminRepo.GetByID(ctx, subjectID(ctx))
	if err != nil {
		return nil, apperror.FromPgError(err, "Admin not found")
	}
	return admin, nil
}

func (u *adminAuthUsecase) Stats(ctx context.Context) (*domain.StatusCounts, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	counts, err := u.adminRepo.CountByStatus(ctx)
	if err != nil {
		return nil, apperror.FromPgError(err, "admin stats")
	}
	return &counts, nil
}
