package usecase

import (
	"context"
	"net/http"
	"resume-builder-backend/internal/domain"
	"resume-builder-backend/pkg/apperror"
	"resume-builder-backend/pkg/auth"
	"resume-builder-backend/pkg/logger"
)

type adminManagementUsecase struct {
	adminRepo    domain.AdminRepository
	userRepo     domain.UserRepository
	profileRepo  domain.ProfileRepository
	resumeRepo   domain.ResumeRepository
	templateRepo domain.TemplateRepository
	defaultLimit int
}

func NewAdminManagementUsecase(
	adminRepo domain.AdminRepository,
	userRepo domain.UserRepository,
	profileRepo domain.ProfileRepository,
	resumeRepo domain.ResumeRepository,
	templateRepo domain.TemplateRepository,
	defaultLimit int,
) domain.AdminManagementUsecase {
	return &adminManagementUsecase{
		adminRepo:    adminRepo,
		userRepo:     userRepo,
		profileRepo:  profileRepo,
		resumeRepo:   resumeRepo,
		templateRepo: templateRepo,
		defaultLimit: defaultLimit,
	}
}

// ============================================================================
// Admin accounts (super admin only)
// ============================================================================

func (u *adminManagementUsecase) ListAdmins(ctx context.Context, q domain.ListQuery) (*domain.PaginatedResult[domain.Admin], error) {
	if err := requireSuperAdmin(ctx); err != nil {
		return nil, err
	}
	clampQuery(&q, u.defaultLimit)

	admins, total, err := u.adminRepo.List(ctx, q)
	if err != nil {
		return nil, apperror.FromPgError(err, "admins")
	}
	return paginate(admins, total, q), nil
}

func (u *adminManagementUsecase) GetAdmin(ctx context.Context, id int64) (*domain.Admin, error) {
	if err := requireSuperAdmin(ctx); err != nil {
		return nil, err
	}

	admin, err := u.adminRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.FromPgError(err, "Admin not found")
	}
	return admin, nil
}

func (u *adminManagementUsecase) CreateAdmin(ctx context.Context, req domain.RegisterAdminRequest) (*domain.Admin, error) {
	if err := requireSuperAdmin(ctx); err != nil {
		return nil, err
	}
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

	actor := subjectID(ctx)
	admin := &domain.Admin{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Phone:        req.Phone,
		Role:         role,
		Status:       domain.StatusActive,
		AddedBy:      &actor,
	}

	id, err := u.adminRepo.Create(ctx, admin)
	if err != nil {
		return nil, apperror.FromPgError(err, "admin")
	}

	logger.Log.Info("admin created", "admin_id", id, "created_by", actor)

	created, err := u.adminRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.FromPgError(err, "Admin not found")
	}
	return created, nil
}

func (u *adminManagementUsecase) UpdateAdmin(ctx context.Context, id int64, req domain.UpdateAdminRequest) (*domain.Admin, error) {
	if err := requireSuperAdmin(ctx); err != nil {
		return nil, err
	}

	admin, err := u.adminRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.FromPgError(err, "Admin not found")
	}

	// Partial merge: absent fields keep the stored values.
	if req.Name != nil {
		admin.Name = *req.Name
	}
	if req.Email != nil {
		admin.Email = *req.Email
	}
	if req.Phone != nil {
		admin.Phone = *req.Phone
	}
	if req.Role != nil {
		admin.Role = *req.Role
	}
	if req.Status != nil {
		admin.Status = *req.Status
	}
	actor := subjectID(ctx)
	admin.UpdatedBy = &actor

	if err := u.adminRepo.Update(ctx, admin); err != nil {
		return nil, apperror.FromPgError(err, "Admin not found")
	}
	return admin, nil
}

func (u *adminManagementUsecase) DeleteAdmin(ctx context.Context, id int64) error {
	if err := requireSuperAdmin(ctx); err != nil {
		return err
	}

	actor := subjectID(ctx)
	if actor == id {
		return apperror.Forbidden("Admins cannot delete their own account")
	}

	if err := u.adminRepo.SoftDelete(ctx, id, actor); err != nil {
		return apperror.FromPgError(err, "Admin not found")
	}

	logger.Log.Info("admin deactivated", "admin_id", id, "deleted_by", actor)
	return nil
}

// ============================================================================
// User accounts
// ============================================================================

func (u *adminManagementUsecase) ListUsers(ctx context.Context, q domain.ListQuery) (*domain.PaginatedResult[domain.User], error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	clampQuery(&q, u.defaultLimit)

	users, total, err := u.userRepo.List(ctx, q)
	if err != nil {
		return nil, apperror.FromPgError(err, "users")
	}
	return paginate(users, total, q), nil
}

// GetUserDetails assembles the full admin view of one user: account row,
// profile, education, experience, skills and resumes.
func (u *adminManagementUsecase) GetUserDetails(ctx context.Context, userID int64) (*domain.UserDetails, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, apperror.FromPgError(err, "User not found")
	}

	profile, err := u.profileRepo.GetProfile(ctx, userID)
	if err != nil {
		return nil, apperror.FromPgError(err, "profile")
	}
	education, err := u.profileRepo.ListEducation(ctx, userID)
	if err != nil {
		return nil, apperror.FromPgError(err, "education")
	}
	experience, err := u.profileRepo.ListExperience(ctx, userID)
	if err != nil {
		return nil, apperror.FromPgError(err, "experience")
	}
	skills, err := u.profileRepo.ListSkills(ctx, userID)
	if err != nil {
		return nil, apperror.FromPgError(err, "skills")
	}
	resumes, err := u.resumeRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperror.FromPgError(err, "resumes")
	}

	return &domain.UserDetails{
		User:       *user,
		Profile:    profile,
		Education:  education,
		Experience: experience,
		Skills:     skills,
		Resumes:    resumes,
	}, nil
}

func (u *adminManagementUsecase) UpdateUserStatus(ctx context.Context, userID int64, status string) error {
	if err := requireAdmin(ctx); err != nil {
		return err
	}

	if err := u.userRepo.UpdateStatus(ctx, userID, status); err != nil {
		return apperror.FromPgError(err, "User not found")
	}

	logger.Log.Info("user status updated", "user_id", userID, "status", status, "updated_by", subjectID(ctx))
	return nil
}

func (u *adminManagementUsecase) DeleteUser(ctx context.Context, userID int64) error {
	if err := requireAdmin(ctx); err != nil {
		return err
	}

	if err := u.userRepo.UpdateStatus(ctx, userID, domain.StatusInactive); err != nil {
		return apperror.FromPgError(err, "User not found")
	}

	logger.Log.Info("user deactivated", "user_id", userID, "deleted_by", subjectID(ctx))
	return nil
}

// ============================================================================
// Dashboard
// ============================================================================

func (u *adminManagementUsecase) DashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	stats := &domain.DashboardStats{}
	var err error

	if stats.Admins, err = u.adminRepo.CountByStatus(ctx); err != nil {
		return nil, apperror.FromPgError(err, "admin stats")
	}
	if stats.Users, err = u.userRepo.CountByStatus(ctx); err != nil {
		return nil, apperror.FromPgError(err, "user stats")
	}
	if stats.Templates, err = u.templateRepo.CountByStatus(ctx); err != nil {
		return nil, apperror.FromPgError(err, "template stats")
	}
	if stats.Resumes, err = u.resumeRepo.CountByStatus(ctx); err != nil {
		return nil, apperror.FromPgError(err, "resume stats")
	}

	return stats, nil
}
