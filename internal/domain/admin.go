package domain

import (
	"context"
	"time"
)

type Admin struct {
	AdminID      int64      `json:"admin_id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Phone        string     `json:"phone"`
	Role         string     `json:"role"`
	Status       string     `json:"status"`
	AddedDate    time.Time  `json:"added_date"`
	UpdatedDate  *time.Time `json:"updated_date,omitempty"`
	AddedBy      *int64     `json:"added_by,omitempty"`
	UpdatedBy    *int64     `json:"updated_by,omitempty"`
}

type RegisterAdminRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=100,valid_name"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Phone    string `json:"phone" binding:"omitempty,valid_phone"`
	Role     string `json:"role" binding:"omitempty,oneof=admin super_admin"`
}

// UpdateAdminRequest carries a partial update. Nil pointers leave the
// stored value untouched.
type UpdateAdminRequest struct {
	Name   *string `json:"name" binding:"omitempty,min=2,max=100,valid_name"`
	Email  *string `json:"email" binding:"omitempty,email"`
	Phone  *string `json:"phone" binding:"omitempty,valid_phone"`
	Role   *string `json:"role" binding:"omitempty,oneof=admin super_admin"`
	Status *string `json:"status" binding:"omitempty,oneof=Active Inactive"`
}

// AdminAuthResult is the login/register response payload for admin accounts.
type AdminAuthResult struct {
	AdminID int64  `json:"admin_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	Token   string `json:"token"`
}

// UserDetails is the admin view of a user: the account joined with
// everything the user has filled in.
type UserDetails struct {
	User       User         `json:"user"`
	Profile    *Profile     `json:"profile"`
	Education  []Education  `json:"education"`
	Experience []Experience `json:"experience"`
	Skills     []Skill      `json:"skills"`
	Resumes    []Resume     `json:"resumes"`
}

type AdminRepository interface {
	Create(ctx context.Context, admin *Admin) (int64, error)
	// GetByID resolves Active admins only; Inactive ids report NotFound.
	GetByID(ctx context.Context, id int64) (*Admin, error)
	GetByEmail(ctx context.Context, email string) (*Admin, error)
	List(ctx context.Context, q ListQuery) ([]Admin, int64, error)
	Update(ctx context.Context, admin *Admin) error
	SoftDelete(ctx context.Context, id, deletedBy int64) error
	CountByStatus(ctx context.Context) (StatusCounts, error)
}

type AdminAuthUsecase interface {
	Register(ctx context.Context, req RegisterAdminRequest) (*AdminAuthResult, error)
	Login(ctx context.Context, req LoginRequest) (*AdminAuthResult, error)
	Profile(ctx context.Context) (*Admin, error)
	Stats(ctx context.Context) (*StatusCounts, error)
}

type AdminManagementUsecase interface {
	ListAdmins(ctx context.Context, q ListQuery) (*PaginatedResult[Admin], error)
	GetAdmin(ctx context.Context, id int64) (*Admin, error)
	CreateAdmin(ctx context.Context, req RegisterAdminRequest) (*Admin, error)
	UpdateAdmin(ctx context.Context, id int64, req UpdateAdminRequest) (*Admin, error)
	DeleteAdmin(ctx context.Context, id int64) error

	ListUsers(ctx context.Context, q ListQuery) (*PaginatedResult[User], error)
	GetUserDetails(ctx context.Context, userID int64) (*UserDetails, error)
	UpdateUserStatus(ctx context.Context, userID int64, status string) error
	DeleteUser(ctx context.Context, userID int64) error

	DashboardStats(ctx context.Context) (*DashboardStats, error)
}
