package domain

import (
	"context"
	"time"
)

type User struct {
	UserID       int64      `json:"user_id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Phone        string     `json:"phone"`
	Status       string     `json:"status"`
	AddedDate    time.Time  `json:"added_date"`
	UpdatedDate  *time.Time `json:"updated_date,omitempty"`
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=100,valid_name"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Phone    string `json:"phone" binding:"omitempty,valid_phone"`
	Status   string `json:"status" binding:"omitempty,oneof=Active Inactive"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserAuthResult is the login/register response payload for user accounts.
type UserAuthResult struct {
	UserID int64  `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Token  string `json:"token"`
}

type UpdateUserStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=Active Inactive"`
}

type UserRepository interface {
	Create(ctx context.Context, user *User) (int64, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context, q ListQuery) ([]User, int64, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
	CountByStatus(ctx context.Context) (StatusCounts, error)
}

type AuthUsecase interface {
	Register(ctx context.Context, req RegisterRequest) (*UserAuthResult, error)
	Login(ctx context.Context, req LoginRequest) (*UserAuthResult, error)
}
