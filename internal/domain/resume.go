package domain

import (
	"context"
	"time"
)

type Resume struct {
	ResumeID    int64      `json:"resume_id"`
	UserID      int64      `json:"user_id"`
	ResumeName  string     `json:"resume_name"`
	TemplateID  *int64     `json:"template_id,omitempty"`
	Status      string     `json:"status"`
	AddedDate   time.Time  `json:"added_date"`
	UpdatedDate *time.Time `json:"updated_date,omitempty"`
}

type AddResumeRequest struct {
	UserID     int64  `json:"user_id" binding:"required,gt=0"`
	ResumeName string `json:"resume_name" binding:"required,min=1,max=150"`
	TemplateID *int64 `json:"template_id" binding:"omitempty,gt=0"`
}

type UpdateResumeRequest struct {
	UserID     int64   `json:"user_id" binding:"required,gt=0"`
	ResumeID   int64   `json:"resume_id" binding:"required,gt=0"`
	ResumeName *string `json:"resume_name" binding:"omitempty,min=1,max=150"`
	TemplateID *int64  `json:"template_id" binding:"omitempty,gt=0"`
}

type ResumeRepository interface {
	Create(ctx context.Context, resume *Resume) (int64, error)
	GetByID(ctx context.Context, id int64) (*Resume, error)
	ListByUser(ctx context.Context, userID int64) ([]Resume, error)
	Update(ctx context.Context, resume *Resume) error
	SoftDelete(ctx context.Context, id int64) error
	// NameExists checks per-user name uniqueness case-insensitively,
	// ignoring excludeID so renames do not collide with themselves.
	NameExists(ctx context.Context, userID int64, name string, excludeID int64) (bool, error)
	CountByTemplate(ctx context.Context, templateID int64) (int64, error)
	CountByStatus(ctx context.Context) (StatusCounts, error)
}

type ResumeUsecase interface {
	Add(ctx context.Context, req AddResumeRequest) (*Resume, error)
	Update(ctx context.Context, req UpdateResumeRequest) (*Resume, error)
	ListByUser(ctx context.Context, userID int64) ([]Resume, error)
	Delete(ctx context.Context, userID, resumeID int64) error
}
