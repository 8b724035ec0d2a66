package domain

import (
	"context"
	"time"
)

type ResumeTemplate struct {
	TemplateID          int64      `json:"template_id"`
	TemplateName        string     `json:"template_name"`
	TemplateDescription string     `json:"template_description"`
	TemplateHTML        string     `json:"template_html"`
	TemplateCSS         string     `json:"template_css"`
	Category            string     `json:"category"`
	Status              string     `json:"status"`
	AddedDate           time.Time  `json:"added_date"`
	UpdatedDate         *time.Time `json:"updated_date,omitempty"`
	AddedBy             *int64     `json:"added_by,omitempty"`
	UpdatedBy           *int64     `json:"updated_by,omitempty"`
}

type CreateTemplateRequest struct {
	TemplateName        string `json:"template_name" binding:"required,min=2,max=150"`
	TemplateDescription string `json:"template_description" binding:"omitempty,max=500"`
	TemplateHTML        string `json:"template_html" binding:"required"`
	TemplateCSS         string `json:"template_css" binding:"omitempty"`
	Category            string `json:"category" binding:"omitempty,max=100"`
	Status              string `json:"status" binding:"omitempty,oneof=Active Inactive"`
}

type UpdateTemplateRequest struct {
	TemplateName        *string `json:"template_name" binding:"omitempty,min=2,max=150"`
	TemplateDescription *string `json:"template_description" binding:"omitempty,max=500"`
	TemplateHTML        *string `json:"template_html" binding:"omitempty"`
	TemplateCSS         *string `json:"template_css" binding:"omitempty"`
	Category            *string `json:"category" binding:"omitempty,max=100"`
	Status              *string `json:"status" binding:"omitempty,oneof=Active Inactive"`
}

type TemplateRepository interface {
	Create(ctx context.Context, t *ResumeTemplate) (int64, error)
	GetByID(ctx context.Context, id int64) (*ResumeTemplate, error)
	List(ctx context.Context, q ListQuery) ([]ResumeTemplate, int64, error)
	ListActive(ctx context.Context) ([]ResumeTemplate, error)
	Update(ctx context.Context, t *ResumeTemplate) error
	// Delete removes the row. The usage guard lives in the usecase.
	Delete(ctx context.Context, id int64) error
	NameExists(ctx context.Context, name string, excludeID int64) (bool, error)
	CountByStatus(ctx context.Context) (StatusCounts, error)
}

type TemplateUsecase interface {
	List(ctx context.Context, q ListQuery) (*PaginatedResult[ResumeTemplate], error)
	Get(ctx context.Context, id int64) (*ResumeTemplate, error)
	Create(ctx context.Context, req CreateTemplateRequest) (*ResumeTemplate, error)
	Update(ctx context.Context, id int64, req UpdateTemplateRequest) (*ResumeTemplate, error)
	Delete(ctx context.Context, id int64) error
	ListActive(ctx context.Context) ([]ResumeTemplate, error)
}
