package usecase

import (
	"context"
	"resume-builder-backend/internal/domain"
	"resume-builder-backend/pkg/apperror"
	"resume-builder-backend/pkg/logger"
)

type templateUsecase struct {
	templateRepo domain.TemplateRepository
	resumeRepo   domain.ResumeRepository
	defaultLimit int
}

func NewTemplateUsecase(templateRepo domain.TemplateRepository, resumeRepo domain.ResumeRepository, defaultLimit int) domain.TemplateUsecase {
	return &templateUsecase{
		templateRepo: templateRepo,
		resumeRepo:   resumeRepo,
		defaultLimit: defaultLimit,
	}
}

func (u *templateUsecase) List(ctx context.Context, q domain.ListQuery) (*domain.PaginatedResult[domain.ResumeTemplate], error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	clampQuery(&q, u.defaultLimit)

	templates, total, err := u.templateRepo.List(ctx, q)
	if err != nil {
		return nil, apperror.FromPgError(err, "templates")
	}
	return paginate(templates, total, q), nil
}

func (u *templateUsecase) Get(ctx context.Context, id int64) (*domain.ResumeTemplate, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	t, err := u.templateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.FromPgError(err, "Template not found")
	}
	return t, nil
}

func (u *templateUsecase) Create(ctx context.Context, req domain.CreateTemplateRequest) (*domain.ResumeTemplate, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	taken, err := u.templateRepo.NameExists(ctx, req.TemplateName, 0)
	if err != nil {
		return nil, apperror.FromPgError(err, "template")
	}
	if taken {
		return nil, apperror.Conflict("A template with this name already exists")
	}

	status := req.Status
	if status == "" {
		status = domain.StatusActive
	}

	actor := subjectID(ctx)
	t := &domain.ResumeTemplate{
		TemplateName:        req.TemplateName,
		TemplateDescription: req.TemplateDescription,
		TemplateHTML:        req.TemplateHTML,
		TemplateCSS:         req.TemplateCSS,
		Category:            req.Category,
		Status:              status,
		AddedBy:             &actor,
	}

	id, err := u.templateRepo.Create(ctx, t)
	if err != nil {
		return nil, apperror.FromPgError(err, "template")
	}

	created, err := u.templateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.FromPgError(err, "Template not found")
	}
	return created, nil
}

func (u *templateUsecase) Update(ctx context.Context, id int64, req domain.UpdateTemplateRequest) (*domain.ResumeTemplate, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	t, err := u.templateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.FromPgError(err, "Template not found")
	}

	if req.TemplateName != nil {
		taken, err := u.templateRepo.NameExists(ctx, *req.TemplateName, id)
		if err != nil {
			return nil, apperror.FromPgError(err, "template")
		}
		if taken {
			return nil, apperror.Conflict("A template with this name already exists")
		}
		t.TemplateName = *req.TemplateName
	}
	if req.TemplateDescription != nil {
		t.TemplateDescription = *req.TemplateDescription
	}
	if req.TemplateHTML != nil {
		t.TemplateHTML = *req.TemplateHTML
	}
	if req.TemplateCSS != nil {
		t.TemplateCSS = *req.TemplateCSS
	}
	if req.Category != nil {
		t.Category = *req.Category
	}
	if req.Status != nil {
		t.Status = *req.Status
	}
	actor := subjectID(ctx)
	t.UpdatedBy = &actor

	if err := u.templateRepo.Update(ctx, t); err != nil {
		return nil, apperror.FromPgError(err, "Template not found")
	}
	return t, nil
}

// Delete hard-deletes a template, guarded by the resume usage count.
func (u *templateUsecase) Delete(ctx context.Context, id int64) error {
	if err := requireAdmin(ctx); err != nil {
		return err
	}

	if _, err := u.templateRepo.GetByID(ctx, id); err != nil {
		return apperror.FromPgError(err, "Template not found")
	}

	inUse, err := u.resumeRepo.CountByTemplate(ctx, id)
	if err != nil {
		return apperror.FromPgError(err, "template")
	}
	if inUse > 0 {
		return apperror.InUse("Template is in use by existing resumes")
	}

	if err := u.templateRepo.Delete(ctx, id); err != nil {
		return apperror.FromPgError(err, "Template not found")
	}

	logger.Log.Info("template deleted", "template_id", id, "deleted_by", subjectID(ctx))
	return nil
}

// ListActive is the user-facing catalog of templates to pick from.
func (u *templateUsecase) ListActive(ctx context.Context) ([]domain.ResumeTemplate, error) {
	templates, err := u.templateRepo.ListActive(ctx)
	if err != nil {
		return nil, apperror.FromPgError(err, "templates")
	}
	return templates, nil
}
