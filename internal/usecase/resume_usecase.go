package usecase

import (
	"context"
	"resume-builder-backend/internal/domain"
	"resume-builder-backend/pkg/apperror"
)

type resumeUsecase struct {
	userRepo   domain.UserRepository
	resumeRepo domain.ResumeRepository
}

func NewResumeUsecase(userRepo domain.UserRepository, resumeRepo domain.ResumeRepository) domain.ResumeUsecase {
	return &resumeUsecase{userRepo: userRepo, resumeRepo: resumeRepo}
}

func (u *resumeUsecase) Add(ctx context.Context, req domain.AddResumeRequest) (*domain.Resume, error) {
	if err := requireOwner(ctx, req.UserID); err != nil {
		return nil, err
	}

	if _, err := u.userRepo.GetByID(ctx, req.UserID); err != nil {
		return nil, apperror.FromPgError(err, "User not found")
	}

	taken, err := u.resumeRepo.NameExists(ctx, req.UserID, req.ResumeName, 0)
	if err != nil {
		return nil, apperror.FromPgError(err, "resume")
	}
	if taken {
		return nil, apperror.Conflict("A resume with this name already exists")
	}

	resume := &domain.Resume{
		UserID:     req.UserID,
		ResumeName: req.ResumeName,
		TemplateID: req.TemplateID,
		Status:     domain.StatusActive,
	}

	id, err := u.resumeRepo.Create(ctx, resume)
	if err != nil {
		// FK violation on template_id surfaces as InvalidReference.
		return nil, apperror.FromPgError(err, "resume")
	}

	created, err := u.resumeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.FromPgError(err, "Resume not found")
	}
	return created, nil
}

func (u *resumeUsecase) Update(ctx context.Context, req domain.UpdateResumeRequest) (*domain.Resume, error) {
	if err := requireOwner(ctx, req.UserID); err != nil {
		return nil, err
	}

	resume, err := u.resumeRepo.GetByID(ctx, req.ResumeID)
	if err != nil {
		return nil, apperror.FromPgError(err, "Resume not found")
	}
	if resume.UserID != req.UserID {
		return nil, apperror.Forbidden("You may only access your own records")
	}

	if req.ResumeName != nil {
		taken, err := u.resumeRepo.NameExists(ctx, req.UserID, *req.ResumeName, req.ResumeID)
		if err != nil {
			return nil, apperror.FromPgError(err, "resume")
		}
		if taken {
			return nil, apperror.Conflict("A resume with this name already exists")
		}
		resume.ResumeName = *req.ResumeName
	}
	if req.TemplateID != nil {
		resume.TemplateID = req.TemplateID
	}

	if err := u.resumeRepo.Update(ctx, resume); err != nil {
		return nil, apperror.FromPgError(err, "Resume not found")
	}
	return resume, nil
}

func (u *resumeUsecase) ListByUser(ctx context.Context, userID int64) ([]domain.Resume, error) {
	if err := requireOwner(ctx, userID); err != nil {
		return nil, err
	}

	resumes, err := u.resumeRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperror.FromPgError(err, "resumes")
	}
	return resumes, nil
}

func (u *resumeUsecase) Delete(ctx context.Context, userID, resumeID int64) error {
	if err := requireOwner(ctx, userID); err != nil {
		return err
	}

	resume, err := u.resumeRepo.GetByID(ctx, resumeID)
	if err != nil {
		return apperror.FromPgError(err, "Resume not found")
	}
	if resume.UserID != userID {
		return apperror.Forbidden("You may only access your own records")
	}

	if err := u.resumeRepo.SoftDelete(ctx, resumeID); err != nil {
		return apperror.FromPgError(err, "Resume not found")
	}
	return nil
}
