package usecase

import (
	"context"
	"resume-builder-backend/internal/domain"
	"resume-builder-backend/pkg/apperror"
	"resume-builder-backend/pkg/logger"
	"resume-builder-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type profileUsecase struct {
	userRepo    domain.UserRepository
	profileRepo domain.ProfileRepository
	resumeRepo  domain.ResumeRepository
	validate    *validator.Validate
}

func NewProfileUsecase(
	userRepo domain.UserRepository,
	profileRepo domain.ProfileRepository,
	resumeRepo domain.ResumeRepository,
	validate *validator.Validate,
) domain.ProfileUsecase {
	return &profileUsecase{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		resumeRepo:  resumeRepo,
		validate:    validate,
	}
}

// SubmitUserDetails is the atomic composite write: profile upsert plus
// replace of every submitted section, all inside one store transaction.
// Validation and the account existence check run before any write.
func (u *profileUsecase) SubmitUserDetails(ctx context.Context, input *domain.SubmitDetailsInput) (*domain.SubmitDetailsResult, error) {
	if err := requireOwner(ctx, input.UserID); err != nil {
		return nil, err
	}

	if err := u.validate.Struct(input); err != nil {
		return nil, apperror.Validation("Validation failed", validation.FormatValidationErrors(err))
	}

	if err := u.ensureUserExists(ctx, input.UserID); err != nil {
		return nil, err
	}

	result, err := u.profileRepo.SaveUserDetails(ctx, input, subjectID(ctx))
	if err != nil {
		logger.Log.Error("submit user details failed", "user_id", input.UserID, "error", err)
		return nil, apperror.FromPgError(err, "User not found")
	}

	logger.Log.Info("user details saved",
		"user_id", input.UserID,
		"profile_updated", result.ProfileUpdated,
		"education", result.EducationCount,
		"experience", result.ExperienceCount,
		"skills", result.SkillsCount)
	return result, nil
}

func (u *profileUsecase) UpdateProfile(ctx context.Context, userID int64, in *domain.ProfileInput) error {
	if err := requireOwner(ctx, userID); err != nil {
		return err
	}
	if in == nil {
		return apperror.BadRequest("Profile data is required")
	}
	if err := u.validate.Struct(in); err != nil {
		return apperror.Validation("Validation failed", validation.FormatValidationErrors(err))
	}
	if err := u.ensureUserExists(ctx, userID); err != nil {
		return err
	}

	if err := u.profileRepo.UpsertProfile(ctx, userID, in, subjectID(ctx)); err != nil {
		return apperror.FromPgError(err, "User not found")
	}
	return nil
}

func (u *profileUsecase) UpdateSkills(ctx context.Context, userID int64, skillIDs []int64) error {
	if err := requireOwner(ctx, userID); err != nil {
		return err
	}
	for _, id := range skillIDs {
		if id <= 0 {
			return apperror.BadRequest("Skill ids must be positive")
		}
	}
	if err := u.ensureUserExists(ctx, userID); err != nil {
		return err
	}

	if err := u.profileRepo.ReplaceSkills(ctx, userID, skillIDs); err != nil {
		return apperror.FromPgError(err, "User not found")
	}
	return nil
}

func (u *profileUsecase) UpdateEducation(ctx context.Context, userID int64, entries []domain.EducationInput) error {
	if err := requireOwner(ctx, userID); err != nil {
		return err
	}
	for _, e := range entries {
		if err := u.validate.Struct(e); err != nil {
			return apperror.Validation("Validation failed", validation.FormatValidationErrors(err))
		}
	}
	if err := u.ensureUserExists(ctx, userID); err != nil {
		return err
	}

	if err := u.profileRepo.ReplaceEducation(ctx, userID, entries); err != nil {
		return apperror.FromPgError(err, "User not found")
	}
	return nil
}

func (u *profileUsecase) UpdateExperience(ctx context.Context, userID int64, entries []domain.ExperienceInput) error {
	if err := requireOwner(ctx, userID); err != nil {
		return err
	}
	for _, e := range entries {
		if err := u.validate.Struct(e); err != nil {
			return apperror.Validation("Validation failed", validation.FormatValidationErrors(err))
		}
	}
	if err := u.ensureUserExists(ctx, userID); err != nil {
		return err
	}

	if err := u.profileRepo.ReplaceExperience(ctx, userID, entries); err != nil {
		return apperror.FromPgError(err, "User not found")
	}
	return nil
}

func (u *profileUsecase) GetUserInfo(ctx context.Context, userID int64) (*domain.UserInfo, error) {
	if err := requireOwner(ctx, userID); err != nil {
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

	return &domain.UserInfo{
		User:       *user,
		Profile:    profile,
		Education:  education,
		Experience: experience,
		Skills:     skills,
	}, nil
}

// GetResumeInfo extends the composite read with the user's resumes and a
// completeness report: five sections worth 20% each.
func (u *profileUsecase) GetResumeInfo(ctx context.Context, userID int64) (*domain.ResumeInfo, error) {
	info, err := u.GetUserInfo(ctx, userID)
	if err != nil {
		return nil, err
	}

	resumes, err := u.resumeRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperror.FromPgError(err, "resumes")
	}

	completeness := domain.Completeness{
		Account:    true,
		Profile:    info.Profile != nil,
		Education:  len(info.Education) > 0,
		Experience: len(info.Experience) > 0,
		Skills:     len(info.Skills) > 0,
	}
	for _, filled := range []bool{completeness.Account, completeness.Profile,
		completeness.Education, completeness.Experience, completeness.Skills} {
		if filled {
			completeness.Percent += 20
		}
	}

	return &domain.ResumeInfo{
		UserInfo:     *info,
		Resumes:      resumes,
		Completeness: completeness,
	}, nil
}

func (u *profileUsecase) ensureUserExists(ctx context.Context, userID int64) error {
	if _, err := u.userRepo.GetByID(ctx, userID); err != nil {
		return apperror.FromPgError(err, "User not found")
	}
	return nil
}
