package postgres

import (
	"context"
	"fmt"
	"resume-builder-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type profileRepo struct {
	db    *pgxpool.Pool
	begin func(ctx context.Context) (pgx.Tx, error)
}

func NewProfileRepository(db *pgxpool.Pool) domain.ProfileRepository {
	return &profileRepo{db: db, begin: db.Begin}
}

// ============================================================================
// Composite write (atomic transaction)
// ============================================================================

// SaveUserDetails replaces the submitted sections inside one transaction.
// Sections with a nil slice are left untouched; an empty slice clears the
// section. The profile is upserted when present. Any failure rolls the
// whole submission back.
func (r *profileRepo) SaveUserDetails(ctx context.Context, input *domain.SubmitDetailsInput, actorID int64) (*domain.SubmitDetailsResult, error) {
	tx, err := r.begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) // Rollback if not committed

	result := &domain.SubmitDetailsResult{UserID: input.UserID}

	if input.Profile != nil {
		if err := upsertProfile(ctx, tx, input.UserID, input.Profile, actorID); err != nil {
			return nil, err
		}
		result.ProfileUpdated = true
	}

	if input.Education != nil {
		if err := replaceEducation(ctx, tx, input.UserID, input.Education); err != nil {
			return nil, err
		}
		result.EducationCount = len(input.Education)
	}

	if input.Experience != nil {
		if err := replaceExperience(ctx, tx, input.UserID, input.Experience); err != nil {
			return nil, err
		}
		result.ExperienceCount = len(input.Experience)
	}

	if input.SkillIDs != nil {
		if err := replaceSkills(ctx, tx, input.UserID, input.SkillIDs); err != nil {
			return nil, err
		}
		result.SkillsCount = len(input.SkillIDs)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return result, nil
}

func upsertProfile(ctx context.Context, tx pgx.Tx, userID int64, in *domain.ProfileInput, actorID int64) error {
	var exists bool
	err := tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM user_profile WHERE user_id = $1)`, userID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check profile existence: %w", err)
	}

	if exists {
		_, err = tx.Exec(ctx, `
			UPDATE user_profile
			SET date_of_birth = NULLIF($2, '')::date,
				gender = $3,
				current_salary = $4,
				is_annually = $5,
				country_id = NULLIF($6, 0),
				state_id = NULLIF($7, 0),
				city_id = NULLIF($8, 0),
				zipcode = $9,
				address = $10,
				updated_date = NOW(),
				updated_by = $11
			WHERE user_id = $1
		`, userID, in.DateOfBirth, in.Gender, in.CurrentSalary, in.IsAnnually,
			in.CountryID, in.StateID, in.CityID, in.Zipcode, in.Address, actorID)
		if err != nil {
			return fmt.Errorf("failed to update profile: %w", err)
		}
		return nil
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO user_profile (
			user_id, date_of_birth, gender, current_salary, is_annually,
			country_id, state_id, city_id, zipcode, address, added_date, added_by
		)
		VALUES ($1, NULLIF($2, '')::date, $3, $4, $5, NULLIF($6, 0), NULLIF($7, 0), NULLIF($8, 0), $9, $10, NOW(), $11)
	`, userID, in.DateOfBirth, in.Gender, in.CurrentSalary, in.IsAnnually,
		in.CountryID, in.StateID, in.CityID, in.Zipcode, in.Address, actorID)
	if err != nil {
		return fmt.Errorf("failed to insert profile: %w", err)
	}
	return nil
}

func replaceEducation(ctx context.Context, tx pgx.Tx, userID int64, entries []domain.EducationInput) error {
	_, err := tx.Exec(ctx, `DELETE FROM user_education WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("failed to clear existing education: %w", err)
	}

	for _, e := range entries {
		_, err = tx.Exec(ctx, `
			INSERT INTO user_education (
				user_id, degree_name, institute_name, start_date, end_date,
				percentage, cgpa, added_date
			)
			VALUES ($1, $2, $3, NULLIF($4, '')::date, NULLIF($5, '')::date, $6, $7, NOW())
		`, userID, e.DegreeName, e.InstituteName, e.StartDate, e.EndDate, e.Percentage, e.CGPA)
		if err != nil {
			return fmt.Errorf("failed to insert education %q: %w", e.DegreeName, err)
		}
	}
	return nil
}

func replaceExperience(ctx context.Context, tx pgx.Tx, userID int64, entries []domain.ExperienceInput) error {
	_, err := tx.Exec(ctx, `DELETE FROM user_experience WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("failed to clear existing experience: %w", err)
	}

	for _, e := range entries {
		_, err = tx.Exec(ctx, `
			INSERT INTO user_experience (
				user_id, company_name, job_title, is_current_job, start_date, end_date,
				description, country_id, state_id, city_id, added_date
			)
			VALUES ($1, $2, $3, $4, NULLIF($5, '')::date, NULLIF($6, '')::date, $7,
				NULLIF($8, 0), NULLIF($9, 0), NULLIF($10, 0), NOW())
		`, userID, e.CompanyName, e.JobTitle, e.IsCurrentJob, e.StartDate, e.EndDate,
			e.Description, e.CountryID, e.StateID, e.CityID)
		if err != nil {
			return fmt.Errorf("failed to insert experience %q: %w", e.CompanyName, err)
		}
	}
	return nil
}

func replaceSkills(ctx context.Context, tx pgx.Tx, userID int64, skillIDs []int64) error {
	_, err := tx.Exec(ctx, `DELETE FROM user_skill WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("failed to clear existing skills: %w", err)
	}

	for _, skillID := range skillIDs {
		_, err = tx.Exec(ctx, `
			INSERT INTO user_skill (user_id, skill_id, added_date)
			VALUES ($1, $2, NOW())
		`, userID, skillID)
		if err != nil {
			return fmt.Errorf("failed to insert skill %d: %w", skillID, err)
		}
	}
	return nil
}

// ============================================================================
// Single-section writes
// ============================================================================

func (r *profileRepo) UpsertProfile(ctx context.Context, userID int64, in *domain.ProfileInput, actorID int64) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		return upsertProfile(ctx, tx, userID, in, actorID)
	})
}

func (r *profileRepo) ReplaceEducation(ctx context.Context, userID int64, entries []domain.EducationInput) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		return replaceEducation(ctx, tx, userID, entries)
	})
}

func (r *profileRepo) ReplaceExperience(ctx context.Context, userID int64, entries []domain.ExperienceInput) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		return replaceExperience(ctx, tx, userID, entries)
	})
}

func (r *profileRepo) ReplaceSkills(ctx context.Context, userID int64, skillIDs []int64) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		return replaceSkills(ctx, tx, userID, skillIDs)
	})
}

// inTx wraps a single-section write so the delete and inserts stay atomic.
func (r *profileRepo) inTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// ============================================================================
// Reads
// ============================================================================

// GetProfile returns (nil, nil) when the user has not filled a profile yet.
func (r *profileRepo) GetProfile(ctx context.Context, userID int64) (*domain.Profile, error) {
	query := `
		SELECT profile_id, user_id, COALESCE(date_of_birth::text, ''), COALESCE(gender, ''),
			COALESCE(current_salary, 0), COALESCE(is_annually, false),
			COALESCE(country_id, 0), COALESCE(state_id, 0), COALESCE(city_id, 0),
			COALESCE(zipcode, ''), COALESCE(address, ''), added_date, updated_date
		FROM user_profile
		WHERE user_id = $1
	`

	var p domain.Profile
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&p.ProfileID, &p.UserID, &p.DateOfBirth, &p.Gender,
		&p.CurrentSalary, &p.IsAnnually,
		&p.CountryID, &p.StateID, &p.CityID,
		&p.Zipcode, &p.Address, &p.AddedDate, &p.UpdatedDate)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &p, nil
}

func (r *profileRepo) ListEducation(ctx context.Context, userID int64) ([]domain.Education, error) {
	query := `
		SELECT education_id, user_id, degree_name, institute_name,
			COALESCE(start_date::text, ''), COALESCE(end_date::text, ''),
			COALESCE(percentage, 0), COALESCE(cgpa, 0), added_date
		FROM user_education
		WHERE user_id = $1
		ORDER BY start_date DESC NULLS LAST, education_id
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list education: %w", err)
	}
	defer rows.Close()

	entries := []domain.Education{}
	for rows.Next() {
		var e domain.Education
		if err := rows.Scan(&e.EducationID, &e.UserID, &e.DegreeName, &e.InstituteName,
			&e.StartDate, &e.EndDate, &e.Percentage, &e.CGPA, &e.AddedDate); err != nil {
			return nil, fmt.Errorf("failed to scan education row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating education rows: %w", err)
	}
	return entries, nil
}

func (r *profileRepo) ListExperience(ctx context.Context, userID int64) ([]domain.Experience, error) {
	query := `
		SELECT experience_id, user_id, company_name, job_title, COALESCE(is_current_job, false),
			COALESCE(start_date::text, ''), COALESCE(end_date::text, ''),
			COALESCE(description, ''), COALESCE(country_id, 0), COALESCE(state_id, 0),
			COALESCE(city_id, 0), added_date
		FROM user_experience
		WHERE user_id = $1
		ORDER BY is_current_job DESC, start_date DESC NULLS LAST, experience_id
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list experience: %w", err)
	}
	defer rows.Close()

	entries := []domain.Experience{}
	for rows.Next() {
		var e domain.Experience
		if err := rows.Scan(&e.ExperienceID, &e.UserID, &e.CompanyName, &e.JobTitle, &e.IsCurrentJob,
			&e.StartDate, &e.EndDate, &e.Description, &e.CountryID, &e.StateID,
			&e.CityID, &e.AddedDate); err != nil {
			return nil, fmt.Errorf("failed to scan experience row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating experience rows: %w", err)
	}
	return entries, nil
}

func (r *profileRepo) ListSkills(ctx context.Context, userID int64) ([]domain.Skill, error) {
	query := `
		SELECT s.skill_id, s.skill_name, COALESCE(s.skill_code, '')
		FROM user_skill us
		JOIN sys_skill s ON s.skill_id = us.skill_id
		WHERE us.user_id = $1
		ORDER BY s.skill_name
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}
	defer rows.Close()

	skills := []domain.Skill{}
	for rows.Next() {
		var s domain.Skill
		if err := rows.Scan(&s.SkillID, &s.SkillName, &s.SkillCode); err != nil {
			return nil, fmt.Errorf("failed to scan skill row: %w", err)
		}
		skills = append(skills, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating skill rows: %w", err)
	}
	return skills, nil
}
