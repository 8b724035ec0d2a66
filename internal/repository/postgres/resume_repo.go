package postgres

import (
	"context"
	"fmt"
	"resume-builder-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type resumeRepo struct {
	db *pgxpool.Pool
}

func NewResumeRepository(db *pgxpool.Pool) domain.ResumeRepository {
	return &resumeRepo{db: db}
}

const resumeColumns = `resume_id, user_id, resume_name, template_id, status, added_date, updated_date`

func scanResume(row pgx.Row) (*domain.Resume, error) {
	var res domain.Resume
	err := row.Scan(&res.ResumeID, &res.UserID, &res.ResumeName, &res.TemplateID,
		&res.Status, &res.AddedDate, &res.UpdatedDate)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *resumeRepo) Create(ctx context.Context, resume *domain.Resume) (int64, error) {
	query := `
		INSERT INTO sys_user_resume (user_id, resume_name, template_id, status, added_date)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING resume_id
	`

	var id int64
	err := r.db.QueryRow(ctx, query,
		resume.UserID, resume.ResumeName, resume.TemplateID, resume.Status,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create resume: %w", err)
	}
	return id, nil
}

func (r *resumeRepo) GetByID(ctx context.Context, id int64) (*domain.Resume, error) {
	query := `SELECT ` + resumeColumns + ` FROM sys_user_resume WHERE resume_id = $1`

	resume, err := scanResume(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("failed to get resume by id: %w", err)
	}
	return resume, nil
}

// ListByUser returns the user's Active resumes, newest first.
func (r *resumeRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Resume, error) {
	query := `SELECT ` + resumeColumns + ` FROM sys_user_resume
		WHERE user_id = $1 AND status = 'Active'
		ORDER BY added_date DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	defer rows.Close()

	resumes := []domain.Resume{}
	for rows.Next() {
		resume, err := scanResume(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan resume row: %w", err)
		}
		resumes = append(resumes, *resume)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating resume rows: %w", err)
	}
	return resumes, nil
}

func (r *resumeRepo) Update(ctx context.Context, resume *domain.Resume) error {
	query := `
		UPDATE sys_user_resume
		SET resume_name = $2, template_id = $3, updated_date = NOW()
		WHERE resume_id = $1
	`

	tag, err := r.db.Exec(ctx, query, resume.ResumeID, resume.ResumeName, resume.TemplateID)
	if err != nil {
		return fmt.Errorf("failed to update resume: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *resumeRepo) SoftDelete(ctx context.Context, id int64) error {
	query := `
		UPDATE sys_user_resume
		SET status = 'Inactive', updated_date = NOW()
		WHERE resume_id = $1 AND status = 'Active'
	`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete resume: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *resumeRepo) NameExists(ctx context.Context, userID int64, name string, excludeID int64) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM sys_user_resume
			WHERE user_id = $1 AND LOWER(resume_name) = LOWER($2)
				AND resume_id <> $3 AND status = 'Active'
		)
	`

	var exists bool
	if err := r.db.QueryRow(ctx, query, userID, name, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check resume name: %w", err)
	}
	return exists, nil
}

func (r *resumeRepo) CountByTemplate(ctx context.Context, templateID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM sys_user_resume WHERE template_id = $1`, templateID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count resumes by template: %w", err)
	}
	return count, nil
}

func (r *resumeRepo) CountByStatus(ctx context.Context) (domain.StatusCounts, error) {
	var counts domain.StatusCounts
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*),
			COUNT(*) FILTER (WHERE status = 'Active'),
			COUNT(*) FILTER (WHERE status = 'Inactive')
		FROM sys_user_resume
	`).Scan(&counts.Total, &counts.Active, &counts.Inactive)
	if err != nil {
		return counts, fmt.Errorf("failed to count resumes by status: %w", err)
	}
	return counts, nil
}
