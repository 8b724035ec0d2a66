package postgres

import (
	"context"
	"fmt"
	"resume-builder-backend/internal/domain"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type templateRepo struct {
	db *pgxpool.Pool
}

func NewTemplateRepository(db *pgxpool.Pool) domain.TemplateRepository {
	return &templateRepo{db: db}
}

const templateColumns = `template_id, template_name, COALESCE(template_description, ''),
	template_html, COALESCE(template_css, ''), COALESCE(category, ''), status,
	added_date, updated_date, added_by, updated_by`

func scanTemplate(row pgx.Row) (*domain.ResumeTemplate, error) {
	var t domain.ResumeTemplate
	err := row.Scan(&t.TemplateID, &t.TemplateName, &t.TemplateDescription,
		&t.TemplateHTML, &t.TemplateCSS, &t.Category, &t.Status,
		&t.AddedDate, &t.UpdatedDate, &t.AddedBy, &t.UpdatedBy)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *templateRepo) Create(ctx context.Context, t *domain.ResumeTemplate) (int64, error) {
	query := `
		INSERT INTO sys_resume_templates (
			template_name, template_description, template_html, template_css,
			category, status, added_date, added_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), $7)
		RETURNING template_id
	`

	var id int64
	err := r.db.QueryRow(ctx, query,
		t.TemplateName, t.TemplateDescription, t.TemplateHTML, t.TemplateCSS,
		t.Category, t.Status, t.AddedBy,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create template: %w", err)
	}
	return id, nil
}

func (r *templateRepo) GetByID(ctx context.Context, id int64) (*domain.ResumeTemplate, error) {
	query := `SELECT ` + templateColumns + ` FROM sys_resume_templates WHERE template_id = $1`

	t, err := scanTemplate(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("failed to get template by id: %w", err)
	}
	return t, nil
}

func (r *templateRepo) List(ctx context.Context, q domain.ListQuery) ([]domain.ResumeTemplate, int64, error) {
	where := []string{}
	args := []any{}

	if q.Status != "" {
		args = append(args, q.Status)
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}
	if q.Category != "" {
		args = append(args, q.Category)
		where = append(where, fmt.Sprintf("category = $%d", len(args)))
	}
	if q.Search != "" {
		args = append(args, "%"+q.Search+"%")
		n := len(args)
		where = append(where, fmt.Sprintf("(template_name ILIKE $%d OR template_description ILIKE $%d OR category ILIKE $%d)", n, n, n))
	}

	clause := ""
	if len(where) > 0 {
		clause = " WHERE " + strings.Join(where, " AND ")
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM sys_resume_templates`+clause, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count templates: %w", err)
	}

	query := `SELECT ` + templateColumns + ` FROM sys_resume_templates` + clause +
		fmt.Sprintf(" ORDER BY added_date DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, q.Limit, q.Offset())

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list templates: %w", err)
	}
	defer rows.Close()

	templates := []domain.ResumeTemplate{}
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan template row: %w", err)
		}
		templates = append(templates, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating template rows: %w", err)
	}

	return templates, total, nil
}

// ListActive returns the templates users may pick from.
func (r *templateRepo) ListActive(ctx context.Context) ([]domain.ResumeTemplate, error) {
	query := `SELECT ` + templateColumns + ` FROM sys_resume_templates
		WHERE status = 'Active'
		ORDER BY template_name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list active templates: %w", err)
	}
	defer rows.Close()

	templates := []domain.ResumeTemplate{}
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan template row: %w", err)
		}
		templates = append(templates, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating template rows: %w", err)
	}
	return templates, nil
}

func (r *templateRepo) Update(ctx context.Context, t *domain.ResumeTemplate) error {
	query := `
		UPDATE sys_resume_templates
		SET template_name = $2, template_description = $3, template_html = $4,
			template_css = $5, category = $6, status = $7,
			updated_date = NOW(), updated_by = $8
		WHERE template_id = $1
	`

	tag, err := r.db.Exec(ctx, query,
		t.TemplateID, t.TemplateName, t.TemplateDescription, t.TemplateHTML,
		t.TemplateCSS, t.Category, t.Status, t.UpdatedBy)
	if err != nil {
		return fmt.Errorf("failed to update template: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// Delete removes the row outright. Templates are the one resource that is
// hard-deleted; the in-use guard runs in the usecase before this call.
func (r *templateRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM sys_resume_templates WHERE template_id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete template: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *templateRepo) NameExists(ctx context.Context, name string, excludeID int64) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM sys_resume_templates
			WHERE LOWER(template_name) = LOWER($1) AND template_id <> $2
		)
	`

	var exists bool
	if err := r.db.QueryRow(ctx, query, name, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check template name: %w", err)
	}
	return exists, nil
}

func (r *templateRepo) CountByStatus(ctx context.Context) (domain.StatusCounts, error) {
	var counts domain.StatusCounts
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*),
			COUNT(*) FILTER (WHERE status = 'Active'),
			COUNT(*) FILTER (WHERE status = 'Inactive')
		FROM sys_resume_templates
	`).Scan(&counts.Total, &counts.Active, &counts.Inactive)
	if err != nil {
		return counts, fmt.Errorf("failed to count templates by status: %w", err)
	}
	return counts, nil
}
