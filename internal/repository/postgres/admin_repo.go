package postgres

import (
	"context"
	"fmt"
	"resume-builder-backend/internal/domain"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type adminRepo struct {
	db *pgxpool.Pool
}

func NewAdminRepository(db *pgxpool.Pool) domain.AdminRepository {
	return &adminRepo{db: db}
}

const adminColumns = `admin_id, name, email, password_hash, phone, role, status, added_date, updated_date, added_by, updated_by`

func scanAdmin(row pgx.Row) (*domain.Admin, error) {
	var a domain.Admin
	err := row.Scan(&a.AdminID, &a.Name, &a.Email, &a.PasswordHash, &a.Phone,
		&a.Role, &a.Status, &a.AddedDate, &a.UpdatedDate, &a.AddedBy, &a.UpdatedBy)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *adminRepo) Create(ctx context.Context, admin *domain.Admin) (int64, error) {
	query := `
		INSERT INTO sys_admin (name, email, password_hash, phone, role, status, added_date, added_by)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), $7)
		RETURNING admin_id
	`

	var id int64
	err := r.db.QueryRow(ctx, query,
		admin.Name, admin.Email, admin.PasswordHash, admin.Phone,
		admin.Role, admin.Status, admin.AddedBy,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create admin: %w", err)
	}
	return id, nil
}

// GetByID resolves Active admins only. Deactivated admins stay addressable
// through List for audit but never through id lookup.
func (r *adminRepo) GetByID(ctx context.Context, id int64) (*domain.Admin, error) {
	query := `SELECT ` + adminColumns + ` FROM sys_admin WHERE admin_id = $1 AND status = 'Active'`

	admin, err := scanAdmin(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("failed to get admin by id: %w", err)
	}
	return admin, nil
}

func (r *adminRepo) GetByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	query := `SELECT ` + adminColumns + ` FROM sys_admin WHERE LOWER(email) = LOWER($1)`

	admin, err := scanAdmin(r.db.QueryRow(ctx, query, email))
	if err != nil {
		return nil, fmt.Errorf("failed to get admin by email: %w", err)
	}
	return admin, nil
}

func (r *adminRepo) List(ctx context.Context, q domain.ListQuery) ([]domain.Admin, int64, error) {
	// The admin list defaults to Active rows when no status filter is passed.
	status := q.Status
	if status == "" {
		status = domain.StatusActive
	}

	where := []string{"status = $1"}
	args := []any{status}

	if q.Search != "" {
		n := len(args) + 1
		where = append(where, fmt.Sprintf("(name ILIKE $%d OR email ILIKE $%d OR phone ILIKE $%d)", n, n, n))
		args = append(args, "%"+q.Search+"%")
	}

	clause := " WHERE " + strings.Join(where, " AND ")

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM sys_admin`+clause, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count admins: %w", err)
	}

	query := `SELECT ` + adminColumns + ` FROM sys_admin` + clause +
		fmt.Sprintf(" ORDER BY added_date DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, q.Limit, q.Offset())

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list admins: %w", err)
	}
	defer rows.Close()

	admins := []domain.Admin{}
	for rows.Next() {
		admin, err := scanAdmin(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan admin row: %w", err)
		}
		admins = append(admins, *admin)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating admin rows: %w", err)
	}

	return admins, total, nil
}

func (r *adminRepo) Update(ctx context.Context, admin *domain.Admin) error {
	query := `
		UPDATE sys_admin
		SET name = $2, email = $3, phone = $4, role = $5, status = $6,
			updated_date = NOW(), updated_by = $7
		WHERE admin_id = $1
	`

	tag, err := r.db.Exec(ctx, query,
		admin.AdminID, admin.Name, admin.Email, admin.Phone,
		admin.Role, admin.Status, admin.UpdatedBy)
	if err != nil {
		return fmt.Errorf("failed to update admin: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *adminRepo) SoftDelete(ctx context.Context, id, deletedBy int64) error {
	query := `
		UPDATE sys_admin
		SET status = 'Inactive', updated_date = NOW(), updated_by = $2
		WHERE admin_id = $1 AND status = 'Active'
	`

	tag, err := r.db.Exec(ctx, query, id, deletedBy)
	if err != nil {
		return fmt.Errorf("failed to delete admin: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *adminRepo) CountByStatus(ctx context.Context) (domain.StatusCounts, error) {
	var counts domain.StatusCounts
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*),
			COUNT(*) FILTER (WHERE status = 'Active'),
			COUNT(*) FILTER (WHERE status = 'Inactive')
		FROM sys_admin
	`).Scan(&counts.Total, &counts.Active, &counts.Inactive)
	if err != nil {
		return counts, fmt.Errorf("failed to count admins by status: %w", err)
	}
	return counts, nil
}
