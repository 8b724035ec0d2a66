package usecase

import (
	"context"
	"math"
	"resume-builder-backend/internal/domain"
	"resume-builder-backend/pkg/apperror"
	"strconv"
)

// Identity values arrive either under gin's string keys (set by the auth
// middleware with c.Set) or under typed CtxKey values (tests, internal
// callers). Both are checked.

func subjectID(ctx context.Context) int64 {
	if v, ok := ctx.Value(string(domain.KeyUserID)).(int64); ok {
		return v
	}
	if v, ok := ctx.Value(domain.KeyUserID).(int64); ok {
		return v
	}
	return 0
}

func subjectRole(ctx context.Context) string {
	if v, ok := ctx.Value(string(domain.KeyUserRole)).(string); ok {
		return v
	}
	if v, ok := ctx.Value(domain.KeyUserRole).(string); ok {
		return v
	}
	return ""
}

func isAdminRole(role string) bool {
	return role == domain.RoleAdmin || role == domain.RoleSuperAdmin
}

func requireAdmin(ctx context.Context) error {
	if !isAdminRole(subjectRole(ctx)) {
		return apperror.Forbidden("Admin access required")
	}
	return nil
}

func requireSuperAdmin(ctx context.Context) error {
	if subjectRole(ctx) != domain.RoleSuperAdmin {
		return apperror.Forbidden("Super admin access required")
	}
	return nil
}

// requireOwner rejects access to another user's records. Admins bypass
// the ownership check.
func requireOwner(ctx context.Context, userID int64) error {
	if isAdminRole(subjectRole(ctx)) {
		return nil
	}
	if subjectID(ctx) != userID {
		return apperror.Forbidden("You may only access your own records")
	}
	return nil
}

// clampQuery normalizes pagination before a query reaches a repository.
func clampQuery(q *domain.ListQuery, defaultLimit int) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 || q.Limit > 100 {
		q.Limit = defaultLimit
	}
}

// formatID renders a numeric id as the string token subject.
func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

func paginate[T any](items []T, total int64, q domain.ListQuery) *domain.PaginatedResult[T] {
	return &domain.PaginatedResult[T]{
		Items:      items,
		Total:      total,
		Page:       q.Page,
		Limit:      q.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(q.Limit))),
	}
}
