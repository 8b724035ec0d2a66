package domain

// Account statuses shared by admins, users, resumes and templates.
const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

// Admin roles
const (
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super_admin"
)

// ListQuery carries the common list parameters: pagination plus optional
// search and exact-match filters. Usecases clamp Page/Limit before the
// query reaches a repository.
type ListQuery struct {
	Page     int
	Limit    int
	Search   string
	Status   string
	Category string
}

// Offset converts page/limit into the SQL offset.
func (q ListQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

// PaginatedResult for list responses
type PaginatedResult[T any] struct {
	Items      []T   `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

// StatusCounts is one dashboard statistic block.
type StatusCounts struct {
	Total    int64 `json:"total"`
	Active   int64 `json:"active"`
	Inactive int64 `json:"inactive"`
}

// DashboardStats aggregates the per-resource blocks for the admin dashboard.
type DashboardStats struct {
	Admins    StatusCounts `json:"admins"`
	Users     StatusCounts `json:"users"`
	Templates StatusCounts `json:"templates"`
	Resumes   StatusCounts `json:"resumes"`
}
