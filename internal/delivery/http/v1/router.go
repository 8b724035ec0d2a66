package v1

import (
	"net/http"
	"resume-builder-backend/config"
	"resume-builder-backend/internal/delivery/http/middleware"
	"resume-builder-backend/internal/delivery/http/response"
	"resume-builder-backend/internal/domain"
	"resume-builder-backend/internal/usecase"
	"resume-builder-backend/pkg/auth"
	"time"

	"github.com/gin-gonic/gin"
)

type RouterDeps struct {
	AuthUC      domain.AuthUsecase
	AdminAuthUC domain.AdminAuthUsecase
	MgmtUC      domain.AdminManagementUsecase
	ProfileUC   domain.ProfileUsecase
	ResumeUC    domain.ResumeUsecase
	TemplateUC  domain.TemplateUsecase
	HealthUC    usecase.HealthUsecase

	Tokens    *auth.TokenManager
	UserRepo  domain.UserRepository
	AdminRepo domain.AdminRepository
	Config    *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware()) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	r.GET("/health", func(c *gin.Context) {
		status := deps.HealthUC.Check(c)
		code := http.StatusOK
		if status.Status != "ok" {
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, status)
	})

	window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second
	globalLimiter := middleware.RateLimitMiddleware(
		middleware.GlobalRateLimitConfig(deps.Config.RateLimitGlobalThreshold, window))
	loginLimiter := middleware.RateLimitMiddleware(
		middleware.LoginRateLimitConfig(deps.Config.RateLimitLoginThreshold, window))

	api := r.Group("/api", globalLimiter)

	// User auth (public)
	NewAuthHandler(api, loginLimiter, deps.AuthUC)

	// Admin auth: public login/register plus protected self reads
	adminPublic := api.Group("/admin")
	adminProtected := api.Group("/admin", middleware.RequireAdmin(deps.Tokens, deps.AdminRepo))
	NewAdminAuthHandler(adminPublic, adminProtected, loginLimiter, deps.AdminAuthUC)

	// Admin management: any admin for users/templates/dashboard, super
	// admin for the admins CRUD
	adminMgmt := api.Group("/admin-management",
		middleware.RequireAdmin(deps.Tokens, deps.AdminRepo))
	superAdmin := api.Group("/admin-management",
		middleware.RequireAdmin(deps.Tokens, deps.AdminRepo, domain.RoleSuperAdmin))
	NewAdminManagementHandler(adminMgmt, superAdmin, deps.MgmtUC, deps.TemplateUC)

	// User domain routes
	userAuth := middleware.RequireUser(deps.Tokens, deps.UserRepo)
	users := api.Group("/users", userAuth)
	apiUser := api.Group("", userAuth)
	NewUserHandler(users, apiUser, deps.ProfileUC, deps.TemplateUC)
	NewResumeHandler(users, deps.ResumeUC)

	// Catch-all 404 with an endpoint directory
	r.NoRoute(func(c *gin.Context) {
		response.ErrorWithDetails(c, http.StatusNotFound, "Endpoint not found", "NOT_FOUND", endpointDirectory)
	})

	return r
}

// endpointDirectory is returned by the catch-all 404 so clients can
// discover the API surface.
var endpointDirectory = gin.H{
	"auth": []string{
		"POST /api/register",
		"POST /api/login",
		"POST /api/admin/register",
		"POST /api/admin/login",
		"GET /api/admin/profile",
		"GET /api/admin/stats",
	},
	"admin_management": []string{
		"GET|POST /api/admin-management/admins",
		"GET|PUT|DELETE /api/admin-management/admins/:admin_id",
		"GET /api/admin-management/users",
		"GET|DELETE /api/admin-management/users/:user_id",
		"PATCH /api/admin-management/users/:user_id/status",
		"GET|POST /api/admin-management/templates",
		"GET|PUT|DELETE /api/admin-management/templates/:template_id",
		"GET /api/admin-management/dashboard/stats",
	},
	"users": []string{
		"POST /api/users/update-user-profile",
		"POST /api/users/update-user-skills",
		"POST /api/users/update-user-education",
		"POST /api/users/update-user-experience",
		"POST /api/users/get-user-info",
		"GET /api/users/templates",
		"POST /api/users/add-user-resume",
		"POST /api/users/update-user-resume",
		"POST /api/users/get-user-resumes",
		"POST /api/users/delete-user-resume",
		"POST /api/submit-user-details",
		"POST /api/get-resume-info",
	},
	"infrastructure": []string{
		"GET /health",
	},
}
