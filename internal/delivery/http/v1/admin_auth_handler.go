package v1

import (
	"net/http"
	"resume-builder-backend/internal/delivery/http/response"
	"resume-builder-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type AdminAuthHandler struct {
	adminAuthUC domain.AdminAuthUsecase
}

// NewAdminAuthHandler wires /admin auth routes: public login/register and
// the token-protected profile and stats reads.
func NewAdminAuthHandler(public *gin.RouterGroup, protected *gin.RouterGroup, loginLimiter gin.HandlerFunc, adminAuthUC domain.AdminAuthUsecase) {
	handler := &AdminAuthHandler{adminAuthUC: adminAuthUC}

	public.POST("/login", loginLimiter, handler.Login)
	public.POST("/register", loginLimiter, handler.Register)

	protected.GET("/profile", handler.Profile)
	protected.GET("/stats", handler.Stats)
}

// Register godoc
// @Summary      Admin Registration
// @Tags         admin-auth
// @Accept       json
// @Produce      json
// @Param        register  body      domain.RegisterAdminRequest  true  "Registration Details"
// @Success      201    {object}  response.Response
// @Router       /admin/register [post]
func (h *AdminAuthHandler) Register(c *gin.Context) {
	var req domain.RegisterAdminRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.adminAuthUC.Register(c, req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Admin registration successful", result)
}

// Login godoc
// @Summary      Admin Login
// @Tags         admin-auth
// @Router       /admin/login [post]
func (h *AdminAuthHandler) Login(c *gin.Context) {
	var req domain.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.adminAuthUC.Login(c, req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Login successful", result)
}

func (h *AdminAuthHandler) Profile(c *gin.Context) {
	admin, err := h.adminAuthUC.Profile(c)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Admin profile", admin)
}

func (h *AdminAuthHandler) Stats(c *gin.Context) {
	stats, err := h.adminAuthUC.Stats(c)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Admin statistics", stats)
}
