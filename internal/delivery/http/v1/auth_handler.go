package v1

import (
	"net/http"
	"resume-builder-backend/internal/delivery/http/response"
	"resume-builder-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
}

// NewAuthHandler wires the public user auth routes. The login limiter is
// the tighter credential-endpoint rate limit.
func NewAuthHandler(public *gin.RouterGroup, loginLimiter gin.HandlerFunc, authUC domain.AuthUsecase) {
	handler := &AuthHandler{authUC: authUC}

	public.POST("/register", loginLimiter, handler.Register)
	public.POST("/login", loginLimiter, handler.Login)
}

// Register godoc
// @Summary      User Registration
// @Description  Register a new user account and return a signed token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        register  body      domain.RegisterRequest  true  "Registration Details"
// @Success      201    {object}  response.Response
// @Failure      400    {object}  response.Response
// @Failure      409    {object}  response.Response
// @Router       /register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req domain.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.authUC.Register(c, req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Registration successful", result)
}

// Login godoc
// @Summary      User Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        login  body      domain.LoginRequest  true  "Credentials"
// @Success      200    {object}  response.Response
// @Failure      401    {object}  response.Response
// @Router       /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req domain.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.authUC.Login(c, req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Login successful", result)
}
