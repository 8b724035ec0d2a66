package v1

import (
	"net/http"
	"resume-builder-backend/internal/delivery/http/response"
	"resume-builder-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type AdminManagementHandler struct {
	mgmtUC     domain.AdminManagementUsecase
	templateUC domain.TemplateUsecase
}

// NewAdminManagementHandler wires /admin-management. The admins group
// carries the super-admin gate; everything else needs any admin token.
func NewAdminManagementHandler(admin *gin.RouterGroup, superAdmin *gin.RouterGroup, mgmtUC domain.AdminManagementUsecase, templateUC domain.TemplateUsecase) {
	handler := &AdminManagementHandler{mgmtUC: mgmtUC, templateUC: templateUC}

	admins := superAdmin.Group("/admins")
	{
		admins.GET("", handler.ListAdmins)
		admins.GET("/:admin_id", handler.GetAdmin)
		admins.POST("", handler.CreateAdmin)
		admins.PUT("/:admin_id", handler.UpdateAdmin)
		admins.DELETE("/:admin_id", handler.DeleteAdmin)
	}

	users := admin.Group("/users")
	{
		users.GET("", handler.ListUsers)
		users.GET("/:user_id", handler.GetUserDetails)
		users.PATCH("/:user_id/status", handler.UpdateUserStatus)
		users.DELETE("/:user_id", handler.DeleteUser)
	}

	templates := admin.Group("/templates")
	{
		templates.GET("", handler.ListTemplates)
		templates.GET("/:template_id", handler.GetTemplate)
		templates.POST("", handler.CreateTemplate)
		templates.PUT("/:template_id", handler.UpdateTemplate)
		templates.DELETE("/:template_id", handler.DeleteTemplate)
	}

	admin.GET("/dashboard/stats", handler.DashboardStats)
}

// ============================================================================
// Admin accounts
// ============================================================================

// ListAdmins godoc
// @Summary      List admin accounts
// @Tags         admin-management
// @Param        page    query  int     false  "Page number"
// @Param        limit   query  int     false  "Page size"
// @Param        search  query  string  false  "Substring search across name, email, phone"
// @Param        status  query  string  false  "Status filter"
// @Router       /admin-management/admins [get]
func (h *AdminManagementHandler) ListAdmins(c *gin.Context) {
	result, err := h.mgmtUC.ListAdmins(c, listQuery(c))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Admins list", result)
}

func (h *AdminManagementHandler) GetAdmin(c *gin.Context) {
	id, ok := paramID(c, "admin_id")
	if !ok {
		return
	}

	admin, err := h.mgmtUC.GetAdmin(c, id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Admin details", admin)
}

func (h *AdminManagementHandler) CreateAdmin(c *gin.Context) {
	var req domain.RegisterAdminRequest
	if !bindJSON(c, &req) {
		return
	}

	admin, err := h.mgmtUC.CreateAdmin(c, req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Admin created", admin)
}

func (h *AdminManagementHandler) UpdateAdmin(c *gin.Context) {
	id, ok := paramID(c, "admin_id")
	if !ok {
		return
	}

	var req domain.UpdateAdminRequest
	if !bindJSON(c, &req) {
		return
	}

	admin, err := h.mgmtUC.UpdateAdmin(c, id, req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Admin updated", admin)
}

func (h *AdminManagementHandler) DeleteAdmin(c *gin.Context) {
	id, ok := paramID(c, "admin_id")
	if !ok {
		return
	}

	if err := h.mgmtUC.DeleteAdmin(c, id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Admin deleted", nil)
}

// ============================================================================
// User accounts
// ============================================================================

func (h *AdminManagementHandler) ListUsers(c *gin.Context) {
	result, err := h.mgmtUC.ListUsers(c, listQuery(c))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Users list", result)
}

func (h *AdminManagementHandler) GetUserDetails(c *gin.Context) {
	id, ok := paramID(c, "user_id")
	if !ok {
		return
	}

	details, err := h.mgmtUC.GetUserDetails(c, id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "User details", details)
}

func (h *AdminManagementHandler) UpdateUserStatus(c *gin.Context) {
	id, ok := paramID(c, "user_id")
	if !ok {
		return
	}

	var req domain.UpdateUserStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.mgmtUC.UpdateUserStatus(c, id, req.Status); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "User status updated", nil)
}

func (h *AdminManagementHandler) DeleteUser(c *gin.Context) {
	id, ok := paramID(c, "user_id")
	if !ok {
		return
	}

	if err := h.mgmtUC.DeleteUser(c, id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "User deleted", nil)
}

// ============================================================================
// Resume templates
// ============================================================================

func (h *AdminManagementHandler) ListTemplates(c *gin.Context) {
	result, err := h.templateUC.List(c, listQuery(c))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Templates list", result)
}

func (h *AdminManagementHandler) GetTemplate(c *gin.Context) {
	id, ok := paramID(c, "template_id")
	if !ok {
		return
	}

	template, err := h.templateUC.Get(c, id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Template details", template)
}

func (h *AdminManagementHandler) CreateTemplate(c *gin.Context) {
	var req domain.CreateTemplateRequest
	if !bindJSON(c, &req) {
		return
	}

	template, err := h.templateUC.Create(c, req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Template created", template)
}

func (h *AdminManagementHandler) UpdateTemplate(c *gin.Context) {
	id, ok := paramID(c, "template_id")
	if !ok {
		return
	}

	var req domain.UpdateTemplateRequest
	if !bindJSON(c, &req) {
		return
	}

	template, err := h.templateUC.Update(c, id, req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Template updated", template)
}

// DeleteTemplate hard-deletes a template unless resumes still reference it.
func (h *AdminManagementHandler) DeleteTemplate(c *gin.Context) {
	id, ok := paramID(c, "template_id")
	if !ok {
		return
	}

	if err := h.templateUC.Delete(c, id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Template deleted", nil)
}

// ============================================================================
// Dashboard
// ============================================================================

func (h *AdminManagementHandler) DashboardStats(c *gin.Context) {
	stats, err := h.mgmtUC.DashboardStats(c)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Dashboard statistics", stats)
}
