package v1

import (
	"net/http"
	"resume-builder-backend/internal/delivery/http/response"
	"resume-builder-backend/internal/domain"
	"resume-builder-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	profileUC  domain.ProfileUsecase
	templateUC domain.TemplateUsecase
}

// NewUserHandler wires the user-token routes: the per-section writes, the
// composite reads and the atomic submit endpoint.
func NewUserHandler(users *gin.RouterGroup, api *gin.RouterGroup, profileUC domain.ProfileUsecase, templateUC domain.TemplateUsecase) {
	handler := &UserHandler{profileUC: profileUC, templateUC: templateUC}

	users.POST("/update-user-profile", handler.UpdateProfile)
	users.POST("/update-user-skills", handler.UpdateSkills)
	users.POST("/update-user-education", handler.UpdateEducation)
	users.POST("/update-user-experience", handler.UpdateExperience)
	users.POST("/get-user-info", handler.GetUserInfo)
	users.GET("/templates", handler.ListActiveTemplates)

	// Kept directly under /api for compatibility with existing clients.
	api.POST("/submit-user-details", handler.SubmitUserDetails)
	api.POST("/get-resume-info", handler.GetResumeInfo)
}

type userIDRequest struct {
	UserID int64 `json:"user_id" binding:"required,gt=0"`
}

type updateProfileRequest struct {
	UserID  int64                `json:"user_id" binding:"required,gt=0"`
	Profile *domain.ProfileInput `json:"profile"`
}

type updateSkillsRequest struct {
	UserID int64   `json:"user_id" binding:"required,gt=0"`
	Skills []int64 `json:"skills"`
}

type updateEducationRequest struct {
	UserID    int64                   `json:"user_id" binding:"required,gt=0"`
	Education []domain.EducationInput `json:"education"`
}

type updateExperienceRequest struct {
	UserID     int64                    `json:"user_id" binding:"required,gt=0"`
	Experience []domain.ExperienceInput `json:"experience"`
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req updateProfileRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.Profile == nil {
		c.Error(apperror.BadRequest("profile is required"))
		return
	}

	if err := h.profileUC.UpdateProfile(c, req.UserID, req.Profile); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile updated", nil)
}

func (h *UserHandler) UpdateSkills(c *gin.Context) {
	var req updateSkillsRequest
	if !bindJSON(c, &req) {
		return
	}
	// An empty array clears the section; a missing key is an error here.
	if req.Skills == nil {
		c.Error(apperror.BadRequest("skills is required"))
		return
	}

	if err := h.profileUC.UpdateSkills(c, req.UserID, req.Skills); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Skills updated", nil)
}

func (h *UserHandler) UpdateEducation(c *gin.Context) {
	var req updateEducationRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.Education == nil {
		c.Error(apperror.BadRequest("education is required"))
		return
	}

	if err := h.profileUC.UpdateEducation(c, req.UserID, req.Education); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Education updated", nil)
}

func (h *UserHandler) UpdateExperience(c *gin.Context) {
	var req updateExperienceRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.Experience == nil {
		c.Error(apperror.BadRequest("experience is required"))
		return
	}

	if err := h.profileUC.UpdateExperience(c, req.UserID, req.Experience); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Experience updated", nil)
}

// GetUserInfo godoc
// @Summary      Composite read of account, profile, education, experience and skills
// @Tags         users
// @Router       /users/get-user-info [post]
func (h *UserHandler) GetUserInfo(c *gin.Context) {
	var req userIDRequest
	if !bindJSON(c, &req) {
		return
	}

	info, err := h.profileUC.GetUserInfo(c, req.UserID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "User info", info)
}

// SubmitUserDetails godoc
// @Summary      Atomic composite write of profile, education, experience and skills
// @Description  Sections absent from the payload are left untouched; submitted sections are replaced whole.
// @Tags         users
// @Router       /submit-user-details [post]
func (h *UserHandler) SubmitUserDetails(c *gin.Context) {
	var input domain.SubmitDetailsInput
	if !bindJSON(c, &input) {
		return
	}

	result, err := h.profileUC.SubmitUserDetails(c, &input)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "User details saved", result)
}

func (h *UserHandler) GetResumeInfo(c *gin.Context) {
	var req userIDRequest
	if !bindJSON(c, &req) {
		return
	}

	info, err := h.profileUC.GetResumeInfo(c, req.UserID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Resume info", info)
}

// ListActiveTemplates returns the templates a user can build a resume on.
func (h *UserHandler) ListActiveTemplates(c *gin.Context) {
	templates, err := h.templateUC.ListActive(c)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Active templates", templates)
}
