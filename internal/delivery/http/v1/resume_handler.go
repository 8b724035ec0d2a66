package v1

import (
	"net/http"
	"resume-builder-backend/internal/delivery/http/response"
	"resume-builder-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type ResumeHandler struct {
	resumeUC domain.ResumeUsecase
}

func NewResumeHandler(users *gin.RouterGroup, resumeUC domain.ResumeUsecase) {
	handler := &ResumeHandler{resumeUC: resumeUC}

	users.POST("/add-user-resume", handler.Add)
	users.POST("/update-user-resume", handler.Update)
	users.POST("/get-user-resumes", handler.List)
	users.POST("/delete-user-resume", handler.Delete)
}

func (h *ResumeHandler) Add(c *gin.Context) {
	var req domain.AddResumeRequest
	if !bindJSON(c, &req) {
		return
	}

	resume, err := h.resumeUC.Add(c, req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Resume created", resume)
}

func (h *ResumeHandler) Update(c *gin.Context) {
	var req domain.UpdateResumeRequest
	if !bindJSON(c, &req) {
		return
	}

	resume, err := h.resumeUC.Update(c, req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Resume updated", resume)
}

func (h *ResumeHandler) List(c *gin.Context) {
	var req userIDRequest
	if !bindJSON(c, &req) {
		return
	}

	resumes, err := h.resumeUC.ListByUser(c, req.UserID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "User resumes", resumes)
}

type deleteResumeRequest struct {
	UserID   int64 `json:"user_id" binding:"required,gt=0"`
	ResumeID int64 `json:"resume_id" binding:"required,gt=0"`
}

func (h *ResumeHandler) Delete(c *gin.Context) {
	var req deleteResumeRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.resumeUC.Delete(c, req.UserID, req.ResumeID); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Resume deleted", nil)
}
