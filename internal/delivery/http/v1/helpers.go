package v1

import (
	"errors"
	"resume-builder-backend/internal/domain"
	"resume-builder-backend/pkg/apperror"
	"resume-builder-backend/pkg/validation"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// bindJSON binds the request body and pushes a validation error with
// per-field details on failure. Returns false when the request is bad.
func bindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		var vErrs validator.ValidationErrors
		if errors.As(err, &vErrs) {
			c.Error(apperror.Validation("Validation failed", validation.FormatValidationErrors(vErrs)))
		} else {
			c.Error(apperror.BadRequest("Invalid request body: " + err.Error()))
		}
		return false
	}
	return true
}

func paramID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.Error(apperror.BadRequest("Invalid " + name))
		return 0, false
	}
	return id, true
}

// listQuery reads the common pagination/filter query parameters. The
// usecase clamps page and limit.
func listQuery(c *gin.Context) domain.ListQuery {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit"))
	return domain.ListQuery{
		Page:     page,
		Limit:    limit,
		Search:   c.Query("search"),
		Status:   c.Query("status"),
		Category: c.Query("category"),
	}
}
