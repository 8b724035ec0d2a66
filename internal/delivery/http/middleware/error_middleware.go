package middleware

import (
	"errors"
	"net/http"
	"resume-builder-backend/internal/delivery/http/response"
	"resume-builder-backend/pkg/apperror"
	"resume-builder-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				if appErr.Code >= http.StatusInternalServerError {
					logger.Log.Error("request failed",
						"path", c.FullPath(),
						"error", appErr.Unwrap())
				}
				if len(appErr.Details) > 0 {
					response.ErrorWithDetails(c, appErr.Code, appErr.Message, appErr.ErrCode, appErr.Details)
				} else {
					response.Error(c, appErr.Code, appErr.Message, appErr.ErrCode)
				}
				return
			}

			// Never expose internal error details to clients. Log the real
			// error server-side and send a generic message.
			logger.Log.Error("unhandled error", "path", c.FullPath(), "error", err)
			response.Error(c, http.StatusInternalServerError,
				"An unexpected error occurred. Please try again later.", "INTERNAL_ERROR")
		}
	}
}
