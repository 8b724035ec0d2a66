package response

import (
	"github.com/gin-gonic/gin"
)

// Response standardizes the API JSON envelope. Success is 1 or 0 for
// client compatibility.
type Response struct {
	Success   int         `json:"success"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
	Error     string      `json:"error,omitempty"`
	Details   interface{} `json:"details,omitempty"`
	RequestID string      `json:"request_id,omitempty"`
}

func requestID(c *gin.Context) string {
	reqID, _ := c.Get("RequestID")
	idStr, _ := reqID.(string)
	return idStr
}

// Success sends a success response
func Success(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, Response{
		Success:   1,
		Message:   message,
		Data:      data,
		RequestID: requestID(c),
	})
}

// Error sends an error response with a machine-readable error code
func Error(c *gin.Context, code int, message string, errCode string) {
	c.JSON(code, Response{
		Success:   0,
		Message:   message,
		Error:     errCode,
		RequestID: requestID(c),
	})
}

// ErrorWithDetails adds per-field detail entries to an error response
func ErrorWithDetails(c *gin.Context, code int, message string, errCode string, details interface{}) {
	c.JSON(code, Response{
		Success:   0,
		Message:   message,
		Error:     errCode,
		Details:   details,
		RequestID: requestID(c),
	})
}
