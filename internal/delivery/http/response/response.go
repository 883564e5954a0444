package response

import (
	"github.com/gin-gonic/gin"
)

// Response standardizes the API JSON response
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
}

// Success sends a success response
func Success(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Error sends an error response; errs carries the field -> message map for
// validation failures and is omitted otherwise.
func Error(c *gin.Context, code int, message string, errs interface{}) {
	c.JSON(code, Response{
		Success: false,
		Message: message,
		Errors:  errs,
	})
}
