package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-contact-backend/internal/delivery/http/response"
	"go-contact-backend/pkg/apperror"
	"go-contact-backend/pkg/logger"
)

// ErrorHandler converts errors attached to the context into the JSON error
// envelope. Internal error detail is logged server-side and never sent to
// the client.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Err != nil {
				logger.Log.Error("Request failed",
					"status", appErr.Code,
					"error", appErr.Err,
					"request_id", c.GetString("RequestID"),
				)
			}
			var fields interface{}
			if len(appErr.Fields) > 0 {
				fields = appErr.Fields
			}
			response.Error(c, appErr.Code, appErr.Message, fields)
			return
		}

		logger.Log.Error("Unhandled error",
			"error", err,
			"request_id", c.GetString("RequestID"),
		)
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
	}
}
