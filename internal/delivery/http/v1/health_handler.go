package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-contact-backend/internal/usecase"
)

type HealthHandler struct {
	healthUC usecase.HealthUsecase
}

// NewHealthHandler registers the health check route
func NewHealthHandler(api *gin.RouterGroup, healthUC usecase.HealthUsecase) {
	handler := &HealthHandler{
		healthUC: healthUC,
	}

	api.GET("/health", handler.Check)
}

// Check godoc
// @Summary      Health Check
// @Description  Always reports ok; liveness does not depend on the SMTP relay.
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, h.healthUC.Check(c.Request.Context()))
}
