package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-contact-backend/internal/delivery/http/response"
	"go-contact-backend/internal/domain"
)

type MailHandler struct {
	contactUC domain.ContactUsecase
}

// NewMailHandler registers the contact form routes (public, no auth required)
func NewMailHandler(api *gin.RouterGroup, contactUC domain.ContactUsecase) {
	handler := &MailHandler{
		contactUC: contactUC,
	}

	api.POST("/send-mail", handler.SendMail)
}

// SendMail godoc
// @Summary      Submit Contact Form
// @Description  Validates the submission and relays it by email: a notification to the company followed by an acknowledgment to the visitor.
// @Tags         mail
// @Accept       json
// @Produce      json
// @Param        submission  body      domain.ContactSubmission  true  "Contact Form Data"
// @Success      200         {object}  response.Response
// @Failure      400         {object}  response.Response
// @Failure      500         {object}  response.Response
// @Router       /send-mail [post]
func (h *MailHandler) SendMail(c *gin.Context) {
	var sub domain.ContactSubmission
	// An absent or malformed body is treated as all fields missing; the
	// validator reports every field rather than a parse error.
	_ = c.ShouldBindJSON(&sub)

	if err := h.contactUC.SendContactMail(c.Request.Context(), sub); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Mail sent successfully", nil)
}
