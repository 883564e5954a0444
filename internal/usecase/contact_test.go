package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"go-contact-backend/internal/domain"
	"go-contact-backend/internal/usecase"
	"go-contact-backend/pkg/apperror"
)

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(mail domain.OutboundEmail) error {
	return m.Called(mail).Error(0)
}

func (m *MockMailer) IsConfigured() bool {
	return m.Called().Bool(0)
}

func validSubmission() domain.ContactSubmission {
	return domain.ContactSubmission{
		FullName: "John Doe",
		Email:    "john@example.com",
		Phone:    "+1 123-4567",
		Subject:  "Enquiry",
		Message:  "First line\nSecond line of the message.",
	}
}

func TestSendContactMailSuccess(t *testing.T) {
	mailer := new(MockMailer)
	mailer.On("Send", mock.AnythingOfType("domain.OutboundEmail")).Return(nil)

	uc := usecase.NewContactUsecase(mailer, "company@example.com")
	err := uc.SendContactMail(context.Background(), validSubmission())

	assert.NoError(t, err)
	mailer.AssertNumberOfCalls(t, "Send", 2)

	notice := mailer.Calls[0].Arguments.Get(0).(domain.OutboundEmail)
	assert.Equal(t, "company@example.com", notice.To)
	assert.Equal(t, "New Enquiry From Website", notice.Subject)
	assert.Contains(t, notice.Text, "Full Name: John Doe")
	assert.Contains(t, notice.Text, "Email: john@example.com")
	assert.Contains(t, notice.Text, "Phone: +1 123-4567")
	assert.Contains(t, notice.Text, "Subject: Enquiry")
	assert.Contains(t, notice.Text, "First line\nSecond line of the message.")
	// Message line breaks become HTML line breaks in the HTML variant
	assert.Contains(t, notice.HTML, "First line<br>Second line of the message.")

	ack := mailer.Calls[1].Arguments.Get(0).(domain.OutboundEmail)
	assert.Equal(t, "john@example.com", ack.To)
	assert.Equal(t, "Thanks for contacting us", ack.Subject)
	assert.Contains(t, ack.Text, "Hi John Doe,")
	assert.Contains(t, ack.Text, "Thank you for contacting us")
}

func TestSendContactMailTrimsFields(t *testing.T) {
	mailer := new(MockMailer)
	mailer.On("Send", mock.AnythingOfType("domain.OutboundEmail")).Return(nil)

	sub := validSubmission()
	sub.FullName = "  John Doe  "
	sub.Email = " john@example.com "

	uc := usecase.NewContactUsecase(mailer, "company@example.com")
	err := uc.SendContactMail(context.Background(), sub)

	assert.NoError(t, err)
	notice := mailer.Calls[0].Arguments.Get(0).(domain.OutboundEmail)
	assert.Contains(t, notice.Text, "Full Name: John Doe\n")

	ack := mailer.Calls[1].Arguments.Get(0).(domain.OutboundEmail)
	assert.Equal(t, "john@example.com", ack.To)
}

func TestSendContactMailValidationFailure(t *testing.T) {
	mailer := new(MockMailer)

	uc := usecase.NewContactUsecase(mailer, "company@example.com")
	err := uc.SendContactMail(context.Background(), domain.ContactSubmission{})

	var appErr *apperror.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.Code)
	assert.Equal(t, "Validation error", appErr.Message)
	assert.Len(t, appErr.Fields, 5)
	mailer.AssertNotCalled(t, "Send", mock.Anything)
}

func TestSendContactMailReceiverNotConfigured(t *testing.T) {
	mailer := new(MockMailer)

	uc := usecase.NewContactUsecase(mailer, "")
	err := uc.SendContactMail(context.Background(), validSubmission())

	var appErr *apperror.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusInternalServerError, appErr.Code)
	assert.Equal(t, "Server configuration error: RECEIVER_EMAIL is not set", appErr.Message)
	mailer.AssertNotCalled(t, "Send", mock.Anything)
}

func TestSendContactMailFirstSendFailsShortCircuits(t *testing.T) {
	mailer := new(MockMailer)
	mailer.On("Send", mock.AnythingOfType("domain.OutboundEmail")).Return(errors.New("smtp: connection refused")).Once()

	uc := usecase.NewContactUsecase(mailer, "company@example.com")
	err := uc.SendContactMail(context.Background(), validSubmission())

	var appErr *apperror.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusInternalServerError, appErr.Code)
	assert.Equal(t, "Failed to send email", appErr.Message)
	// Transport detail stays out of the client-facing message
	assert.NotContains(t, appErr.Message, "connection refused")
	mailer.AssertNumberOfCalls(t, "Send", 1)
}

func TestSendContactMailSecondSendFails(t *testing.T) {
	mailer := new(MockMailer)
	mailer.On("Send", mock.AnythingOfType("domain.OutboundEmail")).Return(nil).Once()
	mailer.On("Send", mock.AnythingOfType("domain.OutboundEmail")).Return(errors.New("smtp: mailbox unavailable")).Once()

	uc := usecase.NewContactUsecase(mailer, "company@example.com")
	err := uc.SendContactMail(context.Background(), validSubmission())

	var appErr *apperror.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Failed to send email", appErr.Message)
	mailer.AssertNumberOfCalls(t, "Send", 2)
}
