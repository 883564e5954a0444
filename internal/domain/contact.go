package domain

import (
	"context"
	"strings"
)

// ContactSubmission represents one contact form post. It lives for a single
// request: bound from the body, validated, turned into two outbound emails,
// then discarded.
type ContactSubmission struct {
	FullName string `json:"fullName" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,contact_email"`
	Phone    string `json:"phone" validate:"required,min=6,max=20"`
	Subject  string `json:"subject" validate:"required,max=150"`
	Message  string `json:"message" validate:"required,min=10,max=2000"`
}

// Trimmed returns a copy with surrounding whitespace removed from every
// field. Validation and the outbound emails both operate on the trimmed copy.
func (s ContactSubmission) Trimmed() ContactSubmission {
	return ContactSubmission{
		FullName: strings.TrimSpace(s.FullName),
		Email:    strings.TrimSpace(s.Email),
		Phone:    strings.TrimSpace(s.Phone),
		Subject:  strings.TrimSpace(s.Subject),
		Message:  strings.TrimSpace(s.Message),
	}
}

// OutboundEmail is a fully built message for the SMTP relay. Immutable once
// constructed; sent once, never stored or retried.
type OutboundEmail struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

// MailSender is the long-lived SMTP transporter. Implementations must be safe
// for concurrent use by multiple in-flight requests.
type MailSender interface {
	// Send delivers one message to the relay. One attempt per call.
	Send(mail OutboundEmail) error
	// IsConfigured reports whether the transporter has complete SMTP settings.
	IsConfigured() bool
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// SendContactMail validates the submission and dispatches the company
	// notification followed by the visitor acknowledgment.
	SendContactMail(ctx context.Context, sub ContactSubmission) error
}
