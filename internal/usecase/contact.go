package usecase

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"

	"go-contact-backend/internal/domain"
	"go-contact-backend/pkg/apperror"
	"go-contact-backend/pkg/validation"
)

const (
	companySubject = "New Enquiry From Website"
	visitorSubject = "Thanks for contacting us"
)

// companyEmailTemplate is the HTML variant of the company notification
const companyEmailTemplate = `<h2>New Enquiry From Website</h2>
<p>You received a new enquiry from your website contact form:</p>
<table cellpadding="4" cellspacing="0" border="0" style="border-collapse: collapse;">
  <tr><td><strong>Full Name:</strong></td><td>{{.FullName}}</td></tr>
  <tr><td><strong>Email:</strong></td><td>{{.Email}}</td></tr>
  <tr><td><strong>Phone:</strong></td><td>{{.Phone}}</td></tr>
  <tr><td><strong>Subject:</strong></td><td>{{.Subject}}</td></tr>
  <tr><td valign="top"><strong>Message:</strong></td><td>{{.Message}}</td></tr>
</table>
`

// visitorEmailTemplate is the HTML variant of the acknowledgment
const visitorEmailTemplate = `<p>Hi {{.FullName}},</p>
<p>Thank you for contacting us. We received your message and will get back shortly.</p>
<p>Best regards,<br/>Niket Raj</p>
`

var (
	companyTmpl = template.Must(template.New("company").Parse(companyEmailTemplate))
	visitorTmpl = template.Must(template.New("visitor").Parse(visitorEmailTemplate))
)

type contactUsecase struct {
	mailer        domain.MailSender
	receiverEmail string
}

// NewContactUsecase creates a new contact usecase. receiverEmail is the
// company inbox for notifications; empty means the deployment is broken and
// every valid submission fails with a configuration error.
func NewContactUsecase(mailer domain.MailSender, receiverEmail string) domain.ContactUsecase {
	return &contactUsecase{
		mailer:        mailer,
		receiverEmail: receiverEmail,
	}
}

// SendContactMail validates the submission, then dispatches the company
// notification and the visitor acknowledgment strictly in that order. A
// failed first send short-circuits the second so failures stay attributable.
func (uc *contactUsecase) SendContactMail(ctx context.Context, sub domain.ContactSubmission) error {
	sub = sub.Trimmed()

	if errs := validation.Contact(sub); len(errs) > 0 {
		return apperror.Validation(errs)
	}

	if uc.receiverEmail == "" {
		return apperror.Configuration("Server configuration error: RECEIVER_EMAIL is not set", nil)
	}

	notice, err := uc.companyNotice(sub)
	if err != nil {
		return apperror.Internal("Failed to send email", err)
	}
	if err := uc.mailer.Send(notice); err != nil {
		return apperror.Internal("Failed to send email", err)
	}

	ack, err := uc.visitorAck(sub)
	if err != nil {
		return apperror.Internal("Failed to send email", err)
	}
	if err := uc.mailer.Send(ack); err != nil {
		return apperror.Internal("Failed to send email", err)
	}

	return nil
}

// companyNotice lists all five submitted fields for the company inbox.
func (uc *contactUsecase) companyNotice(sub domain.ContactSubmission) (domain.OutboundEmail, error) {
	text := fmt.Sprintf(
		"New enquiry from website\n\nFull Name: %s\nEmail: %s\nPhone: %s\nSubject: %s\nMessage:\n%s",
		sub.FullName, sub.Email, sub.Phone, sub.Subject, sub.Message,
	)

	data := struct {
		FullName, Email, Phone, Subject string
		Message                         template.HTML
	}{
		FullName: sub.FullName,
		Email:    sub.Email,
		Phone:    sub.Phone,
		Subject:  sub.Subject,
		Message:  nl2br(sub.Message),
	}

	var html bytes.Buffer
	if err := companyTmpl.Execute(&html, data); err != nil {
		return domain.OutboundEmail{}, fmt.Errorf("failed to render company notification: %w", err)
	}

	return domain.OutboundEmail{
		To:      uc.receiverEmail,
		Subject: companySubject,
		Text:    text,
		HTML:    html.String(),
	}, nil
}

// visitorAck thanks the submitter at the address they supplied.
func (uc *contactUsecase) visitorAck(sub domain.ContactSubmission) (domain.OutboundEmail, error) {
	text := fmt.Sprintf(
		"Hi %s,\n\nThank you for contacting us. We received your message and will get back shortly.\n\nBest regards,\nNiket Raj",
		sub.FullName,
	)

	var html bytes.Buffer
	if err := visitorTmpl.Execute(&html, struct{ FullName string }{sub.FullName}); err != nil {
		return domain.OutboundEmail{}, fmt.Errorf("failed to render acknowledgment: %w", err)
	}

	return domain.OutboundEmail{
		To:      sub.Email,
		Subject: visitorSubject,
		Text:    text,
		HTML:    html.String(),
	}, nil
}

// nl2br converts message line breaks for the HTML variant, escaping the
// user-supplied text before marking it safe.
func nl2br(s string) template.HTML {
	escaped := template.HTMLEscapeString(s)
	escaped = strings.ReplaceAll(escaped, "\r\n", "\n")
	return template.HTML(strings.ReplaceAll(escaped, "\n", "<br>"))
}
