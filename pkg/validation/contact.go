package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"go-contact-backend/internal/domain"
)

// Relaxed local@domain.tld shape: one "@", at least one "." after it, no whitespace
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report errors under the JSON field names the client submitted
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("contact_email", ContactEmail)
	return v
}

// ContactEmail validates the simple email shape accepted by the form.
// Deliberately looser than full RFC 5322; the relay rejects what it cannot route.
func ContactEmail(fl validator.FieldLevel) bool {
	return emailRegex.MatchString(fl.Field().String())
}

// contactMessages maps field name -> failing tag -> user-facing message.
var contactMessages = map[string]map[string]string{
	"fullName": {
		"required": "Full name is required",
		"min":      "Full name must be at least 2 characters",
		"max":      "Full name must be at most 100 characters",
	},
	"email": {
		"required":      "Email address is required",
		"contact_email": "Please provide a valid email address",
	},
	"phone": {
		"required": "Phone number is required",
		"min":      "Phone number looks too short",
		"max":      "Phone number looks too long",
	},
	"subject": {
		"required": "Subject is required",
		"max":      "Subject must be at most 150 characters",
	},
	"message": {
		"required": "Message is required",
		"min":      "Message must be at least 10 characters",
		"max":      "Message must be at most 2000 characters",
	},
}

// Contact checks a trimmed submission and returns a field -> message map,
// empty when the submission is valid. Failures are collected per field,
// not short-circuited, so the client can show every problem at once.
func Contact(sub domain.ContactSubmission) map[string]string {
	errs := map[string]string{}

	err := validate.Struct(sub)
	if err == nil {
		return errs
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		// InvalidValidationError only happens for non-struct input
		errs["request"] = err.Error()
		return errs
	}

	for _, e := range validationErrors {
		errs[e.Field()] = messageFor(e)
	}
	return errs
}

func messageFor(e validator.FieldError) string {
	if byTag, ok := contactMessages[e.Field()]; ok {
		if msg, ok := byTag[e.Tag()]; ok {
			return msg
		}
	}
	return fmt.Sprintf("%s is invalid", e.Field())
}
