// Package schema validates the outward-facing input shapes. Every check is
// a pure function over its input; the HTTP layer surfaces the first issue's
// message as a validation failure.
package schema

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/mouessam/localstack-ses-admin/internal/email"
)

// Issue is a single violated rule, in declaration order.
type Issue struct {
	Field   string
	Message string
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report fields under their JSON names so issues match the wire shape.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterStructValidation(sendEmailStructLevel, email.SendEmailInput{})
	v.RegisterStructValidation(sendRawStructLevel, email.SendRawInput{})

	return v
}

// sendEmailStructLevel enforces the text-or-html cross-field rule.
func sendEmailStructLevel(sl validator.StructLevel) {
	in := sl.Current().Interface().(email.SendEmailInput)
	if in.Text == "" && in.HTML == "" {
		sl.ReportError(in.Text, "text", "Text", "text_or_html", "")
	}
}

// sendRawStructLevel enforces the raw-or-text-or-html cross-field rule.
func sendRawStructLevel(sl validator.StructLevel) {
	in := sl.Current().Interface().(email.SendRawInput)
	if in.Raw == "" && in.Text == "" && in.HTML == "" {
		sl.ReportError(in.Raw, "raw", "Raw", "raw_or_body", "")
	}
}

// CheckIdentity validates a sender identity payload.
func CheckIdentity(in email.Identity) []Issue {
	return check(in)
}

// CheckSendEmail validates a structured send payload.
func CheckSendEmail(in email.SendEmailInput) []Issue {
	return check(in)
}

// CheckSendRaw validates a raw send payload.
func CheckSendRaw(in email.SendRawInput) []Issue {
	return check(in)
}

func check(in any) []Issue {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []Issue{{Message: err.Error()}}
	}

	issues := make([]Issue, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		issues = append(issues, Issue{Field: fe.Field(), Message: issueMessage(fe)})
	}
	return issues
}

// issueMessage renders a field error as a user-facing message.
func issueMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "text_or_html":
		return "Either text or html is required"
	case "raw_or_body":
		return "Raw or text/html is required"
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", "))
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("%s must contain at least %s entries", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
