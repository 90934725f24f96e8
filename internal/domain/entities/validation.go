package entities

import (
	"fmt"
	"regexp"
	"strings"
)

// FieldError is a single field-level validation violation. The messages are
// part of the public API contract and mirror the ones the site form shows.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// emailPattern accepts the usual local@domain.tld shape. It is intentionally
// pragmatic rather than RFC-complete; the server re-validates nothing beyond
// syntax.
var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}$`)

// IsValidEmail reports whether s looks like a syntactically valid address.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// Validate checks the required-field rules for a quote request and returns
// one FieldError per violation. All violations are enumerated so the caller
// can report them together. Optional fields (phone, message) are
// unconstrained beyond type.
func (in QuoteRequestInput) Validate() []FieldError {
	var errs []FieldError
	if strings.TrimSpace(in.Name) == "" {
		errs = append(errs, FieldError{Field: "name", Message: "Nome é obrigatório"})
	}
	if !IsValidEmail(strings.TrimSpace(in.Email)) {
		errs = append(errs, FieldError{Field: "email", Message: "Email inválido"})
	}
	if strings.TrimSpace(in.Company) == "" {
		errs = append(errs, FieldError{Field: "company", Message: "Nome da empresa é obrigatório"})
	}
	if strings.TrimSpace(in.Service) == "" {
		errs = append(errs, FieldError{Field: "service", Message: "Serviço é obrigatório"})
	}
	return errs
}

// Validate checks the rules for an outbound SMS: non-empty recipient and a
// non-empty body within the provider length limit.
func (in SmsMessageInput) Validate() []FieldError {
	var errs []FieldError
	if strings.TrimSpace(in.RecipientPhone) == "" {
		errs = append(errs, FieldError{Field: "recipientPhone", Message: "Phone number is required"})
	}
	switch {
	case strings.TrimSpace(in.Message) == "":
		errs = append(errs, FieldError{Field: "message", Message: "Message is required"})
	case len([]rune(in.Message)) > SmsMaxMessageLen:
		errs = append(errs, FieldError{Field: "message", Message: "Message too long"})
	}
	return errs
}
