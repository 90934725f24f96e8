package request

import (
	"strings"

	"github.com/geovanereis/website-gsreistecnologia/internal/domain/entities"
)

// QuoteRequestRequest is the JSON payload accepted by
// POST /api/quote-requests. Unknown fields are ignored; missing required
// fields surface as validation errors, never as defaults. Binding tags are
// deliberately absent: validation happens in one pass over the normalized
// input so every violated field is enumerated in the response.
type QuoteRequestRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company"`
	Phone   string `json:"phone"`
	Service string `json:"service"`
	Message string `json:"message"`
}

// ToInput normalizes the payload into the domain input shape: fields are
// trimmed and empty optional fields become nil.
func (r QuoteRequestRequest) ToInput() entities.QuoteRequestInput {
	return entities.QuoteRequestInput{
		Name:    strings.TrimSpace(r.Name),
		Email:   strings.TrimSpace(r.Email),
		Company: strings.TrimSpace(r.Company),
		Phone:   optional(r.Phone),
		Service: strings.TrimSpace(r.Service),
		Message: optional(r.Message),
	}
}

func optional(s string) *string {
	v := strings.TrimSpace(s)
	if v == "" {
		return nil
	}
	return &v
}
