package response

import (
	"time"

	"github.com/geovanereis/website-gsreistecnologia/internal/domain/entities"
)

// QuoteRequestResponse is the wire shape of a persisted quote request.
// Optional fields serialize as explicit nulls, matching the stored row.
type QuoteRequestResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Company   string    `json:"company"`
	Phone     *string   `json:"phone"`
	Service   string    `json:"service"`
	Message   *string   `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromQuoteRequest(q entities.QuoteRequest) QuoteRequestResponse {
	return QuoteRequestResponse{
		ID:        q.ID,
		Name:      q.Name,
		Email:     q.Email,
		Company:   q.Company,
		Phone:     q.Phone,
		Service:   q.Service,
		Message:   q.Message,
		CreatedAt: q.CreatedAt,
	}
}

func FromQuoteRequests(qs []entities.QuoteRequest) []QuoteRequestResponse {
	out := make([]QuoteRequestResponse, 0, len(qs))
	for _, q := range qs {
		out = append(out, FromQuoteRequest(q))
	}
	return out
}
