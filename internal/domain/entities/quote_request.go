package entities

import "time"

// QuoteRequest is a customer inquiry for a service estimate, submitted
// through the site contact form.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Records are immutable after creation: the service exposes no update or
// delete path, only creation via the submission pipeline and reads.

type QuoteRequest struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Company   string    `json:"company"`
	Phone     *string   `json:"phone"`
	Service   string    `json:"service"`
	Message   *string   `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// QuoteRequestInput is the normalized submittable shape: exactly the fields
// a caller may provide. ID and CreatedAt are always server-assigned.
type QuoteRequestInput struct {
	Name    string
	Email   string
	Company string
	Phone   *string
	Service string
	Message *string
}
