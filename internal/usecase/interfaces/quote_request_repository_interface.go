package interfaces

import (
	"context"

	"github.com/geovanereis/website-gsreistecnologia/internal/domain/entities"
)

// IQuoteRequestRepository abstracts persistence for QuoteRequest.
//
// Contract shared by both implementations (memory and DynamoDB):
//   - Create stores the already-populated record and returns it.
//   - GetByID returns the zero value (ID == "") on a benign miss, never an
//     error.
//   - List returns all records ordered by creation timestamp descending,
//     ties broken consistently within one process.

type IQuoteRequestRepository interface {
	Create(ctx context.Context, q entities.QuoteRequest) (entities.QuoteRequest, error)
	GetByID(ctx context.Context, id string) (entities.QuoteRequest, error)
	List(ctx context.Context) ([]entities.QuoteRequest, error)
}
