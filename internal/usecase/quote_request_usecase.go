package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/geovanereis/website-gsreistecnologia/internal/domain/entities"
	"github.com/geovanereis/website-gsreistecnologia/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrQuoteRequestNotFound  = errors.New("quote request not found")
	ErrInvalidQuoteRequestID = errors.New("invalid quote request id")
)

// ErrQuoteRequestInvalid carries the per-field violations of a rejected
// submission so the handler can enumerate them in the response body.
type ErrQuoteRequestInvalid struct {
	Fields []entities.FieldError
}

func (e *ErrQuoteRequestInvalid) Error() string {
	return "quote request failed validation"
}

// IQuoteNotifier is notified after a quote request has been persisted.
// Implementations must be best-effort: a notification failure never fails
// the submission.
type IQuoteNotifier interface {
	NotifyQuoteRequest(ctx context.Context, q entities.QuoteRequest)
}

// IQuoteRequestUseCase exposes the quote-request operations.
//
//   - Create => POST /api/quote-requests
//   - List   => the admin listing, kept off the router until auth lands
//   - GetByID => individual lookup

type IQuoteRequestUseCase interface {
	Create(ctx context.Context, in entities.QuoteRequestInput) (entities.QuoteRequest, error)
	List(ctx context.Context) ([]entities.QuoteRequest, error)
	GetByID(ctx context.Context, id string) (entities.QuoteRequest, error)
}

type QuoteRequestUseCase struct {
	repo     interfaces.IQuoteRequestRepository
	notifier IQuoteNotifier
}

var _ IQuoteRequestUseCase = (*QuoteRequestUseCase)(nil)

// NewQuoteRequestUseCase builds the usecase. notifier may be nil when no
// owner notification channel is configured.
func NewQuoteRequestUseCase(repo interfaces.IQuoteRequestRepository, notifier IQuoteNotifier) *QuoteRequestUseCase {
	return &QuoteRequestUseCase{repo: repo, notifier: notifier}
}

// Create validates the input, assigns id and creation timestamp and
// persists the record. On success the configured notifier is informed;
// notification failures are the notifier's problem, never the caller's.
func (u *QuoteRequestUseCase) Create(ctx context.Context, in entities.QuoteRequestInput) (entities.QuoteRequest, error) {
	if fieldErrs := in.Validate(); len(fieldErrs) > 0 {
		return entities.QuoteRequest{}, &ErrQuoteRequestInvalid{Fields: fieldErrs}
	}

	q := entities.QuoteRequest{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Email:     in.Email,
		Company:   in.Company,
		Phone:     in.Phone,
		Service:   in.Service,
		Message:   in.Message,
		CreatedAt: time.Now().UTC(),
	}

	created, err := u.repo.Create(ctx, q)
	if err != nil {
		return entities.QuoteRequest{}, err
	}
	log.Printf("[quote][usecase] created id=%s company=%s service=%s", created.ID, created.Company, created.Service)

	if u.notifier != nil {
		u.notifier.NotifyQuoteRequest(ctx, created)
	}
	return created, nil
}

func (u *QuoteRequestUseCase) List(ctx context.Context) ([]entities.QuoteRequest, error) {
	return u.repo.List(ctx)
}

func (u *QuoteRequestUseCase) GetByID(ctx context.Context, id string) (entities.QuoteRequest, error) {
	if id == "" {
		return entities.QuoteRequest{}, ErrInvalidQuoteRequestID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.QuoteRequest{}, err
	}
	if q.ID == "" {
		return entities.QuoteRequest{}, ErrQuoteRequestNotFound
	}
	return q, nil
}
