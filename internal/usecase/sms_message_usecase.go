package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/geovanereis/website-gsreistecnologia/internal/domain/entities"
	"github.com/geovanereis/website-gsreistecnologia/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrSmsMessageNotFound      = errors.New("sms message not found")
	ErrInvalidSmsMessageID     = errors.New("invalid sms message id")
	ErrInvalidSmsStatus        = errors.New("invalid sms status")
	ErrSmsStatusFinal          = errors.New("sms status already final")
	ErrSmsMessageSidAlreadySet = errors.New("sms message sid already set")
	ErrSmsGatewayNotConfigured = errors.New("sms gateway not configured")
)

// ErrSmsMessageInvalid carries per-field violations of a rejected SMS input.
type ErrSmsMessageInvalid struct {
	Fields []entities.FieldError
}

func (e *ErrSmsMessageInvalid) Error() string {
	return "sms message failed validation"
}

// ISmsMessageUseCase exposes the outbound-SMS operations.

type ISmsMessageUseCase interface {
	Create(ctx context.Context, in entities.SmsMessageInput) (entities.SmsMessage, error)
	GetByID(ctx context.Context, id string) (entities.SmsMessage, error)
	List(ctx context.Context) ([]entities.SmsMessage, error)
	Update(ctx context.Context, id string, patch entities.SmsMessageUpdate) (entities.SmsMessage, error)
	Dispatch(ctx context.Context, id string) (entities.SmsMessage, error)
}

type SmsMessageUseCase struct {
	repo       interfaces.ISmsMessageRepository
	gateway    interfaces.ISmsGateway
	ownerPhone string
}

var _ ISmsMessageUseCase = (*SmsMessageUseCase)(nil)
var _ IQuoteNotifier = (*SmsMessageUseCase)(nil)

// NewSmsMessageUseCase builds the usecase. gateway may be nil (Dispatch then
// marks messages failed); ownerPhone is the recipient for quote-request
// notifications and may be empty to disable them.
func NewSmsMessageUseCase(repo interfaces.ISmsMessageRepository, gateway interfaces.ISmsGateway, ownerPhone string) *SmsMessageUseCase {
	return &SmsMessageUseCase{repo: repo, gateway: gateway, ownerPhone: ownerPhone}
}

// Create validates the input and stores the message in its initial state:
// status pending, no provider sid, sent timestamp now.
func (u *SmsMessageUseCase) Create(ctx context.Context, in entities.SmsMessageInput) (entities.SmsMessage, error) {
	if fieldErrs := in.Validate(); len(fieldErrs) > 0 {
		return entities.SmsMessage{}, &ErrSmsMessageInvalid{Fields: fieldErrs}
	}

	m := entities.SmsMessage{
		ID:             uuid.NewString(),
		RecipientPhone: in.RecipientPhone,
		Message:        in.Message,
		Status:         entities.SmsStatusPending,
		MessageSid:     nil,
		SentAt:         time.Now().UTC(),
	}
	return u.repo.Create(ctx, m)
}

func (u *SmsMessageUseCase) GetByID(ctx context.Context, id string) (entities.SmsMessage, error) {
	if id == "" {
		return entities.SmsMessage{}, ErrInvalidSmsMessageID
	}

	m, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.SmsMessage{}, err
	}
	if m.ID == "" {
		return entities.SmsMessage{}, ErrSmsMessageNotFound
	}
	return m, nil
}

func (u *SmsMessageUseCase) List(ctx context.Context) ([]entities.SmsMessage, error) {
	return u.repo.List(ctx)
}

// Update applies a partial update restricted to {status, messageSid}.
// Status moves forward only (pending -> sent|failed) and the sid is set at
// most once; violating either rule is an error, not a silent no-op.
func (u *SmsMessageUseCase) Update(ctx context.Context, id string, patch entities.SmsMessageUpdate) (entities.SmsMessage, error) {
	if id == "" {
		return entities.SmsMessage{}, ErrInvalidSmsMessageID
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.SmsMessage{}, err
	}
	if existing.ID == "" {
		return entities.SmsMessage{}, ErrSmsMessageNotFound
	}

	if patch.Status != nil {
		switch *patch.Status {
		case entities.SmsStatusPending, entities.SmsStatusSent, entities.SmsStatusFailed:
		default:
			return entities.SmsMessage{}, ErrInvalidSmsStatus
		}
		if existing.Status != entities.SmsStatusPending && *patch.Status != existing.Status {
			return entities.SmsMessage{}, ErrSmsStatusFinal
		}
	}
	if patch.MessageSid != nil && existing.MessageSid != nil {
		return entities.SmsMessage{}, ErrSmsMessageSidAlreadySet
	}

	updated, err := u.repo.Update(ctx, id, patch)
	if err != nil {
		return entities.SmsMessage{}, err
	}
	if updated.ID == "" {
		return entities.SmsMessage{}, ErrSmsMessageNotFound
	}
	return updated, nil
}

// Dispatch sends a pending message through the gateway and records the
// outcome: sent plus provider sid on success, failed otherwise. The
// gateway error is returned alongside the failed record.
func (u *SmsMessageUseCase) Dispatch(ctx context.Context, id string) (entities.SmsMessage, error) {
	m, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.SmsMessage{}, err
	}
	if m.Status != entities.SmsStatusPending {
		return entities.SmsMessage{}, ErrSmsStatusFinal
	}

	if u.gateway == nil {
		_, _ = u.markFailed(ctx, id)
		return entities.SmsMessage{}, ErrSmsGatewayNotConfigured
	}

	sid, err := u.gateway.SendSms(ctx, m.RecipientPhone, m.Message)
	if err != nil {
		log.Printf("[sms][usecase] dispatch failed id=%s err=%v", id, err)
		failed, markErr := u.markFailed(ctx, id)
		if markErr != nil {
			return entities.SmsMessage{}, markErr
		}
		return failed, err
	}

	sent := entities.SmsStatusSent
	updated, err := u.Update(ctx, id, entities.SmsMessageUpdate{Status: &sent, MessageSid: &sid})
	if err != nil {
		return entities.SmsMessage{}, err
	}
	log.Printf("[sms][usecase] dispatched id=%s sid=%s", id, sid)
	return updated, nil
}

// NotifyQuoteRequest records and dispatches the owner notification for a
// freshly persisted quote request. Best-effort: failures are logged only.
func (u *SmsMessageUseCase) NotifyQuoteRequest(ctx context.Context, q entities.QuoteRequest) {
	if u.ownerPhone == "" {
		return
	}

	body := fmt.Sprintf("Nova solicitação de orçamento: %s (%s) - %s", q.Name, q.Company, q.Service)
	if r := []rune(body); len(r) > entities.SmsMaxMessageLen {
		body = string(r[:entities.SmsMaxMessageLen])
	}

	created, err := u.Create(ctx, entities.SmsMessageInput{RecipientPhone: u.ownerPhone, Message: body})
	if err != nil {
		log.Printf("[sms][usecase] notification create failed quote_id=%s err=%v", q.ID, err)
		return
	}
	if _, err := u.Dispatch(ctx, created.ID); err != nil {
		log.Printf("[sms][usecase] notification dispatch failed quote_id=%s sms_id=%s err=%v", q.ID, created.ID, err)
	}
}

func (u *SmsMessageUseCase) markFailed(ctx context.Context, id string) (entities.SmsMessage, error) {
	failed := entities.SmsStatusFailed
	return u.Update(ctx, id, entities.SmsMessageUpdate{Status: &failed})
}
