package interfaces

import (
	"context"

	"github.com/geovanereis/website-gsreistecnologia/internal/domain/entities"
)

// ISmsMessageRepository abstracts persistence for SmsMessage.
//
// Update merges only the non-nil fields of the patch into the stored record
// and returns the updated record, or the zero value when the id is unknown.
// Unspecified fields must never be clobbered. Transition rules live in the
// usecase, not here.

type ISmsMessageRepository interface {
	Create(ctx context.Context, m entities.SmsMessage) (entities.SmsMessage, error)
	GetByID(ctx context.Context, id string) (entities.SmsMessage, error)
	List(ctx context.Context) ([]entities.SmsMessage, error)
	Update(ctx context.Context, id string, patch entities.SmsMessageUpdate) (entities.SmsMessage, error)
}
