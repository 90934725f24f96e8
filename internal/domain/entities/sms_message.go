package entities

import "time"

// SmsStatus represents the delivery lifecycle of an outbound SMS.
//
// Transitions are forward-only: a message is created pending and moves to
// sent or failed at most once. The usecase layer enforces this; the
// repositories only merge fields.

type SmsStatus string

const (
	SmsStatusPending SmsStatus = "pending"
	SmsStatusSent    SmsStatus = "sent"
	SmsStatusFailed  SmsStatus = "failed"
)

// SmsMaxMessageLen is the provider segment-concatenation limit for a single
// message body.
const SmsMaxMessageLen = 1600

// SmsMessage is an outbound notification tied to a quote request.
//
// Storage model (DynamoDB):
//   - PK: id
//
// MessageSid holds the provider message identifier and is populated once,
// on a successful dispatch.
type SmsMessage struct {
	ID             string    `json:"id"`
	RecipientPhone string    `json:"recipientPhone"`
	Message        string    `json:"message"`
	Status         SmsStatus `json:"status"`
	MessageSid     *string   `json:"messageSid"`
	SentAt         time.Time `json:"sentAt"`
}

// SmsMessageInput is the submittable shape: status, sid and timestamp are
// always server-assigned.
type SmsMessageInput struct {
	RecipientPhone string
	Message        string
}

// SmsMessageUpdate is the partial-update shape accepted after creation.
// Nil fields are left untouched by the merge.
type SmsMessageUpdate struct {
	Status     *SmsStatus
	MessageSid *string
}
