package interfaces

import "context"

// ISmsGateway dispatches an SMS through an external provider and returns
// the provider message identifier (sid).

type ISmsGateway interface {
	SendSms(ctx context.Context, to, body string) (sid string, err error)
}
