package quoteclient

import (
	"context"
	"errors"
	"strings"
	"sync"
)

// Outcome classifies one submission attempt.
type Outcome int

const (
	OutcomeSuccess Outcome = iota
	// OutcomeValidationFailed: local validation rejected the form; no
	// network call was made.
	OutcomeValidationFailed
	// OutcomeRejected: the server answered success:false.
	OutcomeRejected
	// OutcomeNetworkFailed: the request never produced a usable response.
	OutcomeNetworkFailed
)

// NoticeKind distinguishes success toasts from error toasts.
type NoticeKind int

const (
	NoticeSuccess NoticeKind = iota
	NoticeError
)

// Notice is a single user-visible notification. Every submission attempt
// produces exactly one.
type Notice struct {
	Kind    NoticeKind
	Title   string
	Message string
}

// Notifier receives the one notification of each attempt.
type Notifier interface {
	Notify(Notice)
}

// ErrSubmissionInFlight is returned when Submit is called while a previous
// attempt is still running; the attempt is refused without a notification.
var ErrSubmissionInFlight = errors.New("submission already in flight")

// User-visible messages. The success title/description come from the site
// toast; the failure fallbacks cover a server rejection without a message
// and a transport failure.
const (
	noticeSuccessTitle   = "Solicitação enviada!"
	noticeSuccessBody    = "Entraremos em contato em até 24 horas."
	noticeErrorTitle     = "Não foi possível enviar"
	noticeRejectFallback = "Não foi possível enviar sua solicitação. Tente novamente."
	noticeNetworkBody    = "Erro de conexão. Verifique sua internet e tente novamente."
)

// FormSession drives the form state machine: idle -> submitting -> outcome
// -> idle. Field values reset only on success; rejected and failed attempts
// keep them so the visitor can correct and retry.
type FormSession struct {
	client   *Client
	notifier Notifier

	mu         sync.Mutex
	submitting bool
	form       Form
}

func NewFormSession(client *Client, notifier Notifier) *FormSession {
	return &FormSession{client: client, notifier: notifier}
}

// SetForm replaces the current field values.
func (s *FormSession) SetForm(f Form) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.form = f
}

// Form returns the current field values.
func (s *FormSession) Form() Form {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form
}

// Submitting reports whether an attempt is in flight.
func (s *FormSession) Submitting() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.submitting
}

// Submit runs one submission attempt. Local validation short-circuits on
// the first violation without touching the network. Whatever the outcome,
// the session returns to idle and the notifier has been called exactly
// once (except for ErrSubmissionInFlight, which refuses the attempt).
func (s *FormSession) Submit(ctx context.Context) (Outcome, error) {
	s.mu.Lock()
	if s.submitting {
		s.mu.Unlock()
		return OutcomeNetworkFailed, ErrSubmissionInFlight
	}
	s.submitting = true
	form := s.form
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.submitting = false
		s.mu.Unlock()
	}()

	if msg := validateLocal(form); msg != "" {
		s.notifier.Notify(Notice{Kind: NoticeError, Title: noticeErrorTitle, Message: msg})
		return OutcomeValidationFailed, nil
	}

	resp, err := s.client.Submit(ctx, form)
	if err != nil {
		s.notifier.Notify(Notice{Kind: NoticeError, Title: noticeErrorTitle, Message: noticeNetworkBody})
		return OutcomeNetworkFailed, err
	}

	if !resp.Success {
		msg := strings.TrimSpace(resp.Message)
		if msg == "" {
			msg = noticeRejectFallback
		}
		s.notifier.Notify(Notice{Kind: NoticeError, Title: noticeErrorTitle, Message: msg})
		return OutcomeRejected, nil
	}

	s.mu.Lock()
	s.form = Form{}
	s.mu.Unlock()
	s.notifier.Notify(Notice{Kind: NoticeSuccess, Title: noticeSuccessTitle, Message: noticeSuccessBody})
	return OutcomeSuccess, nil
}

// validateLocal mirrors the server's required-field rules and returns the
// first violation's message, or "" when the form passes. The server remains
// the authority; this pass only saves the round-trip for obvious mistakes.
func validateLocal(f Form) string {
	if strings.TrimSpace(f.Name) == "" {
		return "Nome é obrigatório"
	}
	if !emailShape.MatchString(strings.TrimSpace(f.Email)) {
		return "Email inválido"
	}
	if strings.TrimSpace(f.Company) == "" {
		return "Nome da empresa é obrigatório"
	}
	if strings.TrimSpace(f.Service) == "" {
		return "Serviço é obrigatório"
	}
	return ""
}
