package response

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/geovanereis/website-gsreistecnologia/internal/domain/entities"
)

func TestQuoteRequestCreated(t *testing.T) {
	phone := "+5511988887777"
	q := entities.QuoteRequest{
		ID:        "q-1",
		Name:      "Ana",
		Email:     "ana@ex.com",
		Company:   "Acme",
		Phone:     &phone,
		Service:   "Consultoria em TI",
		CreatedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}

	raw, err := json.Marshal(QuoteRequestCreated(q))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	body := string(raw)

	for _, want := range []string{
		`"success":true`,
		`"message":"Solicitação de orçamento enviada com sucesso!"`,
		`"id":"q-1"`,
		`"phone":"+5511988887777"`,
		`"message":null`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %s: %s", want, body)
		}
	}
	if strings.Contains(body, `"errors"`) {
		t.Errorf("errors should be omitted on success: %s", body)
	}
}

func TestValidationFailed(t *testing.T) {
	raw, err := json.Marshal(ValidationFailed([]entities.FieldError{
		{Field: "email", Message: "Email inválido"},
	}))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	body := string(raw)

	if !strings.Contains(body, `"success":false`) || !strings.Contains(body, `"message":"Dados inválidos"`) {
		t.Fatalf("unexpected envelope: %s", body)
	}
	if !strings.Contains(body, `"errors":[{"field":"email","message":"Email inválido"}]`) {
		t.Fatalf("unexpected errors: %s", body)
	}
	if strings.Contains(body, `"data"`) {
		t.Fatalf("data should be omitted on rejection: %s", body)
	}
}

func TestInternalError(t *testing.T) {
	raw, err := json.Marshal(InternalError())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != `{"success":false,"message":"Erro interno do servidor"}` {
		t.Fatalf("unexpected body: %s", raw)
	}
}
