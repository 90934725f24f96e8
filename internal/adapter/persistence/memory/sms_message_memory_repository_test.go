package memory

import (
	"context"
	"testing"
	"time"

	"github.com/geovanereis/website-gsreistecnologia/internal/domain/entities"
)

func TestSmsMessageRepository_Update(t *testing.T) {
	ctx := context.Background()

	newStored := func(t *testing.T) (*SmsMessageRepository, entities.SmsMessage) {
		t.Helper()
		repo := NewSmsMessageRepository()
		stored, err := repo.Create(ctx, entities.SmsMessage{
			ID:             "sms-1",
			RecipientPhone: "+5511999999999",
			Message:        "Nova solicitação de orçamento",
			Status:         entities.SmsStatusPending,
			SentAt:         time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		return repo, stored
	}

	t.Run("patches only the given fields", func(t *testing.T) {
		repo, stored := newStored(t)

		status := entities.SmsStatusSent
		updated, err := repo.Update(ctx, "sms-1", entities.SmsMessageUpdate{Status: &status})
		if err != nil {
			t.Fatalf("update: %v", err)
		}
		if updated.Status != entities.SmsStatusSent {
			t.Fatalf("expected status sent, got %s", updated.Status)
		}
		if updated.MessageSid != nil {
			t.Fatalf("sid should stay unset, got %v", *updated.MessageSid)
		}
		if updated.RecipientPhone != stored.RecipientPhone || updated.Message != stored.Message {
			t.Fatalf("untouched fields changed: %+v", updated)
		}
	})

	t.Run("sid patch copies the value", func(t *testing.T) {
		repo, _ := newStored(t)

		sid := "SM123"
		updated, err := repo.Update(ctx, "sms-1", entities.SmsMessageUpdate{MessageSid: &sid})
		if err != nil {
			t.Fatalf("update: %v", err)
		}
		sid = "mutated"
		got, _ := repo.GetByID(ctx, "sms-1")
		if got.MessageSid == nil || *got.MessageSid != "SM123" {
			t.Fatalf("expected stored sid SM123, got %+v", got.MessageSid)
		}
		if updated.MessageSid == nil || *updated.MessageSid != "SM123" {
			t.Fatalf("expected returned sid SM123, got %+v", updated.MessageSid)
		}
	})

	t.Run("unknown id is a zero value, not an error", func(t *testing.T) {
		repo, _ := newStored(t)

		status := entities.SmsStatusSent
		got, err := repo.Update(ctx, "missing", entities.SmsMessageUpdate{Status: &status})
		if err != nil {
			t.Fatalf("update: %v", err)
		}
		if got.ID != "" {
			t.Fatalf("expected zero value, got %+v", got)
		}
	})
}

func TestSmsMessageRepository_List(t *testing.T) {
	ctx := context.Background()
	repo := NewSmsMessageRepository()
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	for i, id := range []string{"a", "b", "c"} {
		_, _ = repo.Create(ctx, entities.SmsMessage{
			ID:     id,
			Status: entities.SmsStatusPending,
			SentAt: base.Add(time.Duration(i) * time.Second),
		})
	}

	got, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := []string{"c", "b", "a"}
	for i, m := range got {
		if m.ID != want[i] {
			t.Fatalf("position %d: expected %s, got %s", i, want[i], m.ID)
		}
	}
}
