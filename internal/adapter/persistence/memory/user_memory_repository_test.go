package memory

import (
	"context"
	"testing"

	"github.com/geovanereis/website-gsreistecnologia/internal/domain/entities"
)

func TestUserRepository_GetByUsername(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		repo := NewUserRepository()
		_, _ = repo.Create(ctx, entities.User{ID: "u-1", Username: "admin", Password: "hash"})

		got, err := repo.GetByUsername(ctx, "admin")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got.ID != "u-1" {
			t.Fatalf("expected u-1, got %+v", got)
		}
	})

	t.Run("miss is a zero value", func(t *testing.T) {
		repo := NewUserRepository()

		got, err := repo.GetByUsername(ctx, "nobody")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got.ID != "" {
			t.Fatalf("expected zero value, got %+v", got)
		}
	})

	t.Run("duplicates resolve to the lowest id", func(t *testing.T) {
		repo := NewUserRepository()
		_, _ = repo.Create(ctx, entities.User{ID: "u-2", Username: "admin"})
		_, _ = repo.Create(ctx, entities.User{ID: "u-1", Username: "admin"})

		for i := 0; i < 3; i++ {
			got, _ := repo.GetByUsername(ctx, "admin")
			if got.ID != "u-1" {
				t.Fatalf("expected u-1, got %s", got.ID)
			}
		}
	})
}
