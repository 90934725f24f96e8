package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/geovanereis/website-gsreistecnologia/internal/domain/entities"
	mock_interfaces "github.com/geovanereis/website-gsreistecnologia/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func validQuoteInput() entities.QuoteRequestInput {
	return entities.QuoteRequestInput{
		Name:    "Ana",
		Email:   "ana@ex.com",
		Company: "Acme",
		Service: "Infraestrutura de TI",
	}
}

func TestQuoteRequestUseCase_Create(t *testing.T) {
	t.Run("invalid input enumerates fields and skips the repo", func(t *testing.T) {
		uc := NewQuoteRequestUseCase(nil, nil)

		_, err := uc.Create(context.Background(), entities.QuoteRequestInput{Email: "bad"})
		var invalid *ErrQuoteRequestInvalid
		if !errors.As(err, &invalid) {
			t.Fatalf("expected ErrQuoteRequestInvalid, got %v", err)
		}
		if len(invalid.Fields) != 4 {
			t.Fatalf("expected 4 field errors, got %v", invalid.Fields)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRequestRepository(ctrl)
		uc := NewQuoteRequestUseCase(repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.QuoteRequest{}, errors.New("db"))

		_, err := uc.Create(context.Background(), validQuoteInput())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("create success assigns id and timestamp", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRequestRepository(ctrl)
		uc := NewQuoteRequestUseCase(repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.QuoteRequest{})).DoAndReturn(
			func(_ context.Context, q entities.QuoteRequest) (entities.QuoteRequest, error) {
				if q.ID == "" || q.CreatedAt.IsZero() {
					t.Fatalf("expected server-assigned id and timestamp: %+v", q)
				}
				if q.Name != "Ana" || q.Email != "ana@ex.com" || q.Company != "Acme" || q.Service != "Infraestrutura de TI" {
					t.Fatalf("unexpected record: %+v", q)
				}
				return q, nil
			},
		)

		res, err := uc.Create(context.Background(), validQuoteInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "" {
			t.Fatalf("expected generated id")
		}
	})

	t.Run("notifier runs after creation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRequestRepository(ctrl)

		notified := 0
		uc := NewQuoteRequestUseCase(repo, notifierFunc(func(_ context.Context, q entities.QuoteRequest) {
			notified++
			if q.ID == "" {
				t.Fatalf("expected persisted record, got %+v", q)
			}
		}))

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.QuoteRequest) (entities.QuoteRequest, error) { return q, nil },
		)

		if _, err := uc.Create(context.Background(), validQuoteInput()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if notified != 1 {
			t.Fatalf("expected exactly one notification, got %d", notified)
		}
	})

	t.Run("notifier skipped on repo failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRequestRepository(ctrl)

		uc := NewQuoteRequestUseCase(repo, notifierFunc(func(_ context.Context, _ entities.QuoteRequest) {
			t.Fatalf("notifier must not run when creation fails")
		}))

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.QuoteRequest{}, errors.New("db"))

		if _, err := uc.Create(context.Background(), validQuoteInput()); err == nil {
			t.Fatalf("expected error")
		}
	})
}

type notifierFunc func(ctx context.Context, q entities.QuoteRequest)

func (f notifierFunc) NotifyQuoteRequest(ctx context.Context, q entities.QuoteRequest) { f(ctx, q) }

func TestQuoteRequestUseCase_GetByID(t *testing.T) {
	t.Run("empty id", func(t *testing.T) {
		uc := NewQuoteRequestUseCase(nil, nil)
		_, err := uc.GetByID(context.Background(), "")
		if !errors.Is(err, ErrInvalidQuoteRequestID) {
			t.Fatalf("expected ErrInvalidQuoteRequestID, got %v", err)
		}
	})

	t.Run("benign miss becomes not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRequestRepository(ctrl)
		uc := NewQuoteRequestUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.QuoteRequest{}, nil)

		_, err := uc.GetByID(context.Background(), "missing")
		if !errors.Is(err, ErrQuoteRequestNotFound) {
			t.Fatalf("expected ErrQuoteRequestNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRequestRepository(ctrl)
		uc := NewQuoteRequestUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.QuoteRequest{ID: "q-1"}, nil)

		res, err := uc.GetByID(context.Background(), "q-1")
		if err != nil || res.ID != "q-1" {
			t.Fatalf("unexpected result: %+v err=%v", res, err)
		}
	})
}

func TestQuoteRequestUseCase_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIQuoteRequestRepository(ctrl)
	uc := NewQuoteRequestUseCase(repo, nil)

	repo.EXPECT().List(gomock.Any()).Return([]entities.QuoteRequest{{ID: "b"}, {ID: "a"}}, nil)

	res, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res) != 2 || res[0].ID != "b" {
		t.Fatalf("expected repo order preserved, got %+v", res)
	}
}
