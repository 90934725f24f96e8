// Package memory provides map-backed repository implementations. State
// lives in process memory; every mutation is serialized behind a mutex so
// concurrent creations neither corrupt the maps nor expose half-written
// records. None of the operations fail: a benign miss is a zero value.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/geovanereis/website-gsreistecnologia/internal/domain/entities"
	"github.com/geovanereis/website-gsreistecnologia/internal/usecase/interfaces"
)

type quoteRequestItem struct {
	record entities.QuoteRequest
	seq    uint64
}

// QuoteRequestRepository stores quote requests in a mutex-guarded map.
// Listing orders newest-first; equal timestamps fall back to insertion
// sequence so the order stays consistent within one process.
type QuoteRequestRepository struct {
	mu    sync.RWMutex
	items map[string]quoteRequestItem
	seq   uint64
}

var _ interfaces.IQuoteRequestRepository = (*QuoteRequestRepository)(nil)

func NewQuoteRequestRepository() *QuoteRequestRepository {
	return &QuoteRequestRepository{items: map[string]quoteRequestItem{}}
}

func (r *QuoteRequestRepository) Create(_ context.Context, q entities.QuoteRequest) (entities.QuoteRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	r.items[q.ID] = quoteRequestItem{record: q, seq: r.seq}
	return q, nil
}

func (r *QuoteRequestRepository) GetByID(_ context.Context, id string) (entities.QuoteRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.items[id].record, nil
}

func (r *QuoteRequestRepository) List(_ context.Context) ([]entities.QuoteRequest, error) {
	r.mu.RLock()
	items := make([]quoteRequestItem, 0, len(r.items))
	for _, it := range r.items {
		items = append(items, it)
	}
	r.mu.RUnlock()

	sort.Slice(items, func(i, j int) bool {
		if !items[i].record.CreatedAt.Equal(items[j].record.CreatedAt) {
			return items[i].record.CreatedAt.After(items[j].record.CreatedAt)
		}
		return items[i].seq > items[j].seq
	})

	out := make([]entities.QuoteRequest, 0, len(items))
	for _, it := range items {
		out = append(out, it.record)
	}
	return out, nil
}
