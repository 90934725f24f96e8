package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/geovanereis/website-gsreistecnologia/internal/domain/entities"
	"github.com/geovanereis/website-gsreistecnologia/internal/usecase/interfaces"
)

type smsMessageItem struct {
	record entities.SmsMessage
	seq    uint64
}

// SmsMessageRepository stores SMS messages in a mutex-guarded map. Update
// merges only the fields present in the patch; everything else keeps its
// stored value.
type SmsMessageRepository struct {
	mu    sync.RWMutex
	items map[string]smsMessageItem
	seq   uint64
}

var _ interfaces.ISmsMessageRepository = (*SmsMessageRepository)(nil)

func NewSmsMessageRepository() *SmsMessageRepository {
	return &SmsMessageRepository{items: map[string]smsMessageItem{}}
}

func (r *SmsMessageRepository) Create(_ context.Context, m entities.SmsMessage) (entities.SmsMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	r.items[m.ID] = smsMessageItem{record: m, seq: r.seq}
	return m, nil
}

func (r *SmsMessageRepository) GetByID(_ context.Context, id string) (entities.SmsMessage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.items[id].record, nil
}

func (r *SmsMessageRepository) List(_ context.Context) ([]entities.SmsMessage, error) {
	r.mu.RLock()
	items := make([]smsMessageItem, 0, len(r.items))
	for _, it := range r.items {
		items = append(items, it)
	}
	r.mu.RUnlock()

	sort.Slice(items, func(i, j int) bool {
		if !items[i].record.SentAt.Equal(items[j].record.SentAt) {
			return items[i].record.SentAt.After(items[j].record.SentAt)
		}
		return items[i].seq > items[j].seq
	})

	out := make([]entities.SmsMessage, 0, len(items))
	for _, it := range items {
		out = append(out, it.record)
	}
	return out, nil
}

func (r *SmsMessageRepository) Update(_ context.Context, id string, patch entities.SmsMessageUpdate) (entities.SmsMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	it, ok := r.items[id]
	if !ok {
		return entities.SmsMessage{}, nil
	}

	if patch.Status != nil {
		it.record.Status = *patch.Status
	}
	if patch.MessageSid != nil {
		sid := *patch.MessageSid
		it.record.MessageSid = &sid
	}
	r.items[id] = it
	return it.record, nil
}
