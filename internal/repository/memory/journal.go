package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jeffleon2/draftea-prepaid-service/internal/models"
)

// Journal keeps ledger entries in memory when no database is configured.
type Journal struct {
	mu      sync.RWMutex
	entries []models.LedgerEntry
}

func NewJournal() *Journal {
	return &Journal{}
}

func (j *Journal) Create(ctx context.Context, entry *models.LedgerEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	j.mu.Lock()
	defer j.mu.Unlock()
	j.entries = append(j.entries, *entry)
	return nil
}

func (j *Journal) GetAll(ctx context.Context) (*[]models.LedgerEntry, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()
	out := make([]models.LedgerEntry, len(j.entries))
	copy(out, j.entries)
	return &out, nil
}

// GetBy supports the "card_id = ?" filter used by the service.
func (j *Journal) GetBy(ctx context.Context, key string, value interface{}) (*[]models.LedgerEntry, error) {
	if key != "card_id = ?" {
		return nil, fmt.Errorf("unsupported journal filter %q", key)
	}
	cardID, ok := value.(int64)
	if !ok {
		return nil, fmt.Errorf("card_id filter expects int64, got %T", value)
	}

	j.mu.RLock()
	defer j.mu.RUnlock()
	out := make([]models.LedgerEntry, 0)
	for _, e := range j.entries {
		if e.CardID == cardID {
			out = append(out, e)
		}
	}
	return &out, nil
}
