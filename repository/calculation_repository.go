package repository

import (
	"sync"
	"time"
)

// CalculationRecord is an audit entry for a completed calculation.
type CalculationRecord struct {
	Kind   string
	Input  any
	Result any
	At     time.Time
}

type CalculationRepository interface {
	Save(kind string, input, result any) error
}

// CalculationRepositoryMemory keeps a bounded in-memory log of the most
// recent calculations.
type CalculationRepositoryMemory struct {
	mu      sync.Mutex
	limit   int
	records []CalculationRecord
}

func NewCalculationRepositoryMemory(limit int) *CalculationRepositoryMemory {
	if limit <= 0 {
		limit = 1000
	}
	return &CalculationRepositoryMemory{
		limit:   limit,
		records: []CalculationRecord{},
	}
}

func (r *CalculationRepositoryMemory) Save(kind string, input, result any) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records = append(r.records, CalculationRecord{
		Kind:   kind,
		Input:  input,
		Result: result,
		At:     time.Now().UTC(),
	})
	if len(r.records) > r.limit {
		r.records = r.records[len(r.records)-r.limit:]
	}
	return nil
}

func (r *CalculationRepositoryMemory) Recent(n int) []CalculationRecord {
	r.mu.Lock()
	defer r.mu.Unlock()

	if n <= 0 || n > len(r.records) {
		n = len(r.records)
	}
	out := make([]CalculationRecord, n)
	copy(out, r.records[len(r.records)-n:])
	return out
}
