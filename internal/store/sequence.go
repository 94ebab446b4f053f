package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/abhisek/quizdeck/ent"
)

// journalSequence names the counter shared by every journal table.
const journalSequence = "journal"

// sequence hands out increasing numbers from one row of the sequences
// table. The mutex serializes callers in this process; ent runs the
// increment and the read-back in one transaction.
type sequence struct {
	mu     sync.Mutex
	client *ent.Client
	name   string
}

// newSequence seeds the named counter at 1 unless it already exists.
func newSequence(ctx context.Context, client *ent.Client, name string) (*sequence, error) {
	err := client.Sequence.Create().
		SetID(name).
		SetNextVal(1).
		Exec(ctx)
	if err != nil && !ent.IsConstraintError(err) {
		return nil, fmt.Errorf("seed sequence %s: %w", name, err)
	}
	return &sequence{client: client, name: name}, nil
}

// Next returns the current value and advances the counter.
func (s *sequence) Next(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row, err := s.client.Sequence.UpdateOneID(s.name).
		AddNextVal(1).
		Save(ctx)
	if ent.IsNotFound(err) {
		return 0, fmt.Errorf("sequence %s is not seeded", s.name)
	}
	if err != nil {
		return 0, fmt.Errorf("advance sequence %s: %w", s.name, err)
	}
	return row.NextVal - 1, nil
}
