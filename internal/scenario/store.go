// Package scenario keeps saved calculation scenarios in memory for
// side-by-side comparison. It holds inputs and the computed target total;
// there is no computation and no persistence here.
package scenario

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"comp-engine/internal/model"
)

type Scenario struct {
	ID             string                    `json:"id"`
	Seq            int                       `json:"seq"`
	Label          string                    `json:"label,omitempty"`
	SourceLocation string                    `json:"source_location"`
	TargetLocation string                    `json:"target_location"`
	SourceCurrency string                    `json:"source_currency"`
	TargetCurrency string                    `json:"target_currency"`
	Package        model.CompensationPackage `json:"package"`
	SourceTotal    float64                   `json:"source_total"`
	TargetTotal    float64                   `json:"target_total"`
	SavedAt        string                    `json:"saved_at"`
}

type Store struct {
	mu        sync.Mutex
	scenarios []Scenario
	seq       int
}

func NewStore() *Store {
	return &Store{}
}

// Save assigns the scenario an ID, sequence number and timestamp, stores it,
// and returns the stored copy.
func (s *Store) Save(sc Scenario) Scenario {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	sc.ID = uuid.New().String()
	sc.Seq = s.seq
	sc.SavedAt = time.Now().UTC().Format(time.RFC3339)
	s.scenarios = append(s.scenarios, sc)
	return sc
}

// List returns the saved scenarios in save order. The returned slice is a
// copy; mutating it does not affect the store.
func (s *Store) List() []Scenario {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Scenario, len(s.scenarios))
	copy(out, s.scenarios)
	return out
}

// Clear removes all saved scenarios. Sequence numbers restart from 1.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.scenarios = nil
	s.seq = 0
}
