// Package memory provides the in-process inventory stores.
//
// A WinemakerStore and the BottleStore built on it share one lock, so
// operations that touch both collections are atomic to every reader.
// Stores are created once at startup and live for the life of the process.
package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/jsamuelsen/wine-collection-service/internal/domain"
)

// WinemakerStore keeps winemakers in insertion order.
type WinemakerStore struct {
	mu         *sync.RWMutex
	winemakers []domain.Winemaker
	lastID     int
}

// NewWinemakerStore creates an empty store.
func NewWinemakerStore() *WinemakerStore {
	return &WinemakerStore{
		mu:         &sync.RWMutex{},
		winemakers: make([]domain.Winemaker, 0),
	}
}

// GetAll returns copies of every winemaker, oldest first.
func (s *WinemakerStore) GetAll(_ context.Context) []domain.Winemaker {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Winemaker, len(s.winemakers))
	for i, w := range s.winemakers {
		out[i] = w.Clone()
	}

	return out
}

// GetByID returns a copy of the winemaker with the given id.
func (s *WinemakerStore) GetByID(_ context.Context, id int) (domain.Winemaker, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return domain.Winemaker{}, domain.NewNotFoundError("winemaker", id)
	}

	return s.winemakers[i].Clone(), nil
}

// Add stores the winemaker under a fresh id and returns the stored copy.
// Any supplied id or back-references are discarded.
func (s *WinemakerStore) Add(_ context.Context, winemaker domain.Winemaker) domain.Winemaker {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastID++
	winemaker.ID = s.lastID
	winemaker.Bottles = make([]domain.Bottle, 0)
	s.winemakers = append(s.winemakers, winemaker)

	return winemaker.Clone()
}

// Update replaces name and address of the winemaker with the same id.
// The back-reference collection stays as the bottle store left it.
func (s *WinemakerStore) Update(_ context.Context, winemaker domain.Winemaker) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(winemaker.ID)
	if i < 0 {
		return false
	}

	winemaker.Bottles = s.winemakers[i].Bottles
	s.winemakers[i] = winemaker

	return true
}

// Delete removes the winemaker. It does not cascade to bottles.
func (s *WinemakerStore) Delete(_ context.Context, id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false
	}

	s.winemakers = slices.Delete(s.winemakers, i, i+1)

	return true
}

// Name implements ports.HealthChecker.
func (s *WinemakerStore) Name() string {
	return "inventory-store"
}

// Check implements ports.HealthChecker. The store only fails when the lock
// cannot be taken before ctx ends.
func (s *WinemakerStore) Check(ctx context.Context) error {
	acquired := make(chan struct{})

	go func() {
		s.mu.RLock()
		close(acquired)
		s.mu.RUnlock()
	}()

	select {
	case <-acquired:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// The helpers below expect s.mu to be held by the caller.

func (s *WinemakerStore) indexOf(id int) int {
	return slices.IndexFunc(s.winemakers, func(w domain.Winemaker) bool {
		return w.ID == id
	})
}

// attachBottle appends bottle to the owner's back-references.
func (s *WinemakerStore) attachBottle(bottle domain.Bottle) bool {
	i := s.indexOf(bottle.WinemakerID)
	if i < 0 {
		return false
	}

	s.winemakers[i].Bottles = append(s.winemakers[i].Bottles, bottle)

	return true
}

// detachBottle drops bottleID from the back-references of winemakerID, if
// that winemaker still exists.
func (s *WinemakerStore) detachBottle(winemakerID, bottleID int) {
	i := s.indexOf(winemakerID)
	if i < 0 {
		return
	}

	s.winemakers[i].Bottles = slices.DeleteFunc(s.winemakers[i].Bottles, func(b domain.Bottle) bool {
		return b.ID == bottleID
	})
}

// refreshBottle overwrites every embedded copy of the bottle in place.
// It never moves a back-reference to a different winemaker.
func (s *WinemakerStore) refreshBottle(bottle domain.Bottle) {
	for i := range s.winemakers {
		for j := range s.winemakers[i].Bottles {
			if s.winemakers[i].Bottles[j].ID == bottle.ID {
				s.winemakers[i].Bottles[j] = bottle
			}
		}
	}
}
