package memory

import (
	"context"
	"slices"

	"github.com/jsamuelsen/wine-collection-service/internal/domain"
)

// BottleStore keeps bottles in insertion order and maintains the
// back-reference collections of the WinemakerStore it was built on.
//
// Not handled:
//   - Update does not move a bottle between winemakers when WinemakerID changes.
//   - Deleting a winemaker leaves its bottles in place.
type BottleStore struct {
	winemakers *WinemakerStore
	bottles    []domain.Bottle
	lastID     int
}

// NewBottleStore creates an empty store sharing the lock of winemakers.
func NewBottleStore(winemakers *WinemakerStore) *BottleStore {
	return &BottleStore{
		winemakers: winemakers,
		bottles:    make([]domain.Bottle, 0),
	}
}

// GetAll returns every bottle, oldest first.
func (s *BottleStore) GetAll(_ context.Context) []domain.Bottle {
	s.winemakers.mu.RLock()
	defer s.winemakers.mu.RUnlock()

	return slices.Clone(s.bottles)
}

// GetByWinemakerID returns the bottles of one winemaker, preserving order.
// The winemaker itself need not exist any more.
func (s *BottleStore) GetByWinemakerID(_ context.Context, winemakerID int) []domain.Bottle {
	s.winemakers.mu.RLock()
	defer s.winemakers.mu.RUnlock()

	return s.selectWhere(func(b domain.Bottle) bool {
		return b.WinemakerID == winemakerID
	})
}

// GetByID returns the bottle with the given id.
func (s *BottleStore) GetByID(_ context.Context, id int) (domain.Bottle, error) {
	s.winemakers.mu.RLock()
	defer s.winemakers.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return domain.Bottle{}, domain.NewNotFoundError("bottle", id)
	}

	return s.bottles[i], nil
}

// Add stores the bottle under a fresh id and links it to its winemaker.
// Both collections change together or not at all.
func (s *BottleStore) Add(_ context.Context, bottle domain.Bottle) (domain.Bottle, error) {
	s.winemakers.mu.Lock()
	defer s.winemakers.mu.Unlock()

	bottle.ID = s.lastID + 1
	if !s.winemakers.attachBottle(bottle) {
		return domain.Bottle{}, domain.NewReferentialIntegrityError(
			"bottle", "winemaker", bottle.WinemakerID,
		)
	}

	s.lastID = bottle.ID
	s.bottles = append(s.bottles, bottle)

	return bottle, nil
}

// Update replaces the bottle with the same id. WinemakerID is not re-checked.
func (s *BottleStore) Update(_ context.Context, bottle domain.Bottle) bool {
	s.winemakers.mu.Lock()
	defer s.winemakers.mu.Unlock()

	i := s.indexOf(bottle.ID)
	if i < 0 {
		return false
	}

	s.bottles[i] = bottle
	s.winemakers.refreshBottle(bottle)

	return true
}

// Delete removes the bottle and, if its winemaker still exists, the
// matching back-reference.
func (s *BottleStore) Delete(_ context.Context, id int) bool {
	s.winemakers.mu.Lock()
	defer s.winemakers.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false
	}

	s.winemakers.detachBottle(s.bottles[i].WinemakerID, id)
	s.bottles = slices.Delete(s.bottles, i, i+1)

	return true
}

// Filter returns the bottles that satisfy every active criterion in filter.
func (s *BottleStore) Filter(_ context.Context, filter domain.BottleFilter) []domain.Bottle {
	match := buildPredicate(filter)

	s.winemakers.mu.RLock()
	defer s.winemakers.mu.RUnlock()

	return s.selectWhere(match)
}

// selectWhere expects the read lock to be held.
func (s *BottleStore) selectWhere(match predicate) []domain.Bottle {
	out := make([]domain.Bottle, 0)
	for _, b := range s.bottles {
		if match(b) {
			out = append(out, b)
		}
	}

	return out
}

func (s *BottleStore) indexOf(id int) int {
	return slices.IndexFunc(s.bottles, func(b domain.Bottle) bool {
		return b.ID == id
	})
}
