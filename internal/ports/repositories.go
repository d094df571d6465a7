// Package ports defines interfaces for external dependencies.
// Ports are contracts that adapters implement, allowing the application layer
// to depend on abstractions rather than concrete implementations.
//
// Port Design Principles:
//   - Context as first parameter (always) for cancellation and deadlines
//   - Return domain types, never external DTOs or infrastructure types
//   - Error returns use domain error types (ErrNotFound, ErrReferentialIntegrity, etc.)
//   - Keep interfaces small and focused (Interface Segregation Principle)
package ports

import (
	"context"

	"github.com/jsamuelsen/wine-collection-service/internal/domain"
)

// WinemakerRepository stores winemakers in insertion order.
//
// Update and Delete report whether a record with the given id existed.
// A missing id is not an error at this layer; callers decide whether it matters.
type WinemakerRepository interface {
	// GetAll returns every winemaker, oldest first. Never nil.
	GetAll(ctx context.Context) []domain.Winemaker

	// GetByID returns the winemaker with the given id.
	// Returns domain.ErrNotFound if it does not exist.
	GetByID(ctx context.Context, id int) (domain.Winemaker, error)

	// Add assigns a fresh id, ignoring the one supplied, and appends the record.
	Add(ctx context.Context, winemaker domain.Winemaker) domain.Winemaker

	// Update replaces the winemaker with the same id at its current position.
	Update(ctx context.Context, winemaker domain.Winemaker) bool

	// Delete removes the winemaker. Bottles referencing it are left alone.
	Delete(ctx context.Context, id int) bool
}

// BottleRepository stores bottles in insertion order and keeps each
// winemaker's back-reference collection in step with it.
type BottleRepository interface {
	// GetAll returns every bottle, oldest first. Never nil.
	GetAll(ctx context.Context) []domain.Bottle

	// GetByWinemakerID returns the bottles whose WinemakerID matches, in order.
	GetByWinemakerID(ctx context.Context, winemakerID int) []domain.Bottle

	// GetByID returns the bottle with the given id.
	// Returns domain.ErrNotFound if it does not exist.
	GetByID(ctx context.Context, id int) (domain.Bottle, error)

	// Add assigns a fresh id and links the bottle to its winemaker.
	// Returns domain.ErrReferentialIntegrity, with nothing stored, if the
	// winemaker does not exist.
	Add(ctx context.Context, bottle domain.Bottle) (domain.Bottle, error)

	// Update replaces the bottle with the same id in place.
	Update(ctx context.Context, bottle domain.Bottle) bool

	// Delete removes the bottle and its back-reference.
	Delete(ctx context.Context, id int) bool

	// Filter returns the bottles matching every active criterion, in order.
	Filter(ctx context.Context, filter domain.BottleFilter) []domain.Bottle
}
