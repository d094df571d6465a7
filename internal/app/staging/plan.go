// Package staging runs a short sequence of store writes as one unit.
//
// Steps are staged first and applied in order by Commit. When a step fails,
// the steps that already ran are undone in reverse order, so a multi-record
// write either lands completely or leaves nothing behind:
//
//	plan := staging.New(logger,
//	    staging.Func("add winemaker", addWinemaker, removeWinemaker),
//	    staging.Func(`add bottle "Merlot"`, addBottle, removeBottle),
//	)
//
//	if err := plan.Commit(ctx); err != nil {
//	    // nothing from the plan is left in the stores
//	}
//
// Each step takes the store lock on its own, so readers may briefly observe
// the partially applied plan before a rollback completes.
package staging

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
)

// ErrAlreadyCommitted is returned when committing a plan a second time.
var ErrAlreadyCommitted = errors.New("plan already committed")

// Step is one staged write.
type Step interface {
	// Apply performs the write.
	Apply(ctx context.Context) error

	// Undo reverts a successful Apply.
	Undo(ctx context.Context) error

	// Describe names the step in logs and errors.
	Describe() string
}

type funcStep struct {
	name  string
	apply func(context.Context) error
	undo  func(context.Context) error
}

// Func builds a Step from a pair of functions. undo may be nil.
func Func(name string, apply, undo func(context.Context) error) Step {
	return &funcStep{name: name, apply: apply, undo: undo}
}

func (s *funcStep) Apply(ctx context.Context) error { return s.apply(ctx) }

func (s *funcStep) Undo(ctx context.Context) error {
	if s.undo == nil {
		return nil
	}

	return s.undo(ctx)
}

func (s *funcStep) Describe() string { return s.name }

// Plan holds a fixed list of steps and applies them in order.
type Plan struct {
	mu        sync.Mutex
	steps     []Step
	committed bool
	logger    *slog.Logger
}

// New creates a plan of steps. Undo failures are logged to logger.
func New(logger *slog.Logger, steps ...Step) *Plan {
	if logger == nil {
		logger = slog.Default()
	}

	return &Plan{logger: logger, steps: steps}
}

// Len returns the number of staged steps.
func (p *Plan) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return len(p.steps)
}

// Commit applies every step in order. On failure it undoes the applied
// steps in reverse and returns the failing step's error, wrapped. The
// context is checked before each step, so a cancelled or expired ctx also
// rolls back.
// A plan can be committed once, whether or not the commit succeeded.
func (p *Plan) Commit(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.committed {
		return ErrAlreadyCommitted
	}

	p.committed = true

	for i, step := range p.steps {
		if err := ctx.Err(); err != nil {
			p.rollback(context.WithoutCancel(ctx), p.steps[:i])

			return fmt.Errorf("before step %q: %w", step.Describe(), err)
		}

		if err := step.Apply(ctx); err != nil {
			p.rollback(ctx, p.steps[:i])

			return fmt.Errorf("step %q failed: %w", step.Describe(), err)
		}
	}

	return nil
}

func (p *Plan) rollback(ctx context.Context, applied []Step) {
	for i := len(applied) - 1; i >= 0; i-- {
		if err := applied[i].Undo(ctx); err != nil {
			p.logger.WarnContext(ctx, "undo failed",
				slog.String("step", applied[i].Describe()),
				slog.Any("error", err),
			)
		}
	}
}
