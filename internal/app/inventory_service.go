// Package app contains application services that orchestrate use cases.
// This is the application layer in Clean Architecture - it coordinates
// domain logic and infrastructure through ports.
//
// Application Layer Responsibilities:
//   - Orchestrate use cases (inventory workflows)
//   - Coordinate between domain and infrastructure
//   - Handle cross-cutting concerns (logging, tracing, metrics)
//
// What does NOT belong here:
//   - HTTP specifics (that's adapters)
//   - Storage details (that's repository adapters)
//   - Core domain logic (that's the domain layer)
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/wine-collection-service/internal/app/staging"
	"github.com/jsamuelsen/wine-collection-service/internal/domain"
	"github.com/jsamuelsen/wine-collection-service/internal/platform/logging"
	"github.com/jsamuelsen/wine-collection-service/internal/ports"
)

const tracerName = "github.com/jsamuelsen/wine-collection-service/internal/app"

const (
	entityWinemaker = "winemaker"
	entityBottle    = "bottle"
)

// InventoryService orchestrates winemaker and bottle use cases.
// It depends on port interfaces, not concrete implementations.
type InventoryService struct {
	winemakers ports.WinemakerRepository
	bottles    ports.BottleRepository
	logger     *slog.Logger
	tracer     trace.Tracer
	metrics    *inventoryMetrics
	strict     bool
}

// InventoryServiceConfig contains the dependencies of the inventory service.
type InventoryServiceConfig struct {
	Winemakers ports.WinemakerRepository
	Bottles    ports.BottleRepository
	Logger     *slog.Logger

	// Registerer receives the inventory collectors.
	// Defaults to prometheus.DefaultRegisterer.
	Registerer prometheus.Registerer

	// StrictMutations turns updates and deletes of unknown ids into
	// domain.NotFoundError instead of a logged no-op.
	StrictMutations bool
}

// NewInventoryService creates the service. It panics when a repository is
// missing, since nothing can be served without one.
func NewInventoryService(cfg InventoryServiceConfig) *InventoryService {
	if cfg.Winemakers == nil || cfg.Bottles == nil {
		panic("app: inventory service requires winemaker and bottle repositories")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	reg := cfg.Registerer
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	return &InventoryService{
		winemakers: cfg.Winemakers,
		bottles:    cfg.Bottles,
		logger:     logger.With(slog.String("component", "app.InventoryService")),
		tracer:     otel.Tracer(tracerName),
		metrics:    newInventoryMetrics(reg, cfg.Winemakers, cfg.Bottles),
		strict:     cfg.StrictMutations,
	}
}

// ListWinemakers returns every winemaker with its bottles, oldest first.
func (s *InventoryService) ListWinemakers(ctx context.Context) []domain.Winemaker {
	ctx, span, _ := s.begin(ctx, "ListWinemakers")
	defer span.End()

	winemakers := s.winemakers.GetAll(ctx)
	span.SetAttributes(attribute.Int("inventory.result_count", len(winemakers)))
	s.finish(span, entityWinemaker, "list", outcomeOK, nil)

	return winemakers
}

// GetWinemaker returns the winemaker with the given id.
func (s *InventoryService) GetWinemaker(ctx context.Context, id int) (domain.Winemaker, error) {
	ctx, span, logger := s.begin(ctx, "GetWinemaker", attribute.Int("winemaker.id", id))
	defer span.End()

	logger.DebugContext(ctx, "fetching winemaker", slog.Int("winemaker_id", id))

	winemaker, err := s.winemakers.GetByID(ctx, id)
	if err != nil {
		err = fmt.Errorf("getting winemaker: %w", err)
		s.finish(span, entityWinemaker, "get", outcomeOf(err), err)

		return domain.Winemaker{}, err
	}

	s.finish(span, entityWinemaker, "get", outcomeOK, nil)

	return winemaker, nil
}

// CreateWinemaker stores a new winemaker. Bottles nested in the request are
// added after it and linked to the new id, in the order given. If any nested
// bottle is rejected, everything added by the call is removed again.
func (s *InventoryService) CreateWinemaker(ctx context.Context, winemaker domain.Winemaker) (domain.Winemaker, error) {
	ctx, span, logger := s.begin(ctx, "CreateWinemaker",
		attribute.Int("winemaker.nested_bottles", len(winemaker.Bottles)),
	)
	defer span.End()

	nested := winemaker.Bottles
	steps := make([]staging.Step, 0, len(nested)+1)

	var created domain.Winemaker

	steps = append(steps, staging.Func("add winemaker",
		func(ctx context.Context) error {
			created = s.winemakers.Add(ctx, winemaker)
			return nil
		},
		func(ctx context.Context) error {
			if !s.winemakers.Delete(ctx, created.ID) {
				return domain.NewNotFoundError(entityWinemaker, created.ID)
			}
			return nil
		},
	))

	for _, bottle := range nested {
		var addedID int

		steps = append(steps, staging.Func("add bottle "+strconv.Quote(bottle.Name),
			func(ctx context.Context) error {
				bottle.WinemakerID = created.ID

				added, err := s.bottles.Add(ctx, bottle)
				if err != nil {
					return err
				}

				addedID = added.ID
				logger.DebugContext(ctx, "added nested bottle", slog.Int("bottle_id", added.ID))

				return nil
			},
			func(ctx context.Context) error {
				if !s.bottles.Delete(ctx, addedID) {
					return domain.NewNotFoundError(entityBottle, addedID)
				}
				return nil
			},
		))
	}

	if err := staging.New(logger, steps...).Commit(ctx); err != nil {
		s.noteReferentialFailure(ctx, logger, err)

		err = fmt.Errorf("creating winemaker: %w", err)
		s.finish(span, entityWinemaker, "create", outcomeOf(err), err)

		return domain.Winemaker{}, err
	}

	span.SetAttributes(attribute.Int("winemaker.id", created.ID))

	if len(nested) > 0 {
		s.metrics.operations.WithLabelValues(entityBottle, "create", outcomeOK).Add(float64(len(nested)))

		if refreshed, err := s.winemakers.GetByID(ctx, created.ID); err == nil {
			created = refreshed
		}
	}

	logger.InfoContext(ctx, "winemaker created",
		slog.Int("winemaker_id", created.ID),
		slog.Int("bottle_count", len(created.Bottles)),
	)
	s.finish(span, entityWinemaker, "create", outcomeOK, nil)

	return created, nil
}

// UpdateWinemaker replaces the name and address of an existing winemaker.
func (s *InventoryService) UpdateWinemaker(ctx context.Context, winemaker domain.Winemaker) error {
	ctx, span, logger := s.begin(ctx, "UpdateWinemaker", attribute.Int("winemaker.id", winemaker.ID))
	defer span.End()

	if !s.winemakers.Update(ctx, winemaker) {
		err := s.missing(ctx, logger, entityWinemaker, winemaker.ID)
		s.finish(span, entityWinemaker, "update", outcomeNotFound, err)

		return err
	}

	logger.InfoContext(ctx, "winemaker updated", slog.Int("winemaker_id", winemaker.ID))
	s.finish(span, entityWinemaker, "update", outcomeOK, nil)

	return nil
}

// DeleteWinemaker removes a winemaker. Its bottles stay in the collection.
func (s *InventoryService) DeleteWinemaker(ctx context.Context, id int) error {
	ctx, span, logger := s.begin(ctx, "DeleteWinemaker", attribute.Int("winemaker.id", id))
	defer span.End()

	if !s.winemakers.Delete(ctx, id) {
		err := s.missing(ctx, logger, entityWinemaker, id)
		s.finish(span, entityWinemaker, "delete", outcomeNotFound, err)

		return err
	}

	logger.InfoContext(ctx, "winemaker deleted", slog.Int("winemaker_id", id))
	s.finish(span, entityWinemaker, "delete", outcomeOK, nil)

	return nil
}

// ListBottles returns every bottle, oldest first.
func (s *InventoryService) ListBottles(ctx context.Context) []domain.Bottle {
	ctx, span, _ := s.begin(ctx, "ListBottles")
	defer span.End()

	bottles := s.bottles.GetAll(ctx)
	span.SetAttributes(attribute.Int("inventory.result_count", len(bottles)))
	s.finish(span, entityBottle, "list", outcomeOK, nil)

	return bottles
}

// ListBottlesByWinemaker returns the bottles that reference winemakerID.
// The winemaker does not have to exist.
func (s *InventoryService) ListBottlesByWinemaker(ctx context.Context, winemakerID int) []domain.Bottle {
	ctx, span, _ := s.begin(ctx, "ListBottlesByWinemaker", attribute.Int("winemaker.id", winemakerID))
	defer span.End()

	bottles := s.bottles.GetByWinemakerID(ctx, winemakerID)
	span.SetAttributes(attribute.Int("inventory.result_count", len(bottles)))
	s.finish(span, entityBottle, "list_by_winemaker", outcomeOK, nil)

	return bottles
}

// GetBottle returns the bottle with the given id.
func (s *InventoryService) GetBottle(ctx context.Context, id int) (domain.Bottle, error) {
	ctx, span, logger := s.begin(ctx, "GetBottle", attribute.Int("bottle.id", id))
	defer span.End()

	logger.DebugContext(ctx, "fetching bottle", slog.Int("bottle_id", id))

	bottle, err := s.bottles.GetByID(ctx, id)
	if err != nil {
		err = fmt.Errorf("getting bottle: %w", err)
		s.finish(span, entityBottle, "get", outcomeOf(err), err)

		return domain.Bottle{}, err
	}

	s.finish(span, entityBottle, "get", outcomeOK, nil)

	return bottle, nil
}

// FilterBottles returns the bottles matching every active criterion.
func (s *InventoryService) FilterBottles(ctx context.Context, filter domain.BottleFilter) []domain.Bottle {
	ctx, span, logger := s.begin(ctx, "FilterBottles", attribute.Bool("filter.empty", filter.IsEmpty()))
	defer span.End()

	bottles := s.bottles.Filter(ctx, filter)

	logger.DebugContext(ctx, "filtered bottles", slog.Int("result_count", len(bottles)))
	span.SetAttributes(attribute.Int("inventory.result_count", len(bottles)))
	s.finish(span, entityBottle, "filter", outcomeOK, nil)

	return bottles
}

// CreateBottle stores a new bottle and links it to its winemaker.
// Returns domain.ErrReferentialIntegrity if the winemaker does not exist.
func (s *InventoryService) CreateBottle(ctx context.Context, bottle domain.Bottle) (domain.Bottle, error) {
	ctx, span, logger := s.begin(ctx, "CreateBottle", attribute.Int("winemaker.id", bottle.WinemakerID))
	defer span.End()

	created, err := s.bottles.Add(ctx, bottle)
	if err != nil {
		s.noteReferentialFailure(ctx, logger, err)

		err = fmt.Errorf("creating bottle: %w", err)
		s.finish(span, entityBottle, "create", outcomeOf(err), err)

		return domain.Bottle{}, err
	}

	span.SetAttributes(attribute.Int("bottle.id", created.ID))
	logger.InfoContext(ctx, "bottle created",
		slog.Int("bottle_id", created.ID),
		slog.Int("winemaker_id", created.WinemakerID),
	)
	s.finish(span, entityBottle, "create", outcomeOK, nil)

	return created, nil
}

// UpdateBottle replaces an existing bottle wholesale.
func (s *InventoryService) UpdateBottle(ctx context.Context, bottle domain.Bottle) error {
	ctx, span, logger := s.begin(ctx, "UpdateBottle", attribute.Int("bottle.id", bottle.ID))
	defer span.End()

	if !s.bottles.Update(ctx, bottle) {
		err := s.missing(ctx, logger, entityBottle, bottle.ID)
		s.finish(span, entityBottle, "update", outcomeNotFound, err)

		return err
	}

	logger.InfoContext(ctx, "bottle updated", slog.Int("bottle_id", bottle.ID))
	s.finish(span, entityBottle, "update", outcomeOK, nil)

	return nil
}

// DeleteBottle removes a bottle and its winemaker back-reference.
func (s *InventoryService) DeleteBottle(ctx context.Context, id int) error {
	ctx, span, logger := s.begin(ctx, "DeleteBottle", attribute.Int("bottle.id", id))
	defer span.End()

	if !s.bottles.Delete(ctx, id) {
		err := s.missing(ctx, logger, entityBottle, id)
		s.finish(span, entityBottle, "delete", outcomeNotFound, err)

		return err
	}

	logger.InfoContext(ctx, "bottle deleted", slog.Int("bottle_id", id))
	s.finish(span, entityBottle, "delete", outcomeOK, nil)

	return nil
}

// begin starts a span for a use case and resolves the request logger.
func (s *InventoryService) begin(
	ctx context.Context,
	method string,
	attrs ...attribute.KeyValue,
) (context.Context, trace.Span, *slog.Logger) {
	ctx, span := s.tracer.Start(ctx, "InventoryService."+method, trace.WithAttributes(attrs...))

	logger := logging.FromContextOr(ctx, s.logger)

	return ctx, span, logger.With(slog.String("method", method))
}

// finish records the outcome on the operations counter and the span.
func (s *InventoryService) finish(span trace.Span, entity, operation, outcome string, err error) {
	s.metrics.observe(entity, operation, outcome)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}

// missing handles an update or delete of an id that does not exist.
func (s *InventoryService) missing(ctx context.Context, logger *slog.Logger, entity string, id int) error {
	logger.WarnContext(ctx, entity+" not found, nothing changed",
		slog.Int("id", id),
		slog.Bool("strict", s.strict),
	)

	if s.strict {
		return domain.NewNotFoundError(entity, id)
	}

	return nil
}

func (s *InventoryService) noteReferentialFailure(ctx context.Context, logger *slog.Logger, err error) {
	var integrity *domain.ReferentialIntegrityError
	if !errors.As(err, &integrity) {
		return
	}

	s.metrics.referentialFailures.Inc()
	logger.WarnContext(ctx, "bottle rejected, winemaker does not exist",
		slog.Int("winemaker_id", integrity.ID),
	)
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return outcomeOK
	case domain.IsNotFound(err):
		return outcomeNotFound
	case domain.IsReferentialIntegrity(err), domain.IsValidation(err):
		return outcomeRejected
	default:
		return outcomeError
	}
}
