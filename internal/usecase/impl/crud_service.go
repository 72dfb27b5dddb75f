// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"

	"backoffice/config"
	deliverycontext "backoffice/internal/delivery/context"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
	"backoffice/internal/usecase"
)

// pageBounds holds the clamping rules applied to incoming pagination.
type pageBounds struct {
	defaultSize int
	maxSize     int
}

func newPageBounds(cfg *config.Config) pageBounds {
	bounds := pageBounds{defaultSize: 10, maxSize: 100}
	if cfg != nil && cfg.Pagination != nil {
		if cfg.Pagination.DefaultPageSize > 0 {
			bounds.defaultSize = cfg.Pagination.DefaultPageSize
		}

		if cfg.Pagination.MaxPageSize > 0 {
			bounds.maxSize = cfg.Pagination.MaxPageSize
		}
	}

	return bounds
}

// clamp normalizes a raw pagination request: non-positive page numbers become
// page one, non-positive sizes fall back to the default, oversized requests
// are capped.
func (b pageBounds) clamp(input usecase.ListInput) repository.ListQuery {
	page := input.PageNumber
	if page < 1 {
		page = 1
	}

	size := input.PageSize
	if size < 1 {
		size = b.defaultSize
	}

	if size > b.maxSize {
		size = b.maxSize
	}

	return repository.ListQuery{PageNumber: page, PageSize: size}
}

// crudService is the single generic implementation behind every resource
// usecase. C is the creation payload, D the full representation, E the domain
// entity. The three mapper functions are the only per-resource code.
type crudService[C any, D any, E repository.Entity] struct {
	repo       repository.CRUDRepository[E]
	fromCreate func(C) E
	fromDTO    func(D) E
	toDTO      func(E) D
	bounds     pageBounds
	logger     *slog.Logger
}

// newCRUDService builds a resource service for one DTO/entity family.
func newCRUDService[C any, D any, E repository.Entity](
	repo repository.CRUDRepository[E],
	fromCreate func(C) E,
	fromDTO func(D) E,
	toDTO func(E) D,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.CRUDUsecase[C, D] {
	return &crudService[C, D, E]{
		repo:       repo,
		fromCreate: fromCreate,
		fromDTO:    fromDTO,
		toDTO:      toDTO,
		bounds:     newPageBounds(cfg),
		logger:     logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *crudService[C, D, E]) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create persists a new resource and returns its assigned id.
func (srv *crudService[C, D, E]) Create(ctx context.Context, input C) (int, error) {
	id, err := srv.repo.Create(ctx, srv.fromCreate(input))
	if err != nil {
		srv.log(ctx).Error("Failed to create resource", slog.Any("error", err))

		return 0, errors.Wrap(err, "failed to create resource")
	}

	srv.log(ctx).Debug("Resource created", slog.Int("id", id))

	return id, nil
}

// GetByID retrieves one resource.
func (srv *crudService[C, D, E]) GetByID(ctx context.Context, id int) (D, error) {
	var zero D

	entity, err := srv.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return zero, domainerrors.ErrNotFound.WrapMessage("resource not found")
		}

		if errors.Is(err, repository.ErrInvalidID) {
			return zero, domainerrors.ErrInvalidArgument.WrapMessage("id must be greater than zero")
		}

		srv.log(ctx).Error("Failed to load resource", slog.Int("id", id), slog.Any("error", err))

		return zero, errors.Wrap(err, "failed to load resource")
	}

	return srv.toDTO(entity), nil
}

// GetAll retrieves one page of resources.
func (srv *crudService[C, D, E]) GetAll(ctx context.Context, input usecase.ListInput) ([]D, error) {
	entities, err := srv.repo.List(ctx, srv.bounds.clamp(input))
	if err != nil {
		srv.log(ctx).Error("Failed to list resources", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list resources")
	}

	dtos := make([]D, 0, len(entities))
	for _, entity := range entities {
		dtos = append(dtos, srv.toDTO(entity))
	}

	return dtos, nil
}

// Update fully replaces the resource identified by id. The path id wins over
// any identity carried in the payload.
func (srv *crudService[C, D, E]) Update(ctx context.Context, id int, input D) error {
	if id <= 0 {
		return domainerrors.ErrInvalidArgument.WrapMessage("id must be greater than zero")
	}

	entity := srv.fromDTO(input)
	entity.SetEntityID(id)

	if err := srv.repo.Update(ctx, entity); err != nil {
		srv.log(ctx).Error("Failed to update resource", slog.Int("id", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to update resource")
	}

	srv.log(ctx).Debug("Resource updated", slog.Int("id", id))

	return nil
}

// Delete removes the resource, reporting not-found for absent ids.
func (srv *crudService[C, D, E]) Delete(ctx context.Context, id int) error {
	if _, err := srv.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("resource not found")
		}

		if errors.Is(err, repository.ErrInvalidID) {
			return domainerrors.ErrInvalidArgument.WrapMessage("id must be greater than zero")
		}

		return errors.Wrap(err, "failed to load resource before delete")
	}

	if err := srv.repo.Delete(ctx, id); err != nil {
		srv.log(ctx).Error("Failed to delete resource", slog.Int("id", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete resource")
	}

	srv.log(ctx).Debug("Resource deleted", slog.Int("id", id))

	return nil
}
