// Package postgres provides the GORM-backed implementations of the domain
// repository interfaces.
package postgres

import (
	"context"
	"reflect"

	"backoffice/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Record is the persistence-side counterpart of repository.Entity. Models are
// value structs so the repository can declare `var m M` and hand GORM a real
// destination without allocation tricks.
type Record[E repository.Entity] interface {
	// RecordID returns the primary key assigned by the database.
	RecordID() int

	// ToEntity converts the stored row back into a domain entity.
	ToEntity() E
}

// crudRepository is the single generic implementation behind every
// repository.CRUDRepository instantiation. E is the domain entity, M the
// persistence model; fromEntity bridges the two on the write path while
// Record.ToEntity covers the read path.
type crudRepository[E repository.Entity, M Record[E]] struct {
	db         *gorm.DB
	fromEntity func(E) M
}

// NewCRUDRepository builds a repository for one entity/model pair.
func NewCRUDRepository[E repository.Entity, M Record[E]](
	db *gorm.DB,
	fromEntity func(E) M,
) repository.CRUDRepository[E] {
	return &crudRepository[E, M]{
		db:         db,
		fromEntity: fromEntity,
	}
}

// Create persists a new row and writes the assigned identity back onto the
// entity.
func (repo *crudRepository[E, M]) Create(ctx context.Context, entity E) (int, error) {
	if isNilEntity(entity) {
		return 0, repository.ErrInvalidEntity
	}

	model := repo.fromEntity(entity)
	if err := repo.db.WithContext(ctx).Create(&model).Error; err != nil {
		return 0, translateWriteError(err, "failed to create record")
	}

	entity.SetEntityID(model.RecordID())

	return model.RecordID(), nil
}

// FindByID retrieves a single row by primary key.
func (repo *crudRepository[E, M]) FindByID(ctx context.Context, id int) (E, error) {
	var zero E

	if id <= 0 {
		return zero, repository.ErrInvalidID
	}

	var model M
	if err := repo.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return zero, repository.ErrNotFound
		}

		return zero, errors.Wrap(err, "failed to find record by id")
	}

	return model.ToEntity(), nil
}

// List retrieves one page of rows in the requested order.
func (repo *crudRepository[E, M]) List(ctx context.Context, query repository.ListQuery) ([]E, error) {
	return repo.Find(ctx, query)
}

// Find retrieves one page of rows matching every condition.
func (repo *crudRepository[E, M]) Find(
	ctx context.Context,
	query repository.ListQuery,
	conds ...repository.Condition,
) ([]E, error) {
	var models []M
	if err := applyListQuery(repo.db.WithContext(ctx), query, conds).Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list records")
	}

	entities := make([]E, 0, len(models))
	for _, model := range models {
		entities = append(entities, model.ToEntity())
	}

	return entities, nil
}

// applyListQuery chains filters, eager loads, ordering and pagination onto
// tx, in that order.
func applyListQuery(tx *gorm.DB, query repository.ListQuery, conds []repository.Condition) *gorm.DB {
	for _, cond := range conds {
		tx = tx.Where(cond.Query, cond.Args...)
	}

	for _, preload := range query.Preloads {
		tx = tx.Preload(preload)
	}

	if query.SortBy != "" {
		// clause.OrderByColumn quotes the column name, which keeps
		// caller-supplied sort keys out of raw SQL.
		tx = tx.Order(clause.OrderByColumn{
			Column: clause.Column{Name: query.SortBy},
			Desc:   query.SortDesc,
		})
	}

	offset := (query.PageNumber - 1) * query.PageSize
	if offset < 0 {
		offset = 0
	}

	return tx.Offset(offset).Limit(query.PageSize)
}

// Update fully replaces the stored row with the entity's current state.
func (repo *crudRepository[E, M]) Update(ctx context.Context, entity E) error {
	if isNilEntity(entity) {
		return repository.ErrInvalidEntity
	}

	if entity.EntityID() <= 0 {
		return repository.ErrInvalidID
	}

	model := repo.fromEntity(entity)
	if err := repo.db.WithContext(ctx).Save(&model).Error; err != nil {
		return translateWriteError(err, "failed to update record")
	}

	return nil
}

// Delete removes the row by primary key. Absent ids are a no-op.
func (repo *crudRepository[E, M]) Delete(ctx context.Context, id int) error {
	if id <= 0 {
		return repository.ErrInvalidID
	}

	var model M
	if err := repo.db.WithContext(ctx).Delete(&model, id).Error; err != nil {
		return translateWriteError(err, "failed to delete record")
	}

	return nil
}

// isNilEntity reports whether a pointer-typed entity is nil. Identity access
// goes through the Entity interface; this guard is the one place reflection
// remains, because a nil *T boxed in an interface is not equal to nil.
func isNilEntity(entity any) bool {
	if entity == nil {
		return true
	}

	value := reflect.ValueOf(entity)

	return value.Kind() == reflect.Ptr && value.IsNil()
}
