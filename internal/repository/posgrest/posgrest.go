package posgrest

import (
	"context"

	"gorm.io/gorm"
)

// repository is a generic GORM-based repository implementation.
// The prepaid service uses it for the ledger journal.
type repository[T interface{}] struct {
	db *gorm.DB
}

// New creates a new generic repository instance for type T.
func New[T interface{}](db *gorm.DB) *repository[T] {
	return &repository[T]{
		db,
	}
}

// Create inserts a new entity into the database.
func (r *repository[T]) Create(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Create(entity).Error
}

// GetAll retrieves all entities of type T in insertion order.
func (r *repository[T]) GetAll(ctx context.Context) (*[]T, error) {
	var entities []T
	err := r.db.WithContext(ctx).Order("created_at").Find(&entities).Error
	if err != nil {
		return nil, err
	}
	return &entities, nil
}

// GetBy retrieves entities matching a condition such as "card_id = ?".
// Results come back in insertion order.
func (r *repository[T]) GetBy(ctx context.Context, key string, value interface{}) (*[]T, error) {
	var entity []T
	if err := r.db.WithContext(ctx).Where(key, value).Order("created_at").Find(&entity).Error; err != nil {
		return nil, err
	}
	return &entity, nil
}
