package database

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repo is the one CRUD repository shared by every portfolio entity. Each
// entity gets its own instantiation carrying that entity's list ordering;
// nothing else differs between entities at the persistence layer.
//
// No method retries. Every failure is returned once to the caller, which
// surfaces it and stops.
type Repo[T any] struct {
	db    *gorm.DB
	order string
}

func NewRepo[T any](db *gorm.DB, order string) *Repo[T] {
	return &Repo[T]{db: db, order: order}
}

// FindAll returns all live rows in the repo's configured order.
func (r *Repo[T]) FindAll(ctx context.Context) ([]*T, error) {
	var rows []*T
	err := r.db.WithContext(ctx).Order(r.order).Find(&rows).Error
	return rows, err
}

// FindByID returns the single row with the given id, or
// gorm.ErrRecordNotFound when no live row matches.
func (r *Repo[T]) FindByID(ctx context.Context, id uuid.UUID) (*T, error) {
	var row T
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// Add inserts a new row. The store assigns id and timestamps when the caller
// left them zero.
func (r *Repo[T]) Add(ctx context.Context, row *T) error {
	return r.db.WithContext(ctx).Create(row).Error
}

// Update writes the full row back and refreshes updated_at. Last write wins:
// no version token is compared, so a stale read followed by an update silently
// overwrites a concurrent edit.
func (r *Repo[T]) Update(ctx context.Context, row *T) error {
	return r.db.WithContext(ctx).Save(row).Error
}

// Delete soft-deletes the row. Deleting an id that does not exist is an
// error, not a silent success.
func (r *Repo[T]) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(new(T), "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
