// Package store implements the shared entity lifecycle: every resource type
// is persisted, fetched, updated, and deleted through one generic Store
// instantiated per model. The store owns identity assignment and audit
// timestamps; validation happens in the payload types before reaching it.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/EricsonWillians/itafest-backend/internal/apperr"
	"github.com/EricsonWillians/itafest-backend/prometheus"
)

// Store is the per-resource-type lifecycle component. It is constructed with
// an explicit gorm session; it never reaches for a global. Saves are whole-
// document and last-writer-wins: two concurrent updates to the same document
// race, and the later save overwrites the earlier one.
type Store[T any] struct {
	db   *gorm.DB
	name string
}

// New builds a store for one resource type. The name shows up in NotFound
// messages and metrics labels.
func New[T any](db *gorm.DB, name string) *Store[T] {
	return &Store[T]{db: db, name: name}
}

// Name returns the resource name the store was built with.
func (s *Store[T]) Name() string {
	return s.name
}

// Create persists a new document. The identity is assigned and both audit
// timestamps are stamped to the insert time.
func (s *Store[T]) Create(ctx context.Context, entity *T) error {
	defer prometheus.TrackDBOperation("insert")(time.Now())
	if err := s.db.WithContext(ctx).Create(entity).Error; err != nil {
		return fmt.Errorf("create %s: %w", s.name, err)
	}
	prometheus.RecordEntityOperation(s.name, "create")
	return nil
}

// GetByID returns the document matching the identity, or a NotFound error.
func (s *Store[T]) GetByID(ctx context.Context, id string) (*T, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())
	var entity T
	err := s.db.WithContext(ctx).First(&entity, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFoundf("%s not found", s.name)
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", s.name, err)
	}
	return &entity, nil
}

// GetByField returns the first document whose column equals value, or a
// NotFound error.
func (s *Store[T]) GetByField(ctx context.Context, column string, value any) (*T, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())
	var entity T
	err := s.db.WithContext(ctx).First(&entity, fmt.Sprintf("%s = ?", column), value).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFoundf("%s not found", s.name)
	}
	if err != nil {
		return nil, fmt.Errorf("get %s by %s: %w", s.name, column, err)
	}
	return &entity, nil
}

// Update saves the whole document and refreshes its update timestamp.
func (s *Store[T]) Update(ctx context.Context, entity *T) error {
	defer prometheus.TrackDBOperation("update")(time.Now())
	if err := s.db.WithContext(ctx).Save(entity).Error; err != nil {
		return fmt.Errorf("update %s: %w", s.name, err)
	}
	prometheus.RecordEntityOperation(s.name, "update")
	return nil
}

// Delete removes the document permanently. Deleting an absent identity is a
// NotFound error, not a silent success.
func (s *Store[T]) Delete(ctx context.Context, id string) error {
	defer prometheus.TrackDBOperation("delete")(time.Now())
	var entity T
	result := s.db.WithContext(ctx).Delete(&entity, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("delete %s: %w", s.name, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperr.NotFoundf("%s not found", s.name)
	}
	prometheus.RecordEntityOperation(s.name, "delete")
	return nil
}

// List returns the documents matching every scope, in stable insertion order,
// windowed by skip/limit. A non-positive limit means no limit.
func (s *Store[T]) List(ctx context.Context, skip, limit int, scopes ...Scope) ([]T, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())
	query := s.db.WithContext(ctx).Order("created_at, id")
	for _, scope := range scopes {
		query = scope(query)
	}
	if skip > 0 {
		query = query.Offset(skip)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	var entities []T
	if err := query.Find(&entities).Error; err != nil {
		return nil, fmt.Errorf("list %s: %w", s.name, err)
	}
	return entities, nil
}

// Exists reports whether any document other than excludeID has column equal
// to value. Used for uniqueness pre-checks before create and update.
func (s *Store[T]) Exists(ctx context.Context, column string, value any, excludeID string) (bool, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())
	var entity T
	var count int64
	query := s.db.WithContext(ctx).Model(&entity).Where(fmt.Sprintf("%s = ?", column), value)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("count %s: %w", s.name, err)
	}
	return count > 0, nil
}
