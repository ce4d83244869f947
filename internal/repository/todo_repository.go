package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/meubelwerk/offerte-api/internal/domain"
)

type TodoRepository struct {
	db *gorm.DB
}

func NewTodoRepository(db *gorm.DB) *TodoRepository {
	return &TodoRepository{db: db}
}

func (r *TodoRepository) Create(ctx context.Context, item *domain.TodoItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *TodoRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.TodoItem, error) {
	var item domain.TodoItem
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *TodoRepository) Update(ctx context.Context, item *domain.TodoItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *TodoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.TodoItem{}, "id = ?", id).Error
}

// List returns all order-list entries, open first, newest on top
func (r *TodoRepository) List(ctx context.Context) ([]domain.TodoItem, error) {
	var items []domain.TodoItem
	err := r.db.WithContext(ctx).
		Order("completed ASC").
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

func (r *TodoRepository) CountOpen(ctx context.Context) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.TodoItem{}).
		Where("completed = ?", false).Count(&count).Error
	return int(count), err
}

// DeleteCompletedBefore removes completed entries last touched before
// the cutoff. Used by the weekly cleanup job.
func (r *TodoRepository) DeleteCompletedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("completed = ? AND updated_at < ?", true, cutoff).
		Delete(&domain.TodoItem{})
	return result.RowsAffected, result.Error
}
