package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/meubelwerk/offerte-api/internal/domain"
)

type LibraryRepository struct {
	db *gorm.DB
}

func NewLibraryRepository(db *gorm.DB) *LibraryRepository {
	return &LibraryRepository{db: db}
}

func (r *LibraryRepository) Create(ctx context.Context, item *domain.LibraryMaterial) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *LibraryRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.LibraryMaterial, error) {
	var item domain.LibraryMaterial
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *LibraryRepository) Update(ctx context.Context, item *domain.LibraryMaterial) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *LibraryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.LibraryMaterial{}, "id = ?", id).Error
}

func (r *LibraryRepository) List(ctx context.Context, page, pageSize int, search string, category domain.MaterialCategory) ([]domain.LibraryMaterial, int64, error) {
	var items []domain.LibraryMaterial
	var total int64

	query := r.db.WithContext(ctx).Model(&domain.LibraryMaterial{})

	if category != "" {
		query = query.Where("category = ?", category)
	}

	if search != "" {
		searchPattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(description) LIKE ? OR LOWER(supplier) LIKE ?", searchPattern, searchPattern)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.Offset(offset).Limit(pageSize).Order("description ASC").Find(&items).Error

	return items, total, err
}

func (r *LibraryRepository) Count(ctx context.Context) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.LibraryMaterial{}).Count(&count).Error
	return int(count), err
}
