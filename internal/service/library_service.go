package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/meubelwerk/offerte-api/internal/domain"
	"github.com/meubelwerk/offerte-api/internal/mapper"
	"github.com/meubelwerk/offerte-api/internal/repository"
)

// LibraryService manages the material catalog. The catalog owns the
// canonical price of each material; project lines only carry copies.
type LibraryService struct {
	repo   *repository.LibraryRepository
	logger *zap.Logger
}

func NewLibraryService(repo *repository.LibraryRepository, logger *zap.Logger) *LibraryService {
	return &LibraryService{repo: repo, logger: logger}
}

func (s *LibraryService) Create(ctx context.Context, req *domain.CreateLibraryMaterialRequest) (*domain.LibraryMaterialDTO, error) {
	item := &domain.LibraryMaterial{
		Category:    req.Category,
		Description: req.Description,
		Unit:        req.Unit,
		UnitCost:    req.UnitCost,
		Supplier:    req.Supplier,
		Length:      req.Length,
		Width:       req.Width,
		Thickness:   req.Thickness,
	}

	if err := s.repo.Create(ctx, item); err != nil {
		s.logger.Error("failed to create library material", zap.Error(err))
		return nil, fmt.Errorf("failed to create library material: %w", err)
	}

	dto := mapper.ToLibraryMaterialDTO(item)
	return &dto, nil
}

func (s *LibraryService) GetByID(ctx context.Context, id uuid.UUID) (*domain.LibraryMaterialDTO, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLibraryItemNotFound
		}
		return nil, fmt.Errorf("failed to get library material: %w", err)
	}
	dto := mapper.ToLibraryMaterialDTO(item)
	return &dto, nil
}

func (s *LibraryService) List(ctx context.Context, page, pageSize int, search string, category domain.MaterialCategory) (*domain.PaginatedResponse, error) {
	items, total, err := s.repo.List(ctx, page, pageSize, search, category)
	if err != nil {
		return nil, fmt.Errorf("failed to list library materials: %w", err)
	}

	dtos := make([]domain.LibraryMaterialDTO, len(items))
	for i := range items {
		dtos[i] = mapper.ToLibraryMaterialDTO(&items[i])
	}

	totalPages := int(total) / pageSize
	if int(total)%pageSize > 0 {
		totalPages++
	}

	return &domain.PaginatedResponse{
		Data:       dtos,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}

func (s *LibraryService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateLibraryMaterialRequest) (*domain.LibraryMaterialDTO, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLibraryItemNotFound
		}
		return nil, fmt.Errorf("failed to get library material: %w", err)
	}

	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Unit != nil {
		item.Unit = *req.Unit
	}
	if req.UnitCost != nil {
		item.UnitCost = *req.UnitCost
	}
	if req.Supplier != nil {
		item.Supplier = *req.Supplier
	}
	if req.Length != nil {
		item.Length = *req.Length
	}
	if req.Width != nil {
		item.Width = *req.Width
	}
	if req.Thickness != nil {
		item.Thickness = *req.Thickness
	}

	if err := s.repo.Update(ctx, item); err != nil {
		s.logger.Error("failed to update library material", zap.String("id", id.String()), zap.Error(err))
		return nil, fmt.Errorf("failed to update library material: %w", err)
	}

	dto := mapper.ToLibraryMaterialDTO(item)
	return &dto, nil
}

// Delete removes a catalog entry. Project lines that referenced it
// keep their copied prices; only the LibraryItemID pointer goes stale,
// which is fine because quotes are snapshots.
func (s *LibraryService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrLibraryItemNotFound
		}
		return fmt.Errorf("failed to get library material: %w", err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("failed to delete library material", zap.String("id", id.String()), zap.Error(err))
		return fmt.Errorf("failed to delete library material: %w", err)
	}

	return nil
}
