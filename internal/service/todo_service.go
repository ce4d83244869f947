package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/meubelwerk/offerte-api/internal/domain"
	"github.com/meubelwerk/offerte-api/internal/mapper"
	"github.com/meubelwerk/offerte-api/internal/repository"
)

// TodoService manages the workshop order list
type TodoService struct {
	repo   *repository.TodoRepository
	logger *zap.Logger
}

func NewTodoService(repo *repository.TodoRepository, logger *zap.Logger) *TodoService {
	return &TodoService{repo: repo, logger: logger}
}

func (s *TodoService) Create(ctx context.Context, req *domain.CreateTodoRequest) (*domain.TodoItemDTO, error) {
	item := &domain.TodoItem{Text: req.Text}

	if err := s.repo.Create(ctx, item); err != nil {
		s.logger.Error("failed to create todo", zap.Error(err))
		return nil, fmt.Errorf("failed to create todo: %w", err)
	}

	dto := mapper.ToTodoItemDTO(item)
	return &dto, nil
}

func (s *TodoService) List(ctx context.Context) ([]domain.TodoItemDTO, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}

	dtos := make([]domain.TodoItemDTO, len(items))
	for i := range items {
		dtos[i] = mapper.ToTodoItemDTO(&items[i])
	}
	return dtos, nil
}

// Toggle flips the completed flag of an order-list entry
func (s *TodoService) Toggle(ctx context.Context, id uuid.UUID) (*domain.TodoItemDTO, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTodoNotFound
		}
		return nil, fmt.Errorf("failed to get todo: %w", err)
	}

	item.Completed = !item.Completed
	if err := s.repo.Update(ctx, item); err != nil {
		s.logger.Error("failed to toggle todo", zap.String("id", id.String()), zap.Error(err))
		return nil, fmt.Errorf("failed to toggle todo: %w", err)
	}

	dto := mapper.ToTodoItemDTO(item)
	return &dto, nil
}

func (s *TodoService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTodoNotFound
		}
		return fmt.Errorf("failed to get todo: %w", err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("failed to delete todo", zap.String("id", id.String()), zap.Error(err))
		return fmt.Errorf("failed to delete todo: %w", err)
	}

	return nil
}

// CleanupCompleted removes completed entries older than the retention
// window. Called by the weekly cleanup job.
func (s *TodoService) CleanupCompleted(ctx context.Context, retentionDays int) (int64, error) {
	cutoff := time.Now().UTC().AddDate(0, 0, -retentionDays)
	removed, err := s.repo.DeleteCompletedBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to clean up todos: %w", err)
	}
	if removed > 0 {
		s.logger.Info("cleaned up completed todos",
			zap.Int64("removed", removed),
			zap.Time("cutoff", cutoff))
	}
	return removed, nil
}
