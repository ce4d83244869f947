package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/meubelwerk/offerte-api/internal/repository"
)

// documentSequenceName is the counter shared by all quote documents
const documentSequenceName = "document"

// DocumentNumberService hands out the sequential document numbers
// stamped on every project. The counter never resets, so references
// like OFF-2026-042 stay unique even across year boundaries.
type DocumentNumberService struct {
	repo   *repository.NumberSequenceRepository
	logger *zap.Logger
}

// NewDocumentNumberService creates a new DocumentNumberService
func NewDocumentNumberService(repo *repository.NumberSequenceRepository, logger *zap.Logger) *DocumentNumberService {
	return &DocumentNumberService{repo: repo, logger: logger}
}

// Next atomically reserves the next document number
func (s *DocumentNumberService) Next(ctx context.Context) (int, error) {
	number, err := s.repo.GetNextNumber(ctx, documentSequenceName)
	if err != nil {
		s.logger.Error("failed to reserve document number", zap.Error(err))
		return 0, fmt.Errorf("failed to reserve document number: %w", err)
	}

	s.logger.Info("reserved document number", zap.Int("number", number))
	return number, nil
}

// Current returns the last handed-out number without incrementing.
// Returns 0 when no document has been numbered yet.
func (s *DocumentNumberService) Current(ctx context.Context) (int, error) {
	return s.repo.GetCurrentValue(ctx, documentSequenceName)
}

// Initialize raises the counter for data imports that bring their own
// numbered documents. The value is the last used number.
func (s *DocumentNumberService) Initialize(ctx context.Context, value int) error {
	return s.repo.SetValue(ctx, documentSequenceName, value)
}
