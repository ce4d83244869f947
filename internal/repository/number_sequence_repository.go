package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/meubelwerk/offerte-api/internal/domain"
)

// NumberSequenceRepository handles database operations for the document
// number counter. One named counter is shared by all projects so
// document numbers stay unique and strictly increasing across years.
type NumberSequenceRepository struct {
	db *gorm.DB
}

// NewNumberSequenceRepository creates a new NumberSequenceRepository
func NewNumberSequenceRepository(db *gorm.DB) *NumberSequenceRepository {
	return &NumberSequenceRepository{db: db}
}

// GetNextNumber atomically increments the named counter and returns the
// new value. Uses SELECT FOR UPDATE inside a transaction so concurrent
// project creation never hands out the same number twice. If no counter
// exists yet, it is created starting at 1.
func (r *NumberSequenceRepository) GetNextNumber(ctx context.Context, name string) (int, error) {
	var seq domain.NumberSequence
	var next int

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("name = ?", name).
			First(&seq)

		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			seq = domain.NumberSequence{
				Name:      name,
				LastValue: 1,
				UpdatedAt: time.Now(),
			}
			if err := tx.Create(&seq).Error; err != nil {
				return fmt.Errorf("failed to create number sequence: %w", err)
			}
			next = 1
		} else if result.Error != nil {
			return fmt.Errorf("failed to get number sequence: %w", result.Error)
		} else {
			next = seq.LastValue + 1
			if err := tx.Model(&seq).Updates(map[string]interface{}{
				"last_value": next,
				"updated_at": time.Now(),
			}).Error; err != nil {
				return fmt.Errorf("failed to update number sequence: %w", err)
			}
		}

		return nil
	})

	if err != nil {
		return 0, err
	}

	return next, nil
}

// GetCurrentValue retrieves the counter without incrementing.
// Returns 0 if the counter does not exist yet.
func (r *NumberSequenceRepository) GetCurrentValue(ctx context.Context, name string) (int, error) {
	var seq domain.NumberSequence
	result := r.db.WithContext(ctx).Where("name = ?", name).First(&seq)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if result.Error != nil {
		return 0, fmt.Errorf("failed to get number sequence: %w", result.Error)
	}

	return seq.LastValue, nil
}

// SetValue raises the counter to a specific value, for data imports
// that bring their own numbered documents. Lower values are ignored so
// the counter can never move backwards.
func (r *NumberSequenceRepository) SetValue(ctx context.Context, name string, value int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var seq domain.NumberSequence
		result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("name = ?", name).
			First(&seq)

		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			seq = domain.NumberSequence{
				Name:      name,
				LastValue: value,
				UpdatedAt: time.Now(),
			}
			if err := tx.Create(&seq).Error; err != nil {
				return fmt.Errorf("failed to create number sequence: %w", err)
			}
			return nil
		}
		if result.Error != nil {
			return fmt.Errorf("failed to get number sequence: %w", result.Error)
		}

		if value > seq.LastValue {
			if err := tx.Model(&seq).Updates(map[string]interface{}{
				"last_value": value,
				"updated_at": time.Now(),
			}).Error; err != nil {
				return fmt.Errorf("failed to update number sequence: %w", err)
			}
		}

		return nil
	})
}
