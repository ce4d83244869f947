package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/meubelwerk/offerte-api/internal/domain"
	"github.com/meubelwerk/offerte-api/internal/mapper"
	"github.com/meubelwerk/offerte-api/internal/repository"
)

// SettingsService manages the workshop settings singleton
type SettingsService struct {
	repo   *repository.SettingsRepository
	logger *zap.Logger
}

func NewSettingsService(repo *repository.SettingsRepository, logger *zap.Logger) *SettingsService {
	return &SettingsService{repo: repo, logger: logger}
}

// Get returns the settings, creating the default row on first access
func (s *SettingsService) Get(ctx context.Context) (*domain.OfferSettingsDTO, error) {
	settings, err := s.repo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return mapper.ToOfferSettingsDTO(settings), nil
}

// Update applies partial updates to the settings singleton
func (s *SettingsService) Update(ctx context.Context, req *domain.UpdateSettingsRequest) (*domain.OfferSettingsDTO, error) {
	settings, err := s.repo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	if req.CompanyName != nil {
		settings.CompanyName = *req.CompanyName
	}
	if req.CompanyStreet != nil {
		settings.CompanyStreet = *req.CompanyStreet
	}
	if req.CompanyZip != nil {
		settings.CompanyZip = *req.CompanyZip
	}
	if req.CompanyCity != nil {
		settings.CompanyCity = *req.CompanyCity
	}
	if req.CompanyPhone != nil {
		settings.CompanyPhone = *req.CompanyPhone
	}
	if req.CompanyEmail != nil {
		settings.CompanyEmail = *req.CompanyEmail
	}
	if req.CompanyIban != nil {
		settings.CompanyIban = *req.CompanyIban
	}
	if req.CompanyKvk != nil {
		settings.CompanyKvk = *req.CompanyKvk
	}
	if req.CompanyVatID != nil {
		settings.CompanyVatID = *req.CompanyVatID
	}
	if req.HeaderTitle != nil {
		settings.HeaderTitle = *req.HeaderTitle
	}
	if req.FooterText != nil {
		settings.FooterText = *req.FooterText
	}
	if req.TermsNotice != nil {
		settings.TermsNotice = *req.TermsNotice
	}
	if req.Salutation != nil {
		settings.Salutation = *req.Salutation
	}
	if req.Language != nil {
		settings.Language = *req.Language
	}
	if req.DefaultVatRate != nil {
		settings.DefaultVatRate = *req.DefaultVatRate
	}
	if req.TargetMarginPct != nil {
		settings.TargetMarginPct = *req.TargetMarginPct
	}
	if req.DefaultLaborCostRate != nil {
		settings.DefaultLaborCostRate = *req.DefaultLaborCostRate
	}
	if req.StandardProductionSellRate != nil {
		settings.StandardProductionSellRate = *req.StandardProductionSellRate
	}
	if req.StandardAssemblySellRate != nil {
		settings.StandardAssemblySellRate = *req.StandardAssemblySellRate
	}

	if err := s.repo.Save(ctx, settings); err != nil {
		s.logger.Error("failed to save settings", zap.Error(err))
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}

	s.logger.Info("settings updated")
	return mapper.ToOfferSettingsDTO(settings), nil
}
