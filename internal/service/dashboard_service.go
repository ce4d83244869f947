package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/meubelwerk/offerte-api/internal/domain"
	"github.com/meubelwerk/offerte-api/internal/pricing"
	"github.com/meubelwerk/offerte-api/internal/repository"
)

// DashboardService aggregates the overview metrics: open quote value,
// accepted work, and how project margins track against the target.
type DashboardService struct {
	projectRepo  *repository.ProjectRepository
	settingsRepo *repository.SettingsRepository
	todoRepo     *repository.TodoRepository
	logger       *zap.Logger
}

func NewDashboardService(
	projectRepo *repository.ProjectRepository,
	settingsRepo *repository.SettingsRepository,
	todoRepo *repository.TodoRepository,
	logger *zap.Logger,
) *DashboardService {
	return &DashboardService{
		projectRepo:  projectRepo,
		settingsRepo: settingsRepo,
		todoRepo:     todoRepo,
		logger:       logger,
	}
}

// GetMetrics computes the dashboard tiles. Totals are recomputed from
// the lines on every call; nothing here is cached or persisted.
func (s *DashboardService) GetMetrics(ctx context.Context) (*domain.DashboardMetricsDTO, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	projects, err := s.projectRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	byStatus, err := s.projectRepo.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count projects: %w", err)
	}

	openTodos, err := s.todoRepo.CountOpen(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count todos: %w", err)
	}

	var (
		openQuoteValue float64
		acceptedValue  float64
		marginSum      float64
		marginCount    int
		belowTarget    int
	)

	for i := range projects {
		totals := pricing.CalculateProjectTotals(&projects[i])

		switch projects[i].Status {
		case domain.ProjectStatusDraft, domain.ProjectStatusSent:
			openQuoteValue += totals.TotalIncVat
		case domain.ProjectStatusAccepted, domain.ProjectStatusCompleted:
			acceptedValue += totals.TotalIncVat
		}

		if totals.SubtotalSales > 0 {
			marginSum += totals.GrossMarginPct
			marginCount++
			if totals.GrossMarginPct < settings.TargetMarginPct {
				belowTarget++
			}
		}
	}

	var averageMargin float64
	if marginCount > 0 {
		averageMargin = pricing.Round2(marginSum / float64(marginCount))
	}

	return &domain.DashboardMetricsDTO{
		TotalProjects:     len(projects),
		ProjectsByStatus:  byStatus,
		OpenQuoteValue:    pricing.Round2(openQuoteValue),
		AcceptedValue:     pricing.Round2(acceptedValue),
		AverageMarginPct:  averageMargin,
		TargetMarginPct:   settings.TargetMarginPct,
		BelowTargetMargin: belowTarget,
		OpenTodos:         openTodos,
	}, nil
}
