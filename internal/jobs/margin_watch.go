package jobs

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/meubelwerk/offerte-api/internal/domain"
	"github.com/meubelwerk/offerte-api/internal/pricing"
	"github.com/meubelwerk/offerte-api/internal/repository"
)

// MarginWatchJob scans open quotes each morning and logs the ones
// whose gross margin has fallen below the workshop target, so the
// maker sees price drift before a quote goes out.
type MarginWatchJob struct {
	projectRepo  *repository.ProjectRepository
	settingsRepo *repository.SettingsRepository
	logger       *zap.Logger
}

func NewMarginWatchJob(
	projectRepo *repository.ProjectRepository,
	settingsRepo *repository.SettingsRepository,
	logger *zap.Logger,
) *MarginWatchJob {
	return &MarginWatchJob{
		projectRepo:  projectRepo,
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// Run performs one scan
func (j *MarginWatchJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	settings, err := j.settingsRepo.Get(ctx)
	if err != nil {
		j.logger.Error("margin watch: failed to load settings", zap.Error(err))
		return
	}

	projects, err := j.projectRepo.ListAll(ctx)
	if err != nil {
		j.logger.Error("margin watch: failed to list projects", zap.Error(err))
		return
	}

	flagged := 0
	for i := range projects {
		p := &projects[i]
		if p.Status != domain.ProjectStatusDraft && p.Status != domain.ProjectStatusSent {
			continue
		}

		totals := pricing.CalculateProjectTotals(p)
		if totals.SubtotalSales == 0 {
			continue
		}

		if totals.GrossMarginPct < settings.TargetMarginPct {
			flagged++
			j.logger.Warn("quote below target margin",
				zap.String("projectId", p.ID.String()),
				zap.Int("documentNumber", p.DocumentNumber),
				zap.String("title", p.Title),
				zap.Float64("grossMarginPct", totals.GrossMarginPct),
				zap.Float64("targetMarginPct", settings.TargetMarginPct))
		}
	}

	j.logger.Info("margin watch completed",
		zap.Int("scanned", len(projects)),
		zap.Int("belowTarget", flagged))
}
