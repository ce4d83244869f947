package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/meubelwerk/offerte-api/internal/domain"
	"github.com/meubelwerk/offerte-api/internal/repository"
	"github.com/meubelwerk/offerte-api/internal/service"
	"github.com/meubelwerk/offerte-api/internal/testutil"
)

func TestDashboardService_GetMetrics(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := service.NewDashboardService(
		repository.NewProjectRepository(db),
		repository.NewSettingsRepository(db),
		repository.NewTodoRepository(db),
		zap.NewNop(),
	)
	ctx := context.Background()

	// Fixture projects total 3500.97 inc VAT each
	testutil.CreateTestProject(t, db, 1, "Open offerte")
	accepted := testutil.CreateTestProject(t, db, 2, "Lopende klus")
	require.NoError(t, db.Model(accepted).Update("status", domain.ProjectStatusAccepted).Error)

	require.NoError(t, db.Create(&domain.TodoItem{Text: "Hout halen"}).Error)
	require.NoError(t, db.Create(&domain.TodoItem{Text: "Klaar", Completed: true}).Error)

	metrics, err := svc.GetMetrics(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, metrics.TotalProjects)
	assert.Equal(t, 1, metrics.ProjectsByStatus[domain.ProjectStatusDraft])
	assert.Equal(t, 1, metrics.ProjectsByStatus[domain.ProjectStatusAccepted])
	assert.InDelta(t, 3500.97, metrics.OpenQuoteValue, 1e-9)
	assert.InDelta(t, 3500.97, metrics.AcceptedValue, 1e-9)
	assert.InDelta(t, 64.19, metrics.AverageMarginPct, 1e-9)
	assert.Equal(t, 35.0, metrics.TargetMarginPct)
	assert.Zero(t, metrics.BelowTargetMargin, "both quotes sit above the 35% target")
	assert.Equal(t, 1, metrics.OpenTodos)
}

func TestDashboardService_GetMetrics_EmptyDatabase(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := service.NewDashboardService(
		repository.NewProjectRepository(db),
		repository.NewSettingsRepository(db),
		repository.NewTodoRepository(db),
		zap.NewNop(),
	)

	metrics, err := svc.GetMetrics(context.Background())
	require.NoError(t, err)

	assert.Zero(t, metrics.TotalProjects)
	assert.Zero(t, metrics.OpenQuoteValue)
	assert.Zero(t, metrics.AverageMarginPct)
	assert.Equal(t, 35.0, metrics.TargetMarginPct)
}
