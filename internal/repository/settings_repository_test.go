package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meubelwerk/offerte-api/internal/domain"
	"github.com/meubelwerk/offerte-api/internal/repository"
	"github.com/meubelwerk/offerte-api/internal/testutil"
)

func TestSettingsRepository_Get_CreatesDefaultsOnFirstAccess(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewSettingsRepository(db)
	ctx := context.Background()

	settings, err := repo.Get(ctx)
	require.NoError(t, err)

	assert.Equal(t, "Mijn Meubelmakerij", settings.CompanyName)
	assert.Equal(t, "Offerte", settings.HeaderTitle)
	assert.Equal(t, "nl", settings.Language)
	assert.Equal(t, 21.0, settings.DefaultVatRate)
	assert.Equal(t, 35.0, settings.TargetMarginPct)
	assert.Equal(t, 45.0, settings.DefaultLaborCostRate)

	var count int64
	require.NoError(t, db.Model(&domain.OfferSettings{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestSettingsRepository_SaveIsSingleton(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewSettingsRepository(db)
	ctx := context.Background()

	settings, err := repo.Get(ctx)
	require.NoError(t, err)

	settings.CompanyName = "Houtwerk De Gouw"
	settings.TargetMarginPct = 40
	require.NoError(t, repo.Save(ctx, settings))

	reloaded, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Houtwerk De Gouw", reloaded.CompanyName)
	assert.Equal(t, 40.0, reloaded.TargetMarginPct)

	var count int64
	require.NoError(t, db.Model(&domain.OfferSettings{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
