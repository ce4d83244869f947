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

func TestSettingsService_GetReturnsDefaults(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := service.NewSettingsService(repository.NewSettingsRepository(db), zap.NewNop())

	settings, err := svc.Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Mijn Meubelmakerij", settings.CompanyName)
	assert.Equal(t, "nl", settings.Language)
	assert.Equal(t, 21.0, settings.DefaultVatRate)
}

func TestSettingsService_Update_PatchesOnlyGivenFields(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := service.NewSettingsService(repository.NewSettingsRepository(db), zap.NewNop())
	ctx := context.Background()

	name := "Houtatelier Noord"
	target := 40.0
	updated, err := svc.Update(ctx, &domain.UpdateSettingsRequest{
		CompanyName:     &name,
		TargetMarginPct: &target,
	})
	require.NoError(t, err)

	assert.Equal(t, "Houtatelier Noord", updated.CompanyName)
	assert.Equal(t, 40.0, updated.TargetMarginPct)
	assert.Equal(t, 21.0, updated.DefaultVatRate, "untouched fields keep their value")
	assert.Equal(t, "Offerte", updated.HeaderTitle)

	reloaded, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Houtatelier Noord", reloaded.CompanyName)
}
