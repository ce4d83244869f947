package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meubelwerk/offerte-api/internal/repository"
	"github.com/meubelwerk/offerte-api/internal/testutil"
)

func TestNumberSequenceRepository_GetNextNumber(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewNumberSequenceRepository(db)
	ctx := context.Background()

	first, err := repo.GetNextNumber(ctx, "document")
	require.NoError(t, err)
	assert.Equal(t, 1, first)

	second, err := repo.GetNextNumber(ctx, "document")
	require.NoError(t, err)
	assert.Equal(t, 2, second)

	third, err := repo.GetNextNumber(ctx, "document")
	require.NoError(t, err)
	assert.Equal(t, 3, third)
}

func TestNumberSequenceRepository_SeparateCounters(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewNumberSequenceRepository(db)
	ctx := context.Background()

	_, err := repo.GetNextNumber(ctx, "document")
	require.NoError(t, err)

	other, err := repo.GetNextNumber(ctx, "other")
	require.NoError(t, err)
	assert.Equal(t, 1, other)
}

func TestNumberSequenceRepository_GetCurrentValue(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewNumberSequenceRepository(db)
	ctx := context.Background()

	current, err := repo.GetCurrentValue(ctx, "document")
	require.NoError(t, err)
	assert.Equal(t, 0, current)

	_, err = repo.GetNextNumber(ctx, "document")
	require.NoError(t, err)

	current, err = repo.GetCurrentValue(ctx, "document")
	require.NoError(t, err)
	assert.Equal(t, 1, current)
}

func TestNumberSequenceRepository_SetValue_NeverMovesBackwards(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewNumberSequenceRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.SetValue(ctx, "document", 100))

	current, err := repo.GetCurrentValue(ctx, "document")
	require.NoError(t, err)
	assert.Equal(t, 100, current)

	// Lower values are ignored
	require.NoError(t, repo.SetValue(ctx, "document", 50))
	current, err = repo.GetCurrentValue(ctx, "document")
	require.NoError(t, err)
	assert.Equal(t, 100, current)

	next, err := repo.GetNextNumber(ctx, "document")
	require.NoError(t, err)
	assert.Equal(t, 101, next)
}
