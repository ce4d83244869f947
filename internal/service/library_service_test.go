package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/meubelwerk/offerte-api/internal/domain"
	"github.com/meubelwerk/offerte-api/internal/repository"
	"github.com/meubelwerk/offerte-api/internal/service"
	"github.com/meubelwerk/offerte-api/internal/testutil"
)

func newLibraryService(t *testing.T) *service.LibraryService {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return service.NewLibraryService(repository.NewLibraryRepository(db), zap.NewNop())
}

func TestLibraryService_CreateAndGet(t *testing.T) {
	svc := newLibraryService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, &domain.CreateLibraryMaterialRequest{
		Category:    domain.MaterialCategorySheetGood,
		Description: "Eiken fineer 18mm",
		Unit:        domain.MaterialUnitM2,
		UnitCost:    148.84,
		Supplier:    "Houthandel Visser",
		Length:      2440,
		Width:       1220,
		Thickness:   18,
	})
	require.NoError(t, err)

	found, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Eiken fineer 18mm", found.Description)
	assert.Equal(t, 148.84, found.UnitCost)
	assert.Equal(t, 18.0, found.Thickness)
}

func TestLibraryService_GetByID_NotFound(t *testing.T) {
	svc := newLibraryService(t)

	_, err := svc.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, service.ErrLibraryItemNotFound)
}

func TestLibraryService_List_FiltersByCategoryAndSearch(t *testing.T) {
	svc := newLibraryService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, &domain.CreateLibraryMaterialRequest{
		Category: domain.MaterialCategorySheetGood, Description: "Berken multiplex", Unit: domain.MaterialUnitM2, UnitCost: 62.5,
	})
	require.NoError(t, err)
	_, err = svc.Create(ctx, &domain.CreateLibraryMaterialRequest{
		Category: domain.MaterialCategoryHardware, Description: "Blum scharnier", Unit: domain.MaterialUnitPiece, UnitCost: 4.2,
	})
	require.NoError(t, err)

	page, err := svc.List(ctx, 1, 50, "", domain.MaterialCategoryHardware)
	require.NoError(t, err)
	assert.EqualValues(t, 1, page.Total)

	page, err = svc.List(ctx, 1, 50, "multiplex", "")
	require.NoError(t, err)
	assert.EqualValues(t, 1, page.Total)

	page, err = svc.List(ctx, 1, 50, "", "")
	require.NoError(t, err)
	assert.EqualValues(t, 2, page.Total)
}

func TestLibraryService_Update(t *testing.T) {
	svc := newLibraryService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, &domain.CreateLibraryMaterialRequest{
		Category: domain.MaterialCategorySheetGood, Description: "MDF 12mm", Unit: domain.MaterialUnitM2, UnitCost: 22,
	})
	require.NoError(t, err)

	newCost := 24.5
	updated, err := svc.Update(ctx, created.ID, &domain.UpdateLibraryMaterialRequest{UnitCost: &newCost})
	require.NoError(t, err)
	assert.Equal(t, 24.5, updated.UnitCost)
	assert.Equal(t, "MDF 12mm", updated.Description)
}

func TestLibraryService_Delete(t *testing.T) {
	svc := newLibraryService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, &domain.CreateLibraryMaterialRequest{
		Category: domain.MaterialCategoryOther, Description: "Lijm", Unit: domain.MaterialUnitPiece, UnitCost: 8,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	_, err = svc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, service.ErrLibraryItemNotFound)

	err = svc.Delete(ctx, created.ID)
	assert.ErrorIs(t, err, service.ErrLibraryItemNotFound)
}
