package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/meubelwerk/offerte-api/internal/domain"
	"github.com/meubelwerk/offerte-api/internal/repository"
	"github.com/meubelwerk/offerte-api/internal/service"
	"github.com/meubelwerk/offerte-api/internal/testutil"
)

func newProjectService(t *testing.T, db *gorm.DB) *service.ProjectService {
	t.Helper()
	log := zap.NewNop()
	numberRepo := repository.NewNumberSequenceRepository(db)
	docNumbers := service.NewDocumentNumberService(numberRepo, log)
	return service.NewProjectService(
		repository.NewProjectRepository(db),
		repository.NewSettingsRepository(db),
		repository.NewLibraryRepository(db),
		docNumbers,
		"OFF",
		log,
	)
}

func TestProjectService_Create_AppliesSettingsDefaults(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newProjectService(t, db)
	ctx := context.Background()

	dto, err := svc.Create(ctx, &domain.CreateProjectRequest{
		Title:      "Eiken eettafel",
		ClientName: "Familie Bakker",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, dto.DocumentNumber)
	assert.Contains(t, dto.DocumentReference, "OFF-")
	assert.Equal(t, domain.ProjectStatusDraft, dto.Status)
	assert.Equal(t, "EUR", dto.Currency)
	assert.Equal(t, 21.0, dto.VatRate)
	assert.True(t, dto.MaterialMarginEnabled)
	assert.Equal(t, 20.0, dto.MaterialMarginPct)
	assert.True(t, dto.LaborMarginEnabled)

	// A fresh quote starts with one production labor line at the
	// workshop's standard cost rate.
	require.Len(t, dto.Labor, 1)
	assert.Equal(t, domain.LaborTypeProduction, dto.Labor[0].Type)
	assert.Equal(t, 45.0, dto.Labor[0].CostRate)
	assert.Zero(t, dto.Labor[0].Hours)
}

func TestProjectService_Create_NumbersAreSequential(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newProjectService(t, db)
	ctx := context.Background()

	first, err := svc.Create(ctx, &domain.CreateProjectRequest{Title: "A"})
	require.NoError(t, err)
	second, err := svc.Create(ctx, &domain.CreateProjectRequest{Title: "B"})
	require.NoError(t, err)

	assert.Equal(t, 1, first.DocumentNumber)
	assert.Equal(t, 2, second.DocumentNumber)
}

func TestProjectService_GetByID_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newProjectService(t, db)

	_, err := svc.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, service.ErrProjectNotFound)
}

func TestProjectService_Update_PatchesOnlyGivenFields(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newProjectService(t, db)
	ctx := context.Background()

	created, err := svc.Create(ctx, &domain.CreateProjectRequest{Title: "Kast", ClientName: "Jansen"})
	require.NoError(t, err)

	newTitle := "Kast op maat"
	vat := 9.0
	updated, err := svc.Update(ctx, created.ID, &domain.UpdateProjectRequest{
		Title:   &newTitle,
		VatRate: &vat,
	})
	require.NoError(t, err)

	assert.Equal(t, "Kast op maat", updated.Title)
	assert.Equal(t, 9.0, updated.VatRate)
	assert.Equal(t, "Jansen", updated.ClientName, "untouched fields keep their value")
}

func TestProjectService_Update_RejectsInvalidStatus(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newProjectService(t, db)
	ctx := context.Background()

	created, err := svc.Create(ctx, &domain.CreateProjectRequest{Title: "Kast"})
	require.NoError(t, err)

	bad := domain.ProjectStatus("verzonden")
	_, err = svc.Update(ctx, created.ID, &domain.UpdateProjectRequest{Status: &bad})
	assert.ErrorIs(t, err, service.ErrInvalidStatus)
}

func TestProjectService_Archive(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newProjectService(t, db)
	ctx := context.Background()

	created, err := svc.Create(ctx, &domain.CreateProjectRequest{Title: "Oude klus"})
	require.NoError(t, err)

	archived, err := svc.Archive(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ProjectStatusArchived, archived.Status)

	// Archived projects drop out of the default listing
	page, err := svc.List(ctx, 1, 20, "", "")
	require.NoError(t, err)
	assert.EqualValues(t, 0, page.Total)
}

func TestProjectService_Duplicate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newProjectService(t, db)
	ctx := context.Background()

	source := testutil.CreateTestProject(t, db, 1, "Eiken tafel")
	require.NoError(t, db.Model(source).Update("status", domain.ProjectStatusAccepted).Error)

	clone, err := svc.Duplicate(ctx, source.ID)
	require.NoError(t, err)

	assert.Equal(t, "Eiken tafel (kopie)", clone.Title)
	assert.Equal(t, domain.ProjectStatusDraft, clone.Status, "the copy starts over as a draft")
	assert.NotEqual(t, source.ID, clone.ID)
	assert.NotEqual(t, source.DocumentNumber, clone.DocumentNumber)
	assert.Len(t, clone.Materials, 1)
	assert.Len(t, clone.Labor, 1)
	assert.Len(t, clone.Extras, 1)
	assert.NotEqual(t, source.Materials[0].ID, clone.Materials[0].ID)
}

func TestProjectService_GetTotals(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newProjectService(t, db)
	ctx := context.Background()

	created := testutil.CreateTestProject(t, db, 1, "Eiken tafel")

	totals, err := svc.GetTotals(ctx, created.ID)
	require.NoError(t, err)

	assert.InDelta(t, 886.13, totals.MaterialsCostTotal, 1e-9)
	assert.InDelta(t, 1063.36, totals.MaterialsSalesTotal, 1e-9)
	assert.InDelta(t, 1400.00, totals.LaborCostTotal, 1e-9)
	assert.InDelta(t, 1680.00, totals.LaborSalesTotal, 1e-9)
	assert.InDelta(t, 150.00, totals.ExtrasCostTotal, 1e-9)
	assert.InDelta(t, 2893.36, totals.SubtotalSales, 1e-9)
	assert.InDelta(t, 607.61, totals.VatAmount, 1e-9)
	assert.InDelta(t, 3500.97, totals.TotalIncVat, 1e-9)
	assert.InDelta(t, 64.19, totals.GrossMarginPct, 1e-9)
}

func TestProjectService_ReplaceMaterials_ValidatesLibraryReference(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newProjectService(t, db)
	ctx := context.Background()

	created := testutil.CreateTestProject(t, db, 1, "Tafel")

	missing := uuid.New()
	_, err := svc.ReplaceMaterials(ctx, created.ID, &domain.ReplaceMaterialLinesRequest{
		Materials: []domain.MaterialLineRequest{
			{
				Category:      domain.MaterialCategorySheetGood,
				Unit:          domain.MaterialUnitM2,
				Quantity:      1,
				UnitCost:      50,
				LibraryItemID: &missing,
			},
		},
	})
	assert.ErrorIs(t, err, service.ErrLibraryItemNotFound)
}

func TestProjectService_ReplaceMaterials_KeepsCatalogSnapshot(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newProjectService(t, db)
	ctx := context.Background()

	catalogItem := &domain.LibraryMaterial{
		Category:    domain.MaterialCategorySheetGood,
		Description: "Eiken fineer 18mm",
		Unit:        domain.MaterialUnitM2,
		UnitCost:    148.84,
	}
	require.NoError(t, db.Create(catalogItem).Error)

	created := testutil.CreateTestProject(t, db, 1, "Tafel")

	dto, err := svc.ReplaceMaterials(ctx, created.ID, &domain.ReplaceMaterialLinesRequest{
		Materials: []domain.MaterialLineRequest{
			{
				Category:      domain.MaterialCategorySheetGood,
				Description:   "Eiken fineer 18mm",
				Unit:          domain.MaterialUnitM2,
				Quantity:      1,
				UnitCost:      140, // negotiated below catalog price
				LibraryItemID: &catalogItem.ID,
			},
		},
	})
	require.NoError(t, err)

	require.Len(t, dto.Materials, 1)
	assert.Equal(t, 140.0, dto.Materials[0].UnitCost, "the line keeps its own price snapshot")
	require.NotNil(t, dto.Materials[0].LibraryItemID)
	assert.Equal(t, catalogItem.ID, *dto.Materials[0].LibraryItemID)
}

func TestProjectService_ReplaceLabor(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newProjectService(t, db)
	ctx := context.Background()

	created := testutil.CreateTestProject(t, db, 1, "Tafel")

	dto, err := svc.ReplaceLabor(ctx, created.ID, &domain.ReplaceLaborLinesRequest{
		Labor: []domain.LaborLineRequest{
			{Type: domain.LaborTypeProduction, Hours: 24, CostRate: 38, TravelBillable: true},
			{Type: domain.LaborTypeTravel, Hours: 2, CostRate: 38, TravelBillable: false},
		},
	})
	require.NoError(t, err)

	require.Len(t, dto.Labor, 2)
	assert.InDelta(t, 76.0, dto.Labor[1].LaborCost, 1e-9)
	assert.Zero(t, dto.Labor[1].LaborSales, "non-billable travel sells at zero")
}

func TestProjectService_Delete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newProjectService(t, db)
	ctx := context.Background()

	created := testutil.CreateTestProject(t, db, 1, "Weg ermee")
	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err := svc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, service.ErrProjectNotFound)

	err = svc.Delete(ctx, created.ID)
	assert.ErrorIs(t, err, service.ErrProjectNotFound)
}

func TestProjectService_List_Pagination(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newProjectService(t, db)
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		testutil.CreateTestProject(t, db, i, "Project")
	}

	page, err := svc.List(ctx, 1, 2, "", "")
	require.NoError(t, err)
	assert.EqualValues(t, 5, page.Total)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 2, page.PageSize)

	summaries, ok := page.Data.([]domain.ProjectSummaryDTO)
	require.True(t, ok)
	assert.Len(t, summaries, 2)
}

func TestProjectService_List_ClampsNonPositivePaging(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newProjectService(t, db)
	ctx := context.Background()

	testutil.CreateTestProject(t, db, 1, "Project")

	page, err := svc.List(ctx, 0, 0, "", "")
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 1, page.PageSize)
	assert.Equal(t, 1, page.TotalPages)
	assert.EqualValues(t, 1, page.Total)
}
