package repository_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/meubelwerk/offerte-api/internal/domain"
	"github.com/meubelwerk/offerte-api/internal/repository"
	"github.com/meubelwerk/offerte-api/internal/testutil"
)

func TestProjectRepository_CreateAndGetByID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewProjectRepository(db)
	ctx := context.Background()

	created := testutil.CreateTestProject(t, db, 1, "Eiken tafel")

	found, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)

	assert.Equal(t, "Eiken tafel", found.Title)
	assert.Equal(t, 1, found.DocumentNumber)
	assert.Equal(t, domain.ProjectStatusDraft, found.Status)
	assert.Len(t, found.Materials, 1)
	assert.Len(t, found.Labor, 1)
	assert.Len(t, found.Extras, 1)
	assert.Equal(t, created.ID, found.Materials[0].ProjectID)
}

func TestProjectRepository_GetByID_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewProjectRepository(db)

	_, err := repo.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestProjectRepository_Delete_RemovesLines(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewProjectRepository(db)
	ctx := context.Background()

	created := testutil.CreateTestProject(t, db, 1, "Kast")
	require.NoError(t, repo.Delete(ctx, created.ID))

	_, err := repo.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var lineCount int64
	require.NoError(t, db.Model(&domain.MaterialLine{}).Where("project_id = ?", created.ID).Count(&lineCount).Error)
	assert.Zero(t, lineCount)
}

func TestProjectRepository_List_ExcludesArchived(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewProjectRepository(db)
	ctx := context.Background()

	testutil.CreateTestProject(t, db, 1, "Tafel")
	archived := testutil.CreateTestProject(t, db, 2, "Oude kast")
	require.NoError(t, db.Model(archived).Update("status", domain.ProjectStatusArchived).Error)

	projects, total, err := repo.List(ctx, 1, 20, "", "")
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, projects, 1)
	assert.Equal(t, "Tafel", projects[0].Title)

	// Asking for archived explicitly returns them
	projects, total, err = repo.List(ctx, 1, 20, "", domain.ProjectStatusArchived)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, projects, 1)
	assert.Equal(t, "Oude kast", projects[0].Title)
}

func TestProjectRepository_List_SearchMatchesTitleAndClient(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewProjectRepository(db)
	ctx := context.Background()

	p1 := testutil.CreateTestProject(t, db, 1, "Boekenkast eiken")
	require.NoError(t, db.Model(p1).Update("client_name", "Jansen").Error)
	testutil.CreateTestProject(t, db, 2, "Badkamermeubel")

	projects, total, err := repo.List(ctx, 1, 20, "boeken", "")
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, projects, 1)
	assert.Equal(t, "Boekenkast eiken", projects[0].Title)

	projects, total, err = repo.List(ctx, 1, 20, "jansen", "")
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, projects, 1)
}

func TestProjectRepository_ReplaceMaterials(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewProjectRepository(db)
	ctx := context.Background()

	created := testutil.CreateTestProject(t, db, 1, "Tafel")

	newLines := []domain.MaterialLine{
		{Category: domain.MaterialCategoryHardware, Unit: domain.MaterialUnitPiece, Quantity: 8, UnitCost: 3.5},
		{Category: domain.MaterialCategorySolidWood, Unit: domain.MaterialUnitM1, Quantity: 4, UnitCost: 12, Length: 2400},
	}
	require.NoError(t, repo.ReplaceMaterials(ctx, created.ID, newLines))

	found, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, found.Materials, 2)
	for _, line := range found.Materials {
		assert.Equal(t, created.ID, line.ProjectID)
		assert.NotEqual(t, uuid.Nil, line.ID)
	}
}

func TestProjectRepository_ReplaceMaterials_EmptyClearsAll(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewProjectRepository(db)
	ctx := context.Background()

	created := testutil.CreateTestProject(t, db, 1, "Tafel")
	require.NoError(t, repo.ReplaceMaterials(ctx, created.ID, nil))

	found, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Empty(t, found.Materials)
	assert.Len(t, found.Labor, 1)
}

func TestProjectRepository_ReplaceLabor(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewProjectRepository(db)
	ctx := context.Background()

	created := testutil.CreateTestProject(t, db, 1, "Tafel")

	newLines := []domain.LaborLine{
		{Type: domain.LaborTypeProduction, Hours: 24, CostRate: 38, TravelBillable: true},
		{Type: domain.LaborTypeTravel, Hours: 3, CostRate: 38, TravelBillable: false},
	}
	require.NoError(t, repo.ReplaceLabor(ctx, created.ID, newLines))

	found, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, found.Labor, 2)
}

func TestProjectRepository_CountByStatus(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewProjectRepository(db)
	ctx := context.Background()

	testutil.CreateTestProject(t, db, 1, "A")
	testutil.CreateTestProject(t, db, 2, "B")
	sent := testutil.CreateTestProject(t, db, 3, "C")
	require.NoError(t, db.Model(sent).Update("status", domain.ProjectStatusSent).Error)

	counts, err := repo.CountByStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, counts[domain.ProjectStatusDraft])
	assert.Equal(t, 1, counts[domain.ProjectStatusSent])
}
