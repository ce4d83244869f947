// Package testutil provides shared helpers for repository and service
// tests. Tests run against an in-memory SQLite database so they need
// no external services.
package testutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/meubelwerk/offerte-api/internal/database"
	"github.com/meubelwerk/offerte-api/internal/domain"
)

// SetupTestDB creates a fresh in-memory SQLite database with the full
// schema. Each call returns an isolated database, so tests never see
// each other's data.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	require.NoError(t, err, "failed to open in-memory database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A pooled connection would see a different empty :memory: database
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.AutoMigrate(db), "failed to migrate test database")

	return db
}

// CreateTestProject inserts a project with one line of each kind and
// returns it with generated IDs populated.
func CreateTestProject(t *testing.T, db *gorm.DB, documentNumber int, title string) *domain.Project {
	t.Helper()

	project := &domain.Project{
		DocumentNumber:        documentNumber,
		Title:                 title,
		ClientName:            "Testklant",
		Status:                domain.ProjectStatusDraft,
		Currency:              "EUR",
		VatRate:               21,
		MaterialMarginEnabled: true,
		MaterialMarginPct:     20,
		LaborMarginEnabled:    true,
		LaborMarginPct:        20,
		Materials: []domain.MaterialLine{
			{
				Category: domain.MaterialCategorySheetGood,
				Unit:     domain.MaterialUnitM2,
				Quantity: 2,
				UnitCost: 148.84,
				Length:   2440,
				Width:    1220,
			},
		},
		Labor: []domain.LaborLine{
			{
				Type:           domain.LaborTypeProduction,
				Hours:          40,
				CostRate:       35,
				TravelBillable: true,
			},
		},
		Extras: []domain.ExtraCostLine{
			{Description: "Transport", Cost: 150},
		},
	}
	require.NoError(t, db.Create(project).Error)

	return project
}
