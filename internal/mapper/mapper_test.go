package mapper

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/meubelwerk/offerte-api/internal/domain"
)

func TestFormatDocumentReference(t *testing.T) {
	tests := []struct {
		name      string
		prefix    string
		createdAt time.Time
		number    int
		want      string
	}{
		{
			name:      "low number is zero padded",
			prefix:    "OFF",
			createdAt: time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
			number:    1,
			want:      "OFF-2026-001",
		},
		{
			name:      "number above padding width keeps all digits",
			prefix:    "OFF",
			createdAt: time.Date(2027, 1, 2, 0, 0, 0, 0, time.UTC),
			number:    1042,
			want:      "OFF-2027-1042",
		},
		{
			name:      "custom prefix",
			prefix:    "OFFERTE",
			createdAt: time.Date(2026, 12, 31, 23, 59, 0, 0, time.UTC),
			number:    77,
			want:      "OFFERTE-2026-077",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatDocumentReference(tt.prefix, tt.createdAt, tt.number)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToProjectDTO_ComputesLineFiguresAndTotals(t *testing.T) {
	project := &domain.Project{
		BaseModel: domain.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Date(2026, 5, 1, 9, 30, 0, 0, time.UTC),
			UpdatedAt: time.Date(2026, 5, 2, 14, 0, 0, 0, time.UTC),
		},
		DocumentNumber:        12,
		Title:                 "Eiken tafel",
		Status:                domain.ProjectStatusDraft,
		Currency:              "EUR",
		VatRate:               21,
		MaterialMarginEnabled: true,
		MaterialMarginPct:     20,
		LaborMarginEnabled:    true,
		LaborMarginPct:        20,
		Materials: []domain.MaterialLine{
			{
				Category: domain.MaterialCategoryHardware,
				Unit:     domain.MaterialUnitPiece,
				Quantity: 4,
				UnitCost: 25,
			},
		},
		Labor: []domain.LaborLine{
			{Type: domain.LaborTypeProduction, Hours: 10, CostRate: 45},
		},
	}

	dto := ToProjectDTO(project, "OFF")

	assert.Equal(t, "OFF-2026-012", dto.DocumentReference)
	assert.Equal(t, "2026-05-01T09:30:00Z", dto.CreatedAt)
	assert.Equal(t, "2026-05-02T14:00:00Z", dto.UpdatedAt)

	assert.Len(t, dto.Materials, 1)
	assert.InDelta(t, 100.0, dto.Materials[0].TotalCost, 1e-9)
	assert.InDelta(t, 120.0, dto.Materials[0].SalesPrice, 1e-9)

	assert.Len(t, dto.Labor, 1)
	assert.InDelta(t, 450.0, dto.Labor[0].LaborCost, 1e-9)
	assert.InDelta(t, 540.0, dto.Labor[0].LaborSales, 1e-9)

	assert.InDelta(t, 660.0, dto.Totals.SubtotalSales, 1e-9)
	assert.InDelta(t, 100.0, dto.Totals.SubtotalCost, 1e-9)
}

func TestToProjectSummaryDTO(t *testing.T) {
	project := &domain.Project{
		BaseModel: domain.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
			UpdatedAt: time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC),
		},
		DocumentNumber: 3,
		Title:          "Boekenkast",
		ClientName:     "Jansen",
		Status:         domain.ProjectStatusSent,
		VatRate:        21,
		Extras: []domain.ExtraCostLine{
			{Cost: 100, MarginEnabled: true, MarginPct: 50},
		},
	}

	summary := ToProjectSummaryDTO(project, "OFF")

	assert.Equal(t, "OFF-2026-003", summary.DocumentReference)
	assert.Equal(t, domain.ProjectStatusSent, summary.Status)
	assert.InDelta(t, 150.0, summary.SubtotalSales, 1e-9)
	assert.InDelta(t, 181.50, summary.TotalIncVat, 1e-9)
	assert.InDelta(t, 33.33, summary.GrossMarginPct, 1e-9)
}

func TestMaterialLineFromRequest(t *testing.T) {
	libID := uuid.New()
	req := &domain.MaterialLineRequest{
		Category:          domain.MaterialCategorySheetGood,
		Description:       "Berken multiplex",
		Unit:              domain.MaterialUnitM2,
		Quantity:          3,
		UnitCost:          62.5,
		Length:            2440,
		Width:             1220,
		IsDirectPurchase:  true,
		MarginOverridePct: 10,
		LibraryItemID:     &libID,
	}

	line := MaterialLineFromRequest(req)

	assert.Equal(t, domain.MaterialCategorySheetGood, line.Category)
	assert.Equal(t, 3.0, line.Quantity)
	assert.Equal(t, 62.5, line.UnitCost)
	assert.True(t, line.IsDirectPurchase)
	assert.Equal(t, &libID, line.LibraryItemID)
	assert.Equal(t, uuid.Nil, line.ProjectID, "the repository assigns ownership")
}
