// Package mapper converts domain models to API DTOs. All computed
// money figures on the DTOs come from the pricing engine here, so
// handlers and services never do arithmetic of their own.
package mapper

import (
	"fmt"
	"time"

	"github.com/meubelwerk/offerte-api/internal/domain"
	"github.com/meubelwerk/offerte-api/internal/pricing"
)

const timeFormat = "2006-01-02T15:04:05Z"

// FormatDocumentReference renders a document number as a printable
// quote reference, e.g. OFF-2026-001. The year comes from the
// project's creation date; the counter itself never resets.
func FormatDocumentReference(prefix string, createdAt time.Time, number int) string {
	return fmt.Sprintf("%s-%d-%03d", prefix, createdAt.Year(), number)
}

// ToMaterialLineDTO maps a material line with its computed figures
// under the given project-wide margin settings.
func ToMaterialLineDTO(line *domain.MaterialLine, marginPct float64, marginEnabled bool) domain.MaterialLineDTO {
	result := pricing.CalculateMaterialLine(line, marginPct, marginEnabled)
	return domain.MaterialLineDTO{
		ID:                    line.ID,
		Category:              line.Category,
		Description:           line.Description,
		Unit:                  line.Unit,
		Quantity:              line.Quantity,
		UnitCost:              line.UnitCost,
		Supplier:              line.Supplier,
		Length:                line.Length,
		Width:                 line.Width,
		Thickness:             line.Thickness,
		MarginOverrideEnabled: line.MarginOverrideEnabled,
		MarginOverridePct:     line.MarginOverridePct,
		IsDirectPurchase:      line.IsDirectPurchase,
		LibraryItemID:         line.LibraryItemID,
		EffectiveQuantity:     result.EffectiveQuantity,
		TotalCost:             result.TotalCost,
		SalesPrice:            result.SalesPrice,
	}
}

// ToLaborLineDTO maps a labor line with its computed figures
func ToLaborLineDTO(line *domain.LaborLine, marginPct float64, marginEnabled bool) domain.LaborLineDTO {
	result := pricing.CalculateLaborLine(line, marginPct, marginEnabled)
	return domain.LaborLineDTO{
		ID:              line.ID,
		Type:            line.Type,
		Hours:           line.Hours,
		CostRate:        line.CostRate,
		SellRateEnabled: line.SellRateEnabled,
		SellRate:        line.SellRate,
		TravelBillable:  line.TravelBillable,
		LaborCost:       result.LaborCost,
		LaborSales:      result.LaborSales,
	}
}

// ToExtraCostLineDTO maps an extra cost line with its computed figure
func ToExtraCostLineDTO(line *domain.ExtraCostLine) domain.ExtraCostLineDTO {
	result := pricing.CalculateExtraLine(line)
	return domain.ExtraCostLineDTO{
		ID:            line.ID,
		Description:   line.Description,
		Cost:          line.Cost,
		MarginEnabled: line.MarginEnabled,
		MarginPct:     line.MarginPct,
		Sales:         result.Sales,
	}
}

// ToProjectDTO maps a project with all line collections and the full
// totals breakdown.
func ToProjectDTO(project *domain.Project, documentPrefix string) *domain.ProjectDTO {
	materials := make([]domain.MaterialLineDTO, len(project.Materials))
	for i := range project.Materials {
		materials[i] = ToMaterialLineDTO(&project.Materials[i], project.MaterialMarginPct, project.MaterialMarginEnabled)
	}

	labor := make([]domain.LaborLineDTO, len(project.Labor))
	for i := range project.Labor {
		labor[i] = ToLaborLineDTO(&project.Labor[i], project.LaborMarginPct, project.LaborMarginEnabled)
	}

	extras := make([]domain.ExtraCostLineDTO, len(project.Extras))
	for i := range project.Extras {
		extras[i] = ToExtraCostLineDTO(&project.Extras[i])
	}

	return &domain.ProjectDTO{
		ID:                    project.ID,
		DocumentNumber:        project.DocumentNumber,
		DocumentReference:     FormatDocumentReference(documentPrefix, project.CreatedAt, project.DocumentNumber),
		Title:                 project.Title,
		ClientName:            project.ClientName,
		Status:                project.Status,
		Currency:              project.Currency,
		VatRate:               project.VatRate,
		Notes:                 project.Notes,
		MaterialMarginEnabled: project.MaterialMarginEnabled,
		MaterialMarginPct:     project.MaterialMarginPct,
		LaborMarginEnabled:    project.LaborMarginEnabled,
		LaborMarginPct:        project.LaborMarginPct,
		Materials:             materials,
		Labor:                 labor,
		Extras:                extras,
		Totals:                pricing.CalculateProjectTotals(project),
		CreatedAt:             project.CreatedAt.Format(timeFormat),
		UpdatedAt:             project.UpdatedAt.Format(timeFormat),
	}
}

// ToProjectSummaryDTO maps a project to its list representation.
// Needs the line collections loaded to compute the headline figures.
func ToProjectSummaryDTO(project *domain.Project, documentPrefix string) domain.ProjectSummaryDTO {
	totals := pricing.CalculateProjectTotals(project)
	return domain.ProjectSummaryDTO{
		ID:                project.ID,
		DocumentNumber:    project.DocumentNumber,
		DocumentReference: FormatDocumentReference(documentPrefix, project.CreatedAt, project.DocumentNumber),
		Title:             project.Title,
		ClientName:        project.ClientName,
		Status:            project.Status,
		SubtotalSales:     totals.SubtotalSales,
		TotalIncVat:       totals.TotalIncVat,
		GrossMarginPct:    totals.GrossMarginPct,
		UpdatedAt:         project.UpdatedAt.Format(timeFormat),
	}
}

// ToLibraryMaterialDTO maps a catalog entry
func ToLibraryMaterialDTO(item *domain.LibraryMaterial) domain.LibraryMaterialDTO {
	return domain.LibraryMaterialDTO{
		ID:          item.ID,
		Category:    item.Category,
		Description: item.Description,
		Unit:        item.Unit,
		UnitCost:    item.UnitCost,
		Supplier:    item.Supplier,
		Length:      item.Length,
		Width:       item.Width,
		Thickness:   item.Thickness,
	}
}

// ToTodoItemDTO maps an order-list entry
func ToTodoItemDTO(item *domain.TodoItem) domain.TodoItemDTO {
	return domain.TodoItemDTO{
		ID:        item.ID,
		Text:      item.Text,
		Completed: item.Completed,
		CreatedAt: item.CreatedAt.Format(timeFormat),
	}
}

// ToOfferSettingsDTO maps the settings singleton
func ToOfferSettingsDTO(settings *domain.OfferSettings) *domain.OfferSettingsDTO {
	return &domain.OfferSettingsDTO{
		CompanyName:                settings.CompanyName,
		CompanyStreet:              settings.CompanyStreet,
		CompanyZip:                 settings.CompanyZip,
		CompanyCity:                settings.CompanyCity,
		CompanyPhone:               settings.CompanyPhone,
		CompanyEmail:               settings.CompanyEmail,
		CompanyIban:                settings.CompanyIban,
		CompanyKvk:                 settings.CompanyKvk,
		CompanyVatID:               settings.CompanyVatID,
		HeaderTitle:                settings.HeaderTitle,
		FooterText:                 settings.FooterText,
		TermsNotice:                settings.TermsNotice,
		Salutation:                 settings.Salutation,
		Language:                   settings.Language,
		DefaultVatRate:             settings.DefaultVatRate,
		TargetMarginPct:            settings.TargetMarginPct,
		DefaultLaborCostRate:       settings.DefaultLaborCostRate,
		StandardProductionSellRate: settings.StandardProductionSellRate,
		StandardAssemblySellRate:   settings.StandardAssemblySellRate,
	}
}

// MaterialLineFromRequest maps a replace-set request line to a model
func MaterialLineFromRequest(req *domain.MaterialLineRequest) domain.MaterialLine {
	return domain.MaterialLine{
		Category:              req.Category,
		Description:           req.Description,
		Unit:                  req.Unit,
		Quantity:              req.Quantity,
		UnitCost:              req.UnitCost,
		Supplier:              req.Supplier,
		Length:                req.Length,
		Width:                 req.Width,
		Thickness:             req.Thickness,
		MarginOverrideEnabled: req.MarginOverrideEnabled,
		MarginOverridePct:     req.MarginOverridePct,
		IsDirectPurchase:      req.IsDirectPurchase,
		LibraryItemID:         req.LibraryItemID,
	}
}

// LaborLineFromRequest maps a replace-set request line to a model
func LaborLineFromRequest(req *domain.LaborLineRequest) domain.LaborLine {
	return domain.LaborLine{
		Type:            req.Type,
		Hours:           req.Hours,
		CostRate:        req.CostRate,
		SellRateEnabled: req.SellRateEnabled,
		SellRate:        req.SellRate,
		TravelBillable:  req.TravelBillable,
	}
}

// ExtraCostLineFromRequest maps a replace-set request line to a model
func ExtraCostLineFromRequest(req *domain.ExtraCostLineRequest) domain.ExtraCostLine {
	return domain.ExtraCostLine{
		Description:   req.Description,
		Cost:          req.Cost,
		MarginEnabled: req.MarginEnabled,
		MarginPct:     req.MarginPct,
	}
}
