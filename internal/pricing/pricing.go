// Package pricing implements the quotation calculation engine. All
// functions are pure: they read line items and project margin settings
// and derive cost, sales and profit figures without touching storage.
//
// Every money amount is rounded to two decimals at the point it is
// produced, and category totals are rounded again after summation.
// This double rounding is intentional: the stored quote must match the
// printed quote cent for cent.
package pricing

import (
	"math"

	"github.com/meubelwerk/offerte-api/internal/domain"
)

// epsilon absorbs float artifacts like 2.675 being stored as
// 2.67499999... so that half-cent values round up as expected.
const epsilon = 2.220446049250313e-16

// Round2 rounds a money amount to two decimals.
func Round2(v float64) float64 {
	return math.Round((v+epsilon)*100) / 100
}

// DefaultVatRate applies when a project carries no usable VAT rate.
const DefaultVatRate = 21

// MaterialResult is the computed breakdown of a single material line.
type MaterialResult struct {
	EffectiveQuantity float64
	TotalCost         float64
	SalesPrice        float64
}

// LaborResult is the computed breakdown of a single labor line.
type LaborResult struct {
	LaborCost  float64
	LaborSales float64
}

// ExtraResult is the computed breakdown of a single extra cost line.
type ExtraResult struct {
	Cost  float64
	Sales float64
}

// EffectiveQuantity derives the costing quantity of a material line.
// For dimension-driven categories (sheet goods, solid wood, spray
// finish) sold per m2 with both length and width present, quantity is
// treated as a piece count and the area is derived from the dimensions
// in millimeters. Sold per linear meter with a length present, only
// the length contributes. Everything else uses the raw quantity.
func EffectiveQuantity(line *domain.MaterialLine) float64 {
	if line == nil {
		return 0
	}
	if line.Category.UsesDimensions() {
		if line.Length > 0 && line.Width > 0 && line.Unit == domain.MaterialUnitM2 {
			return (line.Length / 1000) * (line.Width / 1000) * line.Quantity
		}
		if line.Length > 0 && line.Unit == domain.MaterialUnitM1 {
			return (line.Length / 1000) * line.Quantity
		}
	}
	return line.Quantity
}

// materialMarginPct resolves the margin applied to a material line.
// Direct purchases ignore the project-wide margin entirely and bill at
// the line's own override percentage, which defaults to zero.
func materialMarginPct(line *domain.MaterialLine, projectMarginPct float64, projectMarginEnabled bool) float64 {
	if line.IsDirectPurchase {
		return line.MarginOverridePct
	}
	if line.MarginOverrideEnabled {
		return line.MarginOverridePct
	}
	if projectMarginEnabled {
		return projectMarginPct
	}
	return 0
}

// CalculateMaterialLine computes the cost and sales price of one
// material line under the given project-wide margin settings.
func CalculateMaterialLine(line *domain.MaterialLine, projectMarginPct float64, projectMarginEnabled bool) MaterialResult {
	if line == nil {
		return MaterialResult{}
	}

	effectiveQuantity := EffectiveQuantity(line)
	totalCost := Round2(effectiveQuantity * line.UnitCost)

	margin := materialMarginPct(line, projectMarginPct, projectMarginEnabled)
	salesPrice := Round2(totalCost * (1 + margin/100))

	return MaterialResult{
		EffectiveQuantity: effectiveQuantity,
		TotalCost:         totalCost,
		SalesPrice:        salesPrice,
	}
}

// CalculateLaborLine computes the cost and sales figures of one labor
// line. Cost is always hours times the internal cost rate. Sales
// resolution, in priority order: non-billable travel sells at zero, an
// enabled fixed sell rate bills hours at that rate, an enabled project
// labor margin marks up the cost, otherwise hours are passed through
// at cost.
func CalculateLaborLine(line *domain.LaborLine, projectMarginPct float64, projectMarginEnabled bool) LaborResult {
	if line == nil {
		return LaborResult{}
	}

	laborCost := Round2(line.Hours * line.CostRate)

	var laborSales float64
	switch {
	case line.Type == domain.LaborTypeTravel && !line.TravelBillable:
		laborSales = 0
	case line.SellRateEnabled:
		laborSales = Round2(line.Hours * line.SellRate)
	case projectMarginEnabled:
		laborSales = Round2(laborCost * (1 + projectMarginPct/100))
	default:
		laborSales = laborCost
	}

	return LaborResult{LaborCost: laborCost, LaborSales: laborSales}
}

// CalculateExtraLine computes the sales figure of one extra cost line.
// The raw cost is carried unrounded into the cost totals.
func CalculateExtraLine(line *domain.ExtraCostLine) ExtraResult {
	if line == nil {
		return ExtraResult{}
	}

	var sales float64
	if line.MarginEnabled {
		sales = Round2(line.Cost * (1 + line.MarginPct/100))
	} else {
		sales = Round2(line.Cost)
	}

	return ExtraResult{Cost: line.Cost, Sales: sales}
}

// CalculateProjectTotals aggregates all line items of a project into
// the full money breakdown. A nil project yields zeroed totals.
//
// Subtotal cost covers external purchases only (materials and extras);
// labor cost is reported but not subtracted, so hours sold are
// credited in full to gross profit.
func CalculateProjectTotals(project *domain.Project) domain.ProjectTotals {
	if project == nil {
		return domain.ProjectTotals{}
	}

	var (
		materialsCostTotal  float64
		materialsSalesTotal float64
		laborCostTotal      float64
		laborSalesTotal     float64
		extrasCostTotal     float64
		extrasSalesTotal    float64
	)

	for i := range project.Materials {
		r := CalculateMaterialLine(&project.Materials[i], project.MaterialMarginPct, project.MaterialMarginEnabled)
		materialsCostTotal += r.TotalCost
		materialsSalesTotal += r.SalesPrice
	}

	for i := range project.Labor {
		r := CalculateLaborLine(&project.Labor[i], project.LaborMarginPct, project.LaborMarginEnabled)
		laborCostTotal += r.LaborCost
		laborSalesTotal += r.LaborSales
	}

	for i := range project.Extras {
		r := CalculateExtraLine(&project.Extras[i])
		extrasCostTotal += r.Cost
		extrasSalesTotal += r.Sales
	}

	// Round the accumulated sums again so summation noise never
	// reaches the subtotal math.
	materialsCostTotal = Round2(materialsCostTotal)
	materialsSalesTotal = Round2(materialsSalesTotal)
	laborCostTotal = Round2(laborCostTotal)
	laborSalesTotal = Round2(laborSalesTotal)
	extrasCostTotal = Round2(extrasCostTotal)
	extrasSalesTotal = Round2(extrasSalesTotal)

	subtotalCost := Round2(materialsCostTotal + extrasCostTotal)
	subtotalSales := Round2(materialsSalesTotal + laborSalesTotal + extrasSalesTotal)

	vatRate := project.VatRate
	if vatRate <= 0 || math.IsNaN(vatRate) {
		vatRate = DefaultVatRate
	}
	vatAmount := Round2(subtotalSales * vatRate / 100)
	totalIncVat := Round2(subtotalSales + vatAmount)

	grossProfit := Round2(subtotalSales - subtotalCost)
	var grossMarginPct float64
	if subtotalSales > 0 {
		grossMarginPct = Round2(grossProfit / subtotalSales * 100)
	}

	return domain.ProjectTotals{
		MaterialsCostTotal:  materialsCostTotal,
		MaterialsSalesTotal: materialsSalesTotal,
		LaborCostTotal:      laborCostTotal,
		LaborSalesTotal:     laborSalesTotal,
		ExtrasCostTotal:     extrasCostTotal,
		ExtrasSalesTotal:    extrasSalesTotal,
		SubtotalCost:        subtotalCost,
		SubtotalSales:       subtotalSales,
		VatAmount:           vatAmount,
		TotalIncVat:         totalIncVat,
		GrossProfit:         grossProfit,
		GrossMarginPct:      grossMarginPct,
	}
}
