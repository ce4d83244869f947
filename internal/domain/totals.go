package domain

// ProjectTotals is the derived money breakdown of a project. It is
// never persisted: every read recomputes it from the line items, so it
// can always be trusted against the stored lines. All money fields are
// rounded to two decimals.
//
// SubtotalCost deliberately covers external purchases only (materials
// and extras). Labor cost is reported for reference but not subtracted
// from gross profit: hours sold are credited in full to the margin.
type ProjectTotals struct {
	MaterialsCostTotal  float64 `json:"materialsCostTotal"`
	MaterialsSalesTotal float64 `json:"materialsSalesTotal"`
	LaborCostTotal      float64 `json:"laborCostTotal"`
	LaborSalesTotal     float64 `json:"laborSalesTotal"`
	ExtrasCostTotal     float64 `json:"extrasCostTotal"`
	ExtrasSalesTotal    float64 `json:"extrasSalesTotal"`
	SubtotalCost        float64 `json:"subtotalCost"`
	SubtotalSales       float64 `json:"subtotalSales"`
	VatAmount           float64 `json:"vatAmount"`
	TotalIncVat         float64 `json:"totalIncVat"`
	GrossProfit         float64 `json:"grossProfit"`
	GrossMarginPct      float64 `json:"grossMarginPct"`
}
