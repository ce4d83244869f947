package domain

import (
	"github.com/google/uuid"
)

// DTOs for API responses

// MaterialLineDTO carries a material line plus its computed cost and
// sales contribution for the editing tables.
type MaterialLineDTO struct {
	ID                    uuid.UUID        `json:"id"`
	Category              MaterialCategory `json:"category"`
	Description           string           `json:"description"`
	Unit                  MaterialUnit     `json:"unit"`
	Quantity              float64          `json:"quantity"`
	UnitCost              float64          `json:"unitCost"`
	Supplier              string           `json:"supplier,omitempty"`
	Length                float64          `json:"length,omitempty"`
	Width                 float64          `json:"width,omitempty"`
	Thickness             float64          `json:"thickness,omitempty"`
	MarginOverrideEnabled bool             `json:"marginOverrideEnabled"`
	MarginOverridePct     float64          `json:"marginOverridePct"`
	IsDirectPurchase      bool             `json:"isDirectPurchase"`
	LibraryItemID         *uuid.UUID       `json:"libraryItemId,omitempty"`
	EffectiveQuantity     float64          `json:"effectiveQuantity"`
	TotalCost             float64          `json:"totalCost"`
	SalesPrice            float64          `json:"salesPrice"`
}

// LaborLineDTO carries a labor line plus its computed cost and sales figures
type LaborLineDTO struct {
	ID              uuid.UUID `json:"id"`
	Type            LaborType `json:"type"`
	Hours           float64   `json:"hours"`
	CostRate        float64   `json:"costRate"`
	SellRateEnabled bool      `json:"sellRateEnabled"`
	SellRate        float64   `json:"sellRate"`
	TravelBillable  bool      `json:"travelBillable"`
	LaborCost       float64   `json:"laborCost"`
	LaborSales      float64   `json:"laborSales"`
}

// ExtraCostLineDTO carries an extra cost line plus its computed sales figure
type ExtraCostLineDTO struct {
	ID            uuid.UUID `json:"id"`
	Description   string    `json:"description"`
	Cost          float64   `json:"cost"`
	MarginEnabled bool      `json:"marginEnabled"`
	MarginPct     float64   `json:"marginPct"`
	Sales         float64   `json:"sales"`
}

// ProjectDTO is the full project representation with computed totals
type ProjectDTO struct {
	ID                    uuid.UUID          `json:"id"`
	DocumentNumber        int                `json:"documentNumber"`
	DocumentReference     string             `json:"documentReference"`
	Title                 string             `json:"title"`
	ClientName            string             `json:"clientName,omitempty"`
	Status                ProjectStatus      `json:"status"`
	Currency              string             `json:"currency"`
	VatRate               float64            `json:"vatRate"`
	Notes                 string             `json:"notes,omitempty"`
	MaterialMarginEnabled bool               `json:"materialMarginEnabled"`
	MaterialMarginPct     float64            `json:"materialMarginPct"`
	LaborMarginEnabled    bool               `json:"laborMarginEnabled"`
	LaborMarginPct        float64            `json:"laborMarginPct"`
	Materials             []MaterialLineDTO  `json:"materials"`
	Labor                 []LaborLineDTO     `json:"labor"`
	Extras                []ExtraCostLineDTO `json:"extras"`
	Totals                ProjectTotals      `json:"totals"`
	CreatedAt             string             `json:"createdAt"` // ISO 8601
	UpdatedAt             string             `json:"updatedAt"` // ISO 8601
}

// ProjectSummaryDTO is the list representation: header fields plus the
// headline money figures, without the line collections.
type ProjectSummaryDTO struct {
	ID                uuid.UUID     `json:"id"`
	DocumentNumber    int           `json:"documentNumber"`
	DocumentReference string        `json:"documentReference"`
	Title             string        `json:"title"`
	ClientName        string        `json:"clientName,omitempty"`
	Status            ProjectStatus `json:"status"`
	SubtotalSales     float64       `json:"subtotalSales"`
	TotalIncVat       float64       `json:"totalIncVat"`
	GrossMarginPct    float64       `json:"grossMarginPct"`
	UpdatedAt         string        `json:"updatedAt"`
}

// LibraryMaterialDTO is the catalog entry representation
type LibraryMaterialDTO struct {
	ID          uuid.UUID        `json:"id"`
	Category    MaterialCategory `json:"category"`
	Description string           `json:"description"`
	Unit        MaterialUnit     `json:"unit"`
	UnitCost    float64          `json:"unitCost"`
	Supplier    string           `json:"supplier,omitempty"`
	Length      float64          `json:"length,omitempty"`
	Width       float64          `json:"width,omitempty"`
	Thickness   float64          `json:"thickness,omitempty"`
}

// TodoItemDTO is the order-list entry representation
type TodoItemDTO struct {
	ID        uuid.UUID `json:"id"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	CreatedAt string    `json:"createdAt"`
}

// OfferSettingsDTO is the settings singleton representation
type OfferSettingsDTO struct {
	CompanyName   string `json:"companyName"`
	CompanyStreet string `json:"companyStreet,omitempty"`
	CompanyZip    string `json:"companyZip,omitempty"`
	CompanyCity   string `json:"companyCity,omitempty"`
	CompanyPhone  string `json:"companyPhone,omitempty"`
	CompanyEmail  string `json:"companyEmail,omitempty"`
	CompanyIban   string `json:"companyIban,omitempty"`
	CompanyKvk    string `json:"companyKvk,omitempty"`
	CompanyVatID  string `json:"companyVatId,omitempty"`

	HeaderTitle string `json:"headerTitle,omitempty"`
	FooterText  string `json:"footerText,omitempty"`
	TermsNotice string `json:"termsNotice,omitempty"`
	Salutation  string `json:"salutation,omitempty"`
	Language    string `json:"language"`

	DefaultVatRate             float64 `json:"defaultVatRate"`
	TargetMarginPct            float64 `json:"targetMarginPct"`
	DefaultLaborCostRate       float64 `json:"defaultLaborCostRate"`
	StandardProductionSellRate float64 `json:"standardProductionSellRate"`
	StandardAssemblySellRate   float64 `json:"standardAssemblySellRate"`
}

// DashboardMetricsDTO holds the summary tiles for the overview screen
type DashboardMetricsDTO struct {
	TotalProjects     int                   `json:"totalProjects"`
	ProjectsByStatus  map[ProjectStatus]int `json:"projectsByStatus"`
	OpenQuoteValue    float64               `json:"openQuoteValue"`
	AcceptedValue     float64               `json:"acceptedValue"`
	AverageMarginPct  float64               `json:"averageMarginPct"`
	TargetMarginPct   float64               `json:"targetMarginPct"`
	BelowTargetMargin int                   `json:"belowTargetMargin"`
	OpenTodos         int                   `json:"openTodos"`
}

// Pagination response wrapper
type PaginatedResponse struct {
	Data       interface{} `json:"data"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	PageSize   int         `json:"pageSize"`
	TotalPages int         `json:"totalPages"`
}

// Request DTOs

// CreateProjectRequest creates a new draft project. Margins and labor
// defaults are filled from the settings singleton by the service.
type CreateProjectRequest struct {
	Title      string `json:"title" validate:"required,max=200"`
	ClientName string `json:"clientName,omitempty" validate:"max=200"`
	Notes      string `json:"notes,omitempty"`
}

// UpdateProjectRequest updates project header fields and margin
// settings. Nil pointers leave the current value untouched.
type UpdateProjectRequest struct {
	Title                 *string        `json:"title,omitempty" validate:"omitempty,max=200"`
	ClientName            *string        `json:"clientName,omitempty" validate:"omitempty,max=200"`
	Status                *ProjectStatus `json:"status,omitempty" validate:"omitempty,oneof=draft sent accepted completed archived"`
	VatRate               *float64       `json:"vatRate,omitempty" validate:"omitempty,gte=0,lte=100"`
	Notes                 *string        `json:"notes,omitempty"`
	MaterialMarginEnabled *bool          `json:"materialMarginEnabled,omitempty"`
	MaterialMarginPct     *float64       `json:"materialMarginPct,omitempty" validate:"omitempty,gte=0"`
	LaborMarginEnabled    *bool          `json:"laborMarginEnabled,omitempty"`
	LaborMarginPct        *float64       `json:"laborMarginPct,omitempty" validate:"omitempty,gte=0"`
}

// MaterialLineRequest is one material line in a replace-set update
type MaterialLineRequest struct {
	Category              MaterialCategory `json:"category" validate:"required,oneof=sheet_good solid_wood hardware finishing electrical spray_finish other"`
	Description           string           `json:"description,omitempty" validate:"max=500"`
	Unit                  MaterialUnit     `json:"unit" validate:"required,oneof=m2 m1 piece set liter kg"`
	Quantity              float64          `json:"quantity" validate:"gte=0"`
	UnitCost              float64          `json:"unitCost" validate:"gte=0"`
	Supplier              string           `json:"supplier,omitempty" validate:"max=200"`
	Length                float64          `json:"length,omitempty" validate:"gte=0"`
	Width                 float64          `json:"width,omitempty" validate:"gte=0"`
	Thickness             float64          `json:"thickness,omitempty" validate:"gte=0"`
	MarginOverrideEnabled bool             `json:"marginOverrideEnabled"`
	MarginOverridePct     float64          `json:"marginOverridePct" validate:"gte=0"`
	IsDirectPurchase      bool             `json:"isDirectPurchase"`
	LibraryItemID         *uuid.UUID       `json:"libraryItemId,omitempty"`
}

// LaborLineRequest is one labor line in a replace-set update
type LaborLineRequest struct {
	Type            LaborType `json:"type" validate:"required,oneof=production assembly travel subcontracting"`
	Hours           float64   `json:"hours" validate:"gte=0"`
	CostRate        float64   `json:"costRate" validate:"gte=0"`
	SellRateEnabled bool      `json:"sellRateEnabled"`
	SellRate        float64   `json:"sellRate" validate:"gte=0"`
	TravelBillable  bool      `json:"travelBillable"`
}

// ExtraCostLineRequest is one extra cost line in a replace-set update
type ExtraCostLineRequest struct {
	Description   string  `json:"description,omitempty" validate:"max=500"`
	Cost          float64 `json:"cost" validate:"gte=0"`
	MarginEnabled bool    `json:"marginEnabled"`
	MarginPct     float64 `json:"marginPct" validate:"gte=0"`
}

// ReplaceMaterialLinesRequest replaces a project's material collection
type ReplaceMaterialLinesRequest struct {
	Materials []MaterialLineRequest `json:"materials" validate:"dive"`
}

// ReplaceLaborLinesRequest replaces a project's labor collection
type ReplaceLaborLinesRequest struct {
	Labor []LaborLineRequest `json:"labor" validate:"dive"`
}

// ReplaceExtraLinesRequest replaces a project's extras collection
type ReplaceExtraLinesRequest struct {
	Extras []ExtraCostLineRequest `json:"extras" validate:"dive"`
}

// CreateLibraryMaterialRequest creates a catalog entry
type CreateLibraryMaterialRequest struct {
	Category    MaterialCategory `json:"category" validate:"required,oneof=sheet_good solid_wood hardware finishing electrical spray_finish other"`
	Description string           `json:"description" validate:"required,max=500"`
	Unit        MaterialUnit     `json:"unit" validate:"required,oneof=m2 m1 piece set liter kg"`
	UnitCost    float64          `json:"unitCost" validate:"gte=0"`
	Supplier    string           `json:"supplier,omitempty" validate:"max=200"`
	Length      float64          `json:"length,omitempty" validate:"gte=0"`
	Width       float64          `json:"width,omitempty" validate:"gte=0"`
	Thickness   float64          `json:"thickness,omitempty" validate:"gte=0"`
}

// UpdateLibraryMaterialRequest updates a catalog entry
type UpdateLibraryMaterialRequest struct {
	Category    *MaterialCategory `json:"category,omitempty" validate:"omitempty,oneof=sheet_good solid_wood hardware finishing electrical spray_finish other"`
	Description *string           `json:"description,omitempty" validate:"omitempty,max=500"`
	Unit        *MaterialUnit     `json:"unit,omitempty" validate:"omitempty,oneof=m2 m1 piece set liter kg"`
	UnitCost    *float64          `json:"unitCost,omitempty" validate:"omitempty,gte=0"`
	Supplier    *string           `json:"supplier,omitempty" validate:"omitempty,max=200"`
	Length      *float64          `json:"length,omitempty" validate:"omitempty,gte=0"`
	Width       *float64          `json:"width,omitempty" validate:"omitempty,gte=0"`
	Thickness   *float64          `json:"thickness,omitempty" validate:"omitempty,gte=0"`
}

// CreateTodoRequest creates an order-list entry
type CreateTodoRequest struct {
	Text string `json:"text" validate:"required,max=500"`
}

// UpdateSettingsRequest updates the settings singleton
type UpdateSettingsRequest struct {
	CompanyName   *string `json:"companyName,omitempty" validate:"omitempty,max=200"`
	CompanyStreet *string `json:"companyStreet,omitempty" validate:"omitempty,max=200"`
	CompanyZip    *string `json:"companyZip,omitempty" validate:"omitempty,max=20"`
	CompanyCity   *string `json:"companyCity,omitempty" validate:"omitempty,max=100"`
	CompanyPhone  *string `json:"companyPhone,omitempty" validate:"omitempty,max=50"`
	CompanyEmail  *string `json:"companyEmail,omitempty" validate:"omitempty,email,max=255"`
	CompanyIban   *string `json:"companyIban,omitempty" validate:"omitempty,max=50"`
	CompanyKvk    *string `json:"companyKvk,omitempty" validate:"omitempty,max=20"`
	CompanyVatID  *string `json:"companyVatId,omitempty" validate:"omitempty,max=30"`

	HeaderTitle *string `json:"headerTitle,omitempty" validate:"omitempty,max=200"`
	FooterText  *string `json:"footerText,omitempty"`
	TermsNotice *string `json:"termsNotice,omitempty"`
	Salutation  *string `json:"salutation,omitempty" validate:"omitempty,max=100"`
	Language    *string `json:"language,omitempty" validate:"omitempty,oneof=nl en"`

	DefaultVatRate             *float64 `json:"defaultVatRate,omitempty" validate:"omitempty,gte=0,lte=100"`
	TargetMarginPct            *float64 `json:"targetMarginPct,omitempty" validate:"omitempty,gte=0"`
	DefaultLaborCostRate       *float64 `json:"defaultLaborCostRate,omitempty" validate:"omitempty,gte=0"`
	StandardProductionSellRate *float64 `json:"standardProductionSellRate,omitempty" validate:"omitempty,gte=0"`
	StandardAssemblySellRate   *float64 `json:"standardAssemblySellRate,omitempty" validate:"omitempty,gte=0"`
}
