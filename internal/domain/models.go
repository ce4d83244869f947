package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base model with common fields. IDs are generated in the application
// so the same schema works on PostgreSQL and SQLite.
type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// BeforeCreate assigns a UUID when none was set
func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// ProjectStatus represents the lifecycle state of a quotation project
type ProjectStatus string

const (
	ProjectStatusDraft     ProjectStatus = "draft"
	ProjectStatusSent      ProjectStatus = "sent"
	ProjectStatusAccepted  ProjectStatus = "accepted"
	ProjectStatusCompleted ProjectStatus = "completed"
	ProjectStatusArchived  ProjectStatus = "archived"
)

// IsValid checks if the ProjectStatus is a valid enum value
func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectStatusDraft, ProjectStatusSent, ProjectStatusAccepted,
		ProjectStatusCompleted, ProjectStatusArchived:
		return true
	}
	return false
}

// MaterialCategory classifies a material line for costing purposes.
// Sheet goods, solid wood and spray finishing are dimension-driven:
// their cost quantity is derived from length/width when present.
type MaterialCategory string

const (
	MaterialCategorySheetGood   MaterialCategory = "sheet_good"
	MaterialCategorySolidWood   MaterialCategory = "solid_wood"
	MaterialCategoryHardware    MaterialCategory = "hardware"
	MaterialCategoryFinishing   MaterialCategory = "finishing"
	MaterialCategoryElectrical  MaterialCategory = "electrical"
	MaterialCategorySprayFinish MaterialCategory = "spray_finish"
	MaterialCategoryOther       MaterialCategory = "other"
)

// UsesDimensions reports whether the category derives its cost
// quantity from the line's physical dimensions.
func (c MaterialCategory) UsesDimensions() bool {
	switch c {
	case MaterialCategorySheetGood, MaterialCategorySolidWood, MaterialCategorySprayFinish:
		return true
	}
	return false
}

// MaterialUnit represents the costing unit of a material line
type MaterialUnit string

const (
	MaterialUnitM2    MaterialUnit = "m2"
	MaterialUnitM1    MaterialUnit = "m1"
	MaterialUnitPiece MaterialUnit = "piece"
	MaterialUnitSet   MaterialUnit = "set"
	MaterialUnitLiter MaterialUnit = "liter"
	MaterialUnitKg    MaterialUnit = "kg"
)

// LaborType represents the kind of work on a labor line
type LaborType string

const (
	LaborTypeProduction     LaborType = "production"
	LaborTypeAssembly       LaborType = "assembly"
	LaborTypeTravel         LaborType = "travel"
	LaborTypeSubcontracting LaborType = "subcontracting"
)

// Project is the aggregate root for a quotation: one piece of custom
// furniture work with its material, labor and extra cost breakdown.
// Totals are never stored; they are recomputed from the lines on read.
type Project struct {
	BaseModel
	DocumentNumber int           `gorm:"not null;uniqueIndex;column:document_number"`
	Title          string        `gorm:"type:varchar(200);not null;index"`
	ClientName     string        `gorm:"type:varchar(200);column:client_name"`
	Status         ProjectStatus `gorm:"type:varchar(50);not null;default:'draft';index"`
	Currency       string        `gorm:"type:varchar(3);not null;default:'EUR'"`
	VatRate        float64       `gorm:"type:decimal(5,2);not null;default:21;column:vat_rate"`
	Notes          string        `gorm:"type:text"`

	MaterialMarginEnabled bool    `gorm:"not null;default:true;column:material_margin_enabled"`
	MaterialMarginPct     float64 `gorm:"type:decimal(5,2);not null;default:0;column:material_margin_pct"`
	LaborMarginEnabled    bool    `gorm:"not null;default:true;column:labor_margin_enabled"`
	LaborMarginPct        float64 `gorm:"type:decimal(5,2);not null;default:0;column:labor_margin_pct"`

	Materials []MaterialLine  `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Labor     []LaborLine     `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Extras    []ExtraCostLine `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// MaterialLine is one purchasable material entry on a project.
// When LibraryItemID is set the line was picked from the catalog; the
// unit cost is a copy taken at pick time, the catalog owns the price.
type MaterialLine struct {
	BaseModel
	ProjectID   uuid.UUID        `gorm:"type:uuid;not null;index;column:project_id"`
	Category    MaterialCategory `gorm:"type:varchar(50);not null;default:'other'"`
	Description string           `gorm:"type:varchar(500)"`
	Unit        MaterialUnit     `gorm:"type:varchar(20);not null;default:'piece'"`
	Quantity    float64          `gorm:"type:decimal(10,3);not null;default:0"`
	UnitCost    float64          `gorm:"type:decimal(12,2);not null;default:0;column:unit_cost"`
	Supplier    string           `gorm:"type:varchar(200)"`

	// Dimensions in millimeters; zero means not provided.
	Length    float64 `gorm:"type:decimal(10,1);not null;default:0"`
	Width     float64 `gorm:"type:decimal(10,1);not null;default:0"`
	Thickness float64 `gorm:"type:decimal(10,1);not null;default:0"`

	MarginOverrideEnabled bool    `gorm:"not null;default:false;column:margin_override_enabled"`
	MarginOverridePct     float64 `gorm:"type:decimal(5,2);not null;default:0;column:margin_override_pct"`
	IsDirectPurchase      bool    `gorm:"not null;default:false;column:is_direct_purchase"`

	LibraryItemID *uuid.UUID `gorm:"type:uuid;column:library_item_id"`
}

// LaborLine is one work-type entry on a project. CostRate is the
// internal hourly cost; SellRate is a fixed negotiated billing rate
// used only when SellRateEnabled is set.
type LaborLine struct {
	BaseModel
	ProjectID       uuid.UUID `gorm:"type:uuid;not null;index;column:project_id"`
	Type            LaborType `gorm:"type:varchar(50);not null;default:'production'"`
	Hours           float64   `gorm:"type:decimal(10,2);not null;default:0"`
	CostRate        float64   `gorm:"type:decimal(12,2);not null;default:0;column:cost_rate"`
	SellRateEnabled bool      `gorm:"not null;default:false;column:sell_rate_enabled"`
	SellRate        float64   `gorm:"type:decimal(12,2);not null;default:0;column:sell_rate"`
	TravelBillable  bool      `gorm:"not null;default:true;column:travel_billable"`
}

// ExtraCostLine is a miscellaneous cost entry on a project
type ExtraCostLine struct {
	BaseModel
	ProjectID     uuid.UUID `gorm:"type:uuid;not null;index;column:project_id"`
	Description   string    `gorm:"type:varchar(500)"`
	Cost          float64   `gorm:"type:decimal(12,2);not null;default:0"`
	MarginEnabled bool      `gorm:"not null;default:false;column:margin_enabled"`
	MarginPct     float64   `gorm:"type:decimal(5,2);not null;default:0;column:margin_pct"`
}

// LibraryMaterial is a catalog entry with the canonical price for a
// material. Picking it into a project copies the price onto the line.
type LibraryMaterial struct {
	BaseModel
	Category    MaterialCategory `gorm:"type:varchar(50);not null;default:'other';index"`
	Description string           `gorm:"type:varchar(500);not null"`
	Unit        MaterialUnit     `gorm:"type:varchar(20);not null;default:'piece'"`
	UnitCost    float64          `gorm:"type:decimal(12,2);not null;default:0;column:unit_cost"`
	Supplier    string           `gorm:"type:varchar(200)"`
	Length      float64          `gorm:"type:decimal(10,1);not null;default:0"`
	Width       float64          `gorm:"type:decimal(10,1);not null;default:0"`
	Thickness   float64          `gorm:"type:decimal(10,1);not null;default:0"`
}

// TodoItem is a workshop order-list entry
type TodoItem struct {
	BaseModel
	Text      string `gorm:"type:varchar(500);not null"`
	Completed bool   `gorm:"not null;default:false"`
}

// OfferSettings is the workshop-wide settings singleton: company
// identity for quote documents, document texts, and data-entry
// defaults. Standard sell rates are pre-fill values for the editing
// UI only; the pricing engine never reads them.
type OfferSettings struct {
	ID        uint      `gorm:"primaryKey"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`

	CompanyName   string `gorm:"type:varchar(200);not null;column:company_name"`
	CompanyStreet string `gorm:"type:varchar(200);column:company_street"`
	CompanyZip    string `gorm:"type:varchar(20);column:company_zip"`
	CompanyCity   string `gorm:"type:varchar(100);column:company_city"`
	CompanyPhone  string `gorm:"type:varchar(50);column:company_phone"`
	CompanyEmail  string `gorm:"type:varchar(255);column:company_email"`
	CompanyIban   string `gorm:"type:varchar(50);column:company_iban"`
	CompanyKvk    string `gorm:"type:varchar(20);column:company_kvk"`
	CompanyVatID  string `gorm:"type:varchar(30);column:company_vat_id"`

	HeaderTitle string `gorm:"type:varchar(200);column:header_title"`
	FooterText  string `gorm:"type:text;column:footer_text"`
	TermsNotice string `gorm:"type:text;column:terms_notice"`
	Salutation  string `gorm:"type:varchar(100)"`
	Language    string `gorm:"type:varchar(5);not null;default:'nl'"`

	DefaultVatRate             float64 `gorm:"type:decimal(5,2);not null;default:21;column:default_vat_rate"`
	TargetMarginPct            float64 `gorm:"type:decimal(5,2);not null;default:35;column:target_margin_pct"`
	DefaultLaborCostRate       float64 `gorm:"type:decimal(12,2);not null;default:45;column:default_labor_cost_rate"`
	StandardProductionSellRate float64 `gorm:"type:decimal(12,2);not null;default:0;column:standard_production_sell_rate"`
	StandardAssemblySellRate   float64 `gorm:"type:decimal(12,2);not null;default:0;column:standard_assembly_sell_rate"`
}

// TableName overrides the default table name
func (OfferSettings) TableName() string {
	return "offer_settings"
}

// DefaultOfferSettings returns the settings row created on first
// access, before the workshop has filled in its own identity.
func DefaultOfferSettings() OfferSettings {
	return OfferSettings{
		CompanyName:          "Mijn Meubelmakerij",
		HeaderTitle:          "Offerte",
		Salutation:           "Geachte heer/mevrouw,",
		Language:             "nl",
		DefaultVatRate:       21,
		TargetMarginPct:      35,
		DefaultLaborCostRate: 45,
	}
}

// NumberSequence backs the sequential document numbering. One named
// counter row is incremented atomically when a project is created, so
// document numbers are unique and strictly increasing across years.
type NumberSequence struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"type:varchar(50);not null;uniqueIndex"`
	LastValue int       `gorm:"not null;default:0;column:last_value"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
}
