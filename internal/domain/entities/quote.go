package entities

import "time"

// QuoteStatus represents the quote lifecycle:
// Draft -> Sent -> Viewed -> Accepted | Rejected.
// Accepted and Rejected are terminal.
type QuoteStatus string

const (
	QuoteStatusDraft    QuoteStatus = "Draft"
	QuoteStatusSent     QuoteStatus = "Sent"
	QuoteStatusViewed   QuoteStatus = "Viewed"
	QuoteStatusAccepted QuoteStatus = "Accepted"
	QuoteStatusRejected QuoteStatus = "Rejected"
)

// Customer is the snapshot taken from the project at assembly time. Missing
// fields carry the explicit "N/A" sentinel, never an empty string.
type Customer struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// Vehicle is present only when the project has a make/model on file.
type Vehicle struct {
	Make                 string `json:"make"`
	Model                string `json:"model"`
	ChargingRequirements string `json:"chargingRequirements"`
}

// Installation holds the human-readable installation summary.
type Installation struct {
	Location    string  `json:"location"`
	Distance    float64 `json:"distance"`
	ConduitType string  `json:"conduitType"`
	ChargerType string  `json:"chargerType"`
}

// ServiceLine is a conditionally-triggered priced line item (panel upgrade,
// NEMA outlet, extra wiring) outside the base subtotal.
type ServiceLine struct {
	Name string  `json:"name"`
	Cost float64 `json:"cost"`
}

// AddonLine is a selected optional add-on with its configured price.
type AddonLine struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// FinancingOption is a financing plan applied to the quote total.
type FinancingOption struct {
	Term           string  `json:"term"`
	MonthlyPayment float64 `json:"monthlyPayment"`
	APR            float64 `json:"apr"`
}

// PriceBreakdown carries every intermediate of the pricing formula so each
// line can be rendered and verified independently.
type PriceBreakdown struct {
	Materials          float64       `json:"materials"`
	Labor              float64       `json:"labor"`
	LaborHours         float64       `json:"laborHours"`
	Conduit            float64       `json:"conduit"`
	Permit             float64       `json:"permit"`
	AdditionalServices []ServiceLine `json:"additionalServices"`
	SelectedAddons     []AddonLine   `json:"selectedAddons"`
	Subtotal           float64       `json:"subtotal"`
	Markup             float64       `json:"markup"`
	MarkupAmount       float64       `json:"markupAmount"`
	SalesTax           float64       `json:"salesTax"`
	SalesTaxRate       float64       `json:"salesTaxRate"`
	Total              float64       `json:"total"`
}

// Quote is the priced proposal document. A quote id is stable across
// revisions; each persisted revision is immutable.
//
// The JSON shape of this struct is the persisted "Quote Data" payload, so
// field tags are part of the storage contract.
type Quote struct {
	QuoteID          string            `json:"quoteId"`
	ProjectID        string            `json:"projectId"`
	Date             string            `json:"date"`
	ValidUntil       string            `json:"validUntil"`
	Customer         Customer          `json:"customer"`
	Vehicle          *Vehicle          `json:"vehicle,omitempty"`
	Installation     Installation      `json:"installation"`
	Pricing          PriceBreakdown    `json:"pricing"`
	Rebates          []Rebate          `json:"rebates,omitempty"`
	FinancingOptions []FinancingOption `json:"financingOptions,omitempty"`
	Status           QuoteStatus       `json:"status"`
	ShareableLink    string            `json:"shareableLink,omitempty"`
}

// QuoteVersion is one append-only persisted snapshot of a quote. For a given
// quote id versions are totally ordered starting at 1; the current quote is
// the record with the highest version number.
type QuoteVersion struct {
	RecordID      string      `json:"id"`
	QuoteID       string      `json:"quoteId"`
	ProjectID     string      `json:"projectId"`
	CustomerName  string      `json:"customerName"`
	CustomerEmail string      `json:"customerEmail"`
	TotalAmount   float64     `json:"totalAmount"`
	Quote         *Quote      `json:"quoteData"`
	Status        QuoteStatus `json:"status"`
	DateCreated   time.Time   `json:"dateCreated"`
	Version       int         `json:"version"`
	ModifiedBy    string      `json:"modifiedBy"`
}
