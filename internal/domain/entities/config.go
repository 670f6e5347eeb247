package entities

// AddOn is an optional priced service the contractor can offer on a quote.
type AddOn struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description,omitempty"`
}

// Rebate is an incentive listed informationally on the quote.
type Rebate struct {
	Name        string  `json:"name"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description,omitempty"`
}

// FinancingPlan is a catalog entry; the monthly payment is derived from the
// quote total at assembly time.
type FinancingPlan struct {
	Term string  `json:"term"`
	APR  float64 `json:"apr"`
}

// CompanyConfig is the per-deployment contractor configuration, stored as a
// single row in the COMPANY_CONFIG table. The catalog sub-fields are kept as
// JSON-encoded text in the store and normalized by the config repository.
type CompanyConfig struct {
	CompanyName     string             `json:"companyName"`
	IncludedFootage float64            `json:"includedFootage"`
	LaborRate       float64            `json:"laborRate"`
	DefaultMarkup   float64            `json:"defaultMarkup"`
	OptionalAddons  []AddOn            `json:"optionalAddons"`
	Rebates         []Rebate           `json:"rebates"`
	FinancingPlans  []FinancingPlan    `json:"financingPlans"`
	StateTaxRates   map[string]float64 `json:"stateTaxRates"`
}

// DefaultCompanyConfig is returned when no config row exists in the store.
func DefaultCompanyConfig() CompanyConfig {
	return CompanyConfig{
		CompanyName:     "EV Charge Pro",
		IncludedFootage: 20,
		LaborRate:       95,
		DefaultMarkup:   20,
		OptionalAddons:  []AddOn{},
		Rebates:         []Rebate{},
		FinancingPlans:  []FinancingPlan{},
		StateTaxRates:   map[string]float64{"GA": 4},
	}
}

// DefaultChargerRecommendation is used when a vehicle has no spec row.
const DefaultChargerRecommendation = "Level 2, 240V"

// VehicleSpec is informational charging data keyed by "<make> <model>".
type VehicleSpec struct {
	RecommendedCharger string `json:"recommendedCharger"`
	MaxChargingPower   string `json:"maxChargingPower"`
	ChargingSpeed      string `json:"chargingSpeed"`
}
