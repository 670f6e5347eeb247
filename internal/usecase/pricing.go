package usecase

import (
	"fmt"
	"math"
	"slices"
	"strconv"

	"github.com/gems85/bolt-quotes-proxy/internal/domain/entities"
)

// Pricing policy constants. These are a fixed, documented formula, not
// user-programmable configuration.
const (
	materialsBaseCost = 650.0

	laborBaseHours         = 6.0
	laborConcealedHours    = 2.0
	laborUndergroundHours  = 4.0
	laborPanelUpgradeHours = 8.0

	conduitBaseCost         = 250.0
	extraFootageRatePerFoot = 12.0

	panelUpgradeNoSlotsCost = 1800.0
	panelUpgradeAgedCost    = 1200.0
	panelCapacityThreshold  = 200.0

	nemaOutletCost = 150.0
	permitFee      = 235.0
)

func conduitMultiplier(t entities.ConduitType) float64 {
	switch t {
	case entities.ConduitConcealed:
		return 1.3
	case entities.ConduitUnderground:
		return 1.5
	default:
		return 1.0
	}
}

// ComputePrice maps an assessment, the resolved company config, and the
// project facts to an itemized breakdown. It is pure and deterministic.
//
// The subtotal covers materials, conduit (including the extra-distance
// surcharge), and labor only. Additional-service lines (panel upgrade, NEMA
// outlet, the extra-distance line) are added after markup but re-enter the
// taxable base; that asymmetry matches the established quote policy and is
// locked down by tests.
func ComputePrice(a entities.Assessment, cfg entities.CompanyConfig, project entities.Project) entities.PriceBreakdown {
	materials := materialsBaseCost

	laborHours := laborBaseHours
	switch a.ConduitType {
	case entities.ConduitUnderground:
		laborHours += laborUndergroundHours
	case entities.ConduitConcealed:
		laborHours += laborConcealedHours
	}

	multiplier := conduitMultiplier(a.ConduitType)
	conduit := conduitBaseCost * multiplier

	additionalServices := []entities.ServiceLine{}

	if a.Distance > cfg.IncludedFootage {
		extraFeet := a.Distance - cfg.IncludedFootage
		extraDistanceCost := extraFeet * (extraFootageRatePerFoot * multiplier)
		conduit += extraDistanceCost
		additionalServices = append(additionalServices, entities.ServiceLine{
			Name: fmt.Sprintf("Extra Wiring (%sft beyond included %sft)", formatFeet(extraFeet), formatFeet(cfg.IncludedFootage)),
			Cost: extraDistanceCost,
		})
	}

	// At most one panel upgrade fires; no available slots takes precedence.
	switch {
	case a.AvailableSlots == 0:
		laborHours += laborPanelUpgradeHours
		additionalServices = append(additionalServices, entities.ServiceLine{
			Name: "Electrical Panel Upgrade (No available slots)",
			Cost: panelUpgradeNoSlotsCost,
		})
	case a.PanelAge == entities.PanelAgeOld && a.PanelCapacity < panelCapacityThreshold:
		laborHours += laborPanelUpgradeHours
		additionalServices = append(additionalServices, entities.ServiceLine{
			Name: "Electrical Panel Upgrade (Panel age/capacity)",
			Cost: panelUpgradeAgedCost,
		})
	}

	if a.ChargerType == entities.ChargerNEMA {
		additionalServices = append(additionalServices, entities.ServiceLine{
			Name: "NEMA Outlet Installation",
			Cost: nemaOutletCost,
		})
	}

	labor := laborHours * a.LaborRate

	var permit float64
	if project.PermitRequired {
		permit = permitFee
	}

	selectedAddons := []entities.AddonLine{}
	var addonsCost float64
	for _, addon := range cfg.OptionalAddons {
		if slices.Contains(a.SelectedAddons, addon.Name) {
			selectedAddons = append(selectedAddons, entities.AddonLine{Name: addon.Name, Price: addon.Price})
			addonsCost += addon.Price
		}
	}

	var additionalServicesCost float64
	for _, s := range additionalServices {
		additionalServicesCost += s.Cost
	}

	subtotal := materials + conduit + labor
	markupAmount := subtotal * (a.Markup / 100)

	salesTaxRate := cfg.StateTaxRates[a.State]

	// Commercial properties: labor and permit are tax exempt.
	var taxableAmount float64
	if a.PropertyType == entities.PropertyTypeCommercial {
		taxableAmount = materials + additionalServicesCost + addonsCost
	} else {
		taxableAmount = subtotal + markupAmount + permit + addonsCost + additionalServicesCost
	}
	salesTax := taxableAmount * (salesTaxRate / 100)

	total := subtotal + markupAmount + permit + addonsCost + additionalServicesCost + salesTax

	return entities.PriceBreakdown{
		Materials:          materials,
		Labor:              labor,
		LaborHours:         laborHours,
		Conduit:            conduit,
		Permit:             permit,
		AdditionalServices: additionalServices,
		SelectedAddons:     selectedAddons,
		Subtotal:           subtotal,
		Markup:             a.Markup,
		MarkupAmount:       markupAmount,
		SalesTax:           salesTax,
		SalesTaxRate:       salesTaxRate,
		Total:              total,
	}
}

func formatFeet(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// MonthlyPayment computes a standard amortized payment, rounded half-up to
// the cent. A zero APR degenerates to straight division over the term.
func MonthlyPayment(principal, annualRate float64, months int) float64 {
	if months <= 0 {
		return 0
	}
	if annualRate == 0 {
		return roundCents(principal / float64(months))
	}

	monthlyRate := annualRate / 100 / 12
	growth := math.Pow(1+monthlyRate, float64(months))
	payment := principal * (monthlyRate * growth) / (growth - 1)
	return roundCents(payment)
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

var installLocationLabels = map[string]string{
	"garage-attached": "Attached Garage",
	"garage-detached": "Detached Garage",
	"driveway":        "Driveway",
	"carport":         "Carport",
	"exterior-wall":   "Exterior Wall",
}

// InstallLocationLabel maps a location code to its display label. Unknown
// codes pass through unchanged.
func InstallLocationLabel(location string) string {
	if label, ok := installLocationLabels[location]; ok {
		return label
	}
	return location
}

var conduitTypeLabels = map[entities.ConduitType]string{
	entities.ConduitSurface:     "Surface Mount",
	entities.ConduitConcealed:   "Concealed/In-Wall",
	entities.ConduitUnderground: "Underground",
}

// ConduitTypeLabel maps a conduit type to its display label. Unknown codes
// pass through unchanged.
func ConduitTypeLabel(t entities.ConduitType) string {
	if label, ok := conduitTypeLabels[t]; ok {
		return label
	}
	return string(t)
}

func ChargerTypeLabel(t entities.ChargerType) string {
	if t == entities.ChargerNEMA {
		return "NEMA Outlet (14-50)"
	}
	return "Hardwired Charger"
}
