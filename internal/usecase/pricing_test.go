package usecase

import (
	"math"
	"testing"

	"github.com/gems85/bolt-quotes-proxy/internal/domain/entities"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func baseAssessment() entities.Assessment {
	return entities.Assessment{
		ProjectID:      "rec123",
		Distance:       10,
		ConduitType:    entities.ConduitSurface,
		ChargerType:    entities.ChargerHardwired,
		PanelCapacity:  200,
		AvailableSlots: 4,
		PanelAge:       entities.PanelAgeNew,
		State:          "GA",
		LaborRate:      100,
		Markup:         20,
		PropertyType:   "residential",
	}
}

func TestComputePrice(t *testing.T) {
	cfg := entities.DefaultCompanyConfig()

	t.Run("baseline residential", func(t *testing.T) {
		breakdown := ComputePrice(baseAssessment(), cfg, entities.Project{})

		if !almostEqual(breakdown.Materials, 650) {
			t.Fatalf("materials = %v, want 650", breakdown.Materials)
		}
		if !almostEqual(breakdown.LaborHours, 6) {
			t.Fatalf("labor hours = %v, want 6", breakdown.LaborHours)
		}
		if !almostEqual(breakdown.Labor, 600) {
			t.Fatalf("labor = %v, want 600", breakdown.Labor)
		}
		if !almostEqual(breakdown.Conduit, 250) {
			t.Fatalf("conduit = %v, want 250", breakdown.Conduit)
		}
		if !almostEqual(breakdown.Subtotal, 1500) {
			t.Fatalf("subtotal = %v, want 1500", breakdown.Subtotal)
		}
		if !almostEqual(breakdown.MarkupAmount, 300) {
			t.Fatalf("markup amount = %v, want 300", breakdown.MarkupAmount)
		}
		if !almostEqual(breakdown.SalesTaxRate, 4) {
			t.Fatalf("sales tax rate = %v, want 4", breakdown.SalesTaxRate)
		}
		if !almostEqual(breakdown.SalesTax, 72) {
			t.Fatalf("sales tax = %v, want 72", breakdown.SalesTax)
		}
		if !almostEqual(breakdown.Total, 1872) {
			t.Fatalf("total = %v, want 1872", breakdown.Total)
		}
		if len(breakdown.AdditionalServices) != 0 {
			t.Fatalf("expected no additional services, got %+v", breakdown.AdditionalServices)
		}
		if breakdown.AdditionalServices == nil || breakdown.SelectedAddons == nil {
			t.Fatalf("expected empty slices, not nil")
		}
	})

	t.Run("extra distance surcharge", func(t *testing.T) {
		a := baseAssessment()
		a.Distance = 35

		breakdown := ComputePrice(a, cfg, entities.Project{})

		if !almostEqual(breakdown.Conduit, 430) {
			t.Fatalf("conduit = %v, want 430", breakdown.Conduit)
		}
		if len(breakdown.AdditionalServices) != 1 {
			t.Fatalf("expected one additional service, got %+v", breakdown.AdditionalServices)
		}
		line := breakdown.AdditionalServices[0]
		if line.Name != "Extra Wiring (15ft beyond included 20ft)" {
			t.Fatalf("unexpected line name %q", line.Name)
		}
		if !almostEqual(line.Cost, 180) {
			t.Fatalf("line cost = %v, want 180", line.Cost)
		}
	})

	t.Run("extra distance uses conduit multiplier", func(t *testing.T) {
		a := baseAssessment()
		a.Distance = 30
		a.ConduitType = entities.ConduitUnderground

		breakdown := ComputePrice(a, cfg, entities.Project{})

		// 250*1.5 plus 10 extra feet at 12*1.5.
		if !almostEqual(breakdown.Conduit, 375+180) {
			t.Fatalf("conduit = %v, want 555", breakdown.Conduit)
		}
		if !almostEqual(breakdown.LaborHours, 10) {
			t.Fatalf("labor hours = %v, want 10", breakdown.LaborHours)
		}
	})

	t.Run("concealed conduit", func(t *testing.T) {
		a := baseAssessment()
		a.ConduitType = entities.ConduitConcealed

		breakdown := ComputePrice(a, cfg, entities.Project{})

		if !almostEqual(breakdown.Conduit, 325) {
			t.Fatalf("conduit = %v, want 325", breakdown.Conduit)
		}
		if !almostEqual(breakdown.LaborHours, 8) {
			t.Fatalf("labor hours = %v, want 8", breakdown.LaborHours)
		}
	})

	t.Run("panel upgrade no slots wins over age", func(t *testing.T) {
		a := baseAssessment()
		a.AvailableSlots = 0
		a.PanelAge = entities.PanelAgeOld
		a.PanelCapacity = 150

		breakdown := ComputePrice(a, cfg, entities.Project{})

		if len(breakdown.AdditionalServices) != 1 {
			t.Fatalf("expected exactly one upgrade line, got %+v", breakdown.AdditionalServices)
		}
		line := breakdown.AdditionalServices[0]
		if line.Name != "Electrical Panel Upgrade (No available slots)" {
			t.Fatalf("unexpected line name %q", line.Name)
		}
		if !almostEqual(line.Cost, 1800) {
			t.Fatalf("line cost = %v, want 1800", line.Cost)
		}
		if !almostEqual(breakdown.LaborHours, 14) {
			t.Fatalf("labor hours = %v, want 14", breakdown.LaborHours)
		}
	})

	t.Run("panel upgrade by age and capacity", func(t *testing.T) {
		a := baseAssessment()
		a.PanelAge = entities.PanelAgeOld
		a.PanelCapacity = 150

		breakdown := ComputePrice(a, cfg, entities.Project{})

		if len(breakdown.AdditionalServices) != 1 {
			t.Fatalf("expected one upgrade line, got %+v", breakdown.AdditionalServices)
		}
		line := breakdown.AdditionalServices[0]
		if line.Name != "Electrical Panel Upgrade (Panel age/capacity)" {
			t.Fatalf("unexpected line name %q", line.Name)
		}
		if !almostEqual(line.Cost, 1200) {
			t.Fatalf("line cost = %v, want 1200", line.Cost)
		}
	})

	t.Run("old panel with enough capacity is not upgraded", func(t *testing.T) {
		a := baseAssessment()
		a.PanelAge = entities.PanelAgeOld
		a.PanelCapacity = 200

		breakdown := ComputePrice(a, cfg, entities.Project{})

		if len(breakdown.AdditionalServices) != 0 {
			t.Fatalf("expected no upgrade, got %+v", breakdown.AdditionalServices)
		}
	})

	t.Run("nema outlet adds cost without labor hours", func(t *testing.T) {
		a := baseAssessment()
		a.ChargerType = entities.ChargerNEMA

		breakdown := ComputePrice(a, cfg, entities.Project{})

		if len(breakdown.AdditionalServices) != 1 {
			t.Fatalf("expected one line, got %+v", breakdown.AdditionalServices)
		}
		line := breakdown.AdditionalServices[0]
		if line.Name != "NEMA Outlet Installation" || !almostEqual(line.Cost, 150) {
			t.Fatalf("unexpected line %+v", line)
		}
		if !almostEqual(breakdown.LaborHours, 6) {
			t.Fatalf("labor hours = %v, want 6", breakdown.LaborHours)
		}
	})

	t.Run("permit fee follows the project flag", func(t *testing.T) {
		breakdown := ComputePrice(baseAssessment(), cfg, entities.Project{PermitRequired: true})

		if !almostEqual(breakdown.Permit, 235) {
			t.Fatalf("permit = %v, want 235", breakdown.Permit)
		}
		// 1500 + 300 + 235 taxed at 4%, plus the permit itself.
		if !almostEqual(breakdown.SalesTax, 2035*0.04) {
			t.Fatalf("sales tax = %v, want %v", breakdown.SalesTax, 2035*0.04)
		}
		if !almostEqual(breakdown.Total, 1500+300+235+2035*0.04) {
			t.Fatalf("total = %v", breakdown.Total)
		}
	})

	t.Run("selected addons filter against the catalog", func(t *testing.T) {
		withAddons := cfg
		withAddons.OptionalAddons = []entities.AddOn{
			{Name: "Surge Protector", Price: 300},
			{Name: "Load Manager", Price: 450},
		}
		a := baseAssessment()
		a.SelectedAddons = []string{"Surge Protector", "Not In Catalog"}

		breakdown := ComputePrice(a, withAddons, entities.Project{})

		if len(breakdown.SelectedAddons) != 1 {
			t.Fatalf("expected one addon, got %+v", breakdown.SelectedAddons)
		}
		if breakdown.SelectedAddons[0].Name != "Surge Protector" || !almostEqual(breakdown.SelectedAddons[0].Price, 300) {
			t.Fatalf("unexpected addon %+v", breakdown.SelectedAddons[0])
		}
		if !almostEqual(breakdown.Total, 1500+300+300+(1500+300+300)*0.04) {
			t.Fatalf("total = %v", breakdown.Total)
		}
	})

	t.Run("commercial tax base excludes labor and permit", func(t *testing.T) {
		a := baseAssessment()
		a.PropertyType = entities.PropertyTypeCommercial
		a.ChargerType = entities.ChargerNEMA

		breakdown := ComputePrice(a, cfg, entities.Project{PermitRequired: true})

		// Materials plus the NEMA line only.
		if !almostEqual(breakdown.SalesTax, (650+150)*0.04) {
			t.Fatalf("sales tax = %v, want %v", breakdown.SalesTax, 800*0.04)
		}
	})

	t.Run("unknown state has zero tax", func(t *testing.T) {
		a := baseAssessment()
		a.State = "ZZ"

		breakdown := ComputePrice(a, cfg, entities.Project{})

		if !almostEqual(breakdown.SalesTaxRate, 0) || !almostEqual(breakdown.SalesTax, 0) {
			t.Fatalf("expected zero tax, got rate %v tax %v", breakdown.SalesTaxRate, breakdown.SalesTax)
		}
	})
}

func TestMonthlyPayment(t *testing.T) {
	t.Run("zero apr divides evenly and rounds", func(t *testing.T) {
		if got := MonthlyPayment(10000, 0, 12); !almostEqual(got, 833.33) {
			t.Fatalf("payment = %v, want 833.33", got)
		}
	})

	t.Run("amortized payment", func(t *testing.T) {
		if got := MonthlyPayment(10000, 6, 12); !almostEqual(got, 860.66) {
			t.Fatalf("payment = %v, want 860.66", got)
		}
	})

	t.Run("non-positive term", func(t *testing.T) {
		if got := MonthlyPayment(10000, 6, 0); got != 0 {
			t.Fatalf("payment = %v, want 0", got)
		}
	})
}

func TestLabels(t *testing.T) {
	t.Run("install location", func(t *testing.T) {
		if got := InstallLocationLabel("garage-attached"); got != "Attached Garage" {
			t.Fatalf("got %q", got)
		}
		if got := InstallLocationLabel("rooftop"); got != "rooftop" {
			t.Fatalf("unknown code should pass through, got %q", got)
		}
	})

	t.Run("conduit type", func(t *testing.T) {
		if got := ConduitTypeLabel(entities.ConduitConcealed); got != "Concealed/In-Wall" {
			t.Fatalf("got %q", got)
		}
		if got := ConduitTypeLabel(entities.ConduitType("trench")); got != "trench" {
			t.Fatalf("unknown code should pass through, got %q", got)
		}
	})

	t.Run("charger type", func(t *testing.T) {
		if got := ChargerTypeLabel(entities.ChargerNEMA); got != "NEMA Outlet (14-50)" {
			t.Fatalf("got %q", got)
		}
		if got := ChargerTypeLabel(entities.ChargerHardwired); got != "Hardwired Charger" {
			t.Fatalf("got %q", got)
		}
	})
}
