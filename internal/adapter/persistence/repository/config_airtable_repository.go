package repository

import (
	"context"

	"github.com/gems85/bolt-quotes-proxy/internal/domain/entities"
	"github.com/gems85/bolt-quotes-proxy/internal/infrastructure/airtable"
	"github.com/gems85/bolt-quotes-proxy/internal/usecase/interfaces"
)

// ConfigAirtableRepository resolves the singleton CompanyConfig row.
//
// Normalization rules:
//   - no row at all -> the documented default config
//   - missing/non-numeric scalar cell -> its documented default
//   - unparseable JSON catalog cell -> empty catalog, never an error
type ConfigAirtableRepository struct {
	client *airtable.Client
	table  string
}

var _ interfaces.IConfigRepository = (*ConfigAirtableRepository)(nil)

func NewConfigAirtableRepository(client *airtable.Client, table string) *ConfigAirtableRepository {
	return &ConfigAirtableRepository{client: client, table: table}
}

func (r *ConfigAirtableRepository) Resolve(ctx context.Context) (entities.CompanyConfig, error) {
	records, err := r.client.List(ctx, r.table, airtable.ListOptions{MaxRecords: 1})
	if err != nil {
		return entities.CompanyConfig{}, err
	}
	if len(records) == 0 {
		return entities.DefaultCompanyConfig(), nil
	}

	f := records[0].Fields
	cfg := entities.CompanyConfig{
		CompanyName:     stringFieldOr(f, "Company Name", "EV Charge Pro"),
		IncludedFootage: numberFieldOr(f, "Included Footage", 20),
		LaborRate:       numberFieldOr(f, "Labor Rate", 95),
		DefaultMarkup:   numberFieldOr(f, "Default Markup", 20),
		OptionalAddons:  []entities.AddOn{},
		Rebates:         []entities.Rebate{},
		FinancingPlans:  []entities.FinancingPlan{},
		StateTaxRates:   map[string]float64{},
	}
	decodeJSONField(f, "Optional Addons", &cfg.OptionalAddons)
	decodeJSONField(f, "Rebates", &cfg.Rebates)
	decodeJSONField(f, "Financing Plans", &cfg.FinancingPlans)
	decodeJSONField(f, "State Tax Rates", &cfg.StateTaxRates)
	return cfg, nil
}
