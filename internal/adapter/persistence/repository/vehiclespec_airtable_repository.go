package repository

import (
	"context"

	"github.com/gems85/bolt-quotes-proxy/internal/domain/entities"
	"github.com/gems85/bolt-quotes-proxy/internal/infrastructure/airtable"
	"github.com/gems85/bolt-quotes-proxy/internal/usecase/interfaces"
)

// VehicleSpecAirtableRepository maps the EV charging specs table to a lookup
// keyed by the "Vehicle" column ("<make> <model>", case-sensitive).
type VehicleSpecAirtableRepository struct {
	client *airtable.Client
	table  string
}

var _ interfaces.IVehicleSpecRepository = (*VehicleSpecAirtableRepository)(nil)

func NewVehicleSpecAirtableRepository(client *airtable.Client, table string) *VehicleSpecAirtableRepository {
	return &VehicleSpecAirtableRepository{client: client, table: table}
}

func (r *VehicleSpecAirtableRepository) Resolve(ctx context.Context) (map[string]entities.VehicleSpec, error) {
	records, err := r.client.List(ctx, r.table, airtable.ListOptions{})
	if err != nil {
		return nil, err
	}

	specs := make(map[string]entities.VehicleSpec, len(records))
	for _, rec := range records {
		vehicle := stringField(rec.Fields, "Vehicle")
		if vehicle == "" {
			continue
		}
		specs[vehicle] = entities.VehicleSpec{
			RecommendedCharger: stringFieldOr(rec.Fields, "Recommended Charger", entities.DefaultChargerRecommendation),
			MaxChargingPower:   stringFieldOr(rec.Fields, "Max Charging Power", "N/A"),
			ChargingSpeed:      stringFieldOr(rec.Fields, "Charging Speed", "N/A"),
		}
	}
	return specs, nil
}
