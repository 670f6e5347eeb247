package request

import (
	"github.com/gems85/bolt-quotes-proxy/internal/domain/entities"
)

// AssessmentRequest is the contractor-submitted quote form.
//
// AvailableSlots is a pointer because zero is a meaningful value (it is the
// panel-upgrade trigger) and must be distinguishable from an omitted field.
type AssessmentRequest struct {
	ProjectID       string   `json:"projectId" binding:"required"`
	Distance        float64  `json:"distance" binding:"gte=0"`
	ConduitType     string   `json:"conduitType" binding:"required,oneof=surface concealed underground"`
	ChargerType     string   `json:"chargerType" binding:"required,oneof=hardwired nema"`
	PanelType       string   `json:"panelType"`
	PanelCapacity   float64  `json:"panelCapacity"`
	AvailableSlots  *int     `json:"availableSlots" binding:"required"`
	PanelAge        string   `json:"panelAge" binding:"required,oneof=new old"`
	State           string   `json:"state" binding:"required"`
	InstallLocation string   `json:"installLocation"`
	LaborRate       float64  `json:"laborRate" binding:"required,gt=0"`
	Markup          float64  `json:"markup" binding:"gte=0"`
	PropertyType    string   `json:"propertyType"`
	SelectedAddons  []string `json:"selectedAddons"`
}

func (r AssessmentRequest) ToAssessment() entities.Assessment {
	availableSlots := 0
	if r.AvailableSlots != nil {
		availableSlots = *r.AvailableSlots
	}
	return entities.Assessment{
		ProjectID:       r.ProjectID,
		Distance:        r.Distance,
		ConduitType:     entities.ConduitType(r.ConduitType),
		ChargerType:     entities.ChargerType(r.ChargerType),
		PanelType:       r.PanelType,
		PanelCapacity:   r.PanelCapacity,
		AvailableSlots:  availableSlots,
		PanelAge:        entities.PanelAge(r.PanelAge),
		State:           r.State,
		InstallLocation: r.InstallLocation,
		LaborRate:       r.LaborRate,
		Markup:          r.Markup,
		PropertyType:    r.PropertyType,
		SelectedAddons:  r.SelectedAddons,
	}
}
