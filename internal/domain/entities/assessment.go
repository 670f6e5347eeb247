package entities

type ConduitType string

const (
	ConduitSurface     ConduitType = "surface"
	ConduitConcealed   ConduitType = "concealed"
	ConduitUnderground ConduitType = "underground"
)

type ChargerType string

const (
	ChargerHardwired ChargerType = "hardwired"
	ChargerNEMA      ChargerType = "nema"
)

type PanelAge string

const (
	PanelAgeNew PanelAge = "new"
	PanelAgeOld PanelAge = "old"
)

// PropertyTypeCommercial triggers the commercial tax treatment; every other
// property type value is priced residentially.
const PropertyTypeCommercial = "commercial"

// Assessment is the contractor's input for one pricing run.
type Assessment struct {
	ProjectID       string      `json:"projectId"`
	Distance        float64     `json:"distance"`
	ConduitType     ConduitType `json:"conduitType"`
	ChargerType     ChargerType `json:"chargerType"`
	PanelType       string      `json:"panelType"`
	PanelCapacity   float64     `json:"panelCapacity"`
	AvailableSlots  int         `json:"availableSlots"`
	PanelAge        PanelAge    `json:"panelAge"`
	State           string      `json:"state"`
	InstallLocation string      `json:"installLocation"`
	LaborRate       float64     `json:"laborRate"`
	Markup          float64     `json:"markup"`
	PropertyType    string      `json:"propertyType"`
	SelectedAddons  []string    `json:"selectedAddons"`
}
