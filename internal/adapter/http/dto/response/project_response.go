package response

import "github.com/gems85/bolt-quotes-proxy/internal/domain/entities"

// ProjectResponse is the intake record shown on the contractor dashboard.
type ProjectResponse struct {
	ID              string  `json:"id"`
	QuoteID         string  `json:"quoteId,omitempty"`
	CustomerName    string  `json:"customerName,omitempty"`
	CustomerEmail   string  `json:"customerEmail,omitempty"`
	CustomerPhone   string  `json:"customerPhone,omitempty"`
	CustomerAddress string  `json:"customerAddress,omitempty"`
	Status          string  `json:"status,omitempty"`
	EVMake          string  `json:"evMake,omitempty"`
	EVModel         string  `json:"evModel,omitempty"`
	InstallLocation string  `json:"installLocation,omitempty"`
	PermitRequired  bool    `json:"permitRequired"`
	PanelType       string  `json:"panelType,omitempty"`
	PanelCapacity   float64 `json:"panelCapacity,omitempty"`
	AvailableSlots  int     `json:"availableSlots"`
	PanelAge        string  `json:"panelAge,omitempty"`
}

func FromProject(p entities.Project) ProjectResponse {
	return ProjectResponse{
		ID:              p.ID,
		QuoteID:         p.QuoteID,
		CustomerName:    p.CustomerName,
		CustomerEmail:   p.CustomerEmail,
		CustomerPhone:   p.CustomerPhone,
		CustomerAddress: p.CustomerAddress,
		Status:          string(p.Status),
		EVMake:          p.EVMake,
		EVModel:         p.EVModel,
		InstallLocation: p.InstallLocation,
		PermitRequired:  p.PermitRequired,
		PanelType:       p.PanelType,
		PanelCapacity:   p.PanelCapacity,
		AvailableSlots:  p.AvailableSlots,
		PanelAge:        p.PanelAge,
	}
}

func FromProjects(projects []entities.Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, FromProject(p))
	}
	return out
}
