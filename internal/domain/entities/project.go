package entities

// ProjectStatus mirrors the "Project Status" column on the Projects table.
//
// The quote lifecycle drives the tail of this vocabulary:
// Quote Draft -> Quote Sent -> Quote Viewed -> Accepted | Rejected.
type ProjectStatus string

const (
	ProjectStatusNewLead     ProjectStatus = "New Lead"
	ProjectStatusQuoteDraft  ProjectStatus = "Quote Draft"
	ProjectStatusQuoteSent   ProjectStatus = "Quote Sent"
	ProjectStatusQuoteViewed ProjectStatus = "Quote Viewed"
	ProjectStatusAccepted    ProjectStatus = "Accepted"
	ProjectStatusRejected    ProjectStatus = "Rejected"
)

// Project is a customer installation job record, owned by the external store.
// The quote service only ever mutates Status and QuoteID.
type Project struct {
	ID              string        `json:"id"`
	QuoteID         string        `json:"quoteId,omitempty"`
	CustomerName    string        `json:"customerName,omitempty"`
	CustomerEmail   string        `json:"customerEmail,omitempty"`
	CustomerPhone   string        `json:"customerPhone,omitempty"`
	CustomerAddress string        `json:"customerAddress,omitempty"`
	Status          ProjectStatus `json:"status,omitempty"`
	EVMake          string        `json:"evMake,omitempty"`
	EVModel         string        `json:"evModel,omitempty"`
	InstallLocation string        `json:"installLocation,omitempty"`
	PermitRequired  bool          `json:"permitRequired"`
	PanelType       string        `json:"panelType,omitempty"`
	PanelCapacity   float64       `json:"panelCapacity,omitempty"`
	AvailableSlots  int           `json:"availableSlots"`
	PanelAge        string        `json:"panelAge,omitempty"`
}

// PhotoFile is one attachment on a photo record.
type PhotoFile struct {
	URL          string `json:"url"`
	Filename     string `json:"filename,omitempty"`
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`
}

// Photo is a site photo linked to a project. Upload handling lives outside
// this service; photos are read-only enrichment for the quote view.
type Photo struct {
	ID        string      `json:"id"`
	PhotoType string      `json:"photoType,omitempty"`
	Files     []PhotoFile `json:"files,omitempty"`
}
