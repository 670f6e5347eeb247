package response

import (
	"time"

	"github.com/gems85/bolt-quotes-proxy/internal/domain/entities"
	"github.com/gems85/bolt-quotes-proxy/internal/usecase"
)

// QuoteResponse is the full quote document returned to the dashboard and
// the customer view. The nested shapes reuse the entity types; their JSON
// tags are the public contract.
type QuoteResponse struct {
	QuoteID          string                     `json:"quoteId"`
	ProjectID        string                     `json:"projectId"`
	Date             string                     `json:"date"`
	ValidUntil       string                     `json:"validUntil"`
	Customer         entities.Customer          `json:"customer"`
	Vehicle          *entities.Vehicle          `json:"vehicle,omitempty"`
	Installation     entities.Installation      `json:"installation"`
	Pricing          entities.PriceBreakdown    `json:"pricing"`
	Rebates          []entities.Rebate          `json:"rebates,omitempty"`
	FinancingOptions []entities.FinancingOption `json:"financingOptions,omitempty"`
	Status           string                     `json:"status"`
	ShareableLink    string                     `json:"shareableLink,omitempty"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		QuoteID:          q.QuoteID,
		ProjectID:        q.ProjectID,
		Date:             q.Date,
		ValidUntil:       q.ValidUntil,
		Customer:         q.Customer,
		Vehicle:          q.Vehicle,
		Installation:     q.Installation,
		Pricing:          q.Pricing,
		Rebates:          q.Rebates,
		FinancingOptions: q.FinancingOptions,
		Status:           string(q.Status),
		ShareableLink:    q.ShareableLink,
	}
}

// QuoteVersionResponse is one row of the version history or the quotes
// dashboard. QuoteData is nil when the stored payload was malformed.
type QuoteVersionResponse struct {
	ID            string          `json:"id"`
	QuoteID       string          `json:"quoteId"`
	ProjectID     string          `json:"projectId"`
	CustomerName  string          `json:"customerName"`
	CustomerEmail string          `json:"customerEmail"`
	TotalAmount   float64         `json:"totalAmount"`
	QuoteData     *entities.Quote `json:"quoteData"`
	Status        string          `json:"status"`
	DateCreated   time.Time       `json:"dateCreated"`
	Version       int             `json:"version"`
	ModifiedBy    string          `json:"modifiedBy"`
}

func FromQuoteVersion(v entities.QuoteVersion) QuoteVersionResponse {
	return QuoteVersionResponse{
		ID:            v.RecordID,
		QuoteID:       v.QuoteID,
		ProjectID:     v.ProjectID,
		CustomerName:  v.CustomerName,
		CustomerEmail: v.CustomerEmail,
		TotalAmount:   v.TotalAmount,
		QuoteData:     v.Quote,
		Status:        string(v.Status),
		DateCreated:   v.DateCreated,
		Version:       v.Version,
		ModifiedBy:    v.ModifiedBy,
	}
}

func FromQuoteVersions(versions []entities.QuoteVersion) []QuoteVersionResponse {
	out := make([]QuoteVersionResponse, 0, len(versions))
	for _, v := range versions {
		out = append(out, FromQuoteVersion(v))
	}
	return out
}

// QuoteIDResponse reports the stable quote id for a project.
type QuoteIDResponse struct {
	QuoteID string `json:"quoteId"`
	Created bool   `json:"created"`
}

func FromQuoteIDResult(r usecase.QuoteIDResult) QuoteIDResponse {
	return QuoteIDResponse{QuoteID: r.QuoteID, Created: r.Created}
}

// SendQuoteResponse carries the minted shareable link.
type SendQuoteResponse struct {
	Token         string `json:"token"`
	ShareableLink string `json:"shareableLink"`
}

func FromSendResult(r usecase.SendResult) SendQuoteResponse {
	return SendQuoteResponse{Token: r.Token, ShareableLink: r.ShareableLink}
}

// DecisionResponse echoes the status resulting from a customer decision.
type DecisionResponse struct {
	Status string `json:"status"`
}
