package request

import "github.com/gems85/bolt-quotes-proxy/internal/usecase"

// SendQuoteRequest asks for a shareable link to be minted for a quote.
type SendQuoteRequest struct {
	QuoteID   string `json:"quoteId" binding:"required"`
	ProjectID string `json:"projectId" binding:"required"`
}

// CustomerDecisionRequest is the accept/reject payload from the customer
// quote view.
type CustomerDecisionRequest struct {
	QuoteID   string `json:"quoteId" binding:"required"`
	ProjectID string `json:"projectId" binding:"required"`
	Decision  string `json:"decision" binding:"required,oneof=accept reject"`
	Reason    string `json:"reason"`
}

func (r CustomerDecisionRequest) ToDecision() usecase.Decision {
	return usecase.Decision{
		QuoteID:   r.QuoteID,
		ProjectID: r.ProjectID,
		Accept:    r.Decision == "accept",
		Reason:    r.Reason,
	}
}

// ProjectStatusRequest updates a project's status directly.
type ProjectStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
