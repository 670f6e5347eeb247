package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gems85/bolt-quotes-proxy/internal/adapter/http/dto/request"
	"github.com/gems85/bolt-quotes-proxy/internal/adapter/http/dto/response"
	"github.com/gems85/bolt-quotes-proxy/internal/usecase"
	"github.com/gems85/bolt-quotes-proxy/pkg"
)

var errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)

// QuoteHandler handles HTTP requests for quote generation and lifecycle.
type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// GenerateQuote prices an assessment and persists a new quote version.
func (h *QuoteHandler) GenerateQuote(c *gin.Context) {
	var payload request.AssessmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	quote, err := h.usecase.GenerateQuote(c.Request.Context(), payload.ToAssessment())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuote(quote))
}

// GetOrCreateQuoteID returns the stable quote id for a project, minting and
// persisting one on first use.
func (h *QuoteHandler) GetOrCreateQuoteID(c *gin.Context) {
	projectID := c.Query("projectId")
	if projectID == "" {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "projectId query parameter is required", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	result, err := h.usecase.GetOrCreateQuoteID(c.Request.Context(), projectID)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuoteIDResult(result))
}

// ListQuotes returns the latest version of every quote, optionally filtered
// by status via ?status=.
func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	quotes, err := h.usecase.ListQuotes(c.Request.Context(), c.Query("status"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuoteVersions(quotes))
}

// GetCurrentQuote returns the highest-version document for a quote id.
func (h *QuoteHandler) GetCurrentQuote(c *gin.Context) {
	quote, err := h.usecase.GetCurrentQuote(c.Request.Context(), c.Param("quoteId"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// ListVersions returns the full revision history for a quote id.
func (h *QuoteHandler) ListVersions(c *gin.Context) {
	versions, err := h.usecase.ListVersions(c.Request.Context(), c.Param("quoteId"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuoteVersions(versions))
}

// SendQuote mints a shareable link and marks the quote as sent.
func (h *QuoteHandler) SendQuote(c *gin.Context) {
	var payload request.SendQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	result, err := h.usecase.SendQuote(c.Request.Context(), payload.QuoteID, payload.ProjectID)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSendResult(result))
}

// ViewSharedQuote serves the customer-facing read-only view by token.
func (h *QuoteHandler) ViewSharedQuote(c *gin.Context) {
	quote, err := h.usecase.ViewQuoteByToken(c.Request.Context(), c.Param("token"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// SubmitDecision records the customer's accept/reject choice.
func (h *QuoteHandler) SubmitDecision(c *gin.Context) {
	var payload request.CustomerDecisionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	status, err := h.usecase.SubmitDecision(c.Request.Context(), payload.ToDecision())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.DecisionResponse{Status: string(status)})
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAssessment),
		errors.Is(err, usecase.ErrInvalidProjectID),
		errors.Is(err, usecase.ErrInvalidQuoteID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotFound), errors.Is(err, usecase.ErrLinkNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrMalformedQuote):
		return pkg.NewDomainError("MALFORMED_QUOTE_DATA", "Stored quote data could not be read", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
