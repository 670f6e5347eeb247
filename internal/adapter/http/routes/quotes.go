package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/gems85/bolt-quotes-proxy/internal/adapter/http/handlers"
)

const (
	PathQuotes = "/quotes"
)

func addQuoteRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.GET("", quoteHandler.ListQuotes)
		quotes.POST("", quoteHandler.GenerateQuote)

		// Static segments registered before the :quoteId wildcard.
		quotes.GET("/id", quoteHandler.GetOrCreateQuoteID)
		quotes.POST("/send", quoteHandler.SendQuote)
		quotes.POST("/decision", quoteHandler.SubmitDecision)
		quotes.GET("/share/:token", quoteHandler.ViewSharedQuote)

		quotes.GET("/:quoteId", quoteHandler.GetCurrentQuote)
		quotes.GET("/:quoteId/versions", quoteHandler.ListVersions)
	}
}
