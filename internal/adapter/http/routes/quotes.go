package routes

import (
	"github.com/geovanereis/website-gsreistecnologia/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuoteRequests = "/quote-requests"
)

func addQuoteRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteRequestHandler) {
	quotes := rg.Group(PathQuoteRequests)
	{
		quotes.POST("", quoteHandler.CreateQuoteRequest)
	}

	// Admin endpoints - protected (would require authentication in production)
	// Disabled for security in MVP
	/*
		admin := rg.Group("/admin")
		{
			admin.GET(PathQuoteRequests, quoteHandler.ListQuoteRequests)
		}
	*/
}
