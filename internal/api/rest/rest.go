package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/veilart/market-ledger/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Listing a collectible requires the lister's identity
		v1.POST("/collectibles", middleware.Auth(authCfg), handler.ListCollectible)

		// Collectible endpoints (public read access)
		v1.GET("/collectibles/:id", handler.GetCollectible)
		v1.GET("/collectibles/:id/provenance", handler.GetCollectibleProvenance)
		v1.GET("/collectibles/:id/requests", handler.GetCollectibleRequests)

		// Confidential fields are gated on a vault grant for the caller
		v1.GET("/collectibles/:id/metadata", middleware.Auth(authCfg), handler.GetCollectibleMetadata)

		// Ownership views (public read access)
		v1.GET("/owners/:address/collectibles", handler.GetOwnerCollectibles)
		v1.GET("/owners/:address/requests/pending", handler.GetOwnerPendingRequests)
		v1.GET("/buyers/:address/requests", handler.GetBuyerRequests)

		// Purchase negotiation (requires authentication)
		v1.POST("/requests", middleware.Auth(authCfg), handler.RequestPurchase)
		v1.POST("/requests/:id/approve", middleware.Auth(authCfg), handler.ApprovePurchase)
		v1.POST("/requests/:id/reject", middleware.Auth(authCfg), handler.RejectPurchase)

		// Purchase request lookup (public read access)
		v1.GET("/requests/:id", handler.GetPurchaseRequest)

		// Account endpoints; deposits are reserved for operators
		v1.POST("/accounts/deposit", middleware.APIKeyAuth(authCfg), handler.Deposit)
		v1.GET("/accounts/:address", handler.GetAccount)
	}
}
