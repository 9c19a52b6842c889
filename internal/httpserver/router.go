package httpserver

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// buildRouter wires public site routes and the token-guarded admin API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps, corsOrigins []string) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	corsCfg := cors.DefaultConfig()
	if len(corsOrigins) == 1 && corsOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = corsOrigins
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	router.Use(cors.New(corsCfg))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	api := router.Group("/api")
	{
		api.POST("/auth/login", loginHandler(deps.AuthSvc))

		api.GET("/products", listProductsHandler(deps.CatalogSvc))
		api.GET("/products/:id", getProductHandler(deps.CatalogSvc))
		api.GET("/reviews", listReviewsHandler(deps.ReviewSvc))
		api.POST("/contact", submitContactHandler(deps.ContactSvc))
		api.GET("/content", listContentHandler(deps.ContentSvc))
		api.GET("/content/:section", getContentHandler(deps.ContentSvc))
		api.GET("/images", listImagesHandler(deps.ContentSvc))
	}

	admin := api.Group("/admin", requireAuth(deps.AuthSvc))
	{
		admin.POST("/auth/logout", logoutHandler(deps.AuthSvc))

		admin.GET("/pos/inventory", posInventoryHandler(deps.CatalogSvc))
		admin.POST("/pos/checkout", checkoutHandler(deps.CheckoutSvc))

		admin.POST("/products", createProductHandler(deps.CatalogSvc))
		admin.PUT("/products/:id", updateProductHandler(deps.CatalogSvc))
		admin.DELETE("/products/:id", deleteProductHandler(deps.CatalogSvc))

		admin.GET("/inventory", listInventoryHandler(deps.CatalogSvc))
		admin.PUT("/inventory/:productId", upsertInventoryHandler(deps.CatalogSvc))
		admin.DELETE("/inventory/:productId", deleteInventoryHandler(deps.CatalogSvc))

		admin.GET("/sales", salesHistoryHandler(deps.SalesSvc))
		admin.GET("/sales/summary", salesSummaryHandler(deps.SalesSvc))
		admin.GET("/sales/:id", getSaleHandler(deps.SalesSvc))

		admin.POST("/reviews", createReviewHandler(deps.ReviewSvc))
		admin.PUT("/reviews/:id", updateReviewHandler(deps.ReviewSvc))
		admin.DELETE("/reviews/:id", deleteReviewHandler(deps.ReviewSvc))

		admin.GET("/messages", listMessagesHandler(deps.ContactSvc))
		admin.PATCH("/messages/:id/read", setMessageReadHandler(deps.ContactSvc))
		admin.DELETE("/messages/:id", deleteMessageHandler(deps.ContactSvc))

		admin.PUT("/content/:section", upsertContentHandler(deps.ContentSvc))
		admin.POST("/images", addImageHandler(deps.ContentSvc))
		admin.DELETE("/images/:id", deleteImageHandler(deps.ContentSvc))
	}

	return router
}
