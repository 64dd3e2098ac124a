package httpserver

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"coffeesaf/internal/cart"
	"coffeesaf/internal/loyalty"
	checkoutsvc "coffeesaf/internal/service/checkout"
)

// Deps are the collaborators the routes need.
type Deps struct {
	CatalogSvc  catalogService
	Cart        *cart.Store
	Loyalty     *loyalty.Tracker
	CheckoutSvc *checkoutsvc.Service
}

// buildRouter wires routes for the storefront API. The mobile client calls
// from another origin, so CORS is open.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery(), cors.Default())

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	api := router.Group("/api")
	{
		api.GET("/coffee", listCoffeeHandler(deps.CatalogSvc))
		api.GET("/coffee/:id", getCoffeeHandler(deps.CatalogSvc))
		api.GET("/categories", listCategoriesHandler(deps.CatalogSvc))

		api.GET("/cart", getCartHandler(deps.Cart))
		api.GET("/cart/events", cartEventsHandler(deps.Cart))
		api.POST("/cart/items", addCartItemHandler(deps.Cart, deps.CatalogSvc))
		api.POST("/cart/items/remove", removeCartItemHandler(deps.Cart, deps.CatalogSvc))
		api.POST("/cart/clear", clearCartHandler(deps.Cart))

		api.GET("/loyalty", loyaltyHandler(deps.Loyalty))

		api.GET("/verification", verificationStateHandler(deps.CheckoutSvc))
		api.POST("/verification", beginVerificationHandler(deps.CheckoutSvc))
		api.PUT("/verification/phone", submitPhoneHandler(deps.CheckoutSvc))
		api.PUT("/verification/code", submitCodeHandler(deps.CheckoutSvc))
		api.DELETE("/verification", cancelVerificationHandler(deps.CheckoutSvc))

		api.POST("/orders", submitOrderHandler(deps.CheckoutSvc))
	}

	return router
}
