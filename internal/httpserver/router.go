package httpserver

import (
	"errors"
	"io"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"autoparts-storefront/internal/state/kv"
	"autoparts-storefront/internal/storefront/account"
	"autoparts-storefront/internal/storefront/catalog"
	"autoparts-storefront/internal/storefront/checkout"
)

// Deps are the storefront services and session settings the API is built from.
type Deps struct {
	Sessions kv.Store
	Catalog  *catalog.Service
	Checkout *checkout.Service
	Account  *account.Service

	CORSOrigins    []string
	SessionTTL     time.Duration
	CookieSecure   bool
	SearchDebounce time.Duration
}

func (d Deps) validate() error {
	switch {
	case d.Sessions == nil:
		return errors.New("httpserver: session store is required")
	case d.Catalog == nil:
		return errors.New("httpserver: catalog service is required")
	case d.Checkout == nil:
		return errors.New("httpserver: checkout service is required")
	case d.Account == nil:
		return errors.New("httpserver: account service is required")
	}
	return nil
}

type handlers struct {
	deps   Deps
	logger *log.Logger
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps) (*gin.Engine, error) {
	if err := deps.validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	if deps.SessionTTL <= 0 {
		deps.SessionTTL = 30 * 24 * time.Hour
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.New(corsConfig(deps.CORSOrigins)))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	h := &handlers{deps: deps, logger: logger}
	api := router.Group("/api", sessionMiddleware(deps.Sessions, deps.SessionTTL, deps.CookieSecure, logger))

	api.GET("/lang", h.getLang)
	api.PUT("/lang", h.setLang)
	api.POST("/lang/toggle", h.toggleLang)
	api.GET("/i18n", h.strings)

	api.GET("/home", h.home)
	api.GET("/categories", h.categories)
	api.GET("/catalog", h.catalog)
	api.GET("/catalog/live", h.liveSearch)
	api.GET("/parts/:oem", h.part)
	api.GET("/fitment/brands", h.brands)
	api.GET("/fitment/brands/:brandId/models", h.models)
	api.GET("/fitment/models/:modelId/years", h.years)

	api.GET("/cart", h.getCart)
	api.POST("/cart/items", h.addCartItem)
	api.PATCH("/cart/items/:productId", h.updateCartItem)
	api.DELETE("/cart/items/:productId", h.removeCartItem)
	api.DELETE("/cart", h.clearCart)

	api.GET("/checkout", h.checkoutSummary)
	api.POST("/checkout", h.submitCheckout)
	api.GET("/order-success", h.orderSuccess)

	api.POST("/auth/login", h.login)
	api.POST("/auth/signup", h.signup)
	api.POST("/auth/logout", h.logout)
	api.GET("/auth/session", h.authSession)
	api.GET("/profile", h.profile)
	api.PUT("/profile", h.updateProfile)
	api.POST("/profile/addresses", h.addAddress)
	api.DELETE("/profile/addresses/:id", h.removeAddress)
	api.PUT("/profile/addresses/:id/default", h.setDefaultAddress)
	api.GET("/orders/:id", h.order)

	return router, nil
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
		cfg.AllowCredentials = true
	}
	cfg.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	cfg.MaxAge = 12 * time.Hour
	return cfg
}
