// Package httpapi exposes the gateway over HTTP with gin.
package httpapi

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/sandrosmarzaro/starwars-func-api/pkg/document"
	"github.com/sandrosmarzaro/starwars-func-api/pkg/metrics"
	"github.com/sandrosmarzaro/starwars-func-api/pkg/query"
)

// Resolver answers validated queries.
type Resolver interface {
	Resolve(ctx context.Context, q query.Query) (document.Document, error)
}

// Options configures the router.
type Options struct {
	Resolver Resolver

	// Keys guards /api/v1/swapi. Nil disables the check.
	Keys KeyChecker

	// GatewayURL is the public base URL used in the root listing.
	GatewayURL string

	Logger zerolog.Logger
}

// NewRouter builds the gin engine.
func NewRouter(opts Options) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(RequestID(), Logger(opts.Logger), gin.Recovery(), CORS())

	if err := r.SetTrustedProxies(nil); err != nil {
		opts.Logger.Warn().Err(err).Msg("Failed to set trusted proxies")
	}

	r.NoRoute(func(c *gin.Context) {
		respondError(c, http.StatusNotFound, ErrNameNotFound, http.StatusText(http.StatusNotFound))
	})
	r.NoMethod(func(c *gin.Context) {
		respondError(c, http.StatusMethodNotAllowed, ErrNameMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed))
	})

	r.GET("/health", health)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	h := &handlers{
		resolver:   opts.Resolver,
		gatewayURL: opts.GatewayURL,
		logger:     opts.Logger,
	}

	keys := opts.Keys
	if keys == nil {
		keys = StaticKey("")
	}

	v1 := r.Group("/api/v1")
	{
		v1.GET("/", h.root)
		v1.GET("/swapi", RequireAPIKey(keys), h.swapi)
	}

	return r
}
