// Package server assembles the HTTP surface: middleware stack, routes and
// the listener lifecycle.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/PotionGacha_Go/internal/database"
	"github.com/osse101/PotionGacha_Go/internal/domain"
	"github.com/osse101/PotionGacha_Go/internal/handler"
	"github.com/osse101/PotionGacha_Go/internal/inventory"
	"github.com/osse101/PotionGacha_Go/internal/metrics"
)

// Dependencies are the collaborators the HTTP surface calls into
type Dependencies struct {
	DBPool      database.Pool
	Players     handler.PlayerRegistry
	Inventory   inventory.Service
	Items       handler.ItemLister
	Limits      domain.Limits
	ServiceName string
	Version     string
}

// Server owns the listener
type Server struct {
	httpServer *http.Server
}

// NewServer creates a server listening on port
func NewServer(port int, apiKey string, trustedProxies []string, deps Dependencies) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           NewRouter(apiKey, trustedProxies, deps),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
	}
}

// NewRouter builds the full middleware stack and route table
func NewRouter(apiKey string, trustedProxies []string, deps Dependencies) http.Handler {
	proxies := ParseTrustedProxies(trustedProxies)
	detector := NewSuspiciousActivityDetector()

	r := chi.NewRouter()

	// Outermost first
	r.Use(middleware.Recoverer)
	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(apiKey, proxies, detector))
	r.Use(RateLimitMiddleware(proxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(requestLoggingMiddleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(deps.DBPool))
	r.Get("/version", handler.HandleVersion(deps.ServiceName, deps.Version))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/items", handler.HandleListItems(deps.Items))

		r.Route("/players", func(r chi.Router) {
			r.Post("/", handler.HandleCreatePlayer(deps.Players, deps.Limits))

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", handler.HandleGetPlayer(deps.Players))
				r.Get("/items", handler.HandleGetPlayerItems(deps.Players))
				r.Post("/addItem", handler.HandleAddItem(deps.Inventory))
				r.Post("/useItem", handler.HandleUseItem(deps.Inventory))
				r.Post("/useGacha", handler.HandleUseGacha(deps.Inventory))
			})
		})
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}

// Start blocks serving requests until Stop is called
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops accepting connections and waits for in-flight requests up to ctx's deadline
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
