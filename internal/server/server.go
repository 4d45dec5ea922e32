package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/Foodgram_Go/internal/catalog"
	"github.com/osse101/Foodgram_Go/internal/database"
	"github.com/osse101/Foodgram_Go/internal/follow"
	"github.com/osse101/Foodgram_Go/internal/handler"
	"github.com/osse101/Foodgram_Go/internal/ledger"
	"github.com/osse101/Foodgram_Go/internal/logger"
	"github.com/osse101/Foodgram_Go/internal/metrics"
	"github.com/osse101/Foodgram_Go/internal/middleware"
	"github.com/osse101/Foodgram_Go/internal/recipe"
	"github.com/osse101/Foodgram_Go/internal/shopping"
	"github.com/osse101/Foodgram_Go/internal/user"
)

// Dependencies holds everything the HTTP server routes to
type Dependencies struct {
	Port            int
	APIKey          string
	AdminKey        string
	TrustedProxies  []string
	MaxRequestBytes int64
	Version         string
	PageSize        int

	DBPool   database.Pool
	Catalog  catalog.Service
	Recipes  recipe.Service
	Ledger   ledger.Service
	Shopping shopping.Service
	Users    user.Service
	Follows  follow.Service
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(deps Dependencies) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", deps.Port),
			Handler:           NewRouter(deps),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
	}
}

// NewRouter builds the full middleware stack and route table
func NewRouter(deps Dependencies) http.Handler {
	maxBytes := deps.MaxRequestBytes
	if maxBytes <= 0 {
		maxBytes = DefaultMaxRequestBytes
	}

	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(deps.APIKey, deps.TrustedProxies, detector))
	r.Use(SecurityLoggingMiddleware(deps.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(maxBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(deps.DBPool))
	r.Get("/version", handler.HandleVersion(deps.Version))
	r.Handle("/metrics", promhttp.Handler())

	catalogHandler := handler.NewCatalogHandler(deps.Catalog)
	adminHandler := handler.NewAdminHandler(deps.Catalog)
	recipeHandler := handler.NewRecipeHandler(deps.Recipes, deps.Ledger, deps.Shopping, deps.PageSize)
	userHandler := handler.NewUserHandler(deps.Users, deps.Follows, deps.PageSize)

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Identity)

		r.Route("/users", func(r chi.Router) {
			r.Post("/", userHandler.HandleRegister)
			r.Get("/", userHandler.HandleList)
			r.Get("/me", userHandler.HandleMe)
			r.Get("/subscriptions", userHandler.HandleSubscriptions)
			r.Get("/{id}", userHandler.HandleGet)
			r.Post("/{id}/subscribe", userHandler.HandleSubscribe)
			r.Delete("/{id}/subscribe", userHandler.HandleUnsubscribe)
		})

		r.Get("/tags", catalogHandler.HandleListTags)
		r.Get("/tags/{id}", catalogHandler.HandleGetTag)
		r.Get("/ingredients", catalogHandler.HandleListIngredients)
		r.Get("/ingredients/{id}", catalogHandler.HandleGetIngredient)

		r.Route("/recipes", func(r chi.Router) {
			r.Get("/", recipeHandler.HandleList)
			r.Post("/", recipeHandler.HandleCreate)
			r.Get("/download_shopping_cart", recipeHandler.HandleDownloadShoppingCart)
			r.Get("/{id}", recipeHandler.HandleGet)
			r.Patch("/{id}", recipeHandler.HandleUpdate)
			r.Delete("/{id}", recipeHandler.HandleDelete)
			r.Post("/{id}/favorite", recipeHandler.HandleAddFavorite)
			r.Delete("/{id}/favorite", recipeHandler.HandleRemoveFavorite)
			r.Post("/{id}/shopping_cart", recipeHandler.HandleAddToCart)
			r.Delete("/{id}/shopping_cart", recipeHandler.HandleRemoveFromCart)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(AdminKeyMiddleware(deps.AdminKey, deps.TrustedProxies, detector))
			r.Get("/cache/stats", adminHandler.HandleGetCacheStats)
			r.Post("/catalog/tags", adminHandler.HandleImportTags)
			r.Post("/catalog/ingredients", adminHandler.HandleImportIngredients)
		})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK, // default status
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		for _, path := range QuietPaths {
			if strings.HasPrefix(r.URL.Path, path) {
				next.ServeHTTP(w, r)
				return
			}
		}

		ctx := logger.WithRequestID(r.Context(), logger.GenerateRequestID())
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		log.Debug(LogMsgRequestHeaders, "headers", redactHeaders(r.Header))

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// redactHeaders copies h with credential headers masked
func redactHeaders(h http.Header) http.Header {
	out := make(http.Header, len(h))
	for k, v := range h {
		if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAdminKey) || strings.EqualFold(k, HeaderAuthorization) {
			out[k] = []string{RedactedValue}
		} else {
			out[k] = v
		}
	}
	return out
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
