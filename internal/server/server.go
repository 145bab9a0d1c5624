package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"

	"github.com/techzen-dev/techzen/internal/auth"
	"github.com/techzen-dev/techzen/internal/config"
	"github.com/techzen-dev/techzen/internal/imghost"
	"github.com/techzen-dev/techzen/internal/store"
)

// Server represents the HTTP server
type Server struct {
	router    *gin.Engine
	store     store.Store
	uploader  *imghost.Client
	config    *config.Config
	logger    zerolog.Logger
	validator *validator.Validate
}

// New creates a new server instance
func New(cfg *config.Config, st store.Store, uploader *imghost.Client, zlog zerolog.Logger) *Server {
	// Initialize token signing
	auth.Init(cfg.Auth.TokenSecret)

	server := &Server{
		store:     st,
		uploader:  uploader,
		config:    cfg,
		logger:    zlog,
		validator: validator.New(),
	}

	server.setupRouter()

	return server
}

// setupRouter configures the Gin router with routes and middleware
func (s *Server) setupRouter() {
	gin.SetMode(gin.ReleaseMode)

	s.router = gin.New()

	s.router.Use(gin.Recovery())
	s.router.Use(s.loggingMiddleware())

	// CORS restricted to the storefront origins, credentials enabled so the
	// session cookie travels cross-site
	s.router.Use(cors.New(cors.Config{
		AllowOrigins:     s.config.Server.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	s.router.GET("/", s.greeting)

	// Session lifecycle
	s.router.POST("/jwt", s.issueToken)
	s.router.POST("/logout", s.logout)

	// Users
	s.router.PUT("/user", s.upsertUser)
	s.router.GET("/user/:email", s.getUserByEmail)
	s.router.GET("/users", s.verifyToken(), s.listUsers)

	// Catalog
	s.router.GET("/products", s.listProducts)
	s.router.POST("/form-data", s.filterProducts)
	s.router.GET("/search", s.searchProducts)

	// Image hosting relay
	s.router.POST("/upload", s.uploadImage)
}

// loggingMiddleware creates a custom logging middleware using zerolog
func (s *Server) loggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := ulid.Make().String()
		c.Set("request_id", requestID)

		start := time.Now()
		c.Next()

		s.logger.Info().
			Str("request_id", requestID).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Str("client_ip", c.ClientIP()).
			Msg("HTTP request")
	}
}

func (s *Server) greeting(c *gin.Context) {
	c.String(http.StatusOK, "Hello from TechZen Server..")
}

// Start starts the HTTP server and blocks until a shutdown signal arrives.
func (s *Server) Start() error {
	addr := ":" + s.config.Server.Port

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 30 * time.Second,
		IdleTimeout:       300 * time.Second,
	}

	go func() {
		s.logger.Info().Str("addr", addr).Msg("Starting HTTP server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Error().Err(err).Msg("HTTP server error")
		}
	}()

	<-sigChan
	s.logger.Info().Msg("Received shutdown signal, shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		s.logger.Error().Err(err).Msg("Error shutting down HTTP server")
		return err
	}

	s.logger.Info().Msg("Server shutdown complete")
	return nil
}
