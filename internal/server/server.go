// Package server wires the gin router for the Geboy Mujair web flow:
// landing page, registration, email verification, login, password reset,
// and the four role dashboards.
package server

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	mujairAuth "github.com/TambakLabs/mujairAuth"
	"github.com/TambakLabs/mujairAuth/internal/handler"
	"github.com/TambakLabs/mujairAuth/internal/middleware"
)

//go:embed templates/*.html
var templatesFS embed.FS

const shutdownTimeout = 10 * time.Second

// Server owns the router and the HTTP listener lifecycle.
type Server struct {
	router *gin.Engine
	engine *mujairAuth.Engine
	log    *zap.Logger

	http *http.Server
}

// NewServer builds the router with all page routes registered. The caller
// starts it with [Server.Run] or mounts it as an [http.Handler].
func NewServer(engine *mujairAuth.Engine, log *zap.Logger) *Server {
	router := gin.New()
	router.Use(middleware.RequestLogger(log), gin.Recovery())
	router.SetHTMLTemplate(template.Must(template.ParseFS(templatesFS, "templates/*.html")))

	s := &Server{
		router: router,
		engine: engine,
		log:    log,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	h := handler.New(s.engine, s.log)

	s.router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	s.router.GET("/", h.Index)

	s.router.GET("/register", h.RegisterForm)
	s.router.POST("/register", h.Register)
	s.router.GET("/verify/:token", h.VerifyForm)
	s.router.POST("/verify/:token", h.Verify)

	s.router.GET("/login", h.LoginForm)
	s.router.POST("/login", h.Login)
	s.router.GET("/logout", h.Logout)

	s.router.GET("/forgot-password", h.ForgotPasswordForm)
	s.router.POST("/forgot-password", h.ForgotPassword)
	s.router.GET("/reset-password/:token", h.ResetPasswordForm)
	s.router.POST("/reset-password/:token", h.ResetPassword)

	// Each dashboard route is gated on a live session carrying exactly
	// that role; everyone else bounces to /login.
	dashboards := s.router.Group("/dashboard")
	for _, role := range mujairAuth.Roles() {
		dashboards.GET("/"+string(role), middleware.RequireRole(s.engine, role, s.log), h.Dashboard(role))
	}
}

// MountMetrics exposes h on GET /metrics. The handler is supplied by the
// caller so the binary decides the exposition format.
func (s *Server) MountMetrics(h http.Handler) {
	s.router.GET("/metrics", gin.WrapH(h))
}

// ServeHTTP lets the Server stand in anywhere an [http.Handler] is
// expected, httptest included.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Run serves on addr until ctx is cancelled, then drains in-flight
// requests before returning.
func (s *Server) Run(ctx context.Context, addr string) error {
	s.http = &http.Server{
		Addr:    addr,
		Handler: s.router,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server starting", zap.String("addr", addr))
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.log.Info("server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return s.http.Shutdown(shutdownCtx)
}
