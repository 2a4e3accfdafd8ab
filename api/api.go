// Package api exposes the application over a JSON HTTP interface backed by
// cookie sessions.
package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"github.com/deffiedeff2/event-app/config"
	"github.com/deffiedeff2/event-app/engine"
	"github.com/deffiedeff2/event-app/screens"
	"github.com/deffiedeff2/event-app/store"
)

type Server struct {
	cfg       *config.Config
	ginEngine *gin.Engine
	engine    *engine.Engine

	auth      *screens.Auth
	phone     *screens.Phone
	events    *screens.Events
	dashboard *screens.Dashboard
	explore   *screens.Explore
	profile   *screens.Profile

	startTime time.Time
}

func New(cfg *config.Config, s *store.Store, e *engine.Engine) (*Server, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	return &Server{
		cfg:       cfg,
		ginEngine: gin.Default(),
		engine:    e,
		auth:      screens.NewAuth(s),
		phone:     screens.NewPhone(s),
		events:    screens.NewEvents(s),
		dashboard: screens.NewDashboard(s),
		explore:   screens.NewExplore(s),
		profile:   screens.NewProfile(s),
		startTime: time.Now(),
	}, nil
}

func (s *Server) setupSession() {
	store := cookie.NewStore([]byte(s.cfg.SessionKey))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   s.cfg.SessionMaxAge,
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
	})
	s.ginEngine.Use(sessions.Sessions("eventapp_session", store))
}

func (s *Server) setupRoutes() {
	s.ginEngine.Use(RequestID())
	s.ginEngine.Use(gzip.Gzip(gzip.DefaultCompression))
	s.setupSession()

	api := s.ginEngine.Group("/api")

	// Routes that work logged out.
	api.POST("/auth/signup", s.handleSignUp)
	api.POST("/auth/login", s.handleLogin)
	api.POST("/auth/reset", s.handleResetPassword)
	api.POST("/auth/logout", s.handleLogout)
	api.GET("/state", s.handleState)
	api.POST("/navigate", s.handleNavigate)
	api.POST("/search", s.handleSearch)
	api.GET("/explore", s.handleExplore)
	api.GET("/events/:id", s.handleGetEvent)
	api.GET("/users/:username", s.handlePublicProfile)
	api.GET("/status", s.handleStatus)

	protected := api.Group("/")
	protected.Use(RequireAuth())

	protected.POST("/phone", s.handlePhone)
	protected.GET("/dashboard", s.handleDashboard)
	protected.POST("/events", s.handleCreateEvent)
	protected.PUT("/events/:id", s.handleUpdateEvent)
	protected.DELETE("/events/:id", s.handleDeleteEvent)
	protected.POST("/events/:id/rsvp", s.handleRSVP)
	protected.GET("/profile", s.handleGetProfile)
	protected.PUT("/profile", s.handleUpdateProfile)
}

func (s *Server) Run() error {
	s.setupRoutes()

	return s.ginEngine.Run(s.cfg.Listen)
}
