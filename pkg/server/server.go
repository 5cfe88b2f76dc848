package server

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"storyboard/pkg/schema"
	"storyboard/pkg/storyboard"
)

type Server struct {
	Echo      *echo.Echo
	Generator *storyboard.Generator
	Ctx       context.Context

	// Timeout bounds each generation; zero leaves only the client's context.
	Timeout time.Duration
	Now     func() time.Time

	// StatePath is where the session is saved; empty keeps it in memory only.
	StatePath string

	busy  atomic.Bool
	mu    sync.RWMutex
	state State
}

func NewServer(ctx context.Context, gen *storyboard.Generator) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = newRequestValidator()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	s := &Server{
		Echo:      e,
		Generator: gen,
		Ctx:       ctx,
		Now:       time.Now,
		state:     State{Selections: schema.DefaultRequest()},
	}

	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.Echo.GET("/", s.handleGetRoot)

	api := s.Echo.Group("/api")
	api.GET("/options", s.handleGetOptions)
	api.GET("/state", s.handleGetState)
	api.POST("/generate", s.handlePostGenerate)

	api.GET("/result", s.handleGetResult)
	api.DELETE("/result", s.handleDeleteResult)
	api.GET("/result/export", s.handleGetExport)
	api.GET("/result/copy/:field", s.handleGetCopy)
}

func (s *Server) Start(addr string) error {
	log.Info("server listening", "addr", addr)
	return s.Echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	log.Info("shutting down server")
	s.saveState()
	return s.Echo.Shutdown(ctx)
}
