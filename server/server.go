// Package server exposes the chat pipeline over HTTP: a blocking chat
// endpoint, a server-sent-events stream variant, health, and metrics.
package server

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/promotor-ai/promotor/agent/orchestrator"
)

type Config struct {
	Addr            string        `envconfig:"ADDR" split_words:"true" default:":8080"`
	ReadTimeout     time.Duration `envconfig:"READ_TIMEOUT" split_words:"true" default:"30s"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" split_words:"true" default:"10s"`
}

type Server struct {
	echo *echo.Echo
	svc  *orchestrator.Service
	cfg  Config
	log  zerolog.Logger
}

func New(cfg Config, svc *orchestrator.Service, log zerolog.Logger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())

	s := &Server{echo: e, svc: svc, cfg: cfg, log: log}

	e.POST("/api/chat", s.handleChat)
	e.POST("/api/chat/stream", s.handleChatStream)
	e.GET("/healthz", s.handleHealth)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return s
}

// Echo exposes the underlying router for tests.
func (s *Server) Echo() *echo.Echo { return s.echo }

func (s *Server) Start() error {
	s.log.Info().Str("addr", s.cfg.Addr).Msg("http server listening")
	s.echo.Server.ReadTimeout = s.cfg.ReadTimeout
	return s.echo.Start(s.cfg.Addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
