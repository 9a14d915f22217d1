package server

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net"
	"net/http"
	"reactionarena/internal/broadcast"
	"reactionarena/internal/config"
	"reactionarena/internal/events"
	"reactionarena/internal/gamedata"
	"reactionarena/internal/metrics"
	"reactionarena/internal/sessions"
	"reactionarena/internal/utility"
	"reactionarena/internal/wshub"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewServer builds the web host. Metrics register with reg, which also
// backs /metrics.
func NewServer(cfg config.Config, logger *log.Logger, reg *prometheus.Registry) *Server {
	if logger == nil {
		logger = log.Default()
	}
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	s := &Server{
		cfg:      cfg,
		logger:   logger.WithPrefix("server"),
		Hub:      wshub.NewHub(logger),
		Feed:     broadcast.NewBroadcaster(),
		Metrics:  metrics.NewRecorder(reg),
		gatherer: reg,
	}

	gameCfg := cfg.Game()
	var seq atomic.Int64
	seed := cfg.Seeded()
	s.Sessions = sessions.NewStore(func(bus *events.Bus) *gamedata.Game {
		rng := rand.New(rand.NewSource(seed + seq.Add(1) - 1))
		gc := gameCfg
		gc.Colors = func() string { return utility.ColorFrom(rng) }
		return gamedata.NewGame(gc, rng, bus, logger)
	}, cfg.SessionTTL)
	return s
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleHome)
	mux.HandleFunc("GET /ws", s.handleWS)
	mux.HandleFunc("GET /events", s.handleEvents)
	mux.HandleFunc("GET /stats", s.handleStats)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.Handle("GET /metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	return mux
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg := config.Load()
	logger := cfg.Logger()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	s := NewServer(cfg, logger, reg)

	go s.Sessions.RunSweeper(ctx)

	httpSrv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.Port,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "url", "http://localhost:"+cfg.Port)
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("serving http: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("shutting down: %w", err)
	}
	return nil
}
