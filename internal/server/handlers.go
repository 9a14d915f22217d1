package server

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"net/http"
	"reactionarena/internal/broadcast"
	"reactionarena/internal/config"
	"reactionarena/internal/metrics"
	"reactionarena/internal/sessions"
	"reactionarena/internal/wshub"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus"
)

//go:embed static/index.html
var indexHTML []byte

const sessionCookie = "session_id"

type Server struct {
	Sessions *sessions.Store
	Hub      *wshub.Hub
	Feed     *broadcast.Broadcaster
	Metrics  *metrics.Recorder

	cfg      config.Config
	logger   *log.Logger
	gatherer prometheus.Gatherer
}

// getSession resolves the session from the id query parameter, falling
// back to the session cookie.
func (s *Server) getSession(r *http.Request) *sessions.Session {
	if id := r.URL.Query().Get("id"); id != "" {
		return s.Sessions.Get(id)
	}
	cookie, err := r.Cookie(sessionCookie)
	if err != nil {
		return nil
	}
	return s.Sessions.Get(cookie.Value)
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write(indexHTML); err != nil {
		s.logger.Error("writing home page", "err", err)
	}
}

type badgeJSON struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type statsJSON struct {
	Tag        string      `json:"tag"`
	Hits       int         `json:"hits"`
	Spawns     int         `json:"spawns"`
	Superseded int         `json:"superseded"`
	HitRate    float64     `json:"hit_rate"`
	BestMs     int64       `json:"best_ms"`
	AvgMs      int64       `json:"avg_ms"`
	LastMs     int64       `json:"last_ms"`
	IntervalMs int64       `json:"interval_ms"`
	Badges     []badgeJSON `json:"badges"`
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	sess := s.getSession(r)
	if sess == nil {
		http.Error(w, "Session not found", http.StatusNotFound)
		return
	}

	stats := sess.Stats()
	resp := statsJSON{
		Tag:        sess.Tag,
		Hits:       stats.Hits,
		Spawns:     stats.Spawns,
		Superseded: stats.Superseded,
		HitRate:    stats.HitRate(),
		BestMs:     stats.BestReaction.Milliseconds(),
		AvgMs:      stats.AvgReaction.Milliseconds(),
		LastMs:     stats.LastReaction.Milliseconds(),
		IntervalMs: stats.Interval.Milliseconds(),
		Badges:     []badgeJSON{},
	}
	if resp.IntervalMs == 0 {
		resp.IntervalMs = s.cfg.SpawnInterval.Milliseconds()
	}
	for _, b := range stats.Badges {
		resp.Badges = append(resp.Badges, badgeJSON{
			ID:          string(b.ID),
			Name:        b.Name,
			Description: b.Description,
			Icon:        b.Icon,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.logger.Error("encoding stats", "err", err)
	}
}

// handleEvents streams the cross-session activity feed as server-sent
// events.
func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	msgChan := s.Feed.Subscribe()
	defer s.Feed.Unsubscribe(msgChan)

	for {
		select {
		case <-r.Context().Done():
			return
		case msg := <-msgChan:
			fmt.Fprintf(w, "event: %s\n", msg.Event)
			for _, line := range strings.Split(msg.Msg, "\n") {
				fmt.Fprintf(w, "data: %s\n", line)
			}
			fmt.Fprint(w, "\n")
			flusher.Flush()
		}
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprintf(w, `{"status":"ok","sessions":%d}`, len(s.Sessions.List()))
}
