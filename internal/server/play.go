package server

import (
	"context"
	"encoding/json"
	"net/http"
	"reactionarena/internal/activity"
	"reactionarena/internal/events"
	"reactionarena/internal/gamedata"
	"reactionarena/internal/geom"
	"reactionarena/internal/loop"
	"reactionarena/internal/sessions"
	"reactionarena/internal/wshub"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
)

// maxQueuedClicks bounds the clicks carried over to later frames; the
// game consumes one click per frame.
const maxQueuedClicks = 8

// handleWS upgrades the connection and plays one session over it until the
// client goes away.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	sess, err := s.Sessions.Create()
	if err != nil {
		s.logger.Error("creating session", "err", err)
		http.Error(w, "Failed to create session", http.StatusInternalServerError)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    sess.ID,
		Path:     "/",
		HttpOnly: true,
	})

	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		s.Sessions.Delete(sess.ID)
		s.logger.Warn("websocket accept", "err", err)
		return
	}
	defer conn.CloseNow()

	logger := s.logger.With("session", sess.Tag)
	logger.Info("session started")
	s.Metrics.Sessions.Inc()
	defer s.Metrics.Sessions.Dec()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	client := wshub.NewClient(sess.ID, conn)
	s.Hub.Register(client)
	defer s.Hub.Unregister(sess.ID)
	go client.WritePump(ctx)
	go s.observe(ctx, sess)

	s.Hub.Send(sess.ID, wshub.ServerMessage{Type: wshub.MsgHello, Session: sess.ID})

	input := make(chan wshub.ClientMessage, 32)
	go readPump(ctx, cancel, conn, input)

	if err := s.play(ctx, sess, input); err != nil {
		logger.Error("play loop", "err", err)
		conn.Close(websocket.StatusInternalError, "play loop failed")
		return
	}
	logger.Info("session ended")
	conn.Close(websocket.StatusNormalClosure, "")
}

// readPump decodes client messages until the connection fails, then cancels
// the session.
func readPump(ctx context.Context, cancel context.CancelFunc, conn *websocket.Conn, input chan<- wshub.ClientMessage) {
	defer cancel()
	for {
		var msg wshub.ClientMessage
		if err := wsjson.Read(ctx, conn, &msg); err != nil {
			return
		}
		select {
		case input <- msg:
		case <-ctx.Done():
			return
		}
	}
}

// play owns sess.Game for the lifetime of the connection.
func (s *Server) play(ctx context.Context, sess *sessions.Session, input <-chan wshub.ClientMessage) error {
	cam := geom.NewCamera()
	var (
		vp     *geom.Viewport
		clicks []geom.Vec2
		shown  int
	)

	return loop.Run(ctx, s.cfg.FrameDelay, loop.SystemClock{}, func(now time.Time, dt time.Duration) error {
		var activate, deactivate bool
	drain:
		for {
			select {
			case msg := <-input:
				switch msg.Type {
				case wshub.MsgKey:
					switch msg.Key {
					case wshub.KeyStart:
						activate = true
					case wshub.KeyStop:
						deactivate = true
					}
				case wshub.MsgSize:
					if msg.W > 0 && msg.H > 0 {
						vp = &geom.Viewport{Width: msg.W, Height: msg.H}
					}
				case wshub.MsgClick:
					if len(clicks) < maxQueuedClicks {
						clicks = append(clicks, geom.Vec2{X: msg.X, Y: msg.Y})
					}
				}
			default:
				break drain
			}
		}

		f := gamedata.Frame{
			Now:        now,
			Delta:      dt,
			Activate:   activate,
			Deactivate: deactivate,
			Viewport:   vp,
			Camera:     cam,
		}
		if len(clicks) > 0 {
			f.Click = &gamedata.Click{Screen: clicks[0], Origin: geom.OriginTopLeft}
			clicks = clicks[1:]
		}

		res := sess.Game.Step(f)
		s.render(sess, res, &shown)
		sess.Touch(now)
		return nil
	})
}

// render turns a frame's result into client messages. shown tracks the
// target id the client is drawing, 0 for none.
func (s *Server) render(sess *sessions.Session, res gamedata.Result, shown *int) {
	for _, ev := range res.Events {
		var msg wshub.ServerMessage
		switch ev.Kind {
		case events.KindActivity:
			msg = wshub.ServerMessage{Type: wshub.MsgState, Active: ev.State == activity.Active}
		case events.KindSpawn:
			msg = wshub.ServerMessage{
				Type:  wshub.MsgTarget,
				ID:    ev.Target.ID,
				X:     ev.Target.Position.X,
				Y:     ev.Target.Position.Y,
				Size:  ev.Target.Size,
				Color: ev.Target.Color,
			}
			*shown = ev.Target.ID
		case events.KindHit:
			msg = wshub.ServerMessage{
				Type:     wshub.MsgHit,
				ID:       ev.Target.ID,
				Reaction: ev.Reaction.Milliseconds(),
				Interval: ev.Interval.Milliseconds(),
			}
			*shown = 0
		default:
			continue
		}
		s.Hub.Send(sess.ID, msg)
	}

	if _, ok := sess.Game.Target(); !ok && *shown != 0 {
		*shown = 0
		s.Hub.Send(sess.ID, wshub.ServerMessage{Type: wshub.MsgClear})
	}
}

type feedHit struct {
	Tag        string `json:"tag"`
	ReactionMs int64  `json:"r"`
	IntervalMs int64  `json:"i"`
}

// observe drains the session's event bus into its stats, the metrics and
// the activity feed.
func (s *Server) observe(ctx context.Context, sess *sessions.Session) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-sess.Bus.Events:
			sess.Record(ev)
			s.Metrics.Observe(ev)
			if ev.Kind != events.KindHit {
				continue
			}
			data, err := json.Marshal(feedHit{
				Tag:        sess.Tag,
				ReactionMs: ev.Reaction.Milliseconds(),
				IntervalMs: ev.Interval.Milliseconds(),
			})
			if err != nil {
				s.logger.Error("marshal feed hit", "err", err)
				continue
			}
			s.Feed.Publish("hit", string(data))
		}
	}
}
