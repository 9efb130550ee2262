// Package stream serves dungeon generation over a websocket, one envelope
// per completed pipeline stage.
package stream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/katalvlaran/dungeongen/dungeon"
	"github.com/katalvlaran/dungeongen/internal/config"
	"github.com/katalvlaran/dungeongen/physics/separation"
)

// Request limits. Corridor sampling is proportional to room size and
// spread, so the size parameters are bounded as well as the count.
const (
	// MaxRooms caps Request.Rooms.Count.
	MaxRooms = 2000
	// MaxExtent caps Width, Height, StdDeviation and SpawnRadius.
	MaxExtent = 1000
	// MaxBounds caps BoundsWidth and BoundsHeight.
	MaxBounds = 1 << 20
)

const (
	requestTimeout = 10 * time.Second
	writeTimeout   = 5 * time.Second
)

// ErrBadRequest is reported to clients whose request cannot be served.
var ErrBadRequest = errors.New("stream: bad request")

// Server runs one generation per websocket connection.
type Server struct {
	cfg    config.Config
	logger *log.Logger
	hub    *Hub
	// AllowAnyOrigin disables the websocket origin check.
	AllowAnyOrigin bool
}

// NewServer returns a server using cfg for defaults. A nil logger uses
// log.Default().
func NewServer(cfg config.Config, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}

	return &Server{cfg: cfg, logger: logger, hub: NewHub()}
}

// Handler routes GET /generate.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /generate", s.handleGenerate)

	return mux
}

// Active returns the number of open generation connections.
func (s *Server) Active() int { return s.hub.Len() }

// ListenAndServe serves on addr until ctx is done, then closes open
// connections and shuts down.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.Handler(), ReadHeaderTimeout: 5 * time.Second}
	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	s.logger.Printf("stream: listening on %s", addr)

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	s.hub.CloseAll("server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: s.AllowAnyOrigin})
	if err != nil {
		s.logger.Printf("stream: accept: %v", err)
		return
	}
	s.hub.Add(conn)
	defer s.hub.Remove(conn)
	defer conn.CloseNow()

	ctx := r.Context()
	sess := &session{conn: conn}

	req, err := s.readRequest(ctx, conn)
	if err != nil {
		s.logger.Printf("stream: %s: %v", r.RemoteAddr, err)
		_ = sess.send(ctx, TypeError, Failure{Message: err.Error()})
		_ = conn.Close(websocket.StatusPolicyViolation, "bad request")
		return
	}

	d, err := s.generate(ctx, req, sess)
	if err != nil {
		s.logger.Printf("stream: %s: seed %d: %v", r.RemoteAddr, req.Seed, err)
		_ = sess.send(ctx, TypeError, Failure{Message: err.Error()})
		_ = conn.Close(websocket.StatusInternalError, "generation failed")
		return
	}
	if err := sess.send(ctx, TypeDone, d.Layout().Compact()); err != nil {
		return
	}
	s.logger.Printf("stream: %s: seed %d: %d rooms, %d main", r.RemoteAddr, d.Seed, len(d.Rooms), len(d.MainRooms))
	_ = conn.Close(websocket.StatusNormalClosure, "")
}

func (s *Server) readRequest(ctx context.Context, conn *websocket.Conn) (Request, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	// Decoded here rather than with wsjson.Read, which closes the
	// connection on malformed JSON before an error envelope can be sent.
	_, data, err := conn.Read(ctx)
	if err != nil {
		return Request{}, fmt.Errorf("%w: %v", ErrBadRequest, err)
	}
	var req Request
	if err := json.Unmarshal(data, &req); err != nil {
		return Request{}, fmt.Errorf("%w: %v", ErrBadRequest, err)
	}
	if req.Rooms != nil {
		p := *req.Rooms
		if p.Count < 0 || p.Count > MaxRooms {
			return Request{}, fmt.Errorf("%w: rooms.count %d outside [0,%d]", ErrBadRequest, p.Count, MaxRooms)
		}
		for _, f := range []struct {
			name string
			v    float64
		}{
			{"width", p.Width},
			{"height", p.Height},
			{"stdDeviation", p.StdDeviation},
			{"spawnRadius", p.SpawnRadius},
		} {
			if f.v < 0 || f.v > MaxExtent {
				return Request{}, fmt.Errorf("%w: rooms.%s %v outside [0,%d]", ErrBadRequest, f.name, f.v, MaxExtent)
			}
		}
		if math.Abs(p.BoundsWidth) > MaxBounds || math.Abs(p.BoundsHeight) > MaxBounds {
			return Request{}, fmt.Errorf("%w: rooms bounds exceed %d", ErrBadRequest, MaxBounds)
		}
	}

	return req, nil
}

// generate runs one pipeline on a private world stepped for the duration
// of the call. A failed stage write aborts the run.
func (s *Server) generate(ctx context.Context, req Request, sess *session) (*dungeon.Dungeon, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	world := separation.NewWorld(s.cfg.Engine)
	go func() { _ = world.Run(ctx, s.cfg.Tick) }()

	params := s.cfg.Rooms
	if req.Rooms != nil {
		params = *req.Rooms
	}
	seed := req.Seed
	if seed == 0 {
		seed = s.cfg.Seed
	}

	var writeErr error
	hook := func(st dungeon.Stage, d *dungeon.Dungeon) {
		if writeErr != nil {
			return
		}
		ev := StageEvent{Stage: st.String(), Index: int(st), Layout: d.Layout().Compact()}
		if writeErr = sess.send(ctx, TypeStage, ev); writeErr != nil {
			cancel()
		}
	}

	d, err := dungeon.Generate(ctx, world,
		dungeon.WithSeed(seed),
		dungeon.WithParams(params),
		dungeon.WithSettleTimeout(s.cfg.SettleTimeout),
		dungeon.WithStageHook(hook))
	if writeErr != nil {
		return nil, writeErr
	}

	return d, err
}

// session numbers the envelopes written to one connection.
type session struct {
	conn *websocket.Conn
	seq  uint64
}

func (s *session) send(ctx context.Context, typ string, payload any) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	s.seq++

	return wsjson.Write(ctx, s.conn, Envelope{Sequence: s.seq, Type: typ, Payload: payload})
}
