// Package hub is the registry actor mapping join codes to live
// sessions.
package hub

import (
	"context"

	"go.uber.org/zap"

	"riftdraft/internal/session"
)

type HubMsg interface{ isHubMsg() }

type CreateSession struct {
	Code   string
	Config session.Config
	Reply  chan *session.Session
}

type GetSession struct {
	Code  string
	Reply chan *session.Session
}

// EnsureSession returns the existing session or creates one; the config
// is only used if creation happens.
type EnsureSession struct {
	Code   string
	Config session.Config
	Reply  chan *session.Session
}

type RemoveSession struct {
	Code string
}

type ShutdownHub struct{}

func (CreateSession) isHubMsg() {}
func (GetSession) isHubMsg()    {}
func (EnsureSession) isHubMsg() {}
func (RemoveSession) isHubMsg() {}
func (ShutdownHub) isHubMsg()   {}

// Deps are shared by every session the hub creates.
type Deps struct {
	Sink   session.ResultSink
	Logger *zap.Logger
}

type Hub struct {
	inbox    chan HubMsg
	sessions map[string]*session.Session
	deps     Deps
	ctx      context.Context
	cancel   context.CancelFunc
}

func NewHub(parent context.Context, deps Deps) *Hub {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	ctx, cancel := context.WithCancel(parent)
	h := &Hub{
		inbox:    make(chan HubMsg, 64),
		sessions: make(map[string]*session.Session),
		deps:     deps,
		ctx:      ctx,
		cancel:   cancel,
	}
	go h.loop()
	return h
}

func (h *Hub) Inbox() chan<- HubMsg { return h.inbox }

func (h *Hub) loop() {
	for {
		select {
		case <-h.ctx.Done():
			return

		case m := <-h.inbox:
			switch msg := m.(type) {
			case CreateSession:
				if s := h.sessions[msg.Code]; s != nil {
					msg.Reply <- s
					break
				}
				msg.Reply <- h.create(msg.Code, msg.Config)

			case GetSession:
				msg.Reply <- h.sessions[msg.Code] // may be nil

			case EnsureSession:
				if s := h.sessions[msg.Code]; s != nil {
					msg.Reply <- s
					break
				}
				msg.Reply <- h.create(msg.Code, msg.Config)

			case RemoveSession:
				delete(h.sessions, msg.Code)

			case ShutdownHub:
				for _, s := range h.sessions {
					s.Inbox() <- session.Shutdown{}
				}
				clear(h.sessions)
				h.cancel()
			}
		}
	}
}

func (h *Hub) create(code string, cfg session.Config) *session.Session {
	if cfg.Sink == nil {
		cfg.Sink = h.deps.Sink
	}
	if cfg.Logger == nil {
		cfg.Logger = h.deps.Logger
	}
	s := session.New(h.ctx, code, cfg)
	h.sessions[code] = s
	return s
}
