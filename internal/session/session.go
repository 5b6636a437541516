// Package session hosts the actor that owns one draft session's state.
// All mutation happens on the actor goroutine; connected contexts talk
// to it exclusively through the typed inbox and receive snapshots and
// event notices on their outbox channels.
package session

import (
	"context"
	"time"

	"go.uber.org/zap"

	"riftdraft/internal/engine"
	"riftdraft/internal/gate"
	"riftdraft/internal/roster"
	"riftdraft/internal/series"
)

// ResultSink receives completed game results. The store implements it;
// the session never imports persistence directly.
type ResultSink interface {
	SaveResult(ctx context.Context, code string, res series.GameResult) error
}

type Config struct {
	BlueName    string
	RedName     string
	TurnSeconds int
	BestOf      int
	Mode        series.Mode
	Catalog     *roster.Catalog

	// PriorResults resumes a series mid-way (e.g. game 2 of a Bo3).
	PriorResults []series.GameResult

	// TickInterval is the countdown granularity; one second unless a
	// test shortens it.
	TickInterval time.Duration

	Sink   ResultSink
	Logger *zap.Logger
}

const DefaultTurnSeconds = 30

func (c Config) withDefaults() Config {
	if c.TurnSeconds <= 0 {
		c.TurnSeconds = DefaultTurnSeconds
	}
	if c.BestOf <= 0 {
		c.BestOf = 1
	}
	if c.Mode == "" {
		c.Mode = series.ModeStandard
	}
	if c.TickInterval <= 0 {
		c.TickInterval = time.Second
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
	return c
}

type client struct {
	role   Role
	outbox chan Outbound
}

type Session struct {
	code    string
	cfg     Config
	inbox   chan Msg
	state   engine.State
	gate    *gate.Gate
	series  *series.Manager
	version int

	// remaining and timerGen belong to the active countdown; stale
	// timer fires carry an old generation and are dropped.
	remaining int
	timerGen  int
	timerStop chan struct{}
	started   bool

	clients map[string]client
	log     *zap.Logger
	ctx     context.Context
	cancel  context.CancelFunc
}

func New(parent context.Context, code string, cfg Config) *Session {
	cfg = cfg.withDefaults()
	ctx, cancel := context.WithCancel(parent)

	mgr := series.NewManager(cfg.BestOf, cfg.Mode)
	if len(cfg.PriorResults) > 0 {
		mgr = series.Restore(cfg.BestOf, cfg.Mode, cfg.PriorResults)
	}

	s := &Session{
		code:    code,
		cfg:     cfg,
		inbox:   make(chan Msg, 64),
		state:   engine.NewState(engine.WithExcluded(mgr.ExcludedChampions())),
		gate:    gate.New(),
		series:  mgr,
		clients: make(map[string]client),
		log:     cfg.Logger.With(zap.String("session", code)),
		ctx:     ctx,
		cancel:  cancel,
	}

	go s.loop()
	return s
}

// Inbox exposes the actor's mailbox to the transport layer and tests.
func (s *Session) Inbox() chan<- Msg { return s.inbox }

func (s *Session) Code() string { return s.code }

func (s *Session) loop() {
	for {
		select {
		case <-s.ctx.Done():
			s.shutdown()
			return

		case m := <-s.inbox:
			switch msg := m.(type) {
			case Join:
				s.clients[msg.ClientID] = client{role: msg.Role, outbox: msg.Outbox}
				// Immediate snapshot so a late joiner catches up from a
				// single message. A joiner that cannot even take that is
				// dropped like any slow client; the send must never
				// stall the actor.
				select {
				case msg.Outbox <- s.snapshot():
					s.log.Info("client joined",
						zap.String("client", msg.ClientID),
						zap.String("role", string(msg.Role)))
				default:
					close(msg.Outbox)
					delete(s.clients, msg.ClientID)
				}

			case Leave:
				// Close the outbox so the departed connection's writer
				// drains and exits instead of waiting for shutdown.
				if cl, ok := s.clients[msg.ClientID]; ok {
					close(cl.outbox)
					delete(s.clients, msg.ClientID)
				}

			case FromClient:
				s.handleCommand(msg)

			case GetState:
				msg.Reply <- View{
					Version:    s.version,
					NumClients: len(s.clients),
					Gate:       s.gate.Status(),
					Remaining:  s.remaining,
					ActiveGame: s.series.ActiveGame(),
					State:      s.state,
					Results:    s.series.Results(),
				}

			case PrimeTimer:
				s.gate.Release()
				s.startTurn()

			case timerFired:
				s.handleTick(msg.gen)

			case Shutdown:
				s.shutdown()
				return
			}
		}
	}
}

// handleCommand applies the authorization policy, then the engine.
// Anything illegal is a silent no-op: a stale or misbehaving context
// must never crash the draft for everyone else.
func (s *Session) handleCommand(m FromClient) {
	cl, ok := s.clients[m.ClientID]
	if !ok {
		return
	}
	cmd := m.Cmd

	switch cmd.Type {
	case CmdReady:
		if cmd.Side != engine.SideBlue && cmd.Side != engine.SideRed {
			return
		}
		if !cl.role.AllowsSide(cmd.Side) {
			s.log.Debug("ready rejected",
				zap.String("role", string(cl.role)),
				zap.String("side", string(cmd.Side)))
			return
		}
		if !s.gate.MarkReady(cmd.Side) {
			return
		}
		s.version++
		s.broadcast(Notice{Kind: NoticeReady, Side: cmd.Side})
		if s.gate.Status() == gate.StatusBothReady {
			s.gate.StartCountdown()
			s.broadcast(Notice{Kind: NoticeCountdownStarted, Remaining: gate.StartTicks})
			s.armTimer()
		}
		s.broadcastSnapshot()

	case CmdSelect, CmdLock:
		if !s.started {
			return
		}
		step, active := s.state.ActiveStep()
		if !active {
			return
		}
		side := cmd.Side
		if side == "" {
			// Coordinator contexts act for whichever side is up.
			side = step.Side
		}
		if !cl.role.AllowsSide(side) {
			s.log.Debug("command rejected",
				zap.String("role", string(cl.role)),
				zap.String("side", string(side)))
			return
		}
		if cmd.Type == CmdSelect && s.cfg.Catalog != nil && !s.cfg.Catalog.Contains(cmd.ChampionID) {
			return
		}
		engineCmd := engine.Command{Side: side, ChampionID: cmd.ChampionID}
		if cmd.Type == CmdSelect {
			engineCmd.Type = engine.CmdSelectChampion
		} else {
			engineCmd.Type = engine.CmdLockIn
		}
		s.apply(engineCmd)
	}
}

func (s *Session) apply(cmd engine.Command) {
	events, next, err := engine.Apply(s.state, cmd)
	if err != nil {
		s.log.Debug("engine command dropped",
			zap.String("cmd", string(cmd.Type)),
			zap.Error(err))
		return
	}
	s.state = next
	s.version++

	advanced, completed := false, false
	for _, ev := range events {
		switch ev.Type {
		case engine.EvtChampionSelected:
			s.broadcast(Notice{Kind: NoticeTentative, Side: ev.Side, ChampionID: ev.ChampionID})
		case engine.EvtChampionPicked, engine.EvtChampionBanned:
			s.broadcast(Notice{Kind: NoticeLock, Side: ev.Side, ChampionID: ev.ChampionID})
		case engine.EvtTurnAdvanced:
			advanced = true
		case engine.EvtDraftCompleted:
			completed = true
		}
	}

	if completed {
		s.completeGame()
	} else if advanced {
		s.startTurn()
	}
	s.broadcastSnapshot()
}

func (s *Session) startTurn() {
	s.started = true
	s.remaining = s.cfg.TurnSeconds
	s.armTimer()
}

func (s *Session) handleTick(gen int) {
	if gen != s.timerGen {
		return // stale fire from a cancelled countdown
	}

	if s.gate.Status() == gate.StatusCountdownRunning {
		rem, released := s.gate.Tick()
		s.broadcast(Notice{Kind: NoticeTimerTick, Remaining: rem})
		if released {
			s.disarmTimer()
			s.startTurn()
			s.broadcastSnapshot()
		}
		return
	}

	if !s.started || s.state.Completed() {
		return
	}
	s.remaining--
	if s.remaining > 0 {
		s.broadcast(Notice{Kind: NoticeTimerTick, Remaining: s.remaining})
		return
	}
	s.remaining = 0
	s.broadcast(Notice{Kind: NoticeTimerTick, Remaining: 0})
	// Disarm first so the timeout resolves at most once per turn; a
	// successful advance arms the next turn's countdown itself.
	s.disarmTimer()
	s.apply(engine.Command{Type: engine.CmdTimeoutAdvance})
}

func (s *Session) completeGame() {
	s.disarmTimer()
	idx := s.series.ActiveGame()
	res := series.ResultFromState(idx, s.state)
	if err := s.series.RecordCompletion(res); err != nil {
		s.log.Warn("completion not recorded", zap.Int("game", idx), zap.Error(err))
		return
	}
	s.log.Info("draft completed", zap.Int("game", idx))
	s.broadcast(Notice{Kind: NoticeGameCompleted, GameIndex: idx})

	if s.cfg.Sink != nil {
		// Persistence hand-off must not block the actor loop.
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := s.cfg.Sink.SaveResult(ctx, s.code, res); err != nil {
				s.log.Error("result persistence failed", zap.Int("game", idx), zap.Error(err))
			}
		}()
	}

	if !s.series.Complete() {
		// Next game: fresh draft with series exclusions applied and a
		// new readiness handshake.
		s.state = engine.NewState(
			engine.WithSchedule(s.state.Schedule),
			engine.WithExcluded(s.series.ExcludedChampions()),
		)
		s.gate = gate.New()
		s.started = false
		s.remaining = 0
	}
}

func (s *Session) snapshot() Snapshot {
	remaining := s.remaining
	if s.gate.Status() == gate.StatusCountdownRunning {
		remaining = s.gate.Remaining()
	}
	return Snapshot{
		Version:   s.version,
		GameIndex: s.series.ActiveGame(),
		BlueName:  s.cfg.BlueName,
		RedName:   s.cfg.RedName,
		Gate:      s.gate.Status(),
		Ready:     s.gate.ReadyFlags(),
		Remaining: remaining,
		Draft:     s.state,
		Results:   s.series.Results(),
	}
}

func (s *Session) broadcastSnapshot() {
	s.broadcast(s.snapshot())
}

func (s *Session) broadcast(out Outbound) {
	for id, cl := range s.clients {
		select {
		case cl.outbox <- out:
		default:
			// Client is slow/full - drop them.
			close(cl.outbox)
			delete(s.clients, id)
		}
	}
}

func (s *Session) armTimer() {
	s.disarmTimer()
	s.timerGen++
	gen := s.timerGen
	stop := make(chan struct{})
	s.timerStop = stop
	interval := s.cfg.TickInterval

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-s.ctx.Done():
				return
			case <-ticker.C:
				select {
				case s.inbox <- timerFired{gen: gen}:
				case <-stop:
					return
				case <-s.ctx.Done():
					return
				}
			}
		}
	}()
}

func (s *Session) disarmTimer() {
	if s.timerStop != nil {
		close(s.timerStop)
		s.timerStop = nil
	}
}

func (s *Session) shutdown() {
	s.disarmTimer()
	for id, cl := range s.clients {
		close(cl.outbox) // tell client no more messages
		delete(s.clients, id)
	}
	s.cancel()
}
