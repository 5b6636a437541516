package httpapi

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	qrcode "github.com/skip2/go-qrcode"
	"go.uber.org/zap"

	"riftdraft/internal/hub"
	"riftdraft/internal/roster"
	"riftdraft/internal/series"
	"riftdraft/internal/session"
	"riftdraft/internal/store"
)

const qrSize = 256

// ResultArchive is the persisted-results side of the store: prior games
// loaded when a session is resumed, and the winner attached after a
// match has actually been played. Nil when persistence is disabled.
type ResultArchive interface {
	Results(ctx context.Context, code string) ([]series.GameResult, error)
	SetWinner(ctx context.Context, code string, gameIndex int, winner string) error
}

type API struct {
	hub         *hub.Hub
	baseURL     string
	turnSeconds int
	archive     ResultArchive
	catalog     *roster.Catalog
	log         *zap.Logger
}

// New builds the handler set. turnSeconds is the per-turn countdown
// applied when a create request does not specify its own.
func New(h *hub.Hub, baseURL string, turnSeconds int, archive ResultArchive, catalog *roster.Catalog, log *zap.Logger) *API {
	if log == nil {
		log = zap.NewNop()
	}
	return &API{hub: h, baseURL: baseURL, turnSeconds: turnSeconds, archive: archive, catalog: catalog, log: log}
}

func GenerateCode() (string, error) {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	code := make([]byte, 6)
	for i := 0; i < 6; i++ {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			return "", err
		}
		code[i] = charset[num.Int64()]
	}
	return string(code), nil
}

type createSessionRequest struct {
	BlueName    string `json:"blue_name"`
	RedName     string `json:"red_name"`
	TurnSeconds int    `json:"turn_seconds"`
	BestOf      int    `json:"best_of"`
	Mode        string `json:"mode"`

	// Code plus Resume restart a previously persisted series under its
	// original code, seeding the session with the recorded games.
	Code   string `json:"code"`
	Resume bool   `json:"resume"`
}

type joinLinks struct {
	Blue      string `json:"blue"`
	Red       string `json:"red"`
	Spectator string `json:"spectator"`
}

type createSessionResponse struct {
	Code  string    `json:"code"`
	Links joinLinks `json:"links"`
}

func (a *API) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if r.Body != nil {
		// An empty body creates a session with defaults.
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	mode := series.ModeStandard
	if req.Mode == string(series.ModeFearless) {
		mode = series.ModeFearless
	}

	var code string
	var prior []series.GameResult
	if req.Resume {
		if req.Code == "" {
			http.Error(w, "resume requires a code", http.StatusBadRequest)
			return
		}
		if a.archive == nil {
			http.Error(w, "results are not persisted, nothing to resume", http.StatusServiceUnavailable)
			return
		}
		results, err := a.archive.Results(r.Context(), req.Code)
		if err != nil {
			a.log.Error("loading prior results failed", zap.String("code", req.Code), zap.Error(err))
			http.Error(w, "failed to load prior results", http.StatusInternalServerError)
			return
		}
		code = req.Code
		prior = results
	} else {
		for {
			c, err := GenerateCode()
			if err != nil {
				http.Error(w, "failed to generate code", http.StatusInternalServerError)
				return
			}
			reply := make(chan *session.Session, 1)
			a.hub.Inbox() <- hub.GetSession{Code: c, Reply: reply}
			if <-reply == nil {
				code = c
				break
			}
			a.log.Debug("collision on code, regenerating", zap.String("code", c))
		}
	}

	turnSeconds := req.TurnSeconds
	if turnSeconds <= 0 {
		turnSeconds = a.turnSeconds
	}

	cfg := session.Config{
		BlueName:     req.BlueName,
		RedName:      req.RedName,
		TurnSeconds:  turnSeconds,
		BestOf:       req.BestOf,
		Mode:         mode,
		Catalog:      a.catalog,
		PriorResults: prior,
	}
	reply := make(chan *session.Session, 1)
	a.hub.Inbox() <- hub.EnsureSession{Code: code, Config: cfg, Reply: reply}
	s := <-reply
	if s == nil {
		http.Error(w, "failed to create session", http.StatusInternalServerError)
		return
	}
	a.log.Info("session created",
		zap.String("code", code),
		zap.Int("best_of", cfg.BestOf),
		zap.Bool("resumed", req.Resume))

	activeGame := 1
	if req.Resume {
		viewReply := make(chan session.View, 1)
		s.Inbox() <- session.GetState{Reply: viewReply}
		select {
		case view := <-viewReply:
			activeGame = view.ActiveGame
		case <-time.After(time.Second):
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(createSessionResponse{
		Code:  code,
		Links: a.linksFor(code, activeGame),
	})
}

type setWinnerRequest struct {
	Winner string `json:"winner"`
}

// SetWinner attaches the played match's outcome to a recorded draft.
// The draft itself always completes with the winner unknown.
func (a *API) SetWinner(w http.ResponseWriter, r *http.Request) {
	if a.archive == nil {
		http.Error(w, "results are not persisted", http.StatusServiceUnavailable)
		return
	}
	code := chi.URLParam(r, "code")
	game, err := strconv.Atoi(chi.URLParam(r, "game"))
	if err != nil || game < 1 {
		http.Error(w, "invalid game index", http.StatusBadRequest)
		return
	}

	var req setWinnerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}
	switch req.Winner {
	case "blue", "red":
	default:
		http.Error(w, "winner must be blue or red", http.StatusBadRequest)
		return
	}

	if err := a.archive.SetWinner(r.Context(), code, game, req.Winner); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			http.Error(w, "no recorded result for that game", http.StatusNotFound)
			return
		}
		a.log.Error("set winner failed", zap.String("code", code), zap.Int("game", game), zap.Error(err))
		http.Error(w, "failed to set winner", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Links serves the per-role join references for one game of a session.
// Asking for a game beyond the active one is the single denial that is
// reported to the user rather than swallowed.
func (a *API) Links(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	view, ok := a.sessionView(w, code)
	if !ok {
		return
	}

	game := view.ActiveGame
	if raw := r.URL.Query().Get("game"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "invalid game index", http.StatusBadRequest)
			return
		}
		game = n
	}
	if game < 1 || game > view.ActiveGame {
		http.Error(w, fmt.Sprintf("game %d is not accessible yet", game), http.StatusForbidden)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(a.linksFor(code, game))
}

// QR renders one join reference as a PNG QR code.
func (a *API) QR(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	view, ok := a.sessionView(w, code)
	if !ok {
		return
	}

	side := r.URL.Query().Get("side")
	switch side {
	case "blue", "red", "spectate":
	default:
		http.Error(w, "invalid side", http.StatusBadRequest)
		return
	}

	link := a.joinLink(code, side, view.ActiveGame)
	png, err := qrcode.Encode(link, qrcode.Medium, qrSize)
	if err != nil {
		http.Error(w, "failed to render qr", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(png)
}

// Champions serves the roster catalog consumed by draft UIs.
func (a *API) Champions(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if a.catalog == nil {
		_ = json.NewEncoder(w).Encode([]roster.Champion{})
		return
	}
	_ = json.NewEncoder(w).Encode(a.catalog.All())
}

func Healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func (a *API) sessionView(w http.ResponseWriter, code string) (session.View, bool) {
	reply := make(chan *session.Session, 1)
	a.hub.Inbox() <- hub.GetSession{Code: code, Reply: reply}
	s := <-reply
	if s == nil {
		http.Error(w, "session not found", http.StatusNotFound)
		return session.View{}, false
	}

	viewReply := make(chan session.View, 1)
	s.Inbox() <- session.GetState{Reply: viewReply}
	select {
	case view := <-viewReply:
		return view, true
	case <-time.After(time.Second):
		http.Error(w, "session unavailable", http.StatusServiceUnavailable)
		return session.View{}, false
	}
}

func (a *API) linksFor(code string, game int) joinLinks {
	return joinLinks{
		Blue:      a.joinLink(code, "blue", game),
		Red:       a.joinLink(code, "red", game),
		Spectator: a.joinLink(code, "spectate", game),
	}
}

func (a *API) joinLink(code, side string, game int) string {
	q := url.Values{}
	q.Set("code", code)
	q.Set("side", side)
	q.Set("game", strconv.Itoa(game))
	return fmt.Sprintf("%s/draft?%s", a.baseURL, q.Encode())
}
