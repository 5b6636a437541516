// Package ws bridges websocket connections onto a session's inbox and
// outbox. Each connection is one execution context: role fixed at join,
// writes serialized by a single writer goroutine so messages from this
// sender arrive in order.
package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"

	"riftdraft/internal/engine"
	"riftdraft/internal/hub"
	"riftdraft/internal/session"
	"riftdraft/internal/types"
)

const writeTimeout = 3 * time.Second

func Handler(h *hub.Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code := r.URL.Query().Get("code")
		if code == "" {
			http.Error(w, "missing code", http.StatusBadRequest)
			return
		}
		role, ok := session.RoleFromParam(r.URL.Query().Get("side"))
		if !ok {
			http.Error(w, "invalid side", http.StatusBadRequest)
			return
		}

		reply := make(chan *session.Session, 1)
		h.Inbox() <- hub.GetSession{Code: code, Reply: reply}
		s := <-reply
		if s == nil {
			http.Error(w, "session not found", http.StatusNotFound)
			return
		}

		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{})
		if err != nil {
			return
		}
		defer conn.Close(websocket.StatusNormalClosure, "bye")

		out := make(chan session.Outbound, 16)
		clientID := uuid.NewString()

		s.Inbox() <- session.Join{ClientID: clientID, Role: role, Outbox: out}
		defer func() { s.Inbox() <- session.Leave{ClientID: clientID} }()

		// Writer goroutine
		writeCtx, writeCancel := context.WithCancel(r.Context())
		defer writeCancel()
		go func() {
			for ob := range out {
				payload, err := json.Marshal(toServerMessage(ob))
				if err != nil {
					continue
				}
				ctx, cancel := context.WithTimeout(writeCtx, writeTimeout)
				_ = conn.Write(ctx, websocket.MessageText, payload)
				cancel()
			}
		}()

		// Reader loop
		for {
			_, data, err := conn.Read(r.Context())
			if err != nil {
				// Treat clean close/going-away as normal:
				switch websocket.CloseStatus(err) {
				case websocket.StatusNormalClosure, websocket.StatusGoingAway:
					return
				}
				// Otherwise, just exit (session.Leave in defer):
				return
			}

			var cm types.ClientMessage
			if err := json.Unmarshal(data, &cm); err != nil {
				writeError(r.Context(), conn, "bad json")
				continue
			}

			cmd, ok := toCommand(cm)
			if !ok {
				writeError(r.Context(), conn, "unknown type")
				continue
			}

			s.Inbox() <- session.FromClient{ClientID: clientID, Cmd: cmd}
		}
	}
}

func writeError(ctx context.Context, conn *websocket.Conn, msg string) {
	payload, _ := json.Marshal(types.ServerMessage{Type: types.MsgError, Error: msg})
	wctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	_ = conn.Write(wctx, websocket.MessageText, payload)
}

func toCommand(m types.ClientMessage) (session.Command, bool) {
	// Side may be empty for coordinator contexts; the session resolves
	// it to the active turn's side.
	side, ok := parseSide(m.Side)
	if !ok {
		return session.Command{}, false
	}

	switch m.Type {
	case types.MsgSelectChampion:
		return session.Command{Type: session.CmdSelect, Side: side, ChampionID: m.ChampionID}, true
	case types.MsgLockIn:
		return session.Command{Type: session.CmdLock, Side: side, ChampionID: m.ChampionID}, true
	case types.MsgMarkReady:
		return session.Command{Type: session.CmdReady, Side: side}, true
	default:
		return session.Command{}, false
	}
}

func parseSide(side string) (engine.Side, bool) {
	switch side {
	case "":
		return "", true
	case "blue":
		return engine.SideBlue, true
	case "red":
		return engine.SideRed, true
	default:
		return "", false
	}
}

func toServerMessage(ob session.Outbound) types.ServerMessage {
	switch v := ob.(type) {
	case session.Snapshot:
		return types.ServerMessage{
			Type:    types.MsgStateSnapshot,
			Version: v.Version,
			State: &types.Snapshot{
				Version:   v.Version,
				GameIndex: v.GameIndex,
				BlueName:  v.BlueName,
				RedName:   v.RedName,
				Gate:      v.Gate,
				Ready:     v.Ready,
				Remaining: v.Remaining,
				Draft:     v.Draft,
				Results:   v.Results,
			},
		}
	case session.Notice:
		msg := types.ServerMessage{
			Side:       string(v.Side),
			ChampionID: v.ChampionID,
			Remaining:  v.Remaining,
			GameIndex:  v.GameIndex,
		}
		switch v.Kind {
		case session.NoticeTentative:
			msg.Type = types.MsgTentativeSelection
		case session.NoticeLock:
			msg.Type = types.MsgConfirmedLock
		case session.NoticeTimerTick:
			msg.Type = types.MsgTimerTick
		case session.NoticeReady:
			msg.Type = types.MsgReadinessMarked
		case session.NoticeCountdownStarted:
			msg.Type = types.MsgCountdownStarted
		case session.NoticeGameCompleted:
			msg.Type = types.MsgGameCompleted
		}
		return msg
	default:
		return types.ServerMessage{Type: types.MsgError, Error: "unknown outbound"}
	}
}
