package hub

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"riftdraft/internal/session"
)

func ask(t *testing.T, h *Hub, msg HubMsg, reply chan *session.Session) *session.Session {
	t.Helper()
	h.Inbox() <- msg
	select {
	case s := <-reply:
		return s
	case <-time.After(time.Second):
		t.Fatalf("hub did not reply")
		return nil // unreachable
	}
}

func TestCreateThenGetReturnsSameSession(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	h := NewHub(ctx, Deps{})

	reply := make(chan *session.Session, 1)
	created := ask(t, h, CreateSession{Code: "AAAAAA", Config: session.Config{}, Reply: reply}, reply)
	require.NotNil(t, created)
	require.Equal(t, "AAAAAA", created.Code())

	got := ask(t, h, GetSession{Code: "AAAAAA", Reply: reply}, reply)
	require.Same(t, created, got)
}

func TestGetUnknownCodeReturnsNil(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	h := NewHub(ctx, Deps{})

	reply := make(chan *session.Session, 1)
	require.Nil(t, ask(t, h, GetSession{Code: "NOPE00", Reply: reply}, reply))
}

func TestCreateExistingCodeReturnsExisting(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	h := NewHub(ctx, Deps{})

	reply := make(chan *session.Session, 1)
	first := ask(t, h, CreateSession{Code: "DUP000", Reply: reply}, reply)
	second := ask(t, h, CreateSession{Code: "DUP000", Reply: reply}, reply)
	require.Same(t, first, second)
}

func TestEnsureSessionCreatesOnce(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	h := NewHub(ctx, Deps{})

	reply := make(chan *session.Session, 1)
	first := ask(t, h, EnsureSession{Code: "ENS000", Reply: reply}, reply)
	require.NotNil(t, first)
	second := ask(t, h, EnsureSession{Code: "ENS000", Reply: reply}, reply)
	require.Same(t, first, second)
}

func TestRemoveSessionForgetsCode(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	h := NewHub(ctx, Deps{})

	reply := make(chan *session.Session, 1)
	ask(t, h, CreateSession{Code: "GONE00", Reply: reply}, reply)

	h.Inbox() <- RemoveSession{Code: "GONE00"}
	require.Nil(t, ask(t, h, GetSession{Code: "GONE00", Reply: reply}, reply))
}
