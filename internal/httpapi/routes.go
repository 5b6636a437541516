package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"riftdraft/internal/ws"
)

func (a *API) Routes() http.Handler {
	r := chi.NewRouter()

	// Public routes
	r.Post("/sessions", a.CreateSession)
	r.Get("/sessions/{code}/links", a.Links)
	r.Get("/sessions/{code}/qr", a.QR)
	r.Post("/sessions/{code}/results/{game}/winner", a.SetWinner)
	r.Get("/champions", a.Champions)
	r.Get("/healthz", Healthz)
	r.Get("/ws", ws.Handler(a.hub))
	return r
}
