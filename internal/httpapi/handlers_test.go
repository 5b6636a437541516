package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"riftdraft/internal/hub"
	"riftdraft/internal/roster"
	"riftdraft/internal/series"
	"riftdraft/internal/store"
)

// fakeArchive stands in for the postgres store in handler tests.
type fakeArchive struct {
	results map[string][]series.GameResult
	winners map[string]string
}

func (f *fakeArchive) Results(_ context.Context, code string) ([]series.GameResult, error) {
	return f.results[code], nil
}

func (f *fakeArchive) SetWinner(_ context.Context, code string, gameIndex int, winner string) error {
	for _, res := range f.results[code] {
		if res.GameIndex == gameIndex {
			f.winners[fmt.Sprintf("%s/%d", code, gameIndex)] = winner
			return nil
		}
	}
	return store.ErrNotFound
}

func newTestAPI(t *testing.T) *API {
	t.Helper()
	return newTestAPIWithArchive(t, nil)
}

func newTestAPIWithArchive(t *testing.T, archive ResultArchive) *API {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	h := hub.NewHub(ctx, hub.Deps{})
	return New(h, "http://draft.test", 30, archive, roster.DefaultCatalog(), nil)
}

func createSession(t *testing.T, srv http.Handler, body string) createSessionResponse {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/sessions", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp createSessionResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestGenerateCodeShape(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		code, err := GenerateCode()
		require.NoError(t, err)
		require.Len(t, code, 6)
		require.Equal(t, strings.ToUpper(code), code)
		seen[code] = true
	}
	// 50 six-character codes colliding would be astonishing.
	require.Greater(t, len(seen), 1)
}

func TestCreateSessionReturnsCodeAndLinks(t *testing.T) {
	srv := newTestAPI(t).Routes()

	resp := createSession(t, srv, `{"blue_name":"T1","red_name":"GenG","best_of":3,"mode":"fearless"}`)
	require.Len(t, resp.Code, 6)

	for side, link := range map[string]string{
		"blue":     resp.Links.Blue,
		"red":      resp.Links.Red,
		"spectate": resp.Links.Spectator,
	} {
		u, err := url.Parse(link)
		require.NoError(t, err)
		require.Equal(t, "/draft", u.Path)
		require.Equal(t, resp.Code, u.Query().Get("code"))
		require.Equal(t, side, u.Query().Get("side"))
		require.Equal(t, "1", u.Query().Get("game"))
	}
}

func TestCreateSessionEmptyBodyUsesDefaults(t *testing.T) {
	srv := newTestAPI(t).Routes()
	resp := createSession(t, srv, "")
	require.Len(t, resp.Code, 6)
}

func TestCreateSessionResumesSeries(t *testing.T) {
	archive := &fakeArchive{
		results: map[string][]series.GameResult{
			"RESUME": {{
				GameIndex: 1,
				Blue:      series.TeamResult{Picks: []string{"ahri"}, Bans: []string{"zed"}},
				Red:       series.TeamResult{Picks: []string{"jinx"}, Bans: []string{"vi"}},
			}},
		},
		winners: map[string]string{},
	}
	srv := newTestAPIWithArchive(t, archive).Routes()

	resp := createSession(t, srv, `{"code":"RESUME","resume":true,"best_of":3,"mode":"fearless"}`)
	require.Equal(t, "RESUME", resp.Code)

	// Game 1 is already recorded, so the resumed series is on game 2 and
	// its links must be served without a 403.
	u, err := url.Parse(resp.Links.Blue)
	require.NoError(t, err)
	require.Equal(t, "2", u.Query().Get("game"))

	req := httptest.NewRequest(http.MethodGet, "/sessions/RESUME/links?game=2", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestResumeWithoutCodeRejected(t *testing.T) {
	srv := newTestAPIWithArchive(t, &fakeArchive{winners: map[string]string{}}).Routes()

	req := httptest.NewRequest(http.MethodPost, "/sessions", bytes.NewBufferString(`{"resume":true}`))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestResumeWithoutArchiveUnavailable(t *testing.T) {
	srv := newTestAPI(t).Routes()

	req := httptest.NewRequest(http.MethodPost, "/sessions", bytes.NewBufferString(`{"code":"RESUME","resume":true}`))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestSetWinner(t *testing.T) {
	archive := &fakeArchive{
		results: map[string][]series.GameResult{
			"WIN000": {{GameIndex: 1}},
		},
		winners: map[string]string{},
	}
	srv := newTestAPIWithArchive(t, archive).Routes()

	req := httptest.NewRequest(http.MethodPost, "/sessions/WIN000/results/1/winner",
		bytes.NewBufferString(`{"winner":"blue"}`))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Equal(t, "blue", archive.winners["WIN000/1"])

	// Unknown game index answers 404.
	req = httptest.NewRequest(http.MethodPost, "/sessions/WIN000/results/9/winner",
		bytes.NewBufferString(`{"winner":"blue"}`))
	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNotFound, rec.Code)

	// Only blue or red may win.
	req = httptest.NewRequest(http.MethodPost, "/sessions/WIN000/results/1/winner",
		bytes.NewBufferString(`{"winner":"chaos"}`))
	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSetWinnerWithoutArchiveUnavailable(t *testing.T) {
	srv := newTestAPI(t).Routes()

	req := httptest.NewRequest(http.MethodPost, "/sessions/WIN000/results/1/winner",
		bytes.NewBufferString(`{"winner":"blue"}`))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestLinksForActiveGame(t *testing.T) {
	srv := newTestAPI(t).Routes()
	resp := createSession(t, srv, `{"best_of":3}`)

	req := httptest.NewRequest(http.MethodGet, "/sessions/"+resp.Code+"/links", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var links joinLinks
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&links))
	require.Contains(t, links.Blue, "code="+resp.Code)
}

func TestLinksForInaccessibleGameForbidden(t *testing.T) {
	srv := newTestAPI(t).Routes()
	resp := createSession(t, srv, `{"best_of":3}`)

	// Game 2 is locked until game 1 completes.
	req := httptest.NewRequest(http.MethodGet, "/sessions/"+resp.Code+"/links?game=2", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	require.Equal(t, http.StatusForbidden, rec.Code)
	require.Contains(t, rec.Body.String(), "not accessible")
}

func TestLinksBadGameParam(t *testing.T) {
	srv := newTestAPI(t).Routes()
	resp := createSession(t, srv, "")

	req := httptest.NewRequest(http.MethodGet, "/sessions/"+resp.Code+"/links?game=abc", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLinksUnknownSessionNotFound(t *testing.T) {
	srv := newTestAPI(t).Routes()

	req := httptest.NewRequest(http.MethodGet, "/sessions/ZZZZZZ/links", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestQRServesPNG(t *testing.T) {
	srv := newTestAPI(t).Routes()
	resp := createSession(t, srv, "")

	req := httptest.NewRequest(http.MethodGet, "/sessions/"+resp.Code+"/qr?side=blue", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	// PNG magic bytes
	require.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("\x89PNG")))
}

func TestQRRejectsUnknownSide(t *testing.T) {
	srv := newTestAPI(t).Routes()
	resp := createSession(t, srv, "")

	req := httptest.NewRequest(http.MethodGet, "/sessions/"+resp.Code+"/qr?side=purple", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChampionsListsCatalog(t *testing.T) {
	srv := newTestAPI(t).Routes()

	req := httptest.NewRequest(http.MethodGet, "/champions", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var champs []roster.Champion
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&champs))
	require.NotEmpty(t, champs)
	require.NotEmpty(t, champs[0].ID)
}

func TestHealthz(t *testing.T) {
	srv := newTestAPI(t).Routes()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
}
