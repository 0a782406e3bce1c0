package adaptor

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/ponyo877/roomchat/server/domain"
	"github.com/stretchr/testify/require"
)

func TestRouter_Up(t *testing.T) {
	req := require.New(t)
	relay, _, log := startRelay(t)
	router := NewRouter(log, relay, http.NotFoundHandler(), "")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/up", nil))

	req.Equal(http.StatusOK, rec.Code)
	req.Equal("OK\n", rec.Body.String())
}

func TestRouter_Stats(t *testing.T) {
	req := require.New(t)
	relay, hub, log := startRelay(t)
	router := NewRouter(log, relay, http.NotFoundHandler(), "")

	// Given one connection in room x
	sink := make(chan domain.Outbound, 8)
	req.NoError(relay.Submit(context.Background(), domain.NewConnected("A", sink)))
	req.NoError(relay.Submit(context.Background(), domain.NewEnterRoom("A", "Alice", "x")))

	// When stats are requested
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/stats", nil))

	// Then they reflect the relay state
	req.Equal(http.StatusOK, rec.Code)
	var stats domain.Stats
	req.NoError(json.NewDecoder(rec.Body).Decode(&stats))
	req.Equal(1, stats.ActiveRooms)
	req.Equal(1, stats.ActiveSessions)
	req.Equal(1, stats.Connections)
	req.Equal(hub.ConnectionCount(), stats.Connections)
}

func TestRouter_StaticFiles(t *testing.T) {
	req := require.New(t)
	dir := t.TempDir()
	req.NoError(os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>chat</h1>"), 0o644))
	relay, _, log := startRelay(t)
	srv := httptest.NewServer(NewRouter(log, relay, http.NotFoundHandler(), dir))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/")
	req.NoError(err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	req.NoError(err)

	req.Equal(http.StatusOK, resp.StatusCode)
	req.Equal("<h1>chat</h1>", string(body))
}
