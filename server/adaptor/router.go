package adaptor

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter serves the socket endpoint, health and stats, and the static
// client when staticDir is set.
func NewRouter(log *slog.Logger, relay Relay, ws http.Handler, staticDir string) *mux.Router {
	r := mux.NewRouter()
	r.Handle("/ws", ws)
	r.HandleFunc("/up", up).Methods(http.MethodGet, http.MethodHead)
	r.HandleFunc("/stats", stats(log, relay)).Methods(http.MethodGet)
	if staticDir != "" {
		r.PathPrefix("/").Handler(http.FileServer(http.Dir(staticDir)))
	}
	return r
}

func up(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK\n"))
}

func stats(log *slog.Logger, relay Relay) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, err := relay.Stats(r.Context())
		if err != nil {
			log.Warn("Failed to read relay stats", "error", err)
			http.Error(w, "relay unavailable", http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(s); err != nil {
			log.Warn("Failed to write relay stats", "error", err)
		}
	}
}
