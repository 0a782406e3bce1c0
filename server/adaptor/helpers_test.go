package adaptor

import (
	"context"
	"log/slog"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/ponyo877/roomchat/server/domain"
	"github.com/ponyo877/roomchat/server/usecase"
)

// startRelay runs a real relay over an in-memory store until the test ends.
func startRelay(t *testing.T) (*usecase.Relay, *Hub, *slog.Logger) {
	t.Helper()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	hub := NewHub(log)
	coordinator := usecase.NewSessionCoordinator(domain.NewPresenceStore())
	relay := usecase.NewRelay(log, coordinator, hub, nil, 0)

	ctx, cancel := context.WithCancel(context.Background())
	go relay.Run(ctx)
	t.Cleanup(func() {
		cancel()
		<-relay.Done()
	})
	return relay, hub, log
}
