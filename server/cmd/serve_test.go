package cmd

import (
	"context"
	"net"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig_EnvOverridesDefaults(t *testing.T) {
	req := require.New(t)
	t.Setenv("PORT", "4100")
	t.Setenv("GRPC_PORT", "0")
	t.Setenv("APP_ENV", "production")

	cfg, err := loadConfig()

	req.NoError(err)
	req.Equal(4100, cfg.Port)
	req.Equal(0, cfg.GRPCPort)
	req.Equal("production", cfg.Environment)
	req.Equal([]string{"http://localhost:5500", "http://127.0.0.1:5500"}, cfg.AllowedOrigins)
	req.Equal(256, cfg.InboxSize)
	req.Equal(5*time.Second, cfg.ShutdownTimeout)
}

func TestServe_PortInUseAbortsStartup(t *testing.T) {
	req := require.New(t)
	taken, err := net.Listen("tcp", ":0")
	req.NoError(err)
	defer taken.Close()

	cfg := Config{
		Port:            taken.Addr().(*net.TCPAddr).Port,
		LogLevel:        "error",
		InboxSize:       1,
		SendBuffer:      1,
		ShutdownTimeout: time.Second,
	}

	err = serve(context.Background(), cfg)

	req.ErrorContains(err, "failed to listen")
}

func TestServe_StopsOnCancel(t *testing.T) {
	req := require.New(t)
	cfg := Config{
		LogLevel:        "error",
		Journal:         filepath.Join(t.TempDir(), "journal.db"),
		InboxSize:       1,
		SendBuffer:      1,
		ShutdownTimeout: time.Second,
	}
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- serve(ctx, cfg) }()
	cancel()

	select {
	case err := <-done:
		req.NoError(err)
	case <-time.After(5 * time.Second):
		req.Fail("serve did not stop")
	}
}
