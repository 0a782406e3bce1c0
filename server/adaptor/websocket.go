package adaptor

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/ponyo877/roomchat/server/domain"
	"github.com/samber/lo"
)

const (
	writeWait     = 10 * time.Second
	pongWait      = 60 * time.Second
	pingPeriod    = (pongWait * 9) / 10
	maxFrameBytes = 16 * 1024

	productionEnvironment = "production"
)

// OriginPolicy decides which browser origins may open a socket. Same-origin
// requests are always accepted; AllowedOrigins only count outside production.
type OriginPolicy struct {
	Environment    string
	AllowedOrigins []string
}

func (p OriginPolicy) Check(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	if strings.EqualFold(u.Host, r.Host) {
		return true
	}
	if p.Environment == productionEnvironment {
		return false
	}
	return lo.Contains(p.AllowedOrigins, origin)
}

type WebSocketAdaptor struct {
	log        *slog.Logger
	relay      Relay
	upgrader   websocket.Upgrader
	sendBuffer int
}

func NewWebSocketAdaptor(log *slog.Logger, relay Relay, policy OriginPolicy, sendBuffer int) *WebSocketAdaptor {
	return &WebSocketAdaptor{
		log:   log,
		relay: relay,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     policy.Check,
		},
		sendBuffer: sendBuffer,
	}
}

func (a *WebSocketAdaptor) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := a.upgrader.Upgrade(w, r, nil)
	if err != nil {
		a.log.Debug("WebSocket upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}

	ctx := r.Context()
	id := uuid.NewString()
	sink := make(chan domain.Outbound, a.sendBuffer)
	if err := a.relay.Submit(ctx, domain.NewConnected(id, sink)); err != nil {
		a.log.Warn("Relay refused connection", "connection", id, "error", err)
		conn.Close()
		return
	}
	a.log.Debug("WebSocket opened", "connection", id, "remote", r.RemoteAddr)

	go a.writer(conn, id, sink)
	a.reader(ctx, conn, id)

	if err := a.relay.Submit(context.WithoutCancel(ctx), domain.NewDisconnected(id)); err != nil {
		a.log.Debug("Disconnect not delivered", "connection", id, "error", err)
	}
}

func (a *WebSocketAdaptor) reader(ctx context.Context, conn *websocket.Conn, id string) {
	defer conn.Close()

	conn.SetReadLimit(maxFrameBytes)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				a.log.Debug("WebSocket closed unexpectedly", "connection", id, "error", err)
			}
			return
		}

		in, err := DecodeMessage(id, message)
		if err != nil {
			a.log.Debug("Dropping frame", "connection", id, "error", err)
			continue
		}
		if err := a.relay.Submit(ctx, in); err != nil {
			return
		}
	}
}

func (a *WebSocketAdaptor) writer(conn *websocket.Conn, id string, sink <-chan domain.Outbound) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		conn.Close()
	}()

	for {
		select {
		case out, ok := <-sink:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			message, err := EncodeOutbound(out)
			if err != nil {
				a.log.Warn("Failed to encode outbound event", "connection", id, "event", out.Event, "error", err)
				continue
			}
			if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-a.relay.Done():
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"))
			return
		}
	}
}
