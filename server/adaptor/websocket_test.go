package adaptor

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	pb "github.com/ponyo877/roomchat/grpc"
	"github.com/ponyo877/roomchat/server/domain"
	"github.com/stretchr/testify/require"
)

func startWebSocketServer(t *testing.T, policy OriginPolicy) *httptest.Server {
	t.Helper()
	relay, _, log := startRelay(t)
	ws := NewWebSocketAdaptor(log, relay, policy, 32)
	srv := httptest.NewServer(NewRouter(log, relay, ws, ""))
	t.Cleanup(srv.Close)
	return srv
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	u := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(u, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readFrame(t *testing.T, conn *websocket.Conn) pb.Frame {
	t.Helper()
	req := require.New(t)
	req.NoError(conn.SetReadDeadline(time.Now().Add(2 * time.Second)))
	_, b, err := conn.ReadMessage()
	req.NoError(err)
	f, err := pb.UnmarshalFrame(b)
	req.NoError(err)
	return f
}

func readMessage(t *testing.T, conn *websocket.Conn) domain.Message {
	t.Helper()
	f := readFrame(t, conn)
	require.Equal(t, string(domain.EventMessage), f.Event)
	var m domain.Message
	require.NoError(t, f.Decode(&m))
	return m
}

func readUserNames(t *testing.T, conn *websocket.Conn) []string {
	t.Helper()
	f := readFrame(t, conn)
	require.Equal(t, string(domain.EventUserList), f.Event)
	var list domain.UserList
	require.NoError(t, f.Decode(&list))
	names := make([]string, 0, len(list.Users))
	for _, u := range list.Users {
		names = append(names, u.Name)
	}
	return names
}

func readRooms(t *testing.T, conn *websocket.Conn) []string {
	t.Helper()
	f := readFrame(t, conn)
	require.Equal(t, string(domain.EventRoomList), f.Event)
	var list domain.RoomList
	require.NoError(t, f.Decode(&list))
	return list.Rooms
}

func send(t *testing.T, conn *websocket.Conn, event string, payload any) {
	t.Helper()
	b, err := pb.MarshalFrame(event, payload)
	require.NoError(t, err)
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, b))
}

func TestWebSocket_RoomConversation(t *testing.T) {
	req := require.New(t)
	srv := startWebSocketServer(t, OriginPolicy{Environment: "development"})

	// Given Alice connects and enters x
	alice := dial(t, srv)
	req.True(strings.HasPrefix(readMessage(t, alice).Text, "Welcome to the chat "))
	send(t, alice, "enterRoom", map[string]string{"name": "Alice", "room": "x"})
	req.Equal("You've joined the x chat room", readMessage(t, alice).Text)
	req.Equal([]string{"Alice"}, readUserNames(t, alice))
	req.Equal([]string{"x"}, readRooms(t, alice))

	// When Bob connects and enters x
	bob := dial(t, srv)
	readMessage(t, bob)
	send(t, bob, "enterRoom", map[string]string{"name": "Bob", "room": "x"})

	// Then Bob gets his own join notifications
	req.Equal("You've joined the x chat room", readMessage(t, bob).Text)
	req.ElementsMatch([]string{"Alice", "Bob"}, readUserNames(t, bob))
	req.Equal([]string{"x"}, readRooms(t, bob))

	// And Alice hears about Bob
	joined := readMessage(t, alice)
	req.Equal(domain.AdminName, joined.Name)
	req.Equal("Bob has joined the room", joined.Text)
	req.ElementsMatch([]string{"Alice", "Bob"}, readUserNames(t, alice))
	req.Equal([]string{"x"}, readRooms(t, alice))

	// When Alice talks, both see the line
	send(t, alice, "message", map[string]string{"name": "Alice", "text": "hello"})
	for _, conn := range []*websocket.Conn{alice, bob} {
		m := readMessage(t, conn)
		req.Equal("Alice", m.Name)
		req.Equal("hello", m.Text)
		req.Len(m.Time, len("15:04:05"))
	}

	// When Bob types, only Alice is told
	send(t, bob, "activity", "Bob")
	f := readFrame(t, alice)
	req.Equal(string(domain.EventActivity), f.Event)
	var typing string
	req.NoError(f.Decode(&typing))
	req.Equal("Bob", typing)

	// When Bob goes away, Alice is told and x keeps only her
	req.NoError(bob.Close())
	req.Equal("Bob has left the room", readMessage(t, alice).Text)
	req.Equal([]string{"Alice"}, readUserNames(t, alice))
	req.Equal([]string{"x"}, readRooms(t, alice))
}

func TestWebSocket_MalformedFramesAreIgnored(t *testing.T) {
	req := require.New(t)
	srv := startWebSocketServer(t, OriginPolicy{Environment: "development"})

	alice := dial(t, srv)
	readMessage(t, alice)
	send(t, alice, "enterRoom", map[string]string{"name": "Alice", "room": "x"})
	readMessage(t, alice)
	readUserNames(t, alice)
	readRooms(t, alice)

	// When garbage arrives before a valid line
	req.NoError(alice.WriteMessage(websocket.TextMessage, []byte("garbage")))
	req.NoError(alice.WriteMessage(websocket.TextMessage, []byte(`{"event":"shout","data":"hey"}`)))
	send(t, alice, "enterRoom", map[string]string{"name": "Alice"})
	send(t, alice, "message", map[string]string{"name": "Alice", "text": "still here"})

	// Then the connection survives and only the valid line comes back
	req.Equal("still here", readMessage(t, alice).Text)
}

func TestWebSocket_OriginPolicy(t *testing.T) {
	req := require.New(t)
	srv := startWebSocketServer(t, OriginPolicy{
		Environment:    "production",
		AllowedOrigins: []string{"http://localhost:5500"},
	})
	u := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"

	header := http.Header{}
	header.Set("Origin", "http://localhost:5500")
	_, resp, err := websocket.DefaultDialer.Dial(u, header)

	req.ErrorIs(err, websocket.ErrBadHandshake)
	req.Equal(http.StatusForbidden, resp.StatusCode)
}

func TestOriginPolicy_Check(t *testing.T) {
	tests := []struct {
		name        string
		environment string
		origin      string
		want        bool
	}{
		{name: "no origin header", environment: "production", origin: "", want: true},
		{name: "same origin in production", environment: "production", origin: "http://chat.example", want: true},
		{name: "allowed origin in development", environment: "development", origin: "http://localhost:5500", want: true},
		{name: "allowed origin in production", environment: "production", origin: "http://localhost:5500", want: false},
		{name: "foreign origin in development", environment: "development", origin: "http://evil.example", want: false},
		{name: "unparsable origin", environment: "development", origin: "://", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			policy := OriginPolicy{
				Environment:    tt.environment,
				AllowedOrigins: []string{"http://localhost:5500", "http://127.0.0.1:5500"},
			}
			r := httptest.NewRequest(http.MethodGet, "http://chat.example/ws", nil)
			if tt.origin != "" {
				r.Header.Set("Origin", tt.origin)
			}

			require.Equal(t, tt.want, policy.Check(r))
		})
	}
}
