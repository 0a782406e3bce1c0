package usecase

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/ponyo877/roomchat/server/domain"
	"github.com/ponyo877/roomchat/server/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestRelay(t *testing.T, hub domain.Broadcaster, journal Journal) *Relay {
	t.Helper()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	coordinator, _ := newTestCoordinator()
	relay := NewRelay(log, coordinator, hub, journal, 0)
	relay.now = func() time.Time { return fixedNow }
	return relay
}

func TestRelay_Connected_RegistersBeforeWelcome(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	hub := mocks.NewMockBroadcaster(ctrl)
	journal := mocks.NewMockJournal(ctrl)
	relay := newTestRelay(t, hub, journal)
	sink := make(chan domain.Outbound, 1)

	var recorded domain.PresenceEntry
	gomock.InOrder(
		hub.EXPECT().Register("A1234567", gomock.Any()),
		journal.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, entry domain.PresenceEntry) error {
				recorded = entry
				return nil
			}),
		hub.EXPECT().SendTo("A1234567", domain.EventMessage, system("Welcome to the chat A1234")),
	)

	// When a connection opens
	relay.handle(context.Background(), domain.NewConnected("A1234567", sink))

	// Then it is journaled as connected
	req.Equal(domain.PresenceConnected, recorded.Kind)
	req.Equal("A1234567", recorded.ConnectionID)
	req.Equal(fixedNow, recorded.CreatedAt)
}

func TestRelay_EnterRoom_SubscribesBeforeDelivery(t *testing.T) {
	ctrl := gomock.NewController(t)
	hub := mocks.NewMockBroadcaster(ctrl)
	relay := newTestRelay(t, hub, nil)

	alice := domain.UserSession{ID: "A", Name: "Alice", Room: "x"}
	gomock.InOrder(
		hub.EXPECT().Subscribe("A", "x"),
		hub.EXPECT().SendTo("A", domain.EventMessage, system("You've joined the x chat room")),
		hub.EXPECT().SendToRoom("x", "A", domain.EventMessage, system("Alice has joined the room")),
		hub.EXPECT().SendToRoom("x", "", domain.EventUserList, domain.UserList{Users: []domain.UserSession{alice}}),
		hub.EXPECT().SendToAll(domain.EventRoomList, domain.RoomList{Rooms: []string{"x"}}),
	)

	relay.handle(context.Background(), domain.NewEnterRoom("A", "Alice", "x"))
}

func TestRelay_Disconnected_UnregistersBeforeDelivery(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	hub := mocks.NewMockBroadcaster(ctrl)
	journal := mocks.NewMockJournal(ctrl)
	relay := newTestRelay(t, hub, journal)

	// Given Alice is in x
	hub.EXPECT().Subscribe("A", "x")
	hub.EXPECT().SendTo(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	hub.EXPECT().SendToRoom(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(2)
	hub.EXPECT().SendToAll(gomock.Any(), gomock.Any())
	journal.EXPECT().Record(gomock.Any(), gomock.Any())
	relay.handle(context.Background(), domain.NewEnterRoom("A", "Alice", "x"))

	// When her connection closes
	var recorded domain.PresenceEntry
	gomock.InOrder(
		hub.EXPECT().Unregister("A"),
		journal.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, entry domain.PresenceEntry) error {
				recorded = entry
				return nil
			}),
		hub.EXPECT().SendToRoom("x", "", domain.EventMessage, system("Alice has left the room")),
		hub.EXPECT().SendToRoom("x", "", domain.EventUserList, domain.UserList{Users: []domain.UserSession{}}),
		hub.EXPECT().SendToAll(domain.EventRoomList, domain.RoomList{Rooms: []string{}}),
	)
	relay.handle(context.Background(), domain.NewDisconnected("A"))

	// Then the journal keeps the last known name and room
	req.Equal(domain.PresenceDisconnected, recorded.Kind)
	req.Equal("Alice", recorded.Name)
	req.Equal("x", recorded.Room)
}

func TestRelay_JournalFailureDoesNotBlockDelivery(t *testing.T) {
	ctrl := gomock.NewController(t)
	hub := mocks.NewMockBroadcaster(ctrl)
	journal := mocks.NewMockJournal(ctrl)
	relay := newTestRelay(t, hub, journal)

	hub.EXPECT().Register("A", gomock.Any())
	journal.EXPECT().Record(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))
	hub.EXPECT().SendTo("A", domain.EventMessage, gomock.Any())

	relay.handle(context.Background(), domain.NewConnected("A", make(chan domain.Outbound)))
}

func TestRelay_InvalidInboundIsDropped(t *testing.T) {
	ctrl := gomock.NewController(t)
	hub := mocks.NewMockBroadcaster(ctrl)
	coordinator := mocks.NewMockCoordinator(ctrl)
	relay := NewRelay(logs.GetLoggerFromLevel(slog.LevelDebug), coordinator, hub, nil, 0)

	// No expectations: neither the hub nor the coordinator may be called
	relay.handle(context.Background(), domain.NewEnterRoom("A", "Alice", ""))
	relay.handle(context.Background(), domain.NewConnected("A", nil))
	relay.handle(context.Background(), domain.NewChatMessage("", "Alice", "hi"))
}

func TestRelay_DeliversCoordinatorNotificationsInOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	hub := mocks.NewMockBroadcaster(ctrl)
	coordinator := mocks.NewMockCoordinator(ctrl)
	relay := NewRelay(logs.GetLoggerFromLevel(slog.LevelDebug), coordinator, hub, nil, 0)

	coordinator.EXPECT().Activity("A", "Alice").Return([]domain.Notification{
		domain.ToRoomExcept("x", "A", domain.EventActivity, "Alice"),
		domain.ToAll(domain.EventRoomList, domain.RoomList{Rooms: []string{"x"}}),
		domain.ToConnection("A", domain.EventMessage, "noted"),
	})
	gomock.InOrder(
		hub.EXPECT().SendToRoom("x", "A", domain.EventActivity, "Alice"),
		hub.EXPECT().SendToAll(domain.EventRoomList, domain.RoomList{Rooms: []string{"x"}}),
		hub.EXPECT().SendTo("A", domain.EventMessage, "noted"),
	)

	relay.handle(context.Background(), domain.NewActivity("A", "Alice"))
}

func TestRelay_Run_StatsCountDeliveredMessages(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	hub := mocks.NewMockBroadcaster(ctrl)
	relay := newTestRelay(t, hub, nil)

	hub.EXPECT().Subscribe(gomock.Any(), gomock.Any()).AnyTimes()
	hub.EXPECT().SendTo(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	hub.EXPECT().SendToRoom(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	hub.EXPECT().SendToAll(gomock.Any(), gomock.Any()).AnyTimes()
	hub.EXPECT().ConnectionCount().Return(2)

	ctx, cancel := context.WithCancel(context.Background())
	go relay.Run(ctx)

	// Given two users in two rooms
	req.NoError(relay.Submit(ctx, domain.NewEnterRoom("A", "Alice", "x")))
	req.NoError(relay.Submit(ctx, domain.NewEnterRoom("B", "Bob", "y")))

	// When one message is sent from a room and one from nowhere
	req.NoError(relay.Submit(ctx, domain.NewChatMessage("A", "Alice", "hello")))
	req.NoError(relay.Submit(ctx, domain.NewChatMessage("C", "Carol", "lost")))

	// Then only the delivered one is counted
	stats, err := relay.Stats(ctx)
	req.NoError(err)
	req.Equal(2, stats.ActiveRooms)
	req.Equal(2, stats.ActiveSessions)
	req.Equal(2, stats.Connections)
	req.Equal(int64(1), stats.TotalMessages)

	cancel()
	<-relay.Done()
}

func TestRelay_SubmitAfterStop(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	relay := newTestRelay(t, mocks.NewMockBroadcaster(ctrl), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req.NoError(relay.Run(ctx))

	err := relay.Submit(context.Background(), domain.NewDisconnected("A"))
	req.ErrorIs(err, ErrRelayStopped)

	_, err = relay.Stats(context.Background())
	req.ErrorIs(err, ErrRelayStopped)
}
