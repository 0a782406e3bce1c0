package usecase

import (
	"fmt"
	"time"

	"github.com/ponyo877/roomchat/server/domain"
)

const welcomeIDLength = 5

// SessionCoordinator decides which notifications each client event causes.
// It holds no state of its own; the presence store is injected.
type SessionCoordinator struct {
	store *domain.PresenceStore
	now   func() time.Time
}

type CoordinatorOption func(*SessionCoordinator)

// WithClock overrides the time source used to stamp messages.
func WithClock(now func() time.Time) CoordinatorOption {
	return func(c *SessionCoordinator) {
		c.now = now
	}
}

// NewSessionCoordinator creates a coordinator over the given store
func NewSessionCoordinator(store *domain.PresenceStore, opts ...CoordinatorOption) *SessionCoordinator {
	c := &SessionCoordinator{
		store: store,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Connect greets a new connection. Nobody else is told about it yet.
func (c *SessionCoordinator) Connect(id string) []domain.Notification {
	text := fmt.Sprintf("Welcome to the chat %s", shortID(id))
	return []domain.Notification{
		domain.ToConnection(id, domain.EventMessage, c.systemMessage(text)),
	}
}

// EnterRoom installs the session for id and announces the move.
// Re-entering the current room skips the "left" notifications for it.
func (c *SessionCoordinator) EnterRoom(id string, req domain.EnterRoomRequest) []domain.Notification {
	previous, hadSession := c.store.GetSession(id)
	session := c.store.UpsertSession(id, req.Name, req.Room)

	var notifications []domain.Notification
	if hadSession && previous.InRoom() && previous.Room != session.Room {
		notifications = append(notifications,
			domain.ToRoom(previous.Room, domain.EventMessage,
				c.systemMessage(fmt.Sprintf("User %s has left the room", previous.Name))),
			domain.ToRoom(previous.Room, domain.EventUserList, c.userList(previous.Room)),
		)
	}

	return append(notifications,
		domain.ToConnection(id, domain.EventMessage,
			c.systemMessage(fmt.Sprintf("You've joined the %s chat room", session.Room))),
		domain.ToRoomExcept(session.Room, id, domain.EventMessage,
			c.systemMessage(fmt.Sprintf("%s has joined the room", session.Name))),
		domain.ToRoom(session.Room, domain.EventUserList, c.userList(session.Room)),
		domain.ToAll(domain.EventRoomList, c.roomList()),
	)
}

// Disconnect drops the session for id, if any, and tells its room.
func (c *SessionCoordinator) Disconnect(id string) []domain.Notification {
	session, ok := c.store.GetSession(id)
	c.store.RemoveSession(id)
	if !ok {
		return nil
	}

	return []domain.Notification{
		domain.ToRoom(session.Room, domain.EventMessage,
			c.systemMessage(fmt.Sprintf("%s has left the room", session.Name))),
		domain.ToRoom(session.Room, domain.EventUserList, c.userList(session.Room)),
		domain.ToAll(domain.EventRoomList, c.roomList()),
	}
}

// Message relays a chat line to the sender's room, sender included.
func (c *SessionCoordinator) Message(id string, req domain.ChatMessageRequest) []domain.Notification {
	session, ok := c.store.GetSession(id)
	if !ok || !session.InRoom() {
		return nil
	}
	return []domain.Notification{
		domain.ToRoom(session.Room, domain.EventMessage, domain.NewMessage(req.Name, req.Text, c.now())),
	}
}

// Activity forwards a typing signal to everyone else in the sender's room.
func (c *SessionCoordinator) Activity(id string, name string) []domain.Notification {
	session, ok := c.store.GetSession(id)
	if !ok || !session.InRoom() {
		return nil
	}
	return []domain.Notification{
		domain.ToRoomExcept(session.Room, id, domain.EventActivity, name),
	}
}

// Session looks up the current session of a connection
func (c *SessionCoordinator) Session(id string) (domain.UserSession, bool) {
	return c.store.GetSession(id)
}

// Presence reports the session and room counts of the store
func (c *SessionCoordinator) Presence() (sessions, rooms int) {
	return c.store.Len(), len(c.store.ActiveRoomNames())
}

func (c *SessionCoordinator) systemMessage(text string) domain.Message {
	return domain.NewSystemMessage(text, c.now())
}

func (c *SessionCoordinator) userList(room string) domain.UserList {
	return domain.NewUserList(c.store.SessionsInRoom(room))
}

func (c *SessionCoordinator) roomList() domain.RoomList {
	return domain.NewRoomList(c.store.ActiveRoomNames())
}

func shortID(id string) string {
	if len(id) <= welcomeIDLength {
		return id
	}
	return id[:welcomeIDLength]
}
