package domain

//go:generate go run go.uber.org/mock/mockgen -source=handler.go -destination=../mocks/mock_handler.go -package=mocks

// EventHandler turns one client event into the notifications it causes.
// Implementations perform no I/O.
type EventHandler interface {
	Connect(id string) []Notification
	EnterRoom(id string, req EnterRoomRequest) []Notification
	Disconnect(id string) []Notification
	Message(id string, req ChatMessageRequest) []Notification
	Activity(id string, name string) []Notification
}

// Broadcaster is the transport side: connection registry and room groups.
type Broadcaster interface {
	Register(id string, sink chan<- Outbound)
	Unregister(id string)
	Subscribe(id, room string)

	SendTo(id string, event EventName, payload any)
	SendToRoom(room, except string, event EventName, payload any)
	SendToAll(event EventName, payload any)

	ConnectionCount() int
}
