package domain

type InboundKind int

const (
	InboundConnected InboundKind = iota
	InboundEnterRoom
	InboundChatMessage
	InboundActivity
	InboundDisconnected
)

func (k InboundKind) String() string {
	switch k {
	case InboundConnected:
		return "connected"
	case InboundEnterRoom:
		return "enterRoom"
	case InboundChatMessage:
		return "message"
	case InboundActivity:
		return "activity"
	case InboundDisconnected:
		return "disconnected"
	default:
		return "unknown"
	}
}

// Inbound is a lifecycle signal or client event delivered by a transport.
// Sink is only set on InboundConnected.
type Inbound struct {
	Kind         InboundKind
	ConnectionID string
	Name         string
	Room         string
	Text         string
	Sink         chan<- Outbound
}

func NewConnected(connectionID string, sink chan<- Outbound) Inbound {
	return Inbound{
		Kind:         InboundConnected,
		ConnectionID: connectionID,
		Sink:         sink,
	}
}

func NewEnterRoom(connectionID, name, room string) Inbound {
	return Inbound{
		Kind:         InboundEnterRoom,
		ConnectionID: connectionID,
		Name:         name,
		Room:         room,
	}
}

func NewChatMessage(connectionID, name, text string) Inbound {
	return Inbound{
		Kind:         InboundChatMessage,
		ConnectionID: connectionID,
		Name:         name,
		Text:         text,
	}
}

func NewActivity(connectionID, name string) Inbound {
	return Inbound{
		Kind:         InboundActivity,
		ConnectionID: connectionID,
		Name:         name,
	}
}

func NewDisconnected(connectionID string) Inbound {
	return Inbound{
		Kind:         InboundDisconnected,
		ConnectionID: connectionID,
	}
}

func (i Inbound) IsValid() bool {
	if i.ConnectionID == "" {
		return false
	}
	switch i.Kind {
	case InboundConnected:
		return i.Sink != nil
	case InboundEnterRoom:
		return i.Room != ""
	case InboundChatMessage, InboundActivity, InboundDisconnected:
		return true
	default:
		return false
	}
}

func (i Inbound) String() string {
	switch i.Kind {
	case InboundEnterRoom:
		return i.Kind.String() + ": " + i.ConnectionID + " " + i.Name + " -> " + i.Room
	default:
		return i.Kind.String() + ": " + i.ConnectionID
	}
}

type EnterRoomRequest struct {
	Name string
	Room string
}

type ChatMessageRequest struct {
	Name string
	Text string
}
