package domain

import "fmt"

type EventName string

const (
	EventEnterRoom EventName = "enterRoom"
	EventMessage   EventName = "message"
	EventActivity  EventName = "activity"
	EventUserList  EventName = "userList"
	EventRoomList  EventName = "roomList"
)

type Audience int

const (
	AudienceConnection Audience = iota
	AudienceRoom
	AudienceAll
)

func (a Audience) String() string {
	switch a {
	case AudienceConnection:
		return "connection"
	case AudienceRoom:
		return "room"
	case AudienceAll:
		return "all"
	default:
		return "unknown"
	}
}

// Notification is one delivery instruction. Target is a connection id for
// AudienceConnection and a room name for AudienceRoom. Except, when set,
// removes one connection from a room audience.
type Notification struct {
	Audience Audience
	Target   string
	Except   string
	Event    EventName
	Payload  any
}

func ToConnection(id string, event EventName, payload any) Notification {
	return Notification{
		Audience: AudienceConnection,
		Target:   id,
		Event:    event,
		Payload:  payload,
	}
}

func ToRoom(room string, event EventName, payload any) Notification {
	return ToRoomExcept(room, "", event, payload)
}

func ToRoomExcept(room, except string, event EventName, payload any) Notification {
	return Notification{
		Audience: AudienceRoom,
		Target:   room,
		Except:   except,
		Event:    event,
		Payload:  payload,
	}
}

func ToAll(event EventName, payload any) Notification {
	return Notification{
		Audience: AudienceAll,
		Event:    event,
		Payload:  payload,
	}
}

func (n Notification) String() string {
	switch n.Audience {
	case AudienceAll:
		return fmt.Sprintf("%s -> all", n.Event)
	case AudienceRoom:
		if n.Except != "" {
			return fmt.Sprintf("%s -> room %s except %s", n.Event, n.Target, n.Except)
		}
		return fmt.Sprintf("%s -> room %s", n.Event, n.Target)
	default:
		return fmt.Sprintf("%s -> %s %s", n.Event, n.Audience, n.Target)
	}
}

// Outbound is what a transport receives on a connection's sink.
type Outbound struct {
	Event   EventName
	Payload any
}
