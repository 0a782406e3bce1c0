package domain

import "time"

type PresenceKind string

const (
	PresenceConnected    PresenceKind = "connected"
	PresenceEntered      PresenceKind = "entered"
	PresenceDisconnected PresenceKind = "disconnected"
)

type PresenceEntry struct {
	ID           string
	ConnectionID string
	Kind         PresenceKind
	Name         string
	Room         string
	CreatedAt    time.Time
}

func NewPresenceEntry(connectionID string, kind PresenceKind, name, room string, createdAt time.Time) PresenceEntry {
	return PresenceEntry{
		ConnectionID: connectionID,
		Kind:         kind,
		Name:         name,
		Room:         room,
		CreatedAt:    createdAt,
	}
}
