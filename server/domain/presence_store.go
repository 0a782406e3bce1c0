package domain

import "github.com/samber/lo"

// PresenceStore maps connection ids to their sessions. Rooms are never
// stored; they are derived from the sessions on every query.
//
// A PresenceStore is not safe for concurrent use. The relay loop is its only
// owner.
type PresenceStore struct {
	sessions []UserSession
}

func NewPresenceStore() *PresenceStore {
	return &PresenceStore{
		sessions: []UserSession{},
	}
}

// UpsertSession replaces any session held by id with a new one.
func (p *PresenceStore) UpsertSession(id, name, room string) UserSession {
	session := NewUserSession(id, name, room)
	p.sessions = append(p.without(id), session)
	return session
}

func (p *PresenceStore) RemoveSession(id string) {
	p.sessions = p.without(id)
}

func (p *PresenceStore) GetSession(id string) (UserSession, bool) {
	return lo.Find(p.sessions, func(s UserSession) bool {
		return s.ID == id
	})
}

func (p *PresenceStore) SessionsInRoom(room string) []UserSession {
	return lo.Filter(p.sessions, func(s UserSession, _ int) bool {
		return s.Room == room
	})
}

func (p *PresenceStore) ActiveRoomNames() []string {
	rooms := lo.FilterMap(p.sessions, func(s UserSession, _ int) (string, bool) {
		return s.Room, s.InRoom()
	})
	return lo.Uniq(rooms)
}

func (p *PresenceStore) Len() int {
	return len(p.sessions)
}

func (p *PresenceStore) without(id string) []UserSession {
	return lo.Reject(p.sessions, func(s UserSession, _ int) bool {
		return s.ID == id
	})
}
