package domain

type UserSession struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Room string `json:"room"`
}

func NewUserSession(id, name, room string) UserSession {
	return UserSession{
		ID:   id,
		Name: name,
		Room: room,
	}
}

func (s UserSession) InRoom() bool {
	return s.Room != ""
}

func (s UserSession) String() string {
	return s.Name + "@" + s.Room
}
