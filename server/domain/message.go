package domain

import "time"

const (
	AdminName = "Admin"

	timeLayout = "15:04:05"
)

type Message struct {
	Name string `json:"name"`
	Text string `json:"text"`
	Time string `json:"time"`
}

func NewMessage(name, text string, sentAt time.Time) Message {
	return Message{
		Name: name,
		Text: text,
		Time: sentAt.Format(timeLayout),
	}
}

func NewSystemMessage(text string, sentAt time.Time) Message {
	return NewMessage(AdminName, text, sentAt)
}

func (m Message) String() string {
	return "[" + m.Time + "] " + m.Name + ": " + m.Text
}

type UserList struct {
	Users []UserSession `json:"users"`
}

func NewUserList(users []UserSession) UserList {
	if users == nil {
		users = []UserSession{}
	}
	return UserList{Users: users}
}

type RoomList struct {
	Rooms []string `json:"rooms"`
}

func NewRoomList(rooms []string) RoomList {
	if rooms == nil {
		rooms = []string{}
	}
	return RoomList{Rooms: rooms}
}
