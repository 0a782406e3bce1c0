package cmd

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	pb "github.com/ponyo877/roomchat/grpc"
	"github.com/ponyo877/roomchat/server/domain"
)

const activityInterval = time.Second

// update is one decoded server event, ready to render.
type update struct {
	event   domain.EventName
	message domain.Message
	users   []domain.UserSession
	rooms   []string
	typing  string
}

func decodeUpdate(f pb.Frame) (update, error) {
	u := update{event: domain.EventName(f.Event)}
	switch u.event {
	case domain.EventMessage:
		return u, f.Decode(&u.message)
	case domain.EventUserList:
		var list domain.UserList
		if err := f.Decode(&list); err != nil {
			return u, err
		}
		u.users = list.Users
		return u, nil
	case domain.EventRoomList:
		var list domain.RoomList
		if err := f.Decode(&list); err != nil {
			return u, err
		}
		u.rooms = list.Rooms
		return u, nil
	case domain.EventActivity:
		return u, f.Decode(&u.typing)
	}
	return u, fmt.Errorf("unexpected event %q", f.Event)
}

// chatSession is the client end of one relay stream.
type chatSession struct {
	stream pb.Relay_ConnectClient

	mu           sync.Mutex
	name         string
	room         string
	lastActivity time.Time
	now          func() time.Time
}

func newChatSession(stream pb.Relay_ConnectClient, name, room string) *chatSession {
	return &chatSession{
		stream: stream,
		name:   name,
		room:   room,
		now:    time.Now,
	}
}

func (s *chatSession) Name() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.name
}

func (s *chatSession) Room() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.room
}

// Enter announces the current name and room to the relay.
func (s *chatSession) Enter() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.send(domain.EventEnterRoom, enterRoom{Name: s.name, Room: s.room})
}

func (s *chatSession) Join(room string) error {
	s.mu.Lock()
	s.room = room
	s.mu.Unlock()
	return s.Enter()
}

func (s *chatSession) Nick(name string) error {
	s.mu.Lock()
	s.name = name
	s.mu.Unlock()
	return s.Enter()
}

func (s *chatSession) Say(text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.send(domain.EventMessage, chatLine{Name: s.name, Text: text})
}

// Typing sends an activity signal at most once per activityInterval.
func (s *chatSession) Typing() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if now.Sub(s.lastActivity) < activityInterval {
		return nil
	}
	s.lastActivity = now
	return s.send(domain.EventActivity, s.name)
}

// Handle runs one line of user input. It reports whether the user asked
// to quit and any text to show locally.
func (s *chatSession) Handle(line string) (quit bool, notice string, err error) {
	in, err := parseInput(line)
	if errors.Is(err, errEmptyInput) {
		return false, "", nil
	}
	if err != nil {
		return false, err.Error(), nil
	}

	switch in.kind {
	case inputJoin:
		return false, "", s.Join(in.arg)
	case inputNick:
		return false, "", s.Nick(in.arg)
	case inputQuit:
		return true, "", nil
	case inputHelp:
		return false, helpText, nil
	}
	return false, "", s.Say(in.arg)
}

// Receive reads server events until the stream ends. A clean end returns nil.
func (s *chatSession) Receive(handle func(update)) error {
	for {
		in, err := s.stream.Recv()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		f, err := pb.DecodeFrame(in)
		if err != nil {
			continue
		}
		u, err := decodeUpdate(f)
		if err != nil {
			continue
		}
		handle(u)
	}
}

func (s *chatSession) Close() error {
	return s.stream.CloseSend()
}

// send must be called with mu held; the stream allows one sender at a time.
func (s *chatSession) send(event domain.EventName, payload any) error {
	frame, err := pb.EncodeFrame(string(event), payload)
	if err != nil {
		return err
	}
	if err := s.stream.Send(frame); err != nil {
		return fmt.Errorf("failed to send %s: %w", event, err)
	}
	return nil
}

type enterRoom struct {
	Name string `json:"name"`
	Room string `json:"room"`
}

type chatLine struct {
	Name string `json:"name"`
	Text string `json:"text"`
}
