package cmd

import (
	"fmt"
	"strings"
	"sync"

	prompt "github.com/c-bata/go-prompt"
	"github.com/gookit/color"
	"github.com/ponyo877/roomchat/server/domain"
)

var commandSuggestions = []prompt.Suggest{
	{Text: "/join", Description: "Switch to another room"},
	{Text: "/nick", Description: "Change your display name"},
	{Text: "/help", Description: "Show commands"},
	{Text: "/quit", Description: "Leave the chat"},
}

var (
	adminStyle  = color.New(color.FgGreen)
	nameStyle   = color.New(color.FgBlue, color.OpBold)
	timeStyle   = color.New(color.FgGray)
	noticeStyle = color.New(color.FgYellow)
	errorStyle  = color.New(color.FgRed)
)

// roomSet keeps the latest room list for completion.
type roomSet struct {
	mu    sync.RWMutex
	rooms []string
}

func (r *roomSet) set(rooms []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rooms = rooms
}

func (r *roomSet) suggestions() []prompt.Suggest {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s := make([]prompt.Suggest, 0, len(r.rooms))
	for _, room := range r.rooms {
		s = append(s, prompt.Suggest{Text: room})
	}
	return s
}

func runChatPrompt(session *chatSession) error {
	rooms := &roomSet{}

	go func() {
		err := session.Receive(func(u update) {
			switch u.event {
			case domain.EventMessage:
				fmt.Println(formatMessagePlain(u.message))
			case domain.EventUserList:
				fmt.Println(noticeStyle.Render(formatUsersPlain(u.users)))
			case domain.EventRoomList:
				rooms.set(u.rooms)
			case domain.EventActivity:
				fmt.Println(timeStyle.Render(u.typing + " is typing..."))
			}
		})
		if err != nil {
			fmt.Println(errorStyle.Render(fmt.Sprintf("Error receiving message: %v", err)))
			return
		}
		fmt.Println(errorStyle.Render("Stream closed by server. Press Ctrl+D to exit."))
	}()

	executor := func(line string) {
		_, notice, err := session.Handle(line)
		if notice != "" {
			fmt.Println(noticeStyle.Render(notice))
		}
		if err != nil {
			fmt.Println(errorStyle.Render(err.Error()))
		}
	}

	// go-prompt calls the completer on every keystroke, which is where the
	// typing signal is sent from.
	completer := func(d prompt.Document) []prompt.Suggest {
		text := d.TextBeforeCursor()
		if text != "" && !strings.HasPrefix(text, "/") {
			session.Typing()
			return nil
		}
		return completeInput(text, rooms.suggestions())
	}

	p := prompt.New(executor, completer,
		prompt.OptionTitle("roomchat"),
		prompt.OptionLivePrefix(func() (string, bool) {
			return fmt.Sprintf("%s@%s ❯ ", session.Name(), session.Room()), true
		}),
		prompt.OptionSetExitCheckerOnInput(func(in string, breakline bool) bool {
			if !breakline {
				return false
			}
			parsed, err := parseInput(in)
			return err == nil && parsed.kind == inputQuit
		}),
	)
	p.Run()
	return nil
}

func completeInput(text string, rooms []prompt.Suggest) []prompt.Suggest {
	if !strings.HasPrefix(text, "/") {
		return nil
	}
	command, arg, hasArg := strings.Cut(text, " ")
	if !hasArg {
		return prompt.FilterHasPrefix(commandSuggestions, command, true)
	}
	if command == "/join" || command == "/j" {
		return prompt.FilterHasPrefix(rooms, arg, true)
	}
	return nil
}

func formatMessagePlain(m domain.Message) string {
	stamp := timeStyle.Render("[" + m.Time + "]")
	if m.Name == domain.AdminName {
		return stamp + " " + adminStyle.Render(m.Text)
	}
	return stamp + " " + nameStyle.Render(m.Name) + ": " + m.Text
}

func formatUsersPlain(users []domain.UserSession) string {
	names := make([]string, 0, len(users))
	for _, u := range users {
		names = append(names, u.Name)
	}
	return "In room: " + strings.Join(names, ", ")
}
