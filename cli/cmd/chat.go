package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/ponyo877/roomchat/server/domain"
	"github.com/rivo/tview"
	"github.com/spf13/cobra"
)

const typingTimeout = 3 * time.Second

var chatCmd = &cobra.Command{
	Use:   "chat --room <room>",
	Short: "Joins a chat room",
	Long: `Joins a chat room on the relay and opens an interactive chat.
Type to talk. /join <room> switches rooms, /nick <name> renames you and
/quit leaves. Use --plain for a line-based prompt instead of the full screen UI.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		room, _ := cmd.Flags().GetString("room")
		plain, _ := cmd.Flags().GetBool("plain")
		if room == "" {
			return errors.New("a room is required, use --room")
		}
		name := displayName
		if name == "" {
			name = os.Getenv("USER")
		}

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		stream, err := relayClient.Connect(ctx)
		if err != nil {
			return fmt.Errorf("failed to open chat stream: %w", err)
		}
		session := newChatSession(stream, name, room)
		if err := session.Enter(); err != nil {
			return err
		}
		defer session.Close()

		if plain {
			return runChatPrompt(session)
		}
		return runChatUITview(session)
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
	chatCmd.Flags().StringP("room", "r", "", "Room to join")
	chatCmd.Flags().Bool("plain", false, "Use a line-based prompt instead of the full screen UI")
}

func runChatUITview(session *chatSession) error {
	app := tview.NewApplication()

	textView := tview.NewTextView().
		SetDynamicColors(true).
		SetRegions(true).
		SetWordWrap(true).
		SetScrollable(true).
		ScrollToEnd()
	textView.SetBorder(true).SetTitle(" " + tview.Escape(session.Room()) + " ")

	usersView := tview.NewTextView().SetDynamicColors(true)
	usersView.SetBorder(true).SetTitle(" Users ")
	roomsView := tview.NewTextView().SetDynamicColors(true)
	roomsView.SetBorder(true).SetTitle(" Rooms ")
	statusView := tview.NewTextView().SetDynamicColors(true)

	inputField := tview.NewInputField().
		SetLabel(session.Name() + " ❯❯ ").
		SetFieldWidth(0).
		SetAcceptanceFunc(tview.InputFieldMaxLength(256))

	sidebar := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(usersView, 0, 2, false).
		AddItem(roomsView, 0, 1, false)
	body := tview.NewFlex().
		AddItem(textView, 0, 3, false).
		AddItem(sidebar, 24, 0, false)
	flex := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(body, 0, 1, false).
		AddItem(statusView, 1, 0, false).
		AddItem(inputField, 1, 0, true)

	app.SetRoot(flex, true).SetFocus(inputField)

	var clearTyping *time.Timer
	go func() {
		err := session.Receive(func(u update) {
			app.QueueUpdateDraw(func() {
				switch u.event {
				case domain.EventMessage:
					fmt.Fprintln(textView, formatMessageTview(u.message))
					textView.ScrollToEnd()
				case domain.EventUserList:
					usersView.SetText(formatUsersTview(u.users, session.Name()))
				case domain.EventRoomList:
					roomsView.SetText(formatRoomsTview(u.rooms, session.Room()))
				case domain.EventActivity:
					statusView.SetText(fmt.Sprintf("[gray]%s is typing...", tview.Escape(u.typing)))
					if clearTyping != nil {
						clearTyping.Stop()
					}
					clearTyping = time.AfterFunc(typingTimeout, func() {
						app.QueueUpdateDraw(func() { statusView.Clear() })
					})
				}
			})
		})
		app.QueueUpdateDraw(func() {
			if err != nil {
				fmt.Fprintf(textView, "[red]Error receiving message: %v\n", err)
			} else {
				fmt.Fprintln(textView, "[red]Stream closed by server.")
			}
		})
	}()

	inputField.SetChangedFunc(func(text string) {
		if text != "" && !strings.HasPrefix(text, "/") {
			session.Typing()
		}
	})

	inputField.SetDoneFunc(func(key tcell.Key) {
		if key != tcell.KeyEnter {
			return
		}
		quit, notice, err := session.Handle(inputField.GetText())
		inputField.SetText("")
		if quit {
			app.Stop()
			return
		}
		if notice != "" {
			fmt.Fprintf(textView, "[yellow]%s\n", tview.Escape(notice))
		}
		if err != nil {
			fmt.Fprintf(textView, "[red]Failed to send message: %v\n", err)
		}
		textView.SetTitle(" " + tview.Escape(session.Room()) + " ")
		inputField.SetLabel(session.Name() + " ❯❯ ")
	})

	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyCtrlC {
			app.Stop()
			return nil
		}
		return event
	})

	return app.Run()
}

func formatMessageTview(m domain.Message) string {
	if m.Name == domain.AdminName {
		return fmt.Sprintf("[white][%s] [green]%s", m.Time, tview.Escape(m.Text))
	}
	return fmt.Sprintf("[white][%s] [blue]%s[white]: %s", m.Time, tview.Escape(m.Name), tview.Escape(m.Text))
}

func formatUsersTview(users []domain.UserSession, self string) string {
	var b strings.Builder
	for _, u := range users {
		if u.Name == self {
			fmt.Fprintf(&b, "[yellow]%s[white]\n", tview.Escape(u.Name))
			continue
		}
		fmt.Fprintln(&b, tview.Escape(u.Name))
	}
	return b.String()
}

func formatRoomsTview(rooms []string, current string) string {
	var b strings.Builder
	for _, r := range rooms {
		if r == current {
			fmt.Fprintf(&b, "[yellow]#%s[white]\n", tview.Escape(r))
			continue
		}
		fmt.Fprintf(&b, "#%s\n", tview.Escape(r))
	}
	return b.String()
}
