package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-shellwords"
)

type inputKind int

const (
	inputMessage inputKind = iota
	inputJoin
	inputNick
	inputQuit
	inputHelp
)

type input struct {
	kind inputKind
	arg  string
}

var errEmptyInput = errors.New("empty input")

const helpText = "/join <room>  switch room\n/nick <name>  change your name\n/quit         leave"

// parseInput reads one line typed by the user. Lines not starting with a
// slash are chat text and are sent verbatim.
func parseInput(line string) (input, error) {
	text := strings.TrimSpace(line)
	if text == "" {
		return input{}, errEmptyInput
	}
	if !strings.HasPrefix(text, "/") || strings.HasPrefix(text, "//") {
		return input{kind: inputMessage, arg: strings.TrimPrefix(text, "/")}, nil
	}

	args, err := shellwords.Parse(text)
	if err != nil {
		return input{}, fmt.Errorf("cannot parse %q: %w", text, err)
	}

	switch args[0] {
	case "/join", "/j":
		if len(args) != 2 {
			return input{}, errors.New("usage: /join <room>")
		}
		return input{kind: inputJoin, arg: args[1]}, nil
	case "/nick":
		if len(args) != 2 {
			return input{}, errors.New("usage: /nick <name>")
		}
		return input{kind: inputNick, arg: args[1]}, nil
	case "/quit", "/exit", "/q":
		return input{kind: inputQuit}, nil
	case "/help", "/?":
		return input{kind: inputHelp}, nil
	}
	return input{}, fmt.Errorf("unknown command %s, try /help", args[0])
}
