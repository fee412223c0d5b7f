// Package command implements the typed message catalogue: one type per
// recognized Twitch IRC command, each parsed from a borrowed irc.Frame.
package command

import (
	"fmt"

	"github.com/museun/twitchchat-go/irc"
)

// ParseError is returned by a typed Parse function when a frame's command
// doesn't match, or a mandatory argument, tag, or trailing data is absent.
// Missing optional fields never produce an error — they surface as a false
// second return value on the typed accessor, or a nil field, instead.
type ParseError struct {
	// Command is the command the variant expected to see.
	Command string
	// Reason is the message text of one of ExpectedArg, ExpectedData,
	// ExpectedTag, a missing nick!user@host prefix, or InvalidCommand.
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("command: %s: %s", e.Command, e.Reason)
}

func expectedArg(command string, pos int) error {
	return &ParseError{Command: command, Reason: fmt.Sprintf("expected argument at position %d", pos)}
}

func expectedData(command string) error {
	return &ParseError{Command: command, Reason: "expected trailing data"}
}

func expectedTag(command, name string) error {
	return &ParseError{Command: command, Reason: fmt.Sprintf("expected tag %q", name)}
}

func expectedNick(command string) error {
	return &ParseError{Command: command, Reason: "expected a nick!user@host prefix"}
}

func invalidCommand(want string, got irc.Frame) error {
	return &ParseError{Command: want, Reason: fmt.Sprintf("got command %q", got.Command())}
}

func expectCommand(f irc.Frame, want string) error {
	if f.Command() != want {
		return invalidCommand(want, f)
	}
	return nil
}

func expectArg(f irc.Frame, command string, pos int) (string, error) {
	v, ok := f.Param(pos)
	if !ok {
		return "", expectedArg(command, pos)
	}
	return v, nil
}

func expectData(f irc.Frame, command string) (string, error) {
	v, ok := f.Trailing()
	if !ok {
		return "", expectedData(command)
	}
	return v, nil
}

func expectNick(f irc.Frame, command string) (string, error) {
	p, ok := f.Prefix()
	if !ok || p.IsServer || p.Nick == "" {
		return "", expectedNick(command)
	}
	return p.Nick, nil
}

func optData(f irc.Frame) *string {
	v, ok := f.Trailing()
	if !ok {
		return nil
	}
	return &v
}
