package command

import "github.com/museun/twitchchat-go/irc"

// ModeStatus reports whether a user gained or lost moderator (operator)
// status.
type ModeStatus int

const (
	ModeGained ModeStatus = iota
	ModeLost
)

// Mode is sent when a user gains or loses moderator status in a channel.
// Twitch has deprecated this in favor of USERSTATE/mod tags, but still
// emits it.
type Mode struct {
	Raw     string
	Channel string
	Status  ModeStatus
	Name    string
}

// ParseMode parses a MODE frame.
func ParseMode(f irc.Frame) (Mode, error) {
	if err := expectCommand(f, "MODE"); err != nil {
		return Mode{}, err
	}
	channel, err := expectArg(f, "MODE", 0)
	if err != nil {
		return Mode{}, err
	}
	flag, err := expectArg(f, "MODE", 1)
	if err != nil {
		return Mode{}, err
	}
	name, err := expectArg(f, "MODE", 2)
	if err != nil {
		return Mode{}, err
	}
	status := ModeLost
	if len(flag) > 0 && flag[0] == '+' {
		status = ModeGained
	}
	return Mode{Raw: f.Raw(), Channel: channel, Status: status, Name: name}, nil
}
