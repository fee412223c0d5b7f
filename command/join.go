package command

import "github.com/museun/twitchchat-go/irc"

// Join is sent when a user (possibly us) joins a channel.
type Join struct {
	Raw     string
	Name    string
	Channel string
}

// ParseJoin parses a JOIN frame.
func ParseJoin(f irc.Frame) (Join, error) {
	if err := expectCommand(f, "JOIN"); err != nil {
		return Join{}, err
	}
	name, err := expectNick(f, "JOIN")
	if err != nil {
		return Join{}, err
	}
	channel, err := expectArg(f, "JOIN", 0)
	if err != nil {
		return Join{}, err
	}
	return Join{Raw: f.Raw(), Name: name, Channel: channel}, nil
}
