package command

import "github.com/museun/twitchchat-go/irc"

// Part is sent when a user (possibly us) leaves a channel.
type Part struct {
	Raw     string
	Name    string
	Channel string
}

// ParsePart parses a PART frame.
func ParsePart(f irc.Frame) (Part, error) {
	if err := expectCommand(f, "PART"); err != nil {
		return Part{}, err
	}
	name, err := expectNick(f, "PART")
	if err != nil {
		return Part{}, err
	}
	channel, err := expectArg(f, "PART", 0)
	if err != nil {
		return Part{}, err
	}
	return Part{Raw: f.Raw(), Name: name, Channel: channel}, nil
}
