package command

import "github.com/museun/twitchchat-go/irc"

// Ready is the `376` numeric (end of MOTD): Twitch sends this once
// registration is fully settled.
type Ready struct {
	Raw      string
	Username string
}

// ParseReady parses a `376` frame.
func ParseReady(f irc.Frame) (Ready, error) {
	if err := expectCommand(f, "376"); err != nil {
		return Ready{}, err
	}
	username, err := expectArg(f, "376", 0)
	if err != nil {
		return Ready{}, err
	}
	return Ready{Raw: f.Raw(), Username: username}, nil
}
