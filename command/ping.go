package command

import "github.com/museun/twitchchat-go/irc"

// Ping is a server keepalive; the runner answers every one with a Pong
// carrying the same token.
type Ping struct {
	Raw   string
	Token string
}

// ParsePing parses a PING frame.
func ParsePing(f irc.Frame) (Ping, error) {
	if err := expectCommand(f, "PING"); err != nil {
		return Ping{}, err
	}
	token, err := expectData(f, "PING")
	if err != nil {
		return Ping{}, err
	}
	return Ping{Raw: f.Raw(), Token: token}, nil
}
