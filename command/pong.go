package command

import "github.com/museun/twitchchat-go/irc"

// Pong is the server's response to a PONG we sent, or (rarely) one Twitch
// initiates itself.
type Pong struct {
	Raw   string
	Token string
}

// ParsePong parses a PONG frame.
func ParsePong(f irc.Frame) (Pong, error) {
	if err := expectCommand(f, "PONG"); err != nil {
		return Pong{}, err
	}
	token, err := expectData(f, "PONG")
	if err != nil {
		return Pong{}, err
	}
	return Pong{Raw: f.Raw(), Token: token}, nil
}
