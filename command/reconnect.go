package command

import "github.com/museun/twitchchat-go/irc"

// Reconnect tells the client Twitch is about to cycle the connection; the
// runner treats this as end-of-stream so the caller can dial a fresh
// transport.
type Reconnect struct {
	Raw string
}

// ParseReconnect parses a RECONNECT frame.
func ParseReconnect(f irc.Frame) (Reconnect, error) {
	if err := expectCommand(f, "RECONNECT"); err != nil {
		return Reconnect{}, err
	}
	return Reconnect{Raw: f.Raw()}, nil
}
