package command

import "github.com/museun/twitchchat-go/irc"

// IrcReady is the `001` numeric: plain IRC registration succeeded.
type IrcReady struct {
	Raw      string
	Nickname string
}

// ParseIrcReady parses a `001` frame.
func ParseIrcReady(f irc.Frame) (IrcReady, error) {
	if err := expectCommand(f, "001"); err != nil {
		return IrcReady{}, err
	}
	nick, err := expectArg(f, "001", 0)
	if err != nil {
		return IrcReady{}, err
	}
	return IrcReady{Raw: f.Raw(), Nickname: nick}, nil
}
