package command

import "github.com/museun/twitchchat-go/irc"

// ClearChat is sent either when a specific user's messages are purged
// (Name set, a timeout or ban) or when the whole chat is cleared (Name
// absent).
type ClearChat struct {
	Raw     string
	Tags    irc.Tags
	Channel string
	Name    *string
}

// BanDuration is the length of the timeout in seconds, if this is a
// timeout rather than a permanent ban or a full-chat clear.
func (c ClearChat) BanDuration() (int64, bool) {
	return c.Tags.GetInt64("ban-duration")
}

// ParseClearChat parses a CLEARCHAT frame.
func ParseClearChat(f irc.Frame) (ClearChat, error) {
	if err := expectCommand(f, "CLEARCHAT"); err != nil {
		return ClearChat{}, err
	}
	channel, err := expectArg(f, "CLEARCHAT", 0)
	if err != nil {
		return ClearChat{}, err
	}
	return ClearChat{Raw: f.Raw(), Tags: f.Tags(), Channel: channel, Name: optData(f)}, nil
}
