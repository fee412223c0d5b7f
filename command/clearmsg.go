package command

import "github.com/museun/twitchchat-go/irc"

// ClearMsg is sent when a single message is deleted (e.g. via the
// moderation UI), identified by target-msg-id.
type ClearMsg struct {
	Raw     string
	Tags    irc.Tags
	Channel string
	Message *string
}

// Login is the login name of the message's author.
func (c ClearMsg) Login() (string, bool) { return c.Tags.Get("login") }

// TargetMsgID is the id of the deleted message.
func (c ClearMsg) TargetMsgID() (string, bool) { return c.Tags.Get("target-msg-id") }

// ParseClearMsg parses a CLEARMSG frame.
func ParseClearMsg(f irc.Frame) (ClearMsg, error) {
	if err := expectCommand(f, "CLEARMSG"); err != nil {
		return ClearMsg{}, err
	}
	channel, err := expectArg(f, "CLEARMSG", 0)
	if err != nil {
		return ClearMsg{}, err
	}
	return ClearMsg{Raw: f.Raw(), Tags: f.Tags(), Channel: channel, Message: optData(f)}, nil
}
