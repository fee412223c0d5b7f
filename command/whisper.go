package command

import (
	"github.com/museun/twitchchat-go/irc"
	"github.com/museun/twitchchat-go/twitch"
)

// Whisper is a private message from another user, delivered over the
// regular connection when the COMMANDS capability is enabled.
type Whisper struct {
	Raw  string
	Tags irc.Tags
	From string
	To   string
	Data string
}

// ParseWhisper parses a WHISPER frame: `:sender WHISPER target :data`.
func ParseWhisper(f irc.Frame) (Whisper, error) {
	if err := expectCommand(f, "WHISPER"); err != nil {
		return Whisper{}, err
	}
	from, err := expectNick(f, "WHISPER")
	if err != nil {
		return Whisper{}, err
	}
	to, err := expectArg(f, "WHISPER", 0)
	if err != nil {
		return Whisper{}, err
	}
	data, err := expectData(f, "WHISPER")
	if err != nil {
		return Whisper{}, err
	}
	return Whisper{Raw: f.Raw(), Tags: f.Tags(), From: from, To: to, Data: data}, nil
}

func (w Whisper) Badges() []twitch.Badge {
	raw, _ := w.Tags.Get("badges")
	return twitch.ParseBadges(raw)
}

func (w Whisper) Color() (twitch.Color, bool) {
	raw, ok := w.Tags.Get("color")
	if !ok || raw == "" {
		return twitch.Color{}, false
	}
	c, err := twitch.ParseColor(raw)
	if err != nil {
		return twitch.Color{}, false
	}
	return c, true
}

func (w Whisper) Emotes() []twitch.Emote {
	raw, _ := w.Tags.Get("emotes")
	return twitch.ParseEmotes(raw)
}

func (w Whisper) MessageID() (string, bool) { return w.Tags.Get("message-id") }
func (w Whisper) ThreadID() (string, bool)  { return w.Tags.Get("thread-id") }
func (w Whisper) UserID() (int64, bool)     { return w.Tags.GetInt64("user-id") }
