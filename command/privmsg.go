package command

import (
	"strings"

	"github.com/museun/twitchchat-go/irc"
	"github.com/museun/twitchchat-go/twitch"
)

const ctcpMarker = "\x01"

// CtcpKind distinguishes a `/me` action from any other CTCP-framed command.
type CtcpKind int

const (
	CtcpNone CtcpKind = iota
	CtcpAction
	CtcpUnknown
)

// Ctcp describes a CTCP-wrapped PRIVMSG body (`\x01COMMAND text\x01`), most
// commonly `/me` which Twitch sends as `\x01ACTION text\x01`.
type Ctcp struct {
	Kind    CtcpKind
	Command string // set when Kind == CtcpUnknown
}

// Privmsg is a chat message.
type Privmsg struct {
	Raw     string
	Tags    irc.Tags
	Name    string
	Channel string
	Data    string
}

// ParsePrivmsg parses a PRIVMSG frame, unwrapping a CTCP envelope (e.g.
// `/me`) from Data so Data always holds the human-readable message text.
func ParsePrivmsg(f irc.Frame) (Privmsg, error) {
	if err := expectCommand(f, "PRIVMSG"); err != nil {
		return Privmsg{}, err
	}
	name, err := expectNick(f, "PRIVMSG")
	if err != nil {
		return Privmsg{}, err
	}
	channel, err := expectArg(f, "PRIVMSG", 0)
	if err != nil {
		return Privmsg{}, err
	}
	data, err := expectData(f, "PRIVMSG")
	if err != nil {
		return Privmsg{}, err
	}

	if strings.HasPrefix(data, ctcpMarker) && strings.HasSuffix(data, ctcpMarker) && len(data) >= 2 {
		inner := data[1 : len(data)-1]
		if sp := strings.IndexByte(inner, ' '); sp >= 0 {
			data = inner[sp+1:]
		} else {
			return Privmsg{}, expectedData("PRIVMSG")
		}
	}

	return Privmsg{Raw: f.Raw(), Tags: f.Tags(), Name: name, Channel: channel, Data: data}, nil
}

// Ctcp reports the CTCP envelope this message arrived in, if any. Data has
// the envelope stripped, so the CTCP command (ACTION vs. other) is read
// back from Raw.
func (p Privmsg) Ctcp() Ctcp {
	idx := strings.Index(p.Raw, ctcpMarker)
	if idx < 0 {
		return Ctcp{}
	}
	rest := p.Raw[idx+1:]
	end := strings.IndexByte(rest, ' ')
	if end < 0 {
		return Ctcp{}
	}
	command := rest[:end]
	if command == "ACTION" {
		return Ctcp{Kind: CtcpAction}
	}
	return Ctcp{Kind: CtcpUnknown, Command: command}
}

// Badges returns the message's badge entries.
func (p Privmsg) Badges() []twitch.Badge {
	raw, _ := p.Tags.Get("badges")
	return twitch.ParseBadges(raw)
}

// Bits returns the number of bits cheered with this message, if any.
func (p Privmsg) Bits() (int64, bool) { return p.Tags.GetInt64("bits") }

// Color returns the author's display color, if set.
func (p Privmsg) Color() (twitch.Color, bool) {
	raw, ok := p.Tags.Get("color")
	if !ok || raw == "" {
		return twitch.Color{}, false
	}
	c, err := twitch.ParseColor(raw)
	if err != nil {
		return twitch.Color{}, false
	}
	return c, true
}

// DisplayName returns the author's display name, if set.
func (p Privmsg) DisplayName() (string, bool) { return p.Tags.GetUnescaped("display-name") }

// Emotes returns the emotes used in this message.
func (p Privmsg) Emotes() []twitch.Emote {
	raw, _ := p.Tags.Get("emotes")
	return twitch.ParseEmotes(raw)
}

// ID returns the message's unique id.
func (p Privmsg) ID() (string, bool) { return p.Tags.Get("id") }

// RoomID returns the channel's user id.
func (p Privmsg) RoomID() (int64, bool) { return p.Tags.GetInt64("room-id") }

// UserID returns the author's user id.
func (p Privmsg) UserID() (int64, bool) { return p.Tags.GetInt64("user-id") }

// TmiSentTS returns the server timestamp the message was sent at.
func (p Privmsg) TmiSentTS() (int64, bool) { return p.Tags.GetInt64("tmi-sent-ts") }

// IsModerator reports whether the author is a moderator in this channel.
func (p Privmsg) IsModerator() bool { return p.Tags.GetBool("mod") }
