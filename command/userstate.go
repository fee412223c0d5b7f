package command

import (
	"github.com/museun/twitchchat-go/irc"
	"github.com/museun/twitchchat-go/twitch"
)

// UserState is sent on every JOIN and every PRIVMSG we send, reflecting our
// own badges/color/mod status in that channel.
type UserState struct {
	Raw     string
	Tags    irc.Tags
	Channel string
}

// ParseUserState parses a USERSTATE frame.
func ParseUserState(f irc.Frame) (UserState, error) {
	if err := expectCommand(f, "USERSTATE"); err != nil {
		return UserState{}, err
	}
	channel, err := expectArg(f, "USERSTATE", 0)
	if err != nil {
		return UserState{}, err
	}
	return UserState{Raw: f.Raw(), Tags: f.Tags(), Channel: channel}, nil
}

// BadgeInfo returns the badge-info entries (e.g. subscriber month count).
func (u UserState) BadgeInfo() []twitch.Badge {
	raw, _ := u.Tags.Get("badge-info")
	return twitch.ParseBadges(raw)
}

// Badges returns the displayed badge entries.
func (u UserState) Badges() []twitch.Badge {
	raw, _ := u.Tags.Get("badges")
	return twitch.ParseBadges(raw)
}

// Color returns our display color in this channel, if set.
func (u UserState) Color() (twitch.Color, bool) {
	raw, ok := u.Tags.Get("color")
	if !ok || raw == "" {
		return twitch.Color{}, false
	}
	c, err := twitch.ParseColor(raw)
	if err != nil {
		return twitch.Color{}, false
	}
	return c, true
}

// DisplayName returns our display name, if set.
func (u UserState) DisplayName() (string, bool) { return u.Tags.GetUnescaped("display-name") }

// EmoteSets returns the emote-sets available to us in this channel.
func (u UserState) EmoteSets() []string { return u.Tags.GetList("emote-sets") }

// IsModerator reports whether we hold moderator status in this channel.
func (u UserState) IsModerator() bool { return u.Tags.GetBool("mod") }
