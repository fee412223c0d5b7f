package command

import (
	"github.com/museun/twitchchat-go/irc"
	"github.com/museun/twitchchat-go/twitch"
)

// GlobalUserState is sent once at login, after the TAGS capability has been
// acknowledged: it carries our own account's user id, display name, color
// and badges.
type GlobalUserState struct {
	Raw         string
	Tags        irc.Tags
	UserID      string
	DisplayName *string
	Color       twitch.Color
}

// ParseGlobalUserState parses a GLOBALUSERSTATE frame.
func ParseGlobalUserState(f irc.Frame) (GlobalUserState, error) {
	if err := expectCommand(f, "GLOBALUSERSTATE"); err != nil {
		return GlobalUserState{}, err
	}
	tags := f.Tags()
	userID, ok := tags.Get("user-id")
	if !ok {
		return GlobalUserState{}, expectedTag("GLOBALUSERSTATE", "user-id")
	}
	color := twitch.Color{RGB: twitch.DefaultRGB()}
	if raw, ok := tags.Get("color"); ok && raw != "" {
		if c, err := twitch.ParseColor(raw); err == nil {
			color = c
		}
	}
	var displayName *string
	if v, ok := tags.GetUnescaped("display-name"); ok {
		displayName = &v
	}
	return GlobalUserState{
		Raw:         f.Raw(),
		Tags:        tags,
		UserID:      userID,
		DisplayName: displayName,
		Color:       color,
	}, nil
}

// EmoteSets lists the emote set ids available to our account, always
// containing at least "0".
func (g GlobalUserState) EmoteSets() []string {
	if list := g.Tags.GetList("emote-sets"); list != nil {
		return list
	}
	return []string{"0"}
}

// Badges lists our account's badges.
func (g GlobalUserState) Badges() []twitch.Badge {
	raw, _ := g.Tags.Get("badges")
	return twitch.ParseBadges(raw)
}
