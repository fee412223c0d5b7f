package command

import "github.com/museun/twitchchat-go/irc"

// RoomState carries a channel's current chat-mode settings. Twitch only
// includes the tags that changed since the last RoomState for frames sent
// mid-session; every tag is absent on initial JOIN only if none apply.
type RoomState struct {
	Raw     string
	Tags    irc.Tags
	Channel string
}

// ParseRoomState parses a ROOMSTATE frame.
func ParseRoomState(f irc.Frame) (RoomState, error) {
	if err := expectCommand(f, "ROOMSTATE"); err != nil {
		return RoomState{}, err
	}
	channel, err := expectArg(f, "ROOMSTATE", 0)
	if err != nil {
		return RoomState{}, err
	}
	return RoomState{Raw: f.Raw(), Tags: f.Tags(), Channel: channel}, nil
}

// EmoteOnly reports whether emote-only mode is enabled, if the tag is
// present.
func (r RoomState) EmoteOnly() (bool, bool) {
	if !r.Tags.Has("emote-only") {
		return false, false
	}
	return r.Tags.GetBool("emote-only"), true
}

// FollowersOnly reports the minimum follow age (in minutes) required to
// chat, if the tag is present. -1 means followers-only is disabled.
func (r RoomState) FollowersOnly() (int64, bool) {
	return r.Tags.GetInt64("followers-only")
}

// R9K reports whether unique-chat (r9k) mode is enabled, if the tag is
// present.
func (r RoomState) R9K() (bool, bool) {
	if !r.Tags.Has("r9k") {
		return false, false
	}
	return r.Tags.GetBool("r9k"), true
}

// Slow reports the slow-mode interval in seconds, if the tag is present.
func (r RoomState) Slow() (int64, bool) {
	return r.Tags.GetInt64("slow")
}

// SubsOnly reports whether subscribers-only mode is enabled, if the tag is
// present.
func (r RoomState) SubsOnly() (bool, bool) {
	if !r.Tags.Has("subs-only") {
		return false, false
	}
	return r.Tags.GetBool("subs-only"), true
}
