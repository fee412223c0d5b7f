package command

import (
	"github.com/museun/twitchchat-go/irc"
	"github.com/museun/twitchchat-go/twitch"
)

// SubPlan is the tier of a sub/resub event.
type SubPlan int

const (
	SubPlanUnknown SubPlan = iota
	SubPlanPrime
	SubPlanTier1
	SubPlanTier2
	SubPlanTier3
)

var subPlanNames = map[string]SubPlan{
	"Prime": SubPlanPrime,
	"1000":  SubPlanTier1,
	"2000":  SubPlanTier2,
	"3000":  SubPlanTier3,
}

// UserNoticeKind is a closed enumeration of Twitch's documented `msg-id`
// values for USERNOTICE events, with an Unknown escape hatch.
type UserNoticeKind int

const (
	UserNoticeSub UserNoticeKind = iota
	UserNoticeResub
	UserNoticeSubGift
	UserNoticeAnonSubGift
	UserNoticeSubMysteryGift
	UserNoticeGiftPaidUpgrade
	UserNoticeRewardGift
	UserNoticeAnonGiftPaidUpgrade
	UserNoticeRaid
	UserNoticeUnraid
	UserNoticeRitual
	UserNoticeBitsBadgeTier
	UserNoticeUnknown
)

var userNoticeKindNames = map[string]UserNoticeKind{
	"sub":                 UserNoticeSub,
	"resub":               UserNoticeResub,
	"subgift":             UserNoticeSubGift,
	"anonsubgift":         UserNoticeAnonSubGift,
	"submysterygift":      UserNoticeSubMysteryGift,
	"giftpaidupgrade":     UserNoticeGiftPaidUpgrade,
	"rewardgift":          UserNoticeRewardGift,
	"anongiftpaidupgrade": UserNoticeAnonGiftPaidUpgrade,
	"raid":                UserNoticeRaid,
	"unraid":              UserNoticeUnraid,
	"ritual":              UserNoticeRitual,
	"bitsbadgetier":       UserNoticeBitsBadgeTier,
}

// UserNotice covers the family of server events triggered by subs, resubs,
// gift subs, raids and rituals; the specific kind and its parameters are
// carried entirely in tags.
type UserNotice struct {
	Raw     string
	Tags    irc.Tags
	Channel string
	Message *string // absent for e.g. a bare "sub" with no user comment
}

// ParseUserNotice parses a USERNOTICE frame.
func ParseUserNotice(f irc.Frame) (UserNotice, error) {
	if err := expectCommand(f, "USERNOTICE"); err != nil {
		return UserNotice{}, err
	}
	channel, err := expectArg(f, "USERNOTICE", 0)
	if err != nil {
		return UserNotice{}, err
	}
	return UserNotice{Raw: f.Raw(), Tags: f.Tags(), Channel: channel, Message: optData(f)}, nil
}

// Kind returns the event's msg-id, mapped to its known enumeration value.
func (u UserNotice) Kind() (UserNoticeKind, string, bool) {
	raw, ok := u.Tags.Get("msg-id")
	if !ok {
		return 0, "", false
	}
	if kind, known := userNoticeKindNames[raw]; known {
		return kind, raw, true
	}
	return UserNoticeUnknown, raw, true
}

func (u UserNotice) BadgeInfo() []twitch.Badge {
	raw, _ := u.Tags.Get("badge-info")
	return twitch.ParseBadges(raw)
}

func (u UserNotice) Badges() []twitch.Badge {
	raw, _ := u.Tags.Get("badges")
	return twitch.ParseBadges(raw)
}

func (u UserNotice) Color() (twitch.Color, bool) {
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

func (u UserNotice) DisplayName() (string, bool) { return u.Tags.GetUnescaped("display-name") }

func (u UserNotice) Emotes() []twitch.Emote {
	raw, _ := u.Tags.Get("emotes")
	return twitch.ParseEmotes(raw)
}

func (u UserNotice) ID() (string, bool)    { return u.Tags.Get("id") }
func (u UserNotice) Login() (string, bool) { return u.Tags.Get("login") }

func (u UserNotice) SystemMsg() (string, bool) { return u.Tags.GetUnescaped("system-msg") }

// SubPlan returns the msg-param-sub-plan tag, mapped to its enumeration.
func (u UserNotice) SubPlan() (SubPlan, bool) {
	raw, ok := u.Tags.Get("msg-param-sub-plan")
	if !ok {
		return SubPlanUnknown, false
	}
	plan, ok := subPlanNames[raw]
	return plan, ok
}

func (u UserNotice) CumulativeMonths() (int64, bool) {
	return u.Tags.GetInt64("msg-param-cumulative-months")
}

func (u UserNotice) StreakMonths() (int64, bool) {
	return u.Tags.GetInt64("msg-param-streak-months")
}

func (u UserNotice) ShouldShareStreak() bool {
	return u.Tags.GetBool("msg-param-should-share-streak")
}

func (u UserNotice) RecipientDisplayName() (string, bool) {
	return u.Tags.Get("msg-param-recipient-display-name")
}

func (u UserNotice) RecipientUserName() (string, bool) {
	return u.Tags.Get("msg-param-recipient-user-name")
}

// RaidViewerCount returns the viewer count for a raid event.
func (u UserNotice) RaidViewerCount() (int64, bool) {
	return u.Tags.GetInt64("msg-param-viewerCount")
}

func (u UserNotice) RoomID() (int64, bool)    { return u.Tags.GetInt64("room-id") }
func (u UserNotice) TmiSentTS() (int64, bool) { return u.Tags.GetInt64("tmi-sent-ts") }
func (u UserNotice) UserID() (int64, bool)    { return u.Tags.GetInt64("user-id") }
func (u UserNotice) IsModerator() bool        { return u.Tags.GetBool("mod") }
