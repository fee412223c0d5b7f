package command

import "github.com/museun/twitchchat-go/irc"

// NoticeID is a closed enumeration of Twitch's documented `msg-id` values
// for server NOTICE messages, with an Unknown escape hatch for ones not in
// the table.
type NoticeID int

const (
	NoticeUnset NoticeID = iota
	NoticeAlreadyBanned
	NoticeBadAuth
	NoticeMsgChannelSuspended
	NoticeMsgRateLimit
	NoticeMsgRejected
	NoticeNoPermission
	NoticeTimeoutSuccess
	NoticeUnrecognizedCmd
	NoticeUnknown
)

var noticeIDNames = map[string]NoticeID{
	"already_banned":        NoticeAlreadyBanned,
	"bad_auth":              NoticeBadAuth,
	"msg_channel_suspended": NoticeMsgChannelSuspended,
	"msg_ratelimit":         NoticeMsgRateLimit,
	"msg_rejected":          NoticeMsgRejected,
	"no_permission":         NoticeNoPermission,
	"timeout_success":       NoticeTimeoutSuccess,
	"unrecognized_cmd":      NoticeUnrecognizedCmd,
}

// Notice is a server informational/error message, e.g. the response to a
// moderation command or a failed action.
type Notice struct {
	Raw     string
	Tags    irc.Tags
	Channel string
	Text    string
}

// ParseNotice parses a NOTICE frame.
func ParseNotice(f irc.Frame) (Notice, error) {
	if err := expectCommand(f, "NOTICE"); err != nil {
		return Notice{}, err
	}
	channel, err := expectArg(f, "NOTICE", 0)
	if err != nil {
		return Notice{}, err
	}
	text, err := expectData(f, "NOTICE")
	if err != nil {
		return Notice{}, err
	}
	return Notice{Raw: f.Raw(), Tags: f.Tags(), Channel: channel, Text: text}, nil
}

// MsgID returns the notice's msg-id tag, mapped to its known enumeration
// value, if present.
func (n Notice) MsgID() (NoticeID, string, bool) {
	raw, ok := n.Tags.Get("msg-id")
	if !ok {
		return NoticeUnset, "", false
	}
	if id, known := noticeIDNames[raw]; known {
		return id, raw, true
	}
	return NoticeUnknown, raw, true
}
