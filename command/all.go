package command

import "github.com/museun/twitchchat-go/irc"

// Any is implemented by every member of the closed command set, including
// Raw. The dispatcher's All channel carries values of this type.
type Any interface {
	isAny()
}

func (IrcReady) isAny()        {}
func (Ready) isAny()           {}
func (Cap) isAny()             {}
func (ClearChat) isAny()       {}
func (ClearMsg) isAny()        {}
func (GlobalUserState) isAny() {}
func (HostTarget) isAny()      {}
func (Join) isAny()            {}
func (Part) isAny()            {}
func (Notice) isAny()          {}
func (Ping) isAny()            {}
func (Pong) isAny()            {}
func (Privmsg) isAny()         {}
func (Reconnect) isAny()       {}
func (RoomState) isAny()       {}
func (UserNotice) isAny()      {}
func (UserState) isAny()       {}
func (Whisper) isAny()         {}
func (Mode) isAny()            {}
func (Names) isAny()           {}
func (Raw) isAny()             {}

// ParseAll dispatches on frame's command, parsing into the matching
// variant. Any frame whose command isn't part of the closed set parses as
// Raw, never as an error.
func ParseAll(f irc.Frame) (Any, error) {
	switch f.Command() {
	case "001":
		return ParseIrcReady(f)
	case "376":
		return ParseReady(f)
	case "CAP":
		return ParseCap(f)
	case "CLEARCHAT":
		return ParseClearChat(f)
	case "CLEARMSG":
		return ParseClearMsg(f)
	case "GLOBALUSERSTATE":
		return ParseGlobalUserState(f)
	case "HOSTTARGET":
		return ParseHostTarget(f)
	case "JOIN":
		return ParseJoin(f)
	case "PART":
		return ParsePart(f)
	case "NOTICE":
		return ParseNotice(f)
	case "PING":
		return ParsePing(f)
	case "PONG":
		return ParsePong(f)
	case "PRIVMSG":
		return ParsePrivmsg(f)
	case "RECONNECT":
		return ParseReconnect(f)
	case "ROOMSTATE":
		return ParseRoomState(f)
	case "USERNOTICE":
		return ParseUserNotice(f)
	case "USERSTATE":
		return ParseUserState(f)
	case "WHISPER":
		return ParseWhisper(f)
	case "MODE":
		return ParseMode(f)
	case "353", "366":
		return ParseNames(f)
	default:
		return Raw{Frame: f.Owned()}, nil
	}
}
