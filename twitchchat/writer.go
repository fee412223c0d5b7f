package twitchchat

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// outboundFrame is one line queued for the write loop. verb is the logical
// command name used for rate-limit classification; it is not always the
// wire-level IRC verb, since Twitch's moderation commands (ban, timeout,
// slow, ...) are themselves sent as PRIVMSG chat-command text.
type outboundFrame struct {
	verb string
	line string
}

// Writer is the user-facing handle for submitting outgoing commands. It is
// a thin, copyable wrapper over the Runner's shared outbound queue: many
// Writer values can be held concurrently, and every write from every copy
// is serialized into one FIFO honored by the single write loop.
type Writer struct {
	r *Runner
}

// submit validates line for embedded CR/LF, confirms the runner has
// finished registering, and enqueues (verb, line) for the write loop.
func (w *Writer) submit(ctx context.Context, verb, line string) error {
	if w.r.State() != StateRunning {
		return NewError(NotConnected, "writer used before the runner reached Running")
	}
	if strings.ContainsAny(line, "\r\n") {
		return NewError(CannotEscape, "line contains CR or LF")
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	w.r.out.push(outboundFrame{verb: verb, line: line})
	return nil
}

// chatCommand builds a PRIVMSG line carrying a Twitch slash-command (ban,
// timeout, color, ...), the form Twitch IRC actually accepts for
// moderation actions — there is no dedicated BAN or TIMEOUT wire verb.
func (w *Writer) chatCommand(ctx context.Context, verb, channel, text string) error {
	return w.submit(ctx, verb, fmt.Sprintf("PRIVMSG %s :%s", NormalizeChannel(channel), text))
}

// Raw submits a caller-built line verbatim, classified as ratelimit.ClassOther.
func (w *Writer) Raw(ctx context.Context, line string) error {
	return w.submit(ctx, "RAW", line)
}

// Ping submits a PING with the given token.
func (w *Writer) Ping(ctx context.Context, token string) error {
	return w.submit(ctx, "PING", "PING :"+token)
}

// Pong submits a PONG with the given token.
func (w *Writer) Pong(ctx context.Context, token string) error {
	return w.submit(ctx, "PONG", "PONG :"+token)
}

// Join submits a JOIN for channel.
func (w *Writer) Join(ctx context.Context, channel string) error {
	return w.submit(ctx, "JOIN", "JOIN "+NormalizeChannel(channel))
}

// Part submits a PART for channel.
func (w *Writer) Part(ctx context.Context, channel string) error {
	return w.submit(ctx, "PART", "PART "+NormalizeChannel(channel))
}

// Privmsg submits a chat message to channel.
func (w *Writer) Privmsg(ctx context.Context, channel, message string) error {
	return w.submit(ctx, "PRIVMSG", fmt.Sprintf("PRIVMSG %s :%s", NormalizeChannel(channel), message))
}

// Me submits a CTCP ACTION (/me) to channel.
func (w *Writer) Me(ctx context.Context, channel, message string) error {
	return w.submit(ctx, "PRIVMSG", fmt.Sprintf("PRIVMSG %s :\x01ACTION %s\x01", NormalizeChannel(channel), message))
}

// Whisper submits a private message to user via Twitch's legacy #jtv
// whisper command.
func (w *Writer) Whisper(ctx context.Context, user, message string) error {
	return w.submit(ctx, "WHISPER", fmt.Sprintf("PRIVMSG #jtv :/w %s %s", user, message))
}

// Ban permanently bans user from channel, with an optional reason.
func (w *Writer) Ban(ctx context.Context, channel, user, reason string) error {
	text := "/ban " + user
	if reason != "" {
		text += " " + reason
	}
	return w.chatCommand(ctx, "BAN", channel, text)
}

// Unban lifts a ban or timeout on user in channel.
func (w *Writer) Unban(ctx context.Context, channel, user string) error {
	return w.chatCommand(ctx, "UNBAN", channel, "/unban "+user)
}

// Timeout bans user from channel for duration, with an optional reason.
func (w *Writer) Timeout(ctx context.Context, channel, user string, duration time.Duration, reason string) error {
	text := fmt.Sprintf("/timeout %s %d", user, int(duration.Seconds()))
	if reason != "" {
		text += " " + reason
	}
	return w.chatCommand(ctx, "TIMEOUT", channel, text)
}

// Untimeout lifts an active timeout on user in channel.
func (w *Writer) Untimeout(ctx context.Context, channel, user string) error {
	return w.chatCommand(ctx, "UNTIMEOUT", channel, "/untimeout "+user)
}

// Clear purges channel's chat history.
func (w *Writer) Clear(ctx context.Context, channel string) error {
	return w.chatCommand(ctx, "CLEAR", channel, "/clear")
}

// Color changes the caller's display color in channel.
func (w *Writer) Color(ctx context.Context, channel, color string) error {
	return w.chatCommand(ctx, "COLOR", channel, "/color "+color)
}

// Commercial runs an ad break of length seconds (one of Twitch's accepted
// durations: 30, 60, 90, 120, 150, 180) in channel.
func (w *Writer) Commercial(ctx context.Context, channel string, length int) error {
	return w.chatCommand(ctx, "COMMERCIAL", channel, "/commercial "+strconv.Itoa(length))
}

// Disconnect asks the server to close this connection.
func (w *Writer) Disconnect(ctx context.Context, channel string) error {
	return w.chatCommand(ctx, "DISCONNECT", channel, "/disconnect")
}

// EmoteOnly toggles emote-only mode in channel.
func (w *Writer) EmoteOnly(ctx context.Context, channel string, enabled bool) error {
	return w.chatCommand(ctx, "EMOTEONLY", channel, toggleCommand("emoteonly", enabled))
}

// Followers enables followers-only mode in channel, requiring duration of
// prior following. A zero duration means "any follower". It does not turn
// followers-only mode off.
func (w *Writer) Followers(ctx context.Context, channel string, duration time.Duration) error {
	if duration <= 0 {
		return w.chatCommand(ctx, "FOLLOWERS", channel, "/followers")
	}
	return w.chatCommand(ctx, "FOLLOWERS", channel, "/followers "+formatFollowersDuration(duration))
}

// Host starts hosting target from channel.
func (w *Writer) Host(ctx context.Context, channel, target string) error {
	return w.chatCommand(ctx, "HOST", channel, "/host "+target)
}

// Unhost stops hosting from channel.
func (w *Writer) Unhost(ctx context.Context, channel string) error {
	return w.chatCommand(ctx, "UNHOST", channel, "/unhost")
}

// Marker drops a stream marker in channel with an optional comment. Twitch
// rejects comments over 140 bytes, so comment is truncated to the nearest
// UTF-8 boundary at or before that length.
func (w *Writer) Marker(ctx context.Context, channel, comment string) error {
	text := "/marker"
	if comment != "" {
		text += " " + truncateMarkerComment(comment)
	}
	return w.chatCommand(ctx, "MARKER", channel, text)
}

// Mod grants user moderator status in channel.
func (w *Writer) Mod(ctx context.Context, channel, user string) error {
	return w.chatCommand(ctx, "MOD", channel, "/mod "+user)
}

// Unmod revokes user's moderator status in channel.
func (w *Writer) Unmod(ctx context.Context, channel, user string) error {
	return w.chatCommand(ctx, "UNMOD", channel, "/unmod "+user)
}

// R9kBeta toggles unique-chat (r9k) mode in channel.
func (w *Writer) R9kBeta(ctx context.Context, channel string, enabled bool) error {
	return w.chatCommand(ctx, "R9KBETA", channel, toggleCommand("r9kbeta", enabled))
}

// Slow sets slow mode in channel to the given cooldown in seconds; 0
// disables it.
func (w *Writer) Slow(ctx context.Context, channel string, seconds int) error {
	if seconds <= 0 {
		return w.chatCommand(ctx, "SLOWOFF", channel, "/slowoff")
	}
	return w.chatCommand(ctx, "SLOW", channel, "/slow "+strconv.Itoa(seconds))
}

// Subscribers toggles subscribers-only mode in channel.
func (w *Writer) Subscribers(ctx context.Context, channel string, enabled bool) error {
	return w.chatCommand(ctx, "SUBSCRIBERS", channel, toggleCommand("subscribers", enabled))
}

// Vip grants user VIP status in channel.
func (w *Writer) Vip(ctx context.Context, channel, user string) error {
	return w.chatCommand(ctx, "VIP", channel, "/vip "+user)
}

// Unvip revokes user's VIP status in channel.
func (w *Writer) Unvip(ctx context.Context, channel, user string) error {
	return w.chatCommand(ctx, "UNVIP", channel, "/unvip "+user)
}

// Mods requests the moderator list for channel, delivered as a NOTICE.
func (w *Writer) Mods(ctx context.Context, channel string) error {
	return w.chatCommand(ctx, "MODS", channel, "/mods")
}

// Vips requests the VIP list for channel, delivered as a NOTICE.
func (w *Writer) Vips(ctx context.Context, channel string) error {
	return w.chatCommand(ctx, "VIPS", channel, "/vips")
}

// Help requests the list of available chat commands for channel, delivered
// as a NOTICE.
func (w *Writer) Help(ctx context.Context, channel string) error {
	return w.chatCommand(ctx, "HELP", channel, "/help")
}

func toggleCommand(name string, enabled bool) string {
	if enabled {
		return "/" + name
	}
	return "/" + name + "off"
}

func formatFollowersDuration(d time.Duration) string {
	if d < time.Minute {
		return "0m"
	}
	minutes := int(d.Minutes())
	if minutes%60 == 0 {
		return strconv.Itoa(minutes/60) + "h"
	}
	return strconv.Itoa(minutes) + "m"
}

// maxMarkerCommentBytes is Twitch's documented limit for a /marker comment.
const maxMarkerCommentBytes = 140

// truncateMarkerComment cuts s to at most maxMarkerCommentBytes bytes,
// scanning backward to the nearest rune boundary so a multi-byte UTF-8
// character is never split.
func truncateMarkerComment(s string) string {
	if len(s) <= maxMarkerCommentBytes {
		return s
	}
	for n := maxMarkerCommentBytes; n > 0; n-- {
		if utf8.RuneStart(s[n]) {
			return s[:n]
		}
	}
	return ""
}
