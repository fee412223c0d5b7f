package twitch

import "strconv"

// ByteRange is a half-open [Start, End) span of byte offsets into a
// PRIVMSG's trailing text, marking where one occurrence of an emote sits.
// The wire form `start-end` is inclusive, so End is the wire end plus one.
type ByteRange struct {
	Start uint16
	End   uint16
}

// Emote is one entry from the `emotes` tag: an emote id and every range in
// the message text where it appears. A message using the same emote twice
// (e.g. "Kappa testing Kappa") produces one Emote with two ranges, not two
// Emotes.
type Emote struct {
	ID     int
	Ranges []ByteRange
}

// ParseEmotes parses the full `emotes` tag value:
// `id:start-end,start-end/id:start-end,...`.
func ParseEmotes(raw string) []Emote {
	if raw == "" {
		return nil
	}
	var out []Emote
	for _, entry := range splitTerminated(raw, '/') {
		id, tail, ok := splitOnce(entry, ':')
		if !ok {
			continue
		}
		n, err := strconv.Atoi(id)
		if err != nil {
			continue
		}
		var ranges []ByteRange
		for _, r := range splitTerminated(tail, ',') {
			startS, endS, ok := splitOnce(r, '-')
			if !ok {
				continue
			}
			start, err1 := strconv.ParseUint(startS, 10, 16)
			end, err2 := strconv.ParseUint(endS, 10, 16)
			if err1 != nil || err2 != nil {
				continue
			}
			ranges = append(ranges, ByteRange{Start: uint16(start), End: uint16(end) + 1})
		}
		out = append(out, Emote{ID: n, Ranges: ranges})
	}
	return out
}

// splitOnce splits s on the first occurrence of sep, reporting whether sep
// was found.
func splitOnce(s string, sep byte) (head, tail string, ok bool) {
	for i := 0; i < len(s); i++ {
		if s[i] == sep {
			return s[:i], s[i+1:], true
		}
	}
	return s, "", false
}

// splitTerminated splits s on sep, dropping any trailing empty element
// (mirroring Rust's split_terminated used by the reference implementation).
func splitTerminated(s string, sep byte) []string {
	if s == "" {
		return nil
	}
	var out []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == sep {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	if start < len(s) {
		out = append(out, s[start:])
	}
	return out
}
