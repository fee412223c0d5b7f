package command

import (
	"strings"

	"github.com/museun/twitchchat-go/irc"
)

// NamesKind distinguishes the `353` (batch of names) and `366` (end of
// list) numerics that together form a NAMES reply.
type NamesKind int

const (
	NamesStart NamesKind = iota
	NamesEnd
)

// Names is one frame of a channel's NAMES listing. Twitch has deprecated
// this event, but still sends it; callers accumulate Users across
// consecutive NamesStart frames until a NamesEnd arrives.
type Names struct {
	Raw     string
	Name    string
	Channel string
	Kind    NamesKind
	Users   []string // only set when Kind == NamesStart
}

// ParseNames parses a `353` or `366` frame.
func ParseNames(f irc.Frame) (Names, error) {
	var kind NamesKind
	var users []string
	switch f.Command() {
	case "353":
		kind = NamesStart
		data, err := expectData(f, "353")
		if err != nil {
			return Names{}, err
		}
		users = strings.Fields(data)
	case "366":
		kind = NamesEnd
	default:
		return Names{}, invalidCommand("353 or 366", f)
	}

	name, err := expectArg(f, f.Command(), 0)
	if err != nil {
		return Names{}, err
	}
	channel, err := expectArg(f, f.Command(), 1)
	if err != nil {
		return Names{}, err
	}
	if channel == "=" {
		channel, err = expectArg(f, f.Command(), 2)
		if err != nil {
			return Names{}, err
		}
	}

	return Names{Raw: f.Raw(), Name: name, Channel: channel, Kind: kind, Users: users}, nil
}
