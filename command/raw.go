package command

import "github.com/museun/twitchchat-go/irc"

// Raw is the pass-through variant for any frame whose command isn't part of
// the closed set All recognizes.
type Raw struct {
	Frame irc.OwnedFrame
}
