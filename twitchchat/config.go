package twitchchat

import "strings"

// AnonymousNick and AnonymousToken are Twitch's documented anonymous login
// pair. A UserConfig built with this nick/token omits PASS during
// registration.
const (
	AnonymousNick  = "justinfan1234"
	AnonymousToken = "justinfan1234"
)

// UserConfig controls how the runner registers with the server: the
// credentials it sends and the capabilities it requests.
type UserConfig struct {
	Nick  string
	Token string

	Tags       bool
	Commands   bool
	Membership bool
}

// Option configures a UserConfig at construction time.
type Option func(*UserConfig)

// WithTags requests the twitch.tv/tags capability.
func WithTags() Option { return func(c *UserConfig) { c.Tags = true } }

// WithCommands requests the twitch.tv/commands capability.
func WithCommands() Option { return func(c *UserConfig) { c.Commands = true } }

// WithMembership requests the twitch.tv/membership capability.
func WithMembership() Option { return func(c *UserConfig) { c.Membership = true } }

// WithAllCapabilities requests tags, commands, and membership, the set most
// bots want.
func WithAllCapabilities() Option {
	return func(c *UserConfig) {
		c.Tags = true
		c.Commands = true
		c.Membership = true
	}
}

// NewUserConfig validates nick and token and applies opts. nick must be
// non-empty. token, if non-empty, must either be the documented anonymous
// token or start with "oauth:".
func NewUserConfig(nick, token string, opts ...Option) (*UserConfig, error) {
	if nick == "" {
		return nil, NewError(InvalidConfig, "nick must not be empty")
	}
	if token != "" && token != AnonymousToken && !strings.HasPrefix(token, "oauth:") {
		return nil, NewError(InvalidConfig, "token must start with \"oauth:\" or be the anonymous token")
	}
	cfg := &UserConfig{Nick: nick, Token: token}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg, nil
}

// Anonymous builds a UserConfig for Twitch's documented read-only anonymous
// login.
func Anonymous(opts ...Option) *UserConfig {
	cfg, _ := NewUserConfig(AnonymousNick, AnonymousToken, opts...)
	return cfg
}

// IsAnonymous reports whether c uses the documented anonymous login, in
// which case the registration sequence omits PASS.
func (c *UserConfig) IsAnonymous() bool {
	return c.Token == "" || c.Token == AnonymousToken
}

// Capabilities returns the twitch.tv/* capability names requested by c, in
// the fixed order tags, commands, membership.
func (c *UserConfig) Capabilities() []string {
	var caps []string
	if c.Tags {
		caps = append(caps, "twitch.tv/tags")
	}
	if c.Commands {
		caps = append(caps, "twitch.tv/commands")
	}
	if c.Membership {
		caps = append(caps, "twitch.tv/membership")
	}
	return caps
}

// NormalizeChannel lowercases name and ensures it has a single leading '#',
// matching Twitch's case-insensitive, hash-prefixed channel naming.
func NormalizeChannel(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.TrimPrefix(name, "#")
	return "#" + name
}
