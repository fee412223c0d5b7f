package twitchchat

import "testing"

func TestNewUserConfigRejectsEmptyNick(t *testing.T) {
	if _, err := NewUserConfig("", "oauth:x"); err == nil {
		t.Fatalf("expected error for empty nick")
	}
}

func TestNewUserConfigRejectsMalformedToken(t *testing.T) {
	if _, err := NewUserConfig("museun", "not-oauth-prefixed"); err == nil {
		t.Fatalf("expected error for token without oauth: prefix")
	}
}

func TestNewUserConfigAnonymousByDefault(t *testing.T) {
	cfg, err := NewUserConfig("justinfan1234", "", WithTags(), WithCommands())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.IsAnonymous() {
		t.Fatalf("expected anonymous config")
	}
	caps := cfg.Capabilities()
	if len(caps) != 2 || caps[0] != "twitch.tv/tags" || caps[1] != "twitch.tv/commands" {
		t.Fatalf("caps = %v", caps)
	}
}

func TestAnonymousHelper(t *testing.T) {
	cfg := Anonymous(WithAllCapabilities())
	if cfg.Nick != AnonymousNick || !cfg.IsAnonymous() {
		t.Fatalf("cfg = %+v", cfg)
	}
	if len(cfg.Capabilities()) != 3 {
		t.Fatalf("expected all three capabilities, got %v", cfg.Capabilities())
	}
}

func TestNormalizeChannel(t *testing.T) {
	cases := map[string]string{
		"MuSeun":  "#museun",
		"#museun": "#museun",
		"  #Foo ": "#foo",
		"bar":     "#bar",
	}
	for in, want := range cases {
		if got := NormalizeChannel(in); got != want {
			t.Fatalf("NormalizeChannel(%q) = %q, want %q", in, got, want)
		}
	}
}
