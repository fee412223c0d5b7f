package irc

import "testing"

func TestTagsGet(t *testing.T) {
	tags := ParseTags([]byte("badge-info=;color=#59517B;tmi-sent-ts=1580932171144;user-type="))
	if v, ok := tags.Get("color"); !ok || v != "#59517B" {
		t.Fatalf("color = %q, %v", v, ok)
	}
	if n, ok := tags.GetInt64("tmi-sent-ts"); !ok || n != 1580932171144 {
		t.Fatalf("tmi-sent-ts = %d, %v", n, ok)
	}
	if v, ok := tags.Get("user-type"); !ok || v != "" {
		t.Fatalf("user-type = %q, %v", v, ok)
	}
	if tags.Has("nope") {
		t.Fatalf("expected nope absent")
	}
}

func TestTagsGetBool(t *testing.T) {
	tags := ParseTags([]byte("mod=1;subscriber=0"))
	if !tags.GetBool("mod") {
		t.Fatalf("mod should be true")
	}
	if tags.GetBool("subscriber") {
		t.Fatalf("subscriber should be false")
	}
	if tags.GetBool("absent") {
		t.Fatalf("absent should be false")
	}
}

func TestTagsGetList(t *testing.T) {
	tags := ParseTags([]byte(`emote-sets=0,33,50,237`))
	got := tags.GetList("emote-sets")
	want := []string{"0", "33", "50", "237"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestUnescapeTagValue(t *testing.T) {
	cases := map[string]string{
		`hello\sworld`:  "hello world",
		`a\:b`:          "a;b",
		`a\\b`:          `a\b`,
		`a\rb`:          "a\rb",
		`a\nb`:          "a\nb",
		`a\qb`:          "ab",
		"noescapes":     "noescapes",
		`trailing\`:     `trailing\`,
	}
	for in, want := range cases {
		if got := UnescapeTagValue([]byte(in)); got != want {
			t.Fatalf("UnescapeTagValue(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestTagEscapeRoundTrip(t *testing.T) {
	inputs := []string{
		"plain ascii",
		"semi;colon",
		`back\slash`,
		"line\r\nbreak",
		"",
		"mixed \\ ; \r \n end",
	}
	for _, s := range inputs {
		escaped := EscapeTagValue(s)
		got := UnescapeTagValue([]byte(escaped))
		if got != s {
			t.Fatalf("round trip failed for %q: escaped=%q got=%q", s, escaped, got)
		}
	}
}

func TestTagsRawStaysEscaped(t *testing.T) {
	tags := ParseTags([]byte(`msg=hello\sworld`))
	raw, ok := tags.Get("msg")
	if !ok || raw != `hello\sworld` {
		t.Fatalf("raw = %q, want escaped wire form", raw)
	}
	unescaped, ok := tags.GetUnescaped("msg")
	if !ok || unescaped != "hello world" {
		t.Fatalf("unescaped = %q", unescaped)
	}
}

func TestParseTagsEmpty(t *testing.T) {
	tags := ParseTags(nil)
	if tags.Len() != 0 {
		t.Fatalf("expected no tags")
	}
}
