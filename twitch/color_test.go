package twitch

import "testing"

func TestParseRGB(t *testing.T) {
	cases := map[string]RGB{
		"#FF0000": {0xFF, 0x00, 0x00},
		"0000FF":  {0x00, 0x00, 0xFF},
		"#59517B": {0x59, 0x51, 0x7B},
	}
	for in, want := range cases {
		got, err := ParseRGB(in)
		if err != nil {
			t.Fatalf("ParseRGB(%q) error: %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseRGB(%q) = %+v, want %+v", in, got, want)
		}
	}
}

func TestParseRGBInvalid(t *testing.T) {
	for _, in := range []string{"", "#zzzzzz", "#fff", "ff0000ff"} {
		if _, err := ParseRGB(in); err == nil {
			t.Fatalf("ParseRGB(%q) expected error", in)
		}
	}
}

func TestRGBString(t *testing.T) {
	if got := (RGB{0x00, 0xFF, 0x7F}).String(); got != "#00FF7F" {
		t.Fatalf("String() = %q", got)
	}
}

func TestParseColorNamed(t *testing.T) {
	c, err := ParseColor("#FF0000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Name != ColorRed {
		t.Fatalf("name = %q, want Red", c.Name)
	}
}

func TestParseColorCustom(t *testing.T) {
	c, err := ParseColor("#59517B")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Name != ColorCustom {
		t.Fatalf("name = %q, want custom", c.Name)
	}
	if c.RGB.String() != "#59517B" {
		t.Fatalf("rgb = %v", c.RGB)
	}
}

func TestDefaultRGB(t *testing.T) {
	if got := DefaultRGB(); got != (RGB{0xFF, 0xFF, 0xFF}) {
		t.Fatalf("DefaultRGB() = %+v", got)
	}
}
