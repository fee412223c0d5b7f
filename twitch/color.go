package twitch

import (
	"fmt"
	"strconv"
	"strings"
)

// RGB is a 24-bit color triplet. The zero value is black; Twitch's
// documented default display color is white, produced by DefaultRGB.
type RGB struct {
	R, G, B uint8
}

// DefaultRGB is the color Twitch falls back to when a user has never set
// one: white.
func DefaultRGB() RGB { return RGB{0xFF, 0xFF, 0xFF} }

// String renders the triplet as `#RRGGBB`.
func (c RGB) String() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// ParseRGB parses a `#rrggbb` or bare `rrggbb` hex triplet.
func ParseRGB(s string) (RGB, error) {
	s = strings.TrimSpace(s)
	switch len(s) {
	case 7:
		if s[0] != '#' {
			return RGB{}, fmt.Errorf("twitch: invalid rgb %q", s)
		}
		s = s[1:]
	case 6:
		// bare hex, nothing to trim
	default:
		return RGB{}, fmt.Errorf("twitch: invalid rgb %q", s)
	}
	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("twitch: invalid rgb %q: %w", s, err)
	}
	return RGB{
		R: uint8(n >> 16),
		G: uint8(n >> 8 & 0xFF),
		B: uint8(n & 0xFF),
	}, nil
}

// TwitchColorName is one of Twitch's documented named colors available to
// non-Turbo accounts. ColorCustom marks an RGB value that didn't match any
// of them (Turbo/Prime accounts can set an arbitrary color).
type TwitchColorName string

// The fifteen named colors Twitch documents for non-Turbo accounts.
const (
	ColorBlue        TwitchColorName = "Blue"
	ColorBlueViolet  TwitchColorName = "BlueViolet"
	ColorCadetBlue   TwitchColorName = "CadetBlue"
	ColorChocolate   TwitchColorName = "Chocolate"
	ColorCoral       TwitchColorName = "Coral"
	ColorDodgerBlue  TwitchColorName = "DodgerBlue"
	ColorFirebrick   TwitchColorName = "Firebrick"
	ColorGoldenRod   TwitchColorName = "GoldenRod"
	ColorGreen       TwitchColorName = "Green"
	ColorHotPink     TwitchColorName = "HotPink"
	ColorOrangeRed   TwitchColorName = "OrangeRed"
	ColorRed         TwitchColorName = "Red"
	ColorSeaGreen    TwitchColorName = "SeaGreen"
	ColorSpringGreen TwitchColorName = "SpringGreen"
	ColorYellowGreen TwitchColorName = "YellowGreen"
	// ColorCustom marks a color that didn't match one of the named
	// values above — the RGB is whatever the (Turbo/Prime) account set.
	ColorCustom TwitchColorName = ""
)

var namedColors = map[TwitchColorName]RGB{
	ColorBlue:        {0x00, 0x00, 0xFF},
	ColorBlueViolet:  {0x8A, 0x2B, 0xE2},
	ColorCadetBlue:   {0x5F, 0x9E, 0xA0},
	ColorChocolate:   {0xD2, 0x69, 0x1E},
	ColorCoral:       {0xFF, 0x7F, 0x50},
	ColorDodgerBlue:  {0x1E, 0x90, 0xFF},
	ColorFirebrick:   {0xB2, 0x22, 0x22},
	ColorGoldenRod:   {0xDA, 0xA5, 0x20},
	ColorGreen:       {0x00, 0x80, 0x00},
	ColorHotPink:     {0xFF, 0x69, 0xB4},
	ColorOrangeRed:   {0xFF, 0x45, 0x00},
	ColorRed:         {0xFF, 0x00, 0x00},
	ColorSeaGreen:    {0x2E, 0x8B, 0x57},
	ColorSpringGreen: {0x00, 0xFF, 0x7F},
	ColorYellowGreen: {0xAD, 0xFF, 0x2F},
}

// Color pairs a Twitch color name (empty for a non-named custom color) with
// its RGB triplet.
type Color struct {
	Name TwitchColorName
	RGB  RGB
}

// ParseColor parses either one of the fifteen color names (matched
// case-insensitively, e.g. "BlueViolet") or a `#rrggbb` / `rrggbb` hex
// triplet, the form the `color` tag carries on the wire. A hex value
// resolves to a named TwitchColorName when the RGB exactly matches one of
// the documented fifteen, and ColorCustom otherwise (a Turbo/Prime
// account's arbitrary choice).
func ParseColor(s string) (Color, error) {
	for name, named := range namedColors {
		if strings.EqualFold(string(name), strings.TrimSpace(s)) {
			return Color{Name: name, RGB: named}, nil
		}
	}
	rgb, err := ParseRGB(s)
	if err != nil {
		return Color{}, err
	}
	for name, named := range namedColors {
		if named == rgb {
			return Color{Name: name, RGB: rgb}, nil
		}
	}
	return Color{Name: ColorCustom, RGB: rgb}, nil
}
