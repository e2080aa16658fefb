// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package color

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Color is an RGB color with 8-bit alpha.
type Color struct {
	colorful.Color
	A uint8
}

// Opaque returns c with full alpha.
func Opaque(c colorful.Color) Color {
	return Color{Color: c.Clamped(), A: 0xff}
}

// RGBA implements image/color.Color with alpha premultiplied.
func (c Color) RGBA() (r, g, b, a uint32) {
	r8, g8, b8 := c.RGB255()
	a = uint32(c.A) * 0x101
	r = uint32(r8) * 0x101 * a / 0xffff
	g = uint32(g8) * 0x101 * a / 0xffff
	b = uint32(b8) * 0x101 * a / 0xffff
	return r, g, b, a
}

// String formats c as #rrggbb, or #aarrggbb when not fully opaque.
func (c Color) String() string {
	if c.A == 0xff {
		return c.Hex()
	}
	return fmt.Sprintf("#%02x%s", c.A, c.Hex()[1:])
}

// Parse decodes s as one of
//
//	#rgb  #rrggbb  #aarrggbb
//	rgb(r, g, b)  rgba(r, g, b, a)
//	a CSS/SVG color name such as "red" or "lightyellow"
//
// The second result is false when s is none of these.
func Parse(s string) (Color, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Color{}, false
	}
	if s[0] == '#' {
		return parseHex(s)
	}
	lower := strings.ToLower(s)
	if strings.HasPrefix(lower, "rgb") {
		return parseFunc(lower)
	}
	if rgba, ok := colornames.Map[lower]; ok {
		c, _ := colorful.MakeColor(rgba)
		return Opaque(c), true
	}
	return Color{}, false
}

func parseHex(s string) (Color, bool) {
	alpha := uint64(0xff)
	switch len(s) {
	case 4, 7:
	case 9:
		a, err := strconv.ParseUint(s[1:3], 16, 8)
		if err != nil {
			return Color{}, false
		}
		alpha = a
		s = "#" + s[3:]
	default:
		return Color{}, false
	}
	for _, r := range s[1:] {
		if !isHexDigit(r) {
			return Color{}, false
		}
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, false
	}
	return Color{Color: c, A: uint8(alpha)}, true
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// parseFunc handles rgb(...) and rgba(...) with 0-255 components.
func parseFunc(s string) (Color, bool) {
	var body string
	want := 3
	switch {
	case strings.HasPrefix(s, "rgba(") && strings.HasSuffix(s, ")"):
		body, want = s[len("rgba("):len(s)-1], 4
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		body = s[len("rgb(") : len(s)-1]
	default:
		return Color{}, false
	}
	parts := strings.Split(body, ",")
	if len(parts) != want {
		return Color{}, false
	}
	var v [4]uint8
	v[3] = 0xff
	for i, p := range parts {
		n, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
		if err != nil {
			return Color{}, false
		}
		v[i] = uint8(n)
	}
	c := colorful.Color{R: float64(v[0]) / 255, G: float64(v[1]) / 255, B: float64(v[2]) / 255}
	return Color{Color: c, A: v[3]}, true
}
