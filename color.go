package meter

import (
	"image/color"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Color is a straight (non-premultiplied) RGBA color with components in
// [0, 1]. It remembers the string it was parsed from so that it prints
// back the way the host wrote it.
//
// Color implements color.Color.
type Color struct {
	R, G, B, A float64

	src string
}

// Default colors.
var (
	White = RGB(1, 1, 1)
	Black = RGB(0, 0, 0)
)

// RGB creates an opaque color from components in [0, 1].
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// RGBA creates a color from components in [0, 1].
func RGBA(r, g, b, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// FromColor converts a standard color.Color.
func FromColor(c color.Color) Color {
	if mc, ok := c.(Color); ok {
		return mc
	}
	nc := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return Color{
		R: float64(nc.R) / 0xffff,
		G: float64(nc.G) / 0xffff,
		B: float64(nc.B) / 0xffff,
		A: float64(nc.A) / 0xffff,
	}
}

// MustParseColor is like ParseColor but panics on error.
// Use only with literal colors.
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseColor parses a CSS-like color string:
//
//	#rgb, #rgba, #rrggbb, #rrggbbaa
//	rgb(r, g, b), rgba(r, g, b, a)   (r, g, b in 0..255, a in 0..1)
//	named colors ("white", "steelblue", "transparent", ...)
//
// Errors are *ColorError and match ErrInvalidColor.
func ParseColor(s string) (Color, error) {
	in := strings.TrimSpace(s)
	lower := strings.ToLower(in)

	var (
		c  Color
		ok bool
	)
	switch {
	case strings.HasPrefix(lower, "#"):
		c, ok = parseHexColor(lower[1:])
	case strings.HasPrefix(lower, "rgba(") && strings.HasSuffix(lower, ")"):
		c, ok = parseFunctional(lower[len("rgba("):len(lower)-1], true)
	case strings.HasPrefix(lower, "rgb(") && strings.HasSuffix(lower, ")"):
		c, ok = parseFunctional(lower[len("rgb("):len(lower)-1], false)
	case lower == "transparent":
		c, ok = Color{}, true
	default:
		var named color.RGBA
		named, ok = colornames.Map[lower]
		if ok {
			c = FromColor(named)
		}
	}
	if !ok {
		return Color{}, &ColorError{Input: s}
	}
	c.src = in
	return c, nil
}

func parseHexColor(hex string) (Color, bool) {
	var r, g, b uint64
	a := uint64(255)

	digit := func(s string, v *uint64) bool {
		n, err := strconv.ParseUint(s, 16, 8)
		if err != nil {
			return false
		}
		*v = n
		return true
	}

	switch len(hex) {
	case 3, 4:
		if !digit(hex[0:1], &r) || !digit(hex[1:2], &g) || !digit(hex[2:3], &b) {
			return Color{}, false
		}
		if len(hex) == 4 && !digit(hex[3:4], &a) {
			return Color{}, false
		}
		if len(hex) == 4 {
			a *= 17
		}
		r, g, b = r*17, g*17, b*17
	case 6, 8:
		if !digit(hex[0:2], &r) || !digit(hex[2:4], &g) || !digit(hex[4:6], &b) {
			return Color{}, false
		}
		if len(hex) == 8 && !digit(hex[6:8], &a) {
			return Color{}, false
		}
	default:
		return Color{}, false
	}

	return Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}, true
}

func parseFunctional(args string, alpha bool) (Color, bool) {
	parts := strings.Split(args, ",")
	want := 3
	if alpha {
		want = 4
	}
	if len(parts) != want {
		return Color{}, false
	}

	var v [4]float64
	v[3] = 1
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil || math.IsNaN(f) {
			return Color{}, false
		}
		if i < 3 {
			f /= 255
		}
		v[i] = clamp01(f)
	}
	return Color{R: v[0], G: v[1], B: v[2], A: v[3]}, true
}

// RGBA implements color.Color (alpha-premultiplied, 16 bits per channel).
func (c Color) RGBA() (r, g, b, a uint32) {
	alpha := clamp01(c.A)
	r = uint32(clamp01(c.R)*alpha*0xffff + 0.5)
	g = uint32(clamp01(c.G)*alpha*0xffff + 0.5)
	b = uint32(clamp01(c.B)*alpha*0xffff + 0.5)
	a = uint32(alpha*0xffff + 0.5)
	return
}

// Hex returns the color as #rrggbb, or #rrggbbaa when not opaque.
func (c Color) Hex() string {
	to8 := func(v float64) uint8 { return uint8(math.Round(clamp01(v) * 255)) }
	buf := []byte{'#'}
	for _, v := range []float64{c.R, c.G, c.B} {
		buf = appendHexByte(buf, to8(v))
	}
	if a := to8(c.A); a != 255 {
		buf = appendHexByte(buf, a)
	}
	return string(buf)
}

func appendHexByte(dst []byte, v uint8) []byte {
	const digits = "0123456789abcdef"
	return append(dst, digits[v>>4], digits[v&0x0f])
}

// String returns the string the color was parsed from, or its Hex form.
func (c Color) String() string {
	if c.src != "" {
		return c.src
	}
	return c.Hex()
}

// Equal reports whether two colors have the same components,
// regardless of how they were written.
func (c Color) Equal(o Color) bool {
	return c.R == o.R && c.G == o.G && c.B == o.B && c.A == o.A
}

func clamp01(x float64) float64 {
	switch {
	case x < 0:
		return 0
	case x > 1:
		return 1
	default:
		return x
	}
}
