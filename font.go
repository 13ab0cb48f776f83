package meter

import (
	"fmt"
	"strconv"
	"strings"
)

// Font is a CSS-like font descriptor: "<weight> <size>px <family>".
type Font struct {
	Weight string
	Size   float64
	Family string
}

// String returns the descriptor, e.g. "normal 30px Arial".
func (f Font) String() string {
	return f.Weight + " " + strconv.FormatFloat(f.Size, 'f', -1, 64) + "px " + f.Family
}

// ParseFont parses a descriptor produced by Font.String.
// The family may contain spaces.
func ParseFont(s string) (Font, error) {
	fields := strings.Fields(s)
	if len(fields) < 3 {
		return Font{}, fmt.Errorf("%w: %q", ErrInvalidFont, s)
	}
	px, ok := strings.CutSuffix(fields[1], "px")
	if !ok {
		return Font{}, fmt.Errorf("%w: size %q has no px unit", ErrInvalidFont, fields[1])
	}
	size, err := strconv.ParseFloat(px, 64)
	if err != nil || size <= 0 {
		return Font{}, fmt.Errorf("%w: size %q", ErrInvalidFont, fields[1])
	}
	return Font{
		Weight: fields[0],
		Size:   size,
		Family: strings.Join(fields[2:], " "),
	}, nil
}

// fontPair derives the large and small fonts for a large font pixel size.
// The small font is exactly half the large one.
func fontPair(weight, family string, largeSize float64) (large, small Font) {
	large = Font{Weight: weight, Size: largeSize, Family: family}
	small = Font{Weight: weight, Size: largeSize / 2, Family: family}
	return large, small
}
