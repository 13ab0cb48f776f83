package meter

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Theme is a named set of colors and typeface settings.
// Empty fields leave the meter's current setting untouched.
type Theme struct {
	Background string `yaml:"background"`
	Foreground string `yaml:"foreground"`
	Unfilled   string `yaml:"unfilled"`
	SmallText  string `yaml:"small_text"`
	FontFamily string `yaml:"font_family"`
	FontWeight string `yaml:"font_weight"`
}

// Built-in themes.
var (
	// LightTheme holds the meter defaults.
	LightTheme = Theme{
		Background: "#ffffff",
		Foreground: "#000000",
		Unfilled:   "#cccccc",
		SmallText:  "#cccccc",
		FontFamily: "Arial",
		FontWeight: "normal",
	}

	DarkTheme = Theme{
		Background: "#1e1e1e",
		Foreground: "#4fc3f7",
		Unfilled:   "#3a3a3a",
		SmallText:  "#9e9e9e",
		FontFamily: "Arial",
		FontWeight: "bold",
	}
)

// LoadTheme decodes a YAML theme. Unknown keys are rejected.
//
//	background: "#1e1e1e"
//	foreground: steelblue
//	unfilled: rgb(60, 60, 60)
//	small_text: "#9e9e9e"
//	font_family: Go
//	font_weight: bold
func LoadTheme(r io.Reader) (Theme, error) {
	var t Theme
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil {
		if err == io.EOF {
			return Theme{}, nil
		}
		return Theme{}, fmt.Errorf("meter: decode theme: %w", err)
	}
	if _, err := t.colors(); err != nil {
		return Theme{}, err
	}
	return t, nil
}

// themeColors holds the parsed colors of a theme; nil means unset.
type themeColors struct {
	background, foreground, unfilled, smallText *Color
}

func (t Theme) colors() (themeColors, error) {
	var tc themeColors
	for _, f := range []struct {
		src string
		dst **Color
	}{
		{t.Background, &tc.background},
		{t.Foreground, &tc.foreground},
		{t.Unfilled, &tc.unfilled},
		{t.SmallText, &tc.smallText},
	} {
		if f.src == "" {
			continue
		}
		c, err := ParseColor(f.src)
		if err != nil {
			return themeColors{}, fmt.Errorf("meter: theme: %w", err)
		}
		*f.dst = &c
	}
	return tc, nil
}
