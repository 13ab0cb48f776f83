package main

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/language"

	"github.com/gogpu/meter"
	"github.com/gogpu/meter/internal/config"
	"github.com/gogpu/meter/surface/ggsurface"
)

// loadTheme resolves the theme setting: a built-in name or a YAML file.
func loadTheme(name string) (meter.Theme, error) {
	switch strings.ToLower(name) {
	case "", "light":
		return meter.LightTheme, nil
	case "dark":
		return meter.DarkTheme, nil
	}
	f, err := os.Open(name)
	if err != nil {
		return meter.Theme{}, fmt.Errorf("theme: %w", err)
	}
	defer f.Close()
	return meter.LoadTheme(f)
}

// meterOptions translates the config into meter options.
func meterOptions(c *config.Config) ([]meter.Option, error) {
	theme, err := loadTheme(c.Theme)
	if err != nil {
		return nil, err
	}
	if c.FontFamily != "" {
		theme.FontFamily = c.FontFamily
	}
	if c.FontWeight != "" {
		theme.FontWeight = c.FontWeight
	}

	opts := []meter.Option{
		meter.WithLabel(c.Label),
		meter.WithTheme(theme),
		meter.WithPrecision(c.Precision),
	}
	if c.Locale != "" {
		tag, err := language.Parse(c.Locale)
		if err != nil {
			return nil, fmt.Errorf("locale %q: %w", c.Locale, err)
		}
		opts = append(opts, meter.WithLocale(tag))
	}
	return opts, nil
}

// newMeter creates a meter on canvas, already holding From as the
// previous value and Value as the current one.
func newMeter(c *config.Config, canvas meter.Canvas) (*meter.Meter, error) {
	opts, err := meterOptions(c)
	if err != nil {
		return nil, err
	}
	m, err := meter.New(canvas, c.Max, opts...)
	if err != nil {
		return nil, err
	}
	m.SetValue(c.From)
	m.SetValue(c.Value)
	return m, nil
}

// newImageCanvas creates a gg canvas, registering --font-file if given.
func newImageCanvas(c *config.Config) (*ggsurface.Canvas, error) {
	var opts []ggsurface.Option
	if c.FontFile != "" {
		fonts := ggsurface.NewFontResolver(0)
		weight := c.FontWeight
		if weight == "" {
			weight = "normal"
		}
		if err := fonts.RegisterFile(c.FontFamily, weight, c.FontFile); err != nil {
			return nil, err
		}
		opts = append(opts, ggsurface.WithFontResolver(fonts))
	}
	return ggsurface.New(c.Width, c.Height, opts...)
}
