package meter

import "golang.org/x/text/language"

// Option configures a Meter during creation.
//
// Example:
//
//	m, err := meter.New(canvas, 100,
//	    meter.WithLabel("% disk"),
//	    meter.WithPrecision(1),
//	    meter.WithTheme(meter.DarkTheme),
//	)
type Option func(*options)

// options holds optional configuration for Meter creation.
type options struct {
	label     string
	formatter ValueFormatter
	precision int
	locale    *language.Tag
	theme     *Theme
}

// defaultOptions returns the default meter options.
func defaultOptions() options {
	return options{
		precision: -1,
	}
}

// WithLabel sets the initial label.
func WithLabel(label string) Option {
	return func(o *options) {
		o.label = label
	}
}

// WithFormatter replaces the readout formatting entirely.
// It takes precedence over WithPrecision and WithLocale.
func WithFormatter(f ValueFormatter) Option {
	return func(o *options) {
		o.formatter = f
	}
}

// WithPrecision prints the value with a fixed number of decimals.
// A negative precision restores the shortest representation.
func WithPrecision(n int) Option {
	return func(o *options) {
		o.precision = n
	}
}

// WithLocale prints the value with the digit grouping and decimal
// separator of a language, e.g. language.German prints 1.234,5.
func WithLocale(tag language.Tag) Option {
	return func(o *options) {
		o.locale = &tag
	}
}

// WithTheme applies a theme at creation.
// An invalid theme makes New fail.
func WithTheme(t Theme) Option {
	return func(o *options) {
		o.theme = &t
	}
}

// valueFormatter resolves the formatter the options ask for.
func (o options) valueFormatter() ValueFormatter {
	switch {
	case o.formatter != nil:
		return o.formatter
	case o.locale != nil:
		return localeFormatter(*o.locale, o.precision)
	case o.precision >= 0:
		return fixedFormatter(o.precision)
	default:
		return FormatValue
	}
}
