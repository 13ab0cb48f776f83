package meter

import (
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// ValueFormatter turns the meter value into the readout text.
type ValueFormatter func(v float64) string

// FormatValue renders v as the shortest decimal that reads back as the
// same float64, the way a browser prints a number: 50, 12.5, 0.1.
func FormatValue(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// fixedFormatter prints a fixed number of decimals.
func fixedFormatter(precision int) ValueFormatter {
	return func(v float64) string {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return FormatValue(v)
		}
		return strconv.FormatFloat(v, 'f', precision, 64)
	}
}

// localeFormatter prints with the grouping and decimal separators of a
// language. A negative precision keeps the locale's default fraction
// digits.
func localeFormatter(tag language.Tag, precision int) ValueFormatter {
	p := message.NewPrinter(tag)
	var opts []number.Option
	if precision >= 0 {
		opts = append(opts, number.MinFractionDigits(precision), number.MaxFractionDigits(precision))
	}
	return func(v float64) string {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return FormatValue(v)
		}
		return p.Sprintf("%v", number.Decimal(v, opts...))
	}
}
