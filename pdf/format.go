package pdf

import (
	"math"
	"strconv"
	"strings"
)

const ellipsis = "..."

// Measurer reports the rendered width of a text run in points.
type Measurer interface {
	MeasureTextWidth(text string, font Font) float64
}

// MeasureWidth returns the width of text set in font, as measured by m.
// A nil measurer measures nothing.
func MeasureWidth(m Measurer, text string, font Font) float64 {
	if m == nil || text == "" {
		return 0
	}
	return m.MeasureTextWidth(text, font)
}

// Truncate shortens text to at most maxChars characters. Longer text keeps its
// first maxChars-3 characters followed by "...". Budgets of 3 or less cut
// without an ellipsis. Characters are counted as runes, not measured.
func Truncate(text string, maxChars int) string {
	if maxChars <= 0 {
		return ""
	}
	runes := []rune(text)
	if len(runes) <= maxChars {
		return text
	}
	if maxChars <= len(ellipsis) {
		return string(runes[:maxChars])
	}
	return string(runes[:maxChars-len(ellipsis)]) + ellipsis
}

// FormatNumber renders value with a comma decimal separator and the integer
// part grouped by three with a plain space: 1234567.5 -> "1 234 567,50".
// Negative and non-finite values render as zero.
func FormatNumber(value float64, decimals int) string {
	if decimals < 0 {
		decimals = 0
	}
	if !(value > 0) || math.IsInf(value, 1) {
		value = 0
	}
	raw := strconv.FormatFloat(value, 'f', decimals, 64)
	intPart, fracPart, _ := strings.Cut(raw, ".")

	grouped := groupThousands(intPart)
	if decimals == 0 {
		return grouped
	}
	return grouped + "," + fracPart
}

// groupThousands inserts a space every third digit counted from the right.
func groupThousands(digits string) string {
	rev := reverse(digits)
	var b strings.Builder
	for i, r := range rev {
		if i > 0 && i%3 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return reverse(b.String())
}

func reverse(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}

// FormatCurrency renders value with two decimals followed by the currency code.
func FormatCurrency(value float64, code string) string {
	return FormatNumber(value, 2) + " " + code
}

// FormatPercent renders a percentage such as 12.5 as "12,5 %". Whole values
// drop the decimal part.
func FormatPercent(value float64) string {
	if value == math.Trunc(value) {
		return FormatNumber(value, 0) + " %"
	}
	return FormatNumber(value, 1) + " %"
}

// wrapHard splits text into lines of at most width characters, collapsing
// whitespace first. At most maxLines lines are returned; when text remains
// after the last line, that line ends with an ellipsis.
func wrapHard(text string, width, maxLines int) []string {
	if width <= 0 || maxLines <= 0 {
		return nil
	}
	runes := []rune(strings.Join(strings.Fields(text), " "))
	var lines []string
	for len(runes) > 0 && len(lines) < maxLines {
		n := min(width, len(runes))
		lines = append(lines, strings.TrimSpace(string(runes[:n])))
		runes = runes[n:]
	}
	if len(runes) > 0 && len(lines) > 0 {
		last := []rune(lines[len(lines)-1])
		keep := min(len(last), width-len(ellipsis))
		if keep < 0 {
			keep = 0
		}
		lines[len(lines)-1] = string(last[:keep]) + ellipsis
	}
	return lines
}
