package funnel

import (
	"math"
	"strconv"
	"strings"
)

// Round1 rounds x to the nearest multiple of 0.1, rounding half away from
// zero.
//
// Round1(19.99999999998) == 20.
func Round1(x float64) float64 {
	return math.Round(x*10) / 10
}

// FormatThousands formats x in its shortest decimal representation and
// separates the digits of its integer part into groups of three with commas.
// The fractional part and a leading sign are passed through unchanged.
//
// FormatThousands(12500) == "12,500".
func FormatThousands(x float64) string {
	s := strconv.FormatFloat(x, 'f', -1, 64)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, hasFrac := strings.Cut(s, ".")
	if len(intPart) <= 3 {
		return sign + s
	}

	var sb strings.Builder
	sb.Grow(len(s) + len(intPart)/3 + 1)
	sb.WriteString(sign)
	lead := len(intPart) % 3
	if lead > 0 {
		sb.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(intPart[i : i+3])
	}
	if hasFrac {
		sb.WriteByte('.')
		sb.WriteString(frac)
	}
	return sb.String()
}
