package codec

import (
	"math"
	"strconv"
	"strings"
)

const (
	plainLow  = 1e-3
	plainHigh = 1e7
)

// appendNumber renders v as the shortest decimal that parses back to v:
// plain notation with at least one fractional digit for magnitudes in
// [1e-3, 1e7) and for zero, mantissa-E-exponent otherwise (1.0E-5, 2.5E10).
func appendNumber(buf []byte, v float64) []byte {
	abs := math.Abs(v)

	if abs == 0 || (abs >= plainLow && abs < plainHigh) {
		s := strconv.FormatFloat(v, 'f', -1, 64)
		buf = append(buf, s...)

		if !strings.ContainsRune(s, '.') {
			buf = append(buf, ".0"...)
		}

		return buf
	}

	s := strconv.FormatFloat(v, 'e', -1, 64)
	mantissa, exp, _ := strings.Cut(s, "e")

	buf = append(buf, mantissa...)
	if !strings.ContainsRune(mantissa, '.') {
		buf = append(buf, ".0"...)
	}

	e, _ := strconv.Atoi(exp)

	buf = append(buf, 'E')

	return strconv.AppendInt(buf, int64(e), 10)
}

func formatNumber(v float64) string {
	return string(appendNumber(nil, v))
}
