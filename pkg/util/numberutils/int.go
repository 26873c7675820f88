package numberutils

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// ParseIntPrefix reads the integer at the start of str, the way a lenient form parser would:
// leading whitespace and one sign are accepted and parsing stops at the first non-digit,
// so "30%" gives 30 and "12.7" gives 12. It returns false when no digit is found.
// Values beyond the int range are clamped.
func ParseIntPrefix(str string) (int, bool) {
	str = strings.TrimLeftFunc(str, unicode.IsSpace)

	sign := ""
	if strings.HasPrefix(str, "-") || strings.HasPrefix(str, "+") {
		sign, str = str[:1], str[1:]
	}

	end := 0
	for end < len(str) && str[end] >= '0' && str[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}

	value, err := strconv.Atoi(sign + str[:end])
	if err != nil {
		if sign == "-" {
			return math.MinInt, true
		}
		return math.MaxInt, true
	}
	return value, true
}
