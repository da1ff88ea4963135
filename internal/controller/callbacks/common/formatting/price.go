package formatting

import (
	"strconv"
)

// FormatPrice форматирует цену в динарах: 2500 -> "2 500 DA"
func FormatPrice(dinars int) string {
	s := strconv.Itoa(dinars)
	if dinars < 0 {
		return "-" + FormatPrice(-dinars)
	}

	var out []byte
	for i := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ' ')
		}
		out = append(out, s[i])
	}
	return string(out) + " DA"
}
