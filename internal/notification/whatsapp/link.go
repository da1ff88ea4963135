package whatsapp

import (
	"net/url"
	"strings"
)

const (
	baseURL     = "https://wa.me/"
	countryCode = "213"
)

// Link строит ссылку wa.me на номер phone с предзаполненным текстом.
// Номер в локальном формате 0XXXXXXXXX переводится в 213XXXXXXXXX.
func Link(phone, text string) string {
	link := baseURL + normalizeNumber(phone)
	if text == "" {
		return link
	}
	return link + "?text=" + strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
}

func normalizeNumber(phone string) string {
	digits := make([]byte, 0, len(phone))
	for i := 0; i < len(phone); i++ {
		if phone[i] >= '0' && phone[i] <= '9' {
			digits = append(digits, phone[i])
		}
	}

	n := string(digits)
	switch {
	case strings.HasPrefix(n, "00"):
		return n[2:]
	case strings.HasPrefix(n, countryCode):
		return n
	case strings.HasPrefix(n, "0"):
		return countryCode + n[1:]
	}
	return n
}
