// Package isbn implements EAN-13/ISBN-13 validation and the legacy ISBN-10
// check-digit derivation. Everything here is pure.
package isbn

import "strings"

// Normalize removes hyphens and spaces from an ISBN.
func Normalize(code string) string {
	code = strings.ReplaceAll(code, "-", "")
	code = strings.ReplaceAll(code, " ", "")
	return strings.TrimSpace(code)
}

// IsISBN13 reports whether code is a 13-digit book-land EAN: exactly 13
// digits with a 978 or 979 prefix.
func IsISBN13(code string) bool {
	if len(code) != 13 {
		return false
	}
	for i := 0; i < len(code); i++ {
		if code[i] < '0' || code[i] > '9' {
			return false
		}
	}
	return strings.HasPrefix(code, "978") || strings.HasPrefix(code, "979")
}

// ToISBN10 derives the legacy ISBN-10 form of a 978-prefixed ISBN-13.
// 979-prefixed codes have no ISBN-10 equivalent; those and invalid input
// return the empty string.
func ToISBN10(ean13 string) string {
	if !IsISBN13(ean13) || !strings.HasPrefix(ean13, "978") {
		return ""
	}

	core9 := ean13[3:12]
	sum := 0
	for i := 0; i < 9; i++ {
		sum += (10 - i) * int(core9[i]-'0')
	}

	check := (11 - sum%11) % 11
	if check == 10 {
		return core9 + "X"
	}
	return core9 + string(rune('0'+check))
}
