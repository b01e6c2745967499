package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

const maxSlugLen = 64

// Slugify lowercases, strips diacritics, collapses every non-alphanumeric run
// into a single hyphen and caps the result at 64 characters. Returns "" when
// nothing usable remains.
func Slugify(s string) string {
	s = norm.NFD.String(strings.ToLower(strings.TrimSpace(s)))

	var b strings.Builder
	pendingHyphen := false
	for _, r := range s {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		} else {
			pendingHyphen = true
		}
	}

	slug := b.String()
	if len(slug) > maxSlugLen {
		slug = strings.Trim(slug[:maxSlugLen], "-")
	}
	return slug
}
