// Package textclean normalizes extracted merchant text for display.
package textclean

import (
	"regexp"
	"strings"
)

// MaxMerchantLen is the display-name length cap, in runes.
const MaxMerchantLen = 50

var (
	whitespaceRe  = regexp.MustCompile(`\s+`)
	cardMarkerRe  = regexp.MustCompile(`[•·*]{1,8}\s{0,4}\d{4}`)
	trailingSepRe = regexp.MustCompile(`\s{0,4}[-–—]{1,4}\s{0,4}$`)
)

// CleanMerchant produces a normalized counterparty display name: whitespace
// runs collapse to one space, embedded card-number markers (bullets or
// asterisks followed by four digits) are removed, a trailing dash separator
// is stripped, and the result is capped at MaxMerchantLen runes. The return
// value may be empty; callers treat empty as "no merchant".
func CleanMerchant(raw string) string {
	s := whitespaceRe.ReplaceAllString(raw, " ")
	s = cardMarkerRe.ReplaceAllString(s, "")
	s = whitespaceRe.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)
	s = trailingSepRe.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)

	if runes := []rune(s); len(runes) > MaxMerchantLen {
		s = strings.TrimSpace(string(runes[:MaxMerchantLen]))
	}
	return s
}
