// Package extractors holds the vendor-agnostic fallback extractors. Each one
// walks an ordered pattern list against the combined title+body text and
// returns the first hit; they are the last resort when no vendor rule set
// recognizes a notification.
package extractors

import (
	"regexp"
	"strings"

	"brnotif/notif-parse/internal/amount"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger allows setting a configured logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// cardSuffixPatterns are tried in order; the first capture wins. The bare
// 4-digit forms at the end are inherently ambiguous with years or amounts
// that happen to be four digits — pattern order is the only tie-break, a
// known limitation of the heuristic.
var cardSuffixPatterns = []*regexp.Regexp{
	regexp.MustCompile(`[•·*]{1,8}\s{0,4}(\d{4})\b`),
	regexp.MustCompile(`(?i)\bfinal\s{1,4}(\d{4})\b`),
	regexp.MustCompile(`(?i)\bcart[ãa]o\b(?:\s{1,4}final)?\s{1,4}(\d{4})\b`),
	regexp.MustCompile(`\b(\d{4})\s{1,4}(?:no|na|em|de)\b`),
	regexp.MustCompile(`\b(\d{4})\s{0,4}$`),
}

// CardSuffix extracts the last four digits of a payment card from free text,
// or "" when no pattern matches.
func CardSuffix(text string) string {
	for _, re := range cardSuffixPatterns {
		if m := re.FindStringSubmatch(text); len(m) > 1 {
			log.WithField("suffix", m[1]).Debug("Card suffix extracted")
			return m[1]
		}
	}
	return ""
}

// amountRe matches a currency-symbol-prefixed Brazilian number, with
// bounded repetition to keep matching linear on adversarial input. The
// thousands-separator branch requires at least one separator group;
// alternation is leftmost-first, so a bare-digit number must fall through
// to the second branch instead of losing all but its first three digits.
var amountRe = regexp.MustCompile(`R\$\s{0,4}(\d{1,3}(?:\.\d{3}){1,5}(?:,\d{1,2})?|\d{1,9}(?:,\d{1,2})?)`)

// Amount extracts a currency-prefixed monetary value from free text.
// Numeric conversion is delegated to the amount normalizer; an unparseable
// match reports ok=false just like no match at all.
func Amount(text string) (decimal.Decimal, bool) {
	m := amountRe.FindStringSubmatch(text)
	if len(m) < 2 {
		return decimal.Decimal{}, false
	}
	return amount.ParseBrazilian(m[1])
}

// merchantPatterns look for text following a preposition or a dash.
var merchantPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:no|na|em|para)\s{1,4}([^\n]{1,80})`),
	regexp.MustCompile(`[-–]\s{0,4}([^\n]{1,80})`),
}

// Merchant extracts a raw counterparty candidate from free text. Candidates
// shorter than 3 characters after trimming are rejected and the next
// pattern is tried. The caller is expected to clean the result for display.
func Merchant(text string) string {
	for _, re := range merchantPatterns {
		m := re.FindStringSubmatch(text)
		if len(m) < 2 {
			continue
		}
		candidate := strings.TrimSpace(m[1])
		if len([]rune(candidate)) < 3 {
			continue
		}
		return candidate
	}
	return ""
}
