// Package engine orchestrates notification parsing: dispatch to a vendor
// rule set, fall back to the generic extractors, assemble the result with
// its confidence and transaction type. Parse is pure over the static rule
// configuration — no side effects beyond logging, safe for any number of
// concurrent callers.
package engine

import (
	"brnotif/notif-parse/internal/amount"
	"brnotif/notif-parse/internal/extractors"
	"brnotif/notif-parse/internal/models"
	"brnotif/notif-parse/internal/textclean"
	"brnotif/notif-parse/internal/vendors"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger allows setting a configured logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Confidence levels for the generic fallback path. Vendor rules carry their
// own, higher values.
const (
	ConfidenceGenericFull   = 0.6
	ConfidenceGenericAmount = 0.4
	ConfidenceMinimum       = 0.1
)

// Parse extracts a monetary amount, counterparty, card suffix and
// transaction type from one raw notification. It never fails: any input,
// including empty strings, yields a well-formed result whose confidence
// reflects how specific the matching path was.
func Parse(raw models.RawNotification) models.ParsedNotification {
	key := vendors.Dispatch(raw.Package)
	if set, ok := vendors.Rules(key); ok {
		if parsed, matched := applyRuleSet(set, raw); matched {
			parsed.CardLastFour = extractors.CardSuffix(raw.CombinedText())
			log.WithFields(logrus.Fields{
				"vendor":     key,
				"type":       parsed.Type,
				"confidence": parsed.Confidence,
			}).Debug("Vendor rule matched")
			return parsed
		}
		log.WithField("vendor", key).Debug("No vendor rule matched, falling back to generic extraction")
	}
	return parseGeneric(raw)
}

// IsSupportedPackage reports whether a package identifier belongs to a
// configured vendor, for callers that pre-filter before parsing.
func IsSupportedPackage(packageID string) bool {
	return vendors.IsSupported(packageID)
}

// applyRuleSet tries a vendor's ordered rules; the first pattern that both
// matches and yields a parseable amount wins. Vendor specificity is binary:
// either a rule matches at its fixed confidence or the whole set is a miss.
func applyRuleSet(set vendors.RuleSet, raw models.RawNotification) (models.ParsedNotification, bool) {
	text := raw.CombinedText()
	if set.BodyOnly {
		text = raw.Body
	}

	for _, rule := range set.Rules {
		m := rule.Pattern.FindStringSubmatch(text)
		if m == nil || len(m) <= rule.AmountGroup {
			continue
		}
		amt, ok := amount.ParseBrazilian(m[rule.AmountGroup])
		if !ok {
			continue
		}

		parsed := models.ParsedNotification{
			Amount:     &amt,
			Confidence: rule.Confidence,
			Type:       rule.Type,
		}
		if rule.MerchantGroup > 0 && len(m) > rule.MerchantGroup {
			parsed.Merchant = textclean.CleanMerchant(m[rule.MerchantGroup])
		}
		// Title equality decides direction for vendors that encode it there.
		if t, ok := set.TitleTypes[raw.Title]; ok {
			parsed.Type = t
		}
		return parsed, true
	}
	return models.ParsedNotification{}, false
}

// parseGeneric is the fully generic path: independent extractors over the
// combined text, graded confidence, type always unknown.
func parseGeneric(raw models.RawNotification) models.ParsedNotification {
	text := raw.CombinedText()

	parsed := models.ParsedNotification{
		Confidence:   ConfidenceMinimum,
		Type:         models.TypeUnknown,
		CardLastFour: extractors.CardSuffix(text),
		Merchant:     textclean.CleanMerchant(extractors.Merchant(text)),
	}
	if amt, ok := extractors.Amount(text); ok {
		parsed.Amount = &amt
		if parsed.Merchant != "" {
			parsed.Confidence = ConfidenceGenericFull
		} else {
			parsed.Confidence = ConfidenceGenericAmount
		}
	}
	return parsed
}
