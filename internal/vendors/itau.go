package vendors

import (
	"regexp"

	"brnotif/notif-parse/internal/models"
)

// Itaú ships under two package identifiers (the full bank app and the iti
// wallet) sharing one notification template family.
var itauRules = RuleSet{
	Rules: []Rule{
		{
			Pattern:       regexp.MustCompile(`(?i)\bcompra\s{1,4}aprovada\b[^\n]{0,40}?R\$\s{0,4}([\d.,]{1,20})\s{1,4}em\s{1,4}([^\n]{1,60})`),
			AmountGroup:   1,
			MerchantGroup: 2,
			Confidence:    0.9,
			Type:          models.TypePurchase,
		},
		{
			Pattern:       regexp.MustCompile(`(?i)\bPix\s{1,4}de\s{1,4}R\$\s{0,4}([\d.,]{1,20})\s{1,4}recebido\s{1,4}de\s{1,4}([^\n]{1,60})`),
			AmountGroup:   1,
			MerchantGroup: 2,
			Confidence:    0.9,
			Type:          models.TypePixReceived,
		},
		{
			Pattern:       regexp.MustCompile(`(?i)\bpagamento\s{1,4}de\s{1,4}R\$\s{0,4}([\d.,]{1,20})\s{1,4}(?:para|a)\s{1,4}([^\n]{1,60})`),
			AmountGroup:   1,
			MerchantGroup: 2,
			Confidence:    0.9,
			Type:          models.TypeTransfer,
		},
	},
}
