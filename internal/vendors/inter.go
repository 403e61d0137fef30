package vendors

import (
	"regexp"

	"brnotif/notif-parse/internal/models"
)

var interRules = RuleSet{
	Rules: []Rule{
		{
			Pattern:       regexp.MustCompile(`(?i)\bcompra\s{1,4}de\s{1,4}R\$\s{0,4}([\d.,]{1,20})\s{1,4}(?:aprovada\s{1,4})?em\s{1,4}([^\n]{1,60})`),
			AmountGroup:   1,
			MerchantGroup: 2,
			Confidence:    0.85,
			Type:          models.TypePurchase,
		},
		{
			Pattern:       regexp.MustCompile(`(?i)\btransfer[êe]ncia\s{1,4}de\s{1,4}R\$\s{0,4}([\d.,]{1,20})\s{1,4}para\s{1,4}([^\n]{1,60})`),
			AmountGroup:   1,
			MerchantGroup: 2,
			Confidence:    0.85,
			Type:          models.TypeTransfer,
		},
	},
}
