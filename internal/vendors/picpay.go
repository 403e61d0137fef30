package vendors

import (
	"regexp"

	"brnotif/notif-parse/internal/models"
)

var picpayRules = RuleSet{
	Rules: []Rule{
		{
			Pattern:       regexp.MustCompile(`(?i)\bvocê\s{1,4}pagou\s{1,4}R\$\s{0,4}([\d.,]{1,20})\s{1,4}(?:para|em)\s{1,4}([^\n]{1,60})`),
			AmountGroup:   1,
			MerchantGroup: 2,
			Confidence:    0.9,
			Type:          models.TypePurchase,
		},
		{
			Pattern:       regexp.MustCompile(`(?i)\bvocê\s{1,4}recebeu\s{1,4}R\$\s{0,4}([\d.,]{1,20})\s{1,4}de\s{1,4}([^\n]{1,60})`),
			AmountGroup:   1,
			MerchantGroup: 2,
			Confidence:    0.9,
			Type:          models.TypePixReceived,
		},
		{
			Pattern:       regexp.MustCompile(`(?i)\bPix\s{1,4}de\s{1,4}R\$\s{0,4}([\d.,]{1,20})\s{1,4}enviado\s{1,4}para\s{1,4}([^\n]{1,60})`),
			AmountGroup:   1,
			MerchantGroup: 2,
			Confidence:    0.9,
			Type:          models.TypePixSent,
		},
	},
}
