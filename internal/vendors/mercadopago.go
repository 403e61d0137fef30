package vendors

import (
	"regexp"

	"brnotif/notif-parse/internal/models"
)

// Mercado Pago notifications arrive from both the wallet app and the
// marketplace app; the dispatch table maps both identifiers here.
var mercadoPagoRules = RuleSet{
	Rules: []Rule{
		{
			// Bullet format: "R$ 45,90 • Padaria Silva"
			Pattern:       regexp.MustCompile(`R\$\s{0,4}([\d.,]{1,20})\s{0,4}[•·]\s{0,4}([^\n]{1,60})`),
			AmountGroup:   1,
			MerchantGroup: 2,
			Confidence:    0.9,
			Type:          models.TypePurchase,
		},
		{
			Pattern:       regexp.MustCompile(`(?i)\bvocê\s{1,4}pagou\s{1,4}R\$\s{0,4}([\d.,]{1,20})\s{1,4}(?:em|para)\s{1,4}([^\n]{1,60})`),
			AmountGroup:   1,
			MerchantGroup: 2,
			Confidence:    0.9,
			Type:          models.TypePurchase,
		},
		{
			Pattern:     regexp.MustCompile(`(?i)\bpagamento\s{1,4}de\s{1,4}R\$\s{0,4}([\d.,]{1,20})\s{1,4}aprovado\b`),
			AmountGroup: 1,
			Confidence:  0.9,
			Type:        models.TypePurchase,
		},
	},
}
