package vendors

import (
	"regexp"

	"brnotif/notif-parse/internal/models"
)

// Nubank is the one vendor whose notification title, not body, decides the
// transfer direction: the title is an exact known string while the body
// always carries amount and counterparty. Its patterns therefore run
// against the body only, with the title checked first for direction.
var nubankRules = RuleSet{
	BodyOnly: true,
	TitleTypes: map[string]models.TransactionType{
		"Transferência recebida": models.TypePixReceived,
		"Pix recebido":           models.TypePixReceived,
	},
	Rules: []Rule{
		{
			Pattern:       regexp.MustCompile(`(?i)\bPix\s{1,4}recebido\s{1,4}de\s{1,4}R\$\s{0,4}([\d.,]{1,20})\s{1,4}de\s{1,4}([^\n]{1,60})`),
			AmountGroup:   1,
			MerchantGroup: 2,
			Confidence:    0.95,
			Type:          models.TypePixReceived,
		},
		{
			Pattern:       regexp.MustCompile(`(?i)\benviou\s{1,4}um\s{1,4}Pix\s{1,4}de\s{1,4}R\$\s{0,4}([\d.,]{1,20})\s{1,4}para\s{1,4}([^\n]{1,60})`),
			AmountGroup:   1,
			MerchantGroup: 2,
			Confidence:    0.95,
			Type:          models.TypePixSent,
		},
		{
			Pattern:       regexp.MustCompile(`(?i)\btransfer[êe]ncia\s{1,4}de\s{1,4}R\$\s{0,4}([\d.,]{1,20})\s{1,4}(?:de|para)\s{1,4}([^\n]{1,60})`),
			AmountGroup:   1,
			MerchantGroup: 2,
			Confidence:    0.95,
			Type:          models.TypeTransfer,
		},
		{
			Pattern:       regexp.MustCompile(`(?i)\bcompra\s{1,4}de\s{1,4}R\$\s{0,4}([\d.,]{1,20})\s{1,4}(?:aprovada\s{1,4})?em\s{1,4}([^\n]{1,60})`),
			AmountGroup:   1,
			MerchantGroup: 2,
			Confidence:    0.95,
			Type:          models.TypePurchase,
		},
	},
}
