// Package vendors holds one ordered extraction rule set per supported
// banking/payment app, plus the dispatch table from package identifier to
// vendor. Rule sets are static configuration: built once at init, read-only
// afterwards, safe to share between goroutines.
package vendors

import (
	"regexp"
	"sort"

	"brnotif/notif-parse/internal/models"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger allows setting a configured logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// VendorKey identifies one logical vendor. The set is closed; adding a
// vendor means adding a key, a rule file and the package table entries.
type VendorKey string

const (
	Nubank      VendorKey = "nubank"
	Itau        VendorKey = "itau"
	Bradesco    VendorKey = "bradesco"
	PicPay      VendorKey = "picpay"
	MercadoPago VendorKey = "mercadopago"
	Inter       VendorKey = "inter"
	Generic     VendorKey = "generic"
)

// Rule binds one extraction pattern to its output shape: which capture
// groups carry the amount and merchant, and the fixed confidence and
// transaction type a successful match asserts. MerchantGroup 0 means the
// pattern yields no merchant.
type Rule struct {
	Pattern       *regexp.Regexp
	AmountGroup   int
	MerchantGroup int
	Confidence    float64
	Type          models.TransactionType
}

// RuleSet is one vendor's ordered rules, first parseable match wins.
// BodyOnly vendors match patterns against the body alone; for those,
// TitleTypes maps exact notification titles to a transaction direction that
// overrides whatever the matched body rule says.
type RuleSet struct {
	Rules      []Rule
	BodyOnly   bool
	TitleTypes map[string]models.TransactionType
}

// packageTable maps package identifiers to vendor keys. Matching is exact
// and case-sensitive; some vendors ship under more than one identifier.
var packageTable = map[string]VendorKey{
	"com.nu.production":      Nubank,
	"com.itau":               Itau,
	"com.itau.iti":           Itau,
	"com.bradesco":           Bradesco,
	"com.picpay":             PicPay,
	"com.mercadopago.wallet": MercadoPago,
	"com.mercadolibre":       MercadoPago,
	"br.com.intermedium":     Inter,
}

var ruleSets = map[VendorKey]RuleSet{
	Nubank:      nubankRules,
	Itau:        itauRules,
	Bradesco:    bradescoRules,
	PicPay:      picpayRules,
	MercadoPago: mercadoPagoRules,
	Inter:       interRules,
}

// Dispatch resolves a package identifier to its vendor key. Unknown
// identifiers resolve to Generic.
func Dispatch(packageID string) VendorKey {
	if key, ok := packageTable[packageID]; ok {
		return key
	}
	return Generic
}

// Rules returns the rule set for a vendor key. Generic (and any unknown
// key) has no rule set; ok is false.
func Rules(key VendorKey) (RuleSet, bool) {
	set, ok := ruleSets[key]
	return set, ok
}

// IsSupported reports whether a package identifier belongs to a configured
// vendor.
func IsSupported(packageID string) bool {
	_, ok := packageTable[packageID]
	return ok
}

// Packages returns all supported package identifiers, sorted.
func Packages() []string {
	out := make([]string, 0, len(packageTable))
	for pkg := range packageTable {
		out = append(out, pkg)
	}
	sort.Strings(out)
	return out
}
