package vendors_test

import (
	"testing"

	"brnotif/notif-parse/internal/vendors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatch(t *testing.T) {
	tests := []struct {
		name      string
		packageID string
		expected  vendors.VendorKey
	}{
		{"nubank", "com.nu.production", vendors.Nubank},
		{"itau main app", "com.itau", vendors.Itau},
		{"itau iti wallet", "com.itau.iti", vendors.Itau},
		{"bradesco", "com.bradesco", vendors.Bradesco},
		{"picpay", "com.picpay", vendors.PicPay},
		{"mercado pago wallet", "com.mercadopago.wallet", vendors.MercadoPago},
		{"mercado livre marketplace", "com.mercadolibre", vendors.MercadoPago},
		{"inter", "br.com.intermedium", vendors.Inter},
		{"unknown package", "com.example.unknown", vendors.Generic},
		{"case sensitive lookup", "COM.NU.PRODUCTION", vendors.Generic},
		{"empty package", "", vendors.Generic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, vendors.Dispatch(tt.packageID))
		})
	}
}

func TestMultiPackageVendorsShareRuleSet(t *testing.T) {
	// Both identifiers must resolve to the same logical vendor
	assert.Equal(t, vendors.Dispatch("com.mercadopago.wallet"), vendors.Dispatch("com.mercadolibre"))
	assert.Equal(t, vendors.Dispatch("com.itau"), vendors.Dispatch("com.itau.iti"))
}

func TestIsSupported(t *testing.T) {
	assert.True(t, vendors.IsSupported("com.nu.production"))
	assert.True(t, vendors.IsSupported("com.mercadolibre"))
	assert.False(t, vendors.IsSupported("com.example.unknown"))
	assert.False(t, vendors.IsSupported(""))
}

func TestPackages(t *testing.T) {
	pkgs := vendors.Packages()
	assert.Len(t, pkgs, 8)
	assert.IsIncreasing(t, pkgs)
	assert.Contains(t, pkgs, "com.picpay")
}

func TestGenericHasNoRuleSet(t *testing.T) {
	_, ok := vendors.Rules(vendors.Generic)
	assert.False(t, ok)
}

func TestRuleSetShape(t *testing.T) {
	keys := []vendors.VendorKey{
		vendors.Nubank,
		vendors.Itau,
		vendors.Bradesco,
		vendors.PicPay,
		vendors.MercadoPago,
		vendors.Inter,
	}

	for _, key := range keys {
		t.Run(string(key), func(t *testing.T) {
			set, ok := vendors.Rules(key)
			require.True(t, ok)
			require.NotEmpty(t, set.Rules)

			for i, rule := range set.Rules {
				assert.NotNil(t, rule.Pattern, "rule %d has no pattern", i)
				assert.Greater(t, rule.Confidence, 0.0, "rule %d", i)
				assert.LessOrEqual(t, rule.Confidence, 1.0, "rule %d", i)
				assert.GreaterOrEqual(t, rule.AmountGroup, 1, "rule %d", i)
				assert.GreaterOrEqual(t, rule.Pattern.NumSubexp(), rule.AmountGroup, "rule %d", i)
				assert.GreaterOrEqual(t, rule.Pattern.NumSubexp(), rule.MerchantGroup, "rule %d", i)
			}
		})
	}
}

func TestNubankTitleDecidesDirection(t *testing.T) {
	set, ok := vendors.Rules(vendors.Nubank)
	require.True(t, ok)
	assert.True(t, set.BodyOnly)
	assert.NotEmpty(t, set.TitleTypes)
	assert.Contains(t, set.TitleTypes, "Transferência recebida")
}
