package extractors_test

import (
	"testing"

	"brnotif/notif-parse/internal/extractors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardSuffix(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "bullet prefixed digits",
			input:    "Compra no cartão •••• 1234",
			expected: "1234",
		},
		{
			name:     "asterisk prefixed digits",
			input:    "Cartão **** 5678 aprovado",
			expected: "5678",
		},
		{
			name:     "final keyword",
			input:    "cartão final 9876",
			expected: "9876",
		},
		{
			name:     "cartao without final",
			input:    "no cartão 4321 de crédito",
			expected: "4321",
		},
		{
			name:     "bare digits before preposition",
			input:    "compra 9876 no crédito",
			expected: "9876",
		},
		{
			name:     "bare digits at end of string",
			input:    "débito termina 1111",
			expected: "1111",
		},
		{
			name:     "year-like token still matches",
			input:    "vencimento em 2024",
			expected: "2024",
		},
		{
			name:     "no match",
			input:    "sem nenhum sufixo aqui",
			expected: "",
		},
		{
			name:     "five digit run is not a suffix",
			input:    "protocolo 12345",
			expected: "",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractors.CardSuffix(tt.input)
			assert.Equal(t, tt.expected, got)
			if got != "" {
				assert.Regexp(t, `^\d{4}$`, got)
			}
		})
	}
}

func TestAmount(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		ok       bool
	}{
		{
			name:     "currency prefixed with cents",
			input:    "Total R$ 1.234,56 hoje",
			expected: "1234.56",
			ok:       true,
		},
		{
			name:     "currency prefixed integer",
			input:    "R$ 45",
			expected: "45",
			ok:       true,
		},
		{
			name:     "no space after symbol",
			input:    "R$45,90",
			expected: "45.90",
			ok:       true,
		},
		{
			name:     "four digits without thousands separator",
			input:    "R$ 2500,00 em Loja",
			expected: "2500.00",
			ok:       true,
		},
		{
			name:     "separator-free cents value keeps all digits",
			input:    "R$ 1234,56",
			expected: "1234.56",
			ok:       true,
		},
		{
			name:     "separator-free integer keeps all digits",
			input:    "R$ 1234",
			expected: "1234",
			ok:       true,
		},
		{
			name:  "no currency symbol",
			input: "pague 45,90 agora",
			ok:    false,
		},
		{
			name:  "symbol without number",
			input: "R$ abc",
			ok:    false,
		},
		{
			name:  "empty input",
			input: "",
			ok:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := extractors.Amount(tt.input)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				expected := decimal.RequireFromString(tt.expected)
				assert.True(t, expected.Equal(got), "expected %s, got %s", expected, got)
			}
		})
	}
}

func TestMerchant(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "after preposition",
			input:    "R$ 20,00 no Mercado",
			expected: "Mercado",
		},
		{
			name:     "after dash",
			input:    "compra aprovada - Loja Azul",
			expected: "Loja Azul",
		},
		{
			name:     "short candidate rejected",
			input:    "em X",
			expected: "",
		},
		{
			name:     "short candidate falls through to dash pattern",
			input:    "em X\n- Padaria Central",
			expected: "Padaria Central",
		},
		{
			name:     "no pattern",
			input:    "nada aqui",
			expected: "",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractors.Merchant(tt.input))
		})
	}
}
