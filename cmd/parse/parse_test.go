package parse_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"brnotif/notif-parse/cmd/parse"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommandJSON(t *testing.T) {
	buf := new(bytes.Buffer)
	parse.Cmd.SetOut(buf)
	parse.Cmd.SetErr(buf)
	parse.Cmd.SetArgs([]string{
		"--package", "com.picpay",
		"--body", "Você pagou R$ 25,00 para Loja Azul",
		"--json",
	})

	require.NoError(t, parse.Cmd.Execute())

	var result struct {
		Amount     string  `json:"amount"`
		Merchant   string  `json:"merchant"`
		Confidence float64 `json:"confidence"`
		Type       string  `json:"type"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))

	amt, err := decimal.NewFromString(result.Amount)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("25.00").Equal(amt))
	assert.Equal(t, "Loja Azul", result.Merchant)
	assert.Equal(t, "purchase", result.Type)
	assert.InDelta(t, 0.9, result.Confidence, 0.001)
}
