package common

import (
	"strconv"

	"brnotif/notif-parse/internal/engine"
	"brnotif/notif-parse/internal/models"
)

// NotificationRow is one captured notification in a batch input CSV.
type NotificationRow struct {
	Package string `csv:"Package"`
	Title   string `csv:"Title"`
	Body    string `csv:"Body"`
}

// ResultRow is one parse result in a batch output CSV. Status is "auto"
// when the confidence clears the configured threshold and "review"
// otherwise, mirroring the downstream auto-apply-vs-confirm decision.
type ResultRow struct {
	Package      string `csv:"Package"`
	Amount       string `csv:"Amount"`
	Merchant     string `csv:"Merchant"`
	CardLastFour string `csv:"CardLastFour"`
	Type         string `csv:"Type"`
	Confidence   string `csv:"Confidence"`
	Status       string `csv:"Status"`
}

// ParseRows runs the engine over a slice of notification rows. Every input
// row produces exactly one output row; the engine never fails, so neither
// does this.
func ParseRows(rows []NotificationRow, minConfidence float64) []ResultRow {
	results := make([]ResultRow, 0, len(rows))
	for _, row := range rows {
		parsed := engine.Parse(models.RawNotification{
			Package: row.Package,
			Title:   row.Title,
			Body:    row.Body,
		})

		status := "review"
		if parsed.Confidence >= minConfidence {
			status = "auto"
		}

		results = append(results, ResultRow{
			Package:      row.Package,
			Amount:       parsed.AmountString(),
			Merchant:     parsed.Merchant,
			CardLastFour: parsed.CardLastFour,
			Type:         string(parsed.Type),
			Confidence:   strconv.FormatFloat(parsed.Confidence, 'f', 2, 64),
			Status:       status,
		})
	}
	return results
}
