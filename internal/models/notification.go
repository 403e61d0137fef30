// Package models defines the notification data structures shared by the
// extraction engine and its callers.
package models

import (
	"github.com/shopspring/decimal"
)

// RawNotification is one mobile notification as delivered by the platform
// listener: the package identifier of the emitting app plus the decoded
// title and body text. It carries no schema guarantee whatsoever.
type RawNotification struct {
	Package string `json:"package" yaml:"package"`
	Title   string `json:"title" yaml:"title"`
	Body    string `json:"body" yaml:"body"`
}

// CombinedText returns the title and body joined with a single space,
// the form most extraction patterns run against.
func (r RawNotification) CombinedText() string {
	if r.Title == "" {
		return r.Body
	}
	if r.Body == "" {
		return r.Title
	}
	return r.Title + " " + r.Body
}

// TransactionType classifies what kind of movement a notification describes.
type TransactionType string

const (
	TypePurchase    TransactionType = "purchase"
	TypePixSent     TransactionType = "pix_sent"
	TypePixReceived TransactionType = "pix_received"
	TypeTransfer    TransactionType = "transfer"
	TypeUnknown     TransactionType = "unknown"
)

// ParsedNotification is the best-effort extraction result for one
// notification. Absent fields are nil (amount) or empty strings; Confidence
// is always set, 0.1 at minimum for text nothing could be pulled from.
type ParsedNotification struct {
	Amount       *decimal.Decimal `json:"amount,omitempty" yaml:"amount,omitempty"`
	Merchant     string           `json:"merchant,omitempty" yaml:"merchant,omitempty"`
	CardLastFour string           `json:"card_last_four,omitempty" yaml:"card_last_four,omitempty"`
	Confidence   float64          `json:"confidence" yaml:"confidence"`
	Type         TransactionType  `json:"type" yaml:"type"`
}

// HasAmount reports whether a monetary value was isolated.
func (p ParsedNotification) HasAmount() bool {
	return p.Amount != nil
}

// AmountString renders the amount with full precision, or "" when absent.
func (p ParsedNotification) AmountString() string {
	if p.Amount == nil {
		return ""
	}
	return p.Amount.String()
}
