package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TransferFilter is a conjunctive predicate set over transfers. Zero-valued
// fields are inactive; every active field must match.
type TransferFilter struct {
	Status       TransferStatus
	TransferType string
	// Search matches case-insensitively as a substring of sender/receiver
	// names, BICs and the reference.
	Search    string
	MinAmount *decimal.Decimal
	MaxAmount *decimal.Decimal
	From      *time.Time
	To        *time.Time
	Limit     int
}

// Matches applies the filter to a single transfer.
func (f TransferFilter) Matches(t Transfer) bool {
	if f.Status != "" && t.Status != f.Status {
		return false
	}
	if f.TransferType != "" && t.TransferType != f.TransferType {
		return false
	}
	if search := strings.ToLower(strings.TrimSpace(f.Search)); search != "" {
		haystacks := []string{t.SenderName, t.SenderBIC, t.ReceiverName, t.ReceiverBIC, t.Reference}
		found := false
		for _, h := range haystacks {
			if strings.Contains(strings.ToLower(h), search) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if f.MinAmount != nil && t.Amount.LessThan(*f.MinAmount) {
		return false
	}
	if f.MaxAmount != nil && t.Amount.GreaterThan(*f.MaxAmount) {
		return false
	}
	if f.From != nil && t.CreatedAt.Before(*f.From) {
		return false
	}
	if f.To != nil && t.CreatedAt.After(*f.To) {
		return false
	}
	return true
}

// Apply filters a loaded transfer set in memory, preserving order.
func (f TransferFilter) Apply(transfers []Transfer) []Transfer {
	out := make([]Transfer, 0, len(transfers))
	for _, t := range transfers {
		if !f.Matches(t) {
			continue
		}
		out = append(out, t)
		if f.Limit > 0 && len(out) >= f.Limit {
			break
		}
	}
	return out
}
