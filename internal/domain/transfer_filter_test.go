package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func filterFixture() []Transfer {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	return []Transfer{
		{ID: "a", Status: TransferStatusPending, TransferType: "SWIFT-MT", SenderName: "Acme GmbH", SenderBIC: "DEUTDEFFXXX", Reference: "INV-001", Amount: decimal.NewFromInt(100), CreatedAt: base},
		{ID: "b", Status: TransferStatusProcessing, TransferType: "SWIFT-MX", ReceiverName: "Globex Corp", ReceiverBIC: "CHASUS33XXX", Amount: decimal.NewFromInt(50_000), CreatedAt: base.Add(24 * time.Hour)},
		{ID: "c", Status: TransferStatusPending, TransferType: "SWIFT-MT", SenderName: "Initech Ltd", SenderBIC: "MIDLGB22XXX", Amount: decimal.NewFromInt(900), CreatedAt: base.Add(48 * time.Hour)},
	}
}

func idsOf(transfers []Transfer) []string {
	out := make([]string, 0, len(transfers))
	for _, t := range transfers {
		out = append(out, t.ID)
	}
	return out
}

func equalIDs(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func TestTransferFilterApply(t *testing.T) {
	transfers := filterFixture()
	min := decimal.NewFromInt(500)
	from := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name   string
		filter TransferFilter
		want   []string
	}{
		{"empty filter keeps all", TransferFilter{}, []string{"a", "b", "c"}},
		{"by status", TransferFilter{Status: TransferStatusPending}, []string{"a", "c"}},
		{"by type", TransferFilter{TransferType: "SWIFT-MX"}, []string{"b"}},
		{"search matches sender name", TransferFilter{Search: "acme"}, []string{"a"}},
		{"search matches receiver bic", TransferFilter{Search: "chasus"}, []string{"b"}},
		{"search matches reference", TransferFilter{Search: "inv-001"}, []string{"a"}},
		{"min amount", TransferFilter{MinAmount: &min}, []string{"b", "c"}},
		{"date lower bound", TransferFilter{From: &from}, []string{"b", "c"}},
		{"limit", TransferFilter{Limit: 2}, []string{"a", "b"}},
		{"conjunction", TransferFilter{Status: TransferStatusPending, MinAmount: &min}, []string{"c"}},
		{"no match", TransferFilter{Search: "zzz"}, []string{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := idsOf(tc.filter.Apply(transfers))
			if !equalIDs(got, tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestTransferFilterMaxAmount(t *testing.T) {
	max := decimal.NewFromInt(500)
	filter := TransferFilter{MaxAmount: &max}

	if !filter.Matches(Transfer{Amount: decimal.NewFromInt(500)}) {
		t.Fatal("max amount bound must be inclusive")
	}
	if filter.Matches(Transfer{Amount: decimal.NewFromFloat(500.01)}) {
		t.Fatal("amount above the bound must not match")
	}
}
