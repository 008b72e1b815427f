// Package summary derives accounting totals and statement layouts from a
// ledger. Everything here is a pure function of its input.
package summary

import (
	"github.com/shopspring/decimal"

	"github.com/ledgerview/ledgerview/internal/model"
)

// Summary holds the derived totals for one ledger.
type Summary struct {
	TotalInvestments       decimal.Decimal `json:"totalInvestments"`
	OperatingExpenses      decimal.Decimal `json:"operatingExpenses"`
	AssetExpenses          decimal.Decimal `json:"assetExpenses"`
	TotalExpenses          decimal.Decimal `json:"totalExpenses"`
	Cash                   decimal.Decimal `json:"cash"`
	Goodwill               decimal.Decimal `json:"goodwill"`
	PrepaidAssets          decimal.Decimal `json:"prepaidAssets"`
	TotalAssets            decimal.Decimal `json:"totalAssets"`
	ContributedCapital     decimal.Decimal `json:"contributedCapital"`
	ContributedGoodwill    decimal.Decimal `json:"contributedGoodwill"`
	RetainedEarnings       decimal.Decimal `json:"retainedEarnings"`
	TotalEquity            decimal.Decimal `json:"totalEquity"`
	TotalLiabilitiesEquity decimal.Decimal `json:"totalLiabilitiesEquity"`
}

// Derive computes the summary for l. Liabilities are not modeled, so total
// liabilities and equity is total equity.
func Derive(l model.Ledger) Summary {
	var s Summary
	cashInvestments := decimal.Zero

	for _, inv := range l.Investments {
		s.TotalInvestments = s.TotalInvestments.Add(inv.Amount)
		c := inv.Classify()
		if c.Cash {
			cashInvestments = cashInvestments.Add(inv.Amount)
		}
		if c.Goodwill {
			s.Goodwill = s.Goodwill.Add(inv.Amount)
		}
	}

	for _, exp := range l.Expenses {
		if !exp.IsAsset {
			s.OperatingExpenses = s.OperatingExpenses.Add(exp.Amount)
			continue
		}
		s.AssetExpenses = s.AssetExpenses.Add(exp.Amount)
		if exp.Prepaid {
			s.PrepaidAssets = s.PrepaidAssets.Add(exp.Amount)
		}
	}

	s.TotalExpenses = s.OperatingExpenses.Add(s.AssetExpenses)
	s.Cash = cashInvestments.Sub(s.TotalExpenses)
	s.TotalAssets = s.Cash.Add(s.Goodwill).Add(s.PrepaidAssets)
	s.ContributedCapital = cashInvestments
	s.ContributedGoodwill = s.Goodwill
	s.RetainedEarnings = s.TotalAssets.Sub(s.ContributedCapital).Sub(s.ContributedGoodwill)
	s.TotalEquity = s.ContributedCapital.Add(s.ContributedGoodwill).Add(s.RetainedEarnings)
	s.TotalLiabilitiesEquity = s.TotalEquity
	return s
}

// NetIncome is revenue (always zero) less operating expenses.
func (s Summary) NetIncome() decimal.Decimal {
	return s.OperatingExpenses.Neg()
}

// Equal compares every total by value.
func (s Summary) Equal(o Summary) bool {
	a, b := s.Lines(), o.Lines()
	for i := range a {
		if !a[i].Amount.Equal(b[i].Amount) {
			return false
		}
	}
	return true
}

// Line is one labeled total.
type Line struct {
	Key    string // field name as persisted in JSON
	Label  string
	Amount decimal.Decimal
}

// Lines lists every total in derivation order.
func (s Summary) Lines() []Line {
	return []Line{
		{"totalInvestments", "Total Investments", s.TotalInvestments},
		{"operatingExpenses", "Operating Expenses", s.OperatingExpenses},
		{"assetExpenses", "Asset Expenses", s.AssetExpenses},
		{"totalExpenses", "Total Expenses", s.TotalExpenses},
		{"cash", "Cash", s.Cash},
		{"goodwill", "Goodwill", s.Goodwill},
		{"prepaidAssets", "Prepaid Assets", s.PrepaidAssets},
		{"totalAssets", "Total Assets", s.TotalAssets},
		{"contributedCapital", "Contributed Capital", s.ContributedCapital},
		{"contributedGoodwill", "Contributed Goodwill", s.ContributedGoodwill},
		{"retainedEarnings", "Retained Earnings", s.RetainedEarnings},
		{"totalEquity", "Total Equity", s.TotalEquity},
		{"totalLiabilitiesEquity", "Total Liabilities & Equity", s.TotalLiabilitiesEquity},
	}
}
