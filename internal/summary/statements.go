package summary

import (
	"github.com/shopspring/decimal"

	"github.com/ledgerview/ledgerview/internal/model"
)

// Statements is everything a view needs to render one ledger.
type Statements struct {
	CompanyName string
	AsOfDate    string
	Summary     Summary
	Balance     BalanceSheet
	Income      IncomeStatement
	CashFlow    CashFlowStatement
	Notes       []NumberedNote
	Assets      []AssetRow
}

// Row is one line of a statement. ID is set when the line maps back to an
// editable ledger item.
type Row struct {
	ID     string
	Label  string
	Amount decimal.Decimal
}

// BalanceSheet lays out assets against liabilities and equity.
type BalanceSheet struct {
	Cash                   decimal.Decimal
	NonCurrent             []Row // prepaid assets
	Goodwill               decimal.Decimal
	TotalAssets            decimal.Decimal
	AccountsPayable        decimal.Decimal
	ContributedCapital     decimal.Decimal
	ContributedGoodwill    decimal.Decimal
	RetainedEarnings       decimal.Decimal
	TotalLiabilitiesEquity decimal.Decimal
}

// IncomeStatement has no revenue line items yet; revenue is always zero.
type IncomeStatement struct {
	Revenue       decimal.Decimal
	Expenses      []Row
	TotalExpenses decimal.Decimal
	NetIncome     decimal.Decimal
}

// CashFlowStatement groups cash movements by activity.
type CashFlowStatement struct {
	NetIncome     decimal.Decimal
	Investing     []Row
	Financing     []Row
	NetChange     decimal.Decimal
	BeginningCash decimal.Decimal
	EndingCash    decimal.Decimal
}

// NumberedNote is a note with its display position (1-based).
type NumberedNote struct {
	Number int
	model.Note
}

// AssetRow is one entry of the asset register.
type AssetRow struct {
	ID      string
	Name    string
	Amount  decimal.Decimal
	IsAsset bool
	Prepaid bool
}

// Build derives the summary for l and lays out every statement.
func Build(l model.Ledger) Statements {
	s := Derive(l)
	st := Statements{
		CompanyName: l.CompanyName,
		AsOfDate:    l.AsOfDate,
		Summary:     s,
		Balance: BalanceSheet{
			Cash:                   s.Cash,
			Goodwill:               s.Goodwill,
			TotalAssets:            s.TotalAssets,
			AccountsPayable:        decimal.Zero,
			ContributedCapital:     s.ContributedCapital,
			ContributedGoodwill:    s.ContributedGoodwill,
			RetainedEarnings:       s.RetainedEarnings,
			TotalLiabilitiesEquity: s.TotalLiabilitiesEquity,
		},
		Income: IncomeStatement{
			Revenue:       decimal.Zero,
			TotalExpenses: s.OperatingExpenses,
			NetIncome:     s.NetIncome(),
		},
		CashFlow: CashFlowStatement{
			NetIncome:     s.NetIncome(),
			NetChange:     s.Cash,
			BeginningCash: decimal.Zero,
			EndingCash:    s.Cash,
		},
	}

	for _, exp := range l.Expenses {
		st.Assets = append(st.Assets, AssetRow{
			ID:      exp.ID,
			Name:    exp.Name,
			Amount:  exp.Amount,
			IsAsset: exp.IsAsset,
			Prepaid: exp.Prepaid,
		})
		switch {
		case !exp.IsAsset:
			st.Income.Expenses = append(st.Income.Expenses, Row{ID: exp.ID, Label: exp.Name, Amount: exp.Amount})
		default:
			st.CashFlow.Investing = append(st.CashFlow.Investing, Row{ID: exp.ID, Label: "Purchase of " + exp.Name, Amount: exp.Amount.Neg()})
			if exp.Prepaid {
				st.Balance.NonCurrent = append(st.Balance.NonCurrent, Row{ID: exp.ID, Label: exp.Name, Amount: exp.Amount})
			}
		}
	}

	for _, inv := range l.Investments {
		st.CashFlow.Financing = append(st.CashFlow.Financing, Row{ID: inv.ID, Label: inv.Name, Amount: inv.Amount})
	}

	for i, n := range l.Notes {
		st.Notes = append(st.Notes, NumberedNote{Number: i + 1, Note: n})
	}

	return st
}
