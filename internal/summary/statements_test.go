package summary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerview/ledgerview/internal/id"
	"github.com/ledgerview/ledgerview/internal/ledger"
	"github.com/ledgerview/ledgerview/internal/model"
)

func TestBuild_Seed(t *testing.T) {
	l := ledger.Seed(id.Sequence("seed"))
	st := Build(l)

	assert.Equal(t, "Flexible Functions AI", st.CompanyName)
	assert.Equal(t, "March 22, 2025", st.AsOfDate)

	// Balance sheet.
	assertAmount(t, "-54000", st.Balance.Cash, "balance cash")
	require.Len(t, st.Balance.NonCurrent, 1)
	assert.Equal(t, "Domain (flexiblefunctions.com)", st.Balance.NonCurrent[0].Label)
	assertAmount(t, "67000", st.Balance.NonCurrent[0].Amount, "prepaid line")
	assertAmount(t, "163000", st.Balance.TotalAssets, "total assets")
	assert.True(t, st.Balance.AccountsPayable.IsZero())
	assertAmount(t, "163000", st.Balance.TotalLiabilitiesEquity, "total liabilities & equity")

	// Income statement.
	require.Len(t, st.Income.Expenses, 2)
	assert.Equal(t, "Claude Pro", st.Income.Expenses[0].Label)
	assert.Equal(t, "Google Workspace", st.Income.Expenses[1].Label)
	assertAmount(t, "137000", st.Income.TotalExpenses, "income total expenses")
	assertAmount(t, "-137000", st.Income.NetIncome, "net income")
	assert.True(t, st.Income.Revenue.IsZero())

	// Cash flow.
	assertAmount(t, "-137000", st.CashFlow.NetIncome, "operating")
	require.Len(t, st.CashFlow.Investing, 1)
	assert.Equal(t, "Purchase of Domain (flexiblefunctions.com)", st.CashFlow.Investing[0].Label)
	assertAmount(t, "-67000", st.CashFlow.Investing[0].Amount, "investing line")
	require.Len(t, st.CashFlow.Financing, 2)
	assertAmount(t, "-54000", st.CashFlow.NetChange, "net change")
	assert.True(t, st.CashFlow.BeginningCash.IsZero())
	assertAmount(t, "-54000", st.CashFlow.EndingCash, "ending cash")

	// Notes and asset register.
	require.Len(t, st.Notes, 5)
	for i, n := range st.Notes {
		assert.Equal(t, i+1, n.Number)
		assert.Equal(t, l.Notes[i].ID, n.ID)
	}
	require.Len(t, st.Assets, 3)
	assert.True(t, st.Assets[2].IsAsset)
	assert.True(t, st.Assets[2].Prepaid)
}

func TestBuild_NoteNumberingFollowsListOrder(t *testing.T) {
	gen := id.Sequence("seed")
	store := ledger.NewStore(ledger.Seed(gen), nil, ledger.WithIDGenerator(gen))
	store.RemoveNote(store.Ledger().Notes[0].ID)

	st := Build(store.Ledger())
	require.Len(t, st.Notes, 4)
	assert.Equal(t, 1, st.Notes[0].Number)
	assert.Equal(t, "Basis of Preparation", st.Notes[0].Title)
}

func TestBuild_NonPrepaidAssetOnlyInCashFlow(t *testing.T) {
	l := model.Ledger{
		Expenses: []model.Expense{
			{ID: "e1", Name: "Laptop", Amount: dec("2500"), IsAsset: true},
		},
	}
	st := Build(l)

	assert.Empty(t, st.Balance.NonCurrent)
	assert.Empty(t, st.Income.Expenses)
	require.Len(t, st.CashFlow.Investing, 1)
	assert.Equal(t, "Purchase of Laptop", st.CashFlow.Investing[0].Label)
}
