package lineitems

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerview/ledgerview/internal/id"
	"github.com/ledgerview/ledgerview/internal/ledger"
	"github.com/ledgerview/ledgerview/internal/model"
)

func TestRoundTrip(t *testing.T) {
	l := ledger.Seed(id.Sequence("seed"))
	l.Investments[1].Category = model.CategoryGoodwill
	items := FromLedger(l)
	require.Len(t, items, 5)

	var buf bytes.Buffer
	require.NoError(t, WriteItems(&buf, items))

	got, err := ReadItems(&buf)
	require.NoError(t, err)
	require.Len(t, got, 5)

	for i := range items {
		assert.Equal(t, items[i].Kind, got[i].Kind)
		assert.Equal(t, items[i].ID, got[i].ID)
		assert.Equal(t, items[i].Name, got[i].Name)
		assert.True(t, items[i].Amount.Equal(got[i].Amount), "row %d amount", i)
		assert.Equal(t, items[i].Category, got[i].Category)
		assert.Equal(t, items[i].IsAsset, got[i].IsAsset)
		assert.Equal(t, items[i].Prepaid, got[i].Prepaid)
	}
}

func TestWriteItemsFormat(t *testing.T) {
	items := []Item{
		{Kind: KindInvestment, ID: "i1", Name: "Seed, round", Amount: decimal.NewFromInt(1000), Category: model.CategoryCash},
		{Kind: KindExpense, ID: "e1", Name: "Hosting", Amount: decimal.NewFromInt(50), IsAsset: true},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteItems(&buf, items))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, Header, lines[0])
	assert.Equal(t, `investment,i1,"Seed, round",1000,cash,,`, lines[1])
	assert.Equal(t, "expense,e1,Hosting,50,,true,false", lines[2])
}

func TestReadItems_Lenient(t *testing.T) {
	data := Header + "\n" +
		"Investment,,Grant,,,,\n" +
		"expense,,Laptop, 1200 ,,1,\n"

	got, err := ReadItems(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, KindInvestment, got[0].Kind)
	assert.True(t, got[0].Amount.IsZero(), "blank amount reads as zero")
	assert.Equal(t, model.CategoryAuto, got[0].Category)

	assert.True(t, got[1].Amount.Equal(decimal.NewFromInt(1200)))
	assert.True(t, got[1].IsAsset)
	assert.False(t, got[1].Prepaid)
}

func TestReadItems_Empty(t *testing.T) {
	got, err := ReadItems(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestReadItems_Errors(t *testing.T) {
	bad := map[string]string{
		"unknown kind":     "asset,,x,1,,,",
		"bad amount":       "expense,,x,lots,,,",
		"bad category":     "investment,,x,1,equity,,",
		"bad flag":         "expense,,x,1,,maybe,",
		"wrong field size": "expense,,x,1",
	}
	for name, row := range bad {
		_, err := ReadItems(strings.NewReader(Header + "\n" + row + "\n"))
		assert.Error(t, err, name)
	}

	_, err := ReadItems(strings.NewReader(Header + "\nexpense,,x,lots,,,\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ledger.ErrInvalidAmount)
	assert.Contains(t, err.Error(), "row 2")
}

func TestAppend(t *testing.T) {
	gen := id.Sequence("id")
	s := ledger.NewStore(model.Ledger{}, nil, ledger.WithIDGenerator(gen))

	ids := Append(s, []Item{
		{Kind: KindInvestment, ID: "ignored", Name: "Founder cash", Amount: decimal.NewFromInt(500), Category: model.CategoryCash},
		{Kind: KindExpense, Name: "Domain", Amount: decimal.NewFromInt(40), IsAsset: true, Prepaid: true},
		{Kind: KindExpense, Name: "Coffee", Amount: decimal.NewFromInt(5)},
	})
	require.Len(t, ids, 3)

	l := s.Ledger()
	require.Len(t, l.Investments, 1)
	assert.Equal(t, ids[0], l.Investments[0].ID)
	assert.NotEqual(t, "ignored", l.Investments[0].ID)
	assert.Equal(t, "Founder cash", l.Investments[0].Name)
	assert.Equal(t, model.CategoryCash, l.Investments[0].Category)

	require.Len(t, l.Expenses, 2)
	assert.True(t, l.Expenses[0].IsPrepaidAsset())
	assert.Equal(t, "Coffee", l.Expenses[1].Name)
	assert.False(t, l.Expenses[1].IsAsset)
	assert.True(t, l.Expenses[1].Amount.Equal(decimal.NewFromInt(5)))
}
