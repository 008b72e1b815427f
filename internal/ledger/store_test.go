package ledger

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ledgerview/ledgerview/internal/id"
	"github.com/ledgerview/ledgerview/internal/model"
)

// recordingSaver keeps every snapshot it is asked to save.
type recordingSaver struct {
	saved []model.Ledger
	err   error
}

func (r *recordingSaver) Save(l model.Ledger) error {
	r.saved = append(r.saved, l)
	return r.err
}

func (r *recordingSaver) last() model.Ledger {
	return r.saved[len(r.saved)-1]
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newSeededStore(t *testing.T) (*Store, *recordingSaver) {
	t.Helper()
	gen := id.Sequence("id")
	saver := &recordingSaver{}
	return NewStore(Seed(gen), saver, WithIDGenerator(gen)), saver
}

func TestSetCompany(t *testing.T) {
	s, saver := newSeededStore(t)

	s.SetCompany(SetCompanyName{Name: "Acme Ltd"})
	s.SetCompany(SetAsOfDate{Date: "April 1, 2025"})

	l := s.Ledger()
	assert.Equal(t, "Acme Ltd", l.CompanyName)
	assert.Equal(t, "April 1, 2025", l.AsOfDate)
	require.Len(t, saver.saved, 2)
	assert.Equal(t, "Acme Ltd", saver.saved[0].CompanyName)
	assert.Equal(t, "March 22, 2025", saver.saved[0].AsOfDate)
}

func TestAddInvestment(t *testing.T) {
	s, saver := newSeededStore(t)

	newID := s.AddInvestment()

	l := s.Ledger()
	require.Len(t, l.Investments, 3)
	got := l.Investments[2]
	assert.Equal(t, newID, got.ID)
	assert.Equal(t, "New Investment", got.Name)
	assert.True(t, got.Amount.IsZero())
	assert.Equal(t, model.CategoryAuto, got.Category)
	assert.True(t, saver.last().Equal(l))
}

func TestUpdateInvestment(t *testing.T) {
	s, _ := newSeededStore(t)
	invID := s.AddInvestment()

	s.UpdateInvestment(invID, RenameInvestment{Name: "Bridge Loan"})
	s.UpdateInvestment(invID, SetInvestmentAmount{Amount: dec("25000")})
	s.UpdateInvestment(invID, SetInvestmentCategory{Category: model.CategoryCash})

	got := s.Ledger().Investments[2]
	assert.Equal(t, "Bridge Loan", got.Name)
	assert.True(t, got.Amount.Equal(dec("25000")))
	assert.Equal(t, model.CategoryCash, got.Category)
}

func TestAddExpenseDefaults(t *testing.T) {
	s, _ := newSeededStore(t)

	expID := s.AddExpense()

	l := s.Ledger()
	require.Len(t, l.Expenses, 4)
	got := l.Expenses[3]
	assert.Equal(t, expID, got.ID)
	assert.Equal(t, "New Expense", got.Name)
	assert.True(t, got.Amount.IsZero())
	assert.False(t, got.IsAsset)
	assert.False(t, got.Prepaid)
}

func TestUpdateExpense(t *testing.T) {
	s, _ := newSeededStore(t)
	expID := s.Ledger().Expenses[0].ID

	s.UpdateExpense(expID, RenameExpense{Name: "Claude Max"})
	s.UpdateExpense(expID, SetExpenseAmount{Amount: dec("99000")})

	got := s.Ledger().Expenses[0]
	assert.Equal(t, "Claude Max", got.Name)
	assert.True(t, got.Amount.Equal(dec("99000")))
}

func TestToggleExpense(t *testing.T) {
	s, _ := newSeededStore(t)
	expID := s.Ledger().Expenses[1].ID

	s.ToggleExpense(expID, IsAsset)
	assert.True(t, s.Ledger().Expenses[1].IsAsset)

	s.ToggleExpense(expID, Prepaid)
	assert.True(t, s.Ledger().Expenses[1].Prepaid)

	s.ToggleExpense(expID, IsAsset)
	got := s.Ledger().Expenses[1]
	assert.False(t, got.IsAsset)
	assert.True(t, got.Prepaid, "prepaid is not cleared when the asset flag is")
}

func TestNotes(t *testing.T) {
	s, _ := newSeededStore(t)

	noteID := s.AddNote()
	l := s.Ledger()
	require.Len(t, l.Notes, 6)
	assert.Equal(t, "New Note", l.Notes[5].Title)
	assert.Equal(t, "Enter note content here", l.Notes[5].Content)

	s.UpdateNote(noteID, SetNoteTitle{Title: "Going Concern"})
	s.UpdateNote(noteID, SetNoteContent{Content: "Funded for 12 months."})
	got := s.Ledger().Notes[5]
	assert.Equal(t, "Going Concern", got.Title)
	assert.Equal(t, "Funded for 12 months.", got.Content)

	first := s.Ledger().Notes[0].ID
	s.RemoveNote(first)
	l = s.Ledger()
	require.Len(t, l.Notes, 5)
	assert.Equal(t, "Basis of Preparation", l.Notes[0].Title, "remaining notes keep their order")
}

func TestRemovePreservesOrder(t *testing.T) {
	s, _ := newSeededStore(t)
	l := s.Ledger()

	s.RemoveExpense(l.Expenses[1].ID)
	s.RemoveInvestment(l.Investments[0].ID)

	got := s.Ledger()
	require.Len(t, got.Expenses, 2)
	assert.Equal(t, l.Expenses[0].ID, got.Expenses[0].ID)
	assert.Equal(t, l.Expenses[2].ID, got.Expenses[1].ID)
	require.Len(t, got.Investments, 1)
	assert.Equal(t, l.Investments[1].ID, got.Investments[0].ID)
}

func TestUnknownIDIsNoOp(t *testing.T) {
	s, saver := newSeededStore(t)
	before := s.Ledger()

	s.UpdateInvestment("missing", RenameInvestment{Name: "x"})
	s.UpdateExpense("missing", SetExpenseAmount{Amount: dec("1")})
	s.ToggleExpense("missing", IsAsset)
	s.UpdateNote("missing", SetNoteTitle{Title: "x"})
	s.RemoveInvestment("missing")
	s.RemoveExpense("missing")
	s.RemoveNote("missing")

	assert.True(t, before.Equal(s.Ledger()), "ledger should be structurally unchanged")
	assert.Len(t, saver.saved, 7, "no-op edits still save the snapshot")
	assert.NoError(t, s.Err())
}

func TestRemoveIsIdempotent(t *testing.T) {
	s, _ := newSeededStore(t)
	target := s.Ledger().Notes[2].ID

	s.RemoveNote(target)
	once := s.Ledger()
	s.RemoveNote(target)

	assert.True(t, once.Equal(s.Ledger()))
}

func TestFreshIDsAreUniqueAcrossLists(t *testing.T) {
	s := NewStore(model.Ledger{}, nil)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		for _, newID := range []string{s.AddInvestment(), s.AddExpense(), s.AddNote()} {
			assert.False(t, seen[newID], "duplicate id %q", newID)
			seen[newID] = true
		}
	}
	assert.Len(t, seen, 150)
}

func TestLedgerReturnsCopy(t *testing.T) {
	s, _ := newSeededStore(t)

	l := s.Ledger()
	l.Investments[0].Name = "tampered"
	l.Notes = nil

	got := s.Ledger()
	assert.Equal(t, "Cash Investment (Suwik)", got.Investments[0].Name)
	assert.Len(t, got.Notes, 5)
}

func TestEditsAreCopyOnWrite(t *testing.T) {
	s, saver := newSeededStore(t)
	expID := s.Ledger().Expenses[0].ID

	s.UpdateExpense(expID, RenameExpense{Name: "first"})
	s.UpdateExpense(expID, RenameExpense{Name: "second"})

	require.Len(t, saver.saved, 2)
	assert.Equal(t, "first", saver.saved[0].Expenses[0].Name, "earlier snapshots are not rewritten")
	assert.Equal(t, "second", saver.saved[1].Expenses[0].Name)
}

func TestReset(t *testing.T) {
	s, _ := newSeededStore(t)
	s.RemoveNote(s.Ledger().Notes[0].ID)
	s.SetCompany(SetCompanyName{Name: "Other"})

	s.Reset()

	l := s.Ledger()
	assert.Equal(t, "Flexible Functions AI", l.CompanyName)
	assert.Len(t, l.Notes, 5)
}

func TestSaveFailureIsLoggedNotFatal(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	saver := &recordingSaver{err: errors.New("disk full")}
	s := NewStore(Seed(id.Sequence("id")), saver, WithLogger(zap.New(core)))

	s.SetCompany(SetCompanyName{Name: "Still Applied"})

	assert.Equal(t, "Still Applied", s.Ledger().CompanyName)
	require.Error(t, s.Err())
	assert.Contains(t, s.Err().Error(), "disk full")
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "saving ledger snapshot", logs.All()[0].Message)

	saver.err = nil
	s.SetCompany(SetAsOfDate{Date: "today"})
	assert.NoError(t, s.Err(), "a later successful save clears the error")
}

func TestNilSaver(t *testing.T) {
	s := NewStore(Seed(id.Sequence("id")), nil)
	s.AddNote()
	assert.NoError(t, s.Err())
	assert.Len(t, s.Ledger().Notes, 6)
}

func TestPropertyString(t *testing.T) {
	assert.Equal(t, "isAsset", IsAsset.String())
	assert.Equal(t, "prepaid", Prepaid.String())
	assert.Equal(t, "unknown", Property(9).String())
}
