package ledger

import (
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/ledgerview/ledgerview/internal/id"
	"github.com/ledgerview/ledgerview/internal/model"
)

// Defaults for newly added line items.
const (
	NewInvestmentName = "New Investment"
	NewExpenseName    = "New Expense"
	NewNoteTitle      = "New Note"
	NewNoteContent    = "Enter note content here"
)

// Saver persists a full ledger snapshot, replacing the previous one.
type Saver interface {
	Save(l model.Ledger) error
}

// Store owns the current ledger and applies edits to it. Every edit builds a
// new ledger value and then saves it in full. A Store is not safe for
// concurrent use; all edits go through its single owner.
type Store struct {
	current model.Ledger
	saver   Saver
	newID   id.Generator
	logger  *zap.Logger
	err     error
}

// Option configures a Store.
type Option func(*Store)

// WithIDGenerator overrides the default UUID generator.
func WithIDGenerator(gen id.Generator) Option {
	return func(s *Store) { s.newID = gen }
}

// WithLogger sets the logger used to report save failures.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) { s.logger = logger }
}

// NewStore creates a Store holding initial. A nil saver disables persistence.
func NewStore(initial model.Ledger, saver Saver, opts ...Option) *Store {
	s := &Store{
		current: initial.Clone(),
		saver:   saver,
		newID:   id.New,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Ledger returns a copy of the current ledger.
func (s *Store) Ledger() model.Ledger {
	return s.current.Clone()
}

// Err returns the error from the most recent save, or nil if it succeeded.
func (s *Store) Err() error {
	return s.err
}

// SetCompany applies a company metadata edit.
func (s *Store) SetCompany(edit CompanyEdit) {
	s.apply("set company", func(l *model.Ledger) {
		edit.applyCompany(l)
	})
}

// AddInvestment appends a zero-amount investment and returns its id.
func (s *Store) AddInvestment() string {
	inv := model.Investment{ID: s.newID(), Name: NewInvestmentName, Amount: decimal.Zero}
	s.apply("add investment", func(l *model.Ledger) {
		l.Investments = append(l.Investments, inv)
	})
	return inv.ID
}

// UpdateInvestment edits the investment with the given id. Unknown ids are ignored.
func (s *Store) UpdateInvestment(itemID string, edit InvestmentEdit) {
	s.apply("update investment", func(l *model.Ledger) {
		for i := range l.Investments {
			if l.Investments[i].ID == itemID {
				edit.applyInvestment(&l.Investments[i])
			}
		}
	})
}

// RemoveInvestment deletes the investment with the given id, if present.
func (s *Store) RemoveInvestment(itemID string) {
	s.apply("remove investment", func(l *model.Ledger) {
		l.Investments = removeByID(l.Investments, itemID, func(i model.Investment) string { return i.ID })
	})
}

// AddExpense appends a zero-amount operating expense and returns its id.
func (s *Store) AddExpense() string {
	exp := model.Expense{ID: s.newID(), Name: NewExpenseName, Amount: decimal.Zero}
	s.apply("add expense", func(l *model.Ledger) {
		l.Expenses = append(l.Expenses, exp)
	})
	return exp.ID
}

// UpdateExpense edits the expense with the given id. Unknown ids are ignored.
func (s *Store) UpdateExpense(itemID string, edit ExpenseEdit) {
	s.apply("update expense", func(l *model.Ledger) {
		for i := range l.Expenses {
			if l.Expenses[i].ID == itemID {
				edit.applyExpense(&l.Expenses[i])
			}
		}
	})
}

// ToggleExpense flips one flag on the expense with the given id. Prepaid may
// be set on a non-asset expense; it has no effect on any total until the
// expense becomes an asset.
func (s *Store) ToggleExpense(itemID string, prop Property) {
	s.apply("toggle expense "+prop.String(), func(l *model.Ledger) {
		for i := range l.Expenses {
			if l.Expenses[i].ID == itemID {
				prop.toggle(&l.Expenses[i])
			}
		}
	})
}

// RemoveExpense deletes the expense with the given id, if present.
func (s *Store) RemoveExpense(itemID string) {
	s.apply("remove expense", func(l *model.Ledger) {
		l.Expenses = removeByID(l.Expenses, itemID, func(e model.Expense) string { return e.ID })
	})
}

// AddNote appends a placeholder note and returns its id.
func (s *Store) AddNote() string {
	n := model.Note{ID: s.newID(), Title: NewNoteTitle, Content: NewNoteContent}
	s.apply("add note", func(l *model.Ledger) {
		l.Notes = append(l.Notes, n)
	})
	return n.ID
}

// UpdateNote edits the note with the given id. Unknown ids are ignored.
func (s *Store) UpdateNote(itemID string, edit NoteEdit) {
	s.apply("update note", func(l *model.Ledger) {
		for i := range l.Notes {
			if l.Notes[i].ID == itemID {
				edit.applyNote(&l.Notes[i])
			}
		}
	})
}

// RemoveNote deletes the note with the given id, if present.
func (s *Store) RemoveNote(itemID string) {
	s.apply("remove note", func(l *model.Ledger) {
		l.Notes = removeByID(l.Notes, itemID, func(n model.Note) string { return n.ID })
	})
}

// Reset replaces the ledger with a fresh copy of the seed data.
func (s *Store) Reset() {
	seed := Seed(s.newID)
	s.apply("reset", func(l *model.Ledger) {
		*l = seed
	})
}

func (s *Store) apply(op string, mutate func(l *model.Ledger)) {
	next := s.current.Clone()
	mutate(&next)
	s.current = next
	s.persist(op)
}

func (s *Store) persist(op string) {
	if s.saver == nil {
		return
	}
	s.err = s.saver.Save(s.current.Clone())
	if s.err != nil {
		s.logger.Error("saving ledger snapshot", zap.String("op", op), zap.Error(s.err))
		return
	}
	s.logger.Debug("saved ledger snapshot", zap.String("op", op),
		zap.Int("investments", len(s.current.Investments)),
		zap.Int("expenses", len(s.current.Expenses)),
		zap.Int("notes", len(s.current.Notes)))
}

func removeByID[T any](items []T, itemID string, idOf func(T) string) []T {
	out := items[:0]
	for _, it := range items {
		if idOf(it) != itemID {
			out = append(out, it)
		}
	}
	return out
}
