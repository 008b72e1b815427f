package snapshot

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/ledgerview/ledgerview/internal/model"
)

// Repository stores whole ledgers in a Slot. It satisfies ledger.Saver.
type Repository struct {
	slot Slot
}

// NewRepository creates a Repository over slot.
func NewRepository(slot Slot) *Repository {
	return &Repository{slot: slot}
}

// Load reads and decodes the saved ledger. It returns ErrNoSnapshot when the
// slot is empty.
func (r *Repository) Load() (model.Ledger, error) {
	data, err := r.slot.Load()
	if err != nil {
		return model.Ledger{}, err
	}
	l, err := Decode(data)
	if err != nil {
		return model.Ledger{}, fmt.Errorf("parsing saved snapshot: %w", err)
	}
	return l, nil
}

// Save encodes l and overwrites the slot.
func (r *Repository) Save(l model.Ledger) error {
	data, err := Encode(l)
	if err != nil {
		return err
	}
	if err := r.slot.Save(data); err != nil {
		return fmt.Errorf("saving snapshot: %w", err)
	}
	return nil
}

// Restore returns the saved ledger, or seed when there is none or it cannot
// be read. A seed fallback is saved straight away so its ids stay fixed for
// later sessions. Failures are logged and never returned.
func Restore(r *Repository, seed model.Ledger, logger *zap.Logger) model.Ledger {
	l, err := r.Load()
	switch {
	case err == nil:
		logger.Debug("restored ledger snapshot",
			zap.Int("investments", len(l.Investments)),
			zap.Int("expenses", len(l.Expenses)),
			zap.Int("notes", len(l.Notes)))
		return l
	case errors.Is(err, ErrNoSnapshot):
		logger.Debug("no saved snapshot, starting from seed")
	default:
		logger.Warn("discarding unreadable snapshot, starting from seed", zap.Error(err))
	}
	if err := r.Save(seed); err != nil {
		logger.Warn("saving seed snapshot", zap.Error(err))
	}
	return seed
}
