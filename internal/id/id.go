package id

import (
	"fmt"

	"github.com/google/uuid"
)

// Generator returns a fresh identifier on every call. Identifiers must be
// unique across investments, expenses and notes for the life of the process.
type Generator func() string

// New returns a random (version 4) UUID string.
func New() string {
	return uuid.NewString()
}

// Sequence returns a Generator producing "<prefix>-1", "<prefix>-2", ...
// It is deterministic, which makes it useful in tests and fixtures.
func Sequence(prefix string) Generator {
	n := 0
	return func() string {
		n++
		return FormatSeq(prefix, n)
	}
}

// FormatSeq returns an id like "item-7".
func FormatSeq(prefix string, seq int) string {
	return fmt.Sprintf("%s-%d", prefix, seq)
}

// Valid reports whether s is a non-empty identifier. Ids come either from New
// (UUIDs) or from older snapshots and sequences, so any non-blank string is
// accepted; only UUID-shaped ids are checked further.
func Valid(s string) bool {
	if s == "" {
		return false
	}
	if len(s) == 36 && s[8] == '-' {
		_, err := uuid.Parse(s)
		return err == nil
	}
	return true
}
