package commands

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerview/ledgerview/internal/config"
)

func TestStorageDir(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, filepath.Join("books", ".ledgerview"), storageDir(filepath.Join("books", "ledgerview.yaml"), cfg))
	assert.Equal(t, ".ledgerview", storageDir("ledgerview.yaml", cfg))

	cfg.Storage.Dir = "/srv/ledger"
	assert.Equal(t, "/srv/ledger", storageDir(filepath.Join("books", "ledgerview.yaml"), cfg))
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	logger, err := newLogger(&buf, "error", false)
	require.NoError(t, err)
	logger.Warn("hidden")
	logger.Error("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")

	buf.Reset()
	logger, err = newLogger(&buf, "error", true)
	require.NoError(t, err)
	logger.Debug("verbose wins")
	assert.Contains(t, buf.String(), "verbose wins")

	_, err = newLogger(&buf, "loud", false)
	assert.Error(t, err)
}

func TestParseProperty(t *testing.T) {
	for _, s := range []string{"asset", "isAsset", "PREPAID"} {
		_, err := parseProperty(s)
		assert.NoError(t, err, s)
	}
	_, err := parseProperty("depreciable")
	assert.Error(t, err)
}
