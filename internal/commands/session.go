package commands

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ledgerview/ledgerview/internal/config"
	"github.com/ledgerview/ledgerview/internal/id"
	"github.com/ledgerview/ledgerview/internal/ledger"
	"github.com/ledgerview/ledgerview/internal/render"
	"github.com/ledgerview/ledgerview/internal/snapshot"
	"github.com/ledgerview/ledgerview/internal/summary"
)

// session is one command invocation's view of the workspace: its config,
// logger and the store restored from the snapshot slot.
type session struct {
	cfg    *config.Config
	logger *zap.Logger
	money  render.Money
	store  *ledger.Store
	out    io.Writer
}

func openSession(cmd *cobra.Command, opts *rootOptions) (*session, error) {
	cfg, err := config.LoadOrDefault(opts.configPath)
	if err != nil {
		return nil, err
	}

	logger, err := newLogger(cmd.ErrOrStderr(), cfg.Log.Level, opts.verbose)
	if err != nil {
		return nil, err
	}

	slot := snapshot.NewFileSlot(storageDir(opts.configPath, cfg), cfg.Storage.Slot)
	repo := snapshot.NewRepository(slot)
	initial := snapshot.Restore(repo, ledger.Seed(id.New), logger)
	logger.Debug("opened ledger", zap.String("slot", slot.Path()))

	return &session{
		cfg:    cfg,
		logger: logger,
		money:  render.NewMoney(cfg.Currency),
		store:  ledger.NewStore(initial, repo, ledger.WithLogger(logger)),
		out:    cmd.OutOrStdout(),
	}, nil
}

// storageDir resolves a relative storage directory against the directory
// holding the config file.
func storageDir(configPath string, cfg *config.Config) string {
	if filepath.IsAbs(cfg.Storage.Dir) {
		return cfg.Storage.Dir
	}
	return filepath.Join(filepath.Dir(configPath), cfg.Storage.Dir)
}

// newLogger builds a console logger on w. verbose forces debug level.
func newLogger(w io.Writer, level string, verbose bool) (*zap.Logger, error) {
	lvl := zapcore.WarnLevel
	if level != "" {
		if err := lvl.UnmarshalText([]byte(level)); err != nil {
			return nil, fmt.Errorf("parsing log level: %w", err)
		}
	}
	if verbose {
		lvl = zapcore.DebugLevel
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), lvl)
	return zap.New(core), nil
}

// print styles md for the terminal and writes it to the command output.
func (s *session) print(md string) error {
	styled, err := render.Terminal(md, s.cfg.Display.Style, s.cfg.Display.WordWrap)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(s.out, styled)
	return err
}

func (s *session) statements(sections ...render.Section) error {
	md, err := render.Markdown(summary.Build(s.store.Ledger()), s.money, sections...)
	if err != nil {
		return err
	}
	return s.print(md)
}

// commit reports a failed save and prints the refreshed overview.
func (s *session) commit() error {
	if err := s.store.Err(); err != nil {
		return fmt.Errorf("saving ledger: %w", err)
	}
	for _, v := range summary.Check(summary.Derive(s.store.Ledger())) {
		s.logger.Error("accounting identity violated",
			zap.String("identity", v.Identity),
			zap.String("detail", v.Description))
	}
	return s.statements(render.SectionOverview)
}

// warnMissing logs edits that matched no item. The store treats them as
// no-ops.
func (s *session) warnMissing(kind, itemID string, found bool) {
	if !found {
		s.logger.Warn("no "+kind+" with this id, nothing changed", zap.String("id", itemID))
	}
}
