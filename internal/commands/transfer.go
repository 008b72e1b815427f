package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ledgerview/ledgerview/internal/lineitems"
	"github.com/ledgerview/ledgerview/internal/render"
	"github.com/ledgerview/ledgerview/internal/summary"
)

func newExportCommand(opts *rootOptions) *cobra.Command {
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export the statements or line items",
	}
	exportCmd.AddCommand(
		newExportSubcommand(opts, "html", "Write a printable HTML page of all statements", exportHTML),
		newExportSubcommand(opts, "csv", "Write investments and expenses as CSV", exportCSV),
	)
	return exportCmd
}

func newExportSubcommand(opts *rootOptions, use, short string, export func(*session, io.Writer) error) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, opts)
			if err != nil {
				return err
			}
			if output == "" || output == "-" {
				return export(s, s.out)
			}
			return writeFile(output, func(w io.Writer) error { return export(s, w) })
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")

	return cmd
}

func exportHTML(s *session, w io.Writer) error {
	l := s.store.Ledger()
	md, err := render.Markdown(summary.Build(l), s.money)
	if err != nil {
		return err
	}
	page, err := render.HTML(md, l.CompanyName+" - Financial Statements")
	if err != nil {
		return err
	}
	_, err = w.Write(page)
	return err
}

func exportCSV(s *session, w io.Writer) error {
	return lineitems.WriteItems(w, lineitems.FromLedger(s.store.Ledger()))
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}

func newImportCommand(opts *rootOptions) *cobra.Command {
	importCmd := &cobra.Command{
		Use:   "import",
		Short: "Import line items",
	}
	importCmd.AddCommand(&cobra.Command{
		Use:   "csv <file>",
		Short: "Append investments and expenses from a CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImportCSV(cmd, opts, args[0])
		},
	})
	return importCmd
}

func runImportCSV(cmd *cobra.Command, opts *rootOptions, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	// Parse the whole file first so a bad row leaves the ledger untouched.
	items, err := lineitems.ReadItems(f)
	if err != nil {
		return fmt.Errorf("importing %s: %w", path, err)
	}

	s, err := openSession(cmd, opts)
	if err != nil {
		return err
	}
	ids := lineitems.Append(s.store, items)
	s.logger.Info("imported line items", zap.String("file", path), zap.Int("count", len(ids)))
	fmt.Fprintf(s.out, "Imported %d line items from %s\n", len(ids), path)
	return s.commit()
}
