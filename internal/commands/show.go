package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ledgerview/ledgerview/internal/render"
	"github.com/ledgerview/ledgerview/internal/summary"
)

func newShowCommand(opts *rootOptions) *cobra.Command {
	var section string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the financial statements",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sections, err := render.ParseSections(section)
			if err != nil {
				return err
			}
			s, err := openSession(cmd, opts)
			if err != nil {
				return err
			}
			return s.statements(sections...)
		},
	}

	cmd.Flags().StringVar(&section, "section", "all", "overview, balance, income, cashflow, notes, assets or all")

	return cmd
}

func newSummaryCommand(opts *rootOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show every derived total",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, opts)
			if err != nil {
				return err
			}
			return runSummary(s, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the summary as JSON")

	return cmd
}

func runSummary(s *session, asJSON bool) error {
	sum := summary.Derive(s.store.Ledger())
	if asJSON {
		data, err := json.MarshalIndent(sum, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding summary: %w", err)
		}
		_, err = fmt.Fprintln(s.out, string(data))
		return err
	}

	md, err := render.SummaryTable(sum, s.money)
	if err != nil {
		return err
	}
	return s.print(md)
}
