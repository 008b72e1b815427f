package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/ledgerview/ledgerview/internal/ledger"
)

func newCompanyCommand(opts *rootOptions) *cobra.Command {
	companyCmd := &cobra.Command{
		Use:   "company",
		Short: "Edit company details",
	}
	companyCmd.AddCommand(
		newCompanyEditCommand(opts, "name <name>", "Set the company name", func(v string) ledger.CompanyEdit {
			return ledger.SetCompanyName{Name: v}
		}),
		newCompanyEditCommand(opts, "date <as-of date>", "Set the statement date", func(v string) ledger.CompanyEdit {
			return ledger.SetAsOfDate{Date: v}
		}),
	)
	return companyCmd
}

func newCompanyEditCommand(opts *rootOptions, use, short string, edit func(string) ledger.CompanyEdit) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, opts)
			if err != nil {
				return err
			}
			s.store.SetCompany(edit(strings.Join(args, " ")))
			return s.commit()
		},
	}
}

func newResetCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Replace the ledger with the sample data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, opts)
			if err != nil {
				return err
			}
			s.store.Reset()
			return s.commit()
		},
	}
}
