package commands

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ledgerview/ledgerview/internal/ledger"
	"github.com/ledgerview/ledgerview/internal/model"
	"github.com/ledgerview/ledgerview/internal/render"
)

func newInvestmentCommand(opts *rootOptions) *cobra.Command {
	investmentCmd := &cobra.Command{
		Use:     "investment",
		Aliases: []string{"inv"},
		Short:   "List and edit investments",
	}
	investmentCmd.AddCommand(
		newInvestmentListCommand(opts),
		newInvestmentAddCommand(opts),
		newInvestmentEditCommand(opts, "rename <id> <name>", "Rename an investment", func(args []string) (ledger.InvestmentEdit, error) {
			return ledger.RenameInvestment{Name: strings.Join(args, " ")}, nil
		}),
		newInvestmentEditCommand(opts, "amount <id> <amount>", "Set an investment amount", func(args []string) (ledger.InvestmentEdit, error) {
			amount, err := ledger.ParseAmount(strings.Join(args, " "))
			if err != nil {
				return nil, err
			}
			return ledger.SetInvestmentAmount{Amount: amount}, nil
		}),
		newInvestmentEditCommand(opts, "category <id> <auto|cash|goodwill|other>", "Tag an investment for the balance sheet", func(args []string) (ledger.InvestmentEdit, error) {
			cat, err := model.ParseCategory(strings.Join(args, " "))
			if err != nil {
				return nil, err
			}
			return ledger.SetInvestmentCategory{Category: cat}, nil
		}),
		newInvestmentRemoveCommand(opts),
	)
	return investmentCmd
}

func newInvestmentListCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List investments with their ids",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, opts)
			if err != nil {
				return err
			}
			md, err := render.InvestmentList(s.store.Ledger(), s.money)
			if err != nil {
				return err
			}
			return s.print(md)
		},
	}
}

func newInvestmentAddCommand(opts *rootOptions) *cobra.Command {
	var name, amount, category string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an investment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Validate everything before the store sees the new item.
			var edits []ledger.InvestmentEdit
			if cmd.Flags().Changed("name") {
				edits = append(edits, ledger.RenameInvestment{Name: name})
			}
			if cmd.Flags().Changed("amount") {
				d, err := ledger.ParseAmount(amount)
				if err != nil {
					return err
				}
				edits = append(edits, ledger.SetInvestmentAmount{Amount: d})
			}
			if cmd.Flags().Changed("category") {
				cat, err := model.ParseCategory(category)
				if err != nil {
					return err
				}
				edits = append(edits, ledger.SetInvestmentCategory{Category: cat})
			}

			s, err := openSession(cmd, opts)
			if err != nil {
				return err
			}
			itemID := s.store.AddInvestment()
			for _, edit := range edits {
				s.store.UpdateInvestment(itemID, edit)
			}
			fmt.Fprintf(s.out, "Added investment %s\n", itemID)
			return s.commit()
		},
	}

	cmd.Flags().StringVar(&name, "name", ledger.NewInvestmentName, "investment name")
	cmd.Flags().StringVar(&amount, "amount", "0", "amount in minor currency units")
	cmd.Flags().StringVar(&category, "category", "auto", "auto, cash, goodwill or other")

	return cmd
}

func newInvestmentEditCommand(opts *rootOptions, use, short string, parse func([]string) (ledger.InvestmentEdit, error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			edit, err := parse(args[1:])
			if err != nil {
				return err
			}
			s, err := openSession(cmd, opts)
			if err != nil {
				return err
			}
			s.warnMissing("investment", args[0], hasInvestment(s.store.Ledger(), args[0]))
			s.store.UpdateInvestment(args[0], edit)
			return s.commit()
		},
	}

	// Everything after the id is an argument, so negative amounts and text
	// starting with a dash need no "--".
	cmd.Flags().SetInterspersed(false)

	return cmd
}

func newInvestmentRemoveCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove an investment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, opts)
			if err != nil {
				return err
			}
			s.warnMissing("investment", args[0], hasInvestment(s.store.Ledger(), args[0]))
			s.store.RemoveInvestment(args[0])
			return s.commit()
		},
	}
}

func hasInvestment(l model.Ledger, itemID string) bool {
	return slices.ContainsFunc(l.Investments, func(inv model.Investment) bool { return inv.ID == itemID })
}
