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

func newExpenseCommand(opts *rootOptions) *cobra.Command {
	expenseCmd := &cobra.Command{
		Use:     "expense",
		Aliases: []string{"exp"},
		Short:   "List and edit expenses",
	}
	expenseCmd.AddCommand(
		newExpenseListCommand(opts),
		newExpenseAddCommand(opts),
		newExpenseEditCommand(opts, "rename <id> <name>", "Rename an expense", func(args []string) (ledger.ExpenseEdit, error) {
			return ledger.RenameExpense{Name: strings.Join(args, " ")}, nil
		}),
		newExpenseEditCommand(opts, "amount <id> <amount>", "Set an expense amount", func(args []string) (ledger.ExpenseEdit, error) {
			amount, err := ledger.ParseAmount(strings.Join(args, " "))
			if err != nil {
				return nil, err
			}
			return ledger.SetExpenseAmount{Amount: amount}, nil
		}),
		newExpenseToggleCommand(opts),
		newExpenseRemoveCommand(opts),
	)
	return expenseCmd
}

func newExpenseListCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List expenses with their ids and flags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, opts)
			if err != nil {
				return err
			}
			md, err := render.ExpenseList(s.store.Ledger(), s.money)
			if err != nil {
				return err
			}
			return s.print(md)
		},
	}
}

func newExpenseAddCommand(opts *rootOptions) *cobra.Command {
	var name, amount string
	var asset, prepaid bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an expense",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var edits []ledger.ExpenseEdit
			if cmd.Flags().Changed("name") {
				edits = append(edits, ledger.RenameExpense{Name: name})
			}
			if cmd.Flags().Changed("amount") {
				d, err := ledger.ParseAmount(amount)
				if err != nil {
					return err
				}
				edits = append(edits, ledger.SetExpenseAmount{Amount: d})
			}

			s, err := openSession(cmd, opts)
			if err != nil {
				return err
			}
			itemID := s.store.AddExpense()
			for _, edit := range edits {
				s.store.UpdateExpense(itemID, edit)
			}
			if asset {
				s.store.ToggleExpense(itemID, ledger.IsAsset)
			}
			if prepaid {
				s.store.ToggleExpense(itemID, ledger.Prepaid)
			}
			fmt.Fprintf(s.out, "Added expense %s\n", itemID)
			return s.commit()
		},
	}

	cmd.Flags().StringVar(&name, "name", ledger.NewExpenseName, "expense name")
	cmd.Flags().StringVar(&amount, "amount", "0", "amount in minor currency units")
	cmd.Flags().BoolVar(&asset, "asset", false, "record the expense as an asset purchase")
	cmd.Flags().BoolVar(&prepaid, "prepaid", false, "mark the expense as prepaid")

	return cmd
}

func newExpenseEditCommand(opts *rootOptions, use, short string, parse func([]string) (ledger.ExpenseEdit, error)) *cobra.Command {
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
			s.warnMissing("expense", args[0], hasExpense(s.store.Ledger(), args[0]))
			s.store.UpdateExpense(args[0], edit)
			return s.commit()
		},
	}

	// Everything after the id is an argument, so negative amounts and text
	// starting with a dash need no "--".
	cmd.Flags().SetInterspersed(false)

	return cmd
}

func newExpenseToggleCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:       "toggle <id> <asset|prepaid>",
		Short:     "Flip the asset or prepaid flag of an expense",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{"asset", "prepaid"},
		RunE: func(cmd *cobra.Command, args []string) error {
			prop, err := parseProperty(args[1])
			if err != nil {
				return err
			}
			s, err := openSession(cmd, opts)
			if err != nil {
				return err
			}
			s.warnMissing("expense", args[0], hasExpense(s.store.Ledger(), args[0]))
			s.store.ToggleExpense(args[0], prop)
			return s.commit()
		},
	}
}

func newExpenseRemoveCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove an expense",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, opts)
			if err != nil {
				return err
			}
			s.warnMissing("expense", args[0], hasExpense(s.store.Ledger(), args[0]))
			s.store.RemoveExpense(args[0])
			return s.commit()
		},
	}
}

func parseProperty(s string) (ledger.Property, error) {
	switch strings.ToLower(s) {
	case "asset", "isasset":
		return ledger.IsAsset, nil
	case "prepaid":
		return ledger.Prepaid, nil
	default:
		return 0, fmt.Errorf("unknown expense flag %q (want asset or prepaid)", s)
	}
}

func hasExpense(l model.Ledger, itemID string) bool {
	return slices.ContainsFunc(l.Expenses, func(exp model.Expense) bool { return exp.ID == itemID })
}
