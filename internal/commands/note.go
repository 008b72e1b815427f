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

func newNoteCommand(opts *rootOptions) *cobra.Command {
	noteCmd := &cobra.Command{
		Use:   "note",
		Short: "List and edit notes to the statements",
	}
	noteCmd.AddCommand(
		newNoteListCommand(opts),
		newNoteAddCommand(opts),
		newNoteEditCommand(opts, "title <id> <title>", "Set a note title", func(v string) ledger.NoteEdit {
			return ledger.SetNoteTitle{Title: v}
		}),
		newNoteEditCommand(opts, "content <id> <text>", "Set a note body", func(v string) ledger.NoteEdit {
			return ledger.SetNoteContent{Content: v}
		}),
		newNoteRemoveCommand(opts),
	)
	return noteCmd
}

func newNoteListCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List notes with their ids",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, opts)
			if err != nil {
				return err
			}
			md, err := render.NoteList(s.store.Ledger(), s.money)
			if err != nil {
				return err
			}
			return s.print(md)
		},
	}
}

func newNoteAddCommand(opts *rootOptions) *cobra.Command {
	var title, content string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a note",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, opts)
			if err != nil {
				return err
			}
			itemID := s.store.AddNote()
			if cmd.Flags().Changed("title") {
				s.store.UpdateNote(itemID, ledger.SetNoteTitle{Title: title})
			}
			if cmd.Flags().Changed("content") {
				s.store.UpdateNote(itemID, ledger.SetNoteContent{Content: content})
			}
			fmt.Fprintf(s.out, "Added note %s\n", itemID)
			return s.commit()
		},
	}

	cmd.Flags().StringVar(&title, "title", ledger.NewNoteTitle, "note title")
	cmd.Flags().StringVar(&content, "content", ledger.NewNoteContent, "note body (markdown)")

	return cmd
}

func newNoteEditCommand(opts *rootOptions, use, short string, edit func(string) ledger.NoteEdit) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, opts)
			if err != nil {
				return err
			}
			s.warnMissing("note", args[0], hasNote(s.store.Ledger(), args[0]))
			s.store.UpdateNote(args[0], edit(strings.Join(args[1:], " ")))
			return s.commit()
		},
	}

	// Everything after the id is note text, even when it starts with a dash.
	cmd.Flags().SetInterspersed(false)

	return cmd
}

func newNoteRemoveCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, opts)
			if err != nil {
				return err
			}
			s.warnMissing("note", args[0], hasNote(s.store.Ledger(), args[0]))
			s.store.RemoveNote(args[0])
			return s.commit()
		},
	}
}

func hasNote(l model.Ledger, itemID string) bool {
	return slices.ContainsFunc(l.Notes, func(n model.Note) bool { return n.ID == itemID })
}
