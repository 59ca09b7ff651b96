package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var errNothingToUpdate = errors.New("nothing to update")

func (a *App) notesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notes",
		Short: "Manage notes",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List your notes, newest first",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				notes, err := a.api.MyNotes(cmd.Context())
				if err != nil {
					return err
				}
				return a.render(&notesView{Notes: notes}, func(w io.Writer) { writeNotes(w, notes) })
			},
		},
		&cobra.Command{
			Use:   "all",
			Short: "List every note (admin)",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				notes, err := a.api.AllNotes(cmd.Context())
				if err != nil {
					return err
				}
				return a.render(&notesView{Notes: notes}, func(w io.Writer) { writeNotes(w, notes) })
			},
		},
		&cobra.Command{
			Use:   "get <id>",
			Short: "Show a note",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				n, err := a.api.GetNote(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return a.render(&noteView{Note: n}, func(w io.Writer) { writeNote(w, n) })
			},
		},
		a.createNoteCommand(),
		a.updateNoteCommand(),
		&cobra.Command{
			Use:   "delete <id>",
			Short: "Delete a note",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				deleted, err := a.api.DeleteNote(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return a.render(&deletedView{Deleted: deleted}, func(w io.Writer) {
					writeDeleted(w, "note", args[0], deleted)
				})
			},
		},
	)

	return cmd
}

// createNoteCommand prompts for the title and a multi-line description when
// --title is omitted.
func (a *App) createNoteCommand() *cobra.Command {
	var title, description string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a note",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if title == "" {
				var err error
				if title, err = a.prompt.Line("Enter title"); err != nil {
					return err
				}
				if !cmd.Flags().Changed("description") {
					if description, err = a.prompt.Text("Enter description"); err != nil {
						return err
					}
				}
			}

			n, err := a.api.CreateNote(cmd.Context(), title, description)
			if err != nil {
				return err
			}
			return a.render(&noteView{Note: n}, func(w io.Writer) { writeNote(w, n) })
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "note title")
	cmd.Flags().StringVar(&description, "description", "", "note body")
	return cmd
}

func (a *App) updateNoteCommand() *cobra.Command {
	var title, description string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change the title or description of a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var titlePtr, descriptionPtr *string
			if cmd.Flags().Changed("title") {
				titlePtr = &title
			}
			if cmd.Flags().Changed("description") {
				descriptionPtr = &description
			}
			if titlePtr == nil && descriptionPtr == nil {
				return fmt.Errorf("%w: pass --title and/or --description", errNothingToUpdate)
			}

			n, err := a.api.UpdateNote(cmd.Context(), args[0], titlePtr, descriptionPtr)
			if err != nil {
				return err
			}
			return a.render(&noteView{Note: n}, func(w io.Writer) { writeNote(w, n) })
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "new title")
	cmd.Flags().StringVar(&description, "description", "", "new body")
	return cmd
}
