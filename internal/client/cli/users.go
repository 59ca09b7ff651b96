package cli

import (
	"fmt"
	"io"

	"github.com/dmitrijs2005/gophnotes/internal/client/models"
	"github.com/spf13/cobra"
)

func (a *App) usersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage user accounts",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List all users (admin)",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				users, err := a.api.ListUsers(cmd.Context())
				if err != nil {
					return err
				}
				return a.render(&usersView{Users: users}, func(w io.Writer) { writeUsers(w, users) })
			},
		},
		a.getUserCommand(),
		a.createUserCommand(),
		a.updateUserCommand(),
		&cobra.Command{
			Use:   "delete <id>",
			Short: "Delete a user and all of their notes",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				deleted, err := a.api.DeleteUser(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if deleted && a.current != nil && a.current.UserID == args[0] {
					a.forgetSession(cmd.Context())
				}
				return a.render(&deletedView{Deleted: deleted}, func(w io.Writer) {
					writeDeleted(w, "user", args[0], deleted)
				})
			},
		},
	)

	return cmd
}

func (a *App) getUserCommand() *cobra.Command {
	var withNotes bool

	cmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Show a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, notes, err := a.api.GetUser(cmd.Context(), args[0], withNotes)
			if err != nil {
				return err
			}
			return a.render(&userView{User: u, Notes: notes}, func(w io.Writer) {
				writeUser(w, u)
				if withNotes {
					fmt.Fprintln(w)
					writeNotes(w, notes)
				}
			})
		},
	}

	cmd.Flags().BoolVar(&withNotes, "with-notes", false, "include the user's notes")
	return cmd
}

func (a *App) createUserCommand() *cobra.Command {
	var req models.NewUser

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an account (admin)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if req.Name, err = a.ask(req.Name, "Enter name"); err != nil {
				return err
			}
			if req.Email, err = a.ask(req.Email, "Enter email"); err != nil {
				return err
			}
			if req.Password, err = a.askPassword(req.Password); err != nil {
				return err
			}

			u, err := a.api.CreateUser(cmd.Context(), &req)
			if err != nil {
				return err
			}
			return a.render(&userView{User: u}, func(w io.Writer) { writeUser(w, u) })
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "display name")
	cmd.Flags().StringVar(&req.Email, "email", "", "email address")
	cmd.Flags().StringVar(&req.Password, "password", "", "password (prompted when omitted)")
	cmd.Flags().StringVar(&req.Role, "role", "", "REGULAR (default) or ADMIN")
	return cmd
}

// updateUserCommand sends only the flags that were given. Role changes by a
// non-admin are ignored by the server.
func (a *App) updateUserCommand() *cobra.Command {
	var name, email, password, role string
	var askPassword bool

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change a user's name, email, password or role",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := &models.UserPatch{ID: args[0]}
			flags := cmd.Flags()

			if flags.Changed("name") {
				req.Name = &name
			}
			if flags.Changed("email") {
				req.Email = &email
			}
			if askPassword && !flags.Changed("password") {
				var err error
				if password, err = a.prompt.Password("Enter new password"); err != nil {
					return err
				}
			}
			if flags.Changed("password") || askPassword {
				req.Password = &password
			}
			if flags.Changed("role") {
				req.Role = &role
			}
			if req.Name == nil && req.Email == nil && req.Password == nil && req.Role == nil {
				return fmt.Errorf("%w: pass at least one of --name, --email, --password, --role", errNothingToUpdate)
			}

			u, err := a.api.UpdateUser(cmd.Context(), req)
			if err != nil {
				return err
			}
			return a.render(&userView{User: u}, func(w io.Writer) { writeUser(w, u) })
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new display name")
	cmd.Flags().StringVar(&email, "email", "", "new email address")
	cmd.Flags().StringVar(&password, "password", "", "new password")
	cmd.Flags().BoolVar(&askPassword, "ask-password", false, "prompt for the new password")
	cmd.Flags().StringVar(&role, "role", "", "new role (admin only)")
	return cmd
}
