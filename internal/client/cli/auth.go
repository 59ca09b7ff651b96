package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func (a *App) registerCommand() *cobra.Command {
	var name, email, password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and log in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if name, err = a.ask(name, "Enter name"); err != nil {
				return err
			}
			if email, err = a.ask(email, "Enter email"); err != nil {
				return err
			}
			if password, err = a.askPassword(password); err != nil {
				return err
			}

			p, err := a.api.Register(cmd.Context(), name, email, password)
			if err != nil {
				return err
			}
			if err := a.saveSession(cmd.Context(), p); err != nil {
				return err
			}

			return a.render(p.User, func(w io.Writer) {
				fmt.Fprintf(w, "Registered and logged in as %s (%s)\n", p.User.Email, p.User.Role)
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&password, "password", "", "password (prompted when omitted)")
	return cmd
}

func (a *App) loginCommand() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and remember the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if email, err = a.ask(email, "Enter email"); err != nil {
				return err
			}
			if password, err = a.askPassword(password); err != nil {
				return err
			}

			p, err := a.api.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			if err := a.saveSession(cmd.Context(), p); err != nil {
				return err
			}

			return a.render(p.User, func(w io.Writer) {
				fmt.Fprintf(w, "Logged in as %s (%s)\n", p.User.Email, p.User.Role)
			})
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&password, "password", "", "password (prompted when omitted)")
	return cmd
}

func (a *App) logoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the saved session for the server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.current == nil {
				fmt.Fprintln(a.out, "Not logged in")
				return nil
			}
			email := a.current.Email
			a.forgetSession(cmd.Context())
			fmt.Fprintf(a.out, "Logged out %s\n", email)
			return nil
		},
	}
}

func (a *App) meCommand() *cobra.Command {
	var withNotes bool

	cmd := &cobra.Command{
		Use:   "me",
		Short: "Show the logged-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			u, notes, err := a.api.Me(cmd.Context(), withNotes)
			if err != nil {
				return err
			}

			// The server answers anonymously for a token it rejects.
			if u == nil && a.current != nil {
				a.forgetSession(cmd.Context())
				fmt.Fprintln(a.errOut, "Saved session expired, log in again")
			}

			return a.render(&userView{User: u, Notes: notes}, func(w io.Writer) {
				if u == nil {
					fmt.Fprintln(w, "Not logged in")
					return
				}
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
