package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dmitrijs2005/gophnotes/internal/client/models"
)

// JSON envelopes printed with --json.
type (
	userView struct {
		User  *models.User   `json:"user"`
		Notes []*models.Note `json:"notes,omitempty"`
	}
	usersView struct {
		Users []*models.User `json:"users"`
	}
	noteView struct {
		Note *models.Note `json:"note"`
	}
	notesView struct {
		Notes []*models.Note `json:"notes"`
	}
	deletedView struct {
		Deleted bool `json:"deleted"`
	}
)

// render prints v as indented JSON with --json, otherwise hands a tab-aligned
// writer to text.
func (a *App) render(v any, text func(w io.Writer)) error {
	if a.jsonOutput {
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}

	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	text(tw)
	return tw.Flush()
}

func writeUser(w io.Writer, u *models.User) {
	fmt.Fprintf(w, "ID:\t%s\n", u.ID)
	fmt.Fprintf(w, "Name:\t%s\n", u.Name)
	fmt.Fprintf(w, "Email:\t%s\n", u.Email)
	fmt.Fprintf(w, "Role:\t%s\n", u.Role)
	fmt.Fprintf(w, "Created:\t%s\n", u.CreatedAt)
	fmt.Fprintf(w, "Updated:\t%s\n", u.UpdatedAt)
}

func writeUsers(w io.Writer, users []*models.User) {
	if len(users) == 0 {
		fmt.Fprintln(w, "No users")
		return
	}
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tROLE\tCREATED")
	for _, u := range users {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", u.ID, u.Name, u.Email, u.Role, u.CreatedAt)
	}
}

func writeNote(w io.Writer, n *models.Note) {
	fmt.Fprintf(w, "ID:\t%s\n", n.ID)
	fmt.Fprintf(w, "Title:\t%s\n", n.Title)
	fmt.Fprintf(w, "Author:\t%s\n", authorOf(n))
	fmt.Fprintf(w, "Created:\t%s\n", n.CreatedAt)
	fmt.Fprintf(w, "Updated:\t%s\n", n.UpdatedAt)
	if n.Description != "" {
		fmt.Fprintf(w, "\n%s\n", n.Description)
	}
}

func writeNotes(w io.Writer, notes []*models.Note) {
	if len(notes) == 0 {
		fmt.Fprintln(w, "No notes")
		return
	}
	fmt.Fprintln(w, "ID\tTITLE\tAUTHOR\tUPDATED")
	for _, n := range notes {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", n.ID, n.Title, authorOf(n), n.UpdatedAt)
	}
}

// authorOf prefers the resolved author's email over the bare id.
func authorOf(n *models.Note) string {
	if n.Author != nil && n.Author.Email != "" {
		return n.Author.Email
	}
	return n.AuthorID
}

func writeDeleted(w io.Writer, kind, id string, deleted bool) {
	if deleted {
		fmt.Fprintf(w, "Deleted %s %s\n", kind, id)
		return
	}
	fmt.Fprintf(w, "%s %s was not deleted\n", kind, id)
}
