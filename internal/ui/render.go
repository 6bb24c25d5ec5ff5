package ui

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"
	"text/tabwriter"
	"unicode"
)

// Renderer draws a ViewState
type Renderer interface {
	Render(w io.Writer, s ViewState) error
}

//go:embed templates/*.html.tmpl
var templateFS embed.FS

// HTMLRenderer renders the contact page as HTML. All user text is escaped
// by html/template.
type HTMLRenderer struct {
	tmpl *template.Template
}

// NewHTMLRenderer parses the embedded page template
func NewHTMLRenderer() (*HTMLRenderer, error) {
	tmpl, err := template.New("page.html.tmpl").
		Funcs(template.FuncMap{"dash": dash}).
		ParseFS(templateFS, "templates/page.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse page template: %w", err)
	}
	return &HTMLRenderer{tmpl: tmpl}, nil
}

type htmlPage struct {
	ViewState
	PrevPage int
	NextPage int
}

func (r *HTMLRenderer) Render(w io.Writer, s ViewState) error {
	return r.tmpl.Execute(w, htmlPage{
		ViewState: s,
		PrevPage:  s.Page - 1,
		NextPage:  s.Page + 1,
	})
}

// TextRenderer renders the screen for a terminal
type TextRenderer struct{}

func (TextRenderer) Render(w io.Writer, s ViewState) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Contacts  [theme: %s] [sort: %s] [rows: %d]", s.Theme, clean(s.Sort), s.PageSize)
	if s.Search != "" {
		fmt.Fprintf(&b, " [search: %q]", clean(s.Search))
	}
	b.WriteString("\n\n")

	tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tPHONE\tCOMPANY")
	for _, c := range s.Contacts {
		fmt.Fprintf(tw, "%d\t%s %s\t%s\t%s\t%s\n",
			c.ID, clean(c.FirstName), clean(c.LastName), clean(c.Email),
			clean(dash(c.Phone)), clean(dash(c.Company)))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if len(s.Contacts) == 0 {
		b.WriteString("No contacts found\n")
	}
	fmt.Fprintf(&b, "\nPage %d of %d (%d total)\n", s.Page, s.TotalPages(), s.Total)

	switch s.Modal {
	case ModalCreate, ModalEdit:
		title := "Add Contact"
		if s.Modal == ModalEdit {
			title = fmt.Sprintf("Edit Contact #%d", s.TargetID)
		}
		fmt.Fprintf(&b, "\n-- %s --\n", title)
		fmt.Fprintf(&b, "first name: %s\nlast name:  %s\nemail:      %s\nphone:      %s\ncompany:    %s\n",
			clean(s.Form.FirstName), clean(s.Form.LastName), clean(s.Form.Email),
			clean(s.Form.Phone), clean(s.Form.Company))
	case ModalNotes:
		name := ""
		if s.NotesContact != nil {
			name = clean(s.NotesContact.FirstName + " " + s.NotesContact.LastName)
		}
		fmt.Fprintf(&b, "\n-- Notes for %s --\n", name)
		if len(s.Notes) == 0 {
			b.WriteString("No notes yet\n")
		}
		for _, n := range s.Notes {
			fmt.Fprintf(&b, "[%s] %s\n", n.CreatedAt.Local().Format("2006-01-02 15:04:05"), clean(n.Body))
		}
	case ModalConfirmDelete:
		fmt.Fprintf(&b, "\nDelete contact #%d? (confirm / cancel)\n", s.TargetID)
	}

	if s.Alert != "" {
		fmt.Fprintf(&b, "\nError: %s\n", clean(s.Alert))
	}
	if s.Toast != "" {
		fmt.Fprintf(&b, "\n%s\n", clean(s.Toast))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func dash(p *string) string {
	if p == nil || *p == "" {
		return "-"
	}
	return *p
}

// clean drops control characters so stored text cannot drive the terminal
func clean(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}
