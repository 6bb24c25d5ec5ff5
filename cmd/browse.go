package main

import (
	"bufio"
	"contact-service/internal/ui"
	"contact-service/pkg/client"
	"contact-service/pkg/logger"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var browseURL string

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse contacts interactively against a running server",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		baseURL := browseURL
		if baseURL == "" {
			baseURL = cfg.Client.BaseURL
		}
		api := client.NewContactClient(baseURL, cfg.Client.Timeout)
		ctrl := ui.NewController(api, ui.WithLogger(logger.GetLogger()))
		defer ctrl.Close()

		return newBrowser(ctrl, cmd.InOrStdin(), cmd.OutOrStdout()).run(cmd.Context())
	},
}

func init() {
	browseCmd.Flags().StringVar(&browseURL, "url", "", "API base URL (defaults to CONTACT_API_URL)")
}

const browseHelp = `commands:
  list                 reload the current page
  n, p                 next / previous page
  page N               jump to page N
  search [TEXT]        search names and emails (empty clears)
  sort COLUMN:DIR      e.g. last_name:asc, email:desc
  size N               rows per page
  theme                toggle light/dark
  add                  create a contact
  edit ID              edit a contact
  delete ID            ask to delete a contact, then: confirm | cancel
  notes ID             show notes for a contact, then: note TEXT
  close                close the open dialog
  help                 show this help
  quit                 exit
`

// browser is a line-oriented front end for the controller
type browser struct {
	ctrl     *ui.Controller
	in       *bufio.Scanner
	out      io.Writer
	renderer ui.Renderer
}

func newBrowser(ctrl *ui.Controller, in io.Reader, out io.Writer) *browser {
	return &browser{
		ctrl:     ctrl,
		in:       bufio.NewScanner(in),
		out:      out,
		renderer: ui.TextRenderer{},
	}
}

func (b *browser) run(ctx context.Context) error {
	b.ctrl.Load(ctx)
	if err := b.render(); err != nil {
		return err
	}

	for {
		fmt.Fprint(b.out, "> ")
		line, ok := b.readLine()
		if !ok {
			return b.in.Err()
		}
		cmd, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
		arg = strings.TrimSpace(arg)

		switch strings.ToLower(cmd) {
		case "":
			continue
		case "quit", "exit", "q":
			return nil
		case "help", "?":
			fmt.Fprint(b.out, browseHelp)
			continue
		case "list", "reload":
			b.ctrl.Reload(ctx)
		case "n", "next":
			b.ctrl.NextPage(ctx)
		case "p", "prev":
			b.ctrl.PrevPage(ctx)
		case "page":
			n, err := strconv.Atoi(arg)
			if err != nil {
				fmt.Fprintln(b.out, "usage: page N")
				continue
			}
			b.ctrl.GoToPage(ctx, n)
		case "search":
			b.ctrl.Search(ctx, arg)
		case "sort":
			if arg == "" {
				fmt.Fprintln(b.out, "usage: sort COLUMN:DIR")
				continue
			}
			b.ctrl.SetSort(ctx, arg)
		case "size":
			n, err := strconv.Atoi(arg)
			if err != nil || n <= 0 {
				fmt.Fprintln(b.out, "usage: size N")
				continue
			}
			b.ctrl.SetPageSize(ctx, n)
		case "theme":
			b.ctrl.ToggleTheme(ctx)
		case "add":
			b.ctrl.OpenCreate()
			b.ctrl.SubmitContact(ctx, b.promptForm(ui.ContactForm{}))
		case "edit":
			id, ok := b.parseID(arg, "edit ID")
			if !ok {
				continue
			}
			b.ctrl.OpenEdit(ctx, id)
			if st := b.ctrl.State(); st.Modal == ui.ModalEdit {
				b.ctrl.SubmitContact(ctx, b.promptForm(st.Form))
			}
		case "delete":
			id, ok := b.parseID(arg, "delete ID")
			if !ok {
				continue
			}
			b.ctrl.AskDelete(id)
		case "confirm", "yes":
			b.ctrl.ConfirmDelete(ctx)
		case "notes":
			id, ok := b.parseID(arg, "notes ID")
			if !ok {
				continue
			}
			b.ctrl.OpenNotes(ctx, id)
		case "note":
			b.ctrl.AddNote(ctx, arg)
		case "close", "cancel":
			b.ctrl.CloseModal()
		default:
			fmt.Fprintf(b.out, "unknown command %q, type help\n", cmd)
			continue
		}

		if err := b.render(); err != nil {
			return err
		}
	}
}

// render draws the state and dismisses notices once they are shown
func (b *browser) render() error {
	if err := b.renderer.Render(b.out, b.ctrl.State()); err != nil {
		return err
	}
	b.ctrl.ClearNotices()
	return nil
}

func (b *browser) readLine() (string, bool) {
	if !b.in.Scan() {
		return "", false
	}
	return b.in.Text(), true
}

func (b *browser) parseID(arg, usage string) (uint, bool) {
	id, err := strconv.ParseUint(arg, 10, 0)
	if err != nil || id == 0 {
		fmt.Fprintln(b.out, "usage: "+usage)
		return 0, false
	}
	return uint(id), true
}

// promptForm asks for each field; an empty answer keeps the current value
// and "-" clears it.
func (b *browser) promptForm(current ui.ContactForm) ui.ContactForm {
	form := current
	fields := []struct {
		label string
		value *string
	}{
		{"first name", &form.FirstName},
		{"last name", &form.LastName},
		{"email", &form.Email},
		{"phone", &form.Phone},
		{"company", &form.Company},
	}
	for _, f := range fields {
		if *f.value != "" {
			fmt.Fprintf(b.out, "%s [%s]: ", f.label, *f.value)
		} else {
			fmt.Fprintf(b.out, "%s: ", f.label)
		}
		line, ok := b.readLine()
		if !ok {
			break
		}
		switch strings.TrimSpace(line) {
		case "":
		case "-":
			*f.value = ""
		default:
			*f.value = line
		}
	}
	return form
}
