package ui

import (
	"contact-service/internal/model"
	"context"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

// DefaultDebounce is the quiet period after typing before a search runs
const DefaultDebounce = 300 * time.Millisecond

const (
	alertLoadContacts = "Failed to load contacts"
	alertLoadContact  = "Failed to load contact"
	alertLoadNotes    = "Failed to load notes"
	alertDelete       = "Failed to delete contact"
	alertAddNote      = "Failed to add note"
	alertEmptyNote    = "Please enter a note"

	toastCreated   = "Contact added successfully"
	toastUpdated   = "Contact updated successfully"
	toastDeleted   = "Contact deleted successfully"
	toastNoteAdded = "Note added successfully"
)

// Controller applies user events to a ViewState. Event methods never return
// errors: a failure is recorded once in the Alert field and the state stays
// consistent. API calls are made without holding the state lock.
type Controller struct {
	api      API
	log      *zap.Logger
	debounce time.Duration
	onChange func(ViewState)

	mu       sync.Mutex
	state    ViewState
	seq      uint64
	timer    *time.Timer
	timerGen uint64
}

// Option configures a Controller
type Option func(*Controller)

// WithLogger sets the logger for failures that are not shown to the user
func WithLogger(log *zap.Logger) Option {
	return func(c *Controller) {
		c.log = log
	}
}

// WithDebounce overrides the search debounce period
func WithDebounce(d time.Duration) Option {
	return func(c *Controller) {
		c.debounce = d
	}
}

// WithQuery seeds the search text and page the first Load fetches
func WithQuery(search string, page int) Option {
	return func(c *Controller) {
		c.state.Search = search
		if page > 0 {
			c.state.Page = page
		}
	}
}

// WithOnChange registers a callback invoked with every new state
func WithOnChange(fn func(ViewState)) Option {
	return func(c *Controller) {
		c.onChange = fn
	}
}

// NewController creates a controller in the initial state
func NewController(api API, opts ...Option) *Controller {
	c := &Controller{
		api:      api,
		log:      zap.NewNop(),
		debounce: DefaultDebounce,
		state:    InitialState(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns a snapshot of the current state
func (c *Controller) State() ViewState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// mutate applies fn under the lock and publishes the result
func (c *Controller) mutate(fn func(s *ViewState)) ViewState {
	c.mu.Lock()
	fn(&c.state)
	snapshot := c.state
	c.mu.Unlock()

	if c.onChange != nil {
		c.onChange(snapshot)
	}
	return snapshot
}

// Close stops a pending debounced search
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.timerGen++
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

// Load applies stored preferences and fetches the listing. A failure
// to read preferences is logged and the defaults stay in effect.
func (c *Controller) Load(ctx context.Context) {
	prefs, err := c.api.GetPreferences(ctx)
	if err != nil {
		c.log.Warn("Failed to load preferences", zap.Error(err))
	} else {
		c.mutate(func(s *ViewState) {
			if prefs.Theme != "" {
				s.Theme = prefs.Theme
			}
			if prefs.DefaultSort != "" {
				s.Sort = prefs.DefaultSort
			}
			if prefs.RowsPerPage > 0 {
				s.PageSize = prefs.RowsPerPage
			}
		})
	}

	c.refresh(ctx)
}

// Reload re-fetches the current page
func (c *Controller) Reload(ctx context.Context) {
	c.refresh(ctx)
}

// refresh fetches the listing for the current query. Each fetch takes a
// new sequence number and only the latest one may apply its response.
func (c *Controller) refresh(ctx context.Context) {
	var (
		seq uint64
		q   model.ListQuery
	)
	c.mutate(func(s *ViewState) {
		c.seq++
		seq = c.seq
		s.Loading = true
		q = s.query()
	})

	page, err := c.api.ListContacts(ctx, q)

	stale := false
	c.mutate(func(s *ViewState) {
		if seq != c.seq {
			stale = true
			return
		}
		s.Loading = false
		if err != nil {
			s.Alert = alertLoadContacts
			return
		}
		s.Contacts = page.Data
		s.Total = page.Total
		if page.Page > 0 {
			s.Page = page.Page
		}
	})

	if stale {
		c.log.Debug("Discarding stale contact listing", zap.Uint64("seq", seq))
	} else if err != nil {
		c.log.Error("Failed to list contacts", zap.Error(err))
	}
}

// SearchInput records typed search text and runs the search once typing
// has been quiet for the debounce period.
func (c *Controller) SearchInput(ctx context.Context, text string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.Search = text
	if c.timer != nil {
		c.timer.Stop()
	}
	c.timerGen++
	gen := c.timerGen
	c.timer = time.AfterFunc(c.debounce, func() { c.debounced(ctx, gen) })
}

// debounced runs the search scheduled as generation gen. A timer that fired
// after being replaced or stopped does nothing.
func (c *Controller) debounced(ctx context.Context, gen uint64) {
	c.mu.Lock()
	if c.timerGen != gen {
		c.mu.Unlock()
		return
	}
	c.timer = nil
	c.mu.Unlock()

	c.mutate(func(s *ViewState) { s.Page = model.DefaultPage })
	c.refresh(ctx)
}

// Search runs a search immediately, cancelling any pending debounced one
func (c *Controller) Search(ctx context.Context, text string) {
	c.Close()
	c.mutate(func(s *ViewState) {
		s.Search = text
		s.Page = model.DefaultPage
	})
	c.refresh(ctx)
}

// SetSort changes the ordering, returns to page 1 and persists it
func (c *Controller) SetSort(ctx context.Context, sort string) {
	c.mutate(func(s *ViewState) {
		s.Sort = sort
		s.Page = model.DefaultPage
	})
	c.refresh(ctx)
	c.savePreferences(ctx)
}

// SetPageSize changes the rows per page, returns to page 1 and persists it
func (c *Controller) SetPageSize(ctx context.Context, size int) {
	if size <= 0 {
		return
	}
	c.mutate(func(s *ViewState) {
		s.PageSize = size
		s.Page = model.DefaultPage
	})
	c.refresh(ctx)
	c.savePreferences(ctx)
}

// ToggleTheme switches between light and dark and persists the choice
func (c *Controller) ToggleTheme(ctx context.Context) {
	c.mutate(func(s *ViewState) {
		if s.Theme == model.ThemeDark {
			s.Theme = model.ThemeLight
		} else {
			s.Theme = model.ThemeDark
		}
	})
	c.savePreferences(ctx)
}

func (c *Controller) savePreferences(ctx context.Context) {
	in := c.State().preferences()
	if _, err := c.api.SavePreferences(ctx, in); err != nil {
		c.log.Warn("Failed to save preferences", zap.Error(err))
	}
}

// PrevPage moves back one page; it does nothing on page 1
func (c *Controller) PrevPage(ctx context.Context) {
	if !c.State().CanPrev() {
		return
	}
	c.mutate(func(s *ViewState) { s.Page-- })
	c.refresh(ctx)
}

// NextPage moves forward one page while the last applied listing has more
func (c *Controller) NextPage(ctx context.Context) {
	if !c.State().CanNext() {
		return
	}
	c.mutate(func(s *ViewState) { s.Page++ })
	c.refresh(ctx)
}

// GoToPage jumps to page, clamped to the known page range
func (c *Controller) GoToPage(ctx context.Context, page int) {
	c.mutate(func(s *ViewState) {
		s.Page = min(max(page, 1), s.TotalPages())
	})
	c.refresh(ctx)
}

// OpenCreate opens an empty contact dialog
func (c *Controller) OpenCreate() {
	c.mutate(func(s *ViewState) {
		s.closeModal()
		s.Modal = ModalCreate
	})
}

// OpenEdit fetches a contact and opens the dialog prefilled with it
func (c *Controller) OpenEdit(ctx context.Context, id uint) {
	contact, err := c.api.GetContact(ctx, id)
	if err != nil {
		c.log.Warn("Failed to load contact", zap.Uint("contact_id", id), zap.Error(err))
		c.mutate(func(s *ViewState) { s.Alert = alertLoadContact })
		return
	}
	c.mutate(func(s *ViewState) {
		s.closeModal()
		s.Modal = ModalEdit
		s.TargetID = id
		s.Form = FormFromContact(*contact)
	})
}

// SubmitContact creates or updates from the dialog. On failure the dialog
// stays open with the server's message as the alert.
func (c *Controller) SubmitContact(ctx context.Context, form ContactForm) {
	st := c.mutate(func(s *ViewState) { s.Form = form })

	var (
		err   error
		toast string
	)
	switch st.Modal {
	case ModalCreate:
		_, err = c.api.CreateContact(ctx, form.Input())
		toast = toastCreated
	case ModalEdit:
		_, err = c.api.UpdateContact(ctx, st.TargetID, form.Patch())
		toast = toastUpdated
	default:
		return
	}

	if err != nil {
		c.log.Warn("Failed to save contact", zap.Error(err))
		c.mutate(func(s *ViewState) { s.Alert = err.Error() })
		return
	}

	c.mutate(func(s *ViewState) {
		s.closeModal()
		s.Toast = toast
	})
	c.refresh(ctx)
}

// AskDelete opens the delete confirmation for a contact
func (c *Controller) AskDelete(id uint) {
	c.mutate(func(s *ViewState) {
		s.closeModal()
		s.Modal = ModalConfirmDelete
		s.TargetID = id
	})
}

// ConfirmDelete deletes the contact awaiting confirmation. The dialog
// stays open if the delete fails.
func (c *Controller) ConfirmDelete(ctx context.Context) {
	st := c.State()
	if st.Modal != ModalConfirmDelete || st.TargetID == 0 {
		return
	}

	if err := c.api.DeleteContact(ctx, st.TargetID); err != nil {
		c.log.Warn("Failed to delete contact", zap.Uint("contact_id", st.TargetID), zap.Error(err))
		c.mutate(func(s *ViewState) { s.Alert = alertDelete })
		return
	}

	c.mutate(func(s *ViewState) {
		s.closeModal()
		s.Toast = toastDeleted
	})
	c.refresh(ctx)
}

// OpenNotes opens the notes dialog for a contact
func (c *Controller) OpenNotes(ctx context.Context, id uint) {
	contact, err := c.api.GetContact(ctx, id)
	if err != nil {
		c.log.Warn("Failed to load contact", zap.Uint("contact_id", id), zap.Error(err))
		c.mutate(func(s *ViewState) { s.Alert = alertLoadContact })
		return
	}

	c.mutate(func(s *ViewState) {
		s.closeModal()
		s.Modal = ModalNotes
		s.TargetID = id
		s.NotesContact = contact
	})
	c.loadNotes(ctx, id)
}

func (c *Controller) loadNotes(ctx context.Context, contactID uint) {
	notes, err := c.api.ListNotes(ctx, contactID)
	c.mutate(func(s *ViewState) {
		if s.Modal != ModalNotes || s.TargetID != contactID {
			return
		}
		if err != nil {
			s.Notes = nil
			s.Alert = alertLoadNotes
			return
		}
		s.Notes = notes
	})
	if err != nil {
		c.log.Warn("Failed to load notes", zap.Uint("contact_id", contactID), zap.Error(err))
	}
}

// AddNote adds a note to the open notes dialog. Blank text is rejected
// without calling the API.
func (c *Controller) AddNote(ctx context.Context, body string) {
	st := c.mutate(func(s *ViewState) { s.NoteDraft = body })
	if st.Modal != ModalNotes {
		return
	}

	text := strings.TrimSpace(body)
	if text == "" {
		c.mutate(func(s *ViewState) { s.Alert = alertEmptyNote })
		return
	}

	if _, err := c.api.AddNote(ctx, st.TargetID, text); err != nil {
		c.log.Warn("Failed to add note", zap.Uint("contact_id", st.TargetID), zap.Error(err))
		c.mutate(func(s *ViewState) { s.Alert = alertAddNote })
		return
	}

	c.mutate(func(s *ViewState) {
		s.NoteDraft = ""
		s.Toast = toastNoteAdded
	})
	c.loadNotes(ctx, st.TargetID)
}

// CloseModal dismisses any open dialog
func (c *Controller) CloseModal() {
	c.mutate(func(s *ViewState) { s.closeModal() })
}

// ClearNotices dismisses the alert and toast once they have been shown
func (c *Controller) ClearNotices() {
	c.mutate(func(s *ViewState) {
		s.Alert = ""
		s.Toast = ""
	})
}
