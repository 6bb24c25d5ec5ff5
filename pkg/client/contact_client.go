package client

import (
	"bytes"
	"contact-service/internal/model"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// ContactClient talks to the contact-book HTTP API
type ContactClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// APIError is a non-2xx response from the API
type APIError struct {
	StatusCode  int
	Message     string
	FieldErrors map[string][]string
}

// ErrorResponse is the JSON error body returned by the API
type ErrorResponse struct {
	Error       string              `json:"error"`
	FieldErrors map[string][]string `json:"fieldErrors,omitempty"`
}

// Error returns the server's message
func (e *APIError) Error() string {
	return e.Message
}

// NewContactClient creates a client for the API rooted at baseURL, e.g.
// http://localhost:4000/api
func NewContactClient(baseURL string, timeout time.Duration) *ContactClient {
	return &ContactClient{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

// ListContacts fetches one page of contacts
func (c *ContactClient) ListContacts(ctx context.Context, q model.ListQuery) (*model.ContactPage, error) {
	params := url.Values{}
	params.Set("search", q.Search)
	if q.Page > 0 {
		params.Set("page", strconv.Itoa(q.Page))
	}
	if q.PageSize > 0 {
		params.Set("pageSize", strconv.Itoa(q.PageSize))
	}
	if q.Sort != "" {
		params.Set("sort", q.Sort)
	}

	var page model.ContactPage
	if err := c.do(ctx, http.MethodGet, "/contacts?"+params.Encode(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetContact fetches a single contact
func (c *ContactClient) GetContact(ctx context.Context, id uint) (*model.Contact, error) {
	var contact model.Contact
	if err := c.do(ctx, http.MethodGet, contactPath(id), nil, &contact); err != nil {
		return nil, err
	}
	return &contact, nil
}

// CreateContact creates a contact
func (c *ContactClient) CreateContact(ctx context.Context, in model.ContactInput) (*model.Contact, error) {
	var contact model.Contact
	if err := c.do(ctx, http.MethodPost, "/contacts", in, &contact); err != nil {
		return nil, err
	}
	return &contact, nil
}

// UpdateContact sends a partial update
func (c *ContactClient) UpdateContact(ctx context.Context, id uint, patch model.ContactPatch) (*model.Contact, error) {
	var contact model.Contact
	if err := c.do(ctx, http.MethodPut, contactPath(id), patch, &contact); err != nil {
		return nil, err
	}
	return &contact, nil
}

// DeleteContact deletes a contact
func (c *ContactClient) DeleteContact(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, contactPath(id), nil, nil)
}

// ListNotes fetches a contact's notes, newest first
func (c *ContactClient) ListNotes(ctx context.Context, contactID uint) ([]model.Note, error) {
	var notes []model.Note
	if err := c.do(ctx, http.MethodGet, contactPath(contactID)+"/notes", nil, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

// AddNote adds a note to a contact
func (c *ContactClient) AddNote(ctx context.Context, contactID uint, body string) (*model.Note, error) {
	var note model.Note
	if err := c.do(ctx, http.MethodPost, contactPath(contactID)+"/notes", model.NoteInput{Body: body}, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

// GetPreferences fetches the caller's preferences
func (c *ContactClient) GetPreferences(ctx context.Context) (*model.Preference, error) {
	var pref model.Preference
	if err := c.do(ctx, http.MethodGet, "/preferences", nil, &pref); err != nil {
		return nil, err
	}
	return &pref, nil
}

// SavePreferences replaces the caller's preferences
func (c *ContactClient) SavePreferences(ctx context.Context, in model.PreferenceInput) (*model.Preference, error) {
	var pref model.Preference
	if err := c.do(ctx, http.MethodPut, "/preferences", in, &pref); err != nil {
		return nil, err
	}
	return &pref, nil
}

func contactPath(id uint) string {
	return "/contacts/" + strconv.FormatUint(uint64(id), 10)
}

// do sends a JSON request and decodes a JSON response into out, if given
func (c *ContactClient) do(ctx context.Context, method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestIDHeader, uuid.NewString())

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var errorResp ErrorResponse
		if err := json.Unmarshal(respBody, &errorResp); err == nil && errorResp.Error != "" {
			apiErr.Message = errorResp.Error
			apiErr.FieldErrors = errorResp.FieldErrors
		} else {
			apiErr.Message = fmt.Sprintf("request failed: %d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
		}
		return apiErr
	}

	if out == nil || len(respBody) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
