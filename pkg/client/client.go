// Package client is a typed Go client for the MindVault REST API.
//
// Every request carries the session's bearer token when one is set; any auth
// response carrying a token is persisted back into the session for subsequent
// requests.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// User mirrors the server's public user view.
type User struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// AuthResult is the payload of register and login responses.
type AuthResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type Note struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Category  []string  `json:"category"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Bookmark struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	Description string    `json:"description"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Todo struct {
	ID        int64      `json:"id"`
	UserID    int64      `json:"user_id"`
	Text      string     `json:"text"`
	Completed bool       `json:"completed"`
	Deadline  *time.Time `json:"deadline"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// NoteDraft is the body for creating a note.
type NoteDraft struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Category []string `json:"category,omitempty"`
}

// NotePatch carries only the fields to change; nil fields are omitted.
type NotePatch struct {
	Title    *string   `json:"title,omitempty"`
	Content  *string   `json:"content,omitempty"`
	Category *[]string `json:"category,omitempty"`
}

type BookmarkDraft struct {
	Title       string   `json:"title"`
	URL         string   `json:"url"`
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

type BookmarkPatch struct {
	Title       *string   `json:"title,omitempty"`
	URL         *string   `json:"url,omitempty"`
	Description *string   `json:"description,omitempty"`
	Tags        *[]string `json:"tags,omitempty"`
}

type TodoDraft struct {
	Text     string `json:"text"`
	Deadline string `json:"deadline,omitempty"` // "2006-01-02" or RFC3339
}

type TodoPatch struct {
	Text      *string `json:"text,omitempty"`
	Completed *bool   `json:"completed,omitempty"`
	Deadline  *string `json:"deadline,omitempty"`
}

// APIError is a non-2xx response decoded from the server's error body.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: status %d: %s", e.Status, e.Message)
}

// Client calls the MindVault REST API.
type Client struct {
	baseURL string
	http    *http.Client
	session *Session
}

// New returns a client for the API at baseURL (e.g. "http://localhost:8080")
// bound to the given session. A nil session gets a fresh in-memory one.
func New(baseURL string, session *Session) *Client {
	if session == nil {
		session = NewSession()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/") + "/api/v1",
		http:    &http.Client{Timeout: 15 * time.Second},
		session: session,
	}
}

// Session returns the session the client was constructed with.
func (c *Client) Session() *Session { return c.session }

// Register creates an account and stores the returned token in the session.
func (c *Client) Register(ctx context.Context, email, password, name string) (AuthResult, error) {
	body := map[string]string{"email": email, "password": password, "name": name}
	return c.doAuth(ctx, "/auth/register", body)
}

// Login authenticates and stores the returned token in the session.
func (c *Client) Login(ctx context.Context, email, password string) (AuthResult, error) {
	body := map[string]string{"email": email, "password": password}
	return c.doAuth(ctx, "/auth/login", body)
}

// Logout clears the session token. The server keeps no session state.
func (c *Client) Logout() error {
	return c.session.Clear()
}

func (c *Client) doAuth(ctx context.Context, path string, body any) (AuthResult, error) {
	var out AuthResult
	if err := c.do(ctx, http.MethodPost, path, body, &out); err != nil {
		return AuthResult{}, err
	}
	if out.Token != "" {
		if err := c.session.SetToken(out.Token); err != nil {
			return AuthResult{}, fmt.Errorf("persist token: %w", err)
		}
	}
	return out, nil
}

func (c *Client) ListNotes(ctx context.Context) ([]Note, error) {
	var out []Note
	err := c.do(ctx, http.MethodGet, "/notes", nil, &out)
	return out, err
}

func (c *Client) CreateNote(ctx context.Context, draft NoteDraft) (Note, error) {
	var out Note
	err := c.do(ctx, http.MethodPost, "/notes", draft, &out)
	return out, err
}

func (c *Client) UpdateNote(ctx context.Context, id int64, patch NotePatch) (Note, error) {
	var out Note
	err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/notes/%d", id), patch, &out)
	return out, err
}

func (c *Client) DeleteNote(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/notes/%d", id), nil, nil)
}

func (c *Client) ListBookmarks(ctx context.Context) ([]Bookmark, error) {
	var out []Bookmark
	err := c.do(ctx, http.MethodGet, "/bookmarks", nil, &out)
	return out, err
}

func (c *Client) CreateBookmark(ctx context.Context, draft BookmarkDraft) (Bookmark, error) {
	var out Bookmark
	err := c.do(ctx, http.MethodPost, "/bookmarks", draft, &out)
	return out, err
}

func (c *Client) UpdateBookmark(ctx context.Context, id int64, patch BookmarkPatch) (Bookmark, error) {
	var out Bookmark
	err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/bookmarks/%d", id), patch, &out)
	return out, err
}

func (c *Client) DeleteBookmark(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/bookmarks/%d", id), nil, nil)
}

func (c *Client) ListTodos(ctx context.Context) ([]Todo, error) {
	var out []Todo
	err := c.do(ctx, http.MethodGet, "/todos", nil, &out)
	return out, err
}

func (c *Client) CreateTodo(ctx context.Context, draft TodoDraft) (Todo, error) {
	var out Todo
	err := c.do(ctx, http.MethodPost, "/todos", draft, &out)
	return out, err
}

func (c *Client) UpdateTodo(ctx context.Context, id int64, patch TodoPatch) (Todo, error) {
	var out Todo
	err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/todos/%d", id), patch, &out)
	return out, err
}

func (c *Client) DeleteTodo(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/todos/%d", id), nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr struct {
			Error   string `json:"error"`
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		msg := apiErr.Error
		if msg == "" {
			msg = apiErr.Message
		}
		return &APIError{Status: resp.StatusCode, Message: msg}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
