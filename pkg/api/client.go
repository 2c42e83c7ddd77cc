// Package api implements the HTTP client for the GameSquad REST backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"github.com/gamesquad/desktop/pkg/model"
)

// Client talks to the GameSquad backend. All methods issue exactly one
// request with no retries; a non-2xx response is returned as *Error.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// New creates a client for the given base URL (e.g. "http://localhost:5000/api").
// No request timeout is configured; callers control cancellation via context.
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpc:   &http.Client{},
	}
}

// LoginResponse is the backend's reply to a successful login.
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Message  string `json:"message"`
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	body := map[string]string{"email": email, "password": password}
	var resp LoginResponse
	if err := c.do(ctx, http.MethodPost, "/login", "", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register creates a new account. The backend replies with a confirmation
// message the client does not use; only the status matters here.
func (c *Client) Register(ctx context.Context, username, email, password string) error {
	body := map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	}
	var resp struct {
		Message string `json:"message"`
	}
	return c.do(ctx, http.MethodPost, "/register", "", body, &resp)
}

// Rooms fetches all rooms for a game, in the order the backend returns them.
func (c *Client) Rooms(ctx context.Context, game string) ([]model.Room, error) {
	var rooms []model.Room
	path := "/rooms?game=" + url.QueryEscape(game)
	if err := c.do(ctx, http.MethodGet, path, "", nil, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

// CreateRoomRequest is the payload for opening a new room.
type CreateRoomRequest struct {
	Title         string `json:"title"`
	Game          string `json:"game"`
	PlayersNeeded int    `json:"playersNeeded"`
	Description   string `json:"description"`
}

// CreateRoom opens a new room on behalf of the token's user. The backend
// validates the payload (including playersNeeded) and returns the created room.
func (c *Client) CreateRoom(ctx context.Context, token string, req CreateRoomRequest) (*model.Room, error) {
	var room model.Room
	if err := c.do(ctx, http.MethodPost, "/rooms", token, req, &room); err != nil {
		return nil, err
	}
	return &room, nil
}

// do performs one request/response round trip. Request bodies are JSON; the
// token, when non-empty, is sent as a bearer credential. Each request gets a
// correlation id so log lines for one action can be tied together.
func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	var payload *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("api: encode %s %s request: %w", method, path, err)
		}
		payload = bytes.NewReader(data)
	} else {
		payload = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return fmt.Errorf("api: build %s %s request: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rid := uuid.NewString()
	slog.Debug("api request", "id", rid, "method", method, "path", path)

	resp, err := c.httpc.Do(req)
	if err != nil {
		slog.Debug("api transport failure", "id", rid, "err", err)
		return fmt.Errorf("api: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close() //nolint:errcheck // read-side close

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var backend struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&backend)
		slog.Debug("api error response", "id", rid, "status", resp.StatusCode, "error", backend.Error)
		return &Error{Status: resp.StatusCode, Message: backend.Error}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("api: decode %s %s response: %w", method, path, err)
		}
	}
	slog.Debug("api response", "id", rid, "status", resp.StatusCode)
	return nil
}
