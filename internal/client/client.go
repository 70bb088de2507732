// Package client is the HTTP client for the trivia API, used by the play
// terminal. Every call carries a bounded timeout and network or 5xx
// failures are retried once before surfacing as transient errors.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"jpereira7/Trivia-Night/internal/api/models"
	"jpereira7/Trivia-Night/internal/api/response"
	"jpereira7/Trivia-Night/internal/game"
)

// ErrTransient marks failures the caller may simply retry later: network
// errors and server-side 5xx responses.
var ErrTransient = errors.New("transient failure")

// Client talks to one trivia server, remembering the bearer token after
// login.
type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

// New creates a client for the server at baseURL. The timeout bounds every
// request end to end.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// SetToken installs the bearer token used on authenticated calls.
func (c *Client) SetToken(token string) {
	c.token = token
}

// do sends a request, retrying once when the failure looks transient.
func (c *Client) do(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request: %w", err)
		}
	}

	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		var reader io.Reader
		if payload != nil {
			reader = bytes.NewReader(payload)
		}
		req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
		if err != nil {
			return nil, err
		}
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		if c.token != "" {
			req.Header.Set("Authorization", "Bearer "+c.token)
		}

		resp, err := c.http.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%w: %v", ErrTransient, err)
			continue
		}
		if resp.StatusCode >= 500 {
			resp.Body.Close()
			lastErr = fmt.Errorf("%w: server returned %d", ErrTransient, resp.StatusCode)
			continue
		}
		return resp, nil
	}
	return nil, lastErr
}

// decode reads the envelope and fails with a response.Error on non-2xx.
func decode(resp *http.Response, out any) error {
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var env response.Envelope
		if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
			return response.NewError(resp.StatusCode, "unexpected response")
		}
		return response.NewError(resp.StatusCode, env.Message)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// Register creates a new account.
func (c *Client) Register(ctx context.Context, username, password string) error {
	resp, err := c.do(ctx, http.MethodPost, "/api/register",
		models.RegisterRequest{Username: username, Password: password})
	if err != nil {
		return err
	}
	return decode(resp, nil)
}

// Login authenticates and installs the returned token on the client.
func (c *Client) Login(ctx context.Context, username, password string) (*models.LoginResponse, error) {
	resp, err := c.do(ctx, http.MethodPost, "/api/login",
		models.LoginRequest{Username: username, Password: password})
	if err != nil {
		return nil, err
	}

	var body struct {
		response.Envelope
		Token string            `json:"token"`
		User  models.PublicUser `json:"user"`
	}
	if err := decode(resp, &body); err != nil {
		return nil, err
	}
	c.token = body.Token
	return &models.LoginResponse{Token: body.Token, User: body.User}, nil
}

// CreateGame saves a new game built from authored categories.
func (c *Client) CreateGame(ctx context.Context, name string, categories []game.Category) (*game.Game, error) {
	resp, err := c.do(ctx, http.MethodPost, "/api/games",
		models.CreateGameRequest{Name: name, Categories: categories})
	if err != nil {
		return nil, err
	}

	var body struct {
		response.Envelope
		Game *game.Game `json:"game"`
	}
	if err := decode(resp, &body); err != nil {
		return nil, err
	}
	return body.Game, nil
}

// ListGames returns the caller's games, most recent first.
func (c *Client) ListGames(ctx context.Context) ([]game.Game, error) {
	resp, err := c.do(ctx, http.MethodGet, "/api/games", nil)
	if err != nil {
		return nil, err
	}

	var body struct {
		response.Envelope
		Games []game.Game `json:"games"`
	}
	if err := decode(resp, &body); err != nil {
		return nil, err
	}
	return body.Games, nil
}

// DeleteGame removes a game by id. Satisfies play.GameAPI.
func (c *Client) DeleteGame(ctx context.Context, gameID string) error {
	resp, err := c.do(ctx, http.MethodDelete, "/api/games/"+gameID, nil)
	if err != nil {
		return err
	}
	return decode(resp, nil)
}
