// Package client is a Go client for the techportal auth and catalog
// services. List fetches are cached locally for instant re-display; the
// cache is advisory only and is flushed on every successful mutation, so
// correctness-sensitive decisions always reach the server.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/ttoweb/techportal/internal/models"
)

const (
	defaultTimeout = 10 * time.Second

	techCacheKey  = "technologies"
	eventCacheKey = "events"
)

// APIError carries the status code and envelope message of a failed call.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

type Client struct {
	httpClient  *http.Client
	authBase    string
	catalogBase string
	token       string
	cache       *cache.Cache
}

// New creates a client for the given auth and catalog base URLs
// (for example http://localhost:8080 and http://localhost:5001).
func New(authBase, catalogBase string) *Client {
	return &Client{
		httpClient:  &http.Client{Timeout: defaultTimeout},
		authBase:    authBase,
		catalogBase: catalogBase,
		// cleanup interval 0 runs no janitor goroutine; expired snapshots
		// are dropped lazily on Get
		cache: cache.New(5*time.Minute, 0),
	}
}

// SetToken installs a bearer token attached to subsequent requests.
func (c *Client) SetToken(token string) { c.token = token }

// Token returns the current bearer token, empty when not logged in.
func (c *Client) Token() string { return c.token }

// Authenticated reports whether a token is present. This is a presence
// check only; an expired token surfaces as a 403 on the next write.
func (c *Client) Authenticated() bool { return c.token != "" }

type envelope struct {
	Message string `json:"message"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

type loginResponse struct {
	Message  string `json:"message"`
	Success  bool   `json:"success"`
	JWTToken string `json:"jwtToken"`
	Email    string `json:"email"`
}

func (c *Client) do(ctx context.Context, method, url string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("perform request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var env envelope
		msg := resp.Status
		if err := json.NewDecoder(resp.Body).Decode(&env); err == nil && env.Message != "" {
			msg = env.Message
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

// Signup registers a new credential with the auth service.
func (c *Client) Signup(ctx context.Context, email, password string) error {
	body := map[string]string{"email": email, "password": password}
	return c.do(ctx, http.MethodPost, c.authBase+"/auth/signup", body, nil)
}

// Login exchanges credentials for a bearer token and installs it on the
// client. The token expires server-side five minutes after issuance.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	body := map[string]string{"email": email, "password": password}
	var resp loginResponse
	if err := c.do(ctx, http.MethodPost, c.authBase+"/auth/login", body, &resp); err != nil {
		return "", err
	}
	c.token = resp.JWTToken
	return resp.JWTToken, nil
}

// ListTechnologies returns the full technology list, served from the local
// snapshot when fresh.
func (c *Client) ListTechnologies(ctx context.Context) ([]models.Technology, error) {
	if v, ok := c.cache.Get(techCacheKey); ok {
		return v.([]models.Technology), nil
	}
	return c.RefreshTechnologies(ctx)
}

// RefreshTechnologies always fetches from the server and replaces the
// cached snapshot.
func (c *Client) RefreshTechnologies(ctx context.Context) ([]models.Technology, error) {
	var out []models.Technology
	if err := c.do(ctx, http.MethodGet, c.catalogBase+"/technologies", nil, &out); err != nil {
		return nil, err
	}
	c.cache.Set(techCacheKey, out, cache.DefaultExpiration)
	return out, nil
}

func (c *Client) GetTechnology(ctx context.Context, id string) (*models.Technology, error) {
	var out models.Technology
	if err := c.do(ctx, http.MethodGet, c.catalogBase+"/technologies/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateTechnology submits a structured payload (explicit arrays and
// related-link objects) and invalidates the cached list on success.
func (c *Client) CreateTechnology(ctx context.Context, payload any) (*models.Technology, error) {
	var out models.Technology
	if err := c.do(ctx, http.MethodPost, c.catalogBase+"/technologies", payload, &out); err != nil {
		return nil, err
	}
	c.cache.Flush()
	return &out, nil
}

// UpdateTechnology sends a partial merge; fields absent from payload keep
// their stored values.
func (c *Client) UpdateTechnology(ctx context.Context, id string, payload any) (*models.Technology, error) {
	var out models.Technology
	if err := c.do(ctx, http.MethodPut, c.catalogBase+"/technologies/"+id, payload, &out); err != nil {
		return nil, err
	}
	c.cache.Flush()
	return &out, nil
}

func (c *Client) DeleteTechnology(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, c.catalogBase+"/technologies/"+id, nil, nil); err != nil {
		return err
	}
	c.cache.Flush()
	return nil
}

// ListEvents returns the full event list, served from the local snapshot
// when fresh.
func (c *Client) ListEvents(ctx context.Context) ([]models.Event, error) {
	if v, ok := c.cache.Get(eventCacheKey); ok {
		return v.([]models.Event), nil
	}
	return c.RefreshEvents(ctx)
}

// RefreshEvents always fetches from the server and replaces the cached
// snapshot.
func (c *Client) RefreshEvents(ctx context.Context) ([]models.Event, error) {
	var out []models.Event
	if err := c.do(ctx, http.MethodGet, c.catalogBase+"/events", nil, &out); err != nil {
		return nil, err
	}
	c.cache.Set(eventCacheKey, out, cache.DefaultExpiration)
	return out, nil
}

func (c *Client) GetEvent(ctx context.Context, id int64) (*models.Event, error) {
	var out models.Event
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("%s/events/%d", c.catalogBase, id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateEvent submits a new event; the server assigns the id regardless of
// anything present in payload.
func (c *Client) CreateEvent(ctx context.Context, payload any) (*models.Event, error) {
	var out models.Event
	if err := c.do(ctx, http.MethodPost, c.catalogBase+"/events", payload, &out); err != nil {
		return nil, err
	}
	c.cache.Flush()
	return &out, nil
}

func (c *Client) UpdateEvent(ctx context.Context, id int64, payload any) (*models.Event, error) {
	var out models.Event
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("%s/events/%d", c.catalogBase, id), payload, &out); err != nil {
		return nil, err
	}
	c.cache.Flush()
	return &out, nil
}

func (c *Client) DeleteEvent(ctx context.Context, id int64) error {
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("%s/events/%d", c.catalogBase, id), nil, nil); err != nil {
		return err
	}
	c.cache.Flush()
	return nil
}
