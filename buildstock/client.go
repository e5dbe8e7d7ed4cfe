package buildstock

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const authPath = "/auth/api-token"

// Credentials is an optional username/password pair. The zero value puts the
// client into unauthenticated, read-only mode.
type Credentials struct {
	Username string
	Password string
}

// provided reports whether both halves of the pair were supplied. A half-set
// pair behaves exactly like no credentials at all.
func (c Credentials) provided() bool {
	return c.Username != "" && c.Password != ""
}

// Client wraps the building-stock data service API
type Client struct {
	baseURL    string
	authURL    string
	token      string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a new building-stock client against the given service
// address (scheme://host:port) and API base path.
//
// When credentials are provided the API token is fetched once, here; the
// token is held for the lifetime of the client and never refreshed. A
// rejected username/password pair fails construction. Without credentials
// the client works in read-only mode and privileged methods return
// ErrMissingCredentials.
func NewClient(address, basePath string, creds Credentials, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if address == "" {
		return nil, fmt.Errorf("data service address is required")
	}

	address = strings.TrimRight(address, "/")
	if !strings.HasPrefix(basePath, "/") {
		basePath = "/" + basePath
	}
	if !strings.HasSuffix(basePath, "/") {
		basePath += "/"
	}

	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	client := &Client{
		baseURL:    address + basePath,
		authURL:    address + authPath,
		httpClient: options.httpClient,
		logger:     logger,
	}

	token, err := client.authenticate(creds)
	if err != nil {
		return nil, err
	}
	client.token = token

	return client, nil
}

// Authenticated reports whether the client holds an API token.
func (c *Client) Authenticated() bool {
	return c.token != ""
}

// authenticate exchanges the credentials for an API token. Missing
// credentials are not an error: the empty token signals read-only mode.
func (c *Client) authenticate(creds Credentials) (string, error) {
	if !creds.provided() {
		c.logger.Info().Msg("Username and/or password not provided, proceeding in unauthenticated mode")
		return "", nil
	}

	form := url.Values{
		"username": {creds.Username},
		"password": {creds.Password},
	}

	resp, err := c.httpClient.PostForm(c.authURL, form)
	if err != nil {
		return "", &ServerError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &ServerError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if resp.StatusCode == http.StatusBadRequest {
			return "", fmt.Errorf("%w: status %d", ErrInvalidCredentials, resp.StatusCode)
		}
		return "", &ServerError{StatusCode: resp.StatusCode}
	}

	var payload struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", &DecodeError{Err: err}
	}

	c.logger.Debug().Msg("Retrieved API token")
	return payload.Token, nil
}

// getRaw performs a GET request and returns the raw response body.
// Privileged requests carry the token authorization header and fail fast
// with ErrMissingCredentials when no token is held.
func (c *Client) getRaw(ctx context.Context, path string, params url.Values, privileged bool) ([]byte, error) {
	if privileged && c.token == "" {
		return nil, ErrMissingCredentials
	}

	requestURL := c.baseURL + path
	if len(params) > 0 {
		requestURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if privileged {
		req.Header.Set("Authorization", "Token "+c.token)
	}

	c.logger.Debug().Str("url", requestURL).Msg("Making data service request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &ServerError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ServerError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, classifyStatus(resp.StatusCode, body)
	}

	return body, nil
}

// getJSON performs a GET request and decodes the response body into out.
func (c *Client) getJSON(ctx context.Context, path string, params url.Values, privileged bool, out any) error {
	body, err := c.getRaw(ctx, path, params, privileged)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &DecodeError{Err: err}
	}
	return nil
}

// postJSON submits a JSON payload to a privileged endpoint. A nil payload
// sends an empty body. The service returns no meaningful body on success, so
// callers treat a nil error as success.
func (c *Client) postJSON(ctx context.Context, path string, payload any) error {
	if c.token == "" {
		return ErrMissingCredentials
	}

	var data []byte
	if payload != nil {
		var err error
		data, err = json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode payload: %w", err)
		}
	}

	requestURL := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, requestURL, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Token "+c.token)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug().Str("url", requestURL).Int("bytes", len(data)).Msg("Posting to data service")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &ServerError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &ServerError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return classifyStatus(resp.StatusCode, body)
	}

	return nil
}

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	httpClient *http.Client
}

func defaultOptions() clientOptions {
	return clientOptions{
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Option configures a Client.
type Option func(*clientOptions)

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		o.httpClient.Timeout = timeout
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = httpClient
	}
}
