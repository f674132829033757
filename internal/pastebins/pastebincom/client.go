// Package pastebincom implements the pastebin.com paste API.
//
// Register at https://pastebin.com/ and visit https://pastebin.com/doc_api
// to obtain the developer key passed to New.
package pastebincom

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/2kybe3/kcli/internal/pastebins"
)

// DefaultEndpoint is the paste creation endpoint of the public API.
const DefaultEndpoint = "https://pastebin.com/api/api_post.php"

// Identity constants. Changing them breaks existing configurations.
const (
	ID          = "pastebin"
	DisplayName = "Pastebin"
	Domain      = "pastebin.com"
)

// errorPrefix marks an application-level error in a 200 response body.
const errorPrefix = "Bad API request"

// Meta is the identity of every pastebin.com client.
var Meta = pastebins.Meta{ID: ID, DisplayName: DisplayName, Domain: Domain}

// Client uploads pastes to pastebin.com.
type Client struct {
	apiKey     string
	endpoint   string
	httpClient *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithEndpoint overrides the API endpoint (tests, mirrors).
func WithEndpoint(endpoint string) Option {
	return func(c *Client) { c.endpoint = endpoint }
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// New creates a client. apiKey is stored verbatim.
func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:     apiKey,
		endpoint:   DefaultEndpoint,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Meta implements pastebins.PasteBin.
func (c *Client) Meta() pastebins.Meta { return Meta }

// Upload creates a paste and returns its URL.
//
// Any body that does not start with "Bad API request" is returned as the URL
// without further validation.
func (c *Client) Upload(ctx context.Context, content string) (string, error) {
	form := url.Values{
		"api_dev_key":    {c.apiKey},
		"api_option":     {"paste"},
		"api_paste_code": {content},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", &pastebins.TransportError{Service: Meta, Phase: pastebins.PhaseSend, Err: err}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &pastebins.TransportError{Service: Meta, Phase: pastebins.PhaseSend, Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &pastebins.TransportError{Service: Meta, Phase: pastebins.PhaseRead, Err: err}
	}
	if !utf8.Valid(body) {
		return "", &pastebins.TransportError{
			Service: Meta,
			Phase:   pastebins.PhaseRead,
			Err:     fmt.Errorf("response body is not valid UTF-8 text (%d bytes)", len(body)),
		}
	}

	text := string(body)
	if strings.HasPrefix(text, errorPrefix) {
		return "", &pastebins.APIError{Service: Meta, Message: text}
	}

	return text, nil
}
