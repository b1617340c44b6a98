// Package shopapi is the client for the remote storefront backend. Every page
// of the storefront reads already-shaped data from this API; the only write is
// order creation. Requests carry JSON and cache-busting headers and a
// 10-second client-side timeout.
package shopapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"mamahiam-storefront/internal/domain"
)

// DefaultTimeout is the client-side request timeout.
const DefaultTimeout = 10 * time.Second

type Client struct {
	baseURL string
	http    *http.Client
	logger  *log.Logger
	now     func() time.Time
}

func New(baseURL string, timeout time.Duration, logger *log.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
		now:     time.Now,
	}
}

func setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-cache, no-store, must-revalidate")
	req.Header.Set("Pragma", "no-cache")
	req.Header.Set("Expires", "0")
}

// getJSON performs a GET against the API and decodes the response body into
// out. A 404 maps to domain.ErrNotFound.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out interface{}) error {
	u := c.baseURL + path
	if query != nil {
		if enc := query.Encode(); enc != "" {
			u += "?" + enc
		}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("build request for %s: %w", path, err)
	}
	setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return domain.ErrNotFound
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("GET %s: unexpected status %d", path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

// cacheBust mirrors the browser client's habit of tagging selected reads with
// a timestamp query param so intermediaries never serve stale payloads.
func (c *Client) cacheBust(query url.Values) url.Values {
	if query == nil {
		query = url.Values{}
	}
	query.Set("_t", strconv.FormatInt(c.now().UnixMilli(), 10))
	return query
}

// looseFloat decodes a JSON number that the backend may deliver as a number,
// a quoted string, or null. Anything unparseable coerces to zero; the parse
// boundary is the one place that coercion happens.
type looseFloat float64

func (f *looseFloat) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	s = strings.Trim(s, `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*f = 0
		return nil
	}
	*f = looseFloat(v)
	return nil
}

// looseInt is looseFloat for identifiers and quantities.
type looseInt int64

func (i *looseInt) UnmarshalJSON(b []byte) error {
	var f looseFloat
	if err := f.UnmarshalJSON(b); err != nil {
		return err
	}
	*i = looseInt(f)
	return nil
}

// looseString accepts either a JSON string or a bare number token.
type looseString string

func (s *looseString) UnmarshalJSON(b []byte) error {
	token := strings.Trim(strings.TrimSpace(string(b)), `"`)
	if token == "null" {
		token = ""
	}
	*s = looseString(token)
	return nil
}
