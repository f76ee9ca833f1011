package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ledgerline/sheetsnap/sheet"
)

const (
	defaultBaseURL        = "https://docs.google.com"
	defaultRequestTimeout = 60 * time.Second
	defaultUserAgent      = "sheetsnap/dev"
)

// Client fetches tab exports from the public spreadsheet export endpoint.
type Client struct {
	BaseURL    string
	UserAgent  string
	HTTPClient *http.Client
}

// New creates a client for the export endpoint. An empty baseURL selects the
// public endpoint.
func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		UserAgent:  defaultUserAgent,
		HTTPClient: &http.Client{Timeout: defaultRequestTimeout},
	}
}

// HTTPError is a non-success response from the export endpoint.
type HTTPError struct {
	StatusCode int
	Tab        string
	Body       string
}

func (e *HTTPError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("export endpoint returned HTTP %d for tab %q: %s", e.StatusCode, e.Tab, e.Body)
	}
	return fmt.Sprintf("export endpoint returned HTTP %d for tab %q", e.StatusCode, e.Tab)
}

// FetchTab downloads the raw export payload for one tab. The format picks the
// tqx output parameter (csv text or the setResponse-wrapped JSON). There are
// no retries: a build either sees the endpoint healthy or fails outright.
func (c *Client) FetchTab(ctx context.Context, spreadsheetID, tab string, format sheet.Format) ([]byte, error) {
	u, err := url.Parse(fmt.Sprintf("%s/spreadsheets/d/%s/gviz/tq", c.BaseURL, url.PathEscape(spreadsheetID)))
	if err != nil {
		return nil, fmt.Errorf("building export URL: %w", err)
	}
	q := u.Query()
	if format == sheet.FormatCSV {
		q.Set("tqx", "out:csv")
	} else {
		q.Set("tqx", "out:json")
	}
	q.Set("sheet", tab)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	userAgent := strings.TrimSpace(c.UserAgent)
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching tab %q: %w", tab, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading tab %q: %w", tab, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &HTTPError{StatusCode: resp.StatusCode, Tab: tab, Body: snippet(body)}
	}
	return body, nil
}

// snippet trims a response body down to a single diagnostic-sized line.
func snippet(body []byte) string {
	s := strings.TrimSpace(string(body))
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	if len(s) > 200 {
		s = s[:200] + "…"
	}
	return s
}
