package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// DefaultTimeout is the default HTTP client timeout.
const DefaultTimeout = 30 * time.Second

// Remote loads rows from a JSON endpoint. The body may be an array of
// strings, an array of objects, or an object wrapping either under
// "results".
type Remote struct {
	httpClient *http.Client
	url        string
	token      string

	// TitleField and IDField name the object keys read from each row.
	TitleField string
	IDField    string
	// DetailField is optional.
	DetailField string
}

// NewRemote creates a remote source for url. An empty token sends no
// Authorization header.
func NewRemote(url, token string) *Remote {
	return &Remote{
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		url:        url,
		token:      token,
		TitleField: "name",
		IDField:    "id",
	}
}

// SetHTTPClient allows overriding the default HTTP client (useful for testing).
func (r *Remote) SetHTTPClient(httpClient *http.Client) {
	r.httpClient = httpClient
}

// URL returns the endpoint.
func (r *Remote) URL() string {
	return r.url
}

// Load implements Loader.
func (r *Remote) Load(ctx context.Context) ([]Row, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if r.token != "" {
		req.Header.Set("Authorization", "Bearer "+r.token)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, &HTTPError{
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(body)),
		}
	}

	rows, err := r.decode(body)
	if err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return rows, nil
}

func (r *Remote) decode(body []byte) ([]Row, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(body, &items); err != nil {
		var page struct {
			Results []json.RawMessage `json:"results"`
		}
		if err := json.Unmarshal(body, &page); err != nil {
			return nil, err
		}
		items = page.Results
	}

	rows := make([]Row, 0, len(items))
	for i, item := range items {
		var title string
		if err := json.Unmarshal(item, &title); err == nil {
			rows = append(rows, Row{ID: title, Title: title})
			continue
		}

		var obj map[string]any
		if err := json.Unmarshal(item, &obj); err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		row := Row{
			ID:     field(obj, r.IDField),
			Title:  field(obj, r.TitleField),
			Detail: field(obj, r.DetailField),
		}
		if row.ID == "" {
			row.ID = row.Title
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func field(obj map[string]any, key string) string {
	if key == "" {
		return ""
	}
	switch v := obj[key].(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}
