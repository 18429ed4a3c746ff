package httpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// PathSource describes where a MediaMTX path gets its media from.
type PathSource struct {
	Type string `json:"type"`
}

// Path mirrors one item of the MediaMTX /v3/paths/list response. Readers is
// raw because we only ever count it.
type Path struct {
	Name          string            `json:"name"`
	Source        *PathSource       `json:"source"`
	Tracks        []string          `json:"tracks"`
	Ready         bool              `json:"ready"`
	ReadyTime     *string           `json:"readyTime"`
	BytesReceived int64             `json:"bytesReceived"`
	BytesSent     int64             `json:"bytesSent"`
	Readers       []json.RawMessage `json:"readers"`
}

type PathList struct {
	ItemCount int    `json:"itemCount"`
	Items     []Path `json:"items"`
}

// MediaMTXClient fetches path status from a MediaMTX control API, optionally
// with basic auth.
type MediaMTXClient struct {
	BaseURL    string
	Username   string
	Password   string
	HTTPClient *http.Client
}

func NewMediaMTXClient(baseURL, username, password string) *MediaMTXClient {
	return &MediaMTXClient{
		BaseURL:    baseURL,
		Username:   username,
		Password:   password,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *MediaMTXClient) PathsList(ctx context.Context) (*PathList, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/v3/paths/list", http.NoBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if c.Username != "" {
		req.SetBasicAuth(c.Username, c.Password)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("mediamtx returned status %d", resp.StatusCode)
	}

	var list PathList
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, fmt.Errorf("cannot decode mediamtx response: %w", err)
	}
	return &list, nil
}
