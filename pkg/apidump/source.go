package apidump

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"
)

// DefaultURL is where the upstream API dump is published.
const DefaultURL = "https://raw.githubusercontent.com/CloneTrooper1019/Roblox-Client-Tracker/roblox/API-Dump.json"

// DefaultTimeout bounds a fetch when the caller does not supply a client.
const DefaultTimeout = 30 * time.Second

// ErrFetchFailed is returned when the API dump could not be retrieved.
var ErrFetchFailed = errors.New("error when getting API dump")

// Source provides an API dump.
type Source interface {
	Load(ctx context.Context) (*Dump, error)
}

// HTTPSource fetches the dump over HTTP(S).
type HTTPSource struct {
	URL    string       // defaults to DefaultURL
	Client *http.Client // defaults to a client with DefaultTimeout
}

// Load implements Source.
func (s *HTTPSource) Load(ctx context.Context) (*Dump, error) {
	url := s.URL
	if url == "" {
		url = DefaultURL
	}
	client := s.Client
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: HTTP %s", ErrFetchFailed, resp.Status)
	}

	return Decode(resp.Body)
}

// FileSource reads the dump from a local file.
type FileSource struct {
	Path string
}

// Load implements Source.
func (s *FileSource) Load(_ context.Context) (*Dump, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	return Parse(data)
}

// NewSource returns an HTTPSource for empty or http(s) locations and a FileSource
// for anything else.
func NewSource(location string, timeout time.Duration) Source {
	if location == "" || strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		return &HTTPSource{URL: location, Client: &http.Client{Timeout: timeout}}
	}
	return &FileSource{Path: location}
}
