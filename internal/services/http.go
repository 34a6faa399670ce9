package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/desertthunder/onboard/internal/models"
	"github.com/desertthunder/onboard/internal/shared"
)

var (
	_ Source = (*HTTPSource)(nil)
	_ Source = (*DirSource)(nil)
)

// HTTPSource fetches datasets as JSON documents from a remote server.
type HTTPSource struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPSource creates a source that requests <baseURL>/<name>.json.
func NewHTTPSource(baseURL string, client *http.Client) *HTTPSource {
	if baseURL == "" {
		baseURL = "http://localhost:3000/data"
	}
	if client == nil {
		client = http.DefaultClient
	}

	return &HTTPSource{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: client,
	}
}

func (s *HTTPSource) Name() string { return s.baseURL }

// Fetch performs a GET request for the named dataset and decodes the response.
func (s *HTTPSource) Fetch(ctx context.Context, name string) (*models.Dataset, error) {
	fullURL := s.baseURL + "/" + name + ".json"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %w", shared.ErrFetchFailed, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: request failed: %w", shared.ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s returned %d", shared.ErrBadStatus, fullURL, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %w", shared.ErrFetchFailed, err)
	}

	return decodeDataset(body)
}

// DirSource reads datasets from JSON files in a local directory.
type DirSource struct {
	dir string
}

// NewDirSource creates a source that reads <dir>/<name>.json.
func NewDirSource(dir string) *DirSource {
	return &DirSource{dir: dir}
}

func (s *DirSource) Name() string { return s.dir }

// Fetch reads and decodes the named dataset file.
func (s *DirSource) Fetch(ctx context.Context, name string) (*models.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", shared.ErrFetchFailed, err)
	}

	body, err := os.ReadFile(filepath.Join(s.dir, name+".json"))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read file: %w", shared.ErrFetchFailed, err)
	}

	return decodeDataset(body)
}

// decodeDataset parses and validates the wire shape shared by every source.
func decodeDataset(body []byte) (*models.Dataset, error) {
	var dataset models.Dataset
	if err := json.Unmarshal(body, &dataset); err != nil {
		return nil, fmt.Errorf("%w: %w", shared.ErrParseFailed, err)
	}

	if err := dataset.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", shared.ErrParseFailed, err)
	}

	return &dataset, nil
}
