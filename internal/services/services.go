// package services defines interface Source for loading wizard datasets
package services

import (
	"context"
	"net/http"

	"github.com/desertthunder/onboard/internal/models"
)

// Dataset names understood by every [Source].
const (
	TopicsName      = "topics"
	NewslettersName = "newsletters"
)

// Source supplies named datasets.
type Source interface {
	// Fetch returns the dataset stored under name.
	// Any transport, status, parse or validation problem is returned as an error.
	Fetch(ctx context.Context, name string) (*models.Dataset, error)

	// Name describes the source for logging (e.g. a URL or directory).
	Name() string
}

// NewSource picks the dataset source from configuration.
// A directory wins over a URL; with neither set only the embedded defaults are used.
func NewSource(baseURL, dir string, client *http.Client) Source {
	switch {
	case dir != "":
		return NewDirSource(dir)
	case baseURL != "":
		return NewHTTPSource(baseURL, client)
	default:
		return EmbeddedSource{}
	}
}
