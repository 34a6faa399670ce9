package services

import (
	"context"
	"embed"
	"fmt"

	"github.com/desertthunder/onboard/internal/models"
	"github.com/desertthunder/onboard/internal/shared"
)

//go:embed data/*.json
var fallbackFiles embed.FS

var (
	fallbackTopics      = mustDecodeEmbedded(TopicsName)
	fallbackNewsletters = mustDecodeEmbedded(NewslettersName)
)

var _ Source = EmbeddedSource{}

func mustDecodeEmbedded(name string) models.Dataset {
	body, err := fallbackFiles.ReadFile("data/" + name + ".json")
	if err != nil {
		panic(fmt.Sprintf("failed to read embedded %s dataset: %v", name, err))
	}

	dataset, err := decodeDataset(body)
	if err != nil {
		panic(fmt.Sprintf("failed to parse embedded %s dataset: %v", name, err))
	}
	return *dataset
}

// FallbackTopics returns a copy of the compiled-in topics dataset.
func FallbackTopics() models.Dataset { return fallbackTopics.Clone() }

// FallbackNewsletters returns a copy of the compiled-in newsletters dataset.
func FallbackNewsletters() models.Dataset { return fallbackNewsletters.Clone() }

// FallbackJSON returns the raw embedded document for name.
func FallbackJSON(name string) ([]byte, error) {
	switch name {
	case TopicsName, NewslettersName:
		return fallbackFiles.ReadFile("data/" + name + ".json")
	default:
		return nil, fmt.Errorf("%w: unknown dataset %q", shared.ErrNotFound, name)
	}
}

// EmbeddedSource serves the compiled-in datasets. It never touches the network.
type EmbeddedSource struct{}

func (EmbeddedSource) Name() string { return "embedded" }

func (EmbeddedSource) Fetch(_ context.Context, name string) (*models.Dataset, error) {
	var d models.Dataset
	switch name {
	case TopicsName:
		d = FallbackTopics()
	case NewslettersName:
		d = FallbackNewsletters()
	default:
		return nil, fmt.Errorf("%w: unknown dataset %q", shared.ErrNotFound, name)
	}
	return &d, nil
}
