package services

import (
	"context"
	"errors"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/onboard/internal/models"
	"github.com/desertthunder/onboard/internal/shared"
	"golang.org/x/sync/errgroup"
)

// FetchResult is the outcome of fetching one dataset: exactly one of Dataset or Err is set.
type FetchResult struct {
	Dataset *models.Dataset
	Err     error
}

// Ok reports whether the fetch produced a dataset.
func (r FetchResult) Ok() bool { return r.Err == nil && r.Dataset != nil }

// Resolve combines both fetch outcomes into the datasets the wizard will use.
//
// If either result failed, both datasets are replaced by the embedded defaults and fellBack is true.
func Resolve(topics, newsletters FetchResult) (t, n models.Dataset, fellBack bool) {
	if !topics.Ok() || !newsletters.Ok() {
		return FallbackTopics(), FallbackNewsletters(), true
	}
	return topics.Dataset.Clone(), newsletters.Dataset.Clone(), false
}

// Provider loads both datasets from a [Source], falling back to the embedded defaults.
type Provider struct {
	source Source
	logger *log.Logger
}

// NewProvider creates a [Provider]. A nil source means the embedded defaults only.
func NewProvider(source Source, logger *log.Logger) *Provider {
	if source == nil {
		source = EmbeddedSource{}
	}
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &Provider{source: source, logger: logger}
}

// Fetch requests both datasets concurrently and waits for both outcomes.
func (p *Provider) Fetch(ctx context.Context) (topics, newsletters FetchResult) {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		topics = fetchResult(gctx, p.source, TopicsName)
		return topics.Err
	})
	g.Go(func() error {
		newsletters = fetchResult(gctx, p.source, NewslettersName)
		return newsletters.Err
	})

	_ = g.Wait()
	return topics, newsletters
}

// Load never fails: see [Resolve].
func (p *Provider) Load(ctx context.Context) (topics, newsletters models.Dataset) {
	tr, nr := p.Fetch(ctx)

	topics, newsletters, fellBack := Resolve(tr, nr)
	if fellBack {
		p.logger.Debug("using embedded datasets",
			"source", p.source.Name(), "error", errors.Join(tr.Err, nr.Err))
	} else {
		p.logger.Debug("loaded datasets", "source", p.source.Name(),
			"topics", len(topics.Choices), "newsletters", len(newsletters.Choices))
	}
	return topics, newsletters
}

func fetchResult(ctx context.Context, source Source, name string) FetchResult {
	d, err := source.Fetch(ctx, name)
	if err == nil && d == nil {
		err = shared.ErrFetchFailed
	}
	return FetchResult{Dataset: d, Err: err}
}
