package main

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/desertthunder/onboard/internal/formatter"
	"github.com/desertthunder/onboard/internal/models"
	"github.com/desertthunder/onboard/internal/services"
	"github.com/urfave/cli/v3"
)

// datasetsOutput is the JSON shape printed by data show.
type datasetsOutput struct {
	Source      string         `json:"source"`
	Fallback    bool           `json:"fallback"`
	Topics      models.Dataset `json:"topics"`
	Newsletters models.Dataset `json:"newsletters"`
}

// loadDatasets fetches both datasets, or returns the embedded ones when embedded is set.
func (r *Runner) loadDatasets(ctx context.Context, embedded bool) datasetsOutput {
	if embedded {
		return datasetsOutput{
			Source:      services.EmbeddedSource{}.Name(),
			Fallback:    true,
			Topics:      services.FallbackTopics(),
			Newsletters: services.FallbackNewsletters(),
		}
	}

	p := r.provider()
	topics, newsletters := p.Fetch(ctx)
	if err := topics.Err; err != nil {
		r.logger.Warn("failed to fetch topics", "error", err)
	}
	if err := newsletters.Err; err != nil {
		r.logger.Warn("failed to fetch newsletters", "error", err)
	}

	t, n, fellBack := services.Resolve(topics, newsletters)
	return datasetsOutput{
		Source:      r.dataSource().Name(),
		Fallback:    fellBack,
		Topics:      t,
		Newsletters: n,
	}
}

// DataShow prints both datasets as the wizard would see them.
func (r *Runner) DataShow(ctx context.Context, cmd *cli.Command) error {
	out := r.loadDatasets(ctx, cmd.Bool("fallback"))

	if cmd.Bool("json") {
		return r.writeJSON(out, cmd.Bool("pretty"))
	}

	if err := r.writePlain("Source: %s (fallback: %v)\n\n", out.Source, out.Fallback); err != nil {
		return err
	}
	if err := r.writePlain("%s\n", formatter.DatasetToText(out.Topics)); err != nil {
		return err
	}
	return r.writePlain("%s", formatter.DatasetToText(out.Newsletters))
}

// DataExport writes both datasets into a directory readable by services.DirSource.
func (r *Runner) DataExport(ctx context.Context, cmd *cli.Command) error {
	dir := cmd.String("dir")
	out := r.loadDatasets(ctx, cmd.Bool("fallback"))

	for name, d := range map[string]models.Dataset{
		services.TopicsName:      out.Topics,
		services.NewslettersName: out.Newsletters,
	} {
		body, err := json.MarshalIndent(d, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal %s: %w", name, err)
		}

		path := filepath.Join(dir, name+".json")
		if err := formatter.WriteExport(path, append(body, '\n')); err != nil {
			return err
		}
		r.logger.Info("dataset exported", "name", name, "path", path, "choices", len(d.Choices))
	}

	return r.writePlain("✓ Exported datasets to %s (fallback: %v)\n", dir, out.Fallback)
}
