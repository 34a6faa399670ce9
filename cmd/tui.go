package main

import (
	"context"
	"fmt"
	"io"

	"github.com/desertthunder/onboard/internal/shared"
	"github.com/desertthunder/onboard/internal/ui"
	"github.com/urfave/cli/v3"
)

// TUI launches the interactive terminal wizard.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger := shared.NewLogger(io.Discard)
	if path := r.config.Log.File; path != "" {
		l, err := shared.NewFileLogger(path)
		if err != nil {
			return fmt.Errorf("failed to create file logger: %w", err)
		}
		fileLogger = l
	}
	fileLogger.SetLevel(r.logger.GetLevel())
	r.SetLogger(fileLogger)

	opts, closeDB, err := r.wizardOptions()
	if err != nil {
		return err
	}
	defer closeDB()

	return ui.Run(ctx, ui.NewModel(ctx, r.provider(), opts...))
}
