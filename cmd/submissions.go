package main

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/desertthunder/onboard/internal/formatter"
	"github.com/desertthunder/onboard/internal/models"
	"github.com/desertthunder/onboard/internal/repositories"
	"github.com/desertthunder/onboard/internal/services"
	"github.com/desertthunder/onboard/internal/shared"
	"github.com/urfave/cli/v3"
)

// submissionOutput is the JSON shape of one recorded submission.
type submissionOutput struct {
	ID          string    `json:"id"`
	Sequence    int       `json:"sequence"`
	CreatedAt   time.Time `json:"created_at"`
	Topics      []string  `json:"topics"`
	Newsletters []string  `json:"newsletters"`
}

func toOutput(s *models.Submission) submissionOutput {
	return submissionOutput{
		ID:          s.ID(),
		Sequence:    s.Sequence(),
		CreatedAt:   s.CreatedAt(),
		Topics:      s.Topics(),
		Newsletters: s.Newsletters(),
	}
}

// withRepository opens the database for the duration of fn.
func (r *Runner) withRepository(fn func(repo *repositories.SubmissionRepository) error) error {
	db, err := r.openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	return fn(repositories.NewSubmissionRepository(db))
}

// SubmissionsList prints recent submissions.
func (r *Runner) SubmissionsList(ctx context.Context, cmd *cli.Command) error {
	limit := int(cmd.Int("limit"))

	return r.withRepository(func(repo *repositories.SubmissionRepository) error {
		submissions, err := repo.List(limit)
		if err != nil {
			return err
		}

		if cmd.Bool("json") {
			out := make([]submissionOutput, 0, len(submissions))
			for _, s := range submissions {
				out = append(out, toOutput(s))
			}
			return r.writeJSON(out, cmd.Bool("pretty"))
		}

		body := formatter.SubmissionsToText(submissions, services.FallbackTopics(), services.FallbackNewsletters())
		return r.writePlain("%s", body)
	})
}

// SubmissionsShow prints one submission as JSON.
func (r *Runner) SubmissionsShow(ctx context.Context, cmd *cli.Command) error {
	id := strings.TrimSpace(cmd.String("id"))
	if id == "" {
		return fmt.Errorf("%w: --id", shared.ErrMissingArgument)
	}

	return r.withRepository(func(repo *repositories.SubmissionRepository) error {
		s, err := repo.Get(id)
		if err != nil {
			return err
		}
		return r.writeJSON(toOutput(s), true)
	})
}

// SubmissionsExport renders every submission in the requested format to --output or stdout.
func (r *Runner) SubmissionsExport(ctx context.Context, cmd *cli.Command) error {
	format, err := formatter.ParseFormat(cmd.String("format"))
	if err != nil {
		return err
	}
	output := cmd.String("output")

	return r.withRepository(func(repo *repositories.SubmissionRepository) error {
		submissions, err := repo.List(0)
		if err != nil {
			return err
		}

		data, err := formatter.Render(format, submissions, services.FallbackTopics(), services.FallbackNewsletters())
		if err != nil {
			return err
		}

		if output == "" {
			return r.writePlain("%s", data)
		}
		if err := formatter.WriteExport(output, data); err != nil {
			return err
		}
		r.logger.Info("submissions exported", "format", format, "path", output, "count", len(submissions))
		return r.writePlain("✓ Exported %d submissions to %s\n", len(submissions), output)
	})
}

// SubmissionsStats prints how many submissions picked each choice, most popular first.
func (r *Runner) SubmissionsStats(ctx context.Context, cmd *cli.Command) error {
	return r.withRepository(func(repo *repositories.SubmissionRepository) error {
		for _, section := range []struct {
			name    string
			dataset models.Dataset
		}{
			{services.TopicsName, services.FallbackTopics()},
			{services.NewslettersName, services.FallbackNewsletters()},
		} {
			counts, err := repo.Count(section.name)
			if err != nil {
				return err
			}

			if err := r.writePlain("%s:\n", section.name); err != nil {
				return err
			}
			for _, row := range rankCounts(counts) {
				title := formatter.Titles([]string{row.id}, section.dataset)[0]
				if err := r.writePlain("  %-24s %d\n", title, row.n); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// SubmissionsDelete removes one submission.
func (r *Runner) SubmissionsDelete(ctx context.Context, cmd *cli.Command) error {
	id := strings.TrimSpace(cmd.String("id"))
	if id == "" {
		return fmt.Errorf("%w: --id", shared.ErrMissingArgument)
	}

	return r.withRepository(func(repo *repositories.SubmissionRepository) error {
		if err := repo.Delete(id); err != nil {
			return err
		}
		return r.writePlain("✓ Deleted submission %s\n", id)
	})
}

type choiceCount struct {
	id string
	n  int
}

// rankCounts orders counts by descending count, then id.
func rankCounts(counts map[string]int) []choiceCount {
	rows := make([]choiceCount, 0, len(counts))
	for id, n := range counts {
		rows = append(rows, choiceCount{id: id, n: n})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].n != rows[j].n {
			return rows[i].n > rows[j].n
		}
		return rows[i].id < rows[j].id
	})
	return rows
}
