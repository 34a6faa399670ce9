// package formatter renders datasets and recorded submissions as CSV, Markdown, or plain text
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/desertthunder/onboard/internal/models"
	"github.com/desertthunder/onboard/internal/shared"
)

// Format names an output format accepted by the CLI.
type Format string

const (
	CSV      Format = "csv"
	Markdown Format = "md"
	Text     Format = "txt"
)

// ParseFormat accepts csv, md/markdown and txt/text.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "csv":
		return CSV, nil
	case "md", "markdown":
		return Markdown, nil
	case "", "txt", "text":
		return Text, nil
	default:
		return "", fmt.Errorf("%w: unknown format %q", shared.ErrInvalidArgument, s)
	}
}

// Titles resolves choice ids against a dataset, falling back to the raw id.
func Titles(ids []string, d models.Dataset) []string {
	titles := make([]string, 0, len(ids))
	for _, id := range ids {
		if c, ok := d.Lookup(id); ok {
			titles = append(titles, c.Title)
		} else {
			titles = append(titles, id)
		}
	}
	return titles
}

// SubmissionsToCSV writes one row per submission with columns: ID, Sequence, CreatedAt, Topics, Newsletters.
//
// Choice ids within a cell are separated by ";".
func SubmissionsToCSV(submissions []*models.Submission) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "Sequence", "CreatedAt", "Topics", "Newsletters"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, s := range submissions {
		record := []string{
			s.ID(),
			strconv.Itoa(s.Sequence()),
			s.CreatedAt().UTC().Format(time.RFC3339),
			strings.Join(s.Topics(), ";"),
			strings.Join(s.Newsletters(), ";"),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// SubmissionsToMarkdown renders each submission as a section listing chosen titles.
func SubmissionsToMarkdown(submissions []*models.Submission, topics, newsletters models.Dataset) []byte {
	var buf bytes.Buffer

	buf.WriteString("# Submissions\n\n")
	buf.WriteString(fmt.Sprintf("**Total**: %d\n", len(submissions)))

	for _, s := range submissions {
		buf.WriteString(fmt.Sprintf("\n## #%d (%s)\n\n", s.Sequence(), s.CreatedAt().UTC().Format(time.RFC3339)))
		writeMarkdownList(&buf, "Topics", Titles(s.Topics(), topics))
		writeMarkdownList(&buf, "Newsletters", Titles(s.Newsletters(), newsletters))
	}

	return buf.Bytes()
}

func writeMarkdownList(buf *bytes.Buffer, label string, items []string) {
	buf.WriteString(fmt.Sprintf("**%s**:", label))
	if len(items) == 0 {
		buf.WriteString(" _none_\n")
		return
	}
	buf.WriteString("\n\n")
	for _, item := range items {
		buf.WriteString(fmt.Sprintf("- %s\n", item))
	}
	buf.WriteString("\n")
}

// SubmissionsToText renders one line per submission.
func SubmissionsToText(submissions []*models.Submission, topics, newsletters models.Dataset) []byte {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Submissions: %d\n\n", len(submissions)))
	for _, s := range submissions {
		buf.WriteString(fmt.Sprintf("%d. %s  topics: %s  newsletters: %s\n",
			s.Sequence(),
			s.CreatedAt().UTC().Format(time.RFC3339),
			joinOrNone(Titles(s.Topics(), topics)),
			joinOrNone(Titles(s.Newsletters(), newsletters)),
		))
	}

	return buf.Bytes()
}

// DatasetToText lists a dataset's choices, one per line, with badges.
func DatasetToText(d models.Dataset) []byte {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("%s\n", d.Title))
	if d.Subtitle != "" {
		buf.WriteString(fmt.Sprintf("%s\n", d.Subtitle))
	}
	buf.WriteString(fmt.Sprintf("Choices: %d\n\n", len(d.Choices)))

	for i, c := range d.Choices {
		line := fmt.Sprintf("%d. %s (%s)", i+1, c.Title, c.ID)
		if c.HasBadge() {
			line += " [" + string(c.Frequency) + "]"
		}
		buf.WriteString(line + "\n")
	}

	return buf.Bytes()
}

// Render formats submissions as f.
func Render(f Format, submissions []*models.Submission, topics, newsletters models.Dataset) ([]byte, error) {
	switch f {
	case CSV:
		return SubmissionsToCSV(submissions)
	case Markdown:
		return SubmissionsToMarkdown(submissions, topics, newsletters), nil
	case Text:
		return SubmissionsToText(submissions, topics, newsletters), nil
	default:
		return nil, fmt.Errorf("%w: unknown format %q", shared.ErrInvalidArgument, f)
	}
}

// WriteExport writes data to path, creating parent directories as needed.
func WriteExport(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}
	return nil
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, ", ")
}
