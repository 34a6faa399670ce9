package formatter

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/desertthunder/onboard/internal/models"
	"github.com/desertthunder/onboard/internal/shared"
	th "github.com/desertthunder/onboard/internal/testing"
)

func fixtures() ([]*models.Submission, models.Dataset, models.Dataset) {
	topics := models.Dataset{Title: "Topics", Choices: []models.Choice{
		{ID: "sports", Title: "Sports"},
		{ID: "arts", Title: "Arts & Culture"},
	}}
	newsletters := models.Dataset{Title: "Newsletters", Choices: []models.Choice{
		{ID: "politics", Title: "Politics", Frequency: models.Daily},
	}}

	first := models.NewSubmission(1, []string{"sports", "arts"}, []string{"politics"})
	first.SetID("a")
	first.SetCreatedAt(time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC))

	second := models.NewSubmission(2, nil, nil)
	second.SetID("b")
	second.SetCreatedAt(time.Date(2024, 1, 3, 3, 4, 5, 0, time.UTC))

	return []*models.Submission{first, second}, topics, newsletters
}

func TestExporters(t *testing.T) {
	t.Run("SubmissionsToCSV", func(t *testing.T) {
		subs, _, _ := fixtures()
		data, err := SubmissionsToCSV(subs)
		if err != nil {
			t.Fatalf("SubmissionsToCSV failed: %v", err)
		}

		output := string(data)
		if !strings.Contains(output, "ID,Sequence,CreatedAt,Topics,Newsletters") {
			t.Errorf("CSV missing headers, got: %s", output)
		}
		if !strings.Contains(output, "a,1,2024-01-02T03:04:05Z,sports;arts,politics") {
			t.Errorf("CSV missing first row, got: %s", output)
		}
		if !strings.Contains(output, "b,2,2024-01-03T03:04:05Z,,") {
			t.Errorf("CSV missing empty row, got: %s", output)
		}
	})

	t.Run("SubmissionsToMarkdown", func(t *testing.T) {
		subs, topics, newsletters := fixtures()
		output := string(SubmissionsToMarkdown(subs, topics, newsletters))

		for _, want := range []string{"# Submissions", "**Total**: 2", "## #1", "- Sports", "- Arts & Culture", "- Politics", "_none_"} {
			if !strings.Contains(output, want) {
				t.Errorf("Markdown missing %q, got: %s", want, output)
			}
		}
	})

	t.Run("SubmissionsToText", func(t *testing.T) {
		subs, topics, newsletters := fixtures()
		output := string(SubmissionsToText(subs, topics, newsletters))

		if !strings.Contains(output, "topics: Sports, Arts & Culture  newsletters: Politics") {
			t.Errorf("Text missing first line, got: %s", output)
		}
		if !strings.Contains(output, "topics: none  newsletters: none") {
			t.Errorf("Text missing empty line, got: %s", output)
		}
	})

	t.Run("DatasetToText", func(t *testing.T) {
		_, _, newsletters := fixtures()
		output := string(DatasetToText(newsletters))
		if !strings.Contains(output, "1. Politics (politics) [DAILY]") {
			t.Errorf("unexpected text: %s", output)
		}
	})

	t.Run("Titles Falls Back To Id", func(t *testing.T) {
		_, topics, _ := fixtures()
		got := Titles([]string{"sports", "gone"}, topics)
		if got[0] != "Sports" || got[1] != "gone" {
			t.Errorf("unexpected titles %v", got)
		}
	})
}

func TestFormats(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"csv", CSV, false},
		{"MD", Markdown, false},
		{"markdown", Markdown, false},
		{"", Text, false},
		{"text", Text, false},
		{"xml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				if !errors.Is(err, shared.ErrInvalidArgument) {
					t.Errorf("expected ErrInvalidArgument, got %v", err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("expected %s, got %s (%v)", tt.want, got, err)
			}
		})
	}

	t.Run("Render", func(t *testing.T) {
		subs, topics, newsletters := fixtures()
		for _, f := range []Format{CSV, Markdown, Text} {
			data, err := Render(f, subs, topics, newsletters)
			if err != nil || len(data) == 0 {
				t.Errorf("%s: expected output, got %v", f, err)
			}
		}
		if _, err := Render("xml", subs, topics, newsletters); err == nil {
			t.Error("expected error for unknown format")
		}
	})
}

func TestWriteExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "subs.csv")
	if err := WriteExport(path, []byte("ID\n")); err != nil {
		t.Fatalf("WriteExport failed: %v", err)
	}
	th.AssertFileExists(t, path)
	if got := th.MustReadFile(t, path); got != "ID\n" {
		t.Errorf("unexpected content %q", got)
	}
}
