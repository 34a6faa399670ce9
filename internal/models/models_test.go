package models

import (
	"errors"
	"testing"
)

func TestDataset(t *testing.T) {
	t.Run("Validate", func(t *testing.T) {
		tt := []struct {
			name    string
			title   string
			choices []Choice
			wantErr bool
		}{
			{name: "no choices", choices: nil, wantErr: true},
			{name: "empty choices", choices: []Choice{}, wantErr: true},
			{name: "missing title", title: " ", choices: []Choice{{ID: "news"}}, wantErr: true},
			{
				name: "topics without frequency",
				choices: []Choice{
					{ID: "news", Title: "News"},
					{ID: "sports", Title: "Sports"},
				},
			},
			{
				name: "newsletters with frequency",
				choices: []Choice{
					{ID: "politics", Title: "Politics", Frequency: Daily},
					{ID: "travel", Title: "Travel", Frequency: Weekly},
				},
			},
			{name: "missing id", choices: []Choice{{Title: "Nameless"}}, wantErr: true},
			{
				name:    "duplicate id",
				choices: []Choice{{ID: "us"}, {ID: "us"}},
				wantErr: true,
			},
			{
				name:    "unknown frequency",
				choices: []Choice{{ID: "us", Frequency: "MONTHLY"}},
				wantErr: true,
			},
		}

		for _, tc := range tt {
			t.Run(tc.name, func(t *testing.T) {
				title := "t"
				if tc.title != "" {
					title = tc.title
				}
				d := Dataset{Title: title, Choices: tc.choices}
				err := d.Validate()
				if (err != nil) != tc.wantErr {
					t.Fatalf("Validate() error = %v, wantErr %v", err, tc.wantErr)
				}
				if tc.wantErr && !errors.Is(err, ErrInvalidDataset) {
					t.Errorf("expected ErrInvalidDataset, got %v", err)
				}
			})
		}
	})

	t.Run("Lookup", func(t *testing.T) {
		d := Dataset{Choices: []Choice{{ID: "arts", Title: "Arts & Culture"}}}

		c, ok := d.Lookup("arts")
		if !ok || c.Title != "Arts & Culture" {
			t.Errorf("expected to find arts, got %+v (ok=%v)", c, ok)
		}
		if _, ok := d.Lookup("missing"); ok {
			t.Error("expected lookup of unknown id to fail")
		}
	})

	t.Run("Clone", func(t *testing.T) {
		d := Dataset{Choices: []Choice{{ID: "arts", Title: "Arts"}}}
		c := d.Clone()
		c.Choices[0].Title = "changed"

		if d.Choices[0].Title != "Arts" {
			t.Error("clone should not alias the original choices")
		}
	})
}

func TestChoice(t *testing.T) {
	if (Choice{ID: "news"}).HasBadge() {
		t.Error("choice without frequency should have no badge")
	}
	if !(Choice{ID: "us", Frequency: Weekly}).HasBadge() {
		t.Error("choice with frequency should have a badge")
	}
}

func TestSubmission(t *testing.T) {
	t.Run("NewSubmission copies slices", func(t *testing.T) {
		topics := []string{"sports"}
		s := NewSubmission(1, topics, nil)
		topics[0] = "changed"

		if s.Topics()[0] != "sports" {
			t.Error("submission should own its topic slice")
		}
		if s.CreatedAt().IsZero() {
			t.Error("expected created_at to be set")
		}
	})

	t.Run("Validate", func(t *testing.T) {
		s := NewSubmission(1, []string{"sports"}, []string{"politics"})
		if err := s.Validate(); err == nil {
			t.Error("expected error for submission without id")
		}

		s.SetID("abc")
		if err := s.Validate(); err != nil {
			t.Errorf("expected valid submission, got %v", err)
		}

		blank := NewSubmission(1, []string{""}, nil)
		blank.SetID("abc")
		if err := blank.Validate(); err == nil {
			t.Error("expected error for blank topic id")
		}
	})

	t.Run("Empty", func(t *testing.T) {
		if !NewSubmission(1, nil, nil).Empty() {
			t.Error("expected empty submission")
		}
		if NewSubmission(1, nil, []string{"us"}).Empty() {
			t.Error("expected non-empty submission")
		}
	})
}
