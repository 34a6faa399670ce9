package models

import (
	"errors"
	"fmt"
	"strings"
)

// Frequency is the delivery cadence advertised on a newsletter card.
type Frequency string

const (
	Daily  Frequency = "DAILY"
	Weekly Frequency = "WEEKLY"
)

var ErrInvalidDataset = errors.New("invalid dataset")

// Valid reports whether f is empty (no badge) or a known cadence.
func (f Frequency) Valid() bool {
	switch f {
	case "", Daily, Weekly:
		return true
	default:
		return false
	}
}

// Choice is one selectable item (a topic or a newsletter).
type Choice struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Frequency   Frequency `json:"frequency,omitempty"`
}

// HasBadge reports whether the card for this choice shows a frequency badge.
func (c Choice) HasBadge() bool { return c.Frequency != "" }

// Dataset is the titled list of choices for one selection step.
type Dataset struct {
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle"`
	Choices  []Choice `json:"choices"`
}

// Validate checks that the dataset has a title and at least one choice, and that every choice has a unique,
// non-empty id and a known frequency.
func (d *Dataset) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return fmt.Errorf("%w: missing title", ErrInvalidDataset)
	}
	if len(d.Choices) == 0 {
		return fmt.Errorf("%w: no choices", ErrInvalidDataset)
	}

	seen := make(map[string]struct{}, len(d.Choices))
	for i, c := range d.Choices {
		if c.ID == "" {
			return fmt.Errorf("%w: choice %d has no id", ErrInvalidDataset, i)
		}
		if _, dup := seen[c.ID]; dup {
			return fmt.Errorf("%w: duplicate choice id %q", ErrInvalidDataset, c.ID)
		}
		if !c.Frequency.Valid() {
			return fmt.Errorf("%w: choice %q has unknown frequency %q", ErrInvalidDataset, c.ID, c.Frequency)
		}
		seen[c.ID] = struct{}{}
	}
	return nil
}

// Lookup returns the choice with the given id.
func (d *Dataset) Lookup(id string) (Choice, bool) {
	for _, c := range d.Choices {
		if c.ID == id {
			return c, true
		}
	}
	return Choice{}, false
}

// Clone returns a deep copy so callers can't alias the choices slice.
func (d Dataset) Clone() Dataset {
	choices := make([]Choice, len(d.Choices))
	copy(choices, d.Choices)
	d.Choices = choices
	return d
}
