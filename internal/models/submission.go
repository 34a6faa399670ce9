package models

import (
	"errors"
	"fmt"
	"time"
)

var _ Model = (*Submission)(nil)

// Submission records the ids a user had selected when the wizard reached its summary.
type Submission struct {
	id          string
	sequence    int
	topics      []string
	newsletters []string
	createdAt   time.Time
}

// NewSubmission creates a [Submission] stamped with the current time. Slices are copied.
func NewSubmission(sequence int, topics, newsletters []string) *Submission {
	return &Submission{
		sequence:    sequence,
		topics:      append([]string{}, topics...),
		newsletters: append([]string{}, newsletters...),
		createdAt:   time.Now().UTC(),
	}
}

func (s *Submission) ID() string            { return s.id }
func (s *Submission) Sequence() int         { return s.sequence }
func (s *Submission) Topics() []string      { return s.topics }
func (s *Submission) Newsletters() []string { return s.newsletters }
func (s *Submission) CreatedAt() time.Time  { return s.createdAt }

func (s *Submission) SetID(id string)          { s.id = id }
func (s *Submission) SetSequence(seq int)      { s.sequence = seq }
func (s *Submission) SetCreatedAt(t time.Time) { s.createdAt = t }

// Empty reports whether nothing was selected in either step.
func (s *Submission) Empty() bool {
	return len(s.topics) == 0 && len(s.newsletters) == 0
}

// Validate checks that the submission has an id and no blank entries.
func (s *Submission) Validate() error {
	if s.id == "" {
		return errors.New("submission id is required")
	}
	for _, id := range s.topics {
		if id == "" {
			return fmt.Errorf("submission %s: blank topic id", s.id)
		}
	}
	for _, id := range s.newsletters {
		if id == "" {
			return fmt.Errorf("submission %s: blank newsletter id", s.id)
		}
	}
	return nil
}
