package repositories

import (
	"fmt"

	"github.com/desertthunder/onboard/internal/models"
)

// SubmissionRecorder implements wizard.Recorder using [SubmissionRepository].
type SubmissionRecorder struct {
	repo *SubmissionRepository
}

// NewSubmissionRecorder creates a new SubmissionRecorder with the given repository
func NewSubmissionRecorder(repo *SubmissionRepository) *SubmissionRecorder {
	return &SubmissionRecorder{repo: repo}
}

// Record stores the selections as a new submission.
func (r *SubmissionRecorder) Record(topics, newsletters []string) error {
	if err := r.repo.Create(models.NewSubmission(0, topics, newsletters)); err != nil {
		return fmt.Errorf("failed to record submission: %w", err)
	}
	return nil
}
