package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/desertthunder/onboard/internal/models"
	"github.com/desertthunder/onboard/internal/shared"
)

var _ models.Repository[*models.Submission] = (*SubmissionRepository)(nil)

const (
	topicsKind      = "topics"
	newslettersKind = "newsletters"
)

// SubmissionRepository implements [models.Repository] for [models.Submission] persistence.
type SubmissionRepository struct {
	db *sql.DB
}

// NewSubmissionRepository creates a new [SubmissionRepository] with the given database connection
func NewSubmissionRepository(db *sql.DB) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

// Create inserts a new submission with a generated ID and sequence, along with its ordered choices.
func (r *SubmissionRepository) Create(s *models.Submission) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	sequence, err := NextSequence(tx, "submissions")
	if err != nil {
		return fmt.Errorf("failed to generate sequence: %w", err)
	}

	s.SetID(shared.GenerateID())
	s.SetSequence(sequence)

	if err := s.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	if _, err := tx.Exec(
		`INSERT INTO submissions (id, sequence, created_at) VALUES (?, ?, ?)`,
		s.ID(), s.Sequence(), s.CreatedAt(),
	); err != nil {
		return fmt.Errorf("failed to insert submission: %w", err)
	}

	if err := insertChoices(tx, s.ID(), topicsKind, s.Topics()); err != nil {
		return err
	}
	if err := insertChoices(tx, s.ID(), newslettersKind, s.Newsletters()); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit submission: %w", err)
	}
	return nil
}

// Get retrieves a submission by ID, with its choices in selection order.
func (r *SubmissionRepository) Get(id string) (*models.Submission, error) {
	var (
		sequence  int
		createdAt time.Time
	)

	err := r.db.QueryRow(`SELECT sequence, created_at FROM submissions WHERE id = ?`, id).Scan(&sequence, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: submission %s", shared.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query submission: %w", err)
	}

	return r.hydrate(id, sequence, createdAt)
}

// List retrieves up to limit submissions, newest first. A limit <= 0 returns every submission.
func (r *SubmissionRepository) List(limit int) ([]*models.Submission, error) {
	query := `SELECT id, sequence, created_at FROM submissions ORDER BY sequence DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query submissions: %w", err)
	}

	type header struct {
		id        string
		sequence  int
		createdAt time.Time
	}

	var headers []header
	for rows.Next() {
		var h header
		if err := rows.Scan(&h.id, &h.sequence, &h.createdAt); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan submission: %w", err)
		}
		headers = append(headers, h)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("error iterating submissions: %w", err)
	}
	rows.Close()

	// Choices are loaded after the cursor is closed; the pool may hold a single connection.
	submissions := make([]*models.Submission, 0, len(headers))
	for _, h := range headers {
		s, err := r.hydrate(h.id, h.sequence, h.createdAt)
		if err != nil {
			return nil, err
		}
		submissions = append(submissions, s)
	}
	return submissions, nil
}

// Delete removes a submission and its choices.
func (r *SubmissionRepository) Delete(id string) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM submission_choices WHERE submission_id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete submission choices: %w", err)
	}

	result, err := tx.Exec(`DELETE FROM submissions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete submission: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: submission %s", shared.ErrNotFound, id)
	}

	return tx.Commit()
}

// Count returns how many times each choice id of dataset appears across all submissions.
func (r *SubmissionRepository) Count(dataset string) (map[string]int, error) {
	rows, err := r.db.Query(
		`SELECT choice_id, COUNT(*) FROM submission_choices WHERE dataset = ? GROUP BY choice_id`,
		dataset,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to count choices: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var (
			id string
			n  int
		)
		if err := rows.Scan(&id, &n); err != nil {
			return nil, fmt.Errorf("failed to scan choice count: %w", err)
		}
		counts[id] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating choice counts: %w", err)
	}
	return counts, nil
}

func (r *SubmissionRepository) hydrate(id string, sequence int, createdAt time.Time) (*models.Submission, error) {
	topics, err := r.choices(id, topicsKind)
	if err != nil {
		return nil, err
	}
	newsletters, err := r.choices(id, newslettersKind)
	if err != nil {
		return nil, err
	}

	s := models.NewSubmission(sequence, topics, newsletters)
	s.SetID(id)
	s.SetCreatedAt(createdAt)
	return s, nil
}

func (r *SubmissionRepository) choices(id, dataset string) ([]string, error) {
	rows, err := r.db.Query(
		`SELECT choice_id FROM submission_choices WHERE submission_id = ? AND dataset = ? ORDER BY position`,
		id, dataset,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query submission choices: %w", err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var choiceID string
		if err := rows.Scan(&choiceID); err != nil {
			return nil, fmt.Errorf("failed to scan submission choice: %w", err)
		}
		ids = append(ids, choiceID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating submission choices: %w", err)
	}
	return ids, nil
}

func insertChoices(tx *sql.Tx, submissionID, dataset string, ids []string) error {
	for i, id := range ids {
		if _, err := tx.Exec(
			`INSERT INTO submission_choices (submission_id, dataset, position, choice_id) VALUES (?, ?, ?, ?)`,
			submissionID, dataset, i, id,
		); err != nil {
			return fmt.Errorf("failed to insert %s choice %q: %w", dataset, id, err)
		}
	}
	return nil
}
