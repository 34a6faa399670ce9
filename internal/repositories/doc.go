// Package repositories implements SQLite persistence for recorded submissions.
//
// [SubmissionRepository] stores each submission as a row in submissions plus one row per selected choice in
// submission_choices, keeping the order in which the choices were selected.
//
// [SubmissionRecorder] adapts the repository to the wizard's Recorder hook so every session reaching the summary
// is written down without the wizard knowing about storage.
//
// Sequence numbers provide stable, human-readable ordering (e.g., submission #42) independent of UUIDs and creation timestamps.
// The [NextSequence] function increments per-table counters inside the caller's transaction.
package repositories
