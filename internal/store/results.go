package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// timeLayout is the timestamp format stored in the results table.
const timeLayout = "2006-01-02 15:04:05"

// Result is one logged practice or test run.
type Result struct {
	ID        int64   `db:"id"`
	SessionID string  `db:"session_id"`
	Topic     string  `db:"topic"`
	Class     string  `db:"class"`
	Correct   int     `db:"correct_count"`
	Total     int     `db:"total_count"`
	Duration  float64 `db:"duration"` // seconds
	Timestamp string  `db:"timestamp"`
}

// Accuracy returns the correct ratio, or 0 for an empty run.
func (r Result) Accuracy() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Correct) / float64(r.Total)
}

// SaveResult logs a finished run. Topic carries the tier in
// parentheses ("Geometrie (Mittel)"), Class the level label
// ("Klasse 7.1"). A fresh session id ties the row to the run.
func (s *Store) SaveResult(topic, class string, correct, total int, duration time.Duration) (Result, error) {
	r := Result{
		SessionID: uuid.NewString(),
		Topic:     topic,
		Class:     class,
		Correct:   correct,
		Total:     total,
		Duration:  duration.Seconds(),
		Timestamp: time.Now().Format(timeLayout),
	}

	res, err := s.db.NamedExec(`
		INSERT INTO results (session_id, topic, class, correct_count, total_count, duration, timestamp)
		VALUES (:session_id, :topic, :class, :correct_count, :total_count, :duration, :timestamp)`, r)
	if err != nil {
		return Result{}, fmt.Errorf("save result: %w", err)
	}
	r.ID, err = res.LastInsertId()
	if err != nil {
		return Result{}, fmt.Errorf("save result: %w", err)
	}
	return r, nil
}

// ListResults returns all logged runs, newest first.
func (s *Store) ListResults() ([]Result, error) {
	var results []Result
	err := s.db.Select(&results, `
		SELECT id, session_id, topic, class, correct_count, total_count, duration, timestamp
		FROM results ORDER BY timestamp DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list results: %w", err)
	}
	return results, nil
}

// DeleteResult removes one logged run by id.
func (s *Store) DeleteResult(id int64) error {
	if _, err := s.db.Exec(`DELETE FROM results WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete result %d: %w", id, err)
	}
	return nil
}

// UpdateResult corrects the counters of a logged run.
func (s *Store) UpdateResult(id int64, correct, total int, duration time.Duration) error {
	_, err := s.db.Exec(`
		UPDATE results SET correct_count = ?, total_count = ?, duration = ?
		WHERE id = ?`, correct, total, duration.Seconds(), id)
	if err != nil {
		return fmt.Errorf("update result %d: %w", id, err)
	}
	return nil
}

// TopicStat aggregates all runs of one topic label.
type TopicStat struct {
	Topic   string `db:"topic"`
	Runs    int    `db:"runs"`
	Correct int    `db:"correct"`
	Total   int    `db:"total"`
}

// TopicStats aggregates the result log per topic label.
func (s *Store) TopicStats() ([]TopicStat, error) {
	var stats []TopicStat
	err := s.db.Select(&stats, `
		SELECT topic,
		       COUNT(*)           AS runs,
		       SUM(correct_count) AS correct,
		       SUM(total_count)   AS total
		FROM results GROUP BY topic ORDER BY topic`)
	if err != nil {
		return nil, fmt.Errorf("topic stats: %w", err)
	}
	return stats, nil
}
