package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err, "open test store")
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	require.NotNil(t, s.DB())
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := s.DB().QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		require.NoError(t, err, "PRAGMA %s", tt.pragma)
		assert.Equal(t, tt.want, got, "PRAGMA %s", tt.pragma)
	}
}

func TestSaveAndListResults(t *testing.T) {
	s := openTestStore(t)

	r1, err := s.SaveResult("Geometrie (Mittel)", "Klasse 7.1", 8, 10, 312*time.Second)
	require.NoError(t, err)
	assert.NotZero(t, r1.ID)
	assert.NotEmpty(t, r1.SessionID)

	r2, err := s.SaveResult("Halbjahrestest", "Klasse 7.1", 19, 23, 1500*time.Second)
	require.NoError(t, err)
	assert.NotEqual(t, r1.SessionID, r2.SessionID)

	results, err := s.ListResults()
	require.NoError(t, err)
	require.Len(t, results, 2)

	// Newest first; equal timestamps fall back to insertion order.
	assert.Equal(t, "Halbjahrestest", results[0].Topic)
	assert.Equal(t, 19, results[0].Correct)
	assert.Equal(t, 23, results[0].Total)
	assert.InDelta(t, 1500.0, results[0].Duration, 0.001)
	assert.Equal(t, "Klasse 7.1", results[0].Class)
}

func TestDeleteResult(t *testing.T) {
	s := openTestStore(t)

	r, err := s.SaveResult("Statistik (Leicht)", "Klasse 6.2", 5, 10, time.Minute)
	require.NoError(t, err)

	require.NoError(t, s.DeleteResult(r.ID))

	results, err := s.ListResults()
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestUpdateResult(t *testing.T) {
	s := openTestStore(t)

	r, err := s.SaveResult("Stochastik (Schwer)", "Klasse 10.1", 3, 10, time.Minute)
	require.NoError(t, err)

	require.NoError(t, s.UpdateResult(r.ID, 7, 10, 90*time.Second))

	results, err := s.ListResults()
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 7, results[0].Correct)
	assert.InDelta(t, 90.0, results[0].Duration, 0.001)
}

func TestTopicStats(t *testing.T) {
	s := openTestStore(t)

	_, err := s.SaveResult("Geometrie (Leicht)", "Klasse 7.1", 8, 10, time.Minute)
	require.NoError(t, err)
	_, err = s.SaveResult("Geometrie (Leicht)", "Klasse 7.1", 9, 10, time.Minute)
	require.NoError(t, err)
	_, err = s.SaveResult("Textaufgaben (Mittel)", "Klasse 7.1", 4, 10, time.Minute)
	require.NoError(t, err)

	stats, err := s.TopicStats()
	require.NoError(t, err)
	require.Len(t, stats, 2)

	assert.Equal(t, "Geometrie (Leicht)", stats[0].Topic)
	assert.Equal(t, 2, stats[0].Runs)
	assert.Equal(t, 17, stats[0].Correct)
	assert.Equal(t, 20, stats[0].Total)
}

func TestResultAccuracy(t *testing.T) {
	assert.Equal(t, 0.0, Result{}.Accuracy())
	assert.InDelta(t, 0.8, Result{Correct: 8, Total: 10}.Accuracy(), 0.001)
}
