package storage

import (
	"context"
	"testing"
	"time"

	"aurafocus/internal/core/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHistory(t *testing.T) *History {
	t.Helper()
	history, err := OpenMemoryHistory()
	require.NoError(t, err)
	t.Cleanup(func() { history.Close() })
	return history
}

func TestHistoryMigrationIdempotent(t *testing.T) {
	history := newTestHistory(t)

	require.NoError(t, history.migrate())

	var version int
	require.NoError(t, history.db.QueryRow("PRAGMA user_version").Scan(&version))
	assert.Equal(t, historySchemaLevel, version)
}

func TestOpenHistoryOnDisk(t *testing.T) {
	dir := t.TempDir()
	history, err := OpenHistory(dir)
	require.NoError(t, err)
	_, err = history.Record(context.Background(), SessionRecord{Session: model.SessionFocus, DurationSeconds: 1500})
	require.NoError(t, err)
	require.NoError(t, history.Close())

	reopened, err := OpenHistory(dir)
	require.NoError(t, err)
	defer reopened.Close()

	records, err := reopened.Recent(context.Background(), 10)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestRecentRejectsCorruptTimestamp(t *testing.T) {
	history := newTestHistory(t)
	_, err := history.db.Exec(
		`INSERT INTO sessions (id, session_type, duration_seconds, completed_at) VALUES (?, ?, ?, ?)`,
		"broken", string(model.SessionFocus), 1500, "yesterday",
	)
	require.NoError(t, err)

	records, err := history.Recent(context.Background(), 10)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse completed_at of session broken")
	assert.Nil(t, records)
}

func TestRecordFillsIDAndTime(t *testing.T) {
	history := newTestHistory(t)

	record, err := history.Record(context.Background(), SessionRecord{Session: model.SessionShortBreak, DurationSeconds: 300})

	require.NoError(t, err)
	assert.Len(t, record.ID, 36)
	assert.False(t, record.CompletedAt.IsZero())
}

func TestRecentNewestFirst(t *testing.T) {
	history := newTestHistory(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	for i, session := range []model.SessionType{model.SessionFocus, model.SessionShortBreak, model.SessionFocus} {
		_, err := history.Record(ctx, SessionRecord{
			Session:         session,
			DurationSeconds: 60,
			CompletedAt:     base.Add(time.Duration(i) * time.Hour),
		})
		require.NoError(t, err)
	}

	records, err := history.Recent(ctx, 2)

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, base.Add(2*time.Hour), records[0].CompletedAt)
	assert.Equal(t, model.SessionShortBreak, records[1].Session)
}

func TestSummaryGroupsBySessionType(t *testing.T) {
	history := newTestHistory(t)
	ctx := context.Background()
	since := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	records := []SessionRecord{
		{Session: model.SessionFocus, DurationSeconds: 1500, CompletedAt: since.Add(time.Hour)},
		{Session: model.SessionFocus, DurationSeconds: 1500, CompletedAt: since.Add(2 * time.Hour)},
		{Session: model.SessionLongBreak, DurationSeconds: 900, CompletedAt: since.Add(3 * time.Hour)},
		{Session: model.SessionFocus, DurationSeconds: 1500, CompletedAt: since.Add(-time.Hour)},
	}
	for _, record := range records {
		_, err := history.Record(ctx, record)
		require.NoError(t, err)
	}

	summary, err := history.Summary(ctx, since)

	require.NoError(t, err)
	assert.Equal(t, SessionTotals{Count: 2, TotalSeconds: 3000}, summary[model.SessionFocus])
	assert.Equal(t, SessionTotals{Count: 1, TotalSeconds: 900}, summary[model.SessionLongBreak])
	_, ok := summary[model.SessionShortBreak]
	assert.False(t, ok)
}
