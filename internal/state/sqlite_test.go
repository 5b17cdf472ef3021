package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store := NewSQLiteStore(nil)
	require.NoError(t, store.Open(":memory:"))
	require.NoError(t, store.InitSchema())
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestRunLifecycle(t *testing.T) {
	store := newTestStore(t)

	run, err := store.CreateRun()
	require.NoError(t, err)
	require.NotEmpty(t, run.ID)
	assert.Equal(t, RunStatusRunning, run.Status)

	counts := RunCounts{Files: 3, Errors: 1, Warnings: 4, Infos: 2}
	require.NoError(t, store.CompleteRun(run.ID, RunStatusCompleted, counts, ""))

	got, err := store.GetRun(run.ID)
	require.NoError(t, err)
	assert.Equal(t, RunStatusCompleted, got.Status)
	require.NotNil(t, got.CompletedAt)
	assert.Equal(t, 3, got.Files)
	assert.Equal(t, 1, got.Errors)
	assert.Equal(t, 4, got.Warnings)
	assert.Equal(t, 2, got.Infos)
	assert.Empty(t, got.Error)
}

func TestCompleteRunWithError(t *testing.T) {
	store := newTestStore(t)

	run, err := store.CreateRun()
	require.NoError(t, err)
	require.NoError(t, store.CompleteRun(run.ID, RunStatusFailed, RunCounts{}, "input decode failed"))

	got, err := store.GetRun(run.ID)
	require.NoError(t, err)
	assert.Equal(t, RunStatusFailed, got.Status)
	assert.Equal(t, "input decode failed", got.Error)
}

func TestGetRunNotFound(t *testing.T) {
	store := newTestStore(t)
	_, err := store.GetRun("missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestListRuns(t *testing.T) {
	store := newTestStore(t)

	var ids []string
	for i := 0; i < 3; i++ {
		run, err := store.CreateRun()
		require.NoError(t, err)
		ids = append(ids, run.ID)
	}

	runs, err := store.ListRuns(2)
	require.NoError(t, err)
	assert.Len(t, runs, 2)

	runs, err = store.ListRuns(10)
	require.NoError(t, err)
	assert.Len(t, runs, len(ids))
}

func TestBaselineRoundTrip(t *testing.T) {
	store := newTestStore(t)

	entries := []BaselineEntry{
		{Path: "order.p", RuleID: "locking/no-share-lock", Line: 10, Column: 1},
		{Path: "order.p", RuleID: "convention/require-no-undo", Line: 4, Column: 1},
	}
	require.NoError(t, store.ReplaceBaseline(entries))

	baseline, err := store.LoadBaseline()
	require.NoError(t, err)
	assert.Len(t, baseline, 2)
	assert.True(t, baseline[entries[0].Key()])
	assert.False(t, baseline[BaselineEntry{Path: "other.p", RuleID: "x", Line: 1, Column: 1}.Key()])

	// Replacing clears the previous baseline.
	require.NoError(t, store.ReplaceBaseline(entries[:1]))
	baseline, err = store.LoadBaseline()
	require.NoError(t, err)
	assert.Len(t, baseline, 1)
}
