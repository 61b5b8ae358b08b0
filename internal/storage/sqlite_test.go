package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	st, err := NewSQLite(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() }) //nolint:errcheck
	require.NoError(t, st.Migrate(context.Background()))
	return st
}

func testSummary(name string) Summary {
	id := uuid.New().String()
	now := time.Now().UTC().Format(time.RFC3339)
	return Summary{
		DriverID:        id,
		ProfileID:       "DRV-" + id[:8],
		FullName:        name,
		Email:           "driver@example.com",
		Phone:           "555-123-4567",
		RiskLevel:       "Low",
		ConfidenceScore: 50,
		Status:          "pending",
		Filename:        "application.pdf",
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func testDocument(sm Summary) map[string]any {
	return map[string]any{
		"driver_id":  sm.DriverID,
		"profile_id": sm.ProfileID,
		"status":     sm.Status,
		"personal":   map[string]any{"full_name": sm.FullName},
	}
}

func TestSQLite_InsertAndGet(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	sm := testSummary("John Driver")
	require.NoError(t, st.Insert(ctx, sm, testDocument(sm)))

	rec, err := st.GetByID(ctx, sm.DriverID)
	require.NoError(t, err)
	assert.Equal(t, sm.DriverID, rec.Summary.DriverID)
	assert.Equal(t, "John Driver", rec.Summary.FullName)
	assert.Equal(t, "pending", rec.Document["status"])

	personal := rec.Document["personal"].(map[string]any)
	assert.Equal(t, "John Driver", personal["full_name"])
}

func TestSQLite_GetMissing(t *testing.T) {
	st := newTestStore(t)

	_, err := st.GetByID(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLite_InsertDuplicateFails(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	sm := testSummary("John Driver")
	require.NoError(t, st.Insert(ctx, sm, testDocument(sm)))
	assert.Error(t, st.Insert(ctx, sm, testDocument(sm)))
}

func TestSQLite_ListAndFilter(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		sm := testSummary(fmt.Sprintf("Driver %d", i))
		require.NoError(t, st.Insert(ctx, sm, testDocument(sm)))
	}
	reviewed := testSummary("Reviewed Driver")
	reviewed.Status = "reviewed"
	require.NoError(t, st.Insert(ctx, reviewed, testDocument(reviewed)))

	all, err := st.List(ctx, ListFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 4)

	pending, err := st.List(ctx, ListFilter{Status: "pending"})
	require.NoError(t, err)
	assert.Len(t, pending, 3)

	limited, err := st.List(ctx, ListFilter{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, limited, 2)

	offset, err := st.List(ctx, ListFilter{Limit: 10, Offset: 3})
	require.NoError(t, err)
	assert.Len(t, offset, 1)
}

func TestSQLite_Search(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	sm := testSummary("Maria Gonzalez")
	require.NoError(t, st.Insert(ctx, sm, testDocument(sm)))
	other := testSummary("John Driver")
	require.NoError(t, st.Insert(ctx, other, testDocument(other)))

	byName, err := st.Search(ctx, "gonzalez", 10)
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "Maria Gonzalez", byName[0].FullName)

	byProfileID, err := st.Search(ctx, sm.ProfileID, 10)
	require.NoError(t, err)
	require.Len(t, byProfileID, 1)
	assert.Equal(t, sm.DriverID, byProfileID[0].DriverID)

	none, err := st.Search(ctx, "nomatch-xyz", 10)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestSQLite_UpdateStatus(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	sm := testSummary("John Driver")
	require.NoError(t, st.Insert(ctx, sm, testDocument(sm)))

	require.NoError(t, st.UpdateStatus(ctx, sm.DriverID, "approved"))

	rec, err := st.GetByID(ctx, sm.DriverID)
	require.NoError(t, err)
	assert.Equal(t, "approved", rec.Summary.Status)
	assert.Equal(t, "approved", rec.Document["status"])

	assert.ErrorIs(t, st.UpdateStatus(ctx, uuid.New().String(), "approved"), ErrNotFound)
}

func TestSQLite_Statistics(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	low := testSummary("Low Risk")
	require.NoError(t, st.Insert(ctx, low, testDocument(low)))

	high := testSummary("High Risk")
	high.RiskLevel = "High"
	high.Status = "reviewed"
	require.NoError(t, st.Insert(ctx, high, testDocument(high)))

	stats, err := st.Statistics(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalProfiles)
	assert.Equal(t, 1, stats.ByRiskLevel["Low"])
	assert.Equal(t, 1, stats.ByRiskLevel["High"])
	assert.Equal(t, 1, stats.ByStatus["pending"])
	assert.Equal(t, 1, stats.ByStatus["reviewed"])
	assert.Equal(t, 2, stats.RecentUploads)
}

func TestSQLite_StatisticsRecentWindow(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	old := testSummary("Old Upload")
	old.CreatedAt = time.Now().UTC().Add(-30 * time.Hour).Format(time.RFC3339)
	require.NoError(t, st.Insert(ctx, old, testDocument(old)))

	recent := testSummary("Recent Upload")
	require.NoError(t, st.Insert(ctx, recent, testDocument(recent)))

	stats, err := st.Statistics(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalProfiles)
	assert.Equal(t, 1, stats.RecentUploads)
}
