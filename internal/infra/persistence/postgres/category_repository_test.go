package postgres

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newDryRunDB opens a gorm handle that builds SQL without touching a database.
func newDryRunDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(pgdriver.New(pgdriver.Config{
		DSN: "host=localhost user=inkpress dbname=inkpress",
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)

	return db
}

// sqlCapture records every query statement gorm builds.
type sqlCapture struct {
	queries []string
}

func captureQueries(t *testing.T, db *gorm.DB) *sqlCapture {
	t.Helper()

	captured := &sqlCapture{}
	err := db.Callback().Query().After("gorm:query").Register("test_capture_sql", func(tx *gorm.DB) {
		captured.queries = append(captured.queries, tx.Statement.SQL.String())
	})
	require.NoError(t, err)

	return captured
}

// Post creation validates category references by counting them; the count
// must not filter on approval, or posts into provisional categories break.
func TestCategoryRepository_CountByIDs_IgnoresApproval(t *testing.T) {
	db := newDryRunDB(t)
	captured := captureQueries(t, db)
	repo := NewCategoryRepository(db)

	_, err := repo.CountByIDs(context.Background(), []uuid.UUID{uuid.New(), uuid.New()})
	require.NoError(t, err)

	require.Len(t, captured.queries, 1)
	assert.Contains(t, captured.queries[0], "id IN")
	assert.NotContains(t, captured.queries[0], "is_approved")
}

func TestCategoryRepository_List_NewestFirst(t *testing.T) {
	db := newDryRunDB(t)
	captured := captureQueries(t, db)
	repo := NewCategoryRepository(db)

	_, err := repo.List(context.Background(), true)
	require.NoError(t, err)

	require.Len(t, captured.queries, 1)
	assert.Contains(t, captured.queries[0], "ORDER BY created_at DESC")
	assert.Contains(t, captured.queries[0], "is_approved")
}

func TestCategoryRepository_List_AllIncludesProvisional(t *testing.T) {
	db := newDryRunDB(t)
	captured := captureQueries(t, db)
	repo := NewCategoryRepository(db)

	_, err := repo.List(context.Background(), false)
	require.NoError(t, err)

	require.Len(t, captured.queries, 1)
	assert.NotContains(t, captured.queries[0], "is_approved")
	assert.Contains(t, captured.queries[0], "ORDER BY created_at DESC")
}
