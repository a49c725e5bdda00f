package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/lingoleap/lingo_api/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Content{},
		&model.ReviewItem{},
		&model.Progress{},
	))

	return db
}

func TestRecordMiss_FirstMissInserts(t *testing.T) {
	repo := NewReviewRepository(newTestDB(t))

	require.NoError(t, repo.RecordMiss("user-1", "apple", "Pick the fruit", "content-1"))

	item, err := repo.GetReviewItem("user-1", "apple")
	require.NoError(t, err)
	assert.Equal(t, 1, item.TimesMissed)
	assert.Equal(t, "Pick the fruit", item.Context)
	assert.Equal(t, "content-1", item.SourceContentID)
}

func TestRecordMiss_RepeatMissIncrements(t *testing.T) {
	repo := NewReviewRepository(newTestDB(t))

	require.NoError(t, repo.RecordMiss("user-1", "apple", "First question", "content-1"))
	require.NoError(t, repo.RecordMiss("user-1", "apple", "Second question", "content-2"))

	item, err := repo.GetReviewItem("user-1", "apple")
	require.NoError(t, err)
	assert.Equal(t, 2, item.TimesMissed)
	assert.Equal(t, "Second question", item.Context, "context refreshes on each miss")
	assert.Equal(t, "content-2", item.SourceContentID)

	var count int64
	require.NoError(t, repo.DB().Model(&model.ReviewItem{}).Count(&count).Error)
	assert.EqualValues(t, 1, count, "repeat misses never create new rows")
}

func TestRecordMiss_PerUserIsolation(t *testing.T) {
	repo := NewReviewRepository(newTestDB(t))

	require.NoError(t, repo.RecordMiss("user-1", "apple", "q", "c1"))
	require.NoError(t, repo.RecordMiss("user-2", "apple", "q", "c1"))

	first, err := repo.GetReviewItem("user-1", "apple")
	require.NoError(t, err)
	assert.Equal(t, 1, first.TimesMissed)

	second, err := repo.GetReviewItem("user-2", "apple")
	require.NoError(t, err)
	assert.Equal(t, 1, second.TimesMissed)
}

func TestGetUserReviewItems_OrderedByRecency(t *testing.T) {
	repo := NewReviewRepository(newTestDB(t))

	require.NoError(t, repo.RecordMiss("user-1", "older", "q", "c1"))
	require.NoError(t, repo.RecordMiss("user-1", "newer", "q", "c2"))
	// Missing "older" again makes it the most recent.
	require.NoError(t, repo.RecordMiss("user-1", "older", "q", "c3"))

	items, err := repo.GetUserReviewItems("user-1")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "older", items[0].Word)
	assert.Equal(t, 2, items[0].TimesMissed)
}
