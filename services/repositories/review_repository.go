package repositories

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/lingoleap/lingo_api/model"
)

type ReviewRepository struct {
	BaseRepository
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

// RecordMiss upserts the (user, word) review record in a single statement.
// A first miss inserts with times_missed = 1; every later miss increments
// the counter and refreshes the context columns. The increment happens in
// SQL so concurrent submissions cannot lose counts.
func (ds *ReviewRepository) RecordMiss(userID, word, context, sourceContentID string) error {
	id, _ := uuid.NewV7()
	now := time.Now()

	item := model.ReviewItem{
		ID:              id.String(),
		UserID:          userID,
		Word:            word,
		Context:         context,
		SourceContentID: sourceContentID,
		TimesMissed:     1,
		LastMissedAt:    now,
		CreatedAt:       now,
	}

	return ds.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "word"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"times_missed":      gorm.Expr("review_items.times_missed + 1"),
			"context":           context,
			"source_content_id": sourceContentID,
			"last_missed_at":    now,
		}),
	}).Create(&item).Error
}

func (ds *ReviewRepository) GetUserReviewItems(userID string) ([]model.ReviewItem, error) {
	var items []model.ReviewItem
	if err := ds.db.Where("user_id = ?", userID).Order("last_missed_at DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (ds *ReviewRepository) GetReviewItem(userID, word string) (*model.ReviewItem, error) {
	var item model.ReviewItem
	if err := ds.db.Where("user_id = ? AND word = ?", userID, word).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}
