package repositories

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lingoleap/lingo_api/model"
)

type ProgressRepository struct {
	BaseRepository
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

// AppendRecord writes one immutable log row inside the caller's
// transaction. There is deliberately no update or delete counterpart.
func (ds *ProgressRepository) AppendRecord(tx *gorm.DB, record *model.Progress) error {
	if record.ID == "" {
		id, _ := uuid.NewV7()
		record.ID = id.String()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}
	return ds.WithTx(tx).DB().Create(record).Error
}

func (ds *ProgressRepository) GetUserHistory(userID string, limit int) ([]model.Progress, error) {
	var records []model.Progress
	if err := ds.db.Where("user_id = ?", userID).Order("created_at DESC").Limit(limit).Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
