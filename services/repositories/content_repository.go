package repositories

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lingoleap/lingo_api/model"
)

type ContentRepository struct {
	BaseRepository
}

func NewContentRepository(db *gorm.DB) *ContentRepository {
	return &ContentRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

func (ds *ContentRepository) CreateContent(content *model.Content) (*model.Content, error) {
	if content.ID == "" {
		id, _ := uuid.NewV7()
		content.ID = id.String()
	}
	content.CreatedAt = time.Now()
	content.UpdatedAt = time.Now()
	if err := ds.db.Create(content).Error; err != nil {
		return nil, err
	}
	return content, nil
}

func (ds *ContentRepository) GetContent(contentID string) (*model.Content, error) {
	var content model.Content
	if err := ds.db.Where("id = ?", contentID).First(&content).Error; err != nil {
		return nil, err
	}
	return &content, nil
}

func (ds *ContentRepository) GetUserContents(userID string) ([]model.Content, error) {
	var contents []model.Content
	if err := ds.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&contents).Error; err != nil {
		return nil, err
	}
	return contents, nil
}

func (ds *ContentRepository) UpdateRating(contentID string, rating int) error {
	return ds.db.Model(&model.Content{}).Where("id = ?", contentID).
		Updates(map[string]interface{}{"rating": rating, "updated_at": time.Now()}).Error
}
