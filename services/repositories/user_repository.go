package repositories

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/lingoleap/lingo_api/model"
)

// UserRepository handles user-related database operations
type UserRepository struct {
	BaseRepository
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

func (ds *UserRepository) CreateUser(user *model.User) (*model.User, error) {
	if user.ID == "" {
		id, _ := uuid.NewV7()
		user.ID = id.String()
	}
	if err := ds.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (ds *UserRepository) GetUser(userID string) (*model.User, error) {
	var user model.User
	if err := ds.db.Where("id = ?", userID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (ds *UserRepository) GetUserByEmailOrUsername(emailOrUsername string) (*model.User, error) {
	var user model.User
	if err := ds.db.Where("email = ? OR username = ?", emailOrUsername, emailOrUsername).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (ds *UserRepository) UpdateUser(user *model.User) error {
	return ds.db.Save(user).Error
}

func (ds *UserRepository) UpdateLastLogin(userID string) error {
	now := time.Now()
	return ds.db.Model(&model.User{}).Where("id = ?", userID).Update("last_login", &now).Error
}

// UpdateUserTx saves the user inside the caller's transaction.
func (ds *UserRepository) UpdateUserTx(tx *gorm.DB, user *model.User) error {
	return ds.WithTx(tx).DB().Save(user).Error
}

// GetUserForUpdate loads the user row with a row lock inside tx. Concurrent
// activity recording for the same user serializes here instead of losing
// updates.
func (ds *UserRepository) GetUserForUpdate(tx *gorm.DB, userID string) (*model.User, error) {
	query := ds.WithTx(tx).DB()
	// SQLite has no FOR UPDATE; its single writer serializes transactions.
	if tx.Dialector.Name() != "sqlite" {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var user model.User
	if err := query.Where("id = ?", userID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
