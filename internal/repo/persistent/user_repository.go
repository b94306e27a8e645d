package persistent

import (
	"context"
	"errors"

	"vidtube/internal/entity"
	"vidtube/internal/model"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, userID string) (*entity.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	SetPremium(ctx context.Context, userID string) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	m := ToUserModel(user)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return translateErr(err)
	}
	user.ID = m.ID
	user.CreatedAt = m.CreatedAt
	user.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, userID string) (*entity.User, error) {
	var m model.UserModel
	if err := r.db.WithContext(ctx).Where("id = ?", userID).First(&m).Error; err != nil {
		return nil, translateErr(err)
	}
	return ToUserEntity(&m), nil
}

func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, "email = ?", email)
}

func (r *userRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return r.exists(ctx, "username = ?", username)
}

func (r *userRepository) exists(ctx context.Context, cond, arg string) (bool, error) {
	var m model.UserModel
	err := r.db.WithContext(ctx).Select("id").Where(cond, arg).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, translateErr(err)
	}
	return true, nil
}

func (r *userRepository) SetPremium(ctx context.Context, userID string) error {
	res := r.db.WithContext(ctx).Model(&model.UserModel{}).
		Where("id = ?", userID).
		Update("is_premium", true)
	if res.Error != nil {
		return translateErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return entity.ErrNotFound
	}
	return nil
}
