package dao

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	apperrors "mini-blog/pkg/common/errors"
	"mini-blog/pkg/core/user/model"
	"mini-blog/pkg/core/user/repository/dao"
)

// list users 时帖子只暴露这些列；user_id 用于关联回填
var postSummaryColumns = []string{"id", "user_id", "title", "description", "comment_count"}

type GormUserRepository struct {
	db *gorm.DB
}

var _ dao.UserRepository = (*GormUserRepository)(nil)

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) FindUserByEmail(ctx context.Context, email string) (model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		Take(&user).Error
	if err != nil {
		return model.User{}, fmt.Errorf("find user by email: %w", apperrors.WrapGormError(err, apperrors.ErrUserNotFound))
	}
	return user, nil
}

func (r *GormUserRepository) FindUserByID(ctx context.Context, id string) (model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Take(&user).Error
	if err != nil {
		return model.User{}, fmt.Errorf("find user by id: %w", apperrors.WrapGormError(err, apperrors.ErrUserNotFound))
	}
	return user, nil
}

// CreateUser inserts without a transaction; the unique index on email is the
// only guard against a concurrent registration slipping past the pre-check.
func (r *GormUserRepository) CreateUser(ctx context.Context, user *model.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.ErrDuplicateEntry
		}
		return fmt.Errorf("create user: %w", apperrors.WrapGormError(err, apperrors.ErrUserNotFound))
	}
	return nil
}

func (r *GormUserRepository) ListUsersWithPosts(ctx context.Context) ([]model.User, error) {
	var users []model.User
	err := r.db.WithContext(ctx).
		Preload("Posts", func(tx *gorm.DB) *gorm.DB {
			return tx.Select(postSummaryColumns)
		}).
		Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("list users: %w", apperrors.WrapGormError(err, apperrors.ErrUserNotFound))
	}
	return users, nil
}
