package dao

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	apperrors "mini-blog/pkg/common/errors"
	"mini-blog/pkg/core/post/model"
	"mini-blog/pkg/core/post/repository/dao"
)

type GormPostRepository struct {
	db *gorm.DB
}

var _ dao.PostRepository = (*GormPostRepository)(nil)

func NewGormPostRepository(db *gorm.DB) *GormPostRepository {
	return &GormPostRepository{db: db}
}

func (r *GormPostRepository) ListPosts(ctx context.Context) ([]model.Post, error) {
	var posts []model.Post
	if err := r.db.WithContext(ctx).Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("list posts: %w", wrap(err))
	}
	return posts, nil
}

func (r *GormPostRepository) CreatePost(ctx context.Context, post *model.Post) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return fmt.Errorf("create post: %w", wrap(err))
	}
	return nil
}

func (r *GormPostRepository) FindPostByID(ctx context.Context, id string) (model.Post, error) {
	var post model.Post
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&post).Error; err != nil {
		return model.Post{}, fmt.Errorf("find post: %w", wrap(err))
	}
	return post, nil
}

// UpdatePost 部分更新：字段不做白名单校验，未知列由数据库拒绝
func (r *GormPostRepository) UpdatePost(ctx context.Context, id string, fields map[string]interface{}) (model.Post, error) {
	db := r.db.WithContext(ctx)

	var post model.Post
	if err := db.Where("id = ?", id).Take(&post).Error; err != nil {
		return model.Post{}, fmt.Errorf("update post: %w", wrap(err))
	}

	if len(fields) > 0 {
		if err := db.Model(&model.Post{}).Where("id = ?", id).Updates(fields).Error; err != nil {
			return model.Post{}, fmt.Errorf("update post: %w", wrap(err))
		}
	}

	// 主键本身也可能被改写
	if newID, ok := fields["id"].(string); ok && newID != "" {
		id = newID
	}

	var updated model.Post
	if err := db.Where("id = ?", id).Take(&updated).Error; err != nil {
		return model.Post{}, fmt.Errorf("reload post: %w", wrap(err))
	}
	return updated, nil
}

func (r *GormPostRepository) DeletePost(ctx context.Context, id string) (model.Post, error) {
	db := r.db.WithContext(ctx)

	var post model.Post
	if err := db.Where("id = ?", id).Take(&post).Error; err != nil {
		return model.Post{}, fmt.Errorf("delete post: %w", wrap(err))
	}

	result := db.Delete(&model.Post{}, "id = ?", id)
	if result.Error != nil {
		return model.Post{}, fmt.Errorf("delete post: %w", wrap(result.Error))
	}
	// 并发删除时另一方已先行删除
	if result.RowsAffected == 0 {
		return model.Post{}, apperrors.ErrPostNotFound
	}
	return post, nil
}

func wrap(err error) error {
	return apperrors.WrapGormError(err, apperrors.ErrPostNotFound)
}
