package dao

import (
	"context"

	"mini-blog/pkg/core/post/model"
)

// PostRepository 帖子持久化协作者
type PostRepository interface {
	ListPosts(ctx context.Context) ([]model.Post, error)
	CreatePost(ctx context.Context, post *model.Post) error
	// FindPostByID returns ErrPostNotFound when the id is unknown.
	FindPostByID(ctx context.Context, id string) (model.Post, error)
	// UpdatePost writes fields through as column assignments, without a
	// whitelist, and returns the record as stored afterwards.
	UpdatePost(ctx context.Context, id string, fields map[string]interface{}) (model.Post, error)
	// DeletePost removes the post and returns it as it was before deletion.
	DeletePost(ctx context.Context, id string) (model.Post, error)
}
