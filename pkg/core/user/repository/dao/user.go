package dao

import (
	"context"

	"mini-blog/pkg/core/user/model"
)

// UserRepository 用户持久化协作者
type UserRepository interface {
	// FindUserByEmail returns ErrUserNotFound when no user has the email.
	FindUserByEmail(ctx context.Context, email string) (model.User, error)
	// FindUserByID returns ErrUserNotFound when the id is unknown.
	FindUserByID(ctx context.Context, id string) (model.User, error)
	CreateUser(ctx context.Context, user *model.User) error
	// ListUsersWithPosts loads every user with its posts attached.
	ListUsersWithPosts(ctx context.Context) ([]model.User, error)
}
