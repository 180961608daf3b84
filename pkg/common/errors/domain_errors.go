// pkg/common/errors/domain_errors.go

/*
  - 使用实例
    post, err := repo.FindPostByID(ctx, id)
    if errors.Is(err, apperrors.ErrPostNotFound) {
    // 404
    }
*/
package errors

import (
	"errors"

	hzte "github.com/cloudwego/hertz/pkg/common/errors"
)

// 定义原始错误
var (
	rawErrUserNotFound     = errors.New("user not found")
	rawErrPostNotFound     = errors.New("post not found")
	rawErrDuplicateEntry   = errors.New("email already exists")
	rawErrDatabaseInternal = errors.New("database internal error")
)

// 包装成 Hertz 错误类型
var (
	ErrUserNotFound     = hzte.New(rawErrUserNotFound, hzte.ErrorTypePublic, nil)
	ErrPostNotFound     = hzte.New(rawErrPostNotFound, hzte.ErrorTypePublic, nil)
	ErrDuplicateEntry   = hzte.New(rawErrDuplicateEntry, hzte.ErrorTypePublic, nil)
	ErrDatabaseInternal = hzte.New(rawErrDatabaseInternal, hzte.ErrorTypePrivate, nil)
)
