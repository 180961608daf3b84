package model

import (
	postmodel "mini-blog/pkg/core/post/model"
	usermodel "mini-blog/pkg/core/user/model"
)

// 请求/响应数据结构
type (
	RegisterReq struct {
		Name     string `json:"name" form:"name"`
		Email    string `json:"email" form:"email"`
		Password string `json:"password" form:"password"`
	}

	LoginReq struct {
		Email    string `json:"email" form:"email"`
		Password string `json:"password" form:"password"`
	}

	// UserRes 用户及其响应消息
	UserRes struct {
		Message string         `json:"message"`
		User    usermodel.User `json:"user"`
	}

	PostSummary struct {
		ID           string `json:"id"`
		Title        string `json:"title"`
		Description  string `json:"description"`
		CommentCount int    `json:"comment_count"`
	}

	UserCount struct {
		Posts int `json:"posts"`
	}

	// UserWithPosts is one element of GET /all/user.
	UserWithPosts struct {
		usermodel.User
		Posts []PostSummary `json:"posts"`
		Count UserCount     `json:"_count"`
	}
)

func NewUserWithPosts(u usermodel.User) UserWithPosts {
	posts := make([]PostSummary, 0, len(u.Posts))
	for _, p := range u.Posts {
		posts = append(posts, newPostSummary(p))
	}
	u.Posts = nil
	return UserWithPosts{
		User:  u,
		Posts: posts,
		Count: UserCount{Posts: len(posts)},
	}
}

func newPostSummary(p postmodel.Post) PostSummary {
	return PostSummary{
		ID:           p.ID,
		Title:        p.Title,
		Description:  p.Description,
		CommentCount: p.CommentCount,
	}
}
