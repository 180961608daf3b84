package model

import postmodel "mini-blog/pkg/core/post/model"

type (
	CreatePostReq struct {
		UserID      string `json:"user_id" form:"user_id"`
		Title       string `json:"title" form:"title"`
		Description string `json:"description" form:"description"`
	}

	PostRes struct {
		Message string         `json:"message"`
		Post    postmodel.Post `json:"post"`
	}

	// MessageRes is the body of every error response.
	MessageRes struct {
		Message string `json:"message"`
	}
)

// Complete reports whether every required field is present.
func (r CreatePostReq) Complete() bool {
	return r.UserID != "" && r.Title != "" && r.Description != ""
}
