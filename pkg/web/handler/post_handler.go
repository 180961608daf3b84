package handler

import (
	"context"
	"errors"
	"strings"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/common/json"
	"github.com/cloudwego/hertz/pkg/protocol"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	apperrors "mini-blog/pkg/common/errors"
	postmodel "mini-blog/pkg/core/post/model"
	postdao "mini-blog/pkg/core/post/repository/dao"
	userdao "mini-blog/pkg/core/user/repository/dao"
	"mini-blog/pkg/web/model"
)

type PostHandler struct {
	PostRepo postdao.PostRepository
	UserRepo userdao.UserRepository
}

func NewPostHandler(posts postdao.PostRepository, users userdao.UserRepository) *PostHandler {
	return &PostHandler{PostRepo: posts, UserRepo: users}
}

// ListPosts GET /all/post
func (h *PostHandler) ListPosts(ctx context.Context, c *app.RequestContext) {
	posts, err := h.PostRepo.ListPosts(ctx)
	if err != nil {
		hlog.CtxErrorf(ctx, "Error fetching posts: %v", err)
		respondInternal(c)
		return
	}
	if len(posts) == 0 {
		respondError(c, consts.StatusNotFound, MsgNoPosts)
		return
	}
	c.JSON(consts.StatusOK, posts)
}

// CreatePost POST /create/post
func (h *PostHandler) CreatePost(ctx context.Context, c *app.RequestContext) {
	var req model.CreatePostReq
	if err := c.Bind(&req); err != nil {
		respondError(c, consts.StatusBadRequest, MsgInvalidBody)
		return
	}
	if !req.Complete() {
		respondError(c, consts.StatusBadRequest, MsgFieldsRequired)
		return
	}

	// 校验 user_id
	_, err := h.UserRepo.FindUserByID(ctx, req.UserID)
	switch {
	case errors.Is(err, apperrors.ErrUserNotFound):
		respondError(c, consts.StatusNotFound, MsgUserNotFound)
		return
	case err != nil:
		hlog.CtxErrorf(ctx, "Error creating post: %v", err)
		respondInternal(c)
		return
	}

	post := postmodel.Post{
		UserID:      req.UserID,
		Title:       req.Title,
		Description: req.Description,
	}
	if err := h.PostRepo.CreatePost(ctx, &post); err != nil {
		hlog.CtxErrorf(ctx, "Error creating post: %v", err)
		respondInternal(c)
		return
	}

	c.JSON(consts.StatusCreated, model.PostRes{Message: MsgPostCreated, Post: post})
}

// GetPost GET /detail/post?id=
func (h *PostHandler) GetPost(ctx context.Context, c *app.RequestContext) {
	id := c.Query("id")
	if id == "" {
		respondError(c, consts.StatusBadRequest, MsgPostIDRequired)
		return
	}

	post, err := h.PostRepo.FindPostByID(ctx, id)
	switch {
	case errors.Is(err, apperrors.ErrPostNotFound):
		respondError(c, consts.StatusNotFound, MsgPostNotFound)
		return
	case err != nil:
		hlog.CtxErrorf(ctx, "Error fetching post: %v", err)
		respondInternal(c)
		return
	}
	c.JSON(consts.StatusOK, post)
}

// UpdatePost PUT /update/post?id=
//
// The body is written through without a whitelist. Every failure, an unknown
// id included, answers 500.
func (h *PostHandler) UpdatePost(ctx context.Context, c *app.RequestContext) {
	id := c.Query("id")
	if id == "" {
		respondError(c, consts.StatusBadRequest, MsgPostIDRequired)
		return
	}

	fields, err := bodyFields(c)
	if err != nil {
		respondError(c, consts.StatusBadRequest, MsgInvalidBody)
		return
	}

	post, err := h.PostRepo.UpdatePost(ctx, id, fields)
	if err != nil {
		hlog.CtxErrorf(ctx, "Error updating post: %v", err)
		respondInternal(c)
		return
	}
	c.JSON(consts.StatusOK, model.PostRes{Message: MsgPostUpdated, Post: post})
}

// DeletePost DELETE /delete/post?id=
//
// Like UpdatePost there is no separate not-found answer.
func (h *PostHandler) DeletePost(ctx context.Context, c *app.RequestContext) {
	id := c.Query("id")
	if id == "" {
		respondError(c, consts.StatusBadRequest, MsgPostIDRequired)
		return
	}

	post, err := h.PostRepo.DeletePost(ctx, id)
	if err != nil {
		hlog.CtxErrorf(ctx, "Error deleting post: %v", err)
		respondInternal(c)
		return
	}
	c.JSON(consts.StatusOK, model.PostRes{Message: MsgPostDeleted, Post: post})
}

// bodyFields 将 JSON 对象或表单解析为字段集合；其他类型视为空
func bodyFields(c *app.RequestContext) (map[string]interface{}, error) {
	fields := make(map[string]interface{})
	contentType := string(c.ContentType())

	switch {
	case strings.HasPrefix(contentType, consts.MIMEApplicationJSON):
		body := c.Request.Body()
		if len(body) == 0 {
			return fields, nil
		}
		if err := json.Unmarshal(body, &fields); err != nil {
			return nil, err
		}
		if fields == nil {
			return nil, errors.New("body is not a JSON object")
		}
	case strings.HasPrefix(contentType, consts.MIMEApplicationHTMLForm):
		var args protocol.Args
		args.ParseBytes(c.Request.Body())
		args.VisitAll(func(key, value []byte) {
			fields[string(key)] = string(value)
		})
	}
	return fields, nil
}
