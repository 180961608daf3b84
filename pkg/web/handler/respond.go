package handler

import (
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"mini-blog/pkg/web/model"
)

// 响应消息
const (
	MsgInternalError     = "Internal server error"
	MsgInvalidBody       = "Invalid request body"
	MsgUserExists        = "User already exists"
	MsgUserNotFound      = "User not found"
	MsgInvalidCredential = "Invalid credentials"
	MsgNoUsers           = "No users found"
	MsgNoPosts           = "No posts found"
	MsgFieldsRequired    = "All fields are required"
	MsgPostIDRequired    = "Post ID is required"
	MsgPostNotFound      = "Post not found"
	MsgRouteNotFound     = "Route not found"
	MsgBodyTooLarge      = "Request body too large"

	MsgRegistered  = "User registered successfully"
	MsgLoggedIn    = "Login successful"
	MsgPostCreated = "Post created successfully"
	MsgPostUpdated = "Post updated successfully"
	MsgPostDeleted = "Post deleted successfully"
)

// 统一错误响应方法
func respondError(c *app.RequestContext, code int, msg string) {
	c.JSON(code, model.MessageRes{Message: msg})
}

func respondInternal(c *app.RequestContext) {
	respondError(c, consts.StatusInternalServerError, MsgInternalError)
}
