// ----------- pkg/web/handler/user_handler.go -----------
package handler

import (
	"context"
	"errors"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	apperrors "mini-blog/pkg/common/errors"
	usermodel "mini-blog/pkg/core/user/model"
	"mini-blog/pkg/core/user/repository/dao"
	"mini-blog/pkg/web/model"
)

type UserHandler struct {
	UserRepo dao.UserRepository
}

// 邮箱是唯一键查询条件，缺失时查询本身不成立
var errEmailMissing = errors.New("lookup by email requires a non-empty email")

func NewUserHandler(users dao.UserRepository) *UserHandler {
	return &UserHandler{UserRepo: users}
}

// Register POST /register
func (h *UserHandler) Register(ctx context.Context, c *app.RequestContext) {
	var req model.RegisterReq
	if err := c.Bind(&req); err != nil {
		respondError(c, consts.StatusBadRequest, MsgInvalidBody)
		return
	}

	if req.Email == "" {
		hlog.CtxErrorf(ctx, "Error during registration: %v", errEmailMissing)
		respondInternal(c)
		return
	}

	// 检查邮箱重复
	_, err := h.UserRepo.FindUserByEmail(ctx, req.Email)
	switch {
	case err == nil:
		respondError(c, consts.StatusBadRequest, MsgUserExists)
		return
	case !errors.Is(err, apperrors.ErrUserNotFound):
		hlog.CtxErrorf(ctx, "Error during registration: %v", err)
		respondInternal(c)
		return
	}

	// 创建用户记录，字段原样写入
	user := usermodel.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	}
	if err := h.UserRepo.CreateUser(ctx, &user); err != nil {
		hlog.CtxErrorf(ctx, "Error during registration: %v", err)
		respondInternal(c)
		return
	}

	c.JSON(consts.StatusCreated, model.UserRes{Message: MsgRegistered, User: user})
}

// Login POST /login. No token or session is issued.
func (h *UserHandler) Login(ctx context.Context, c *app.RequestContext) {
	var req model.LoginReq
	if err := c.Bind(&req); err != nil {
		respondError(c, consts.StatusBadRequest, MsgInvalidBody)
		return
	}

	if req.Email == "" {
		hlog.CtxErrorf(ctx, "Error during login: %v", errEmailMissing)
		respondInternal(c)
		return
	}

	user, err := h.UserRepo.FindUserByEmail(ctx, req.Email)
	switch {
	case errors.Is(err, apperrors.ErrUserNotFound):
		respondError(c, consts.StatusNotFound, MsgUserNotFound)
		return
	case err != nil:
		hlog.CtxErrorf(ctx, "Error during login: %v", err)
		respondInternal(c)
		return
	}

	// 明文逐字节比较（已知缺陷，见 usermodel.User）
	if user.Password != req.Password {
		respondError(c, consts.StatusUnauthorized, MsgInvalidCredential)
		return
	}

	c.JSON(consts.StatusOK, model.UserRes{Message: MsgLoggedIn, User: user})
}

// ListUsers GET /all/user
func (h *UserHandler) ListUsers(ctx context.Context, c *app.RequestContext) {
	users, err := h.UserRepo.ListUsersWithPosts(ctx)
	if err != nil {
		hlog.CtxErrorf(ctx, "Error fetching users: %v", err)
		respondInternal(c)
		return
	}
	if len(users) == 0 {
		respondError(c, consts.StatusNotFound, MsgNoUsers)
		return
	}

	res := make([]model.UserWithPosts, 0, len(users))
	for _, u := range users {
		res = append(res, model.NewUserWithPosts(u))
	}
	c.JSON(consts.StatusOK, res)
}
