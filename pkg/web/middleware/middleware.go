package middleware

import (
	"context"
	"fmt"
	"runtime/debug"
	"strings"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/hertz-contrib/cors"
	"mini-blog/pkg/common/config"
	"mini-blog/pkg/common/metrics"
	"mini-blog/pkg/web/handler"
)

// unmatchedRoute labels requests that hit no registered route.
const unmatchedRoute = "unmatched"

// LoggerMiddleware 结构化的请求日志记录
func LoggerMiddleware() app.HandlerFunc {
	return func(c context.Context, ctx *app.RequestContext) {
		start := time.Now()
		ctx.Next(c) // 放行到后续处理器
		latency := time.Since(start)

		hlog.CtxInfof(c, "| %3d | %13v | %15s | %-7s | %s | UA=%s",
			ctx.Response.StatusCode(),
			latency,
			ctx.ClientIP(),
			ctx.Method(),
			ctx.Path(),
			ctx.GetHeader("User-Agent"),
		)
	}
}

// RecoveryMiddleware 异常捕获；非生产环境附带错误与堆栈
func RecoveryMiddleware(cfg *config.Config) app.HandlerFunc {
	return func(c context.Context, ctx *app.RequestContext) {
		defer func() {
			if err := recover(); err != nil {
				stack := string(debug.Stack())
				hlog.CtxErrorf(c, "[PANIC RECOVERED] %v\n%s", err, stack)

				body := map[string]interface{}{
					"message": handler.MsgInternalError,
				}
				if !cfg.IsProd() {
					body["error"] = fmt.Sprintf("%v", err)
					body["stack"] = strings.Split(stack, "\n")
				}
				ctx.AbortWithStatusJSON(consts.StatusInternalServerError, body)
			}
		}()
		ctx.Next(c)
	}
}

// CORSMiddleware 跨域配置；AllowOrigins 含 "*" 时放行所有来源
func CORSMiddleware(corsConfig config.CORSConfig) app.HandlerFunc {
	cc := cors.Config{
		AllowOrigins:     corsConfig.AllowOrigins,
		AllowMethods:     corsConfig.AllowMethods,
		AllowHeaders:     corsConfig.AllowHeaders,
		ExposeHeaders:    corsConfig.ExposeHeaders,
		AllowCredentials: corsConfig.AllowCredentials,
		MaxAge:           corsConfig.MaxAge,
	}
	for _, origin := range corsConfig.AllowOrigins {
		if origin == "*" {
			cc.AllowAllOrigins = true
			cc.AllowOrigins = nil
			cc.AllowCredentials = false
			break
		}
	}
	if !cc.AllowAllOrigins && len(cc.AllowOrigins) == 0 {
		cc.AllowAllOrigins = true
	}
	return cors.New(cc)
}

// BodyLimitMiddleware 请求体大小限制
func BodyLimitMiddleware(maxBodySize int64) app.HandlerFunc {
	return func(c context.Context, ctx *app.RequestContext) {
		if int64(ctx.Request.Header.ContentLength()) > maxBodySize {
			hlog.CtxWarnf(c, "request body exceeds max size path=%s", ctx.Path())
			ctx.AbortWithStatusJSON(consts.StatusRequestEntityTooLarge, map[string]interface{}{
				"message": handler.MsgBodyTooLarge,
			})
			return
		}
		ctx.Next(c)
	}
}

// MetricsMiddleware 记录请求数与耗时，路由标签使用注册时的路径模板
func MetricsMiddleware(m *metrics.Manager) app.HandlerFunc {
	return func(c context.Context, ctx *app.RequestContext) {
		start := time.Now()
		ctx.Next(c)

		route := ctx.FullPath()
		if route == "" {
			route = unmatchedRoute
		}
		m.ObserveRequest(string(ctx.Method()), route, ctx.Response.StatusCode(), time.Since(start))
	}
}

// NotFoundHandler 未匹配的路径或方法统一返回 404
func NotFoundHandler() app.HandlerFunc {
	return func(c context.Context, ctx *app.RequestContext) {
		ctx.AbortWithStatusJSON(consts.StatusNotFound, map[string]interface{}{
			"message": handler.MsgRouteNotFound,
		})
	}
}
