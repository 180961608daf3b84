package router

import (
	"github.com/cloudwego/hertz/pkg/app/server"
	"mini-blog/pkg/common/config"
	"mini-blog/pkg/common/metrics"
	postdao "mini-blog/pkg/core/post/repository/dao"
	userdao "mini-blog/pkg/core/user/repository/dao"
	"mini-blog/pkg/web/handler"
	"mini-blog/pkg/web/middleware"
)

// Dependencies 路由所需的协作者，由调用方注入
type Dependencies struct {
	Users   userdao.UserRepository
	Posts   postdao.PostRepository
	DB      handler.Pinger
	Metrics *metrics.Manager
}

// RegisterAPIs 注册所有API路由
func RegisterAPIs(h *server.Hertz, cfg *config.Config, deps Dependencies) {
	if deps.Metrics == nil {
		deps.Metrics = metrics.NewManager()
	}

	healthHandler := handler.NewHealthCheckHandler(deps.DB, deps.Metrics)
	metricsHandler := handler.NewMetricsHandler(deps.Metrics)
	userHandler := handler.NewUserHandler(deps.Users)
	postHandler := handler.NewPostHandler(deps.Posts, deps.Users)

	// 注册全局中间件（按执行顺序）；Recovery 在 Metrics 内层，panic 产生的 500 也会被计数
	h.Use(
		middleware.LoggerMiddleware(),
		middleware.MetricsMiddleware(deps.Metrics),
		middleware.RecoveryMiddleware(cfg),
		middleware.BodyLimitMiddleware(cfg.Middleware.MaxBodySize),
		middleware.CORSMiddleware(cfg.Middleware.CORS),
	)

	// 基础接口
	h.GET("/health", healthHandler.AdvancedHealthCheck)
	h.GET("/metrics", metricsHandler.Serve)

	// 用户
	h.POST("/register", userHandler.Register)
	h.POST("/login", userHandler.Login)
	h.GET("/all/user", userHandler.ListUsers)

	// 帖子
	h.GET("/all/post", postHandler.ListPosts)
	h.POST("/create/post", postHandler.CreatePost)
	h.GET("/detail/post", postHandler.GetPost)
	h.PUT("/update/post", postHandler.UpdatePost)
	h.DELETE("/delete/post", postHandler.DeletePost)

	// 未匹配的路径与方法
	h.NoRoute(middleware.NotFoundHandler())
	h.NoMethod(middleware.NotFoundHandler())
}
