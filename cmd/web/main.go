package main

import (
	"context"
	"time"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"gorm.io/gorm"
	"mini-blog/pkg/common/config"
	"mini-blog/pkg/common/metrics"
	postdao "mini-blog/pkg/core/post/repository/dao/impl"
	"mini-blog/pkg/core/store/memory"
	usermodel "mini-blog/pkg/core/user/model"
	userdao "mini-blog/pkg/core/user/repository/dao/impl"
	"mini-blog/pkg/web/handler"
	"mini-blog/pkg/web/router"
)

const connectTimeout = 10 * time.Second

func main() {
	// 初始化配置
	cfg, err := config.Load()
	if err != nil {
		hlog.Fatalf("Failed to load config: %v", err)
	}
	hlog.SetLevel(cfg.HlogLevel())

	m := metrics.NewManager()
	deps, connect := buildDependencies(cfg, m)

	// 创建Hertz实例
	h := server.Default(
		server.WithHostPorts(cfg.Server.Address()),
		server.WithHandleMethodNotAllowed(true),
		server.WithRedirectTrailingSlash(false),
		server.WithMaxRequestBodySize(int(cfg.Middleware.MaxBodySize)),
	)

	// 注册路由
	router.RegisterAPIs(h, cfg, deps)

	// 端口先监听，数据库异步连接，不阻塞请求
	h.OnRun = append(h.OnRun, func(ctx context.Context) error {
		hlog.Infof("Server is running on %s", cfg.Server.Address())
		go connect()
		return nil
	})

	h.Spin()
}

// buildDependencies returns the collaborators for the configured driver and a
// function that establishes the database connection.
func buildDependencies(cfg *config.Config, m *metrics.Manager) (router.Dependencies, func()) {
	if cfg.Database.Driver == config.DriverMemory {
		store := memory.New()
		m.SetDatabaseUp(true)
		return router.Dependencies{Users: store, Posts: store, DB: store, Metrics: m}, func() {
			hlog.Warn("Using the in-memory store; data is lost on restart")
		}
	}

	// 仅创建句柄，不建立连接
	db, err := cfg.InitDB()
	if err != nil {
		hlog.Fatalf("Failed to initialize database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		hlog.Fatalf("Failed to get database instance: %v", err)
	}

	deps := router.Dependencies{
		Users:   userdao.NewGormUserRepository(db),
		Posts:   postdao.NewGormPostRepository(db),
		DB:      sqlDB,
		Metrics: m,
	}
	return deps, func() { connectDatabase(cfg, db, sqlDB, m) }
}

func connectDatabase(cfg *config.Config, db *gorm.DB, pinger handler.Pinger, m *metrics.Manager) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	if err := pinger.PingContext(ctx); err != nil {
		m.SetDatabaseUp(false)
		hlog.Errorf("Error connecting to the database: %v", err)
		return
	}
	m.SetDatabaseUp(true)
	hlog.Info("Connected to the database successfully")

	if cfg.Database.AutoMigrate {
		if err := usermodel.AutoMigrate(db.WithContext(ctx)); err != nil {
			hlog.Errorf("Auto migration failed: %v", err)
			return
		}
		hlog.Info("Database schema migrated")
	}
}
