package handler

import (
	"context"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/adaptor"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"mini-blog/pkg/common/metrics"
)

// Pinger is satisfied by *sql.DB and the memory store.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// PingerFunc adapts a function to Pinger.
type PingerFunc func(ctx context.Context) error

func (f PingerFunc) PingContext(ctx context.Context) error { return f(ctx) }

type HealthCheckHandler struct {
	db      Pinger
	metrics *metrics.Manager
}

func NewHealthCheckHandler(db Pinger, m *metrics.Manager) *HealthCheckHandler {
	return &HealthCheckHandler{db: db, metrics: m}
}

type HealthStatus struct {
	Status     string            `json:"status"`
	Timestamp  time.Time         `json:"timestamp"`
	Uptime     string            `json:"uptime"`
	Components []ComponentStatus `json:"components,omitempty"`
}

type ComponentStatus struct {
	Name    string        `json:"name"`
	Status  string        `json:"status"`
	IsCore  bool          `json:"is_core"`
	Latency time.Duration `json:"latency,omitempty"`
	Error   string        `json:"error,omitempty"`
}

var startupTime = time.Now()

// AdvancedHealthCheck GET /health
func (h *HealthCheckHandler) AdvancedHealthCheck(ctx context.Context, c *app.RequestContext) {
	status := HealthStatus{
		Status:     "healthy",
		Timestamp:  time.Now().UTC(),
		Uptime:     time.Since(startupTime).Round(time.Second).String(),
		Components: []ComponentStatus{h.checkDatabase(ctx)},
	}

	if hasCriticalErrors(status.Components) {
		status.Status = "degraded"
		c.JSON(consts.StatusServiceUnavailable, status)
		return
	}

	c.JSON(consts.StatusOK, status)
}

func (h *HealthCheckHandler) checkDatabase(ctx context.Context) ComponentStatus {
	comp := ComponentStatus{Name: "database", Status: "ok", IsCore: true}
	start := time.Now()
	err := h.db.PingContext(ctx)
	comp.Latency = time.Since(start)
	if err != nil {
		comp.Status = "down"
		comp.Error = err.Error()
		hlog.CtxWarnf(ctx, "health check: database ping failed: %v", err)
	}
	if h.metrics != nil {
		h.metrics.SetDatabaseUp(err == nil)
	}
	return comp
}

func hasCriticalErrors(components []ComponentStatus) bool {
	for _, comp := range components {
		// 核心组件状态异常或任意组件发生严重错误
		if (comp.IsCore && comp.Status != "ok") || comp.Status == "critical" {
			return true
		}
	}
	return false
}

// MetricsHandler GET /metrics，复用 promhttp
type MetricsHandler struct {
	metrics *metrics.Manager
}

func NewMetricsHandler(m *metrics.Manager) *MetricsHandler {
	return &MetricsHandler{metrics: m}
}

func (h *MetricsHandler) Serve(ctx context.Context, c *app.RequestContext) {
	req, err := adaptor.GetCompatRequest(&c.Request)
	if err != nil {
		hlog.CtxErrorf(ctx, "metrics: convert request: %v", err)
		respondInternal(c)
		return
	}
	h.metrics.Handler().ServeHTTP(adaptor.GetCompatResponseWriter(&c.Response), req.WithContext(ctx))
}
