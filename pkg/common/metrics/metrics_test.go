package metrics_test

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/smartystreets/goconvey/convey"
	"mini-blog/pkg/common/metrics"
)

func TestManager(t *testing.T) {
	convey.Convey("Given a metrics manager", t, func() {
		m := metrics.NewManager()

		convey.Convey("ObserveRequest counts by method, route and status", func() {
			m.ObserveRequest("GET", "/all/post", 200, 5*time.Millisecond)
			m.ObserveRequest("GET", "/all/post", 200, 7*time.Millisecond)
			m.ObserveRequest("GET", "/all/post", 404, time.Millisecond)

			expected := `
# HELP blog_http_requests_total Total number of HTTP requests by route, method and status
# TYPE blog_http_requests_total counter
blog_http_requests_total{method="GET",route="/all/post",status="200"} 2
blog_http_requests_total{method="GET",route="/all/post",status="404"} 1
`
			err := testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "blog_http_requests_total")
			convey.So(err, convey.ShouldBeNil)
		})

		convey.Convey("SetDatabaseUp flips the gauge", func() {
			m.SetDatabaseUp(true)
			expected := `
# HELP blog_database_up 1 when the last database ping succeeded, 0 otherwise
# TYPE blog_database_up gauge
blog_database_up 1
`
			convey.So(testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "blog_database_up"), convey.ShouldBeNil)

			m.SetDatabaseUp(false)
			expected = `
# HELP blog_database_up 1 when the last database ping succeeded, 0 otherwise
# TYPE blog_database_up gauge
blog_database_up 0
`
			convey.So(testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "blog_database_up"), convey.ShouldBeNil)
		})

		convey.Convey("A custom namespace prefixes every series", func() {
			custom := metrics.NewManager(metrics.WithNamespace("test"))
			custom.ObserveRequest("POST", "/register", 201, time.Millisecond)
			n, err := testutil.GatherAndCount(custom.Registry(), "test_http_requests_total")
			convey.So(err, convey.ShouldBeNil)
			convey.So(n, convey.ShouldEqual, 1)
		})
	})
}
