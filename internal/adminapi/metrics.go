package adminapi

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/greenandblue/gbstore/internal/webserver"
	"github.com/greenandblue/gbstore/pkg/metrics"
)

func registerMetricsRoutes() {
	webserver.AdminGET("/metrics/:name", getMetricRange)
}

// getMetricRange returns the data points of one gauge, defaulting to the
// last hour.
func getMetricRange(c echo.Context) error {
	name := c.Param("name")
	end := time.Now().Unix()
	start := end - 3600
	if v, err := strconv.ParseInt(c.QueryParam("start"), 10, 64); err == nil && v > 0 {
		start = v
	}
	if v, err := strconv.ParseInt(c.QueryParam("end"), 10, 64); err == nil && v > 0 {
		end = v
	}

	points, err := metrics.GetRange(name, start, end)
	if err != nil {
		// no data in range is an empty series, not a failure
		return ok(c, []interface{}{})
	}
	return ok(c, points)
}
