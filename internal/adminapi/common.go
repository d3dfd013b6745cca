// Package adminapi implements the password-gated admin surface: the login
// gate, product catalog CRUD, catalog exports, metrics and audit logs.
package adminapi

import (
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/greenandblue/gbstore/internal/app"
	"github.com/greenandblue/gbstore/internal/webserver"
)

// InitRouter registers every admin route group.
func InitRouter() {
	registerAuthRoutes()
	registerProductRoutes()
	registerExportRoutes()
	registerMetricsRoutes()
	registerLogRoutes()
}

func ok(c echo.Context, data interface{}) error {
	return webserver.OK(c, data)
}

func fail(c echo.Context, status int, code, message string, detail interface{}) error {
	return webserver.Fail(c, status, code, message, detail)
}

func paged(c echo.Context, rows interface{}, total int64, page, pageSize int) error {
	return webserver.Paged(c, rows, total, page, pageSize)
}

func parsePagination(c echo.Context) (int, int) {
	return webserver.ParsePagination(c)
}

func parseIDParam(c echo.Context, name string) (int64, error) {
	return webserver.ParseIDParam(c, name)
}

func handleValidationError(c echo.Context, err error) error {
	return webserver.HandleValidationError(c, err)
}

func GetDB(c echo.Context) *gorm.DB {
	return webserver.GetDB(c)
}

func getApp(c echo.Context) app.AppContext {
	return webserver.GetApp(c)
}
