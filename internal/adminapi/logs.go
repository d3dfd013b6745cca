package adminapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/greenandblue/gbstore/internal/domain"
	"github.com/greenandblue/gbstore/internal/webserver"
)

func registerLogRoutes() {
	webserver.AdminGET("/logs", listAdminLogs)
}

func listAdminLogs(c echo.Context) error {
	page, pageSize := parsePagination(c)

	db := GetDB(c).Model(&domain.AdminLog{})
	if action := c.QueryParam("action"); action != "" {
		db = db.Where("action = ?", action)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query logs", err.Error())
	}

	var rows []domain.AdminLog
	if err := db.Order("opt_time DESC").Offset((page - 1) * pageSize).Limit(pageSize).Find(&rows).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query logs", err.Error())
	}

	return paged(c, rows, total, page, pageSize)
}
