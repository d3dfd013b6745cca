package webserver

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/greenandblue/gbstore/internal/app"
)

type apiEnvelope struct {
	Code    string      `json:"code"`
	Message string      `json:"message,omitempty"`
	Detail  interface{} `json:"detail,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type pagedEnvelope struct {
	Code     string      `json:"code"`
	Data     interface{} `json:"data"`
	Total    int64       `json:"total"`
	Page     int         `json:"page"`
	PageSize int         `json:"page_size"`
}

// OK writes a success envelope.
func OK(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, apiEnvelope{Code: "OK", Data: data})
}

// Fail writes an error envelope with the given status and machine code.
func Fail(c echo.Context, status int, code, message string, detail interface{}) error {
	return c.JSON(status, apiEnvelope{Code: code, Message: message, Detail: detail})
}

// Paged writes a paginated success envelope.
func Paged(c echo.Context, rows interface{}, total int64, page, pageSize int) error {
	return c.JSON(http.StatusOK, pagedEnvelope{Code: "OK", Data: rows, Total: total, Page: page, PageSize: pageSize})
}

// ParsePagination reads page/pageSize query params with bounded defaults.
func ParsePagination(c echo.Context) (page, pageSize int) {
	page, pageSize = 1, 20
	if p, err := strconv.Atoi(c.QueryParam("page")); err == nil && p > 0 {
		page = p
	}
	if ps, err := strconv.Atoi(c.QueryParam("pageSize")); err == nil && ps > 0 && ps <= 500 {
		pageSize = ps
	}
	return page, pageSize
}

// ParseIDParam parses a path parameter as int64.
func ParseIDParam(c echo.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}

// HandleValidationError maps validator errors to a 400 envelope.
func HandleValidationError(c echo.Context, err error) error {
	return Fail(c, http.StatusBadRequest, "VALIDATION", "Request validation failed", err.Error())
}

// GetDB returns the request-scoped database handle.
func GetDB(c echo.Context) *gorm.DB {
	return c.Get("db").(*gorm.DB)
}

// GetApp returns the request-scoped application context.
func GetApp(c echo.Context) app.AppContext {
	return c.Get("appctx").(app.AppContext)
}
