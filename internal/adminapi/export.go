package adminapi

import (
	"fmt"
	"net/http"

	"github.com/360EntSecGroup-Skylar/excelize"
	"github.com/gocarina/gocsv"
	jsoniter "github.com/json-iterator/go"
	"github.com/labstack/echo/v4"

	"github.com/greenandblue/gbstore/internal/webserver"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// registerExportRoutes registers the catalog download endpoints. JSON is the
// storefront's native export; xlsx and csv exist for spreadsheet workflows.
// There is no import counterpart.
func registerExportRoutes() {
	webserver.AdminGET("/export/json", exportCatalogJSON)
	webserver.AdminGET("/export/xlsx", exportCatalogXLSX)
	webserver.AdminGET("/export/csv", exportCatalogCSV)
}

func exportCatalogJSON(c echo.Context) error {
	products := getApp(c).CatalogCache().Snapshot()
	data, err := json.MarshalIndent(products, "", "  ")
	if err != nil {
		return fail(c, http.StatusInternalServerError, "EXPORT_ERROR", "Failed to serialize catalog", err.Error())
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="productos_green_blue.json"`)
	return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, data)
}

func exportCatalogXLSX(c echo.Context) error {
	products := getApp(c).CatalogCache().Snapshot()

	file := excelize.NewFile()
	const sheet = "Sheet1"
	headers := []string{"ID", "Name", "Category", "Price", "Image", "Stock", "Description"}
	cols := []string{"A", "B", "C", "D", "E", "F", "G"}
	for i, h := range headers {
		file.SetCellValue(sheet, cols[i]+"1", h)
	}
	for i, p := range products {
		row := fmt.Sprintf("%d", i+2)
		file.SetCellValue(sheet, "A"+row, p.ID)
		file.SetCellValue(sheet, "B"+row, p.Name)
		file.SetCellValue(sheet, "C"+row, p.Category)
		file.SetCellValue(sheet, "D"+row, p.Price)
		file.SetCellValue(sheet, "E"+row, p.Image)
		if p.Stock != nil {
			file.SetCellValue(sheet, "F"+row, *p.Stock)
		}
		file.SetCellValue(sheet, "G"+row, p.Description)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="productos_green_blue.xlsx"`)
	c.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().WriteHeader(http.StatusOK)
	if err := file.Write(c.Response()); err != nil {
		return err
	}
	return nil
}

func exportCatalogCSV(c echo.Context) error {
	products := getApp(c).CatalogCache().Snapshot()
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="productos_green_blue.csv"`)
	c.Response().Header().Set(echo.HeaderContentType, "text/csv")
	c.Response().WriteHeader(http.StatusOK)
	return gocsv.Marshal(&products, c.Response())
}
