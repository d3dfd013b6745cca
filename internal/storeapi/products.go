package storeapi

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/greenandblue/gbstore/internal/catalog"
	"github.com/greenandblue/gbstore/internal/domain"
	"github.com/greenandblue/gbstore/internal/webserver"
)

func registerProductRoutes() {
	webserver.ApiGET("/products", listVisibleProducts)
	webserver.ApiGET("/categories", listCategories)
}

type productListResult struct {
	Products []domain.Product `json:"products"`
	Count    int              `json:"count"`
}

// listVisibleProducts applies the storefront filter over the catalog cache.
// An empty result is a normal response, not an error.
func listVisibleProducts(c echo.Context) error {
	categoryFilter := strings.TrimSpace(c.QueryParam("category"))
	if categoryFilter == "" {
		categoryFilter = domain.CategoryAll
	}
	query := c.QueryParam("q")

	products := getApp(c).CatalogCache().Snapshot()
	visible := catalog.Visible(products, categoryFilter, query)
	return ok(c, productListResult{Products: visible, Count: len(visible)})
}

func listCategories(c echo.Context) error {
	return ok(c, append([]string{domain.CategoryAll}, domain.Categories()...))
}
