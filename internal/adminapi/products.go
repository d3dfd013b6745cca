package adminapi

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/greenandblue/gbstore/internal/catalog"
	"github.com/greenandblue/gbstore/internal/domain"
	"github.com/greenandblue/gbstore/internal/webserver"
)

type productPayload struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Price       int64  `json:"price"`
	Image       string `json:"image"`
	Stock       *int   `json:"stock"`
	Description string `json:"description"`
}

// registerProductRoutes registers the catalog CRUD endpoints. Create and
// replace are explicit operations chosen by the route, never inferred from
// the payload: a stale id on PUT is 404, not a silent duplicate insert.
func registerProductRoutes() {
	webserver.AdminGET("/products", listProducts)
	webserver.AdminGET("/products/:id", getProduct)
	webserver.AdminPOST("/products", createProduct)
	webserver.AdminPUT("/products/:id", updateProduct)
	webserver.AdminDELETE("/products/:id", deleteProduct)
}

// checkPayload enforces the admin form contract: name, price and image must
// all be present before any store call is attempted.
func checkPayload(p *productPayload) (string, bool) {
	p.Name = strings.TrimSpace(p.Name)
	p.Image = strings.TrimSpace(p.Image)
	if p.Name == "" {
		return "Name is required", false
	}
	if p.Price <= 0 {
		return "Price must be a positive amount in whole pesos", false
	}
	if p.Image == "" {
		return "Image URL is required", false
	}
	if !domain.ValidCategory(p.Category) {
		return fmt.Sprintf("Category must be one of %v", domain.Categories()), false
	}
	if p.Stock != nil && *p.Stock < 0 {
		return "Stock must be zero or positive", false
	}
	return "", true
}

func (p *productPayload) toInput() catalog.ProductInput {
	return catalog.ProductInput{
		Name:        p.Name,
		Category:    p.Category,
		Price:       p.Price,
		Image:       p.Image,
		Stock:       p.Stock,
		Description: strings.TrimSpace(p.Description),
	}
}

func listProducts(c echo.Context) error {
	page, pageSize := parsePagination(c)

	products := getApp(c).CatalogCache().Snapshot()
	if q := strings.TrimSpace(c.QueryParam("q")); q != "" {
		products = catalog.Visible(products, domain.CategoryAll, q)
	}
	if cat := strings.TrimSpace(c.QueryParam("category")); cat != "" {
		products = catalog.Visible(products, cat, "")
	}

	total := int64(len(products))
	start := (page - 1) * pageSize
	if start > len(products) {
		start = len(products)
	}
	end := start + pageSize
	if end > len(products) {
		end = len(products)
	}
	return paged(c, products[start:end], total, page, pageSize)
}

func getProduct(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid product ID", nil)
	}
	p, err := getApp(c).CatalogStore().Get(c.Request().Context(), id)
	if errors.Is(err, catalog.ErrNotFound) {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Product not found", nil)
	}
	if err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query product", err.Error())
	}
	return ok(c, p)
}

func createProduct(c echo.Context) error {
	var payload productPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse product", err.Error())
	}
	if msg, valid := checkPayload(&payload); !valid {
		return fail(c, http.StatusBadRequest, "VALIDATION", msg, nil)
	}

	appx := getApp(c)
	id, err := appx.CatalogStore().Create(c.Request().Context(), payload.toInput())
	if err != nil {
		zap.L().Error("product create failed", zap.String("name", payload.Name), zap.Error(err))
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to create product", err.Error())
	}
	appx.AuditLog("admin", "product_create", fmt.Sprintf("id=%d name=%s", id, payload.Name))
	return ok(c, map[string]interface{}{"id": id})
}

func updateProduct(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid product ID", nil)
	}
	var payload productPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse product", err.Error())
	}
	if msg, valid := checkPayload(&payload); !valid {
		return fail(c, http.StatusBadRequest, "VALIDATION", msg, nil)
	}

	appx := getApp(c)
	err = appx.CatalogStore().Replace(c.Request().Context(), id, payload.toInput())
	if errors.Is(err, catalog.ErrNotFound) {
		// the record was deleted elsewhere mid-edit; the client decides
		// whether to re-create, the server never does it silently
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Product no longer exists", nil)
	}
	if err != nil {
		zap.L().Error("product update failed", zap.Int64("id", id), zap.Error(err))
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to update product", err.Error())
	}
	appx.AuditLog("admin", "product_update", fmt.Sprintf("id=%d name=%s", id, payload.Name))
	return ok(c, map[string]interface{}{"id": id})
}

func deleteProduct(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid product ID", nil)
	}
	// the confirmation step is enforced here so no client can skip it
	if c.QueryParam("confirm") != "true" {
		return fail(c, http.StatusBadRequest, "CONFIRM_REQUIRED", "Deletion requires confirm=true", nil)
	}

	appx := getApp(c)
	err = appx.CatalogStore().Delete(c.Request().Context(), id)
	if errors.Is(err, catalog.ErrNotFound) {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Product not found", nil)
	}
	if err != nil {
		zap.L().Error("product delete failed", zap.Int64("id", id), zap.Error(err))
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to delete product", err.Error())
	}
	appx.AuditLog("admin", "product_delete", fmt.Sprintf("id=%d", id))
	return ok(c, map[string]interface{}{"id": id})
}
