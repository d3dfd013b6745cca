package storeapi

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/greenandblue/gbstore/internal/cart"
	"github.com/greenandblue/gbstore/internal/webserver"
)

type addItemPayload struct {
	ProductID int64 `json:"product_id,string" validate:"required"`
}

type cartView struct {
	Lines []cart.Line `json:"lines"`
	Total int64       `json:"total"`
	Count int         `json:"count"`
}

func registerCartRoutes() {
	webserver.ApiGET("/cart", getCart)
	webserver.ApiPOST("/cart/items", addCartItem)
	webserver.ApiDELETE("/cart/items/:cart_id", removeCartItem)
}

func viewOf(ct *cart.Cart) cartView {
	lines := ct.Lines()
	return cartView{Lines: lines, Total: ct.Total(), Count: len(lines)}
}

func getCart(c echo.Context) error {
	ct, err := sessionCart(c)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "SESSION_ERROR", "Failed to open cart session", err.Error())
	}
	return ok(c, viewOf(ct))
}

func addCartItem(c echo.Context) error {
	var payload addItemPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse cart item", nil)
	}
	if err := c.Validate(&payload); err != nil {
		return webserver.HandleValidationError(c, err)
	}

	// cart lines snapshot the product as currently cached, never client data
	product, found := getApp(c).CatalogCache().Get(payload.ProductID)
	if !found {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Producto no encontrado", nil)
	}

	ct, err := sessionCart(c)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "SESSION_ERROR", "Failed to open cart session", err.Error())
	}

	line, err := ct.Add(product)
	if errors.Is(err, cart.ErrOutOfStock) {
		return fail(c, http.StatusConflict, "OUT_OF_STOCK", "Este producto está agotado", nil)
	}
	if err != nil {
		return fail(c, http.StatusInternalServerError, "CART_ERROR", "Failed to add product", err.Error())
	}
	return ok(c, map[string]interface{}{"line": line, "cart": viewOf(ct)})
}

func removeCartItem(c echo.Context) error {
	cartID, err := webserver.ParseIDParam(c, "cart_id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid cart line ID", nil)
	}
	ct, err := sessionCart(c)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "SESSION_ERROR", "Failed to open cart session", err.Error())
	}
	// removing an unknown line is a no-op, mirrored as success
	ct.Remove(cartID)
	return ok(c, viewOf(ct))
}
