package storeapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/greenandblue/gbstore/internal/checkout"
	"github.com/greenandblue/gbstore/internal/webserver"
)

func registerCheckoutRoutes() {
	webserver.ApiPOST("/checkout", checkoutCart)
}

// checkoutCart builds the WhatsApp handoff for the session cart. The cart is
// left untouched; whether the client opens the link is not our concern.
func checkoutCart(c echo.Context) error {
	ct, err := sessionCart(c)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "SESSION_ERROR", "Failed to open cart session", err.Error())
	}
	lines := ct.Lines()
	if len(lines) == 0 {
		return fail(c, http.StatusBadRequest, "EMPTY_CART", "Tu carrito está vacío", nil)
	}

	appx := getApp(c)
	phone := appx.GetSettingsStringValue("storefront", "whatsapp_phone")
	if phone == "" {
		phone = appx.Config().Storefront.WhatsappPhone
	}

	handoff := checkout.Build(phone, lines, ct.Total())
	return ok(c, handoff)
}
