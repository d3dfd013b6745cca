// Package storeapi implements the public storefront surface: product
// browsing and filtering, the session cart, the WhatsApp checkout handoff
// and the live catalog feed.
package storeapi

import (
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/random"

	"github.com/greenandblue/gbstore/internal/app"
	"github.com/greenandblue/gbstore/internal/cart"
	"github.com/greenandblue/gbstore/internal/webserver"
)

// InitRouter registers every public route group.
func InitRouter() {
	registerProductRoutes()
	registerCartRoutes()
	registerCheckoutRoutes()
	registerLiveRoutes()
}

func ok(c echo.Context, data interface{}) error {
	return webserver.OK(c, data)
}

func fail(c echo.Context, status int, code, message string, detail interface{}) error {
	return webserver.Fail(c, status, code, message, detail)
}

func getApp(c echo.Context) app.AppContext {
	return webserver.GetApp(c)
}

// sessionCart binds the request's cookie session to its server-side cart,
// minting a session id on first contact.
func sessionCart(c echo.Context) (*cart.Cart, error) {
	sess, err := session.Get(webserver.SessionName, c)
	if err != nil {
		return nil, err
	}
	sid, _ := sess.Values["sid"].(string)
	if sid == "" {
		sid = random.String(24)
		sess.Values["sid"] = sid
		sess.Options = &sessions.Options{
			Path:     "/",
			MaxAge:   int((8 * 3600)),
			HttpOnly: true,
		}
		if err := sess.Save(c.Request(), c.Response()); err != nil {
			return nil, err
		}
	}
	return getApp(c).Carts().Get(sid), nil
}
