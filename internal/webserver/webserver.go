// Package webserver hosts the echo HTTP server shared by the storefront and
// admin APIs, with route registration helpers, the admin JWT guard and the
// storefront cookie session.
package webserver

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/greenandblue/gbstore/internal/app"
)

// SessionName is the storefront cookie session holding the cart binding.
const SessionName = "gbstore_session"

type WebServer struct {
	root  *echo.Echo
	api   *echo.Group
	admin *echo.Group
	appx  app.AppContext
}

var server *WebServer

type serverValidator struct {
	validate *validator.Validate
}

func (v *serverValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

// Init builds the global web server instance around the application context.
func Init(appx app.AppContext) *WebServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = &serverValidator{validate: validator.New()}
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
	}))
	e.Use(session.Middleware(sessions.NewCookieStore([]byte(appx.Config().Web.Secret))))
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("appctx", appx)
			c.Set("db", appx.DB())
			return next(c)
		}
	})

	api := e.Group("/api")
	admin := api.Group("/admin")
	admin.Use(echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(appx.Config().Web.Secret),
		Skipper: func(c echo.Context) bool {
			// login is the one admin endpoint reachable while locked
			return strings.HasSuffix(c.Path(), "/admin/login")
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return Fail(c, http.StatusUnauthorized, "UNAUTHORIZED", "Admin session required", nil)
		},
	}))

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	server = &WebServer{root: e, api: api, admin: admin, appx: appx}
	return server
}

// Instance returns the initialized web server.
func Instance() *WebServer {
	return server
}

// Echo exposes the underlying echo instance (used by handler tests).
func (ws *WebServer) Echo() *echo.Echo {
	return ws.root
}

// Start runs the HTTP server until ctx is cancelled.
func (ws *WebServer) Start(ctx context.Context) error {
	cfg := ws.appx.Config()
	addr := fmt.Sprintf("%s:%d", cfg.Web.Host, cfg.Web.Port)
	ws.root.Server.ReadTimeout = 30 * time.Second
	ws.root.Server.WriteTimeout = 30 * time.Second

	errCh := make(chan error, 1)
	go func() {
		zap.L().Info("webserver listening", zap.String("addr", addr))
		errCh <- ws.root.Start(addr)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return ws.root.Shutdown(shutdownCtx)
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	}
}

// Public storefront API routes.

func ApiGET(path string, h echo.HandlerFunc)    { server.api.GET(path, h) }
func ApiPOST(path string, h echo.HandlerFunc)   { server.api.POST(path, h) }
func ApiPUT(path string, h echo.HandlerFunc)    { server.api.PUT(path, h) }
func ApiDELETE(path string, h echo.HandlerFunc) { server.api.DELETE(path, h) }

// Admin routes, guarded by the JWT middleware.

func AdminGET(path string, h echo.HandlerFunc)    { server.admin.GET(path, h) }
func AdminPOST(path string, h echo.HandlerFunc)   { server.admin.POST(path, h) }
func AdminPUT(path string, h echo.HandlerFunc)    { server.admin.PUT(path, h) }
func AdminDELETE(path string, h echo.HandlerFunc) { server.admin.DELETE(path, h) }
