package adminapi

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/greenandblue/gbstore/internal/webserver"
	"github.com/greenandblue/gbstore/pkg/common"
)

const adminTokenTTL = 24 * time.Hour

type loginPayload struct {
	Password string `json:"password" validate:"required"`
}

type loginResult struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

func registerAuthRoutes() {
	webserver.AdminPOST("/login", adminLogin)
	webserver.AdminPOST("/logout", adminLogout)
}

// gateUnlocks is the whole admin gate: a constant-time comparison of the
// submitted password against the shared static secret. Both sides are salted
// and hashed first so the raw secret never reaches the comparison. The secret
// is a documented placeholder, not a security boundary.
func gateUnlocks(submitted, secret string) bool {
	if secret == "" {
		return false
	}
	salt := common.GetSecretSalt()
	a := common.Sha256HashWithSalt(submitted, salt)
	b := common.Sha256HashWithSalt(secret, salt)
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

func adminLogin(c echo.Context) error {
	var payload loginPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse login parameters", nil)
	}
	if err := c.Validate(&payload); err != nil {
		return handleValidationError(c, err)
	}

	appx := getApp(c)
	if !gateUnlocks(payload.Password, appx.Config().Storefront.AdminPassword) {
		appx.AuditLog("admin", "login_failed", c.RealIP())
		return fail(c, http.StatusUnauthorized, "BAD_PASSWORD", "Contraseña incorrecta", nil)
	}

	expires := time.Now().Add(adminTokenTTL)
	claims := jwt.RegisteredClaims{
		Subject:   "admin",
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(expires),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(appx.Config().Web.Secret))
	if err != nil {
		return fail(c, http.StatusInternalServerError, "TOKEN_ERROR", "Failed to issue admin token", err.Error())
	}

	appx.AuditLog("admin", "login", c.RealIP())
	return ok(c, loginResult{Token: token, ExpiresAt: expires})
}

// adminLogout returns the gate to locked. The token is discarded client-side;
// the call exists so the transition is audited.
func adminLogout(c echo.Context) error {
	appx := getApp(c)
	appx.AuditLog("admin", "logout", c.RealIP())
	return ok(c, map[string]interface{}{"logged_out": true})
}
