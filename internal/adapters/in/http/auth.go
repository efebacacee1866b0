package http

import (
	"crypto/subtle"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const tokenTTL = time.Hour

// Authenticator issues and verifies the admin access token. The service has
// a single administrative account whose credentials come from the
// environment.
type Authenticator struct {
	secret        []byte
	adminUsername string
	adminPassword string
}

// NewAuthenticator creates an authenticator with the signing secret and the
// admin credentials.
func NewAuthenticator(secret, adminUsername, adminPassword string) *Authenticator {
	return &Authenticator{
		secret:        []byte(secret),
		adminUsername: adminUsername,
		adminPassword: adminPassword,
	}
}

// Login handles POST /auth/login - exchanges admin credentials for a token.
//
//	@Summary	Admin login
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		credentials	body		LoginRequest	true	"Admin credentials"
//	@Success	200			{object}	TokenResponse
//	@Failure	401			{object}	ErrorResponse
//	@Router		/auth/login [post]
func (a *Authenticator) Login(ctx echo.Context) error {
	var req LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	if !a.credentialsMatch(req.Username, req.Password) {
		return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
			Code:    http.StatusUnauthorized,
			Message: "invalid credentials",
		})
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":      "admin",
		"username": req.Username,
		"iat":      now.Unix(),
		"exp":      now.Add(tokenTTL).Unix(),
	})

	signed, err := token.SignedString(a.secret)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "failed to sign token",
		})
	}

	return ctx.JSON(http.StatusOK, TokenResponse{AccessToken: signed})
}

// Middleware returns an echo middleware that rejects requests without a
// valid bearer token.
func (a *Authenticator) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			raw, found := strings.CutPrefix(header, "Bearer ")
			if !found || raw == "" {
				return unauthorized(ctx, "missing bearer token")
			}

			token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return a.secret, nil
			})
			if err != nil || !token.Valid {
				return unauthorized(ctx, "invalid or expired token")
			}

			return next(ctx)
		}
	}
}

func (a *Authenticator) credentialsMatch(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.adminUsername)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(a.adminPassword)) == 1
	return userOK && passOK
}

func unauthorized(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
		Code:    http.StatusUnauthorized,
		Message: message,
	})
}
