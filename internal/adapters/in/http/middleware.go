package http

import (
	"net/http"
	"strings"

	"cargo/internal/core/domain/model/account"
	"cargo/internal/core/ports"

	"github.com/labstack/echo/v4"
)

const claimsContextKey = "cargo.claims"

// AuthMiddleware verifies the bearer token and stores the verified claims
// on the request context for the handlers downstream.
func AuthMiddleware(signer ports.TokenSigner) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "missing bearer token",
				})
			}

			claims, err := signer.Verify(token)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "invalid or expired token",
				})
			}

			ctx.Set(claimsContextKey, claims)
			return next(ctx)
		}
	}
}

// AdminOnly rejects requests whose verified role is not admin. It must run
// after AuthMiddleware.
func AdminOnly() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			claims, ok := claimsFrom(ctx)
			if !ok || claims.Role != account.RoleAdmin {
				return ctx.JSON(http.StatusForbidden, ErrorResponse{
					Code:    http.StatusForbidden,
					Message: "administrator access required",
				})
			}
			return next(ctx)
		}
	}
}

func claimsFrom(ctx echo.Context) (ports.TokenClaims, bool) {
	claims, ok := ctx.Get(claimsContextKey).(ports.TokenClaims)
	return claims, ok
}
