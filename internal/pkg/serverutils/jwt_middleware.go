// FILE: internal/pkg/serverutils/jwt_middleware.go
package serverutils

import (
	"abhi-advisor-be/pkg/store"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// NewJwtMiddleware validates the bearer token signature and then checks
// that the token has not been revoked in the token store.
func NewJwtMiddleware(secret string, tokens store.TokenStore) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		authHeader := ctx.Get("Authorization")
		if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "Missing token"))
		}
		tokenStr := authHeader[7:]

		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			return []byte(secret), nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

		if err != nil || !token.Valid {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "Invalid token"))
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "Invalid claims"))
		}

		if tokens != nil {
			_, live, err := tokens.Get(ctx.Context(), tokenStr)
			if err != nil {
				return err
			}
			if !live {
				return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "Session expired"))
			}
		}

		ctx.Locals("user_id", claims["user_id"])
		ctx.Locals("role", claims["role"])
		ctx.Locals("token", tokenStr)
		return ctx.Next()
	}
}

// CurrentUserID reads the advisor id placed in locals by the JWT middleware.
func CurrentUserID(ctx *fiber.Ctx) string {
	if id, ok := ctx.Locals("user_id").(string); ok {
		return id
	}
	return ""
}

// NewOptionalJwtMiddleware lets anonymous requests through and validates the
// token only when an Authorization header is sent.
func NewOptionalJwtMiddleware(secret string, tokens store.TokenStore) fiber.Handler {
	strict := NewJwtMiddleware(secret, tokens)
	return func(ctx *fiber.Ctx) error {
		if ctx.Get("Authorization") == "" {
			return ctx.Next()
		}
		return strict(ctx)
	}
}
