package http

import (
	"net/http"
	"strings"

	"laundromat/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// actingUserKey is the context key under which the authenticated user id is
// stored for downstream handlers.
const actingUserKey = "actingUserID"

// JWTAuth returns an Echo middleware that validates a Bearer access token
// signed with HS256 and injects the token's subject into the request context.
// The subject claim must carry the acting user's UUID; mutating order routes
// record it as the version author.
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "Missing bearer token",
				})
			}
			raw := strings.TrimPrefix(auth, "Bearer ")

			token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, echo.ErrUnauthorized
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				return c.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "Invalid token",
				})
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return c.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "Invalid claims",
				})
			}

			subject, _ := claims["sub"].(string)
			userID, err := kernel.UUIDFromString(subject)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "Subject claim must be a user id",
				})
			}

			c.Set(actingUserKey, userID)
			return next(c)
		}
	}
}

// actingUser extracts the authenticated user id stored by JWTAuth.
func actingUser(c echo.Context) (kernel.UUID, bool) {
	userID, ok := c.Get(actingUserKey).(kernel.UUID)
	return userID, ok
}
