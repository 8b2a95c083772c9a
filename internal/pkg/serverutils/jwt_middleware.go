package serverutils

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const SessionIDKey = "session_id"

// IssueSessionToken signs a token that grants access to one editor session.
// It has no exp claim: the session expires in the repository after its TTL
// of inactivity, and lookups of an expired session fail with not found.
func IssueSessionToken(secret, sessionID string) (string, error) {
	claims := jwt.MapClaims{
		SessionIDKey: sessionID,
		"iat":        time.Now().Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ParseSessionToken validates tokenStr and returns the session id it carries.
func ParseSessionToken(secret, tokenStr string) (string, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.ErrUnauthorized
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Invalid claims")
	}

	sessionID, ok := claims[SessionIDKey].(string)
	if !ok || sessionID == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Token missing session_id")
	}
	return sessionID, nil
}

// JwtMiddleware accepts the token from the Authorization header, or from
// the "token" query parameter for browser WebSocket handshakes.
func JwtMiddleware(secret string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		tokenStr := ctx.Query("token")
		if authHeader := ctx.Get("Authorization"); len(authHeader) > 7 && authHeader[:7] == "Bearer " {
			tokenStr = authHeader[7:]
		}
		if tokenStr == "" {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(fiber.StatusUnauthorized, "Missing token"))
		}

		sessionID, err := ParseSessionToken(secret, tokenStr)
		if err != nil {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(fiber.StatusUnauthorized, err.Error()))
		}

		ctx.Locals(SessionIDKey, sessionID)
		return ctx.Next()
	}
}
