package middleware

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/golang-jwt/jwt/v5"

	"resume-builder/internal/domain"
	"resume-builder/internal/port"
)

// JWTConfig holds JWT middleware configuration.
type JWTConfig struct {
	Secret    string
	Issuer    string
	ExpiresIn time.Duration
}

// Claims is the JWT payload: registered claims plus the user's email.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// JWTMiddleware creates a Fiber middleware that validates bearer tokens
// and injects a UserContext into request locals.
func JWTMiddleware(cfg JWTConfig) fiber.Handler {
	return func(c fiber.Ctx) error {
		var token string

		authHeader := c.Get("Authorization")
		if authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
				token = parts[1]
			}
		}

		// Fallback: ?token= query param (for clients that can't set headers)
		if token == "" {
			token = c.Query("token")
		}

		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "missing authorization",
			})
		}

		claims, err := ValidateToken(token, cfg)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		c.Locals("user", &domain.UserContext{
			UserID: claims.Subject,
			Email:  claims.Email,
		})

		return c.Next()
	}
}

// GetUserContext extracts the UserContext from Fiber locals.
func GetUserContext(c fiber.Ctx) *domain.UserContext {
	u, ok := c.Locals("user").(*domain.UserContext)
	if !ok {
		return nil
	}
	return u
}

// GenerateToken creates a new signed HS256 token for the given user.
func GenerateToken(user *domain.User, cfg JWTConfig) (string, error) {
	now := time.Now()
	claims := Claims{
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			Issuer:    cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(cfg.ExpiresIn)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(cfg.Secret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken parses and verifies a token, returning its claims.
func ValidateToken(tokenStr string, cfg JWTConfig) (*Claims, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(cfg.Secret), nil
	}, jwt.WithIssuer(cfg.Issuer), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", port.ErrTokenInvalid, err)
	}
	if !token.Valid {
		return nil, port.ErrTokenInvalid
	}
	if claims.Subject == "" || claims.Email == "" {
		return nil, port.ErrTokenInvalid
	}
	return &claims, nil
}
