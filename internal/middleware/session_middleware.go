package middleware

import (
	"strings"
	"time"

	"sistem-pengajuan/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const SessionCookie = "session_token"

// Session me-resolve identity dari cookie session (fallback: header Bearer).
// Request tanpa identity yang valid selalu berhenti di sini dengan 401,
// handler di belakangnya tidak pernah menyentuh data.
func Session(cfg config.AppConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Cookies(SessionCookie)

		// Fallback untuk API client non-browser
		if tokenString == "" {
			authHeader := c.Get("Authorization")
			if authHeader != "" {
				tokenString = strings.Replace(authHeader, "Bearer ", "", 1)
			}
		}

		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false, "message": "Sesi tidak ditemukan, silakan login",
			})
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.ErrUnauthorized
			}
			return []byte(cfg.JWTSecret), nil
		})

		if err != nil || !token.Valid {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false, "message": "Sesi tidak valid atau kadaluwarsa",
			})
		}

		claims := token.Claims.(jwt.MapClaims)
		userID, _ := claims["user_id"].(string)
		if userID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false, "message": "Sesi tidak valid atau kadaluwarsa",
			})
		}

		c.Locals("user_id", userID)
		c.Locals("email", claims["email"])
		c.Locals("role", claims["role"])

		// Refresh transparan: kalau token mau habis (< 6 jam), terbitkan
		// cookie baru supaya sesi browser tidak putus di tengah hari kerja.
		if exp, errExp := claims.GetExpirationTime(); errExp == nil && exp != nil {
			if time.Until(exp.Time) < 6*time.Hour {
				role, _ := claims["role"].(string)
				email, _ := claims["email"].(string)
				if fresh, errTok := GenerateToken(cfg, userID, email, role); errTok == nil {
					SetSessionCookie(c, fresh, cfg.TokenTTL)
				}
			}
		}

		return c.Next()
	}
}

// Helper untuk membuat JWT sesi
func GenerateToken(cfg config.AppConfig, userID, email, role string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"role":    role,
		"exp":     time.Now().Add(time.Duration(cfg.TokenTTL) * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWTSecret))
}

func SetSessionCookie(c *fiber.Ctx, token string, ttlHours int) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Expires:  time.Now().Add(time.Duration(ttlHours) * time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})
}

func ClearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})
}
