package api

import (
	"crypto/subtle"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/nohithkv/portfolio-backend/config"
	"golang.org/x/crypto/bcrypt"
)

// The fallback secret matches the one the site has always shipped with so a
// bare local run still works. Set JWT_SECRET in any real deployment.
const fallbackJWTSecret = "your-secret-key-change-this-in-production"

const tokenTTL = 30 * 24 * time.Hour

// authority holds the single admin identity and signs/verifies the bearer
// tokens that gate every mutating endpoint. Tokens are stateless: logout is
// the client discarding its copy, and expiry forces a fresh login.
type authority struct {
	secret        []byte
	adminUser     string
	adminPass     string
	adminPassHash string
}

func newAuthority(cfg map[string]string) authority {
	return authority{
		secret:        []byte(config.GetString(cfg, "JWT_SECRET", fallbackJWTSecret)),
		adminUser:     config.GetString(cfg, "ADMIN_USER", "admin"),
		adminPass:     config.GetString(cfg, "ADMIN_PASS", "admin123"),
		adminPassHash: config.GetString(cfg, "ADMIN_PASS_HASH", ""),
	}
}

// checkCredentials reports whether the pair matches the configured admin.
// When ADMIN_PASS_HASH is set the password is compared against the bcrypt
// hash instead of the plain value.
func (a authority) checkCredentials(username, password string) bool {
	if subtle.ConstantTimeCompare([]byte(username), []byte(a.adminUser)) != 1 {
		return false
	}
	if a.adminPassHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(a.adminPassHash), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(a.adminPass)) == 1
}

// issueToken signs a 30-day HS256 token carrying the admin identity.
func (a authority) issueToken() (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   a.adminUser,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.secret)
}

// verifyToken checks signature and expiry and returns the token's subject.
func (a authority) verifyToken(raw string) (string, error) {
	parsed, err := jwt.ParseWithClaims(raw, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil {
		return "", err
	}
	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || !parsed.Valid {
		return "", jwt.ErrTokenInvalidClaims
	}
	return claims.Subject, nil
}

// credentialFromHeader extracts the bearer credential from an Authorization
// header. The frontend sends the raw token value; a `Bearer ` prefix is
// tolerated for clients that follow the convention.
func credentialFromHeader(header string) string {
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}
