package auth

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// SessionCookieName is the cookie carrying the session payload.
const SessionCookieName = "session"

// SessionMaxAge is the fixed session lifetime.
const SessionMaxAge = 7 * 24 * time.Hour

var ErrInvalidSession = errors.New("invalid session")

// Claims is the session payload: who is logged in and as what.
type Claims struct {
	UIN  string            `json:"uin"`
	Role string            `json:"role"`
	User map[string]string `json:"user,omitempty"`
}

// Codec turns claims into a cookie value and back. PlainCodec keeps the
// historical unsigned JSON payload; SignedCodec wraps the same claim
// shape in an HMAC-signed token so the cookie cannot be forged. The
// server picks one at startup based on whether SESSION_SECRET is set.
type Codec interface {
	Issue(claims Claims) (string, error)
	Verify(token string) (Claims, error)
}

// PlainCodec serializes claims as bare JSON. The payload is client
// readable and carries no integrity protection.
type PlainCodec struct{}

func (PlainCodec) Issue(claims Claims) (string, error) {
	b, err := json.Marshal(claims)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (PlainCodec) Verify(token string) (Claims, error) {
	var claims Claims
	if err := json.Unmarshal([]byte(token), &claims); err != nil {
		return Claims{}, ErrInvalidSession
	}
	return claims, nil
}

// SignedCodec issues HS256 tokens with the session claims embedded.
type SignedCodec struct {
	Secret []byte
}

type signedClaims struct {
	UIN  string            `json:"uin"`
	Role string            `json:"role"`
	User map[string]string `json:"user,omitempty"`
	jwt.RegisteredClaims
}

func (c SignedCodec) Issue(claims Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, signedClaims{
		UIN:  claims.UIN,
		Role: claims.Role,
		User: claims.User,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(SessionMaxAge)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "gloriousfuture",
		},
	})
	return token.SignedString(c.Secret)
}

func (c SignedCodec) Verify(tokenString string) (Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &signedClaims{}, func(t *jwt.Token) (interface{}, error) {
		return c.Secret, nil
	})
	if err != nil || !token.Valid {
		return Claims{}, ErrInvalidSession
	}
	sc, ok := token.Claims.(*signedClaims)
	if !ok {
		return Claims{}, ErrInvalidSession
	}
	return Claims{UIN: sc.UIN, Role: sc.Role, User: sc.User}, nil
}

// NewCodec picks the signed codec when a secret is configured and falls
// back to the historical plaintext payload otherwise.
func NewCodec(secret string) Codec {
	if secret != "" {
		return SignedCodec{Secret: []byte(secret)}
	}
	return PlainCodec{}
}

// SetSessionCookie issues the session cookie: HTTP-only, strict
// same-site, 7-day max-age.
func SetSessionCookie(c *fiber.Ctx, value string) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookieName,
		Value:    value,
		Path:     "/",
		Expires:  time.Now().Add(SessionMaxAge),
		MaxAge:   int(SessionMaxAge.Seconds()),
		HTTPOnly: true,
		SameSite: "Strict",
	})
}

// ClearSessionCookie overwrites the cookie with an empty value and an
// immediate expiry. Works the same whether or not a session existed.
func ClearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		MaxAge:   -1,
		HTTPOnly: true,
		SameSite: "Strict",
	})
}
