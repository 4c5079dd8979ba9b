package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims are the standard JWT claims plus the identity fields every request
// needs. Role travels in the token so the RBAC middleware can authorize
// without a database lookup.
type Claims struct {
	jwt.RegisteredClaims
	AdminID string `json:"admin_id"`
	Role    string `json:"role"`
}

// Config holds everything needed to mint the two token kinds. Access and
// refresh secrets are distinct so they can be rotated independently.
type Config struct {
	AccessSecret  string
	RefreshSecret string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
	Issuer        string
}

// GenerateAccessToken signs a short-lived token carrying adminID and role.
func (c Config) GenerateAccessToken(adminID, role string) (string, error) {
	return generate(c.AccessSecret, c.Issuer, adminID, role, c.AccessTTL)
}

// GenerateRefreshToken signs a long-lived token with the same claim shape.
func (c Config) GenerateRefreshToken(adminID, role string) (string, error) {
	return generate(c.RefreshSecret, c.Issuer, adminID, role, c.RefreshTTL)
}

// ParseAccessToken validates an access token and returns its identity claims.
func (c Config) ParseAccessToken(token string) (adminID, role string, err error) {
	return parse(c.AccessSecret, token)
}

// ParseRefreshToken validates a refresh token and returns its identity claims.
func (c Config) ParseRefreshToken(token string) (adminID, role string, err error) {
	return parse(c.RefreshSecret, token)
}

func generate(secret, issuer, adminID, role string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: empty secret")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			// jti makes every mint distinct; iat/exp alone are
			// second-granular, so rotation could reissue an identical token.
			ID:        uuid.NewString(),
			Issuer:    issuer,
			Subject:   adminID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		AdminID: adminID,
		Role:    role,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func parse(secret, tokenString string) (adminID, role string, err error) {
	if secret == "" {
		return "", "", fmt.Errorf("jwt: empty secret")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", "", err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return "", "", fmt.Errorf("jwt: invalid claims")
	}
	return claims.AdminID, claims.Role, nil
}
