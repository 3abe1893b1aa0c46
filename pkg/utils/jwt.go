package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"hotel-booking/internal/data/entity"
)

// AccessToken is a signed HS256 JWT plus its expiry.
type AccessToken struct {
	Token string
	Exp   time.Time
}

// TokenClaims is the identity extracted from a validated token.
type TokenClaims struct {
	UserID string
	Role   entity.UserRole
}

// NewAccessToken signs an HS256 JWT carrying the user ID (sub), role,
// expiration and issued-at claims.
func NewAccessToken(secret, userID string, role entity.UserRole, ttlMinutes int) (AccessToken, error) {
	exp := time.Now().UTC().Add(time.Duration(ttlMinutes) * time.Minute)

	claims := jwt.MapClaims{
		"sub":  userID,
		"role": string(role),
		"exp":  exp.Unix(),
		"iat":  time.Now().UTC().Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return AccessToken{}, err
	}

	return AccessToken{Token: signed, Exp: exp}, nil
}

// ParseAccessToken validates signature and expiry, then extracts the
// identity claims.
func ParseAccessToken(secret, tokenStr string) (*TokenClaims, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	sub, _ := claims["sub"].(string)
	role, _ := claims["role"].(string)
	if sub == "" || role == "" {
		return nil, fmt.Errorf("token missing identity claims")
	}

	return &TokenClaims{
		UserID: sub,
		Role:   entity.UserRole(role),
	}, nil
}
