package jwtutil

import (
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

// DefaultExpMin is the seven-day token lifetime, in minutes.
const DefaultExpMin = 60 * 24 * 7

type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type Signer struct {
	Secret []byte
	ExpMin int
}

// Sign mints an HS256 bearer token with claims {sub, role, iat, exp}.
// All timestamps are UTC.
func (s *Signer) Sign(subject, role string) (string, error) {
	now := time.Now().UTC()
	exp := now.Add(time.Duration(s.ExpMin) * time.Minute)
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.Secret)
}

// Parse verifies signature and expiry and returns the claims. Tokens
// signed with any other algorithm are rejected.
func (s *Signer) Parse(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{},
		func(t *jwt.Token) (interface{}, error) { return s.Secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, jwt.ErrTokenInvalidClaims
}
