package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
)

// IdentityClaims is the principal shape the external identity gateway mints:
// a stable user id plus the profile fields needed to create the user row on
// first sight. Role is deliberately absent; it is always read from the store.
type IdentityClaims struct {
	UID      string `json:"uid"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	PhotoURL string `json:"picture,omitempty"`
	jwt.StandardClaims
}

type JWTServiceInterface interface {
	GenerateToken(claims IdentityClaims, expirationTime time.Time) (string, error)
	ValidateToken(tokenString string) (*IdentityClaims, error)
}

type JWTService struct {
	secret []byte
}

func NewJWTService(secret string) *JWTService {
	return &JWTService{secret: []byte(secret)}
}

// GenerateToken exists for the dev loop and tests; production tokens come
// from the identity gateway signed with the same shared secret.
func (s *JWTService) GenerateToken(claims IdentityClaims, expirationTime time.Time) (string, error) {
	claims.ExpiresAt = expirationTime.Unix()
	claims.Issuer = "gomarket"
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *JWTService) ValidateToken(tokenString string) (*IdentityClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &IdentityClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}
	claims, ok := token.Claims.(*IdentityClaims)
	if !ok || claims.UID == "" || claims.Email == "" {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}
