package providers

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"namecard/internal/structures"
)

// ErrUnauthorized covers both a wrong admin password and a bad or
// expired bearer token.
var ErrUnauthorized = errors.New("unauthorized")

type AuthProviderInterface interface {
	Login(password string) (string, error)
	Verify(tokenString string) error
}

// AuthProvider implements the admin auth model: the shared secret is
// exchanged once at login for an HS256 token, and every other admin call
// presents that token. The raw password is never re-checked per call.
type AuthProvider struct {
	password []byte
	secret   []byte
	ttl      time.Duration
	clock    ClockProviderInterface
}

type adminClaims struct {
	Admin bool `json:"admin"`
	jwt.RegisteredClaims
}

func NewAuthProvider(conf *structures.Config, clock ClockProviderInterface) AuthProviderInterface {
	return &AuthProvider{
		password: []byte(conf.Admin.Password),
		secret:   []byte(conf.Admin.JWTSecret),
		ttl:      conf.Admin.TokenTTL,
		clock:    clock,
	}
}

func (a *AuthProvider) Login(password string) (string, error) {
	if subtle.ConstantTimeCompare([]byte(password), a.password) != 1 {
		return "", ErrUnauthorized
	}

	now := a.clock.Now()
	claims := adminClaims{
		Admin: true,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(a.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(a.secret)
	if err != nil {
		return "", fmt.Errorf("sign admin token: %w", err)
	}
	return signed, nil
}

func (a *AuthProvider) Verify(tokenString string) error {
	var claims adminClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return a.secret, nil
	}, jwt.WithTimeFunc(a.clock.Now))
	if err != nil || !token.Valid || !claims.Admin {
		return ErrUnauthorized
	}
	return nil
}
