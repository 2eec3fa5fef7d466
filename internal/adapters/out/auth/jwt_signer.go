package auth

import (
	"errors"
	"fmt"
	"time"

	"cargo/internal/core/domain/model/account"
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/ports"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every verification failure: bad signature,
// expiry, malformed claims. Callers never learn which.
var ErrInvalidToken = errors.New("invalid or expired token")

type sessionClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// JwtTokenSigner issues and verifies HMAC-signed access tokens. The
// account id travels in the subject claim, the role in a custom claim.
type JwtTokenSigner struct {
	secret []byte
	ttl    time.Duration
}

// NewJwtTokenSigner creates a signer with the given secret and token
// lifetime.
func NewJwtTokenSigner(secret []byte, ttl time.Duration) JwtTokenSigner {
	return JwtTokenSigner{secret: secret, ttl: ttl}
}

// Sign issues a token for the verified claims.
func (s JwtTokenSigner) Sign(claims ports.TokenClaims) (string, error) {
	if err := claims.AccountID.Validate(); err != nil {
		return "", err
	}
	if err := claims.Role.Validate(); err != nil {
		return "", err
	}

	now := time.Now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		Role: claims.Role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   claims.AccountID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	})

	return token.SignedString(s.secret)
}

// Verify parses and validates a token and returns its claims.
func (s JwtTokenSigner) Verify(tokenString string) (ports.TokenClaims, error) {
	var claims sessionClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return ports.TokenClaims{}, ErrInvalidToken
	}

	accountID, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return ports.TokenClaims{}, ErrInvalidToken
	}

	role, err := account.RoleFromString(claims.Role)
	if err != nil {
		return ports.TokenClaims{}, ErrInvalidToken
	}

	return ports.TokenClaims{AccountID: accountID, Role: role}, nil
}
