package ports

import (
	"cargo/internal/core/domain/model/account"
	"cargo/internal/core/domain/model/kernel"
)

// PasswordHasher hashes credentials at registration and verifies them at
// login. The core never sees plaintext passwords beyond these two calls.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// TokenClaims is the verified identity extracted from an access token.
// Protected operations trust these values; the core never re-derives them.
type TokenClaims struct {
	AccountID kernel.UUID
	Role      account.Role
}

// TokenSigner issues and verifies access tokens. The token format is an
// adapter concern; the core only depends on claims round-tripping.
type TokenSigner interface {
	Sign(claims TokenClaims) (string, error)
	Verify(token string) (TokenClaims, error)
}
