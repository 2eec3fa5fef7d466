package auth_test

import (
	"testing"
	"time"

	"cargo/internal/adapters/out/auth"
	"cargo/internal/core/domain/model/account"
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/ports"

	"github.com/stretchr/testify/require"
)

func TestBcryptPasswordHasher_RoundTrip(t *testing.T) {
	hasher := auth.NewBcryptPasswordHasher()

	hash, err := hasher.Hash("s3cret")
	require.NoError(t, err)
	require.NotEqual(t, "s3cret", hash)

	require.NoError(t, hasher.Compare(hash, "s3cret"))
	require.Error(t, hasher.Compare(hash, "wrong"))
}

func TestBcryptPasswordHasher_HashesAreSalted(t *testing.T) {
	hasher := auth.NewBcryptPasswordHasher()

	first, err := hasher.Hash("s3cret")
	require.NoError(t, err)
	second, err := hasher.Hash("s3cret")
	require.NoError(t, err)
	require.NotEqual(t, first, second)
}

func TestJwtTokenSigner_RoundTrip(t *testing.T) {
	signer := auth.NewJwtTokenSigner([]byte("test-secret"), time.Hour)
	claims := ports.TokenClaims{AccountID: kernel.NewUUID(), Role: account.RoleAdmin}

	token, err := signer.Sign(claims)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	verified, err := signer.Verify(token)
	require.NoError(t, err)
	require.True(t, verified.AccountID.IsEqual(claims.AccountID))
	require.Equal(t, account.RoleAdmin, verified.Role)
}

func TestJwtTokenSigner_RejectsWrongSecret(t *testing.T) {
	signer := auth.NewJwtTokenSigner([]byte("test-secret"), time.Hour)
	other := auth.NewJwtTokenSigner([]byte("other-secret"), time.Hour)
	claims := ports.TokenClaims{AccountID: kernel.NewUUID(), Role: account.RoleUser}

	token, err := signer.Sign(claims)
	require.NoError(t, err)

	_, err = other.Verify(token)
	require.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestJwtTokenSigner_RejectsExpiredToken(t *testing.T) {
	signer := auth.NewJwtTokenSigner([]byte("test-secret"), -time.Minute)
	claims := ports.TokenClaims{AccountID: kernel.NewUUID(), Role: account.RoleUser}

	token, err := signer.Sign(claims)
	require.NoError(t, err)

	_, err = signer.Verify(token)
	require.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestJwtTokenSigner_RejectsGarbage(t *testing.T) {
	signer := auth.NewJwtTokenSigner([]byte("test-secret"), time.Hour)

	_, err := signer.Verify("not-a-token")
	require.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestJwtTokenSigner_RejectsInvalidClaimsOnSign(t *testing.T) {
	signer := auth.NewJwtTokenSigner([]byte("test-secret"), time.Hour)

	_, err := signer.Sign(ports.TokenClaims{})
	require.Error(t, err)
}
