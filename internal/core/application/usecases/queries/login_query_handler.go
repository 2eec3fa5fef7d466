package queries

import (
	"context"
	"errors"

	"cargo/internal/core/domain/model/account"
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrInvalidCredentials is returned for both an unknown email and a wrong
// password. Login never reveals which half of the credential failed.
var ErrInvalidCredentials = errors.New("invalid email or password")

// LoginQueryHandler verifies credentials and issues an access token.
// It reads the account row directly; no aggregate state changes on login.
type LoginQueryHandler struct {
	db     *gorm.DB
	hasher ports.PasswordHasher
	signer ports.TokenSigner
}

// NewLoginQueryHandler creates a handler for credential verification.
func NewLoginQueryHandler(db *gorm.DB, hasher ports.PasswordHasher, signer ports.TokenSigner) LoginQueryHandler {
	return LoginQueryHandler{db: db, hasher: hasher, signer: signer}
}

// Handle verifies the credentials and returns the signed session.
func (h LoginQueryHandler) Handle(ctx context.Context, query LoginQuery) (LoginQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return LoginQueryResponse{}, err
	}

	var row struct {
		ID           uuid.UUID
		Email        string
		PasswordHash string
		FirstName    string
		LastName     string
		Role         string
		CabinetID    string
		Balance      string
	}

	result := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			email,
			password_hash,
			first_name,
			last_name,
			role,
			cabinet_id,
			balance
		FROM accounts
		WHERE email = ?
	`, query.Email()).Scan(&row)
	if result.Error != nil {
		return LoginQueryResponse{}, result.Error
	}
	if result.RowsAffected == 0 {
		return LoginQueryResponse{}, ErrInvalidCredentials
	}

	if err := h.hasher.Compare(row.PasswordHash, query.Password()); err != nil {
		return LoginQueryResponse{}, ErrInvalidCredentials
	}

	accountID, err := kernel.UUIDFromBytes(row.ID[:])
	if err != nil {
		return LoginQueryResponse{}, err
	}

	role, err := account.RoleFromString(row.Role)
	if err != nil {
		return LoginQueryResponse{}, err
	}

	token, err := h.signer.Sign(ports.TokenClaims{AccountID: accountID, Role: role})
	if err != nil {
		return LoginQueryResponse{}, err
	}

	return LoginQueryResponse{
		Token:     token,
		AccountID: accountID,
		Email:     row.Email,
		FirstName: row.FirstName,
		LastName:  row.LastName,
		Role:      role.String(),
		CabinetID: row.CabinetID,
		Balance:   row.Balance,
	}, nil
}
