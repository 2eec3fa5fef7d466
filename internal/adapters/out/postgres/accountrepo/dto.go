// Package accountrepo persists account aggregates through GORM. It maps
// between the domain model and the accounts table, including the money
// columns stored as exact numerics.
package accountrepo

import (
	"time"

	"cargo/internal/core/domain/model/account"
	"cargo/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountDTO is the database row for an account aggregate. Email and
// cabinet code carry unique indexes; those constraints are the final word
// on duplicates, whatever the use case layer pre-checked.
type AccountDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Email        string          `gorm:"uniqueIndex;not null"`
	PasswordHash string          `gorm:"not null"`
	FirstName    string          `gorm:"not null"`
	LastName     string          `gorm:"not null"`
	PhoneNumber  string          `gorm:"not null"`
	Address      string          `gorm:"not null"`
	Role         string          `gorm:"not null"`
	CabinetID    string          `gorm:"uniqueIndex;not null"`
	Balance      decimal.Decimal `gorm:"type:numeric;not null"`
	CreatedAt    time.Time       `gorm:"not null"`
}

// TableName overrides GORM's default naming to use "accounts".
func (AccountDTO) TableName() string {
	return "accounts"
}

func fromDomain(aggregate *account.Account) AccountDTO {
	return AccountDTO{
		ID:           aggregate.ID().Bytes(),
		Email:        aggregate.Email(),
		PasswordHash: aggregate.PasswordHash(),
		FirstName:    aggregate.FirstName(),
		LastName:     aggregate.LastName(),
		PhoneNumber:  aggregate.PhoneNumber(),
		Address:      aggregate.Address(),
		Role:         aggregate.Role().String(),
		CabinetID:    aggregate.CabinetID().String(),
		Balance:      aggregate.Balance().Amount(),
		CreatedAt:    aggregate.CreatedAt(),
	}
}

func toDomain(dto AccountDTO) (*account.Account, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role, err := account.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	cabinetID, err := kernel.NewCabinetID(dto.CabinetID)
	if err != nil {
		return nil, err
	}

	balance, err := kernel.NewMoney(dto.Balance)
	if err != nil {
		return nil, err
	}

	return account.RestoreAccount(
		id,
		dto.Email,
		dto.PasswordHash,
		dto.FirstName,
		dto.LastName,
		dto.PhoneNumber,
		dto.Address,
		role,
		cabinetID,
		balance,
		dto.CreatedAt,
	)
}
