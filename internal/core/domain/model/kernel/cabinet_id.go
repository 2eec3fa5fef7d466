package kernel

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"cargo/internal/pkg/errs"
)

// CabinetIDLength is the fixed length of every cabinet code.
const CabinetIDLength = 8

// cabinetIDAlphabet omits the visually ambiguous characters 0, I, L, and O.
// Identifiers are labels, not secrets; the space is large enough that
// collisions stay negligible at any realistic account population.
const cabinetIDAlphabet = "123456789ABCDEFGHJKMNPQRSTUVWXYZ"

// ErrCabinetIDIsNotConstructed indicates a zero-value CabinetID.
var ErrCabinetIDIsNotConstructed = errs.NewValueIsRequiredError(
	"CabinetID must be created via NewCabinetID or GenerateCabinetID")

// CabinetID is the human-readable code that identifies an account's cabinet.
// Orders reference their owner by cabinet code rather than by account id.
// Codes are normalized to uppercase and immutable once assigned.
type CabinetID struct {
	value string
}

// NewCabinetID parses and normalizes a cabinet code. The input is uppercased
// and must be exactly CabinetIDLength characters from the cabinet alphabet.
func NewCabinetID(value string) (CabinetID, error) {
	normalized := strings.ToUpper(strings.TrimSpace(value))
	if normalized == "" {
		return CabinetID{}, errs.NewValueIsRequiredError("cabinetId")
	}
	if len(normalized) != CabinetIDLength {
		return CabinetID{}, errs.NewValueIsInvalidErrorWithCause("cabinetId",
			fmt.Errorf("%q is not %d characters long", normalized, CabinetIDLength))
	}
	for _, r := range normalized {
		if !strings.ContainsRune(cabinetIDAlphabet, r) {
			return CabinetID{}, errs.NewValueIsInvalidErrorWithCause("cabinetId",
				fmt.Errorf("%q contains character %q outside the cabinet alphabet", normalized, r))
		}
	}
	return CabinetID{value: normalized}, nil
}

// GenerateCabinetID produces a random cabinet code candidate. Uniqueness is
// not guaranteed here; the allocator checks candidates against persisted
// codes and the storage schema enforces the constraint at insert time.
func GenerateCabinetID() CabinetID {
	var b strings.Builder
	b.Grow(CabinetIDLength)
	for i := 0; i < CabinetIDLength; i++ {
		b.WriteByte(cabinetIDAlphabet[rand.IntN(len(cabinetIDAlphabet))])
	}
	return CabinetID{value: b.String()}
}

// String returns the normalized cabinet code.
func (c CabinetID) String() string {
	return c.value
}

// IsEqual reports whether two cabinet codes are the same.
func (c CabinetID) IsEqual(other CabinetID) bool {
	return c.value == other.value
}

// Validate returns ErrCabinetIDIsNotConstructed for the zero value.
func (c CabinetID) Validate() error {
	if c.value == "" {
		return ErrCabinetIDIsNotConstructed
	}
	return nil
}
