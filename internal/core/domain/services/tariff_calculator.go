package services

import (
	"fmt"

	"cargo/internal/core/domain/model/country"
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// TariffCalculator is a domain service that prices an order from its weight
// and the origin country's tariff. The result is fixed on the order at
// creation time; later tariff changes never alter existing orders.
type TariffCalculator struct{}

// NewTariffCalculator creates a TariffCalculator.
func NewTariffCalculator() TariffCalculator {
	return TariffCalculator{}
}

// Calculate returns weight multiplied by the country's per-unit rate.
// Weight must be strictly positive; all arithmetic is decimal-exact.
func (TariffCalculator) Calculate(weight decimal.Decimal, tariff *country.Country) (kernel.Money, error) {
	if err := tariff.Validate(); err != nil {
		return kernel.Money{}, err
	}
	if !weight.IsPositive() {
		return kernel.Money{}, errs.NewValueIsInvalidErrorWithCause("weight",
			fmt.Errorf("%s is not greater than 0", weight.String()))
	}

	return tariff.Rate().Mul(weight), nil
}
