package pricing

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/multierr"

	"luppolo.dev/Luppolo/pkg/model"
)

var ErrInvalidPrice = errors.New("invalid price")

// ValidateEntries checks that every price parses as a non-negative decimal.
// Sizes are free text and duplicate sizes are tolerated, so only the price
// field is checked. All offending entries are reported, not just the first.
func ValidateEntries(entries []model.PriceEntry) error {
	var errs error

	for index, entry := range entries {
		amount, err := decimal.NewFromString(entry.Price)
		if err != nil {
			multierr.AppendInto(&errs, fmt.Errorf("%w: entry %d: %q is not a decimal amount", ErrInvalidPrice, index, entry.Price))

			continue
		}

		if amount.IsNegative() {
			multierr.AppendInto(&errs, fmt.Errorf("%w: entry %d: %s is negative", ErrInvalidPrice, index, entry.Price))
		}
	}

	return errs
}
