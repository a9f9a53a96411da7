package shop

import (
	"fmt"
	"strings"

	"github.com/osse101/MultiplierShop/internal/domain"
)

type namedValue struct {
	name  string
	value int
}

// validateQuantity checks a requested purchase amount against the shop limits.
func validateQuantity(quantity int) error {
	if quantity < domain.MinPurchaseAmount {
		return fmt.Errorf(ErrMsgInvalidQuantityFmt, quantity, domain.ErrInvalidInput)
	}
	if quantity > domain.MaxPurchaseAmount {
		return fmt.Errorf(ErrMsgQuantityExceedsMaxFmt, quantity, domain.MaxPurchaseAmount, domain.ErrInvalidInput)
	}
	return nil
}

// validateNonNegative rejects the first negative value.
func validateNonNegative(values ...namedValue) error {
	for _, v := range values {
		if v.value < 0 {
			return fmt.Errorf(ErrMsgNegativeFieldFmt, v.name, v.value, domain.ErrInvalidInput)
		}
	}
	return nil
}

// validateAtMost rejects v when its value is above limit.
func validateAtMost(v namedValue, limit int) error {
	if v.value > limit {
		return fmt.Errorf(ErrMsgFieldTooLargeFmt, v.name, v.value, limit, domain.ErrInvalidInput)
	}
	return nil
}

func validateItemQuery(query string) error {
	if strings.TrimSpace(query) == "" {
		return fmt.Errorf(ErrMsgEmptyItemFmt, domain.ErrInvalidInput)
	}
	return nil
}
