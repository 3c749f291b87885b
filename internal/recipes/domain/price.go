package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Price is a non-negative fixed-point amount with two decimal places, stored
// as cents. The wire form is a decimal string like "5.25".
type Price int64

var (
	ErrPriceFormat   = errors.New("price must be a decimal with at most two fractional digits")
	ErrPriceNegative = errors.New("price must not be negative")
	ErrPriceTooLarge = errors.New("price exceeds the maximum of 999.99")
)

// MaxPrice matches the original column definition of five total digits.
const MaxPrice Price = 99999

// ParsePrice parses a decimal string into a Price. Anything that cannot be
// represented exactly at two decimal places is rejected.
func ParsePrice(s string) (Price, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrPriceFormat
	}

	if strings.HasPrefix(s, "-") {
		return 0, ErrPriceNegative
	}

	whole, frac, hasFrac := strings.Cut(s, ".")
	if whole == "" || (hasFrac && frac == "") {
		return 0, ErrPriceFormat
	}

	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, ErrPriceFormat
	}
	// Bound before multiplying so units*100 cannot overflow.
	if units > int64(MaxPrice)/100 {
		return 0, ErrPriceTooLarge
	}

	cents := int64(0)
	if hasFrac {
		if len(frac) > 2 {
			return 0, ErrPriceFormat
		}
		c, err := strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return 0, ErrPriceFormat
		}
		if len(frac) == 1 {
			c *= 10
		}
		cents = c
	}

	p := Price(units*100 + cents)
	if p > MaxPrice {
		return 0, ErrPriceTooLarge
	}
	return p, nil
}

// String renders the canonical wire form with exactly two decimal places.
func (p Price) String() string {
	return fmt.Sprintf("%d.%02d", int64(p)/100, int64(p)%100)
}

// Cents returns the raw cent count.
func (p Price) Cents() int64 { return int64(p) }

// PriceFromCents builds a Price from a raw cent count, as read from storage.
func PriceFromCents(cents int64) Price { return Price(cents) }
