package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// MistPerSui is the number of mist (the chain's smallest unit) in one SUI.
const MistPerSui uint64 = 1_000_000_000

const maxPriceDecimals = 9

// ParsePriceToMist converts a decimal SUI amount (e.g. "0.1") to mist.
// The conversion is exact: amounts with more than nine decimal places are
// rejected rather than rounded, as are zero, negative, and non-numeric input.
func ParsePriceToMist(price string) (uint64, error) {
	s := strings.TrimSpace(price)
	if s == "" {
		return 0, errors.New("empty price")
	}
	if strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		return 0, fmt.Errorf("price must be a plain positive decimal: %q", price)
	}

	whole := s
	frac := ""
	if idx := strings.IndexByte(s, '.'); idx >= 0 {
		whole, frac = s[:idx], s[idx+1:]
	}
	if whole == "" {
		whole = "0"
	}
	if len(frac) > maxPriceDecimals {
		return 0, fmt.Errorf("price has more than %d decimal places: %q", maxPriceDecimals, price)
	}

	wholeUnits, err := strconv.ParseUint(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse price %q: %w", price, err)
	}

	// Right-pad the fractional part to nine digits so "0.1" becomes 100000000 mist.
	fracPadded := frac + strings.Repeat("0", maxPriceDecimals-len(frac))
	var fracMist uint64
	if fracPadded != "" {
		fracMist, err = strconv.ParseUint(fracPadded, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("parse price %q: %w", price, err)
		}
	}

	const maxWhole = ^uint64(0) / MistPerSui
	if wholeUnits > maxWhole {
		return 0, fmt.Errorf("price overflows: %q", price)
	}
	mist := wholeUnits*MistPerSui + fracMist
	if mist == 0 {
		return 0, errors.New("price must be greater than zero")
	}
	return mist, nil
}

// ParsePrice parses a decimal SUI amount into a float for comparisons and
// display. Storage and chain calls use ParsePriceToMist; this helper exists
// for the advisory heuristics and badge thresholds only.
func ParsePrice(price string) (float64, error) {
	s := strings.TrimSpace(price)
	if s == "" {
		return 0, errors.New("empty price")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse price %q: %w", price, err)
	}
	return v, nil
}
