package rpc

import (
	"fmt"
	"math/big"
	"strings"
)

// MaxQuantityBits is the widest hex quantity ParseHexQuantity accepts.
const MaxQuantityBits = 128

// ParseHexQuantity decodes a hex-encoded unsigned quantity such as
// "0x3b9aca00". A single "0x" (or "0X") prefix is optional and digits are
// case-insensitive.
//
// Unlike block fields, a gas price has no meaningful empty value, so "" and
// "0x" are rejected rather than read as zero. Signs, whitespace and values
// wider than MaxQuantityBits are rejected as well.
//
// Examples:
//   - "0x3b9aca00" -> 1000000000
//   - "3B9ACA00"   -> 1000000000
//   - "0x"         -> error
func ParseHexQuantity(hex string) (*big.Int, error) {
	digits := strings.TrimPrefix(strings.TrimPrefix(hex, "0x"), "0X")
	if digits == "" {
		return nil, fmt.Errorf("empty hex quantity %q", hex)
	}

	for _, r := range digits {
		if !isHexDigit(r) {
			return nil, fmt.Errorf("invalid hex digit %q in %q", r, hex)
		}
	}

	val, ok := new(big.Int).SetString(digits, 16)
	if !ok {
		return nil, fmt.Errorf("invalid hex: %s", hex)
	}
	if val.BitLen() > MaxQuantityBits {
		return nil, fmt.Errorf("value overflows %d bits: %s", MaxQuantityBits, hex)
	}
	return val, nil
}

func isHexDigit(r rune) bool {
	return ('0' <= r && r <= '9') || ('a' <= r && r <= 'f') || ('A' <= r && r <= 'F')
}
