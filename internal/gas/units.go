// Package gas converts wei quantities into display units and classifies gas
// prices into price tiers.
package gas

import (
	"fmt"
	"math/big"
)

// WeiPerGwei is the number of wei in one gwei (10^9).
const WeiPerGwei = 1e9

const (
	UnitWei  = "wei"
	UnitGwei = "gwei"
)

// WeiToGwei converts wei to gwei with float64 division. Values needing more
// than ~15 significant digits lose precision; that is fine for display and
// must not be used for accounting.
func WeiToGwei(wei *big.Int) float64 {
	if wei == nil {
		return 0
	}
	f, _ := new(big.Float).SetInt(wei).Float64()
	return f / WeiPerGwei
}

// FormatPrice renders wei either as the exact integer in wei or as gwei with
// two decimals.
//
// Examples:
//   - 1000000000, true  -> "1000000000 wei"
//   - 1000000000, false -> "1.00 gwei"
func FormatPrice(wei *big.Int, asWei bool) string {
	if asWei {
		if wei == nil {
			return "0 " + UnitWei
		}
		return fmt.Sprintf("%s %s", wei.String(), UnitWei)
	}
	return fmt.Sprintf("%.2f %s", WeiToGwei(wei), UnitGwei)
}
