package display

import (
	"fmt"
	"io"
	"math/big"

	"github.com/dando385/gas-watcher/internal/gas"
)

// BannerFormatter prints the startup header.
type BannerFormatter struct {
	Version  string
	Provider string
	URL      string
}

func (f *BannerFormatter) Format(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "🔮 %s\n", bold("Gas Watcher v"+f.Version)); err != nil {
		return err
	}
	endpoint := MaskURL(f.URL)
	if f.Provider != "" {
		endpoint = fmt.Sprintf("%s %s", endpoint, dim("("+f.Provider+")"))
	}
	_, err := fmt.Fprintf(w, "RPC: %s\n\n", cyan(endpoint))
	return err
}

// PriceFormatter prints one poll result: tier marker followed by the price.
type PriceFormatter struct {
	Wei   *big.Int
	AsWei bool
}

func (f *PriceFormatter) Format(w io.Writer) error {
	tier := gas.Classify(gas.WeiToGwei(f.Wei))
	formatted := gas.FormatPrice(f.Wei, f.AsWei)
	_, err := fmt.Fprintf(w, "%s Gas Price: %s\n", tier.Marker(), ColorTier(tier, formatted))
	return err
}

// AlertFormatter prints the threshold alert line.
type AlertFormatter struct {
	Gwei      float64
	Threshold float64
}

func (f *AlertFormatter) Format(w io.Writer) error {
	msg := fmt.Sprintf("ALERT: Gas price (%.2f gwei) exceeds threshold (%.2f gwei)!", f.Gwei, f.Threshold)
	_, err := fmt.Fprintf(w, "⚠️  %s\n", yellow(msg))
	return err
}

// ErrorFormatter prints a failed poll.
type ErrorFormatter struct {
	Err error
}

func (f *ErrorFormatter) Format(w io.Writer) error {
	_, err := fmt.Fprintf(w, "❌ %s %v\n", red("Error fetching gas price:"), f.Err)
	return err
}
