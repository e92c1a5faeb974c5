// Package display contains terminal formatting logic for the gas watcher.
//
// Commands keep fetching and business logic separate from rendering by
// delegating all human-readable output to formatters in this package.
package display

import (
	"io"

	"github.com/fatih/color"

	"github.com/dando385/gas-watcher/internal/gas"
)

// Formatter writes formatted output to a writer.
type Formatter interface {
	Format(w io.Writer) error
}

var (
	bold   = color.New(color.Bold).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	yellow = color.New(color.FgYellow, color.Bold).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	dim    = color.New(color.Faint).SprintFunc()
)

var tierColors = map[gas.Tier]func(a ...interface{}) string{
	gas.TierLow:      color.New(color.FgGreen).SprintFunc(),
	gas.TierNormal:   color.New(color.FgYellow).SprintFunc(),
	gas.TierHigh:     color.New(color.FgMagenta).SprintFunc(),
	gas.TierVeryHigh: color.New(color.FgRed, color.Bold).SprintFunc(),
}

// ColorTier colors s according to tier.
func ColorTier(tier gas.Tier, s string) string {
	if fn, ok := tierColors[tier]; ok {
		return fn(s)
	}
	return s
}

// DisableColor turns off ANSI colors for every formatter.
func DisableColor() {
	color.NoColor = true
}
