package gas

// Tier is a gas price band. Tiers are ordered from cheapest to most expensive.
type Tier int

const (
	TierLow Tier = iota
	TierNormal
	TierHigh
	TierVeryHigh
)

// Tier boundaries in gwei. Each band includes its lower bound and excludes
// its upper bound; TierVeryHigh is unbounded above.
const (
	NormalFloorGwei   = 10.0
	HighFloorGwei     = 30.0
	VeryHighFloorGwei = 100.0
)

// Classify maps a gas price in gwei to its tier.
func Classify(gwei float64) Tier {
	switch {
	case gwei < NormalFloorGwei:
		return TierLow
	case gwei < HighFloorGwei:
		return TierNormal
	case gwei < VeryHighFloorGwei:
		return TierHigh
	default:
		return TierVeryHigh
	}
}

func (t Tier) String() string {
	switch t {
	case TierLow:
		return "low"
	case TierNormal:
		return "normal"
	case TierHigh:
		return "high"
	case TierVeryHigh:
		return "very high"
	default:
		return "unknown"
	}
}

// Marker is the indicator printed in front of a price line.
func (t Tier) Marker() string {
	switch t {
	case TierLow:
		return "🟢"
	case TierNormal:
		return "🟡"
	case TierHigh:
		return "🟠"
	default:
		return "🔴"
	}
}

// ExceedsThreshold reports whether gwei is strictly above threshold.
func ExceedsThreshold(gwei, threshold float64) bool {
	return gwei > threshold
}
