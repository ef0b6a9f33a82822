package domain

// Tier buckets a grade for display. Each output maps it to its own colors.
type Tier int

const (
	TierLow Tier = iota
	TierMid
	TierHigh
)

func (t Tier) String() string {
	switch t {
	case TierHigh:
		return "high"
	case TierMid:
		return "mid"
	default:
		return "low"
	}
}

// TierFor returns TierHigh for grades of 5.0 and above, TierMid for 4.0 up to
// 5.0 and TierLow below 4.0.
func TierFor(value float64) Tier {
	switch {
	case value >= 5.0:
		return TierHigh
	case value >= 4.0:
		return TierMid
	default:
		return TierLow
	}
}
