package priority

// Tier is the urgency band a priority value falls into.
type Tier string

const (
	TierHigh   Tier = "high"   // priority 1..3
	TierMedium Tier = "medium" // priority 4..7
	TierLow    Tier = "low"    // priority 8..10 and anything unexpected
)

// Presentation color tokens per tier.
const (
	ColorHigh   = "red"
	ColorMedium = "yellow"
	ColorLow    = "blue"
)

// Classify maps a priority value to its urgency tier. It is total over
// all integers: anything outside the known bands falls back to TierLow.
func Classify(priority int) Tier {
	switch {
	case priority >= 1 && priority <= 3:
		return TierHigh
	case priority >= 4 && priority <= 7:
		return TierMedium
	default:
		return TierLow
	}
}

// Color returns the presentation color token for the tier.
func (t Tier) Color() string {
	switch t {
	case TierHigh:
		return ColorHigh
	case TierMedium:
		return ColorMedium
	default:
		return ColorLow
	}
}
