package demand

// Level is the severity tier of a daily demand value.
type Level string

const (
	LevelLow      Level = "Low"
	LevelModerate Level = "Moderate"
	LevelHigh     Level = "High"
)

// Tier thresholds in MGD. Boundaries are inclusive on the low side:
// 14.0 is Moderate, 18.0 is High.
const (
	moderateThreshold = 14.0
	highThreshold     = 18.0
)

// Classification binds a demand tier to its display colors.
type Classification struct {
	Level          Level
	LineColor      string
	BackgroundTint string
}

// Classify maps a daily demand value to its tier and colors. Total over
// all reals: negative demand classifies as Low, which is accepted edge
// behavior rather than an error.
func Classify(demand float64) Classification {
	switch {
	case demand < moderateThreshold:
		return Classification{Level: LevelLow, LineColor: "#22C55E", BackgroundTint: "#DCFCE7"}
	case demand < highThreshold:
		return Classification{Level: LevelModerate, LineColor: "#EAB308", BackgroundTint: "#FEF9C3"}
	default:
		return Classification{Level: LevelHigh, LineColor: "#EF4444", BackgroundTint: "#FEE2E2"}
	}
}
