// Package tier maps diagnostic scores onto discrete placement tiers.
//
// Two independent threshold tables coexist: one for written tests and one
// for oral-reading assessments. They use different cut points and must not
// be unified.
package tier

// Tier is a placement bucket. Tier 1 is the strongest placement, Tier 3 the
// one needing the most support.
type Tier int

const (
	Tier1 Tier = 1
	Tier2 Tier = 2
	Tier3 Tier = 3
)

// Label returns the display form used in reports ("Tier 1" .. "Tier 3").
func (t Tier) Label() string {
	switch t {
	case Tier1:
		return "Tier 1"
	case Tier2:
		return "Tier 2"
	case Tier3:
		return "Tier 3"
	default:
		return "Tier 3"
	}
}

// Written-test cut points (overall percentage score).
const (
	WrittenTier1MinScore = 80.0
	WrittenTier2MinScore = 50.0
)

// Oral-reading cut points: decoding-error counts for fluency, comprehension
// percentage for comprehension.
const (
	FluencyTier1MaxErrors = 3
	FluencyTier2MaxErrors = 7

	ComprehensionTier1MinPct = 70.0
	ComprehensionTier2MinPct = 50.0
)

// ForWrittenScore places a written-test percentage score.
func ForWrittenScore(score float64) Tier {
	switch {
	case score >= WrittenTier1MinScore:
		return Tier1
	case score >= WrittenTier2MinScore:
		return Tier2
	default:
		return Tier3
	}
}

// ForFluencyErrors places a raw decoding-error count.
func ForFluencyErrors(errorCount int) Tier {
	switch {
	case errorCount <= FluencyTier1MaxErrors:
		return Tier1
	case errorCount <= FluencyTier2MaxErrors:
		return Tier2
	default:
		return Tier3
	}
}

// ForComprehension places a comprehension percentage.
func ForComprehension(pct float64) Tier {
	switch {
	case pct >= ComprehensionTier1MinPct:
		return Tier1
	case pct >= ComprehensionTier2MinPct:
		return Tier2
	default:
		return Tier3
	}
}

// ForOralReading combines fluency and comprehension placements, taking the
// worse of the two. When no comprehension summary is available, the fluency
// tier stands alone.
func ForOralReading(errorCount int, comprehensionPct *float64) Tier {
	fluency := ForFluencyErrors(errorCount)
	if comprehensionPct == nil {
		return fluency
	}
	comprehension := ForComprehension(*comprehensionPct)
	if comprehension > fluency {
		return comprehension
	}
	return fluency
}
