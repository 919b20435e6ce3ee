package tier

import "testing"

func TestForWrittenScore_Boundaries(t *testing.T) {
	cases := []struct {
		score float64
		want  Tier
	}{
		{100, Tier1},
		{80, Tier1},
		{79.99, Tier2},
		{50, Tier2},
		{49.99, Tier3},
		{0, Tier3},
	}
	for _, c := range cases {
		if got := ForWrittenScore(c.score); got != c.want {
			t.Errorf("ForWrittenScore(%v) = %v, want %v", c.score, got, c.want)
		}
	}
}

func TestForFluencyErrors_Boundaries(t *testing.T) {
	cases := []struct {
		errors int
		want   Tier
	}{
		{0, Tier1},
		{3, Tier1},
		{4, Tier2},
		{7, Tier2},
		{8, Tier3},
	}
	for _, c := range cases {
		if got := ForFluencyErrors(c.errors); got != c.want {
			t.Errorf("ForFluencyErrors(%d) = %v, want %v", c.errors, got, c.want)
		}
	}
}

func TestForComprehension_Boundaries(t *testing.T) {
	cases := []struct {
		pct  float64
		want Tier
	}{
		{70, Tier1},
		{69.9, Tier2},
		{50, Tier2},
		{49.9, Tier3},
	}
	for _, c := range cases {
		if got := ForComprehension(c.pct); got != c.want {
			t.Errorf("ForComprehension(%v) = %v, want %v", c.pct, got, c.want)
		}
	}
}

func TestForOralReading_WorseTierWins(t *testing.T) {
	// Strong fluency (2 errors → Tier 1) with weak comprehension (40% →
	// Tier 3) places at Tier 3.
	pct := 40.0
	if got := ForOralReading(2, &pct); got != Tier3 {
		t.Errorf("got %v, want Tier3", got)
	}

	// Weak fluency, strong comprehension: fluency drags the placement down.
	pct = 95.0
	if got := ForOralReading(10, &pct); got != Tier3 {
		t.Errorf("got %v, want Tier3", got)
	}
}

func TestForOralReading_NoComprehensionFallsBackToFluency(t *testing.T) {
	if got := ForOralReading(5, nil); got != Tier2 {
		t.Errorf("got %v, want Tier2", got)
	}
}

func TestLabel(t *testing.T) {
	if got := Tier1.Label(); got != "Tier 1" {
		t.Errorf("got %q, want %q", got, "Tier 1")
	}
	if got := Tier(0).Label(); got != "Tier 3" {
		t.Errorf("unknown tier: got %q, want %q", got, "Tier 3")
	}
}
