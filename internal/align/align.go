// Package align detects oral-reading errors by walking a reference passage
// and a transcript in lockstep. It is a greedy, bounded-lookahead heuristic,
// not a minimum-edit-distance alignment: on pathological inputs it can report
// more errors than an optimal alignment would. Downstream fluency tiers are
// calibrated against this heuristic, so its behavior is a contract.
package align

// LookaheadWindow is how far ahead either cursor scans when repairing a
// mismatch. Widening it changes the classification of ambiguous mismatches.
const LookaheadWindow = 3

// Substitution is a reference word replaced by a different transcript word.
type Substitution struct {
	Expected string `json:"expected"`
	Actual   string `json:"actual"`
}

// Result is the classified error list for one passage/transcript pair.
type Result struct {
	Omissions           []string       `json:"omissions"`
	Substitutions       []Substitution `json:"substitutions"`
	Insertions          []string       `json:"insertions"`
	SuggestedErrorCount int            `json:"suggestedErrorCount"`
}

// Align tokenizes both strings and classifies every divergence as an
// omission, substitution, or insertion.
//
// On a mismatch, repair is attempted in a fixed order: first scan ahead in
// the reference for the transcript word (omissions), then scan ahead in the
// transcript for the reference word (insertions), and only then fall back to
// a substitution. Swapping that order changes how ambiguous mismatches are
// classified, so it is part of the contract.
func Align(referenceText, transcriptText string) Result {
	ref := Tokenize(referenceText)
	spoken := Tokenize(transcriptText)

	res := Result{
		Omissions:     []string{},
		Substitutions: []Substitution{},
		Insertions:    []string{},
	}

	i, j := 0, 0
	for i < len(ref) || j < len(spoken) {
		if i >= len(ref) {
			// Reference exhausted: everything left was added by the reader.
			res.Insertions = append(res.Insertions, spoken[j:]...)
			j = len(spoken)
			continue
		}
		if j >= len(spoken) {
			// Transcript exhausted: everything left was skipped.
			res.Omissions = append(res.Omissions, ref[i:]...)
			i = len(ref)
			continue
		}
		if ref[i] == spoken[j] {
			i++
			j++
			continue
		}

		if k := scanAhead(ref, i, spoken[j]); k > 0 {
			// The spoken word appears just ahead in the reference; the
			// words in between were omitted. The transcript cursor stays
			// put so the match is consumed on the next iteration.
			res.Omissions = append(res.Omissions, ref[i:i+k]...)
			i += k
			continue
		}
		if k := scanAhead(spoken, j, ref[i]); k > 0 {
			res.Insertions = append(res.Insertions, spoken[j:j+k]...)
			j += k
			continue
		}

		res.Substitutions = append(res.Substitutions, Substitution{
			Expected: ref[i],
			Actual:   spoken[j],
		})
		i++
		j++
	}

	res.SuggestedErrorCount = len(res.Omissions) + len(res.Substitutions) + len(res.Insertions)
	return res
}

// scanAhead looks for want in tokens[from+1 .. from+LookaheadWindow] and
// returns its offset from the cursor, or 0 when not found.
func scanAhead(tokens []string, from int, want string) int {
	for k := 1; k <= LookaheadWindow && from+k < len(tokens); k++ {
		if tokens[from+k] == want {
			return k
		}
	}
	return 0
}
