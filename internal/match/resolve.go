package match

import "strings"

// Selector describes one requested concept.
//
// Keyword is free text matched as a substring against normalized candidate
// labels. Preferred lists exact labels checked before keyword matching;
// a candidate whose normalized label equals a normalized preferred label
// wins immediately.
type Selector struct {
	Keyword   string   `yaml:"keyword" json:"keyword"`
	Preferred []string `yaml:"preferred,omitempty" json:"preferred,omitempty"`
}

// Candidate is one value of a metric dimension: a stable code and its
// display label.
type Candidate struct {
	Code  string
	Label string
}

// ageTokens flag labels that describe an age-bucketed variant of a concept
// rather than the aggregate headline figure ("15-64-vuotiaat",
// "ikäryhmittäin"). Checked against normalized labels.
var ageTokens = []string{"ika", "vuotia"}

// Resolve picks the dimension value code matching the selector.
//
// Phase 1: if any candidate's normalized label exactly equals a normalized
// preferred label, that candidate wins. Candidates are checked in order, so
// the first such candidate is returned.
//
// Phase 2: every candidate whose normalized label contains the normalized
// keyword is scored:
//
//	+1 if the raw label contains a percent sign
//	+1 if the raw label contains a comma
//	-1 if the normalized label contains an age token
//
// The highest-scoring candidate wins; on a tie, the one occurring first in
// candidate order. Percent signs and commas mark the formatted headline
// series ("Työllisyysaste, %"), which is what a dashboard wants by default.
//
// Returns ok=false when the keyword is empty or no candidate contains
// it. An unresolved
// concept is a defined outcome, not an error: some datasets legitimately
// lack a requested concept and callers degrade to an empty series.
func Resolve(candidates []Candidate, sel Selector) (code string, ok bool) {
	preferred := make([]string, len(sel.Preferred))
	for i, p := range sel.Preferred {
		preferred[i] = Normalize(p)
	}

	normalized := make([]string, len(candidates))
	for i, c := range candidates {
		normalized[i] = Normalize(c.Label)
	}

	for i, c := range candidates {
		for _, p := range preferred {
			if normalized[i] == p {
				return c.Code, true
			}
		}
	}

	keyword := Normalize(sel.Keyword)
	if keyword == "" {
		return "", false
	}

	best := -1
	bestScore := 0
	for i, c := range candidates {
		if !strings.Contains(normalized[i], keyword) {
			continue
		}
		score := scoreLabel(c.Label, normalized[i])
		if best == -1 || score > bestScore {
			best = i
			bestScore = score
		}
	}
	if best == -1 {
		return "", false
	}
	return candidates[best].Code, true
}

// scoreLabel ranks a keyword-matched candidate. Raw punctuation signals the
// formatted headline series; age tokens signal a breakout variant.
func scoreLabel(raw, normalized string) int {
	score := 0
	if strings.Contains(raw, "%") {
		score++
	}
	if strings.Contains(raw, ",") {
		score++
	}
	for _, tok := range ageTokens {
		if strings.Contains(normalized, tok) {
			score--
			break
		}
	}
	return score
}
