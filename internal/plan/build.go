package plan

import (
	"errors"
	"fmt"
	"strings"

	"github.com/veksi/kuntadash/internal/match"
)

// ErrNoMetric marks a plan whose metric dimension exists but resolves to
// no value code for the requested concept. Callers must not submit such a
// plan; the defined outcome is an empty series, not a failure.
var ErrNoMetric = errors.New("no metric value matches the selector")

// Params carries the injected configuration the planner needs: how to
// recognize the special dimensions and what to select from them.
type Params struct {
	// AreaDim and YearDim are matched against dimension codes exactly
	// (case-insensitively).
	AreaDim string
	YearDim string

	// MetricHint is matched as a case-insensitive substring of a
	// dimension's code, not its labels ("tiedot" matches "Tiedot",
	// "Tiedot2" and similar revisions).
	MetricHint string

	// Regions lists the allow-listed region codes to select.
	Regions []string

	// Years lists the target year codes, in preference order.
	Years []string
}

// Plan is a buildable selection: the wire query plus the resolved metric,
// which the extractor needs to isolate the right slice of the response.
type Plan struct {
	Query      Query
	MetricDim  string // empty when the table has no metric dimension
	MetricCode string
}

// Build constructs the minimal selection for one concept.
//
// Per dimension, in metadata order:
//   - the area dimension selects exactly the allow-listed region codes
//   - the year dimension selects the intersection of the target years
//     with the available years; when the intersection is empty, the first
//     available year (forward progress beats failing outright)
//   - the metric dimension resolves the selector via match.Resolve and
//     selects that single code
//   - every other dimension selects its first value code, the
//     default/"not applicable" slot
//
// Returns ErrNoMetric when a metric dimension is present but resolution
// misses. A table without any metric dimension plans successfully with an
// empty MetricDim; such cubes carry a single concept.
func Build(meta Metadata, sel match.Selector, p Params) (*Plan, error) {
	out := &Plan{
		Query: Query{
			Query:    make([]DimensionQuery, 0, len(meta.Variables)),
			Response: ResponseFormat{Format: FormatJSONStat2},
		},
	}

	hint := strings.ToLower(p.MetricHint)

	for _, v := range meta.Variables {
		var values []string
		switch {
		case strings.EqualFold(v.Code, p.AreaDim):
			values = p.Regions

		case strings.EqualFold(v.Code, p.YearDim):
			values = intersect(p.Years, v.Values)
			if len(values) == 0 {
				if len(v.Values) == 0 {
					return nil, fmt.Errorf("year dimension %q has no values", v.Code)
				}
				values = v.Values[:1]
			}

		case hint != "" && strings.Contains(strings.ToLower(v.Code), hint):
			code, ok := match.Resolve(candidates(v), sel)
			if !ok {
				return nil, fmt.Errorf("dimension %q, keyword %q: %w", v.Code, sel.Keyword, ErrNoMetric)
			}
			out.MetricDim = v.Code
			out.MetricCode = code
			values = []string{code}

		default:
			if len(v.Values) == 0 {
				return nil, fmt.Errorf("dimension %q has no values", v.Code)
			}
			values = v.Values[:1]
		}

		out.Query.Query = append(out.Query.Query, DimensionQuery{
			Code:      v.Code,
			Selection: Selection{Filter: FilterItem, Values: values},
		})
	}

	return out, nil
}

// candidates pairs a variable's value codes with their labels. A missing
// label falls back to the code so resolution stays total.
func candidates(v Variable) []match.Candidate {
	out := make([]match.Candidate, len(v.Values))
	for i, code := range v.Values {
		label := code
		if i < len(v.ValueTexts) {
			label = v.ValueTexts[i]
		}
		out[i] = match.Candidate{Code: code, Label: label}
	}
	return out
}

// intersect keeps the targets present in available, preserving target
// order.
func intersect(targets, available []string) []string {
	have := make(map[string]bool, len(available))
	for _, a := range available {
		have[a] = true
	}
	var out []string
	for _, t := range targets {
		if have[t] {
			out = append(out, t)
		}
	}
	return out
}
