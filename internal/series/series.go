package series

import (
	"iter"
	"sort"
)

// Row is one observation: a year, a region display name and a numeric
// value. Rows are produced by cube extraction and never mutated.
type Row struct {
	Year   int     `json:"year"`
	Region string  `json:"region"`
	Value  float64 `json:"value"`
}

// key identifies the aggregation group for a row.
type key struct {
	year   int
	region string
}

// Aggregate groups rows by (year, region), sums the values within each
// group, and returns the groups sorted ascending by year, then by region
// name in lexical order.
//
// Summation is deliberate: some cubes encode a concept as several additive
// components under one nominal code, and the sum recovers the intended
// total. The sort order is part of the output contract; downstream
// consumers compare series directly and snapshot them in tests.
//
// An empty input yields an empty, non-nil slice. Aggregate never turns
// absent data into zero-valued rows: a (year, region) pair with no input
// rows has no output row.
func Aggregate(rows iter.Seq[Row]) []Row {
	totals := make(map[key]float64)
	for r := range rows {
		totals[key{r.Year, r.Region}] += r.Value
	}

	out := make([]Row, 0, len(totals))
	for k, v := range totals {
		out = append(out, Row{Year: k.year, Region: k.region, Value: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].Region < out[j].Region
	})
	return out
}
