package cube

import (
	"iter"
	"strconv"

	"github.com/veksi/kuntadash/internal/series"
)

// MetricFilter isolates one concept's slice out of a cube whose metric
// dimension interleaves many concepts along a single axis.
type MetricFilter struct {
	Dim  string // metric dimension code
	Code string // selected value code within it
}

// Extract walks every present value of the cube and emits one row per
// observation that survives the filters:
//
//   - with a MetricFilter, only indices whose metric coordinate equals the
//     selected code's position pass
//   - the area coordinate is mapped to its region code and then to a
//     display name through the allow-list; regions outside the list (for
//     example national aggregates) are dropped
//   - the year coordinate's label is parsed as an integer
//
// The result is a lazy, finite, restartable sequence with no ordering
// guarantee; ordering is imposed by series.Aggregate. Extraction never
// panics for a well-formed cube: a missing area or year dimension, an
// unknown metric code, or a cube with no present values all yield an
// empty sequence.
func Extract(c *Cube, areaDim, yearDim string, metric *MetricFilter, regions map[string]string) iter.Seq[series.Row] {
	area, areaPos, areaOK := c.Dim(areaDim)
	year, yearPos, yearOK := c.Dim(yearDim)

	metricPos, metricOrd := -1, -1
	metricOK := true
	if metric != nil {
		md, pos, ok := c.Dim(metric.Dim)
		if !ok {
			metricOK = false
		} else {
			metricPos = pos
			metricOrd = ordinalOf(md, metric.Code)
			metricOK = metricOrd >= 0
		}
	}

	return func(yield func(series.Row) bool) {
		if !areaOK || !yearOK || !metricOK {
			return
		}
		for i, v := range c.Values {
			if v == nil {
				continue
			}
			coords := Coords(i, c.Sizes)
			if metricPos >= 0 && coords[metricPos] != metricOrd {
				continue
			}

			name, ok := regions[area.Codes[coords[areaPos]]]
			if !ok {
				continue
			}

			yearCode := year.Codes[coords[yearPos]]
			label := year.Labels[yearCode]
			if label == "" {
				label = yearCode
			}
			y, err := strconv.Atoi(label)
			if err != nil {
				continue
			}

			if !yield(series.Row{Year: y, Region: name, Value: *v}) {
				return
			}
		}
	}
}

// ordinalOf returns the axis position of a value code, or -1.
func ordinalOf(d Dimension, code string) int {
	for i, c := range d.Codes {
		if c == code {
			return i
		}
	}
	return -1
}
