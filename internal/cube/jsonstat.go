package cube

import "encoding/json"

// Wire representation of a JSON-stat 2.0 dataset, reduced to the fields
// the engine consumes. The dimension map is keyed by dimension code; the
// id list carries the axis order, which the map cannot.
type wireCube struct {
	ID        []string                 `json:"id"`
	Size      []int                    `json:"size"`
	Value     []*float64               `json:"value"`
	Dimension map[string]wireDimension `json:"dimension"`
}

type wireDimension struct {
	Category wireCategory `json:"category"`
}

type wireCategory struct {
	Index map[string]int    `json:"index"`
	Label map[string]string `json:"label"`
}

// DecodeJSON parses a JSON-stat 2.0 response body into a validated Cube.
//
// Dimension ordering follows the id list, not the (unordered) dimension
// map, so any axis arrangement the source chooses is accepted. Within a
// dimension, value codes are ordered by their category ordinals. A null
// value entry becomes an absent observation.
//
// Single-value dimensions may omit the category index; the sole label key
// is used in that case. Every structural violation (an id without
// dimension metadata, ordinals outside the axis, size/value mismatches)
// returns a DecodeError rather than a silently misaligned cube.
func DecodeJSON(data []byte) (*Cube, error) {
	var w wireCube
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, newDecodeError(ErrCodeBadPayload, "", "not a JSON-stat cube: %v", err)
	}
	if w.Dimension == nil || w.ID == nil {
		return nil, newDecodeError(ErrCodeBadPayload, "", "missing id or dimension block")
	}

	dims := make([]Dimension, len(w.ID))
	for i, code := range w.ID {
		wd, ok := w.Dimension[code]
		if !ok {
			return nil, newDecodeError(ErrCodeDimensionMissing, code, "id entry has no dimension metadata")
		}
		codes, err := orderedCodes(code, wd.Category)
		if err != nil {
			return nil, err
		}
		dims[i] = Dimension{Code: code, Codes: codes, Labels: wd.Category.Label}
	}

	return New(dims, w.Size, w.Value)
}

// orderedCodes arranges a category's value codes by ordinal.
func orderedCodes(dim string, cat wireCategory) ([]string, error) {
	if len(cat.Index) == 0 {
		// JSON-stat permits omitting the index for single-value dimensions.
		if len(cat.Label) == 1 {
			for code := range cat.Label {
				return []string{code}, nil
			}
		}
		return nil, newDecodeError(ErrCodeDimensionMissing, dim, "category has no index")
	}

	codes := make([]string, len(cat.Index))
	for code, ord := range cat.Index {
		if ord < 0 || ord >= len(codes) {
			return nil, newDecodeError(ErrCodeBadOrdinal, dim, "ordinal %d outside [0,%d)", ord, len(codes))
		}
		if codes[ord] != "" {
			return nil, newDecodeError(ErrCodeBadOrdinal, dim, "codes %q and %q share ordinal %d", codes[ord], code, ord)
		}
		codes[ord] = code
	}
	return codes, nil
}
