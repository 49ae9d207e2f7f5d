package plan

// Metadata is the dimension metadata a PxWeb table endpoint returns on
// GET: the table title and its variables in axis order.
type Metadata struct {
	Title     string     `json:"title"`
	Variables []Variable `json:"variables"`
}

// Variable is one dimension of the table: its code, display text, and the
// parallel value code / value label lists.
type Variable struct {
	Code       string   `json:"code"`
	Text       string   `json:"text"`
	Values     []string `json:"values"`
	ValueTexts []string `json:"valueTexts"`
	Time       bool     `json:"time,omitempty"`
}

// Query is the outbound PxWeb selection request: one entry per dimension
// plus the requested response format.
type Query struct {
	Query    []DimensionQuery `json:"query"`
	Response ResponseFormat   `json:"response"`
}

// DimensionQuery selects specific value codes of one dimension.
type DimensionQuery struct {
	Code      string    `json:"code"`
	Selection Selection `json:"selection"`
}

// Selection carries the PxWeb filter mode and the selected value codes.
// The planner always emits item filters; wildcard modes defeat the point
// of planning a minimal slice.
type Selection struct {
	Filter string   `json:"filter"`
	Values []string `json:"values"`
}

// ResponseFormat tags the response encoding the caller can decode.
type ResponseFormat struct {
	Format string `json:"format"`
}

// FilterItem selects explicitly listed value codes.
const FilterItem = "item"

// FormatJSONStat2 is the cube encoding the engine decodes.
const FormatJSONStat2 = "json-stat2"
