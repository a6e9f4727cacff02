package query

// Filter keys understood by the engine. Anything else fails closed.
const (
	FilterMake      = "make"
	FilterModel     = "model"
	FilterColour    = "colour"
	FilterEquipment = "equipment"
	FilterYear      = "year"
	FilterDoors     = "doors"
	FilterOwners    = "owners"
	FilterBid       = "startingBid"
	FilterMileage   = "mileage"
)

// Direction of a sort
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Range is an inclusive numeric interval. A nil bound is open.
type Range struct {
	Min *float64 `json:"min,omitempty"`
	Max *float64 `json:"max,omitempty"`
}

// Value is a single filter predicate: either free text (substring or
// exact match depending on the field) or a numeric range. An empty
// value matches everything and is ignored by the filter stage.
type Value struct {
	Text  string `json:"text,omitempty"`
	Range *Range `json:"range,omitempty"`
}

// IsEmpty reports whether the value constrains nothing
func (v Value) IsEmpty() bool {
	return v.Text == "" && (v.Range == nil || (v.Range.Min == nil && v.Range.Max == nil))
}

// Text builds a text filter value
func Text(s string) Value {
	return Value{Text: s}
}

// Between builds an inclusive range filter value
func Between(min, max *float64) Value {
	return Value{Range: &Range{Min: min, Max: max}}
}

// Filters maps filter keys to predicate values
type Filters map[string]Value

// Clone returns a shallow copy so snapshots stay independent of later
// mutations
func (f Filters) Clone() Filters {
	if f == nil {
		return nil
	}
	out := make(Filters, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

// Sort selects the single active ordering
type Sort struct {
	Field     string    `json:"field"`
	Direction Direction `json:"direction"`
}

// Pagination is a 1-based page window
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// Criteria bundles everything the pipeline needs besides the catalog
type Criteria struct {
	Filters    Filters    `json:"filters"`
	Sort       *Sort      `json:"sort"`
	Pagination Pagination `json:"pagination"`
}
