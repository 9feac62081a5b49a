package domain

import (
	"encoding/json"
	"strconv"
)

// AllYearsLabel is the label used when a report is not restricted to a year.
const AllYearsLabel = "All Years"

// Year is an optional calendar year used to filter reports.
// The zero value means "all years".
type Year struct {
	value int
	set   bool
}

// AllYears returns the unrestricted year filter.
func AllYears() Year {
	return Year{}
}

// YearOf returns a filter restricted to y.
func YearOf(y int) Year {
	return Year{value: y, set: true}
}

// YearFromPtr converts an optional query value into a Year.
func YearFromPtr(y *int) Year {
	if y == nil {
		return AllYears()
	}
	return YearOf(*y)
}

// IsSet reports whether the filter is restricted to a single year.
func (y Year) IsSet() bool {
	return y.set
}

// Value returns the year, or 0 when unset.
func (y Year) Value() int {
	if !y.set {
		return 0
	}
	return y.value
}

// Label returns the year as text, or AllYearsLabel when unset.
func (y Year) Label() string {
	if !y.set {
		return AllYearsLabel
	}
	return strconv.Itoa(y.value)
}

// String implements fmt.Stringer.
func (y Year) String() string {
	return y.Label()
}

// MarshalJSON encodes an unset year as null.
func (y Year) MarshalJSON() ([]byte, error) {
	if !y.set {
		return []byte("null"), nil
	}
	return json.Marshal(y.value)
}

// UnmarshalJSON accepts null or an integer.
func (y *Year) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*y = AllYears()
		return nil
	}
	var v int
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*y = YearOf(v)
	return nil
}
