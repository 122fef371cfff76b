package handlers

import (
	"strconv"
	"strings"
)

// flexFloat accepts a JSON number or a numeric string; anything unparseable
// coerces to 0 rather than failing the request
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*f = 0
		return nil
	}
	*f = flexFloat(v)
	return nil
}

// flexID accepts a JSON number or numeric string as a record id. Present
// tracks whether the field appeared at all; Valid whether it parsed.
type flexID struct {
	Value   uint
	Present bool
	Valid   bool
}

func (id *flexID) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	if s == "" || s == "null" {
		return nil
	}
	id.Present = true
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return nil
	}
	id.Value = uint(v)
	id.Valid = true
	return nil
}

// parseQueryID parses a required numeric id query parameter
func parseQueryID(raw string) (uint, bool) {
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(v), true
}
