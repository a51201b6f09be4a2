package schema

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Number is a numeric value that also decodes from the strings number inputs
// submit. An empty string or null leaves it unset.
type Number struct {
	Value float64
	Set   bool

	malformed bool
}

func NewNumber(v float64) Number {
	return Number{Value: v, Set: true}
}

func (n *Number) UnmarshalJSON(data []byte) error {
	*n = Number{}

	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		return nil
	}
	if strings.HasPrefix(raw, `"`) {
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		raw = strings.TrimSpace(raw)
	}
	if raw == "" {
		return nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		n.malformed = true
		return nil
	}

	n.Value, n.Set = v, true
	return nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	if !n.Set {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

func (n Number) Int() int {
	return int(n.Value)
}

// check reports a value that did not parse, or one with a fraction when whole
// numbers are expected.
func (n Number) check(field string, whole bool) error {
	if n.malformed {
		return invalid(field, "must be a number")
	}
	if whole && n.Set && n.Value != math.Trunc(n.Value) {
		return invalid(field, "must be a whole number")
	}
	return nil
}
