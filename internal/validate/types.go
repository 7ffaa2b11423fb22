package validate

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Number is a numeric form field. It accepts JSON numbers and numeric strings;
// any other JSON value decodes without error and is left invalid.
type Number struct {
	Value float64
	Valid bool
}

// NumberOf is a convenience constructor for a valid Number.
func NumberOf(v float64) Number {
	return Number{Value: v, Valid: true}
}

func (n *Number) UnmarshalJSON(data []byte) error {
	*n = Number{}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch v := raw.(type) {
	case float64:
		*n = Number{Value: v, Valid: true}
	case string:
		text := strings.TrimSpace(v)
		if text == "" {
			return nil
		}
		if parsed, err := strconv.ParseFloat(text, 64); err == nil {
			*n = Number{Value: parsed, Valid: true}
		}
	}
	return nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	if !n.Valid || math.IsNaN(n.Value) || math.IsInf(n.Value, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

// Flag is a boolean form field decoded with loose truthiness: non-zero numbers,
// non-empty strings, objects and arrays are true; null, false, 0 and "" are false.
type Flag bool

func (f *Flag) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch v := raw.(type) {
	case nil:
		*f = false
	case bool:
		*f = Flag(v)
	case float64:
		*f = Flag(v != 0 && !math.IsNaN(v))
	case string:
		*f = Flag(v != "")
	default:
		*f = true
	}
	return nil
}

// OptionalBool is set only when the JSON value is literally true or false.
type OptionalBool struct {
	Value bool
	Set   bool
}

// BoolOf is a convenience constructor for a set OptionalBool.
func BoolOf(v bool) OptionalBool {
	return OptionalBool{Value: v, Set: true}
}

func (b *OptionalBool) UnmarshalJSON(data []byte) error {
	switch string(bytes.TrimSpace(data)) {
	case "true":
		*b = OptionalBool{Value: true, Set: true}
	case "false":
		*b = OptionalBool{Value: false, Set: true}
	default:
		*b = OptionalBool{}
	}
	return nil
}

func (b OptionalBool) MarshalJSON() ([]byte, error) {
	if !b.Set {
		return []byte("null"), nil
	}
	return json.Marshal(b.Value)
}
