package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Amount is a monetary value in currency-agnostic units. The remote API is
// inconsistent about how it encodes money: some endpoints return a JSON
// number, others a numeric string, and the field name drifts between
// total_amount and totalAmount. Amount absorbs both encodings on decode so
// the rest of the client deals with a single canonical field.
type Amount float64

// UnmarshalJSON accepts either a JSON number or a numeric string.
func (a *Amount) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*a = 0
		return nil
	}

	if strings.HasPrefix(s, `"`) {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("invalid amount: %w", err)
		}
		if raw == "" {
			*a = 0
			return nil
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("invalid amount %q: %w", raw, err)
		}
		*a = Amount(v)
		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("invalid amount: %w", err)
	}
	*a = Amount(v)
	return nil
}

// MarshalJSON always emits a JSON number.
func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(a))
}

// String formats the amount with two decimal places for display.
func (a Amount) String() string {
	return strconv.FormatFloat(float64(a), 'f', 2, 64)
}

// Flag is a boolean the remote encodes inconsistently: reads emit 0/1,
// writes expect true/false.
type Flag bool

// UnmarshalJSON accepts true/false, 0/1, and null.
func (f *Flag) UnmarshalJSON(data []byte) error {
	switch strings.TrimSpace(string(data)) {
	case "true", "1":
		*f = true
	case "false", "0", "null":
		*f = false
	default:
		return fmt.Errorf("invalid flag value %s", data)
	}
	return nil
}

// MarshalJSON always emits true or false.
func (f Flag) MarshalJSON() ([]byte, error) {
	return json.Marshal(bool(f))
}
