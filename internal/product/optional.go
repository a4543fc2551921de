package product

import (
	"encoding/json"
	"strconv"
	"strings"
)

// OptString is a tri-state JSON string: absent (Set=false), null
// (Set=true, Valid=false) or a value. A plain *string cannot distinguish
// the first two.
type OptString struct {
	Set   bool
	Valid bool
	Value string
}

func (o *OptString) UnmarshalJSON(b []byte) error {
	o.Set = true
	if string(b) == "null" {
		return nil
	}
	if err := json.Unmarshal(b, &o.Value); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

// OptNumber accepts a JSON number or a numeric string, mirroring the loose
// typing of form-driven admin clients ("1499" and 1499 are both valid).
// Null and the empty string both count as "present but cleared".
type OptNumber struct {
	Set   bool
	Valid bool
	text  string
}

func (o *OptNumber) UnmarshalJSON(b []byte) error {
	o.Set = true
	raw := strings.TrimSpace(string(b))
	if raw == "null" {
		return nil
	}
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return nil
		}
		o.text = s
		o.Valid = true
		return nil
	}
	o.text = raw
	o.Valid = true
	return nil
}

// Float64 parses the carried literal; non-numeric input is the caller's
// validation error, not a decode error.
func (o OptNumber) Float64() (float64, error) {
	return strconv.ParseFloat(o.text, 64)
}

// Int truncates toward zero, so "50" and 50.0 both yield 50.
func (o OptNumber) Int() (int, error) {
	f, err := o.Float64()
	if err != nil {
		return 0, err
	}
	return int(f), nil
}

// OptBool coerces whatever truthy value the client sent: booleans, numbers
// and the usual string spellings.
type OptBool struct {
	Set   bool
	Value bool
}

func (o *OptBool) UnmarshalJSON(b []byte) error {
	o.Set = true
	raw := strings.TrimSpace(string(b))
	if raw == "null" {
		return nil
	}

	var v bool
	if err := json.Unmarshal(b, &v); err == nil {
		o.Value = v
		return nil
	}
	var n float64
	if err := json.Unmarshal(b, &n); err == nil {
		o.Value = n != 0
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	s = strings.TrimSpace(s)
	o.Value = s != "" && s != "0" && !strings.EqualFold(s, "false")
	return nil
}
