package entity

import (
	"bytes"
	"encoding/json"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// LooseInt is an optional integer read from form-style JSON. It accepts a
// number, a numeric string, or "" and null, which both mean no value.
// Present records that the key appeared in the payload at all.
type LooseInt struct {
	Value   int64
	Valid   bool
	Present bool
}

// NewLooseInt returns a LooseInt holding v.
func NewLooseInt(v int64) LooseInt {
	return LooseInt{Value: v, Valid: true, Present: true}
}

func (n *LooseInt) UnmarshalJSON(b []byte) error {
	*n = LooseInt{Present: true}
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return nil
	}

	raw := string(b)
	kind := "number"
	if len(b) > 0 && b[0] == '"' {
		kind = "string"
		if err := json.Unmarshal(b, &raw); err != nil {
			return err
		}
		raw = strings.TrimSpace(raw)
		if raw == "" {
			return nil
		}
	}

	v, ok := parseWhole(raw)
	if !ok {
		return &json.UnmarshalTypeError{Value: kind, Type: reflect.TypeOf(int64(0))}
	}
	n.Value, n.Valid = v, true
	return nil
}

func (n LooseInt) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatInt(n.Value, 10)), nil
}

// Ptr returns the value, or nil when none was given.
func (n LooseInt) Ptr() *int64 {
	if !n.Valid {
		return nil
	}
	v := n.Value
	return &v
}

func parseWhole(s string) (int64, bool) {
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return v, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) || math.Abs(f) >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}
