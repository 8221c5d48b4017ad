// Package normalize turns backend JSON of unknown completeness into typed
// records. Nothing here does I/O or fails: missing data becomes a default,
// a kept previous value, or an empty list.
package normalize

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Object is a decoded JSON object with synonym aware accessors. A nil Object
// answers every lookup with "absent".
type Object map[string]any

// AsObject returns v as an Object, or nil when v is not a JSON object.
func AsObject(v any) Object {
	switch t := v.(type) {
	case map[string]any:
		return Object(t)
	case Object:
		return t
	default:
		return nil
	}
}

// Value returns the first non-nil value among keys.
func (o Object) Value(keys ...string) (any, bool) {
	for _, k := range keys {
		if v, ok := o[k]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

// String returns the first key holding a scalar, stringified. Objects and
// arrays count as the wrong type and fall through to the next synonym.
func (o Object) String(keys ...string) (string, bool) {
	for _, k := range keys {
		if s, ok := scalarString(o[k]); ok {
			return s, true
		}
	}
	return "", false
}

func (o Object) StringOr(def string, keys ...string) string {
	if s, ok := o.String(keys...); ok {
		return s
	}
	return def
}

// Number returns the first key that coerces to a finite number. Numeric
// strings count; booleans do not.
func (o Object) Number(keys ...string) (float64, bool) {
	for _, k := range keys {
		if n, ok := toNumber(o[k]); ok {
			return n, true
		}
	}
	return 0, false
}

func (o Object) NumberPtr(keys ...string) *float64 {
	if n, ok := o.Number(keys...); ok {
		return &n
	}
	return nil
}

// Bool only accepts literal booleans.
func (o Object) Bool(keys ...string) *bool {
	for _, k := range keys {
		if b, ok := o[k].(bool); ok {
			return &b
		}
	}
	return nil
}

// Object returns the first key holding a JSON object.
func (o Object) Object(keys ...string) Object {
	for _, k := range keys {
		if m := AsObject(o[k]); m != nil {
			return m
		}
	}
	return nil
}

// Truthy reports whether the first present key holds a non-empty value.
func (o Object) Truthy(keys ...string) bool {
	v, ok := o.Value(keys...)
	if !ok {
		return false
	}
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return t != ""
	case json.Number:
		f, err := t.Float64()
		return err == nil && f != 0 && !math.IsNaN(f)
	case float64:
		return t != 0 && !math.IsNaN(t)
	default:
		return true
	}
}

func scalarString(v any) (string, bool) {
	switch t := v.(type) {
	case nil:
		return "", false
	case string:
		return t, true
	case json.Number:
		return t.String(), true
	case bool:
		return strconv.FormatBool(t), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case int:
		return strconv.Itoa(t), true
	case int64:
		return strconv.FormatInt(t, 10), true
	default:
		return "", false
	}
}

func toNumber(v any) (float64, bool) {
	var f float64
	switch t := v.(type) {
	case json.Number:
		n, err := t.Float64()
		if err != nil {
			return 0, false
		}
		f = n
	case float64:
		f = t
	case int:
		f = float64(t)
	case int64:
		f = float64(t)
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return 0, false
		}
		n, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		f = n
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// List accepts a bare array or an object wrapping one under the first of
// keys that holds an array. Anything else is an empty list.
func List(raw any, keys ...string) []any {
	if arr, ok := raw.([]any); ok {
		return arr
	}
	o := AsObject(raw)
	for _, k := range keys {
		if arr, ok := o[k].([]any); ok {
			return arr
		}
	}
	return nil
}
