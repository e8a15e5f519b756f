package domain

import (
	"encoding/json"
	"fmt"
	"sort"
)

// FieldMap is the flat, untyped form submission: snake_case keys mapped to
// strings, booleans or numbers. A nil value is treated as absent.
type FieldMap map[string]any

// MsgNoData is the error message for a submission that carries no fields.
const MsgNoData = "No data received"

// ParseFieldMap checks that raw is a flat map of primitive values. It is the
// only place where the shape of caller input is enforced. An empty map is
// valid: every field takes its default.
func ParseFieldMap(raw any) (FieldMap, error) {
	var m map[string]any
	switch v := raw.(type) {
	case nil:
		return nil, NewBadRequest(MsgNoData)
	case FieldMap:
		m = v
	case map[string]any:
		m = v
	default:
		return nil, NewBadRequest(fmt.Sprintf("expected a JSON object of fields, got %T", raw))
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make(FieldMap, len(m))
	for _, k := range keys {
		switch val := m[k].(type) {
		case nil:
			continue
		case string, bool, json.Number,
			int, int8, int16, int32, int64,
			uint, uint8, uint16, uint32, uint64,
			float32, float64:
			out[k] = val
		default:
			return nil, NewBadRequest(fmt.Sprintf("field %q must be a string, boolean or number, got %T", k, val))
		}
	}
	return out, nil
}
