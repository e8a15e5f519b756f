package normalizer

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// coerce converts a submitted value to kind. The second result is false when
// the value is blank or cannot be read as kind; the caller then keeps the
// field's default.
func coerce(kind Kind, v any) (any, bool) {
	switch kind {
	case KindString:
		return coerceString(v)
	case KindBool:
		return coerceBool(v)
	case KindInt:
		return coerceInt(v)
	}
	return nil, false
}

func coerceString(v any) (any, bool) {
	if n, ok := v.(json.Number); ok {
		v = n.String()
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return nil, false
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, false
	}
	return s, true
}

func coerceBool(v any) (any, bool) {
	switch x := v.(type) {
	case bool:
		return x, true
	case string:
		switch strings.ToLower(strings.TrimSpace(x)) {
		case "true", "t", "1", "yes", "y", "on":
			return true, true
		case "false", "f", "0", "no", "n", "off":
			return false, true
		}
		return nil, false
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return nil, false
		}
		return f != 0, true
	}
	b, err := cast.ToBoolE(v)
	if err != nil {
		return nil, false
	}
	return b, true
}

func coerceInt(v any) (any, bool) {
	switch x := v.(type) {
	case bool:
		return nil, false
	case string:
		return parseDecimal(x)
	case json.Number:
		if n, ok := parseDecimal(x.String()); ok {
			return n, true
		}
		f, err := x.Float64()
		if err != nil {
			return nil, false
		}
		return integralFloat(f)
	case float64:
		return integralFloat(x)
	case float32:
		return integralFloat(float64(x))
	}
	n, err := cast.ToIntE(v)
	if err != nil {
		return nil, false
	}
	return n, true
}

// parseDecimal reads s in base 10. Leading zeros are padding ("01521" is a
// port, not an octal literal).
func parseDecimal(s string) (any, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, false
	}
	n, err := strconv.ParseInt(s, 10, 0)
	if err != nil {
		return nil, false
	}
	return int(n), true
}

// integralFloat accepts whole numbers that fit in an int.
func integralFloat(f float64) (any, bool) {
	if f != math.Trunc(f) || f < math.MinInt || f >= math.MaxInt {
		return nil, false
	}
	return int(f), true
}
