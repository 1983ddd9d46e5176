package normalize

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// Placeholder replaces missing free-text identity values such as an opponent name.
const Placeholder = "-"

var textSentinels = map[string]struct{}{
	"":     {},
	"nan":  {},
	"None": {},
	"0":    {},
	"0.0":  {},
}

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05-07",
	"2006-01-02",
}

// Float coerces a semantically numeric value to float64.
// Missing, non-numeric, NaN and infinite values become 0.
func Float(v any) float64 {
	var f float64
	switch val := v.(type) {
	case nil:
		return 0
	case float64:
		f = val
	case float32:
		f = float64(val)
	case int:
		f = float64(val)
	case int32:
		f = float64(val)
	case int64:
		f = float64(val)
	case uint:
		f = float64(val)
	case uint32:
		f = float64(val)
	case uint64:
		f = float64(val)
	case bool:
		if val {
			return 1
		}
		return 0
	case json.Number:
		parsed, err := val.Float64()
		if err != nil {
			return 0
		}
		f = parsed
	case []byte:
		return Float(string(val))
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 0
		}
		f = parsed
	default:
		return 0
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// Minutes parses a minutes value that is either already decimal or a "MM:SS" string.
// It never fails: anything unparseable or negative yields 0.
func Minutes(v any) float64 {
	var raw string
	switch val := v.(type) {
	case string:
		raw = val
	case []byte:
		raw = string(val)
	default:
		return math.Max(Float(v), 0)
	}

	raw = strings.TrimSpace(raw)
	if !strings.Contains(raw, ":") {
		return math.Max(Float(raw), 0)
	}

	parts := strings.Split(raw, ":")
	minutes, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || minutes < 0 {
		return 0
	}
	secStr := strings.TrimSpace(parts[1])
	if secStr == "" {
		return 0
	}
	seconds, err := strconv.ParseFloat(secStr, 64)
	if err != nil || seconds < 0 || math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return 0
	}
	return float64(minutes) + seconds/60.0
}

// Text coerces a free-text identity field, replacing empty sentinels with Placeholder.
func Text(v any) string {
	var s string
	switch val := v.(type) {
	case nil:
		return Placeholder
	case string:
		s = val
	case []byte:
		s = string(val)
	case float64:
		if math.IsNaN(val) {
			return Placeholder
		}
		s = strconv.FormatFloat(val, 'f', -1, 64)
		if val == math.Trunc(val) {
			s = strconv.FormatFloat(val, 'f', 1, 64)
		}
	default:
		s = stringOf(val)
	}
	s = strings.TrimSpace(s)
	if _, ok := textSentinels[s]; ok {
		return Placeholder
	}
	return s
}

// String coerces a plain text field (names) without placeholder substitution.
func String(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(val)
	case []byte:
		return strings.TrimSpace(string(val))
	default:
		return strings.TrimSpace(stringOf(val))
	}
}

// ID renders an identifier in the common string form used as a join key.
// Integral floats lose their fractional part so 190, 190.0 and "190" all match.
func ID(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case float64:
		return formatIntegral(val)
	case float32:
		return formatIntegral(float64(val))
	case json.Number:
		if f, err := val.Float64(); err == nil {
			return formatIntegral(f)
		}
		return val.String()
	}
	s := String(v)
	if strings.HasSuffix(s, ".0") {
		if _, err := strconv.ParseInt(strings.TrimSuffix(s, ".0"), 10, 64); err == nil {
			return strings.TrimSuffix(s, ".0")
		}
	}
	return s
}

// Date parses a date-like value. Invalid values become the zero time, which
// callers treat as null.
func Date(v any) time.Time {
	switch val := v.(type) {
	case time.Time:
		return val
	case *time.Time:
		if val == nil {
			return time.Time{}
		}
		return *val
	case []byte:
		return Date(string(val))
	case string:
		raw := strings.TrimSpace(val)
		if raw == "" {
			return time.Time{}
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, raw); err == nil {
				return t
			}
		}
	}
	return time.Time{}
}

// Bool coerces starter-style flags.
func Bool(v any) bool {
	switch val := v.(type) {
	case bool:
		return val
	case string:
		switch strings.ToLower(strings.TrimSpace(val)) {
		case "true", "t", "yes", "y":
			return true
		}
	}
	return Float(v) != 0
}

func formatIntegral(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return ""
	}
	if f == math.Trunc(f) {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func stringOf(v any) string {
	switch val := v.(type) {
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case json.Number:
		return val.String()
	case time.Time:
		return val.Format(time.RFC3339)
	default:
		return ""
	}
}
