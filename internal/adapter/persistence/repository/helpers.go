package repository

import (
	"encoding/json"
	"os"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Field coercion helpers for raw store records. Airtable-style stores are
// loosely typed, so every read tolerates a missing or differently-typed cell.

func stringField(fields map[string]any, key string) string {
	if v, ok := fields[key].(string); ok {
		return v
	}
	return ""
}

func stringFieldOr(fields map[string]any, key, def string) string {
	if v := stringField(fields, key); v != "" {
		return v
	}
	return def
}

func numberField(fields map[string]any, key string) (float64, bool) {
	switch v := fields[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

func numberFieldOr(fields map[string]any, key string, def float64) float64 {
	if v, ok := numberField(fields, key); ok {
		return v
	}
	return def
}

func intField(fields map[string]any, key string) int {
	v, _ := numberField(fields, key)
	return int(v)
}

func boolField(fields map[string]any, key string) bool {
	v, ok := fields[key].(bool)
	return ok && v
}

// decodeJSONField parses a catalog field into out. The cell may hold a
// JSON-encoded string (the common case for long-text columns) or an already
// structured value. Parse failures leave out untouched; catalog degradation
// is lenient by contract.
func decodeJSONField[T any](fields map[string]any, key string, out *T) {
	raw, ok := fields[key]
	if !ok || raw == nil {
		return
	}

	var data []byte
	switch v := raw.(type) {
	case string:
		data = []byte(v)
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return
		}
		data = encoded
	}

	var parsed T
	if err := json.Unmarshal(data, &parsed); err != nil {
		return
	}
	*out = parsed
}
