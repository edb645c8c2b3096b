package repository

import (
	"time"
)

// Conversion helpers tolerant of the loosely-typed values the graph driver
// hands back (bolt integers arrive as int64, JSON round-trips as float64).

func toString(v any) string {
	s, _ := v.(string)
	return s
}

func toFloat64(v any) float64 {
	switch val := v.(type) {
	case float64:
		return val
	case float32:
		return float64(val)
	case int64:
		return float64(val)
	case int:
		return float64(val)
	}
	return 0
}

func toInt(v any) int {
	switch val := v.(type) {
	case int:
		return val
	case int64:
		return int(val)
	case float64:
		return int(val)
	}
	return 0
}

func toInt64(v any) int64 {
	switch val := v.(type) {
	case int64:
		return val
	case int:
		return int64(val)
	case float64:
		return int64(val)
	}
	return 0
}

func toBool(v any) bool {
	b, _ := v.(bool)
	return b
}

func toTimePtr(v any) *time.Time {
	switch val := v.(type) {
	case time.Time:
		t := val.UTC()
		return &t
	case string:
		if val == "" {
			return nil
		}
		if t, err := time.Parse(time.RFC3339, val); err == nil {
			t = t.UTC()
			return &t
		}
	}
	return nil
}

// toInventoryMap flattens the collect()-ed inventory rows into a
// bloodType -> units map. Rows produced by an unmatched OPTIONAL MATCH carry
// nil fields and are skipped.
func toInventoryMap(v any) map[string]int {
	rows, ok := v.([]any)
	if !ok {
		return map[string]int{}
	}
	inventory := make(map[string]int, len(rows))
	for _, row := range rows {
		entry, ok := row.(map[string]any)
		if !ok {
			continue
		}
		bloodType := toString(entry["bloodType"])
		if bloodType == "" {
			continue
		}
		inventory[bloodType] = toInt(entry["units"])
	}
	return inventory
}
