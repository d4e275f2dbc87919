package transform

import (
	"bytes"
	"encoding/json"
)

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

func stringOr(v *string, def string) string {
	if v == nil || *v == "" {
		return def
	}
	return *v
}

// floatOr treats zero like absent, matching the upstream's use of 0 for
// unset amounts.
func floatOr(v *float64, def float64) float64 {
	if v == nil || *v == 0 {
		return def
	}
	return *v
}

// nonEmpty returns nil for nil or empty strings.
func nonEmpty(v *string) *string {
	if v == nil || *v == "" {
		return nil
	}
	return v
}

func rawOrNull(v json.RawMessage) json.RawMessage {
	if len(bytes.TrimSpace(v)) == 0 {
		return json.RawMessage("null")
	}
	return v
}

func rawOrEmptyArray(v json.RawMessage) json.RawMessage {
	t := bytes.TrimSpace(v)
	if len(t) == 0 || bytes.Equal(t, []byte("null")) {
		return json.RawMessage("[]")
	}
	return v
}

func ptr[T any](v T) *T {
	return &v
}
