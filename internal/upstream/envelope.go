package upstream

import (
	"bytes"
	"encoding/json"
)

type envelope struct {
	Status string          `json:"status"`
	Data   json.RawMessage `json:"data"`
}

// unwrap returns X for a {status:"success", data:X} body and the body itself
// for anything else.
func unwrap(raw []byte) []byte {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return raw
	}

	var env envelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return raw
	}
	if env.Status == "success" && len(env.Data) > 0 {
		return env.Data
	}
	return raw
}
