// Package dto defines the JSON request and response bodies of the v1 API.
package dto

import (
	"bytes"
	"encoding/json"
)

// render formats v as its type name followed by its JSON body.
func render(name string, v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return name + "{!" + err.Error() + "}"
	}
	return name + string(data)
}

// anyMapEqual compares two property maps by their JSON encoding, so a map
// that went through a JSON round trip equals the original.
func anyMapEqual(a, b map[string]any) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}
	x, errA := json.Marshal(a)
	y, errB := json.Marshal(b)
	if errA != nil || errB != nil {
		return false
	}
	return bytes.Equal(x, y)
}
