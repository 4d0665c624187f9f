package Config

import (
	"errors"
	"strings"
)

var errReadBytesNotSupported = errors.New("Config: ReadBytes not supported by map provider, use Read() instead")

// mapProvider is a koanf provider over an in-memory map with dotted keys.
type mapProvider map[string]any

func (m mapProvider) ReadBytes() ([]byte, error) {
	return nil, errReadBytesNotSupported
}

// Read unflattens the dotted keys so they merge with nested file values.
func (m mapProvider) Read() (map[string]any, error) {
	out := make(map[string]any)
	for k, v := range m {
		cur := out
		parts := strings.Split(k, ".")
		for _, p := range parts[:len(parts)-1] {
			next, ok := cur[p].(map[string]any)
			if !ok {
				next = make(map[string]any)
				cur[p] = next
			}
			cur = next
		}
		cur[parts[len(parts)-1]] = v
	}
	return out, nil
}
