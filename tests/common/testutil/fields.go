//go:build unit || e2e

package testutil

type nullValue struct{}

// Null sets a field to JSON null instead of removing it.
var Null = nullValue{}

// Field replaces a key; a nil value removes the key altogether.
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		switch value.(type) {
		case nil:
			delete(m, key)
		case nullValue:
			m[key] = nil
		default:
			m[key] = value
		}
	}
}
