package rc

import (
	"os"
	"strings"
)

// FromEnv creates an [Overlay] from environment variables that start with prefix.
// The prefix is stripped and the remaining key is lower-cased, so with a prefix of "HELLO_" the variable "HELLO_LOG_LEVEL" is available as "log_level".
// Prefixes are compared case-insensitive.
func FromEnv(prefix string) Overlay {
	out := Overlay{}
	prefix = strings.ToLower(prefix)
	for _, entry := range os.Environ() {
		key, val, found := strings.Cut(entry, "=")
		if !found {
			continue
		}
		key = strings.ToLower(key)
		if !strings.HasPrefix(key, prefix) || len(key) == len(prefix) {
			continue
		}
		out[strings.TrimPrefix(key, prefix)] = val
	}
	return out
}
