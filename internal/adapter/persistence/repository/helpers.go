package repository

import (
	"fmt"
	"os"

	"github.com/geovanereis/website-gsreistecnologia/internal/usecase/interfaces"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// wrapStorageErr classifies a failed DynamoDB call as transient storage
// loss. Conditional-check misses are handled before this point; whatever
// remains is connectivity-class and must surface as such, not be swallowed.
func wrapStorageErr(op string, err error) error {
	return fmt.Errorf("dynamodb %s: %w: %v", op, interfaces.ErrStorageUnavailable, err)
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
