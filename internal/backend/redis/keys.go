package redis

import (
	"fmt"
	"strings"
)

const (
	// KeyPrefixMark is the prefix for collection document keys.
	KeyPrefixMark = "cloudmark:mark:"
)

// MarkKey returns the Redis key holding the document for a mark.
func MarkKey(mark string) string {
	return KeyPrefixMark + mark
}

// ExtractMark extracts the mark from a Redis document key.
func ExtractMark(key string) (string, error) {
	if !strings.HasPrefix(key, KeyPrefixMark) || len(key) <= len(KeyPrefixMark) {
		return "", fmt.Errorf("invalid mark key: %s", key)
	}
	return key[len(KeyPrefixMark):], nil
}
