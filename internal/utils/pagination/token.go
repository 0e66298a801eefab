package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
)

const tokenPrefix = "after"

// EncodeCodeToken creates a base64 encoded token pointing just past a currency code.
// Listings are ordered by code, so the last code of a page is enough to resume.
func EncodeCodeToken(code string) string {
	tokenStr := fmt.Sprintf("%s|%s", tokenPrefix, code)
	return base64.RawURLEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeCodeToken parses a token back into the code it points past.
func DecodeCodeToken(token string) (string, error) {
	decodedBytes, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return "", fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	parts := strings.SplitN(string(decodedBytes), "|", 2)
	if len(parts) != 2 || parts[0] != tokenPrefix {
		return "", fmt.Errorf("invalid pagination token format (split)")
	}
	if !isCode(parts[1]) {
		return "", fmt.Errorf("invalid pagination token format (code %q)", parts[1])
	}
	return parts[1], nil
}

// Page returns at most limit items of sorted that come after the token's
// position, plus the token of the following page ("" on the last page).
// A limit of zero or less returns everything after the token.
func Page[T any](sorted []T, key func(T) string, token string, limit int) ([]T, string, error) {
	start := 0
	if token != "" {
		after, err := DecodeCodeToken(token)
		if err != nil {
			return nil, "", err
		}
		for start < len(sorted) && key(sorted[start]) <= after {
			start++
		}
	}

	rest := sorted[start:]
	if limit <= 0 || len(rest) <= limit {
		return rest, "", nil
	}
	page := rest[:limit]
	return page, EncodeCodeToken(key(page[len(page)-1])), nil
}

func isCode(s string) bool {
	if len(s) != 3 {
		return false
	}
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
