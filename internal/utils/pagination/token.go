package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"
)

const timeFormat = time.RFC3339Nano // Use a precise time format

// Tokens travel in query strings, so they use the URL-safe alphabet without padding.
var encoding = base64.RawURLEncoding

// EncodeToken creates a token from the creation time and ID of the last row on a page.
// Rows are ordered by (created_at, id), so the pair identifies a unique cursor position.
func EncodeToken(createdAt time.Time, id string) string {
	tokenStr := fmt.Sprintf("%s|%s", createdAt.UTC().Format(timeFormat), id)
	return encoding.EncodeToString([]byte(tokenStr))
}

// DecodeToken parses a token back into creation time and ID.
func DecodeToken(token string) (time.Time, string, error) {
	decodedBytes, err := encoding.DecodeString(token)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	parts := strings.SplitN(string(decodedBytes), "|", 2)
	if len(parts) != 2 || parts[1] == "" {
		return time.Time{}, "", fmt.Errorf("invalid pagination token format (split)")
	}

	createdAt, err := time.Parse(timeFormat, parts[0])
	if err != nil {
		return time.Time{}, "", fmt.Errorf("invalid pagination token format (created_at parse): %w", err)
	}

	return createdAt, parts[1], nil
}
