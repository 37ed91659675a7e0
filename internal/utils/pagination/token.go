package pagination

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"
)

const timeFormat = time.RFC3339Nano // Use a precise time format

// ErrInvalidToken marks any cursor that cannot be decoded, so callers can
// map it to a validation failure.
var ErrInvalidToken = errors.New("invalid pagination token")

// EncodeToken creates a base64 encoded cursor from a creation time and row
// ID. Donation listings page on (created_at, donation_id) so the cursor must
// carry both to stay stable across equal timestamps.
func EncodeToken(createdAt time.Time, id string) string {
	tokenStr := fmt.Sprintf("%s|%s", createdAt.Format(timeFormat), id)
	return base64.StdEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeToken parses the base64 encoded cursor back into its parts.
func DecodeToken(token string) (time.Time, string, error) {
	decodedBytes, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("%w (base64 decode): %v", ErrInvalidToken, err)
	}
	parts := strings.SplitN(string(decodedBytes), "|", 2)
	if len(parts) != 2 {
		return time.Time{}, "", fmt.Errorf("%w (malformed cursor)", ErrInvalidToken)
	}

	createdAt, err := time.Parse(timeFormat, parts[0])
	if err != nil {
		return time.Time{}, "", fmt.Errorf("%w (created_at parse): %v", ErrInvalidToken, err)
	}

	return createdAt, parts[1], nil
}
