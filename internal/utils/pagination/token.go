package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/workshop_manager_app/internal/core/domain"
)

const timeFormat = time.RFC3339Nano

// EncodeCursor creates an opaque, URL-safe token for keyset pagination over (created_at, id).
func EncodeCursor(cursor domain.PageCursor) string {
	return EncodeMultiFieldToken(cursor.CreatedAt.UTC().Format(timeFormat), cursor.ID)
}

// DecodeCursor parses a token produced by EncodeCursor.
func DecodeCursor(token string) (*domain.PageCursor, error) {
	parts, err := DecodeMultiFieldToken(token)
	if err != nil {
		return nil, err
	}
	if len(parts) != 2 || parts[1] == "" {
		return nil, fmt.Errorf("invalid pagination token format (split)")
	}

	createdAt, err := time.Parse(timeFormat, parts[0])
	if err != nil {
		return nil, fmt.Errorf("invalid pagination token format (created_at parse): %w", err)
	}

	return &domain.PageCursor{CreatedAt: createdAt, ID: parts[1]}, nil
}

// EncodeMultiFieldToken creates a token with any number of string fields
func EncodeMultiFieldToken(fields ...string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(strings.Join(fields, "|")))
}

// DecodeMultiFieldToken decodes a token into its component fields
func DecodeMultiFieldToken(token string) ([]string, error) {
	decodedBytes, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	return strings.Split(string(decodedBytes), "|"), nil
}
