package pagination

import (
	"testing"
	"time"

	"github.com/SscSPs/workshop_manager_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeCursor(t *testing.T) {
	cursor := domain.PageCursor{
		CreatedAt: time.Date(2023, 5, 15, 14, 30, 45, 123456789, time.UTC),
		ID:        "5f0c2a9e-1d64-4e55-9d0e-3c1a1f7d2b11",
	}

	token := EncodeCursor(cursor)
	assert.NotEmpty(t, token)
	assert.NotContains(t, token, "+")
	assert.NotContains(t, token, "/")

	decoded, err := DecodeCursor(token)
	require.NoError(t, err)
	assert.True(t, cursor.CreatedAt.Equal(decoded.CreatedAt))
	assert.Equal(t, cursor.ID, decoded.ID)
}

func TestEncodeCursor_NormalisesToUTC(t *testing.T) {
	local := time.Date(2023, 5, 15, 10, 0, 0, 0, time.FixedZone("UTC-3", -3*3600))
	decoded, err := DecodeCursor(EncodeCursor(domain.PageCursor{CreatedAt: local, ID: "x"}))

	require.NoError(t, err)
	assert.True(t, local.Equal(decoded.CreatedAt))
	assert.Equal(t, time.UTC, decoded.CreatedAt.Location())
}

func TestDecodeCursorError(t *testing.T) {
	_, err := DecodeCursor("this is not base64!")
	assert.ErrorContains(t, err, "base64 decode")

	_, err = DecodeCursor(EncodeMultiFieldToken("only-one-field"))
	assert.ErrorContains(t, err, "split")

	_, err = DecodeCursor(EncodeMultiFieldToken("not-a-time", "id"))
	assert.ErrorContains(t, err, "created_at parse")
}

func TestMultiFieldToken(t *testing.T) {
	fields, err := DecodeMultiFieldToken(EncodeMultiFieldToken("a", "b", "c"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, fields)
}
