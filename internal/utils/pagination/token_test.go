package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeToken(t *testing.T) {
	cursor := Cursor{
		Date:      time.Date(2026, 4, 1, 9, 15, 0, 0, time.UTC),
		CreatedAt: time.Date(2026, 4, 1, 9, 15, 2, 123456789, time.UTC),
		ID:        "7f1c2d9e-entry",
	}

	token := EncodeToken(cursor)
	assert.NotEmpty(t, token)

	decoded, err := DecodeToken(token)
	require.NoError(t, err)
	assert.True(t, cursor.Date.Equal(decoded.Date))
	assert.True(t, cursor.CreatedAt.Equal(decoded.CreatedAt))
	assert.Equal(t, cursor.ID, decoded.ID)
}

func TestDecodeTokenErrors(t *testing.T) {
	encode := func(s string) string { return base64.URLEncoding.EncodeToString([]byte(s)) }

	testCases := []struct {
		name    string
		token   string
		wantMsg string
	}{
		{"not base64", "this is not base64!", "base64 decode"},
		{"missing fields", encode("2026-04-01T00:00:00Z"), "expected 3 fields"},
		{"bad date", encode("notadate|2026-04-01T00:00:00Z|e1"), "date parse"},
		{"bad created_at", encode("2026-04-01T00:00:00Z|later|e1"), "created_at parse"},
		{"empty id", encode("2026-04-01T00:00:00Z|2026-04-01T00:00:00Z|"), "empty id"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeToken(tc.token)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantMsg)
		})
	}
}
