//go:build unit

package queries_test

import (
	"encoding/base64"
	"testing"
	"time"

	"carestay/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAfterCursorRoundTrip(t *testing.T) {
	id := uuid.New()
	ts := time.Date(2026, 3, 14, 9, 26, 53, 589793000, time.UTC)

	cursor := queries.EncodeAfterCursor(ts, id)
	gotTime, gotID, err := queries.DecodeAfterCursor(cursor)
	require.NoError(t, err)

	assert.Equal(t, id, gotID)
	assert.True(t, ts.Equal(gotTime), "expected %v, got %v", ts, gotTime)
}

func TestDecodeAfterCursorErrors(t *testing.T) {
	encode := func(payload string) string {
		return base64.URLEncoding.EncodeToString([]byte(payload))
	}

	cases := []struct {
		name   string
		cursor string
	}{
		{"empty cursor", ""},
		{"not base64", "not-base64!!"},
		{"wrong version", encode("v2:123-" + uuid.NewString())},
		{"missing version prefix", encode("123-" + uuid.NewString())},
		{"missing separator", encode("v1:123")},
		{"non-numeric timestamp", encode("v1:abc-" + uuid.NewString())},
		{"bad uuid", encode("v1:123-not-a-uuid")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := queries.DecodeAfterCursor(tc.cursor)
			require.Error(t, err)
		})
	}
}

func TestValidateLimit(t *testing.T) {
	assert.Equal(t, 20, queries.ValidateLimit(0))
	assert.Equal(t, 20, queries.ValidateLimit(-5))
	assert.Equal(t, 1, queries.ValidateLimit(1))
	assert.Equal(t, 200, queries.ValidateLimit(200))
	assert.Equal(t, 200, queries.ValidateLimit(1000))
}
