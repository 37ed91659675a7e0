package pagination_test

import (
	"testing"
	"time"

	"github.com/AdhamRef/gozbebekleri-sub002/internal/utils/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	createdAt := time.Date(2024, time.March, 3, 9, 15, 42, 123456789, time.UTC)
	id := "3f8a2c1e-5b4d-4f6a-9c8b-7d6e5f4a3b2c"

	token := pagination.EncodeToken(createdAt, id)
	gotTime, gotID, err := pagination.DecodeToken(token)

	require.NoError(t, err)
	assert.True(t, createdAt.Equal(gotTime))
	assert.Equal(t, id, gotID)
}

func TestDecodeToken_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{name: "not base64", token: "!!not-base64!!"},
		{name: "missing separator", token: "bm8tc2VwYXJhdG9y"}, // "no-separator"
		{name: "bad timestamp", token: "bm90LWEtdGltZXxpZA=="}, // "not-a-time|id"
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := pagination.DecodeToken(tt.token)
			assert.Error(t, err)
		})
	}
}
