// AngelaMos | 2026
// json_test.go

package kv

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type blob struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

func TestLoadJSON_Absent(t *testing.T) {
	s := NewMemoryStore()

	got, found, err := LoadJSON[[]blob](context.Background(), s, KeyProducts)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, got)
}

func TestLoadJSON_MalformedIsTreatedAsAbsent(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		raw  string
	}{
		{name: "truncated", raw: `[{"id":1,`},
		{name: "wrong shape", raw: `{"id":1}`},
		{name: "wrong field type", raw: `[{"id":"one"}]`},
		{name: "not json", raw: `hello`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewMemoryStore()
			require.NoError(t, s.Set(ctx, KeyProducts, tt.raw))

			got, found, err := LoadJSON[[]blob](ctx, s, KeyProducts)
			require.NoError(t, err)
			assert.False(t, found)
			assert.Empty(t, got)
		})
	}
}

func TestSaveJSON_RoundTripPreservesOrder(t *testing.T) {
	ctx := context.Background()

	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			want := []blob{
				{ID: 3, Name: "Steel", Price: 500},
				{ID: 1, Name: "Cement", Price: 350},
				{ID: 2, Name: "Bricks", Price: 10},
				{ID: 2, Name: "Bricks", Price: 10},
			}
			require.NoError(t, SaveJSON(ctx, s, KeyCart, want))

			got, found, err := LoadJSON[[]blob](ctx, s, KeyCart)
			require.NoError(t, err)
			assert.True(t, found)
			assert.Equal(t, want, got)
		})
	}
}

func TestLoadJSON_ScalarBlobs(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	require.NoError(t, s.Set(ctx, KeyLogins, "12"))
	require.NoError(t, s.Set(ctx, KeyDarkMode, "true"))

	logins, found, err := LoadJSON[int](ctx, s, KeyLogins)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 12, logins)

	dark, found, err := LoadJSON[bool](ctx, s, KeyDarkMode)
	require.NoError(t, err)
	assert.True(t, found)
	assert.True(t, dark)
}
