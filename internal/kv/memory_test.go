package kv

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_GetMissing(t *testing.T) {
	s := NewMemoryStore()

	_, err := s.Get(context.Background(), "nope")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_SetCopiesValue(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	buf := []byte("abc")
	require.NoError(t, s.Set(ctx, "k", buf))
	buf[0] = 'z'

	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), got)

	require.NoError(t, s.Delete(ctx, "k"))
	_, err = s.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestJSONHelpers(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	type prefs struct {
		Lang string `json:"lang"`
	}
	require.NoError(t, SetJSON(ctx, s, KeyLanguagePrefix+"42", prefs{Lang: "fr"}))

	var got prefs
	require.NoError(t, GetJSON(ctx, s, KeyLanguagePrefix+"42", &got))
	assert.Equal(t, "fr", got.Lang)

	require.NoError(t, s.Set(ctx, "broken", []byte("{")))
	assert.Error(t, GetJSON(ctx, s, "broken", &got))
}
