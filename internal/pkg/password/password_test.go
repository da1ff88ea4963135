package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCompare(t *testing.T) {
	hash, err := HashPassword("s3cret-salon")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-salon", hash)

	assert.NoError(t, ComparePassword(hash, "s3cret-salon"))
	assert.ErrorIs(t, ComparePassword(hash, "wrong"), ErrComparisonFailed)
	assert.ErrorIs(t, ComparePassword(hash, ""), ErrInvalidPassword)

	_, err = HashPassword("")
	assert.ErrorIs(t, err, ErrInvalidPassword)
}
