package words

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitAndContains(t *testing.T) {
	require.NoError(t, Init())
	assert.Greater(t, Count(), 100, "embedded fallback list loaded")

	assert.True(t, Contains("cat"))
	assert.True(t, Contains("CAT"), "lookup is case-insensitive")
	assert.True(t, Contains("dog"))
	assert.False(t, Contains("zzzz"))
	assert.False(t, Contains(""))
	assert.False(t, Contains("ox"), "two-letter words are never playable")
}
