package guide

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	main, err := Get("")
	require.NoError(t, err)
	assert.Contains(t, main, "# docrec")

	_, err = Get("missing")
	assert.Error(t, err)
}

func TestList(t *testing.T) {
	names, err := List()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"config", "directives", "formats", "search"}, names)

	for _, n := range names {
		_, err := Get(n)
		assert.NoError(t, err, n)
	}
}
