package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchCacheKeyIsStable(t *testing.T) {
	a := SearchCacheKey("en", "library", 0)
	b := SearchCacheKey("en", "library", 0)

	assert.Equal(t, a, b)
	assert.True(t, strings.HasPrefix(a, SearchCachePrefix))
}

func TestSearchCacheKeyIgnoresTermCase(t *testing.T) {
	assert.Equal(t, SearchCacheKey("en", "library", 0), SearchCacheKey("en", "LIBRARY", 0))
}

func TestSearchCacheKeyVariesByInputs(t *testing.T) {
	base := SearchCacheKey("en", "library", 0)

	assert.NotEqual(t, base, SearchCacheKey("fr", "library", 0))
	assert.NotEqual(t, base, SearchCacheKey("en", "librarie", 0))
	assert.NotEqual(t, base, SearchCacheKey("en", "library", 2))
}
