package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstraintCacheMemoizes(t *testing.T) {
	cache := NewConstraintCache(MustGetParser(NpmEcosystem))

	first := cache.Get("^1.2.3")
	second := cache.Get("^1.2.3")

	assert.Equal(t, 1, cache.Len())
	assert.Equal(t, first, second)
	assert.Equal(t, "^1.2.3", first.Raw)
	assert.Equal(t, "[1.2.3, 2.0.0)", first.Interval.String())
	assert.Equal(t, Descriptors{Minor: true, Patch: true}, first.Descriptors)
}

func TestConstraintCachePopulate(t *testing.T) {
	cache := NewConstraintCache(MustGetParser(NpmEcosystem))
	cache.Populate([]string{"^1.0.0", "~2.1.0", "^1.0.0"})
	assert.Equal(t, 2, cache.Len())
}

func TestConstraintCacheDegradesBadConstraints(t *testing.T) {
	cache := NewConstraintCache(MustGetParser(NpmEcosystem))

	entry := cache.Get("not-a-constraint")

	assert.True(t, entry.Interval.IsEmpty())
	assert.Equal(t, Descriptors{Empty: true}, entry.Descriptors)
	assert.Equal(t, 1, cache.Len())
}
