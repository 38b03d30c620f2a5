package naca16

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterpolantCache(t *testing.T) {
	a := assert.New(t)

	forever := time.Duration(0)
	inter := newTestInterpolator(t, mixedDesign, Options{CacheTTL: &forever})

	first, err := inter.BuildInterpolants(1.5, 0.2)
	require.NoError(t, err)
	second, err := inter.BuildInterpolants(0.8, 0.2)
	require.NoError(t, err)

	a.Equal(1, inter.cache.Len())
	a.Len(first.Warnings, 1)
	a.Empty(second.Warnings)
	a.Same(first.ClSubsonic, second.ClSubsonic)
	a.Same(first.CdSupersonic, second.CdSupersonic)

	_, err = inter.BuildInterpolants(0.3, 0.2)
	require.NoError(t, err)
	a.Equal(2, inter.cache.Len())

	inter.cache.Flush()
	a.Equal(0, inter.cache.Len())
}

func TestInterpolantCacheKeyedByKind(t *testing.T) {
	a := assert.New(t)
	c := NewInterpolantCache(time.Minute)

	p := NewDesignPoint(0.2, 0.2)
	c.Set(p, CUBIC, &InterpolantSet{Point: p, Warnings: []ClampWarning{{Symbol: "Cld"}}})

	set, ok := c.Get(p, CUBIC)
	a.True(ok)
	a.Empty(set.Warnings)

	_, ok = c.Get(p, LINEAR)
	a.False(ok)
	_, ok = c.Get(NewDesignPoint(0.2, 0.21), CUBIC)
	a.False(ok)
}

func TestUncachedRebuilds(t *testing.T) {
	inter := newTestInterpolator(t, mixedDesign, Options{})

	first, err := inter.BuildInterpolants(0.2, 0.2)
	require.NoError(t, err)
	second, err := inter.BuildInterpolants(0.2, 0.2)
	require.NoError(t, err)

	assert.Nil(t, inter.cache)
	assert.NotSame(t, first.ClSubsonic, second.ClSubsonic)
}
