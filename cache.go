package naca16

import (
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
)

// InterpolantCache memoizes interpolant sets by clamped design point and
// surface kind. Cached sets carry no warnings.
type InterpolantCache struct {
	c *cache.Cache
}

func NewInterpolantCache(ttl time.Duration) *InterpolantCache {
	if ttl <= 0 {
		return &InterpolantCache{c: cache.New(cache.NoExpiration, 0)}
	}
	return &InterpolantCache{c: cache.New(ttl, 2*ttl)}
}

func cacheKey(p DesignPoint, kind SurfaceKind) string {
	return fmt.Sprintf("%s:%v:%v", kind, p[0], p[1])
}

func (c *InterpolantCache) Get(p DesignPoint, kind SurfaceKind) (*InterpolantSet, bool) {
	v, ok := c.c.Get(cacheKey(p, kind))
	if !ok {
		return nil, false
	}
	return v.(*InterpolantSet), true
}

func (c *InterpolantCache) Set(p DesignPoint, kind SurfaceKind, set *InterpolantSet) {
	c.c.Set(cacheKey(p, kind), set.withWarnings(nil), cache.DefaultExpiration)
}

func (c *InterpolantCache) Len() int {
	return c.c.ItemCount()
}

func (c *InterpolantCache) Flush() {
	c.c.Flush()
}
