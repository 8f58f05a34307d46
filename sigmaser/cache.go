package sigmaser

import (
	lru "github.com/hashicorp/golang-lru"

	"github.com/ergoplasma/ergotree-go/mir"
)

// ParseCache memoizes Parse by the exact input bytes — the same wrapper
// shape as the teacher's cache.LRU, extending the library cache with a
// typed ParseCached rather than reimplementing eviction.
type ParseCache struct {
	*lru.Cache
}

// NewParseCache creates a cache holding up to maxSize decoded trees.
func NewParseCache(maxSize int) *ParseCache {
	if maxSize < 16 {
		maxSize = 16
	}
	c, _ := lru.New(maxSize)
	return &ParseCache{c}
}

// ParseCached returns the Expr for b, parsing and caching it on a miss.
// constTable is only consulted on a miss; callers that vary constTable
// for otherwise-identical bytes should not share a cache between them.
func (c *ParseCache) ParseCached(b []byte, constTable ConstTable) (mir.Expr, error) {
	key := string(b)
	if v, ok := c.Get(key); ok {
		return v.(mir.Expr), nil
	}
	e, err := Parse(b, constTable)
	if err != nil {
		return nil, err
	}
	c.Add(key, e)
	return e, nil
}
