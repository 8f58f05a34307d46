package sigmaser

import (
	"testing"

	"github.com/ergoplasma/ergotree-go/data"
	"github.com/ergoplasma/ergotree-go/mir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCacheReturnsEqualTreeOnHit(t *testing.T) {
	b, err := Serialize(mir.NewConst(data.Int(7)))
	require.NoError(t, err)

	cache := NewParseCache(16)
	first, err := cache.ParseCached(b, nil)
	require.NoError(t, err)
	second, err := cache.ParseCached(b, nil)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestParseCacheSurfacesParseErrors(t *testing.T) {
	cache := NewParseCache(16)
	_, err := cache.ParseCached([]byte{0xFF, 0xFF}, nil)
	assert.Error(t, err)
}
