package slicon

import (
	"sync"

	"golang.org/x/image/font/opentype"
)

var globalFontCache = &fontCache{}

// fontCache holds parsed font files keyed by path. Parsed fonts are safe for
// concurrent use; faces created from them are not and are never cached.
type fontCache struct {
	m sync.Map
}

func LoadFontCache(key string) (*opentype.Font, bool) {
	if v, ok := globalFontCache.m.Load(key); ok {
		if f, ok := v.(*opentype.Font); ok {
			return f, true
		}
	}
	return nil, false
}

func StoreFontCache(key string, f *opentype.Font) {
	if f == nil {
		return
	}
	globalFontCache.m.Store(key, f)
}
