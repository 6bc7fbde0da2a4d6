package platform

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/wippyai/ctypes/typedef"
)

// Cache memoizes registries by profile. Concurrent first requests for the
// same profile build the registry once; every caller sees the same result,
// including a failed one.
type Cache struct {
	tables  *typedef.Tables
	entries sync.Map // Profile -> *cacheEntry
}

type cacheEntry struct {
	reg  *Registry
	err  error
	once sync.Once
}

// NewCache returns a cache over a copy of tables. Nil tables means the
// built-in layers.
func NewCache(tables *typedef.Tables) *Cache {
	if tables == nil {
		tables = typedef.Builtin()
	} else {
		tables = tables.Clone()
	}
	return &Cache{tables: tables}
}

var (
	defaultCache     *Cache
	defaultCacheOnce sync.Once
)

// Default returns the process-wide cache over the built-in layers.
func Default() *Cache {
	defaultCacheOnce.Do(func() {
		defaultCache = NewCache(nil)
	})
	return defaultCache
}

// Resolve returns the registry for p from the default cache.
func Resolve(p Profile) (*Registry, error) {
	return Default().Resolve(p)
}

// For parses the tokens and resolves them through the default cache.
func For(endian, arch, os string) (*Registry, error) {
	return Default().For(endian, arch, os)
}

// Resolve returns the registry for p, building it on first use.
func (c *Cache) Resolve(p Profile) (*Registry, error) {
	if err := p.validate(c.tables); err != nil {
		return nil, err
	}
	v, _ := c.entries.LoadOrStore(p, &cacheEntry{})
	entry := v.(*cacheEntry)
	entry.once.Do(func() {
		start := time.Now()
		entry.reg, entry.err = newRegistry(p, c.tables)
		if entry.err != nil {
			Logger().Debug("registry resolution failed",
				zap.Stringer("profile", p),
				zap.Error(entry.err))
			return
		}
		Logger().Debug("registry resolved",
			zap.Stringer("profile", p),
			zap.Int("types", entry.reg.Len()),
			zap.Int("bits", entry.reg.Bits()),
			zap.Stringer("order", entry.reg.Order()),
			zap.Duration("elapsed", time.Since(start)))
	})
	return entry.reg, entry.err
}

// For parses the tokens and resolves the profile. OS tokens also accept
// any layer name the cache's tables define.
func (c *Cache) For(endian, arch, os string) (*Registry, error) {
	p, err := c.ParseProfile(endian, arch, os)
	if err != nil {
		return nil, err
	}
	return c.Resolve(p)
}

// ParseProfile is the package-level ParseProfile extended with the custom
// layers of the cache's tables.
func (c *Cache) ParseProfile(endian, arch, os string) (Profile, error) {
	p, err := ParseProfile(endian, arch, "")
	if err != nil {
		return Profile{}, err
	}
	if os == "" {
		return p, nil
	}
	if o, err := ParseOS(os); err == nil {
		p.OS = o
		return p, nil
	}
	if c.tables.Has(os) {
		p.OS = OS(os)
		return p, nil
	}
	_, err = ParseOS(os)
	return Profile{}, err
}

// Len returns the number of profiles resolved so far.
func (c *Cache) Len() int {
	n := 0
	c.entries.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

// Layers returns the layer names the cache resolves against.
func (c *Cache) Layers() []string {
	return c.tables.Names()
}
