// Package cache provides the fixed-capacity LRU cache used by the default
// quantizer to remember nearest-palette lookups.
//
//	c := cache.NewLRU[uint32, uint8](4096)
//	c.Set(0xFF0000FF, 3)
//	idx, ok := c.Get(0xFF0000FF)
//
// # Thread Safety
//
// LRU is not safe for concurrent use. The quantizer creates one per call.
package cache
