// Package cache provides the memoisation store behind gauge.Engine.
//
// Geometry and color results are pure functions of their inputs, so they can
// be cached under a key that encodes the full input tuple. Sharded spreads
// keys over 16 independently locked LRU shards so many gauge instances
// rendering at once rarely contend.
//
//	c := cache.NewSharded[string](256)
//	color := c.GetOrCreate(key, func() string { return compute() })
//
// Sharded is safe for concurrent use and must not be copied after creation.
package cache
