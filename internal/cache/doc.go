// Package cache provides the small LRU cache behind the formatting helpers.
//
// Label object names and formatted numbers are recomputed every label rebuild
// and refresh; caching them keeps a steady-state refresh allocation-free.
//
//	names := cache.New[nameKey, string](1024)
//	s := names.GetOrCreate(key, func() string { return build(key) })
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
