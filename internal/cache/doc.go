// Package cache provides explicit cache-aside wrappers over the store.
//
// Each wrapper implements the same interface as the store slice it wraps, so
// handlers are indifferent to whether they hold the raw store or the cached
// one. Reads populate on miss; every write or delete invalidates the
// affected id key and the list-all entry.
package cache
