//go:build secure_memory

package jent

// scrub is a no-op under the secure_memory build tag: the host has
// already marked the collector's memory non-dumpable and non-pageable
// (mlock-style), so there is nothing left to protect against post-hoc
// memory disclosure, and the extra generation pass would only cost time.
func scrub(c *Collector) {}
