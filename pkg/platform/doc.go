// Package platform provides the capabilities the jitter entropy core
// requires from its host but does not implement itself: a monotonic
// nanosecond clock, a zeroing allocator, and a FIPS-mode predicate.
//
// None of these types touch the entropy pool. They exist so pkg/jent can
// be driven by deterministic fakes in tests (a clock that replays a fixed
// timestamp sequence, for instance) without the core importing "time" or
// the filesystem directly.
package platform
