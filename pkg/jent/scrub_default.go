//go:build !secure_memory

package jent

// scrub runs one additional generation pass and discards the output,
// overwriting the just-returned pool value (§4.10). Built without the
// secure_memory tag, where the process's memory is assumed to be
// readable post-hoc (e.g. via a core dump), this protects the last
// returned bytes from disclosure after Read returns.
func scrub(c *Collector) {
	c.generate()
}
