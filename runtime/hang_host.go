//go:build !baremetal

package runtime

// hang stands in for the target's infinite spin loop. On a hosted build
// (tests, board/sim-backed examples) looping forever would just wedge the
// process, so Boot simply returns here instead.
func hang() {}
