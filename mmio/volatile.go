package mmio

import "unsafe"

// volatileLoad and volatileStore perform a single load/store of exactly the
// requested width at addr, via a pointer indirection the Go compiler cannot
// prove is redundant. This is the idiomatic fallback used by bare-metal Go
// register-access packages (e.g. tamago's internal/reg) on platforms where
// the toolchain does not ship a dedicated volatile-register type: a direct
// unsafe.Pointer dereference, one instruction, no caching across calls.
//
// These are not atomic. A register cell shared with an interrupt handler
// must be guarded by a critical section for compound operations (see
// package critical); a single Read or Write is as atomic as the underlying
// bus transaction, which is a hardware property this package cannot see.
func volatileLoad[T Width](addr uintptr) T {
	return *(*T)(unsafe.Pointer(addr))
}

func volatileStore[T Width](addr uintptr, v T) {
	*(*T)(unsafe.Pointer(addr)) = v
}
