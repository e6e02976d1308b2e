//go:build !baremetal

package logfmt

import "strconv"

// FormatInt and FormatUint give the freestanding build an identical
// signature to reach for; on a hosted build they're just strconv.
func FormatInt(i int64, base int) string  { return strconv.FormatInt(i, base) }
func FormatUint(u uint64, base int) string { return strconv.FormatUint(u, base) }
