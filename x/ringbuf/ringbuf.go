// Package ringbuf provides a fixed-capacity byte ring for the "interrupt
// fills a buffer, foreground drains it" pattern of spec.md §2/§5: a single
// core, no scheduler, no async executor, no yield points. There is exactly
// one writer and one reader, but unlike a hosted producer/consumer ring
// they are never two goroutines racing on shared indices — they are an
// interrupt handler and the foreground code it preempts. A caller sharing
// a Ring between the two brackets the interrupt-side call in critical.Do;
// the ring itself carries no synchronisation of its own, by design.
package ringbuf

// Ring is a fixed-size byte ring with plain, non-atomic indices. Capacity
// must be a power of two so wraparound reduces to a mask.
type Ring struct {
	buf  []byte
	mask uint32
	rd   uint32
	wr   uint32
}

// New returns a ring with the given power-of-two size (>= 2).
func New(size int) *Ring {
	if size < 2 || size&(size-1) != 0 {
		panic("ringbuf: size must be power of two >= 2")
	}
	return &Ring{buf: make([]byte, size), mask: uint32(size - 1)}
}

func (r *Ring) size() uint32 { return uint32(len(r.buf)) }

// Cap returns the capacity in bytes.
func (r *Ring) Cap() int { return len(r.buf) }

// Available returns bytes available to the reader.
func (r *Ring) Available() int { return int(r.wr - r.rd) }

// Space returns bytes free for the writer.
func (r *Ring) Space() int { return int(r.size() - (r.wr - r.rd)) }

// TryWriteFrom copies as much of src as fits now, advancing the write
// index. Returns the number of bytes written, which may be less than
// len(src) if the ring is full — the caller (typically standing in for an
// interrupt handler) is expected to drop or defer what didn't fit rather
// than block, since there is nothing to block on.
func (r *Ring) TryWriteFrom(src []byte) int {
	space := r.Space()
	if space == 0 || len(src) == 0 {
		return 0
	}
	n := len(src)
	if n > space {
		n = space
	}
	for i := 0; i < n; i++ {
		r.buf[(r.wr+uint32(i))&r.mask] = src[i]
	}
	r.wr += uint32(n)
	return n
}

// TryReadInto copies as much as is available now into dst, advancing the
// read index. Returns the number of bytes read, which may be 0 if the
// ring is empty.
func (r *Ring) TryReadInto(dst []byte) int {
	avail := r.Available()
	if avail == 0 || len(dst) == 0 {
		return 0
	}
	n := len(dst)
	if n > avail {
		n = avail
	}
	for i := 0; i < n; i++ {
		dst[i] = r.buf[(r.rd+uint32(i))&r.mask]
	}
	r.rd += uint32(n)
	return n
}
