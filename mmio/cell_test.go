package mmio

import (
	"testing"
	"unsafe"
)

func backing32() (addr uintptr, mem *uint32) {
	mem = new(uint32)
	return uintptr(unsafe.Pointer(mem)), mem
}

func TestReadWriteRoundTrip(t *testing.T) {
	addr, mem := backing32()
	c := At[uint32](addr, ReadWrite)

	c.Write(0xDEADBEEF)
	if got := c.Read(); got != 0xDEADBEEF {
		t.Fatalf("Read() = %#x, want 0xDEADBEEF", got)
	}
	if *mem != 0xDEADBEEF {
		t.Fatalf("backing memory = %#x, want 0xDEADBEEF", *mem)
	}
}

func TestReadOnlyPanicsOnWrite(t *testing.T) {
	addr, _ := backing32()
	c := At[uint32](addr, ReadOnly)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic writing to a read-only cell")
		}
	}()
	c.Write(1)
}

func TestWriteOnlyPanicsOnRead(t *testing.T) {
	addr, _ := backing32()
	c := At[uint32](addr, WriteOnly)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic reading a write-only cell")
		}
	}()
	c.Read()
}

func TestModifyOnlyTouchesNamedFields(t *testing.T) {
	addr, _ := backing32()
	c := At[uint32](addr, ReadWrite)
	c.Write(0xFFFFFFFF)

	c.Modify(Field[uint32]{Name: "baud", Offset: 0, Width: 16, Value: 0x1234})

	got := c.Read()
	want := uint32(0xFFFF0000) | 0x1234
	if got != want {
		t.Fatalf("Modify() left register = %#x, want %#x", got, want)
	}
}

func TestToggleInvertsOnlyNamedBits(t *testing.T) {
	addr, _ := backing32()
	c := At[uint32](addr, ReadWrite)
	c.Write(0b0110)

	c.Toggle(BoolField{Name: "enable", Bit: 0}, BoolField{Name: "reset", Bit: 2})

	got := c.Read()
	want := uint32(0b0011)
	if got != want {
		t.Fatalf("Toggle() = %#b, want %#b", got, want)
	}
}

func TestFieldMaskNarrowerThanRegister(t *testing.T) {
	f := Field[uint8]{Offset: 2, Width: 3}
	if got, want := f.mask(), uint8(0b00011100); got != want {
		t.Fatalf("mask() = %#b, want %#b", got, want)
	}
}

func TestFieldMaskFullWidth(t *testing.T) {
	f := Field[uint8]{Offset: 0, Width: 8}
	if got, want := f.mask(), uint8(0xFF); got != want {
		t.Fatalf("mask() = %#b, want %#b", got, want)
	}
}
