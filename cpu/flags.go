package cpu

import (
	"fmt"
)

// Flags is the status flag set.
type Flags struct {
	CF bool // Carry
	ZF bool // Zero
	SF bool // Sign
	OF bool // Overflow
}

// width describes an operand size for flag computation.
type width struct {
	mask uint32
	sign uint32
}

var (
	width8  = width{mask: 0xff, sign: 0x80}
	width16 = width{mask: 0xffff, sign: 0x8000}
)

func (w width) result(f Flags, result uint32) Flags {
	f.ZF = (result & w.mask) == 0
	f.SF = (result & w.sign) != 0
	return f
}

// add applies the addition rule. result is the widened sum.
func (w width) add(f Flags, dst, src, result uint32) Flags {
	f = w.result(f, result)
	f.CF = result > w.mask
	dst_sign := (dst & w.sign) != 0
	src_sign := (src & w.sign) != 0
	f.OF = dst_sign == src_sign && dst_sign != f.SF
	return f
}

// sub applies the subtraction rule. dst and src are not truncated.
func (w width) sub(f Flags, dst, src, result uint32) Flags {
	f = w.result(f, result)
	f.CF = dst < src
	dst_sign := (dst & w.sign) != 0
	src_sign := (src & w.sign) != 0
	f.OF = dst_sign != src_sign && src_sign == f.SF
	return f
}

func (w width) logical(f Flags, result uint32) Flags {
	f = w.result(f, result)
	f.CF = false
	f.OF = false
	return f
}

func (w width) inc(f Flags, before, after uint32) Flags {
	f = w.result(f, after)
	f.OF = before == w.sign-1
	return f
}

func (w width) dec(f Flags, before, after uint32) Flags {
	f = w.result(f, after)
	f.OF = before == w.sign
	return f
}

// Add16 returns the flags after a 16-bit add of src to dst giving result.
func (f Flags) Add16(dst, src uint16, result uint32) Flags {
	return width16.add(f, uint32(dst), uint32(src), result)
}

// Add8 returns the flags after an 8-bit add of src to dst giving result.
func (f Flags) Add8(dst, src uint8, result uint32) Flags {
	return width8.add(f, uint32(dst), uint32(src), result)
}

// Sub16 returns the flags after a 16-bit subtract of src from dst.
// src may exceed 16 bits when a borrow has been folded into it.
func (f Flags) Sub16(dst uint16, src uint32, result uint16) Flags {
	return width16.sub(f, uint32(dst), src, uint32(result))
}

// Sub8 returns the flags after an 8-bit subtract of src from dst.
// src may exceed 8 bits when a borrow has been folded into it.
func (f Flags) Sub8(dst uint8, src uint32, result uint8) Flags {
	return width8.sub(f, uint32(dst), src, uint32(result))
}

// Logical16 returns the flags after a 16-bit AND, OR, XOR or NOT.
func (f Flags) Logical16(result uint16) Flags {
	return width16.logical(f, uint32(result))
}

// Logical8 returns the flags after an 8-bit AND, OR, XOR or NOT.
func (f Flags) Logical8(result uint8) Flags {
	return width8.logical(f, uint32(result))
}

// Inc16 returns the flags after a 16-bit increment. CF is preserved.
func (f Flags) Inc16(before, after uint16) Flags {
	return width16.inc(f, uint32(before), uint32(after))
}

// Inc8 returns the flags after an 8-bit increment. CF is preserved.
func (f Flags) Inc8(before, after uint8) Flags {
	return width8.inc(f, uint32(before), uint32(after))
}

// Dec16 returns the flags after a 16-bit decrement. CF is preserved.
func (f Flags) Dec16(before, after uint16) Flags {
	return width16.dec(f, uint32(before), uint32(after))
}

// Dec8 returns the flags after an 8-bit decrement. CF is preserved.
func (f Flags) Dec8(before, after uint8) Flags {
	return width8.dec(f, uint32(before), uint32(after))
}

// Carry returns the carry flag as an integer.
func (f Flags) Carry() uint32 {
	if f.CF {
		return 1
	}
	return 0
}

// String returns the flags in CF ZF SF OF order, "--" for a clear flag.
func (f Flags) String() string {
	mark := func(set bool, name string) string {
		if set {
			return name
		}
		return "--"
	}
	return fmt.Sprintf("%v %v %v %v",
		mark(f.CF, "CF"), mark(f.ZF, "ZF"), mark(f.SF, "SF"), mark(f.OF, "OF"))
}
