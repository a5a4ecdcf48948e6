package cpu

import (
	"strconv"
	"strings"
)

// OperandKind is the classification of an assembly operand.
//
// Examples: `AX` is reg16, `AL` is reg8, `[BX]`, `[0x1000]`, `[BX+SI]` and
// `[BP+4]` are memory, `0x10`, `10h` and `16` are immediates, and any other
// symbol is a label.
type OperandKind int

//go:generate go tool stringer -linecomment -type=OperandKind
const (
	OPERAND_NONE        = OperandKind(0) // none
	OPERAND_REG16       = OperandKind(1) // reg16
	OPERAND_REG8        = OperandKind(2) // reg8
	OPERAND_MEM_REG     = OperandKind(3) // [reg]
	OPERAND_MEM_IMM     = OperandKind(4) // [imm]
	OPERAND_MEM_REG_REG = OperandKind(5) // [reg+reg]
	OPERAND_MEM_REG_IMM = OperandKind(6) // [reg+imm]
	OPERAND_IMMEDIATE   = OperandKind(7) // imm
	OPERAND_LABEL       = OperandKind(8) // label
)

// Operand is a classified assembly operand.
type Operand struct {
	Kind  OperandKind
	Value uint16 // Immediate, address or displacement.
	Reg   uint8  // Register code, or the base register of a memory operand.
	Index uint8  // Index register of [reg+reg].
	Text  string // Original text, for label lookup.
}

// IsMemory returns true for the bracketed operand kinds.
func (op Operand) IsMemory() bool {
	switch op.Kind {
	case OPERAND_MEM_REG, OPERAND_MEM_IMM, OPERAND_MEM_REG_REG, OPERAND_MEM_REG_IMM:
		return true
	}
	return false
}

// IsCL returns true if the operand is the shift count register.
func (op Operand) IsCL() bool {
	return op.Kind == OPERAND_REG8 && Reg8(op.Reg) == REG_CL
}

// ParseNumber parses a numeric literal.
//
// Accepted forms are `0x` hex, `h` suffixed hex starting with a digit, and
// decimal. A leading `-` gives the two's complement. The value must fit in 16 bits.
func ParseNumber(text string) (value uint16, ok bool) {
	negative := false
	if strings.HasPrefix(text, "-") {
		negative = true
		text = text[1:]
	}

	base := 10
	switch {
	case len(text) > 2 && (strings.HasPrefix(text, "0x") || strings.HasPrefix(text, "0X")):
		base = 16
		text = text[2:]
	case len(text) > 1 && text[0] >= '0' && text[0] <= '9' &&
		(strings.HasSuffix(text, "h") || strings.HasSuffix(text, "H")):
		base = 16
		text = text[:len(text)-1]
	}

	// ParseUint accepts neither signs nor underscores for an explicit base.
	number, err := strconv.ParseUint(text, base, 16)
	if err != nil {
		return
	}

	value = uint16(number)
	if negative {
		value = -value
	}
	ok = true
	return
}

// ParseOperand classifies an operand. It never fails; malformed text is
// OPERAND_NONE, which the caller rejects.
func ParseOperand(text string) (op Operand) {
	text = strings.TrimSpace(text)
	op.Text = text
	if len(text) == 0 {
		return
	}

	if reg, ok := LookupReg16(text); ok {
		op.Kind = OPERAND_REG16
		op.Reg = uint8(reg)
		return
	}

	if reg, ok := LookupReg8(text); ok {
		op.Kind = OPERAND_REG8
		op.Reg = uint8(reg)
		return
	}

	if strings.HasPrefix(text, "[") && strings.HasSuffix(text, "]") {
		return parseMemory(op, strings.TrimSpace(text[1:len(text)-1]))
	}

	if value, ok := ParseNumber(text); ok {
		op.Kind = OPERAND_IMMEDIATE
		op.Value = value
		return
	}

	if isSymbol(text) {
		op.Kind = OPERAND_LABEL
	}

	return
}

// parseMemory classifies the contents of a bracketed operand.
func parseMemory(op Operand, inner string) Operand {
	if base, offset, found := strings.Cut(inner, "+"); found {
		base = strings.TrimSpace(base)
		offset = strings.TrimSpace(offset)

		reg, ok := LookupReg16(base)
		if !ok {
			return op
		}
		op.Reg = uint8(reg)

		if index, ok := LookupReg16(offset); ok {
			op.Kind = OPERAND_MEM_REG_REG
			op.Index = uint8(index)
			return op
		}

		if value, ok := ParseNumber(offset); ok {
			op.Kind = OPERAND_MEM_REG_IMM
			op.Value = value
			return op
		}

		return op
	}

	if reg, ok := LookupReg16(inner); ok {
		op.Kind = OPERAND_MEM_REG
		op.Reg = uint8(reg)
		return op
	}

	if value, ok := ParseNumber(inner); ok {
		op.Kind = OPERAND_MEM_IMM
		op.Value = value
		return op
	}

	return op
}

// isSymbol returns true for a name usable as a label.
func isSymbol(text string) bool {
	for n, c := range text {
		switch {
		case c == '_' || c == '.':
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case n > 0 && c >= '0' && c <= '9':
		default:
			return false
		}
	}
	return len(text) > 0
}
