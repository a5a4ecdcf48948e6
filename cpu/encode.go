package cpu

import (
	"fmt"
	"strings"
)

// resolver finds the address of a label.
type resolver func(label string) (addr uint16, err error)

// mnemonicForms maps each mnemonic to its opcode for each operand layout.
var mnemonicForms = buildMnemonicForms(opcodeList)

// mnemonicAlias are alternate spellings of a mnemonic.
var mnemonicAlias = map[string]string{
	"SAL": "SHL",
}

func buildMnemonicForms(list []OpcodeInfo) (forms map[string]map[Layout]Opcode) {
	forms = make(map[string]map[Layout]Opcode)
	for _, info := range list {
		form, ok := forms[info.Mnemonic]
		if !ok {
			form = make(map[Layout]Opcode)
			forms[info.Mnemonic] = form
		}
		form[info.Layout] = info.Opcode
	}
	return
}

// pairLayout selects the layout of a two operand instruction.
var pairLayout = map[[2]OperandKind]Layout{
	{OPERAND_REG16, OPERAND_REG16}:       LAYOUT_R16_R16,
	{OPERAND_REG8, OPERAND_REG8}:         LAYOUT_R8_R8,
	{OPERAND_REG16, OPERAND_IMMEDIATE}:   LAYOUT_R16_IMM16,
	{OPERAND_REG16, OPERAND_LABEL}:       LAYOUT_R16_IMM16,
	{OPERAND_REG8, OPERAND_IMMEDIATE}:    LAYOUT_R8_IMM8,
	{OPERAND_REG16, OPERAND_MEM_IMM}:     LAYOUT_R16_MEMIMM,
	{OPERAND_MEM_IMM, OPERAND_REG16}:     LAYOUT_MEMIMM_R16,
	{OPERAND_REG8, OPERAND_MEM_IMM}:      LAYOUT_R8_MEMIMM,
	{OPERAND_MEM_IMM, OPERAND_REG8}:      LAYOUT_MEMIMM_R8,
	{OPERAND_REG16, OPERAND_MEM_REG}:     LAYOUT_R16_MEMR,
	{OPERAND_MEM_REG, OPERAND_REG16}:     LAYOUT_MEMR_R16,
	{OPERAND_REG8, OPERAND_MEM_REG}:      LAYOUT_R8_MEMR,
	{OPERAND_MEM_REG, OPERAND_REG8}:      LAYOUT_MEMR_R8,
	{OPERAND_REG16, OPERAND_MEM_REG_REG}: LAYOUT_R16_MEMRR,
	{OPERAND_MEM_REG_REG, OPERAND_REG16}: LAYOUT_MEMRR_R16,
	{OPERAND_REG16, OPERAND_MEM_REG_IMM}: LAYOUT_R16_MEMRI,
	{OPERAND_MEM_REG_IMM, OPERAND_REG16}: LAYOUT_MEMRI_R16,
	{OPERAND_REG8, OPERAND_MEM_REG_IMM}:  LAYOUT_R8_MEMRI,
	{OPERAND_MEM_REG_IMM, OPERAND_REG8}:  LAYOUT_MEMRI_R8,
	{OPERAND_MEM_IMM, OPERAND_IMMEDIATE}: LAYOUT_MEMIMM_IMM16,
}

// selectLayout finds the layout for the operands of a mnemonic.
func selectLayout(forms map[Layout]Opcode, operands []Operand) (layout Layout, err error) {
	_, branch := forms[LAYOUT_TARGET]
	_, shift := forms[LAYOUT_R16_CL]

	switch len(operands) {
	case 0:
		layout = LAYOUT_NONE
	case 1:
		switch operands[0].Kind {
		case OPERAND_LABEL:
			layout = LAYOUT_TARGET
		case OPERAND_REG16:
			layout = LAYOUT_R16
		case OPERAND_REG8:
			layout = LAYOUT_R8
		default:
			err = ErrOperandCombination
			if branch {
				err = ErrTargetInvalid
			}
			return
		}
		if branch && layout != LAYOUT_TARGET {
			err = ErrTargetInvalid
			return
		}
		_, has16 := forms[LAYOUT_R16]
		_, has8 := forms[LAYOUT_R8]
		if (layout == LAYOUT_R16 && has8 && !has16) || (layout == LAYOUT_R8 && has16 && !has8) {
			err = ErrRegisterWidth
			return
		}
	case 2:
		dst, src := operands[0], operands[1]
		if shift {
			if src.Kind != OPERAND_IMMEDIATE && !src.IsCL() {
				err = ErrShiftCount
				return
			}
			switch {
			case dst.Kind == OPERAND_REG16 && src.IsCL():
				layout = LAYOUT_R16_CL
			case dst.Kind == OPERAND_REG16:
				layout = LAYOUT_R16_IMM8
			case dst.Kind == OPERAND_REG8 && src.IsCL():
				layout = LAYOUT_R8_CL
			case dst.Kind == OPERAND_REG8:
				layout = LAYOUT_R8_IMM8
			default:
				err = ErrOperandCombination
				return
			}
			break
		}
		var ok bool
		layout, ok = pairLayout[[2]OperandKind{dst.Kind, src.Kind}]
		if !ok {
			err = ErrOperandCombination
			if (dst.Kind == OPERAND_REG16 && src.Kind == OPERAND_REG8) ||
				(dst.Kind == OPERAND_REG8 && src.Kind == OPERAND_REG16) {
				err = ErrRegisterWidth
			}
			return
		}
		if layout == LAYOUT_MEMIMM_IMM16 && src.Value <= 0xff {
			layout = LAYOUT_MEMIMM_IMM8
		}
	default:
		err = ErrOpcodeExtraArgs
		return
	}

	if _, ok := forms[layout]; !ok {
		err = ErrOperandCombination
	}

	return
}

// encode assembles a single instruction. link is the label it refers to,
// if any.
func encode(mnemonic string, operands []Operand, resolve resolver) (in Instruction, link string, err error) {
	name := strings.ToUpper(mnemonic)
	if alias, ok := mnemonicAlias[name]; ok {
		name = alias
	}

	forms, ok := mnemonicForms[name]
	if !ok {
		err = ErrMnemonic(mnemonic)
		return
	}

	for _, op := range operands {
		if op.Kind != OPERAND_NONE {
			continue
		}
		if len(op.Text) > 0 && strings.ContainsRune("-0123456789", rune(op.Text[0])) {
			err = ErrParseNumber(op.Text)
		} else {
			err = fmt.Errorf("%w: '%v'", ErrOperandInvalid, op.Text)
		}
		return
	}

	layout, err := selectLayout(forms, operands)
	if err != nil {
		err = fmt.Errorf("%v: %w", name, err)
		return
	}

	in.Opcode = forms[layout]

	// reg is the register operand, mem the memory operand, of a load or store.
	var reg, mem Operand
	if len(operands) == 2 {
		reg, mem = operands[0], operands[1]
		if reg.IsMemory() {
			reg, mem = mem, reg
		}
	}

	address := func(op Operand) (addr uint16, err error) {
		if op.Kind != OPERAND_LABEL {
			addr = op.Value
			return
		}
		link = op.Text
		addr, err = resolve(op.Text)
		return
	}

	switch layout {
	case LAYOUT_NONE:
	case LAYOUT_TARGET:
		var addr uint16
		addr, err = address(operands[0])
		in.setArg16(1, addr)
	case LAYOUT_R16, LAYOUT_R8:
		in.setArg8(1, operands[0].Reg)
	case LAYOUT_R16_CL, LAYOUT_R8_CL:
		in.setArg8(1, operands[0].Reg)
	case LAYOUT_R16_R16, LAYOUT_R8_R8:
		in.setArg8(1, operands[0].Reg)
		in.setArg8(2, operands[1].Reg)
	case LAYOUT_R16_IMM16:
		var value uint16
		value, err = address(operands[1])
		in.setArg8(1, operands[0].Reg)
		in.setArg16(2, value)
	case LAYOUT_R8_IMM8, LAYOUT_R16_IMM8:
		in.setArg8(1, operands[0].Reg)
		in.setArg8(2, uint8(operands[1].Value&0xff))
	case LAYOUT_R16_MEMIMM, LAYOUT_MEMIMM_R16, LAYOUT_R8_MEMIMM, LAYOUT_MEMIMM_R8:
		in.setArg8(1, reg.Reg)
		in.setArg16(2, mem.Value)
	case LAYOUT_R16_MEMR, LAYOUT_MEMR_R16, LAYOUT_R8_MEMR, LAYOUT_MEMR_R8:
		in.setArg8(1, reg.Reg)
		in.setArg8(2, mem.Reg)
	case LAYOUT_R16_MEMRR, LAYOUT_MEMRR_R16:
		in.setArg8(1, reg.Reg)
		in.setArg8(2, mem.Reg)
		in.setArg8(3, mem.Index)
	case LAYOUT_R16_MEMRI, LAYOUT_MEMRI_R16, LAYOUT_R8_MEMRI, LAYOUT_MEMRI_R8:
		in.setArg8(1, reg.Reg)
		in.setArg8(2, mem.Reg)
		in.setArg16(3, mem.Value)
	case LAYOUT_MEMIMM_IMM16:
		in.setArg16(1, operands[0].Value)
		in.setArg16(3, operands[1].Value)
	case LAYOUT_MEMIMM_IMM8:
		in.setArg16(1, operands[0].Value)
		in.setArg8(3, uint8(operands[1].Value&0xff))
	}

	return
}
