package cpu

import (
	"errors"

	"github.com/ezrec/mini86/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrRegisterInvalid = errors.New(f("no such register"))

	// Assembler errors
	ErrEquateSyntax       = errors.New(f(".equ syntax"))
	ErrEquateDuplicate    = errors.New(f(".equ duplicated"))
	ErrLabelDuplicate     = errors.New(f("label duplicated"))
	ErrLabelSyntax        = errors.New(f("label syntax"))
	ErrLabelEquate        = errors.New(f("label shadows an equate"))
	ErrOpcodeExtraArgs    = errors.New(f("excessive arguments"))
	ErrOperandInvalid     = errors.New(f("operand invalid"))
	ErrOperandCombination = errors.New(f("invalid operand combination"))
	ErrRegisterWidth      = errors.New(f("register width not supported"))
	ErrTargetInvalid      = errors.New(f("target invalid"))
	ErrShiftCount         = errors.New(f("shift count must be an immediate or CL"))
	ErrProgramSize        = errors.New(f("program exceeds memory"))
)

// ErrOpcode is an unknown or faulting opcode at an address.
type ErrOpcode struct {
	Opcode Opcode
	Ip     uint16
}

func (eo ErrOpcode) Error() string {
	return f("unknown opcode 0x%02x at address 0x%04x", uint8(eo.Opcode), eo.Ip)
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

// ErrFault is an instruction that could not complete.
type ErrFault struct {
	Instruction Instruction
	Err         error
}

func (err ErrFault) Error() string {
	return f("fault at 0x%04x '%v' %v", err.Instruction.Ip, err.Instruction, err.Err)
}

func (err ErrFault) Unwrap() error {
	return err.Err
}

// Is matches ErrOpcode, as the faulting opcode is at the instruction address.
func (err ErrFault) Is(target error) (ok bool) {
	_, ok = target.(ErrOpcode)
	return
}

type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("unknown label: %v", string(el))
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

type ErrMnemonic string

func (err ErrMnemonic) Error() string {
	return f("unknown command: %v", string(err))
}

// ErrSyntax is an assembly error on a source line.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("ERROR: %v on line -> %d", err.Err, err.LineNo)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}
