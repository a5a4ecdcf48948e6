// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"maps"
	"regexp"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

var (
	reParen  = regexp.MustCompile(`\$\([^\$]*\)`)
	reSymbol = regexp.MustCompile(`\b[A-Za-z_][A-Za-z0-9_]*\b`)
)

// Assembler is a two pass assembler for the mini86 CPU.
//
// The assembler keeps no state between calls to Parse, other than the
// predefined equates.
type Assembler struct {
	Verbose bool // If set, verbosely logs the assembler actions.

	predefine map[string]string // Predefines
}

// Predefine defines a new equate or redefines an existing equate.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// statement is a preprocessed source line.
type statement struct {
	LineNo   int
	Line     string   // Original source text.
	Labels   []string // Labels defined on the line.
	Mnemonic string   // Empty for a label-only line.
	Operands []string // Operand text.
	Err      error    // First error found on the line, raised by pass2.
}

// Words returns the mnemonic and operands.
func (stmt *statement) Words() (words []string) {
	words = append(words, stmt.Mnemonic)
	words = append(words, stmt.Operands...)
	return
}

// Encode the statement, resolving labels with resolve.
func (stmt *statement) Encode(resolve resolver) (in Instruction, link string, err error) {
	operands := make([]Operand, len(stmt.Operands))
	for n, text := range stmt.Operands {
		operands[n] = ParseOperand(text)
	}

	in, link, err = encode(stmt.Mnemonic, operands, resolve)
	return
}

// parenEval does compile-time $(...) evaluations
func parenEval(equate map[string]string, expr string) (value int64, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range equate {
		number, ok := ParseNumber(str)
		if !ok {
			// Ignore non-integer equates. They may be registers
			// or something else.
			continue
		}
		pred[key] = starlark.MakeInt(int(number))
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = errors.Join(ErrParseExpression(expr), err)
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	return
}

// preprocess expands a single line into a statement.
//
// Comments are stripped, $(...) expressions evaluated and equates
// substituted. `.equ NAME VALUE` lines update equate and produce an empty
// statement.
func preprocess(equate map[string]string, stmt *statement) (err error) {
	line, _, _ := strings.Cut(stmt.Line, ";")
	line = strings.TrimSpace(line)
	if len(line) == 0 {
		return
	}

	// Set line number.
	equate["LINENO"] = fmt.Sprintf("%d", stmt.LineNo)

	// Do $() evaluations
	line = reParen.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := parenEval(equate, str[2:len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%d", value)
	})
	if err != nil {
		return
	}

	// .equ CONST VALUE
	words := strings.Fields(line)
	if strings.EqualFold(words[0], ".equ") {
		if len(words) != 3 || !isSymbol(words[1]) {
			err = ErrEquateSyntax
			return
		}
		_, ok := equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		equate[words[1]] = words[2]
		return
	}

	// Labels
	for {
		label, rest, found := strings.Cut(line, ":")
		if !found {
			break
		}
		label = strings.TrimSpace(label)
		if !isSymbol(label) {
			err = fmt.Errorf("%w: '%v'", ErrLabelSyntax, label)
			return
		}
		stmt.Labels = append(stmt.Labels, label)
		line = strings.TrimSpace(rest)
	}

	if len(line) == 0 {
		return
	}

	// Equates
	line = reSymbol.ReplaceAllStringFunc(line, func(word string) string {
		value, ok := equate[word]
		if ok {
			return value
		}
		return word
	})

	stmt.Mnemonic = strings.Fields(line)[0]

	rest := strings.TrimSpace(line[len(stmt.Mnemonic):])
	if len(rest) == 0 {
		return
	}

	for _, operand := range strings.Split(rest, ",") {
		stmt.Operands = append(stmt.Operands, strings.TrimSpace(operand))
	}

	if len(stmt.Operands) > 2 {
		err = fmt.Errorf("%w: %v", ErrOpcodeExtraArgs, strings.Join(stmt.Operands[2:], ", "))
		return
	}

	return
}

// pass1 assigns an address to every label.
//
// Instructions are sized by encoding them with every label at address 0,
// so the sizes always agree with pass2. Errors are recorded on the
// statement, and left for pass2 to report in line order.
func pass1(stmts []statement, equate map[string]string) (labels map[string]uint16) {
	labels = make(map[string]uint16)

	lenient := func(label string) (addr uint16, err error) {
		return
	}

	ip := CODE_BASE
	for n := range stmts {
		stmt := &stmts[n]

		for _, label := range stmt.Labels {
			if _, ok := equate[label]; ok && stmt.Err == nil {
				stmt.Err = fmt.Errorf("%w: %v", ErrLabelEquate, label)
			}
			if _, ok := labels[label]; ok {
				if stmt.Err == nil {
					stmt.Err = fmt.Errorf("%w: %v", ErrLabelDuplicate, label)
				}
				continue
			}
			labels[label] = uint16(ip)
		}

		if stmt.Err != nil || len(stmt.Mnemonic) == 0 || ip > MEMORY_SIZE {
			continue
		}

		in, _, enc_err := stmt.Encode(lenient)
		if enc_err != nil {
			continue
		}

		ip += in.Size()
		if ip > MEMORY_SIZE {
			stmt.Err = ErrProgramSize
		}
	}

	return
}

// pass2 encodes every instruction, with labels resolved.
func pass2(stmts []statement, labels map[string]uint16) (lines []Line, err error) {
	strict := func(label string) (addr uint16, err error) {
		addr, ok := labels[label]
		if !ok {
			err = ErrLabelMissing(label)
		}
		return
	}

	ip := uint16(CODE_BASE)
	for n := range stmts {
		stmt := &stmts[n]

		if stmt.Err != nil {
			err = &ErrSyntax{LineNo: stmt.LineNo, Line: stmt.Line, Err: stmt.Err}
			return
		}

		if len(stmt.Mnemonic) == 0 {
			continue
		}

		in, link, enc_err := stmt.Encode(strict)
		if enc_err != nil {
			err = &ErrSyntax{LineNo: stmt.LineNo, Line: stmt.Line, Err: enc_err}
			return
		}

		in.Ip = ip
		lines = append(lines, Line{
			LineNo:    stmt.LineNo,
			Ip:        ip,
			Words:     stmt.Words(),
			Bytes:     in.Bytes(),
			LinkLabel: link,
		})

		ip += uint16(in.Size())
	}

	return
}

// Parse assembles an input stream into a Program.
// On error, no program is returned.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	// Predefined system equates
	equate := maps.Clone(_cpu_defines)
	equate["LINENO"] = "0"
	maps.Copy(equate, asm.predefine)

	var stmts []statement
	var lineno int

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		stmt := statement{LineNo: lineno, Line: text}
		stmt.Err = preprocess(equate, &stmt)

		if stmt.Err == nil && len(stmt.Labels) == 0 && len(stmt.Mnemonic) == 0 {
			continue
		}

		stmts = append(stmts, stmt)
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	labels := pass1(stmts, equate)

	lines, err := pass2(stmts, labels)
	if err != nil {
		return
	}

	if asm.Verbose {
		for _, line := range lines {
			log.Printf("%04x: % x\t%v", line.Ip, line.Bytes, strings.Join(line.Words, " "))
		}
	}

	prog = &Program{
		Lines:  lines,
		Labels: labels,
	}

	return
}

// ParseString assembles source text into a Program.
func (asm *Assembler) ParseString(source string) (prog *Program, err error) {
	return asm.Parse(strings.NewReader(source))
}
