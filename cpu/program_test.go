package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgram_Debug(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	prog, err := asm.ParseString("start: MOV AX, 1\n\n  JMP start\n")
	if !assert.NoError(err) {
		return
	}

	dbg := prog.Debug(0)
	if assert.NotNil(dbg.Line) {
		assert.Equal(1, dbg.LineNo)
		assert.Equal(0, dbg.Index)
	}

	dbg = prog.Debug(3)
	if assert.NotNil(dbg.Line) {
		assert.Equal(1, dbg.LineNo)
		assert.Equal(3, dbg.Index)
	}

	dbg = prog.Debug(5)
	if assert.NotNil(dbg.Line) {
		assert.Equal(3, dbg.LineNo)
		assert.Equal(1, dbg.Index)
		assert.Equal("start", dbg.LinkLabel)
	}

	dbg = prog.Debug(7)
	assert.Nil(dbg.Line)
	assert.Equal(0, dbg.Index)
}

func TestProgram_Binary(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{
		Lines: []Line{
			{LineNo: 1, Ip: 0, Words: []string{"MOV", "AX", "1"}, Bytes: []byte{0x01, 0x00, 0x01, 0x00}},
			{LineNo: 2, Ip: 4, Words: []string{"JMP", "start"}, Bytes: []byte{0x0b, 0x00, 0x00}, LinkLabel: "start"},
		},
		Labels: map[string]uint16{"start": 0},
	}

	assert.Equal(7, prog.Size())
	assert.Equal([]byte{0x01, 0x00, 0x01, 0x00, 0x0b, 0x00, 0x00}, prog.Binary())

	var ips []uint16
	for ip := range prog.Codes() {
		ips = append(ips, ip)
		if ip == 4 {
			break
		}
	}
	assert.Equal([]uint16{0, 1, 2, 3, 4}, ips)

	empty := &Program{}
	assert.Equal(0, empty.Size())
	assert.Equal([]byte{}, empty.Binary())
}

func TestLine_Text(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		words []string
		text  string
	}){
		{nil, ""},
		{[]string{"HALT"}, "HALT"},
		{[]string{"PUSH", "AX"}, "PUSH AX"},
		{[]string{"MOV", "[BX+SI]", "CX"}, "MOV [BX+SI], CX"},
	}

	for _, entry := range table {
		line := &Line{Words: entry.words}
		assert.Equal(entry.text, line.Text())
	}
}

func TestDisassemble(t *testing.T) {
	assert := assert.New(t)

	image := []byte{
		0x01, 0x00, 0x34, 0x12, // MOV AX, 0x1234
		0x0d,                   // unknown
		0x70, 0x00, 0x01, 0x06, // MOV AX, [BX+SI]
		0x00,       // HALT
		0x02, 0x03, // truncated ADD
	}

	prog := Disassemble(image)
	assert.Equal(len(image), prog.Size())
	assert.Equal(image, prog.Binary())

	var texts []string
	for _, line := range prog.Lines {
		texts = append(texts, line.Text())
	}
	assert.Equal([]string{
		"MOV AX, 0x1234",
		"DB 0x0D",
		"MOV AX, [BX+SI]",
		"HALT",
		"DB 0x02",
		"DB 0x03",
	}, texts)

	assert.Equal(uint16(5), prog.Lines[2].Ip)
	assert.Equal(3, prog.Lines[2].LineNo)

	dbg := prog.Debug(7)
	if assert.NotNil(dbg.Line) {
		assert.Equal(3, dbg.LineNo)
		assert.Equal(2, dbg.Index)
	}
}

func TestDisassemble_Reassemble(t *testing.T) {
	assert := assert.New(t)

	source := `
		MOV AX, 0x1234
		MOV BL, 7
		ADD AX, [BX+SI]
		MOV [BP+4], AL
		MOV [0x3000], 0x55
		MOV [0x3002], 0x1234
		SHL AX, 3
		RCR DL, CL
		XCHG AH, AL
		NEG MNK
		HALT
	`

	asm := &Assembler{}
	prog, err := asm.ParseString(source)
	if !assert.NoError(err) {
		return
	}

	listing := ""
	for _, line := range Disassemble(prog.Binary()).Lines {
		listing += line.Text() + "\n"
	}

	again, err := asm.ParseString(listing)
	if !assert.NoError(err, listing) {
		return
	}

	assert.Equal(prog.Binary(), again.Binary(), listing)
}
