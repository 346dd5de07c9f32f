package asm

import (
	"errors"
	"fmt"
	"strings"

	"github.com/parthpant/go8085/pkg/opcode"
)

// ErrUndefinedOpcode is returned by Disassemble when it encounters one of
// the 8085's ten undefined opcode bytes.
var ErrUndefinedOpcode = errors.New("asm: undefined opcode byte")

// Line is one disassembled instruction: its address, opcode key and any
// immediate operand.
type Line struct {
	Addr     uint16
	Key      string
	ImmBytes int
	Imm      uint16
}

func (l Line) String() string {
	if l.ImmBytes == 0 {
		return fmt.Sprintf("%#06x\t%s", l.Addr, l.Key)
	}
	if l.ImmBytes == 2 {
		return fmt.Sprintf("%#06x\t%s %#06x", l.Addr, l.Key, l.Imm)
	}
	return fmt.Sprintf("%#06x\t%s %#02x", l.Addr, l.Key, l.Imm)
}

// Disassemble walks bin from address 0, reconstructing one Line per
// instruction from the same opcode catalog the assembler and CPU use.
// There is no separate register-operand recovery needed: the catalog key
// already spells the destination/source registers (e.g. "mov_a_b"), so
// disassembly is purely a byte-to-key-plus-immediate reconstruction.
func Disassemble(bin []byte) ([]Line, error) {
	var lines []Line
	addr := 0
	for addr < len(bin) {
		op := bin[addr]
		info := opcode.Catalog[op]
		if info.Key == "" {
			return lines, fmt.Errorf("%w: %#02x at %#06x", ErrUndefinedOpcode, op, addr)
		}

		line := Line{Addr: uint16(addr), Key: info.Key, ImmBytes: info.ImmBytes}
		if info.ImmBytes > 0 {
			if addr+info.ImmBytes >= len(bin) {
				return lines, fmt.Errorf("asm: truncated immediate for %s at %#06x", info.Key, addr)
			}
			lo := uint16(bin[addr+1])
			if info.ImmBytes == 2 {
				hi := uint16(bin[addr+2])
				line.Imm = lo | hi<<8
			} else {
				line.Imm = lo
			}
		}
		lines = append(lines, line)
		addr += info.ImmBytes + 1
	}
	return lines, nil
}

// Listing renders lines the same way Assemble's listing output is
// formatted, one instruction per line.
func Listing(lines []Line) string {
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(l.String())
		b.WriteByte('\n')
	}
	return b.String()
}
