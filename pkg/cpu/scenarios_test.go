package cpu

import (
	"context"
	"strings"
	"testing"

	"github.com/parthpant/go8085/pkg/asm"
	"github.com/parthpant/go8085/pkg/mem"
)

// runProgram assembles src, loads it at address 0 of a size-byte memory and
// runs it to completion.
func runProgram(t *testing.T, src string, size int) *CPU {
	t.Helper()
	res, err := asm.Assemble(src)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	m, err := mem.NewFromImage(res.Binary, size)
	if err != nil {
		t.Fatalf("NewFromImage: %v", err)
	}
	c := New(m)
	c.AddIOPort(0xDF)
	if err := c.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	return c
}

// TestScenarioSubtractAndOut is spec.md §8 scenario 1.
func TestScenarioSubtractAndOut(t *testing.T) {
	c := runProgram(t, "MVI A, 44h\nMVI D, 32h\nSUB D\nOUT DFh\nHLT", 0x100)
	if c.A != 0x12 {
		t.Errorf("A = %#02x, want 0x12", c.A)
	}
	if c.ReadIO(0xDF) != 0x12 {
		t.Errorf("port 0xdf = %#02x, want 0x12", c.ReadIO(0xDF))
	}
}

// TestScenarioIncrementOverflow is spec.md §8 scenario 2: MVI B,0 then 256
// INR B should wrap B back to 0 and set the overflow witness bit.
func TestScenarioIncrementOverflow(t *testing.T) {
	src := "MVI B, 00h\n" + strings.Repeat("INR B\n", 256) + "HLT"
	c := runProgram(t, src, 0x200)
	if c.B != 0x00 {
		t.Errorf("B = %#02x, want 0x00", c.B)
	}
	if c.F&FlagK == 0 {
		t.Error("overflow witness (bit 5) should be set after 256 INR B")
	}
}

// TestScenarioDecrementOverflow is spec.md §8 scenario 3.
func TestScenarioDecrementOverflow(t *testing.T) {
	src := "MVI B, FEh\n" + strings.Repeat("DCR B\n", 255) + "HLT"
	c := runProgram(t, src, 0x200)
	if c.B != 0xFF {
		t.Errorf("B = %#02x, want 0xff", c.B)
	}
	if c.F&FlagK == 0 {
		t.Error("overflow witness (bit 5) should be set after DCR B wraps")
	}
}

// TestScenarioDadNoCarry is spec.md §8 scenario 4.
func TestScenarioDadNoCarry(t *testing.T) {
	c := runProgram(t, "LXI H, 0102h\nLXI B, 0304h\nDAD B\nHLT", 0x100)
	if c.pairHL() != 0x0406 {
		t.Errorf("HL = %#04x, want 0x0406", c.pairHL())
	}
	if c.F&FlagCY != 0 {
		t.Error("CY should be clear")
	}
}

// TestScenarioDadCarry is spec.md §8 scenario 5.
func TestScenarioDadCarry(t *testing.T) {
	c := runProgram(t, "LXI H, 0002h\nLXI B, FFFFh\nDAD B\nHLT", 0x100)
	if c.pairHL() != 0x0001 {
		t.Errorf("HL = %#04x, want 0x0001", c.pairHL())
	}
	if c.F&FlagCY == 0 {
		t.Error("CY should be set on 16-bit wrap")
	}
}

// TestScenarioPushPopPSW is spec.md §8 scenario 6.
func TestScenarioPushPopPSW(t *testing.T) {
	c := runProgram(t, "LXI SP, 2000h\nMVI A, AAh\nPUSH PSW\nXRA A\nPOP PSW\nHLT", 0x2100)
	if c.A != 0xAA {
		t.Errorf("A = %#02x, want 0xaa", c.A)
	}
	if c.SP != 0x2000 {
		t.Errorf("SP = %#04x, want 0x2000", c.SP)
	}
}

// TestScenarioCallRet is spec.md §8 scenario 7: CALL 1000h at address 0,
// RET at 0x1000, HLT at 0x0003, SP=0x2000 initially. Built directly from
// raw bytes since the routine at 0x1000 is out of line with the assembler's
// linear address cursor.
func TestScenarioCallRet(t *testing.T) {
	m := mem.New(0x2000)
	prog := []byte{0xCD, 0x00, 0x10, 0x76} // CALL 1000h ; HLT
	for i, b := range prog {
		if err := m.Write(uint16(i), b); err != nil {
			t.Fatal(err)
		}
	}
	if err := m.Write(0x1000, 0xC9); err != nil { // RET
		t.Fatal(err)
	}
	c := New(m)
	c.SP = 0x2000
	if err := c.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if c.PC != 0x0004 {
		t.Errorf("PC = %#04x, want 0x0004", c.PC)
	}
	if c.SP != 0x2000 {
		t.Errorf("SP = %#04x, want 0x2000", c.SP)
	}
}
