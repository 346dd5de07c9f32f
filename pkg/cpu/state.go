// Package cpu implements the 8085's register file, flags and
// fetch-decode-execute loop over a pkg/mem.Memory and pkg/mem.Ports pair.
package cpu

import (
	"context"
	"errors"
	"fmt"

	"github.com/parthpant/go8085/pkg/mem"
	"github.com/parthpant/go8085/pkg/opcode"
)

// ErrUnimplementedOpcode is returned when the fetched instruction byte is
// one of the 8085's ten undefined opcodes.
var ErrUnimplementedOpcode = errors.New("cpu: unimplemented opcode")

// CPU holds the 8085's full architectural state: the register file, PC
// and SP, the instruction register, the pending-cycle counter and the
// interrupt-enable/halt flags, plus the memory and I/O port map it
// executes against.
type CPU struct {
	A, F, B, C, D, E, H, L uint8
	PC, SP                 uint16
	IR                     uint8

	cycles uint32
	IE     bool
	HLT    bool

	mem   *mem.Memory
	ports *mem.Ports
}

// New returns a CPU with all registers zeroed, executing against m.
func New(m *mem.Memory) *CPU {
	return &CPU{mem: m, ports: mem.NewPorts()}
}

// LoadMemory swaps in a new memory image, leaving register state as-is.
func (c *CPU) LoadMemory(m *mem.Memory) {
	c.mem = m
}

// AddIOPort attaches a latch at addr, readable/writable via IN/OUT.
func (c *CPU) AddIOPort(addr uint8) { c.ports.AddPort(addr) }

// RemoveIOPort detaches the latch at addr.
func (c *CPU) RemoveIOPort(addr uint8) { c.ports.RemovePort(addr) }

// ReadIO returns the current latch value at addr (0 if unmapped).
func (c *CPU) ReadIO(addr uint8) uint8 { return c.ports.ReadIO(addr) }

// WriteIO stores v in the latch at addr (dropped if unmapped).
func (c *CPU) WriteIO(addr uint8, v uint8) { c.ports.WriteIO(addr, v) }

// ReadMemory reads one byte from the CPU's memory.
func (c *CPU) ReadMemory(addr uint16) (uint8, error) { return c.mem.Read(addr) }

// WriteMemory writes one byte to the CPU's memory.
func (c *CPU) WriteMemory(addr uint16, v uint8) error { return c.mem.Write(addr, v) }

// Halted reports whether the CPU has executed HLT since the last Reset.
func (c *CPU) Halted() bool { return c.HLT }

// InterruptsEnabled reports the state of the IE flag (set/cleared by
// EI/DI; RIM and SIM are recognized but otherwise inert).
func (c *CPU) InterruptsEnabled() bool { return c.IE }

// Reset zeros every register, flag, PC, SP, IR and the pending-cycle
// counter, and clears HLT. Memory and the I/O port map are left as-is.
func (c *CPU) Reset() {
	c.A, c.B, c.C, c.D, c.E, c.H, c.L = 0, 0, 0, 0, 0, 0, 0
	c.F = 0
	c.PC, c.SP = 0, 0
	c.IR = 0
	c.HLT = false
	c.IE = false
	c.cycles = 0
}

// Summary renders a human-readable register dump.
func (c *CPU) Summary() string {
	return fmt.Sprintf(
		"A:%#02x\tF:%#02x\nB:%#02x\tC:%#02x\nD:%#02x\tE:%#02x\nH:%#02x\tL:%#02x\nPC:%#04x\tSP:%#04x\nHLT:%v\n",
		c.A, c.F, c.B, c.C, c.D, c.E, c.H, c.L, c.PC, c.SP, c.HLT)
}

// RunNext executes exactly one instruction, ignoring the pending-cycle
// counter, and is a no-op once HLT has been latched.
func (c *CPU) RunNext() error {
	if c.HLT {
		return nil
	}
	_, err := c.step()
	return err
}

// Run executes instructions until HLT is latched or ctx is cancelled,
// pacing itself by the pending T-state counter: a new instruction is only
// fetched once the previous one's reported cost has been drained, one
// tick per loop iteration, mirroring the cycle bookkeeping the original
// single-threaded core used.
func (c *CPU) Run(ctx context.Context) error {
	for !c.HLT {
		if err := ctx.Err(); err != nil {
			return err
		}
		if c.cycles == 0 {
			n, err := c.step()
			if err != nil {
				return err
			}
			c.cycles += uint32(n)
		}
		c.cycles--
	}
	return nil
}

func (c *CPU) step() (int, error) {
	op, err := c.fetch8()
	if err != nil {
		return 0, err
	}
	c.IR = op
	if !opcode.Defined(op) {
		return 0, fmt.Errorf("%w: %#02x at %#04x", ErrUnimplementedOpcode, op, c.PC-1)
	}
	return c.dispatch(op)
}

func (c *CPU) fetch8() (uint8, error) {
	v, err := c.mem.Read(c.PC)
	if err != nil {
		return 0, err
	}
	c.PC++
	return v, nil
}

func (c *CPU) fetch16() (uint16, error) {
	lo, err := c.fetch8()
	if err != nil {
		return 0, err
	}
	hi, err := c.fetch8()
	if err != nil {
		return 0, err
	}
	return uint16(lo) | uint16(hi)<<8, nil
}
