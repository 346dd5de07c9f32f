package cpu

// 8085 flag bit positions in the F register. Bit 3 is architecturally
// reserved and always reads 0; bits 5 and 1 are this project's
// "dual-overflow" witnesses rather than the real 8085's undocumented
// bits — every 8-bit carry/borrow or 16-bit register-pair wrap sets (or
// clears) both together, never one alone.
//
//	7  6  5  4  3  2  1  0
//	S  Z  K  AC 0  P  V  CY
const (
	FlagCY uint8 = 0x01
	FlagV  uint8 = 0x02 // dual-overflow witness, low
	FlagP  uint8 = 0x04
	FlagAC uint8 = 0x10
	FlagK  uint8 = 0x20 // dual-overflow witness, high
	FlagZ  uint8 = 0x40
	FlagS  uint8 = 0x80
)

// SzTable and ParityTable are precomputed per-byte lookups for the sign,
// zero and parity flags, built once in init() the way the teacher's
// flag tables are, rather than recomputed per instruction.
var (
	SzTable     [256]uint8
	ParityTable [256]uint8
)

func init() {
	for i := 0; i < 256; i++ {
		var sz uint8
		if i&0x80 != 0 {
			sz |= FlagS
		}
		if i == 0 {
			sz |= FlagZ
		}
		SzTable[i] = sz

		j := uint8(i)
		p := uint8(0)
		for k := 0; k < 8; k++ {
			p ^= j & 1
			j >>= 1
		}
		if p == 0 {
			ParityTable[i] = FlagP
		}
	}
}

func (c *CPU) setFlag(mask uint8, on bool) {
	if on {
		c.F |= mask
	} else {
		c.F &^= mask
	}
}

// setOverflow sets or clears both dual-overflow witness bits together.
func (c *CPU) setOverflow(on bool) {
	c.setFlag(FlagK|FlagV, on)
}

// setSZP refreshes the sign, zero and parity bits from the current value
// of A, leaving every other flag untouched.
func (c *CPU) setSZP() {
	c.F = (c.F &^ (FlagS | FlagZ | FlagP)) | SzTable[c.A] | ParityTable[c.A]
}
