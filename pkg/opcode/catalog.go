// Package opcode is the 8085's instruction catalog: the map from an
// assembler key (mnemonic plus underscore-joined register operands, e.g.
// "mov_a_b", "adi", "rst_0") to its encoded byte, immediate-byte count and
// T-state cost. It generalizes a per-instruction-family table the
// assembler's two passes and the CPU's dispatcher both consult, instead of
// hand-writing one encode/decode branch per register (per SPEC_FULL.md's
// direction to collapse per-register-family duplication into one table).
package opcode

// Info describes one encoded 8085 instruction.
type Info struct {
	Key string // assembler key, e.g. "mvi_a", "jnz", "rst_3"
	Op  uint8  // encoded byte

	ImmBytes int // immediate bytes following the opcode: 0, 1 or 2

	// TStates is the cost in the common/unconditional case. For the
	// nine conditional call/jump/return families, TStates is the cost
	// when the condition is taken and TStatesNotTaken is the (lower)
	// cost when it is not; for every other instruction TStatesNotTaken
	// equals TStates.
	TStates         int
	TStatesNotTaken int
}

// Catalog is indexed by the encoded opcode byte. An entry with an empty
// Key marks one of the 8085's ten undefined opcodes.
var Catalog [256]Info

// ByKey is the reverse index used by the assembler's pass 2 to encode a
// mnemonic+operands key into a byte.
var ByKey = make(map[string]uint8, 246)

func reg(key string, op uint8, tstates int) Info {
	return Info{Key: key, Op: op, ImmBytes: 0, TStates: tstates, TStatesNotTaken: tstates}
}

func imm(key string, op uint8, immBytes, tstates int) Info {
	return Info{Key: key, Op: op, ImmBytes: immBytes, TStates: tstates, TStatesNotTaken: tstates}
}

func cond(key string, op uint8, immBytes, taken, notTaken int) Info {
	return Info{Key: key, Op: op, ImmBytes: immBytes, TStates: taken, TStatesNotTaken: notTaken}
}

// registers8 is the 8085's 3-bit register encoding order: B C D E H L M A.
var registers8 = [8]string{"b", "c", "d", "e", "h", "l", "m", "a"}

func init() {
	add := func(i Info) {
		Catalog[i.Op] = i
		ByKey[i.Key] = i.Op
	}

	add(reg("nop", 0x00, 4))
	add(imm("lxi_b", 0x01, 2, 10))
	add(reg("stax_b", 0x02, 7))
	add(reg("inx_b", 0x03, 6))
	add(reg("inr_b", 0x04, 4))
	add(reg("dcr_b", 0x05, 4))
	add(imm("mvi_b", 0x06, 1, 7))
	add(reg("rlc", 0x07, 4))
	add(reg("dad_b", 0x09, 10))
	add(reg("ldax_b", 0x0A, 7))
	add(reg("dcx_b", 0x0B, 6))
	add(reg("inr_c", 0x0C, 4))
	add(reg("dcr_c", 0x0D, 4))
	add(imm("mvi_c", 0x0E, 1, 7))
	add(reg("rrc", 0x0F, 4))

	add(imm("lxi_d", 0x11, 2, 10))
	add(reg("stax_d", 0x12, 7))
	add(reg("inx_d", 0x13, 6))
	add(reg("inr_d", 0x14, 4))
	add(reg("dcr_d", 0x15, 4))
	add(imm("mvi_d", 0x16, 1, 7))
	add(reg("ral", 0x17, 4))
	add(reg("dad_d", 0x19, 10))
	add(reg("ldax_d", 0x1A, 7))
	add(reg("dcx_d", 0x1B, 6))
	add(reg("inr_e", 0x1C, 4))
	add(reg("dcr_e", 0x1D, 4))
	add(imm("mvi_e", 0x1E, 1, 7))
	add(reg("rar", 0x1F, 4))

	add(reg("rim", 0x20, 4))
	add(imm("lxi_h", 0x21, 2, 10))
	add(imm("shld", 0x22, 2, 16))
	add(reg("inx_h", 0x23, 6))
	add(reg("inr_h", 0x24, 4))
	add(reg("dcr_h", 0x25, 4))
	add(imm("mvi_h", 0x26, 1, 7))
	add(reg("daa", 0x27, 4))
	add(reg("dad_h", 0x29, 10))
	add(imm("lhld", 0x2A, 2, 16))
	add(reg("dcx_h", 0x2B, 6))
	add(reg("inr_l", 0x2C, 4))
	add(reg("dcr_l", 0x2D, 4))
	add(imm("mvi_l", 0x2E, 1, 7))
	add(reg("cma", 0x2F, 4))

	add(reg("sim", 0x30, 4))
	add(imm("lxi_sp", 0x31, 2, 10))
	add(imm("sta", 0x32, 2, 13))
	add(reg("inx_sp", 0x33, 6))
	add(reg("inr_m", 0x34, 10))
	add(reg("dcr_m", 0x35, 10))
	add(imm("mvi_m", 0x36, 1, 10))
	add(reg("stc", 0x37, 4))
	add(reg("dad_sp", 0x39, 10))
	add(imm("lda", 0x3A, 2, 13))
	add(reg("dcx_sp", 0x3B, 6))
	add(reg("inr_a", 0x3C, 4))
	add(reg("dcr_a", 0x3D, 4))
	add(imm("mvi_a", 0x3E, 1, 7))
	add(reg("cmc", 0x3F, 4))

	// mov_d_s for every (dest, src) pair, DDD SSS encoded as 01 DDD SSS.
	// 0x76 (mov_m_m's slot) is HLT instead.
	for d := uint8(0); d < 8; d++ {
		for s := uint8(0); s < 8; s++ {
			op := 0x40 | (d << 3) | s
			if op == 0x76 {
				continue
			}
			cost := 4
			if registers8[d] == "m" || registers8[s] == "m" {
				cost = 7
			}
			add(reg("mov_"+registers8[d]+"_"+registers8[s], op, cost))
		}
	}
	add(reg("hlt", 0x76, 5))

	aluFamily := func(base string, opBase uint8, immMnemonic string, immOp uint8) {
		for i, r := range registers8 {
			cost := 4
			if r == "m" {
				cost = 7
			}
			add(reg(base+"_"+r, opBase+uint8(i), cost))
		}
		add(imm(immMnemonic, immOp, 1, 7))
	}
	aluFamily("add", 0x80, "adi", 0xC6)
	aluFamily("adc", 0x88, "aci", 0xCE)
	aluFamily("sub", 0x90, "sui", 0xD6)
	aluFamily("sbb", 0x98, "sbi", 0xDE)
	aluFamily("ana", 0xA0, "ani", 0xE6)
	aluFamily("xra", 0xA8, "xri", 0xEE)
	aluFamily("ora", 0xB0, "ori", 0xF6)
	aluFamily("cmp", 0xB8, "cpi", 0xFE)

	add(cond("rnz", 0xC0, 0, 12, 6))
	add(reg("pop_b", 0xC1, 10))
	add(cond("jnz", 0xC2, 2, 10, 7))
	add(imm("jmp", 0xC3, 2, 10))
	add(cond("cnz", 0xC4, 2, 18, 9))
	add(reg("push_b", 0xC5, 12))
	add(reg("rst_0", 0xC7, 12))
	add(cond("rz", 0xC8, 0, 12, 6))
	add(imm("ret", 0xC9, 0, 10))
	add(cond("jz", 0xCA, 2, 10, 7))
	add(cond("cz", 0xCC, 2, 18, 9))
	add(imm("call", 0xCD, 2, 18))
	add(reg("rst_1", 0xCF, 12))

	add(cond("rnc", 0xD0, 0, 12, 6))
	add(reg("pop_d", 0xD1, 10))
	add(cond("jnc", 0xD2, 2, 10, 7))
	add(imm("out", 0xD3, 1, 10))
	add(cond("cnc", 0xD4, 2, 18, 9))
	add(reg("push_d", 0xD5, 12))
	add(reg("rst_2", 0xD7, 12))
	add(cond("rc", 0xD8, 0, 12, 6))
	add(cond("jc", 0xDA, 2, 10, 7))
	add(imm("in", 0xDB, 1, 10))
	add(cond("cc", 0xDC, 2, 18, 9))
	add(reg("rst_3", 0xDF, 12))

	add(cond("rpo", 0xE0, 0, 12, 6))
	add(reg("pop_h", 0xE1, 10))
	add(cond("jpo", 0xE2, 2, 10, 7))
	add(reg("xthl", 0xE3, 16))
	add(cond("cpo", 0xE4, 2, 18, 9))
	add(reg("push_h", 0xE5, 12))
	add(reg("rst_4", 0xE7, 12))
	add(cond("rpe", 0xE8, 0, 12, 6))
	add(reg("pchl", 0xE9, 6))
	add(cond("jpe", 0xEA, 2, 10, 7))
	add(reg("xchg", 0xEB, 4))
	add(cond("cpe", 0xEC, 2, 18, 9))
	add(reg("rst_5", 0xEF, 12))

	add(cond("rp", 0xF0, 0, 12, 6))
	add(reg("pop_psw", 0xF1, 10))
	add(cond("jp", 0xF2, 2, 10, 7))
	add(reg("di", 0xF3, 4))
	add(cond("cp", 0xF4, 2, 18, 9))
	add(reg("push_psw", 0xF5, 12))
	add(reg("rst_6", 0xF7, 12))
	add(cond("rm", 0xF8, 0, 12, 6))
	add(reg("sphl", 0xF9, 6))
	add(cond("jm", 0xFA, 2, 10, 7))
	add(reg("ei", 0xFB, 4))
	add(cond("cm", 0xFC, 2, 18, 9))
	add(reg("rst_7", 0xFF, 12))
}

// Defined reports whether op is one of the 8085's 246 defined opcodes.
func Defined(op uint8) bool {
	return Catalog[op].Key != ""
}
