package opcode

// MnemonicInfo describes a bare mnemonic as the lexer sees it, before any
// register operands are appended to form a catalog key: how many register
// operands follow it, and how many immediate bytes (0, 1 or 2) follow
// those.
type MnemonicInfo struct {
	NumRegOperands int
	ImmBytes       int
}

// Mnemonics is the 8085 mnemonic table, grounded directly on
// asm8085.rs's tokenizer. CMP and CPI are corrected here relative to that
// source: CMP compares a register (one register operand, no immediate)
// and CPI compares an immediate byte (no register operand, one immediate
// byte) — the source's tokenizer carried CMP as a two-immediate-byte
// mnemonic, which has no corresponding opcode and cannot have been
// exercised.
var Mnemonics = map[string]MnemonicInfo{
	"aci":  {0, 1},
	"adc":  {1, 0},
	"add":  {1, 0},
	"adi":  {0, 1},
	"ana":  {1, 0},
	"ani":  {0, 1},
	"call": {0, 2},
	"cc":   {0, 2},
	"cm":   {0, 2},
	"cma":  {0, 0},
	"cmc":  {0, 0},
	"cmp":  {1, 0},
	"cnc":  {0, 2},
	"cnz":  {0, 2},
	"cp":   {0, 2},
	"cpe":  {0, 2},
	"cpi":  {0, 1},
	"cpo":  {0, 2},
	"cz":   {0, 2},
	"daa":  {0, 0},
	"dad":  {1, 0},
	"dcr":  {1, 0},
	"dcx":  {1, 0},
	"di":   {0, 0},
	"ei":   {0, 0},
	"hlt":  {0, 0},
	"in":   {0, 1},
	"inr":  {1, 0},
	"inx":  {1, 0},
	"jc":   {0, 2},
	"jm":   {0, 2},
	"jmp":  {0, 2},
	"jnc":  {0, 2},
	"jnz":  {0, 2},
	"jp":   {0, 2},
	"jpe":  {0, 2},
	"jpo":  {0, 2},
	"jz":   {0, 2},
	"lda":  {0, 2},
	"ldax": {1, 0},
	"lhld": {0, 2},
	"lxi":  {1, 2},
	"mov":  {2, 0},
	"mvi":  {1, 1},
	"nop":  {0, 0},
	"ora":  {1, 0},
	"ori":  {0, 1},
	"out":  {0, 1},
	"pchl": {0, 0},
	"pop":  {1, 0},
	"push": {1, 0},
	"ral":  {0, 0},
	"rar":  {0, 0},
	"rc":   {0, 0},
	"ret":  {0, 0},
	"rim":  {0, 0},
	"rlc":  {0, 0},
	"rm":   {0, 0},
	"rnc":  {0, 0},
	"rnz":  {0, 0},
	"rp":   {0, 0},
	"rpe":  {0, 0},
	"rpo":  {0, 0},
	"rrc":  {0, 0},
	"rst":  {1, 0},
	"rz":   {0, 0},
	"sbb":  {1, 0},
	"sbi":  {0, 1},
	"shld": {0, 2},
	"sim":  {0, 0},
	"sphl": {0, 0},
	"sta":  {0, 2},
	"stax": {1, 0},
	"stc":  {0, 0},
	"sub":  {1, 0},
	"sui":  {0, 1},
	"xchg": {0, 0},
	"xra":  {1, 0},
	"xri":  {0, 1},
	"xthl": {0, 0},
}

// Registers is the set of valid register/pair operand tokens, plus the
// RST vector digits 0-7, that may follow a mnemonic.
var Registers = map[string]bool{
	"a": true, "b": true, "c": true, "d": true, "e": true, "h": true, "l": true, "m": true,
	"ab": true, "bc": true, "de": true, "hl": true, "psw": true, "sp": true,
	"0": true, "1": true, "2": true, "3": true, "4": true, "5": true, "6": true, "7": true,
}
