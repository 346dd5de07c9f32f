package opcode

import "testing"

func TestCatalogEntryCount(t *testing.T) {
	count := 0
	for op := 0; op < 256; op++ {
		if Catalog[op].Key != "" {
			count++
		}
	}
	if count != 246 {
		t.Errorf("defined opcode count = %d, want 246", count)
	}
}

func TestUndefinedGaps(t *testing.T) {
	gaps := []uint8{0x08, 0x10, 0x18, 0x28, 0x38, 0xCB, 0xD9, 0xDD, 0xED, 0xFD}
	for _, op := range gaps {
		if Defined(op) {
			t.Errorf("opcode %#02x should be undefined, got key %q", op, Catalog[op].Key)
		}
	}
}

func TestByKeyBijection(t *testing.T) {
	if len(ByKey) != 246 {
		t.Fatalf("len(ByKey) = %d, want 246", len(ByKey))
	}
	for key, op := range ByKey {
		if Catalog[op].Key != key {
			t.Errorf("ByKey[%q] = %#02x but Catalog[%#02x].Key = %q", key, op, op, Catalog[op].Key)
		}
	}
}

func TestKnownEncodings(t *testing.T) {
	cases := map[string]uint8{
		"nop":      0x00,
		"mvi_a":    0x3E,
		"sub_d":    0x92,
		"out":      0xD3,
		"hlt":      0x76,
		"mov_a_b":  0x78,
		"rst_1":    0xCF,
		"cpi":      0xFE,
		"push_psw": 0xF5,
	}
	for key, want := range cases {
		if got := ByKey[key]; got != want {
			t.Errorf("ByKey[%q] = %#02x, want %#02x", key, got, want)
		}
	}
}

func TestConditionalTStates(t *testing.T) {
	jnz := Catalog[0xC2]
	if jnz.TStates != 10 || jnz.TStatesNotTaken != 7 {
		t.Errorf("jnz T-states = %d/%d, want 10/7", jnz.TStates, jnz.TStatesNotTaken)
	}
	call := Catalog[0xCD]
	if call.TStates != 18 || call.TStatesNotTaken != 18 {
		t.Errorf("call T-states = %d/%d, want 18/18 (unconditional)", call.TStates, call.TStatesNotTaken)
	}
	cnz := Catalog[0xC4]
	if cnz.TStates != 18 || cnz.TStatesNotTaken != 9 {
		t.Errorf("cnz T-states = %d/%d, want 18/9", cnz.TStates, cnz.TStatesNotTaken)
	}
}
