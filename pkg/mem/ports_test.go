package mem

import "testing"

func TestUnmappedRead(t *testing.T) {
	p := NewPorts()
	if v := p.ReadIO(0xDF); v != 0 {
		t.Errorf("ReadIO(unmapped) = %#02x, want 0", v)
	}
}

func TestUnmappedWriteDropped(t *testing.T) {
	p := NewPorts()
	p.WriteIO(0xDF, 0xAA)
	if v := p.ReadIO(0xDF); v != 0 {
		t.Errorf("ReadIO after unmapped write = %#02x, want 0", v)
	}
}

func TestMappedPort(t *testing.T) {
	p := NewPorts()
	p.AddPort(0xDF)
	p.WriteIO(0xDF, 0xAA)
	if v := p.ReadIO(0xDF); v != 0xAA {
		t.Errorf("ReadIO = %#02x, want 0xAA", v)
	}
	p.RemovePort(0xDF)
	if v := p.ReadIO(0xDF); v != 0 {
		t.Errorf("ReadIO after RemovePort = %#02x, want 0", v)
	}
}
