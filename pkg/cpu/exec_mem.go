package cpu

// execMvi implements MVI r,data: load an immediate byte into register r.
func (c *CPU) execMvi(code uint8) (int, error) {
	v, err := c.fetch8()
	if err != nil {
		return 0, err
	}
	if err := c.writeReg(code, v); err != nil {
		return 0, err
	}
	if code == 6 {
		return 10, nil
	}
	return 7, nil
}

// execLxi implements LXI rp,data16: load an immediate 16-bit value into
// one of BC/DE/HL/SP.
func (c *CPU) execLxi(rp uint8) (int, error) {
	v, err := c.fetch16()
	if err != nil {
		return 0, err
	}
	c.rpSet(rp, v)
	return 10, nil
}

// execStax implements STAX B/STAX D: store A at the address in BC (rp=0)
// or DE (rp=1).
func (c *CPU) execStax(rp uint8) (int, error) {
	addr := c.pairBC()
	if rp == 1 {
		addr = c.pairDE()
	}
	if err := c.mem.Write(addr, c.A); err != nil {
		return 0, err
	}
	return 7, nil
}

// execLdax implements LDAX B/LDAX D: load A from the address in BC (rp=0)
// or DE (rp=1).
func (c *CPU) execLdax(rp uint8) (int, error) {
	addr := c.pairBC()
	if rp == 1 {
		addr = c.pairDE()
	}
	v, err := c.mem.Read(addr)
	if err != nil {
		return 0, err
	}
	c.A = v
	return 7, nil
}

// execIncDecPair implements INX/DCX rp (delta +1/-1). Unlike the source
// this is grounded on — which sets only the high dual-overflow bit
// directly on 16-bit wraparound — this uses setOverflow so both witness
// bits move together, matching how INR/DCR/DAD treat the same case.
func (c *CPU) execIncDecPair(rp uint8, delta int) (int, error) {
	v := c.rpGet(rp)
	var result uint16
	var wrapped bool
	if delta > 0 {
		result = v + 1
		wrapped = v == 0xFFFF
	} else {
		result = v - 1
		wrapped = v == 0x0000
	}
	c.rpSet(rp, result)
	if wrapped {
		c.setOverflow(true)
	}
	return 6, nil
}

// execDad implements DAD rp: HL += rp (BC/DE/HL/SP), affecting only CY
// (set together with the dual-overflow witness on 16-bit carry-out).
func (c *CPU) execDad(rp uint8) (int, error) {
	hl := int(c.pairHL())
	operand := int(c.rpGet(rp))
	sum := hl + operand
	c.setHL(uint16(sum))
	cy := sum > 0xFFFF
	c.setFlag(FlagCY, cy)
	c.setOverflow(cy)
	return 10, nil
}

// execSta implements STA addr: store A at a direct 16-bit address.
func (c *CPU) execSta() (int, error) {
	addr, err := c.fetch16()
	if err != nil {
		return 0, err
	}
	if err := c.mem.Write(addr, c.A); err != nil {
		return 0, err
	}
	return 13, nil
}

// execLda implements LDA addr: load A from a direct 16-bit address.
func (c *CPU) execLda() (int, error) {
	addr, err := c.fetch16()
	if err != nil {
		return 0, err
	}
	v, err := c.mem.Read(addr)
	if err != nil {
		return 0, err
	}
	c.A = v
	return 13, nil
}

// execShld implements SHLD addr: store L at addr, H at addr+1.
func (c *CPU) execShld() (int, error) {
	addr, err := c.fetch16()
	if err != nil {
		return 0, err
	}
	if err := c.mem.Write(addr, c.L); err != nil {
		return 0, err
	}
	if err := c.mem.Write(addr+1, c.H); err != nil {
		return 0, err
	}
	return 16, nil
}

// execLhld implements LHLD addr: load L from addr, H from addr+1.
func (c *CPU) execLhld() (int, error) {
	addr, err := c.fetch16()
	if err != nil {
		return 0, err
	}
	lo, err := c.mem.Read(addr)
	if err != nil {
		return 0, err
	}
	hi, err := c.mem.Read(addr + 1)
	if err != nil {
		return 0, err
	}
	c.L, c.H = lo, hi
	return 16, nil
}
