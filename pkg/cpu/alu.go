package cpu

// This file implements the 8080 ALU and rotate/shift operations described in
// spec §4.3. SUB and SBB are built on ADD via the two's-complement identity
// so they inherit ADD's carry/half-carry derivation rather than duplicating
// it; CMP and DAA build on the same primitives.

// execAdd is ADD(v, cy): A = A + v + cy, with CF/ACF/PZS set from the result.
func (c *CPU) execAdd(v uint8, cy bool) {
	t := uint16(c.Reg.A) + uint16(v) + uint16(carryBit(cy))
	res := uint8(t)
	c.Reg.CF = t&0x100 != 0
	c.Reg.ACF = halfCarry(res, c.Reg.A, v)
	c.Reg.A = res
	c.setPZS(res)
}

// execSub is SUB(v, cy): the two's-complement identity ADD(~v, !cy) with
// CF inverted afterward. Reproduces 8080 borrow semantics for both SUB and
// SBB without a separate subtraction code path.
func (c *CPU) execSub(v uint8, cy bool) {
	c.execAdd(^v, !cy)
	c.Reg.CF = !c.Reg.CF
}

// execCmp is CMP(v): like SUB but A is left unchanged.
func (c *CPU) execCmp(v uint8) {
	t := uint16(c.Reg.A) - uint16(v)
	res := uint8(t)
	c.Reg.CF = t&0x100 != 0
	c.Reg.ACF = halfCarry(res, c.Reg.A, ^v)
	c.setPZS(res)
}

// execAna is ANA(v): AC is bit 3 of (A | v) taken before the AND, CF clears.
func (c *CPU) execAna(v uint8) {
	c.Reg.ACF = (c.Reg.A|v)&0x08 != 0
	c.Reg.A &= v
	c.Reg.CF = false
	c.setPZS(c.Reg.A)
}

// execOra is ORA(v): CF and AC both clear.
func (c *CPU) execOra(v uint8) {
	c.Reg.A |= v
	c.Reg.CF = false
	c.Reg.ACF = false
	c.setPZS(c.Reg.A)
}

// execXra is XRA(v): CF and AC both clear.
func (c *CPU) execXra(v uint8) {
	c.Reg.A ^= v
	c.Reg.CF = false
	c.Reg.ACF = false
	c.setPZS(c.Reg.A)
}

// execInr is INR(r): r+1 mod 256; CF is untouched.
func (c *CPU) execInr(reg *uint8) {
	old := *reg
	*reg++
	c.setPZS(*reg)
	c.Reg.ACF = halfCarry(*reg, old, 1)
}

// execDcr is DCR(r): r-1 mod 256; CF is untouched.
func (c *CPU) execDcr(reg *uint8) {
	old := *reg
	*reg--
	c.setPZS(*reg)
	c.Reg.ACF = halfCarry(*reg, old, ^uint8(1))
}

// execDad is DAD rp: HL = (HL + rp) mod 2^16, CF from bit 16. PZS/AC
// untouched.
func (c *CPU) execDad(value uint16) {
	hl := c.Reg.HL()
	t := uint32(hl) + uint32(value)
	c.Reg.CF = t&0x10000 != 0
	c.Reg.SetHL(uint16(t))
}

// execRlc rotates A left; the bit rotated out of bit 7 becomes both the new
// bit 0 and the new CF.
func (c *CPU) execRlc() {
	a := c.Reg.A
	c.Reg.A = (a << 1) | (a >> 7)
	c.Reg.CF = a&0x80 != 0
}

// execRrc rotates A right; the bit rotated out of bit 0 becomes both the
// new bit 7 and the new CF.
func (c *CPU) execRrc() {
	a := c.Reg.A
	c.Reg.A = (a >> 1) | (a << 7)
	c.Reg.CF = a&0x01 != 0
}

// execRal rotates A left through carry: the old CF enters bit 0, the old
// bit 7 becomes the new CF.
func (c *CPU) execRal() {
	a := c.Reg.A
	c.Reg.A = (a << 1) | carryBit(c.Reg.CF)
	c.Reg.CF = a&0x80 != 0
}

// execRar rotates A right through carry: the old CF enters bit 7, the old
// bit 0 becomes the new CF.
func (c *CPU) execRar() {
	a := c.Reg.A
	var hi uint8
	if c.Reg.CF {
		hi = 0x80
	}
	c.Reg.A = (a >> 1) | hi
	c.Reg.CF = a&0x01 != 0
}

// execCma is CMA: A = ~A. Flags untouched.
func (c *CPU) execCma() {
	c.Reg.A = ^c.Reg.A
}

// execCmc is CMC: CF = !CF.
func (c *CPU) execCmc() {
	c.Reg.CF = !c.Reg.CF
}

// execStc is STC: CF = 1.
func (c *CPU) execStc() {
	c.Reg.CF = true
}

// execDaa is the decimal-adjust accumulator. The low-nibble/high-nibble
// correction amounts follow the 8080 Programming Manual's table; CF is
// forced set when the high-nibble correction fires, and otherwise keeps the
// value it had before DAA (the correcting add never clears it).
func (c *CPU) execDaa() {
	var add uint8
	cf := c.Reg.CF
	lo := c.Reg.A & 0x0F
	hi := c.Reg.A >> 4

	if lo > 9 || c.Reg.ACF {
		add += 0x06
	}
	if hi > 9 || cf || (hi >= 9 && lo > 9) {
		add += 0x60
		cf = true
	}
	c.execAdd(add, false)
	c.Reg.CF = cf
}
