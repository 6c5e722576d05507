package cpu

// This file implements spec §4.4: the stack discipline and control-transfer
// primitives shared by CALL/RET/RST/PUSH/POP/JMP and friends.

// push writes lo/hi onto the stack and decrements SP by 2 — mirrors
// PUSH(lo, hi): memory[SP-1] = hi; memory[SP-2] = lo.
func (c *CPU) push(lo, hi uint8) {
	c.WriteByte(c.Reg.SP-1, hi)
	c.WriteByte(c.Reg.SP-2, lo)
	c.Reg.SP -= 2
}

// pop reads lo/hi off the stack and increments SP by 2.
func (c *CPU) pop() (lo, hi uint8) {
	lo = c.ReadByte(c.Reg.SP)
	hi = c.ReadByte(c.Reg.SP + 1)
	c.Reg.SP += 2
	return lo, hi
}

// pushPC pushes the current PC (low byte first, per push's lo/hi order).
func (c *CPU) pushPC() {
	c.push(uint8(c.Reg.PC), uint8(c.Reg.PC>>8))
}

// popPC pops PC off the stack.
func (c *CPU) popPC() {
	lo, hi := c.pop()
	c.Reg.PC = uint16(hi)<<8 | uint16(lo)
}

// jump is JMP/Jcc: the 2-byte target is always consumed from the
// instruction stream, even when cond is false.
func (c *CPU) jump(cond bool) {
	addr := c.imm16()
	if cond {
		c.Reg.PC = addr
	}
}

// call is CALL/Ccc: the 2-byte target is always consumed; the return
// address is only pushed, and PC only redirected, when cond is true.
func (c *CPU) call(cond bool) {
	addr := c.imm16()
	if cond {
		c.pushPC()
		c.Reg.PC = addr
	}
}

// ret is RET/Rcc: no operand bytes are ever consumed.
func (c *CPU) ret(cond bool) {
	if cond {
		c.popPC()
	}
}

// rst is RST n: PUSH(PCL, PCH); PC = 8*n.
func (c *CPU) rst(n uint8) {
	c.pushPC()
	c.Reg.PC = 8 * uint16(n)
}

// xthl swaps HL with the two bytes at the top of the stack; SP unchanged.
func (c *CPU) xthl() {
	lo, hi := c.ReadByte(c.Reg.SP), c.ReadByte(c.Reg.SP+1)
	c.WriteByte(c.Reg.SP, c.Reg.L)
	c.WriteByte(c.Reg.SP+1, c.Reg.H)
	c.Reg.L, c.Reg.H = lo, hi
}

// xchg swaps HL and DE as pairs.
func (c *CPU) xchg() {
	hl := c.Reg.HL()
	c.Reg.SetHL(c.Reg.DE())
	c.Reg.SetDE(hl)
}

// pushPSW is PUSH PSW: memory[SP-1] = A, memory[SP-2] = packed flags.
func (c *CPU) pushPSW() {
	c.push(c.Reg.PSW(), c.Reg.A)
}

// popPSW is POP PSW: restores A and the five condition flags.
func (c *CPU) popPSW() {
	lo, hi := c.pop()
	c.Reg.SetPSW(lo)
	c.Reg.A = hi
}
