package cpu

// Step executes exactly one instruction: fetch the opcode byte at PC
// (advancing PC), decode it, fetch whatever immediate bytes it needs
// (advancing PC each time), perform the semantic action, and report
// whether the caller should keep stepping.
//
// Every byte value 0x00-0xFF is handled explicitly. The twelve single-byte
// opcodes the 8085 repurposes (DSUB, ARHL, RDEL, RIM, LDHI, SIM, LDSI,
// SHLX, JNUI, RSTV, LHLX, JUI) are out of 8080 scope and fall through to
// NOP, as do the silicon's undocumented JMP/RET/CALL duplicates at
// 0xCB/0xD9/0xDD/0xED/0xFD.
func (c *CPU) Step() StepResult {
	op := c.ReadNext()

	switch op {

	// === 0x00-0x0F ===
	case 0x00: // NOP
	case 0x01: // LXI B, d16
		c.Reg.SetBC(c.imm16())
	case 0x02: // STAX B
		c.WriteByte(c.Reg.BC(), c.Reg.A)
	case 0x03: // INX B
		c.Reg.SetBC(c.Reg.BC() + 1)
	case 0x04: // INR B
		c.execInr(&c.Reg.B)
	case 0x05: // DCR B
		c.execDcr(&c.Reg.B)
	case 0x06: // MVI B, d8
		c.Reg.B = c.ReadNext()
	case 0x07: // RLC
		c.execRlc()
	case 0x08: // reserved (8085 DSUB) — NOP
	case 0x09: // DAD B
		c.execDad(c.Reg.BC())
	case 0x0A: // LDAX B
		c.Reg.A = c.ReadByte(c.Reg.BC())
	case 0x0B: // DCX B
		c.Reg.SetBC(c.Reg.BC() - 1)
	case 0x0C: // INR C
		c.execInr(&c.Reg.C)
	case 0x0D: // DCR C
		c.execDcr(&c.Reg.C)
	case 0x0E: // MVI C, d8
		c.Reg.C = c.ReadNext()
	case 0x0F: // RRC
		c.execRrc()

	// === 0x10-0x1F ===
	case 0x10: // reserved (8085 ARHL) — NOP
	case 0x11: // LXI D, d16
		c.Reg.SetDE(c.imm16())
	case 0x12: // STAX D
		c.WriteByte(c.Reg.DE(), c.Reg.A)
	case 0x13: // INX D
		c.Reg.SetDE(c.Reg.DE() + 1)
	case 0x14: // INR D
		c.execInr(&c.Reg.D)
	case 0x15: // DCR D
		c.execDcr(&c.Reg.D)
	case 0x16: // MVI D, d8
		c.Reg.D = c.ReadNext()
	case 0x17: // RAL
		c.execRal()
	case 0x18: // reserved (8085 RDEL) — NOP
	case 0x19: // DAD D
		c.execDad(c.Reg.DE())
	case 0x1A: // LDAX D
		c.Reg.A = c.ReadByte(c.Reg.DE())
	case 0x1B: // DCX D
		c.Reg.SetDE(c.Reg.DE() - 1)
	case 0x1C: // INR E
		c.execInr(&c.Reg.E)
	case 0x1D: // DCR E
		c.execDcr(&c.Reg.E)
	case 0x1E: // MVI E, d8
		c.Reg.E = c.ReadNext()
	case 0x1F: // RAR
		c.execRar()

	// === 0x20-0x2F ===
	case 0x20: // reserved (8085 RIM) — NOP
	case 0x21: // LXI H, d16
		c.Reg.SetHL(c.imm16())
	case 0x22: // SHLD a16
		addr := c.imm16()
		c.WriteByte(addr, c.Reg.L)
		c.WriteByte(addr+1, c.Reg.H)
	case 0x23: // INX H
		c.Reg.SetHL(c.Reg.HL() + 1)
	case 0x24: // INR H
		c.execInr(&c.Reg.H)
	case 0x25: // DCR H
		c.execDcr(&c.Reg.H)
	case 0x26: // MVI H, d8
		c.Reg.H = c.ReadNext()
	case 0x27: // DAA
		c.execDaa()
	case 0x28: // reserved (8085 LDHI) — NOP
	case 0x29: // DAD H
		c.execDad(c.Reg.HL())
	case 0x2A: // LHLD a16
		addr := c.imm16()
		c.Reg.L = c.ReadByte(addr)
		c.Reg.H = c.ReadByte(addr + 1)
	case 0x2B: // DCX H
		c.Reg.SetHL(c.Reg.HL() - 1)
	case 0x2C: // INR L
		c.execInr(&c.Reg.L)
	case 0x2D: // DCR L
		c.execDcr(&c.Reg.L)
	case 0x2E: // MVI L, d8
		c.Reg.L = c.ReadNext()
	case 0x2F: // CMA
		c.execCma()

	// === 0x30-0x3F ===
	case 0x30: // reserved (8085 SIM) — NOP
	case 0x31: // LXI SP, d16
		c.Reg.SP = c.imm16()
	case 0x32: // STA a16
		c.WriteByte(c.imm16(), c.Reg.A)
	case 0x33: // INX SP
		c.Reg.SP++
	case 0x34: // INR M
		v := c.ReadByte(c.Reg.HL())
		c.execInr(&v)
		c.WriteByte(c.Reg.HL(), v)
	case 0x35: // DCR M
		v := c.ReadByte(c.Reg.HL())
		c.execDcr(&v)
		c.WriteByte(c.Reg.HL(), v)
	case 0x36: // MVI M, d8
		c.WriteByte(c.Reg.HL(), c.ReadNext())
	case 0x37: // STC
		c.execStc()
	case 0x38: // reserved (8085 LDSI) — NOP
	case 0x39: // DAD SP
		c.execDad(c.Reg.SP)
	case 0x3A: // LDA a16
		c.Reg.A = c.ReadByte(c.imm16())
	case 0x3B: // DCX SP
		c.Reg.SP--
	case 0x3C: // INR A
		c.execInr(&c.Reg.A)
	case 0x3D: // DCR A
		c.execDcr(&c.Reg.A)
	case 0x3E: // MVI A, d8
		c.Reg.A = c.ReadNext()
	case 0x3F: // CMC
		c.execCmc()

	// === 0x40-0x7F: MOV r, r' (0x76 is HLT, not MOV M,M) ===
	case 0x40: // MOV B, B
	case 0x41: // MOV B, C
		c.Reg.B = c.Reg.C
	case 0x42: // MOV B, D
		c.Reg.B = c.Reg.D
	case 0x43: // MOV B, E
		c.Reg.B = c.Reg.E
	case 0x44: // MOV B, H
		c.Reg.B = c.Reg.H
	case 0x45: // MOV B, L
		c.Reg.B = c.Reg.L
	case 0x46: // MOV B, M
		c.Reg.B = c.ReadByte(c.Reg.HL())
	case 0x47: // MOV B, A
		c.Reg.B = c.Reg.A
	case 0x48: // MOV C, B
		c.Reg.C = c.Reg.B
	case 0x49: // MOV C, C
	case 0x4A: // MOV C, D
		c.Reg.C = c.Reg.D
	case 0x4B: // MOV C, E
		c.Reg.C = c.Reg.E
	case 0x4C: // MOV C, H
		c.Reg.C = c.Reg.H
	case 0x4D: // MOV C, L
		c.Reg.C = c.Reg.L
	case 0x4E: // MOV C, M
		c.Reg.C = c.ReadByte(c.Reg.HL())
	case 0x4F: // MOV C, A
		c.Reg.C = c.Reg.A
	case 0x50: // MOV D, B
		c.Reg.D = c.Reg.B
	case 0x51: // MOV D, C
		c.Reg.D = c.Reg.C
	case 0x52: // MOV D, D
	case 0x53: // MOV D, E
		c.Reg.D = c.Reg.E
	case 0x54: // MOV D, H
		c.Reg.D = c.Reg.H
	case 0x55: // MOV D, L
		c.Reg.D = c.Reg.L
	case 0x56: // MOV D, M
		c.Reg.D = c.ReadByte(c.Reg.HL())
	case 0x57: // MOV D, A
		c.Reg.D = c.Reg.A
	case 0x58: // MOV E, B
		c.Reg.E = c.Reg.B
	case 0x59: // MOV E, C
		c.Reg.E = c.Reg.C
	case 0x5A: // MOV E, D
		c.Reg.E = c.Reg.D
	case 0x5B: // MOV E, E
	case 0x5C: // MOV E, H
		c.Reg.E = c.Reg.H
	case 0x5D: // MOV E, L
		c.Reg.E = c.Reg.L
	case 0x5E: // MOV E, M
		c.Reg.E = c.ReadByte(c.Reg.HL())
	case 0x5F: // MOV E, A
		c.Reg.E = c.Reg.A
	case 0x60: // MOV H, B
		c.Reg.H = c.Reg.B
	case 0x61: // MOV H, C
		c.Reg.H = c.Reg.C
	case 0x62: // MOV H, D
		c.Reg.H = c.Reg.D
	case 0x63: // MOV H, E
		c.Reg.H = c.Reg.E
	case 0x64: // MOV H, H
	case 0x65: // MOV H, L
		c.Reg.H = c.Reg.L
	case 0x66: // MOV H, M
		c.Reg.H = c.ReadByte(c.Reg.HL())
	case 0x67: // MOV H, A
		c.Reg.H = c.Reg.A
	case 0x68: // MOV L, B
		c.Reg.L = c.Reg.B
	case 0x69: // MOV L, C
		c.Reg.L = c.Reg.C
	case 0x6A: // MOV L, D
		c.Reg.L = c.Reg.D
	case 0x6B: // MOV L, E
		c.Reg.L = c.Reg.E
	case 0x6C: // MOV L, H
		c.Reg.L = c.Reg.H
	case 0x6D: // MOV L, L
	case 0x6E: // MOV L, M
		c.Reg.L = c.ReadByte(c.Reg.HL())
	case 0x6F: // MOV L, A
		c.Reg.L = c.Reg.A
	case 0x70: // MOV M, B
		c.WriteByte(c.Reg.HL(), c.Reg.B)
	case 0x71: // MOV M, C
		c.WriteByte(c.Reg.HL(), c.Reg.C)
	case 0x72: // MOV M, D
		c.WriteByte(c.Reg.HL(), c.Reg.D)
	case 0x73: // MOV M, E
		c.WriteByte(c.Reg.HL(), c.Reg.E)
	case 0x74: // MOV M, H
		c.WriteByte(c.Reg.HL(), c.Reg.H)
	case 0x75: // MOV M, L
		c.WriteByte(c.Reg.HL(), c.Reg.L)
	case 0x76: // HLT
		c.state = Halted
		return c.state
	case 0x77: // MOV M, A
		c.WriteByte(c.Reg.HL(), c.Reg.A)
	case 0x78: // MOV A, B
		c.Reg.A = c.Reg.B
	case 0x79: // MOV A, C
		c.Reg.A = c.Reg.C
	case 0x7A: // MOV A, D
		c.Reg.A = c.Reg.D
	case 0x7B: // MOV A, E
		c.Reg.A = c.Reg.E
	case 0x7C: // MOV A, H
		c.Reg.A = c.Reg.H
	case 0x7D: // MOV A, L
		c.Reg.A = c.Reg.L
	case 0x7E: // MOV A, M
		c.Reg.A = c.ReadByte(c.Reg.HL())
	case 0x7F: // MOV A, A

	// === 0x80-0x87: ADD r ===
	case 0x80:
		c.execAdd(c.Reg.B, false)
	case 0x81:
		c.execAdd(c.Reg.C, false)
	case 0x82:
		c.execAdd(c.Reg.D, false)
	case 0x83:
		c.execAdd(c.Reg.E, false)
	case 0x84:
		c.execAdd(c.Reg.H, false)
	case 0x85:
		c.execAdd(c.Reg.L, false)
	case 0x86: // ADD M
		c.execAdd(c.ReadByte(c.Reg.HL()), false)
	case 0x87:
		c.execAdd(c.Reg.A, false)

	// === 0x88-0x8F: ADC r ===
	case 0x88:
		c.execAdd(c.Reg.B, c.Reg.CF)
	case 0x89:
		c.execAdd(c.Reg.C, c.Reg.CF)
	case 0x8A:
		c.execAdd(c.Reg.D, c.Reg.CF)
	case 0x8B:
		c.execAdd(c.Reg.E, c.Reg.CF)
	case 0x8C:
		c.execAdd(c.Reg.H, c.Reg.CF)
	case 0x8D:
		c.execAdd(c.Reg.L, c.Reg.CF)
	case 0x8E: // ADC M
		c.execAdd(c.ReadByte(c.Reg.HL()), c.Reg.CF)
	case 0x8F:
		c.execAdd(c.Reg.A, c.Reg.CF)

	// === 0x90-0x97: SUB r ===
	case 0x90:
		c.execSub(c.Reg.B, false)
	case 0x91:
		c.execSub(c.Reg.C, false)
	case 0x92:
		c.execSub(c.Reg.D, false)
	case 0x93:
		c.execSub(c.Reg.E, false)
	case 0x94:
		c.execSub(c.Reg.H, false)
	case 0x95:
		c.execSub(c.Reg.L, false)
	case 0x96: // SUB M
		c.execSub(c.ReadByte(c.Reg.HL()), false)
	case 0x97:
		c.execSub(c.Reg.A, false)

	// === 0x98-0x9F: SBB r ===
	case 0x98:
		c.execSub(c.Reg.B, c.Reg.CF)
	case 0x99:
		c.execSub(c.Reg.C, c.Reg.CF)
	case 0x9A:
		c.execSub(c.Reg.D, c.Reg.CF)
	case 0x9B:
		c.execSub(c.Reg.E, c.Reg.CF)
	case 0x9C:
		c.execSub(c.Reg.H, c.Reg.CF)
	case 0x9D:
		c.execSub(c.Reg.L, c.Reg.CF)
	case 0x9E: // SBB M
		c.execSub(c.ReadByte(c.Reg.HL()), c.Reg.CF)
	case 0x9F:
		c.execSub(c.Reg.A, c.Reg.CF)

	// === 0xA0-0xA7: ANA r ===
	case 0xA0:
		c.execAna(c.Reg.B)
	case 0xA1:
		c.execAna(c.Reg.C)
	case 0xA2:
		c.execAna(c.Reg.D)
	case 0xA3:
		c.execAna(c.Reg.E)
	case 0xA4:
		c.execAna(c.Reg.H)
	case 0xA5:
		c.execAna(c.Reg.L)
	case 0xA6: // ANA M
		c.execAna(c.ReadByte(c.Reg.HL()))
	case 0xA7:
		c.execAna(c.Reg.A)

	// === 0xA8-0xAF: XRA r ===
	case 0xA8:
		c.execXra(c.Reg.B)
	case 0xA9:
		c.execXra(c.Reg.C)
	case 0xAA:
		c.execXra(c.Reg.D)
	case 0xAB:
		c.execXra(c.Reg.E)
	case 0xAC:
		c.execXra(c.Reg.H)
	case 0xAD:
		c.execXra(c.Reg.L)
	case 0xAE: // XRA M
		c.execXra(c.ReadByte(c.Reg.HL()))
	case 0xAF:
		c.execXra(c.Reg.A)

	// === 0xB0-0xB7: ORA r ===
	case 0xB0:
		c.execOra(c.Reg.B)
	case 0xB1:
		c.execOra(c.Reg.C)
	case 0xB2:
		c.execOra(c.Reg.D)
	case 0xB3:
		c.execOra(c.Reg.E)
	case 0xB4:
		c.execOra(c.Reg.H)
	case 0xB5:
		c.execOra(c.Reg.L)
	case 0xB6: // ORA M
		c.execOra(c.ReadByte(c.Reg.HL()))
	case 0xB7:
		c.execOra(c.Reg.A)

	// === 0xB8-0xBF: CMP r ===
	case 0xB8:
		c.execCmp(c.Reg.B)
	case 0xB9:
		c.execCmp(c.Reg.C)
	case 0xBA:
		c.execCmp(c.Reg.D)
	case 0xBB:
		c.execCmp(c.Reg.E)
	case 0xBC:
		c.execCmp(c.Reg.H)
	case 0xBD:
		c.execCmp(c.Reg.L)
	case 0xBE: // CMP M
		c.execCmp(c.ReadByte(c.Reg.HL()))
	case 0xBF:
		c.execCmp(c.Reg.A)

	// === 0xC0-0xCF ===
	case 0xC0: // RNZ
		c.ret(!c.Reg.ZF)
	case 0xC1: // POP B
		lo, hi := c.pop()
		c.Reg.C, c.Reg.B = lo, hi
	case 0xC2: // JNZ a16
		c.jump(!c.Reg.ZF)
	case 0xC3: // JMP a16
		c.jump(true)
	case 0xC4: // CNZ a16
		c.call(!c.Reg.ZF)
	case 0xC5: // PUSH B
		c.push(c.Reg.C, c.Reg.B)
	case 0xC6: // ADI d8
		c.execAdd(c.ReadNext(), false)
	case 0xC7: // RST 0
		c.rst(0)
	case 0xC8: // RZ
		c.ret(c.Reg.ZF)
	case 0xC9: // RET
		c.ret(true)
	case 0xCA: // JZ a16
		c.jump(c.Reg.ZF)
	case 0xCB: // reserved (duplicate JMP in silicon) — NOP
	case 0xCC: // CZ a16
		c.call(c.Reg.ZF)
	case 0xCD: // CALL a16
		c.call(true)
	case 0xCE: // ACI d8
		c.execAdd(c.ReadNext(), c.Reg.CF)
	case 0xCF: // RST 1
		c.rst(1)

	// === 0xD0-0xDF ===
	case 0xD0: // RNC
		c.ret(!c.Reg.CF)
	case 0xD1: // POP D
		lo, hi := c.pop()
		c.Reg.E, c.Reg.D = lo, hi
	case 0xD2: // JNC a16
		c.jump(!c.Reg.CF)
	case 0xD3: // OUT d8 — consumed, no architectural effect
		c.ReadNext()
	case 0xD4: // CNC a16
		c.call(!c.Reg.CF)
	case 0xD5: // PUSH D
		c.push(c.Reg.E, c.Reg.D)
	case 0xD6: // SUI d8
		c.execSub(c.ReadNext(), false)
	case 0xD7: // RST 2
		c.rst(2)
	case 0xD8: // RC
		c.ret(c.Reg.CF)
	case 0xD9: // reserved (8085 SHLX / duplicate RET in silicon) — NOP
	case 0xDA: // JC a16
		c.jump(c.Reg.CF)
	case 0xDB: // IN d8 — consumed, no architectural effect
		c.ReadNext()
	case 0xDC: // CC a16
		c.call(c.Reg.CF)
	case 0xDD: // reserved (8085 LHLX / duplicate CALL in silicon) — NOP
	case 0xDE: // SBI d8
		c.execSub(c.ReadNext(), c.Reg.CF)
	case 0xDF: // RST 3
		c.rst(3)

	// === 0xE0-0xEF ===
	case 0xE0: // RPO
		c.ret(!c.Reg.PF)
	case 0xE1: // POP H
		lo, hi := c.pop()
		c.Reg.L, c.Reg.H = lo, hi
	case 0xE2: // JPO a16
		c.jump(!c.Reg.PF)
	case 0xE3: // XTHL
		c.xthl()
	case 0xE4: // CPO a16
		c.call(!c.Reg.PF)
	case 0xE5: // PUSH H
		c.push(c.Reg.L, c.Reg.H)
	case 0xE6: // ANI d8
		c.execAna(c.ReadNext())
	case 0xE7: // RST 4
		c.rst(4)
	case 0xE8: // RPE
		c.ret(c.Reg.PF)
	case 0xE9: // PCHL
		c.Reg.PC = c.Reg.HL()
	case 0xEA: // JPE a16
		c.jump(c.Reg.PF)
	case 0xEB: // XCHG
		c.xchg()
	case 0xEC: // CPE a16
		c.call(c.Reg.PF)
	case 0xED: // reserved (8085 JNUI / duplicate CALL in silicon) — NOP
	case 0xEE: // XRI d8
		c.execXra(c.ReadNext())
	case 0xEF: // RST 5
		c.rst(5)

	// === 0xF0-0xFF ===
	case 0xF0: // RP
		c.ret(!c.Reg.SF)
	case 0xF1: // POP PSW
		c.popPSW()
	case 0xF2: // JP a16
		c.jump(!c.Reg.SF)
	case 0xF3: // DI
		c.Reg.IE = false
	case 0xF4: // CP a16
		c.call(!c.Reg.SF)
	case 0xF5: // PUSH PSW
		c.pushPSW()
	case 0xF6: // ORI d8
		c.execOra(c.ReadNext())
	case 0xF7: // RST 6
		c.rst(6)
	case 0xF8: // RM
		c.ret(c.Reg.SF)
	case 0xF9: // SPHL
		c.Reg.SP = c.Reg.HL()
	case 0xFA: // JM a16
		c.jump(c.Reg.SF)
	case 0xFB: // EI
		c.Reg.IE = true
	case 0xFC: // CM a16
		c.call(c.Reg.SF)
	case 0xFD: // reserved (8085 JUI / duplicate CALL in silicon) — NOP
	case 0xFE: // CPI d8
		c.execCmp(c.ReadNext())
	case 0xFF: // RST 7
		c.rst(7)
	}

	if c.Reg.PC == 0 {
		c.state = Reset
		return c.state
	}
	c.state = Continue
	return c.state
}
