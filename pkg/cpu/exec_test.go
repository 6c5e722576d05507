package cpu

import "testing"

// TestFlagTables verifies the precomputed parity table against hand-checked
// values.
func TestFlagTables(t *testing.T) {
	if !ParityTable[0x00] {
		t.Error("ParityTable[0x00] should be even (0 bits set)")
	}
	if ParityTable[0x01] {
		t.Error("ParityTable[0x01] should be odd (1 bit set)")
	}
	if !ParityTable[0xFF] {
		t.Error("ParityTable[0xFF] should be even (8 bits set)")
	}
	if !ParityTable[0x03] {
		t.Error("ParityTable[0x03] should be even (2 bits set)")
	}
}

func newCPUWithProgram(program ...uint8) *CPU {
	c := New()
	copy(c.Mem[0:], program)
	return c
}

// TestAddFlags exercises ADD A, d8 via ADI across the carry/half-carry/zero
// boundary cases.
func TestAddFlags(t *testing.T) {
	tests := []struct {
		a, val           uint8
		wantA            uint8
		wantCF, wantZF   bool
		wantSF, wantACF  bool
	}{
		{0x00, 0x00, 0x00, false, true, false, false},
		{0x01, 0x01, 0x02, false, false, false, false},
		{0xFF, 0x01, 0x00, true, true, false, true},
		{0x0F, 0x01, 0x10, false, false, false, true},
		{0x7F, 0x01, 0x80, false, false, true, true},
		{0x80, 0x80, 0x00, true, true, false, false},
	}

	for _, tc := range tests {
		c := newCPUWithProgram(0xC6, tc.val) // ADI val
		c.Reg.A = tc.a
		c.Step()

		if c.Reg.A != tc.wantA {
			t.Errorf("ADI %02X+%02X: A=%02X, want %02X", tc.a, tc.val, c.Reg.A, tc.wantA)
		}
		if c.Reg.CF != tc.wantCF {
			t.Errorf("ADI %02X+%02X: CF=%v, want %v", tc.a, tc.val, c.Reg.CF, tc.wantCF)
		}
		if c.Reg.ZF != tc.wantZF {
			t.Errorf("ADI %02X+%02X: ZF=%v, want %v", tc.a, tc.val, c.Reg.ZF, tc.wantZF)
		}
		if c.Reg.SF != tc.wantSF {
			t.Errorf("ADI %02X+%02X: SF=%v, want %v", tc.a, tc.val, c.Reg.SF, tc.wantSF)
		}
		if c.Reg.ACF != tc.wantACF {
			t.Errorf("ADI %02X+%02X: ACF=%v, want %v", tc.a, tc.val, c.Reg.ACF, tc.wantACF)
		}
	}
}

// TestSubBorrow verifies SUI's two's-complement borrow semantics.
func TestSubBorrow(t *testing.T) {
	tests := []struct {
		a, val    uint8
		wantA     uint8
		wantCF    bool
	}{
		{5, 3, 2, false},
		{0, 1, 0xFF, true},
		{0x80, 1, 0x7F, false},
	}

	for _, tc := range tests {
		c := newCPUWithProgram(0xD6, tc.val) // SUI val
		c.Reg.A = tc.a
		c.Step()
		if c.Reg.A != tc.wantA {
			t.Errorf("SUI %02X-%02X: A=%02X, want %02X", tc.a, tc.val, c.Reg.A, tc.wantA)
		}
		if c.Reg.CF != tc.wantCF {
			t.Errorf("SUI %02X-%02X: CF=%v, want %v", tc.a, tc.val, c.Reg.CF, tc.wantCF)
		}
	}
}

// TestLogicOps verifies the ANI/XRI/ORI results and that ANI clears CF.
func TestLogicOps(t *testing.T) {
	c := newCPUWithProgram(0xE6, 0x0F) // ANI 0x0F
	c.Reg.A = 0xFF
	c.Reg.CF = true
	c.Step()
	if c.Reg.A != 0x0F {
		t.Errorf("ANI: A=%02X, want 0F", c.Reg.A)
	}
	if c.Reg.CF {
		t.Error("ANI should clear CF")
	}

	c = newCPUWithProgram(0xEE, 0xFF) // XRI 0xFF
	c.Reg.A = 0x0F
	c.Step()
	if c.Reg.A != 0xF0 {
		t.Errorf("XRI: A=%02X, want F0", c.Reg.A)
	}

	c = newCPUWithProgram(0xF6, 0x0F) // ORI 0x0F
	c.Reg.A = 0xF0
	c.Step()
	if c.Reg.A != 0xFF {
		t.Errorf("ORI: A=%02X, want FF", c.Reg.A)
	}
}

// TestIncDecPreservesCarry checks that INR/DCR never touch CF, per the 8080
// convention (unlike ADD/SUB).
func TestIncDecPreservesCarry(t *testing.T) {
	c := newCPUWithProgram(0x3C) // INR A
	c.Reg.A = 0xFF
	c.Reg.CF = true
	c.Step()
	if c.Reg.A != 0x00 {
		t.Errorf("INR A: A=%02X, want 00", c.Reg.A)
	}
	if !c.Reg.ZF {
		t.Error("INR A wrapping to 0 should set ZF")
	}
	if !c.Reg.CF {
		t.Error("INR A must not touch CF")
	}

	c = newCPUWithProgram(0x3D) // DCR A
	c.Reg.A = 0x00
	c.Reg.CF = false
	c.Step()
	if c.Reg.A != 0xFF {
		t.Errorf("DCR A: A=%02X, want FF", c.Reg.A)
	}
	if c.Reg.CF {
		t.Error("DCR A must not touch CF")
	}
}

// TestDaaWorkedExample replays a decimal-adjust addition: BCD 28 + BCD 14
// should read back as BCD 42.
func TestDaaWorkedExample(t *testing.T) {
	c := newCPUWithProgram(0x3E, 0x28, 0xC6, 0x14, 0x27) // MVI A,28h; ADI 14h; DAA
	c.Step()
	c.Step()
	c.Step()
	if c.Reg.A != 0x42 {
		t.Errorf("DAA: A=%02X, want 42", c.Reg.A)
	}
	if c.Reg.CF {
		t.Error("DAA: CF should be clear")
	}
}

// TestMovRegToReg exercises a representative slice of the MOV block,
// including the M (memory-via-HL) operand on both sides.
func TestMovRegToReg(t *testing.T) {
	c := newCPUWithProgram(0x41) // MOV B,C
	c.Reg.C = 0x55
	c.Step()
	if c.Reg.B != 0x55 {
		t.Errorf("MOV B,C: B=%02X, want 55", c.Reg.B)
	}

	c = newCPUWithProgram(0x77) // MOV M,A
	c.Reg.A = 0x99
	c.Reg.SetHL(0x3000)
	c.Step()
	if c.Mem[0x3000] != 0x99 {
		t.Errorf("MOV M,A: mem[3000]=%02X, want 99", c.Mem[0x3000])
	}

	c = newCPUWithProgram(0x7E) // MOV A,M
	c.Reg.SetHL(0x3000)
	c.Mem[0x3000] = 0x77
	c.Step()
	if c.Reg.A != 0x77 {
		t.Errorf("MOV A,M: A=%02X, want 77", c.Reg.A)
	}
}

// TestHlt verifies HLT reports Halted both from Step and from State.
func TestHlt(t *testing.T) {
	c := newCPUWithProgram(0x76) // HLT
	if got := c.Step(); got != Halted {
		t.Errorf("HLT: Step()=%v, want Halted", got)
	}
	if c.State() != Halted {
		t.Errorf("State()=%v, want Halted", c.State())
	}
}

// TestReservedOpcodesAreNops verifies all twelve 8085-only byte values are
// single-byte no-ops under the 8080 dispatch: no operand is consumed, no
// register or flag changes, PC advances by exactly one.
func TestReservedOpcodesAreNops(t *testing.T) {
	reserved := []uint8{0x08, 0x10, 0x18, 0x20, 0x28, 0x30, 0x38, 0xCB, 0xD9, 0xDD, 0xED, 0xFD}
	for _, op := range reserved {
		c := newCPUWithProgram(op, 0xFF, 0xFF)
		c.Reg.A, c.Reg.B, c.Reg.C = 0x11, 0x22, 0x33
		before := c.Reg
		c.Step()
		if c.Reg.PC != 1 {
			t.Errorf("opcode %02X: PC=%d after Step, want 1 (must not consume operands)", op, c.Reg.PC)
		}
		after := c.Reg
		after.PC = before.PC
		if after != before {
			t.Errorf("opcode %02X: registers changed, want pure no-op", op)
		}
	}
}

// TestPushPopRoundTrip exercises PUSH B / POP D moving BC through the stack
// and landing in DE unchanged.
func TestPushPopRoundTrip(t *testing.T) {
	c := newCPUWithProgram(0xC5, 0xD1) // PUSH B; POP D
	c.Reg.SP = 0x2000
	c.Reg.B, c.Reg.C = 0x12, 0x34
	c.Step()
	c.Step()
	if c.Reg.DE() != 0x1234 {
		t.Errorf("PUSH B/POP D: DE=%04X, want 1234", c.Reg.DE())
	}
	if c.Reg.SP != 0x2000 {
		t.Errorf("PUSH/POP: SP=%04X, want back at 2000", c.Reg.SP)
	}
}

// TestConditionalCallAlwaysConsumesOperand verifies CNZ consumes its 2-byte
// address even when the call does not fire.
func TestConditionalCallAlwaysConsumesOperand(t *testing.T) {
	c := newCPUWithProgram(0xC4, 0x00, 0x30, 0x00) // CNZ 3000h; NOP
	c.Reg.ZF = true                                // condition false: must not call
	c.Reg.SP = 0x2000
	c.Step()
	if c.Reg.PC != 3 {
		t.Errorf("CNZ (not taken): PC=%d, want 3 (operand bytes consumed)", c.Reg.PC)
	}
	if c.Reg.SP != 0x2000 {
		t.Error("CNZ (not taken) must not push a return address")
	}
}

// TestRst0UsesRealIntelSemantics verifies RST 0 pushes the return address
// and jumps to 0x0000, rather than behaving as a no-op.
func TestRst0UsesRealIntelSemantics(t *testing.T) {
	c := New()
	c.Mem[0x4000] = 0xC7 // RST 0
	c.Reg.PC = 0x4000
	c.Reg.SP = 0x2000
	c.Step()
	if c.Reg.PC != 0x0000 {
		t.Errorf("RST 0: PC=%04X, want 0000", c.Reg.PC)
	}
	lo, hi := c.pop()
	if uint16(hi)<<8|uint16(lo) != 0x4001 {
		t.Errorf("RST 0: pushed return address %04X, want 4001", uint16(hi)<<8|uint16(lo))
	}
}

// TestLxiLittleEndian verifies LXI H loads low-byte-first; LXI B/D/SP read
// their operand through the same imm16 helper.
func TestLxiLittleEndian(t *testing.T) {
	c := newCPUWithProgram(0x21, 0x34, 0x12) // LXI H, 1234h
	c.Step()
	if c.Reg.HL() != 0x1234 {
		t.Errorf("LXI H: HL=%04X, want 1234", c.Reg.HL())
	}
}

// TestShldLhldRoundTrip verifies SHLD/LHLD store and load L at addr, H at
// addr+1.
func TestShldLhldRoundTrip(t *testing.T) {
	c := newCPUWithProgram(0x22, 0x00, 0x30) // SHLD 3000h
	c.Reg.SetHL(0xABCD)
	c.Step()
	if c.Mem[0x3000] != 0xCD || c.Mem[0x3001] != 0xAB {
		t.Errorf("SHLD: mem[3000..3001]=%02X %02X, want CD AB", c.Mem[0x3000], c.Mem[0x3001])
	}

	c = newCPUWithProgram(0x2A, 0x00, 0x30) // LHLD 3000h
	c.Mem[0x3000], c.Mem[0x3001] = 0xCD, 0xAB
	c.Step()
	if c.Reg.HL() != 0xABCD {
		t.Errorf("LHLD: HL=%04X, want ABCD", c.Reg.HL())
	}
}

// TestResetOnPcZero verifies PC wrapping to 0 (other than via RST 0) is
// reported as Reset, the convention the conformance ROMs use to signal
// completion.
func TestResetOnPcZero(t *testing.T) {
	c := newCPUWithProgram(0xC3, 0x00, 0x00) // JMP 0000h
	got := c.Step()
	if got != Reset {
		t.Errorf("JMP 0000h: Step()=%v, want Reset", got)
	}
}
