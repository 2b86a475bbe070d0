// cpu_test.go
// SPDX-License-Identifier: GPL-3.0-or-later

package scamp

import "testing"

func newTestCPU() *CPU {
	return NewCPU(NewMemory())
}

// The CPU's fetch cycle increments PC before reading: a freshly reset
// CPU (PC=0) fetches its first opcode from address 1, and PC ends each
// fetch pointing at the byte just read. Tests below place code starting
// at address 1 to account for this.

func TestCPU_HaltStopsExecution(t *testing.T) {
	c := newTestCPU()
	c.Mem.Write(1, OpHALT)
	if stat := c.Clock(); stat != Halt {
		t.Fatalf("Clock() = %v, want Halt", stat)
	}
}

func TestCPU_UndefinedOpcode(t *testing.T) {
	c := newTestCPU()
	c.Mem.Write(1, 0x09) // not a defined single-byte opcode
	if stat := c.Clock(); stat != Undefined {
		t.Fatalf("Clock() = %v, want Undefined", stat)
	}
}

func TestCPU_SingleByteAdvancesPCByOne(t *testing.T) {
	c := newTestCPU()
	c.Mem.Write(1, OpNOP)
	c.Clock()
	if c.Reg.PR[PC] != 1 {
		t.Fatalf("PC after one-byte instruction = %#04x, want 0x0001", c.Reg.PR[PC])
	}
}

func TestCPU_DoubleByteAdvancesPCByTwo(t *testing.T) {
	c := newTestCPU()
	c.Mem.Write(1, OpLDI)
	c.Mem.Write(2, 0x42)
	c.Clock()
	if c.Reg.PR[PC] != 2 {
		t.Fatalf("PC after two-byte instruction = %#04x, want 0x0002", c.Reg.PR[PC])
	}
	if c.Reg.AC != 0x42 {
		t.Fatalf("AC after LDI 0x42 = %#x, want 0x42", c.Reg.AC)
	}
}

func TestCPU_XAEIsInvolution(t *testing.T) {
	c := newTestCPU()
	c.Reg.AC = 0x11
	c.Reg.ER = 0x22
	c.execSingle(OpXAE)
	c.execSingle(OpXAE)
	if c.Reg.AC != 0x11 || c.Reg.ER != 0x22 {
		t.Fatalf("double XAE did not restore state: AC=%#x ER=%#x", c.Reg.AC, c.Reg.ER)
	}
}

func TestCPU_XPPCSwapsPCAndTargetThenBack(t *testing.T) {
	c := newTestCPU()
	c.Reg.PR[PC] = 0x1000
	c.Reg.PR[P3] = 0x2000
	c.xppc(P3)
	if c.Reg.PR[PC] != 0x2000 || c.Reg.PR[P3] != 0x1000 {
		t.Fatalf("XPPC P3 once: PC=%#04x P3=%#04x", c.Reg.PR[PC], c.Reg.PR[P3])
	}
	c.xppc(P3)
	if c.Reg.PR[PC] != 0x1000 || c.Reg.PR[P3] != 0x2000 {
		t.Fatalf("XPPC P3 twice did not restore: PC=%#04x P3=%#04x", c.Reg.PR[PC], c.Reg.PR[P3])
	}
}

func TestCPU_InterruptDispatch(t *testing.T) {
	c := newTestCPU()
	c.Reg.SR = StatusIE | StatusSA
	c.Reg.PR[PC] = 0x0010
	c.Reg.PR[P3] = 0x0100

	stat := c.Clock()
	if stat != Interrupted {
		t.Fatalf("Clock() = %v, want Interrupted", stat)
	}
	if c.Reg.SR&StatusIE != 0 {
		t.Fatal("IE should be cleared after interrupt dispatch")
	}
	if c.Reg.PR[PC] != 0x0100 || c.Reg.PR[P3] != 0x0010 {
		t.Fatalf("interrupt did not exchange PC/P3: PC=%#04x P3=%#04x", c.Reg.PR[PC], c.Reg.PR[P3])
	}
	// No opcode should have been fetched this cycle.
}

func TestCPU_SRLOrsCarryIntoBit7(t *testing.T) {
	c := newTestCPU()
	c.Reg.AC = 0x03 // 0b00000011
	c.Reg.SR = StatusCY
	c.execSingle(OpSRL)
	// shift: 0x01; OR carry (0x80) into result -> 0x81
	if c.Reg.AC != 0x81 {
		t.Fatalf("SRL result = %#x, want 0x81 (carry ORed into bit 7)", c.Reg.AC)
	}
}

func TestCPU_RRLRotatesThroughCarry(t *testing.T) {
	c := newTestCPU()
	c.Reg.AC = 0x01
	c.Reg.SR = 0
	c.execSingle(OpRRL)
	if c.Reg.AC != 0x00 {
		t.Fatalf("RRL result = %#x, want 0x00", c.Reg.AC)
	}
	if c.Reg.SR&StatusCY == 0 {
		t.Fatal("expected carry set from shifted-out LSB")
	}
}

func TestCPU_JZTakenWhenACZero(t *testing.T) {
	c := newTestCPU()
	c.Reg.AC = 0
	c.Mem.Write(1, OpJZ) // PR=0, mode=0 -> PC-relative indexed jump
	c.Mem.Write(2, 5)
	c.Clock()
	// After fetching the displacement byte PC points at address 2;
	// the jump target is calcEA(2, 5) = 7.
	if c.Reg.PR[PC] != 7 {
		t.Fatalf("JZ not taken: PC=%#04x, want 0x0007", c.Reg.PR[PC])
	}
}

func TestCPU_JZNotTakenWhenACNonzero(t *testing.T) {
	c := newTestCPU()
	c.Reg.AC = 1
	c.Mem.Write(1, OpJZ)
	c.Mem.Write(2, 5)
	c.Clock()
	if c.Reg.PR[PC] != 2 {
		t.Fatalf("JZ incorrectly taken: PC=%#04x, want 0x0002", c.Reg.PR[PC])
	}
}

func TestCPU_STUndefinedInImmediateMode(t *testing.T) {
	c := newTestCPU()
	c.Mem.Write(1, OpST|0x04) // immediate addressing for ST is illegal
	c.Mem.Write(2, 0)
	if stat := c.Clock(); stat != Undefined {
		t.Fatalf("ST immediate = %v, want Undefined", stat)
	}
}

func TestCPU_PUTCAndGETCBindings(t *testing.T) {
	c := newTestCPU()
	var written []byte
	c.PutChar = func(b byte) { written = append(written, b) }
	c.GetChar = func() byte { return 'a' }

	c.Reg.AC = 'Z' | 0x80
	c.execSingle(OpPUTC)
	if len(written) != 1 || written[0] != 'Z' {
		t.Fatalf("PUTC wrote %v, want ['Z'] (masked to 7 bits)", written)
	}

	c.execSingle(OpGETC)
	if c.Reg.AC != 'A' || c.Reg.ER != 'A' {
		t.Fatalf("GETC AC=%#x ER=%#x, want 'A' uppercased into both", c.Reg.AC, c.Reg.ER)
	}
}
