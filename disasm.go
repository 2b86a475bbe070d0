// disasm.go - single-step disassembler with disassembler/engine EA parity
// SPDX-License-Identifier: GPL-3.0-or-later

package scamp

import "fmt"

// prNames and addrModeSuffix are the fixed operand-rendering tables the
// original disassembler indexes by PR selector (0=PC,1=P1,2=P2,3=P3).
var prNames = [4]string{"PC", "P1", "P2", "P3"}
var addrModeSuffix = [4]string{"", "(P1)", "(P2)", "(P3)"}

// singleByteMnemonics maps a decoded single-byte opcode base to its
// mnemonic; XPAL/XPAH/XPPC append their pointer-register operand
// separately since they carry it in the low two bits.
var singleByteMnemonics = map[byte]string{
	OpHALT: "HALT", OpXAE: "XAE", OpCCL: "CCL", OpSCL: "SCL",
	OpDINT: "DINT", OpIEN: "IEN", OpCSA: "CSA", OpCAS: "CAS",
	OpNOP: "NOP", OpSIO: "SIO", OpSR: "SR", OpSRL: "SRL",
	OpRR: "RR", OpRRL: "RRL", OpLDE: "LDE", OpANE: "ANE",
	OpORE: "ORE", OpXRE: "XRE", OpDAE: "DAE", OpADE: "ADE",
	OpCAE: "CAE", OpPUTC: "PUTC", OpGETC: "GETC",
}

// Instruction describes one decoded instruction: its address, raw
// bytes, assembler text, and (for addressing-mode instructions) the
// resolved effective-address annotation.
type Instruction struct {
	Addr     uint16
	Bytes    []byte
	Mnemonic string
	EA       string
}

// Disassembler decodes instructions using a snapshot of PR[0..3] taken
// via Snapshot, not the CPU's live registers — so that stepping the
// disassembler through a buffer never perturbs, and is never perturbed
// by, the CPU's own execution state. This mirrors the original
// implementation's save_pr()-before-disasm discipline exactly. The
// extension register, by contrast, is read live from CPU at decode
// time (only used to substitute for a disp of exactly -128), matching
// the original's disasm_ea reading cpu.getER() directly.
type Disassembler struct {
	Mem *Memory
	CPU *CPU
	pr  [4]uint16
}

// NewDisassembler returns a disassembler reading from mem with a zeroed
// register snapshot; call Snapshot before first use to seed it from a
// live CPU.
func NewDisassembler(mem *Memory, cpu *CPU) *Disassembler {
	return &Disassembler{Mem: mem, CPU: cpu}
}

// Snapshot records pr as the disassembler's view of PR[0..3] for every
// subsequent Decode call until the next Snapshot.
func (d *Disassembler) Snapshot(pr [4]uint16) {
	d.pr = pr
}

// Decode disassembles the one- or two-byte instruction at addr.
func (d *Disassembler) Decode(addr uint16) Instruction {
	opcode := d.Mem.Read(addr)
	if opcode&signByte == 0 {
		return Instruction{
			Addr:     addr,
			Bytes:    []byte{opcode},
			Mnemonic: d.decodeSingle(opcode),
		}
	}
	operand := int8(d.Mem.Read(addr + 1))
	mnemonic, ea := d.decodeDouble(addr, opcode, operand)
	return Instruction{
		Addr:     addr,
		Bytes:    []byte{opcode, byte(operand)},
		Mnemonic: mnemonic,
		EA:       ea,
	}
}

// Size returns 1 or 2, the encoded length of the instruction whose
// first byte is opcode.
func Size(opcode byte) int {
	if opcode&signByte == 0 {
		return 1
	}
	return 2
}

func (d *Disassembler) decodeSingle(opcode byte) string {
	base := decodeSingle(opcode)
	if name, ok := singleByteMnemonics[base]; ok {
		return name
	}
	switch base {
	case OpXPAL:
		return "XPAL " + prNames[opcode&bitOpcodePR]
	case OpXPAH:
		return "XPAH " + prNames[opcode&bitOpcodePR]
	case OpXPPC:
		return "XPPC " + prNames[opcode&bitOpcodePR]
	default:
		return "UND"
	}
}

func (d *Disassembler) decodeDouble(addr uint16, opcode byte, operand int8) (mnemonic, ea string) {
	switch decodeDouble(opcode) {
	case OpDLY:
		return pad("DLY", operandDecimal(operand)), ""
	case OpJMP:
		return pad("JMP", d.operandAddressing(opcode&bitOpcodePR, operand)), d.eaJump(addr, opcode&bitOpcodePR, operand)
	case OpJP:
		return pad("JP", d.operandAddressing(opcode&bitOpcodePR, operand)), d.eaJump(addr, opcode&bitOpcodePR, operand)
	case OpJZ:
		return pad("JZ", d.operandAddressing(opcode&bitOpcodePR, operand)), d.eaJump(addr, opcode&bitOpcodePR, operand)
	case OpJNZ:
		return pad("JNZ", d.operandAddressing(opcode&bitOpcodePR, operand)), d.eaJump(addr, opcode&bitOpcodePR, operand)
	case OpILD:
		return pad("ILD", d.operandAddressing(opcode&bitOpcodePR, operand)), d.eaMemory(addr, opcode&bitOpcodePR, operand)
	case OpDLD:
		return pad("DLD", d.operandAddressing(opcode&bitOpcodePR, operand)), d.eaMemory(addr, opcode&bitOpcodePR, operand)
	case OpLD:
		am := opcode & (bitOpcodeMode | bitOpcodePR)
		if opcode == OpLDI {
			return pad("LDI", d.operandAddressing(am, operand)), ""
		}
		return pad("LD", d.operandAddressing(am, operand)), d.eaMemory(addr, am, operand)
	case OpST:
		am := opcode & (bitOpcodeMode | bitOpcodePR)
		if am == 0x04 {
			return "UND", ""
		}
		return pad("ST", d.operandAddressing(am, operand)), d.eaMemory(addr, am, operand)
	case OpAND:
		return d.immediateOrMemory("AND", "ANI", OpANI, addr, opcode, operand)
	case OpOR:
		return d.immediateOrMemory("OR", "ORI", OpORI, addr, opcode, operand)
	case OpXOR:
		return d.immediateOrMemory("XOR", "XRI", OpXRI, addr, opcode, operand)
	case OpDAD:
		return d.immediateOrMemory("DAD", "DAI", OpDAI, addr, opcode, operand)
	case OpADD:
		return d.immediateOrMemory("ADD", "ADI", OpADI, addr, opcode, operand)
	case OpCAD:
		return d.immediateOrMemory("CAD", "CAI", OpCAI, addr, opcode, operand)
	default:
		return "UND", ""
	}
}

// immediateOrMemory renders the shared shape of AND/OR/XOR/DAD/ADD/CAD
// and their immediate ("I"-suffixed) variants, which differ only in
// whether an EA annotation is produced.
func (d *Disassembler) immediateOrMemory(memName, immName string, immOp byte, addr uint16, opcode byte, operand int8) (string, string) {
	am := opcode & (bitOpcodeMode | bitOpcodePR)
	if opcode == immOp {
		return pad(immName, d.operandAddressing(am, operand)), ""
	}
	return pad(memName, d.operandAddressing(am, operand)), d.eaMemory(addr, am, operand)
}

func pad(mnemonic, operand string) string {
	return fmt.Sprintf("%-4s %s", mnemonic, operand)
}

func operandDecimal(operand int8) string {
	return fmt.Sprintf("%d", operand)
}

func operandHex(operand int8) string {
	return fmt.Sprintf("0x%02x", byte(operand))
}

// operandAddressing renders an addressing-mode operand: a hex literal
// for immediate mode, otherwise a decimal displacement with an "@"
// auto-indexed prefix and a "(Pn)" pointer-register suffix.
func (d *Disassembler) operandAddressing(addressing byte, operand int8) string {
	if addressing&(bitOpcodeMode|bitOpcodePR) == 0x04 {
		return operandHex(operand)
	}
	out := ""
	if addressing&bitOpcodeMode != 0 {
		out = "@"
	}
	return out + operandDecimal(operand) + addrModeSuffix[addressing&bitOpcodePR]
}

func (d *Disassembler) eaJump(addr uint16, addressing byte, disp int8) string {
	ea := d.disasmEA(addressing, disp)
	return fmt.Sprintf("JUMP=%04x", ea)
}

func (d *Disassembler) eaMemory(addr uint16, addressing byte, disp int8) string {
	ea := d.disasmEA(addressing, disp)
	return fmt.Sprintf("EA=%04x(%02x)", ea, d.Mem.Read(ea))
}

// disasmEA computes the effective address for display purposes using
// the disassembler's snapshotted pointer registers, not live CPU
// state, and never mutates them — auto-indexed addressing is read-only
// from the disassembler's point of view. A disp of -128 is replaced by
// the CPU's live extension register, matching execution's ER-
// substitution quirk.
func (d *Disassembler) disasmEA(addressing byte, disp int8) uint16 {
	ptr := d.pr[addressing&bitOpcodePR]

	if disp == -128 && d.CPU != nil {
		disp = int8(d.CPU.Reg.ER)
	}

	if addressing&bitOpcodeMode == 0 {
		return (ptr & PageMask) | uint16(int32(ptr)+int32(disp))&^PageMask
	}
	if disp < 0 {
		return (ptr & PageMask) | uint16(int32(ptr)+int32(disp)+1)&^PageMask
	}
	return ptr
}
