// monitor.go - interactive machine-level monitor REPL
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/otley-labs/scampii"
)

// bpState mirrors the original monitor's three-way breakpoint status:
// no breakpoint set, an enabled breakpoint, or a disabled (remembered
// but inactive) one.
type bpState int

const (
	bpNone bpState = iota
	bpEnabled
	bpDisabled
)

// Monitor is the REPL loop and command dispatcher driving a CPU,
// memory, and disassembler, matching the original monitor.cpp's single
// global breakpoint slot and uppercase-command convention.
type Monitor struct {
	cpu    *scamp.CPU
	mem    *scamp.Memory
	disasm *scamp.Disassembler
	term   *Terminal

	bpAddr  uint16
	bpState bpState

	in  *bufio.Scanner
	out *bufio.Writer
}

// NewMonitor wires a CPU, its memory, a disassembler bound to the same
// CPU, and a terminal adapter into a ready-to-run Monitor.
func NewMonitor(cpu *scamp.CPU, mem *scamp.Memory, disasm *scamp.Disassembler, term *Terminal) *Monitor {
	return &Monitor{
		cpu:    cpu,
		mem:    mem,
		disasm: disasm,
		term:   term,
		in:     bufio.NewScanner(os.Stdin),
		out:    bufio.NewWriter(os.Stdout),
	}
}

// Run reads and dispatches commands until the user enters Q or EOF.
func (m *Monitor) Run() {
	for {
		fmt.Fprint(m.out, ">>")
		m.out.Flush()
		if !m.in.Scan() {
			return
		}
		line := strings.ToUpper(strings.TrimSpace(m.in.Text()))
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		cmd, args := fields[0], fields[1:]

		switch cmd {
		case "Q":
			return
		case "H", "?":
			m.help()
		case "D":
			m.dump(args)
		case "RESET":
			m.cpu.Reset()
			fmt.Fprintln(m.out, m.cpu.Reg.RegisterSummary())
		case "INIT":
			m.mem.Clear()
			m.cpu.Reset()
			fmt.Fprintln(m.out, m.cpu.Reg.RegisterSummary())
		case "L":
			m.load(args)
		case "S":
			m.save(args)
		case "E":
			m.edit(args)
		case "R":
			m.reg(args)
		case "U":
			m.unasm(args)
		case "T":
			m.trace(args)
		case "G":
			m.goRun(args)
		case "BP":
			m.breakpointSet(args)
		case "BC":
			m.breakpointClear()
		case "BD":
			m.breakpointDisable()
		case "BE":
			m.breakpointEnable()
		case "BL":
			m.breakpointList()
		case "CB":
			m.clipboardCopy(args)
		case "PB":
			m.clipboardPaste(args)
		case "DO":
			m.runScript(args)
		default:
			fmt.Fprintln(m.out, "Error!")
		}
		m.out.Flush()
	}
}

func (m *Monitor) help() {
	fmt.Fprintln(m.out, "Q            quit")
	fmt.Fprintln(m.out, "H, ?         help")
	fmt.Fprintln(m.out, "D [s] [e]    dump memory")
	fmt.Fprintln(m.out, "RESET        reset CPU registers")
	fmt.Fprintln(m.out, "INIT         clear memory and reset CPU")
	fmt.Fprintln(m.out, "L <file>     load S-record file")
	fmt.Fprintln(m.out, "S <f> <s> <e> save S-record file")
	fmt.Fprintln(m.out, "E <addr> [d] edit memory")
	fmt.Fprintln(m.out, "R [reg]      show/edit registers")
	fmt.Fprintln(m.out, "U [addr] [n] disassemble")
	fmt.Fprintln(m.out, "T [n]        trace n instructions")
	fmt.Fprintln(m.out, "G [addr]     run from addr")
	fmt.Fprintln(m.out, "BP <addr>    set breakpoint")
	fmt.Fprintln(m.out, "BC           clear breakpoint")
	fmt.Fprintln(m.out, "BD           disable breakpoint")
	fmt.Fprintln(m.out, "BE           enable breakpoint")
	fmt.Fprintln(m.out, "BL           list breakpoint")
	fmt.Fprintln(m.out, "CB <s> <e>   copy hex dump to clipboard")
	fmt.Fprintln(m.out, "PB <addr>    paste hex bytes from clipboard")
	fmt.Fprintln(m.out, "DO <script>  run a Lua script")
}

// isBreakpoint reports whether addr should halt a run or trace: either
// it is exactly the breakpoint address, or it is the first byte of a
// two-byte instruction whose second byte is the breakpoint address.
func (m *Monitor) isBreakpoint(addr uint16) bool {
	if m.bpState != bpEnabled {
		return false
	}
	if addr == m.bpAddr {
		return true
	}
	opcode := m.mem.Read(addr)
	return scamp.Size(opcode) == 2 && addr+1 == m.bpAddr
}

func (m *Monitor) breakpointMarker(addr uint16) string {
	switch {
	case m.bpState == bpEnabled && addr == m.bpAddr:
		return "[*]"
	case m.bpState != bpNone && addr == m.bpAddr:
		return "[+]"
	default:
		return "   "
	}
}
