// commands.go - individual monitor command implementations
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/otley-labs/scampii"
)

// parseAddr accepts a bare hex token (the monitor uppercases input
// before dispatch, so hex digits always arrive as A-F already).
func parseAddr(tok string) (uint16, bool) {
	v, err := strconv.ParseUint(tok, 16, 16)
	if err != nil {
		return 0, false
	}
	return uint16(v), true
}

func parseByte(tok string) (byte, bool) {
	v, err := strconv.ParseUint(tok, 16, 8)
	if err != nil {
		return 0, false
	}
	return byte(v), true
}

func (m *Monitor) dump(args []string) {
	start := m.cpu.Reg.PR[scamp.PC]
	if len(args) > 0 {
		if v, ok := parseAddr(args[0]); ok {
			start = v
		}
	}
	end := start + 15
	if len(args) > 1 {
		if v, ok := parseAddr(args[1]); ok {
			end = v
		}
	}
	if end < start {
		fmt.Fprintln(m.out, "Error!")
		return
	}
	fmt.Fprint(m.out, m.mem.Dump(start, end))
}

func (m *Monitor) load(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(m.out, "Error!")
		return
	}
	filename := args[0]
	f, err := os.Open(filename)
	if err != nil {
		fmt.Fprintf(m.out, "File not found!(%s)\n", filename)
		return
	}
	defer f.Close()

	result, err := scamp.Load(m.mem, f)
	if err != nil {
		fmt.Fprintf(m.out, "Load error: %v\n", err)
		return
	}
	if filename == "NIBL.SREC" {
		m.cpu.SetSenseB()
	}
	fmt.Fprintf(m.out, "%s(%04x:%04x)\n", filename, result.Start, result.End)
}

func (m *Monitor) save(args []string) {
	if len(args) < 3 {
		fmt.Fprintln(m.out, "Error!")
		return
	}
	filename := args[0]
	start, ok1 := parseAddr(args[1])
	end, ok2 := parseAddr(args[2])
	if !ok1 || !ok2 {
		fmt.Fprintln(m.out, "Error!")
		return
	}
	f, err := os.Create(filename)
	if err != nil {
		fmt.Fprintf(m.out, "OPEN ERROR!!%s\n", filename)
		return
	}
	defer f.Close()

	if err := scamp.Save(m.mem, f, filename, start, end); err != nil {
		fmt.Fprintf(m.out, "Write error: %v\n", err)
		return
	}
	fmt.Fprintf(m.out, "%s(%04x:%04x)\n", filename, start, end)
}

// edit implements both the single-value "E addr data" form and the
// interactive "E addr" loop that edits successive addresses until a
// bare "." is entered.
func (m *Monitor) edit(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(m.out, "Error!")
		return
	}
	addr, ok := parseAddr(args[0])
	if !ok {
		fmt.Fprintln(m.out, "Error!")
		return
	}

	if len(args) >= 2 {
		data, ok := parseByte(args[1])
		if !ok {
			fmt.Fprintln(m.out, "Error!")
			return
		}
		fmt.Fprintf(m.out, "%04x %02x:%02x\n", addr, m.mem.Read(addr), data)
		m.mem.Write(addr, data)
		return
	}

	for {
		fmt.Fprintf(m.out, "%04x %02x:", addr, m.mem.Read(addr))
		m.out.Flush()
		if !m.in.Scan() {
			return
		}
		tok := strings.TrimSpace(strings.ToUpper(m.in.Text()))
		if tok == "." {
			return
		}
		if data, ok := parseByte(tok); ok {
			m.mem.Write(addr, data)
		}
		addr++
	}
}

func (m *Monitor) reg(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(m.out, m.cpu.Reg.RegisterSummary())
		return
	}
	name := args[0]
	if len(args) >= 2 {
		m.setRegisterFromToken(name, args[1])
		fmt.Fprintln(m.out, m.cpu.Reg.RegisterSummary())
		return
	}
	m.interactiveRegisterEdit(name)
}

func (m *Monitor) setRegisterFromToken(name, tok string) {
	switch name {
	case "AC":
		if v, ok := parseByte(tok); ok {
			m.cpu.Reg.AC = v
		}
	case "ER":
		if v, ok := parseByte(tok); ok {
			m.cpu.Reg.ER = v
		}
	case "SR":
		if v, ok := parseByte(tok); ok {
			m.cpu.Reg.SR = v
		}
	case "PC":
		if v, ok := parseAddr(tok); ok {
			m.cpu.Reg.PR[scamp.PC] = v
		}
	case "P1":
		if v, ok := parseAddr(tok); ok {
			m.cpu.Reg.PR[scamp.P1] = v
		}
	case "P2":
		if v, ok := parseAddr(tok); ok {
			m.cpu.Reg.PR[scamp.P2] = v
		}
	case "P3":
		if v, ok := parseAddr(tok); ok {
			m.cpu.Reg.PR[scamp.P3] = v
		}
	default:
		fmt.Fprintln(m.out, "Error!")
	}
}

func (m *Monitor) interactiveRegisterEdit(name string) {
	isWord := name == "PC" || name == "P1" || name == "P2" || name == "P3"
	for {
		var cur string
		if isWord {
			cur = fmt.Sprintf("%04x", m.registerWordValue(name))
		} else {
			cur = fmt.Sprintf("%02x", m.registerByteValue(name))
		}
		fmt.Fprintf(m.out, "%s %s:", name, cur)
		m.out.Flush()
		if !m.in.Scan() {
			return
		}
		tok := strings.TrimSpace(strings.ToUpper(m.in.Text()))
		if tok == "." {
			return
		}
		m.setRegisterFromToken(name, tok)
		return
	}
}

func (m *Monitor) registerByteValue(name string) byte {
	switch name {
	case "AC":
		return m.cpu.Reg.AC
	case "ER":
		return m.cpu.Reg.ER
	case "SR":
		return m.cpu.Reg.SR
	}
	return 0
}

func (m *Monitor) registerWordValue(name string) uint16 {
	switch name {
	case "PC":
		return m.cpu.Reg.PR[scamp.PC]
	case "P1":
		return m.cpu.Reg.PR[scamp.P1]
	case "P2":
		return m.cpu.Reg.PR[scamp.P2]
	case "P3":
		return m.cpu.Reg.PR[scamp.P3]
	}
	return 0
}

func (m *Monitor) unasm(args []string) {
	addr := m.cpu.Reg.PR[scamp.PC] + 1
	if len(args) > 0 {
		if v, ok := parseAddr(args[0]); ok {
			addr = v
		}
	}
	steps := 8
	if len(args) > 1 {
		if v, err := strconv.Atoi(args[1]); err == nil {
			steps = v
		}
	}
	m.disasm.Snapshot(m.cpu.SavePR())
	for i := 0; i < steps; i++ {
		inst := m.disasm.Decode(addr)
		fmt.Fprintf(m.out, "%s %04x %-13s %s\n", m.breakpointMarker(addr), addr, hexBytes(inst.Bytes), inst.Mnemonic)
		addr += uint16(len(inst.Bytes))
	}
}

func hexBytes(b []byte) string {
	var sb strings.Builder
	for _, v := range b {
		fmt.Fprintf(&sb, "%02x ", v)
	}
	return sb.String()
}

func (m *Monitor) trace(args []string) {
	steps := 1
	if len(args) > 0 {
		if v, err := strconv.Atoi(args[0]); err == nil {
			steps = v
		}
	}
	m.cpu.Mode = scamp.ModeTrace

	for i := 0; i < steps; i++ {
		addr := m.cpu.Reg.PR[scamp.PC] + 1
		m.disasm.Snapshot(m.cpu.SavePR())
		inst := m.disasm.Decode(addr)
		fmt.Fprintf(m.out, "%s %04x %-13s %-16s %-11s : %s\n",
			m.breakpointMarker(addr), addr, hexBytes(inst.Bytes), inst.Mnemonic, inst.EA, m.cpu.Reg.RegisterSummary())

		stat := m.cpu.Clock()
		switch stat {
		case scamp.Interrupted:
			fmt.Fprintf(m.out, "Interrupt!: PC(%04x)<->P3(%04x)\n", m.cpu.Reg.PR[scamp.PC], m.cpu.Reg.PR[scamp.P3])
		case scamp.Halt:
			fmt.Fprintln(m.out, "HALT!")
			return
		case scamp.Undefined:
			fmt.Fprintln(m.out, "UNDEFINED INSTRUCTION!")
			return
		}
		if m.isBreakpoint(addr) {
			fmt.Fprintln(m.out, "Breakpoint!")
			return
		}
	}
}

func (m *Monitor) goRun(args []string) {
	if len(args) > 0 {
		if v, ok := parseAddr(args[0]); ok {
			m.cpu.Reg.PR[scamp.PC] = v
		}
	}
	m.cpu.Mode = scamp.ModeRun
	for {
		fetchAddr := m.cpu.Reg.PR[scamp.PC] + 1
		if m.isBreakpoint(fetchAddr) {
			fmt.Fprintln(m.out, "Breakpoint!")
			return
		}
		stat := m.cpu.Clock()
		if stat == scamp.Halt {
			fmt.Fprintln(m.out, "HALT!")
			return
		}
		if stat == scamp.Undefined {
			fmt.Fprintln(m.out, "UNDEFINED INSTRUCTION!")
			return
		}
	}
}

func (m *Monitor) breakpointSet(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(m.out, "Error!")
		return
	}
	addr, ok := parseAddr(args[0])
	if !ok {
		fmt.Fprintln(m.out, "Error!")
		return
	}
	m.bpAddr = addr
	m.bpState = bpEnabled
}

func (m *Monitor) breakpointClear() {
	m.bpState = bpNone
}

func (m *Monitor) breakpointDisable() {
	if m.bpState == bpEnabled {
		m.bpState = bpDisabled
	}
}

func (m *Monitor) breakpointEnable() {
	if m.bpState == bpDisabled {
		m.bpState = bpEnabled
	}
}

func (m *Monitor) breakpointList() {
	if m.bpState == bpNone {
		fmt.Fprintln(m.out, "no breakpoint")
		return
	}
	fmt.Fprintf(m.out, "%s %04x\n", m.breakpointMarker(m.bpAddr), m.bpAddr)
}
