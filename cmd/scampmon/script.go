// script.go - DO command: Lua scripting over the monitor's CPU and memory
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/otley-labs/scampii"
)

// runScript implements "DO <path>": loads and executes a Lua script
// with peek/poke/getreg/setreg/step/print bound into its global table,
// letting an operator script repetitive monitor sequences.
func (m *Monitor) runScript(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(m.out, "Error!")
		return
	}

	L := lua.NewState()
	defer L.Close()

	L.SetGlobal("peek", L.NewFunction(m.luaPeek))
	L.SetGlobal("poke", L.NewFunction(m.luaPoke))
	L.SetGlobal("getreg", L.NewFunction(m.luaGetReg))
	L.SetGlobal("setreg", L.NewFunction(m.luaSetReg))
	L.SetGlobal("step", L.NewFunction(m.luaStep))
	L.SetGlobal("print", L.NewFunction(m.luaPrint))

	if err := L.DoFile(args[0]); err != nil {
		fmt.Fprintf(m.out, "script error: %v\n", err)
	}
}

func (m *Monitor) luaPeek(L *lua.LState) int {
	addr := uint16(L.CheckInt(1))
	L.Push(lua.LNumber(m.mem.Read(addr)))
	return 1
}

func (m *Monitor) luaPoke(L *lua.LState) int {
	addr := uint16(L.CheckInt(1))
	val := byte(L.CheckInt(2))
	m.mem.Write(addr, val)
	return 0
}

func (m *Monitor) luaGetReg(L *lua.LState) int {
	name := L.CheckString(1)
	switch name {
	case "AC":
		L.Push(lua.LNumber(m.cpu.Reg.AC))
	case "ER":
		L.Push(lua.LNumber(m.cpu.Reg.ER))
	case "SR":
		L.Push(lua.LNumber(m.cpu.Reg.SR))
	case "PC":
		L.Push(lua.LNumber(m.cpu.Reg.PR[scamp.PC]))
	case "P1":
		L.Push(lua.LNumber(m.cpu.Reg.PR[scamp.P1]))
	case "P2":
		L.Push(lua.LNumber(m.cpu.Reg.PR[scamp.P2]))
	case "P3":
		L.Push(lua.LNumber(m.cpu.Reg.PR[scamp.P3]))
	default:
		L.RaiseError("unknown register %q", name)
	}
	return 1
}

func (m *Monitor) luaSetReg(L *lua.LState) int {
	name := L.CheckString(1)
	val := L.CheckInt(2)
	switch name {
	case "AC":
		m.cpu.Reg.AC = byte(val)
	case "ER":
		m.cpu.Reg.ER = byte(val)
	case "SR":
		m.cpu.Reg.SR = byte(val)
	case "PC":
		m.cpu.Reg.PR[scamp.PC] = uint16(val)
	case "P1":
		m.cpu.Reg.PR[scamp.P1] = uint16(val)
	case "P2":
		m.cpu.Reg.PR[scamp.P2] = uint16(val)
	case "P3":
		m.cpu.Reg.PR[scamp.P3] = uint16(val)
	default:
		L.RaiseError("unknown register %q", name)
	}
	return 0
}

func (m *Monitor) luaStep(L *lua.LState) int {
	stat := m.cpu.Clock()
	L.Push(lua.LString(stat.String()))
	return 1
}

func (m *Monitor) luaPrint(L *lua.LState) int {
	n := L.GetTop()
	for i := 1; i <= n; i++ {
		if i > 1 {
			fmt.Fprint(m.out, "\t")
		}
		fmt.Fprint(m.out, L.ToStringMeta(L.Get(i)).String())
	}
	fmt.Fprintln(m.out)
	return 0
}
