// main.go - scampmon entry point: interactive monitor or direct run
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/otley-labs/scampii"
)

func main() {
	mem := scamp.NewMemory()
	cpu := scamp.NewCPU(mem)
	disasm := scamp.NewDisassembler(mem, cpu)

	switch len(os.Args) {
	case 1:
		term := NewTerminal()
		if err := term.Start(); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		defer term.Stop()
		cpu.PutChar = term.PutChar
		cpu.GetChar = term.GetChar

		boilerPlate()
		NewMonitor(cpu, mem, disasm, term).Run()

	case 2:
		filename := os.Args[1]
		f, err := os.Open(filename)
		if err != nil {
			fmt.Printf("File not found!(%s)\n", filename)
			os.Exit(1)
		}
		_, err = scamp.Load(mem, f)
		f.Close()
		if err != nil {
			fmt.Printf("Load error: %v\n", err)
			os.Exit(1)
		}
		if strings.EqualFold(filename, "nibl.srec") {
			cpu.SetSenseB()
		}

		term := NewTerminal()
		if err := term.Start(); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		defer term.Stop()
		cpu.PutChar = term.PutChar
		cpu.GetChar = term.GetChar

		runUntilHalt(cpu)

	default:
		fmt.Fprintln(os.Stderr, "usage: scampmon [program.srec]")
		os.Exit(1)
	}
}

func runUntilHalt(cpu *scamp.CPU) {
	cpu.Mode = scamp.ModeRun
	for {
		stat := cpu.Clock()
		switch stat {
		case scamp.Success, scamp.Interrupted:
			continue
		case scamp.Halt:
			fmt.Println("HALT!")
			return
		case scamp.Undefined:
			fmt.Println("UNDEFINED INSTRUCTION!")
			return
		}
	}
}

func boilerPlate() {
	fmt.Println("scampmon - SC/MP-II monitor")
	fmt.Println("type H for help, Q to quit")
}
