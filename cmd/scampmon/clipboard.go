// clipboard.go - CB/PB monitor commands for system-clipboard hex transfer
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"fmt"
	"strconv"
	"strings"

	"golang.design/x/clipboard"
)

var clipboardReady bool

func ensureClipboard() error {
	if clipboardReady {
		return nil
	}
	if err := clipboard.Init(); err != nil {
		return err
	}
	clipboardReady = true
	return nil
}

// clipboardCopy implements "CB <start> <end>": copies a space-separated
// uppercase hex dump of mem[start:end] to the system clipboard.
func (m *Monitor) clipboardCopy(args []string) {
	if len(args) < 2 {
		fmt.Fprintln(m.out, "Error!")
		return
	}
	start, ok1 := parseAddr(args[0])
	end, ok2 := parseAddr(args[1])
	if !ok1 || !ok2 || end < start {
		fmt.Fprintln(m.out, "Error!")
		return
	}
	if err := ensureClipboard(); err != nil {
		fmt.Fprintf(m.out, "clipboard unavailable: %v\n", err)
		return
	}

	data := m.mem.ReadRange(start, end)
	var sb strings.Builder
	for i, b := range data {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%02X", b)
	}
	clipboard.Write(clipboard.FmtText, []byte(sb.String()))
}

// clipboardPaste implements "PB <addr>": parses a whitespace-separated
// hex byte stream from the system clipboard and writes it starting at
// addr.
func (m *Monitor) clipboardPaste(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(m.out, "Error!")
		return
	}
	addr, ok := parseAddr(args[0])
	if !ok {
		fmt.Fprintln(m.out, "Error!")
		return
	}
	if err := ensureClipboard(); err != nil {
		fmt.Fprintf(m.out, "clipboard unavailable: %v\n", err)
		return
	}

	raw := clipboard.Read(clipboard.FmtText)
	tokens := strings.Fields(string(raw))
	bytes := make([]byte, 0, len(tokens))
	for _, tok := range tokens {
		v, err := strconv.ParseUint(tok, 16, 8)
		if err != nil {
			fmt.Fprintf(m.out, "bad byte %q in clipboard\n", tok)
			return
		}
		bytes = append(bytes, byte(v))
	}
	m.mem.WriteRange(addr, bytes)
	fmt.Fprintf(m.out, "pasted %d bytes at %04x\n", len(bytes), addr)
}
