// memory_test.go
// SPDX-License-Identifier: GPL-3.0-or-later

package scamp

import (
	"strings"
	"testing"
)

func TestMemory_ReadWriteRoundTrip(t *testing.T) {
	m := NewMemory()
	m.Write(0x1234, 0xAB)
	if got := m.Read(0x1234); got != 0xAB {
		t.Fatalf("Read(0x1234) = %#x, want 0xab", got)
	}
}

func TestMemory_WriteRangeWraps(t *testing.T) {
	m := NewMemory()
	m.WriteRange(0xFFFE, []byte{1, 2, 3, 4})
	if m.Read(0xFFFE) != 1 || m.Read(0xFFFF) != 2 || m.Read(0x0000) != 3 || m.Read(0x0001) != 4 {
		t.Fatalf("WriteRange did not wrap past 0xFFFF correctly")
	}
}

func TestMemory_ReadRange(t *testing.T) {
	m := NewMemory()
	m.WriteRange(0x10, []byte{1, 2, 3})
	got := m.ReadRange(0x10, 0x12)
	want := []byte{1, 2, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ReadRange = %v, want %v", got, want)
		}
	}
}

func TestMemory_Clear(t *testing.T) {
	m := NewMemory()
	m.Write(5, 0xFF)
	m.Clear()
	if m.Read(5) != 0 {
		t.Fatalf("Clear() did not zero memory")
	}
}

func TestMemory_DumpHeaderAndRow(t *testing.T) {
	m := NewMemory()
	m.Write(0x0005, 'A')
	out := m.Dump(0x0000, 0x000F)
	if out == "" {
		t.Fatal("Dump returned empty string")
	}
	if !strings.HasPrefix(out, "addr +0 +1 +2") {
		t.Fatalf("Dump header missing: %q", out)
	}
	if !strings.Contains(out, "0000 00 00 00 00 00 41 00") || !strings.Contains(out, ".....A..........") {
		t.Fatalf("Dump row for 0x0000 wrong: %q", out)
	}
}
