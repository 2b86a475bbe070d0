// registers.go - SC/MP-II register file and status-register bit layout
// SPDX-License-Identifier: GPL-3.0-or-later

package scamp

import "fmt"

// Status register bits, MSB to LSB: Carry, Overflow, Sense B, Sense A,
// Interrupt Enable, and three general-purpose flip-flops F2/F1/F0.
const (
	StatusCY byte = 0x80
	StatusOV byte = 0x40
	StatusSB byte = 0x20
	StatusSA byte = 0x10
	StatusIE byte = 0x08
	StatusF2 byte = 0x04
	StatusF1 byte = 0x02
	StatusF0 byte = 0x01
)

// RunMode selects how PUTC behaves: in Run mode it writes to the host
// terminal through PutChar, in Trace mode it writes nothing. GETC reads
// through GetChar in both modes. Neither mode prints a transcript line
// for PUTC or GETC events.
type RunMode int

const (
	ModeRun RunMode = iota
	ModeTrace
)

// PR index constants. PR[0] is always the program counter.
const (
	PC = 0
	P1 = 1
	P2 = 2
	P3 = 3
)

// RegisterFile holds the full SC/MP-II programmer-visible state: the
// accumulator, extension register, status register, and four 16-bit
// pointer registers (PR[0] doubling as PC).
type RegisterFile struct {
	AC byte
	ER byte
	SR byte
	PR [4]uint16
}

// StatusString renders the canonical eight-character flag summary used
// by the monitor's register dump: one letter per status bit (Carry,
// Overflow, Sense B, Sense A, Interrupt Enable, F2, F1, F0), most
// significant bit first, with '-' standing in for any clear bit.
func (r *RegisterFile) StatusString() string {
	letters := [8]byte{'C', 'O', 'B', 'A', 'I', '2', '1', '0'}
	bits := [8]byte{StatusCY, StatusOV, StatusSB, StatusSA, StatusIE, StatusF2, StatusF1, StatusF0}
	out := make([]byte, 8)
	for i := range out {
		if r.SR&bits[i] != 0 {
			out[i] = letters[i]
		} else {
			out[i] = '-'
		}
	}
	return string(out)
}

// ParseStatusString parses an eight-character flag summary produced by
// StatusString back into a status-register bitmask. A byte other than
// the expected letter at a given position leaves that bit clear.
func ParseStatusString(s string) byte {
	letters := [8]byte{'C', 'O', 'B', 'A', 'I', '2', '1', '0'}
	bits := [8]byte{StatusCY, StatusOV, StatusSB, StatusSA, StatusIE, StatusF2, StatusF1, StatusF0}
	var sr byte
	for i := 0; i < 8 && i < len(s); i++ {
		if s[i] == letters[i] {
			sr |= bits[i]
		}
	}
	return sr
}

// RegisterSummary renders the one-line register dump shown by the
// monitor's default R command: the status flags followed by PC, AC, ER,
// and the three general-purpose pointers.
func (r *RegisterFile) RegisterSummary() string {
	return fmt.Sprintf("%s PC:%04x AC:%02x ER:%02x P1:%04x P2:%04x P3:%04x",
		r.StatusString(), r.PR[PC], r.AC, r.ER, r.PR[P1], r.PR[P2], r.PR[P3])
}
