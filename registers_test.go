// registers_test.go
// SPDX-License-Identifier: GPL-3.0-or-later

package scamp

import "testing"

func TestStatusString_RoundTrip(t *testing.T) {
	for sr := 0; sr < 256; sr++ {
		r := &RegisterFile{SR: byte(sr)}
		s := r.StatusString()
		got := ParseStatusString(s)
		if got != byte(sr) {
			t.Fatalf("ParseStatusString(StatusString(%#02x)) = %#02x, want %#02x (string %q)", sr, got, sr, s)
		}
	}
}

func TestStatusString_AllClear(t *testing.T) {
	r := &RegisterFile{}
	if got, want := r.StatusString(), "--------"; got != want {
		t.Fatalf("StatusString() = %q, want %q", got, want)
	}
}

func TestStatusString_AllSet(t *testing.T) {
	r := &RegisterFile{SR: 0xFF}
	if got, want := r.StatusString(), "COBAI210"; got != want {
		t.Fatalf("StatusString() = %q, want %q", got, want)
	}
}

func TestRegisterSummary_Format(t *testing.T) {
	r := &RegisterFile{AC: 0x12, ER: 0x34, SR: 0x80}
	r.PR[PC] = 0x0100
	r.PR[P1] = 0x0200
	r.PR[P2] = 0x0300
	r.PR[P3] = 0x0400
	want := "C------- PC:0100 AC:12 ER:34 P1:0200 P2:0300 P3:0400"
	if got := r.RegisterSummary(); got != want {
		t.Fatalf("RegisterSummary() = %q, want %q", got, want)
	}
}
