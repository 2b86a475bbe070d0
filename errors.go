// errors.go - sentinel errors shared across the scamp package
// SPDX-License-Identifier: GPL-3.0-or-later

package scamp

import "errors"

var (
	// ErrAddressRange reports an address or range outside 0x0000-0xFFFF.
	// No function in this package returns it: every address is a uint16.
	ErrAddressRange = errors.New("scamp: address out of range")

	// ErrBadChecksum is returned when an S-record's checksum byte does not validate.
	ErrBadChecksum = errors.New("scamp: bad S-record checksum")

	// ErrBadRecordType is returned for an S-record type other than S0, S1, S5, S9.
	ErrBadRecordType = errors.New("scamp: unsupported S-record type")

	// ErrBadTerminator is returned when an S9 record is present but is not
	// the literal S9030000FC termination record.
	ErrBadTerminator = errors.New("scamp: malformed S9 terminator record")

	// ErrMalformedRecord is returned for a record whose hex digits, byte
	// count, or length do not parse.
	ErrMalformedRecord = errors.New("scamp: malformed S-record line")

	// ErrNoTerminator is returned when a load reaches end of input without
	// having seen an S9 record.
	ErrNoTerminator = errors.New("scamp: missing S9 terminator record")

	// ErrEmptyRange is returned when a save is asked to emit an empty range.
	ErrEmptyRange = errors.New("scamp: empty address range")

	// ErrUnknownRegister names an unrecognised register name. Nothing in
	// this module returns it; the monitor reports such names as "Error!".
	ErrUnknownRegister = errors.New("scamp: unknown register")
)
