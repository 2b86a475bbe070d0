// terminal.go - raw-mode host terminal adapter for GETC/PUTC
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"fmt"
	"os"
	"sync"
	"syscall"
	"time"

	"golang.org/x/term"
)

// Terminal puts the controlling tty into raw mode and feeds single
// bytes to the CPU's GETC opcode through a small blocking queue,
// restoring the tty on Stop. PUTC writes straight through to stdout
// and needs no adapter state.
type Terminal struct {
	fd           int
	oldState     *term.State
	nonblockSet  bool
	stopCh       chan struct{}
	done         chan struct{}
	stopped      sync.Once
	mu           sync.Mutex
	pending      []byte
}

// NewTerminal returns a Terminal bound to stdin.
func NewTerminal() *Terminal {
	return &Terminal{
		fd:     int(os.Stdin.Fd()),
		stopCh: make(chan struct{}),
		done:   make(chan struct{}),
	}
}

// Start puts stdin into raw, non-blocking mode and begins a background
// reader that buffers incoming bytes for GetChar.
func (t *Terminal) Start() error {
	oldState, err := term.MakeRaw(t.fd)
	if err != nil {
		close(t.done)
		return fmt.Errorf("terminal: raw mode: %w", err)
	}
	t.oldState = oldState

	if err := syscall.SetNonblock(t.fd, true); err != nil {
		_ = term.Restore(t.fd, t.oldState)
		close(t.done)
		return fmt.Errorf("terminal: nonblocking stdin: %w", err)
	}
	t.nonblockSet = true

	go t.readLoop()
	return nil
}

func (t *Terminal) readLoop() {
	defer close(t.done)
	buf := make([]byte, 1)
	for {
		select {
		case <-t.stopCh:
			return
		default:
		}
		n, err := syscall.Read(t.fd, buf)
		if n > 0 {
			b := buf[0]
			if b == '\r' {
				b = '\n'
			}
			t.mu.Lock()
			t.pending = append(t.pending, b)
			t.mu.Unlock()
		}
		if err == syscall.EAGAIN || err == syscall.EWOULDBLOCK || n == 0 {
			time.Sleep(5 * time.Millisecond)
			continue
		}
		if err != nil {
			return
		}
	}
}

// Stop restores the terminal to its original mode.
func (t *Terminal) Stop() {
	t.stopped.Do(func() { close(t.stopCh) })
	<-t.done
	if t.nonblockSet {
		_ = syscall.SetNonblock(t.fd, false)
	}
	if t.oldState != nil {
		_ = term.Restore(t.fd, t.oldState)
	}
}

// GetChar blocks until one byte is available from the terminal, for
// binding to the CPU's GETC opcode.
func (t *Terminal) GetChar() byte {
	for {
		t.mu.Lock()
		if len(t.pending) > 0 {
			b := t.pending[0]
			t.pending = t.pending[1:]
			t.mu.Unlock()
			return b
		}
		t.mu.Unlock()
		time.Sleep(5 * time.Millisecond)
	}
}

// PutChar writes one byte straight to stdout, for binding to PUTC.
func (t *Terminal) PutChar(b byte) {
	os.Stdout.Write([]byte{b})
}
