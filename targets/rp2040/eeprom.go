//go:build rp2040

package main

import (
	"hourmeter/core"

	"tinygo.org/x/drivers/at24cx"
)

// eepromStorage adapts the AT24Cxx driver to the meter's storage
// interface with wear-aware writes: a cell already holding the value
// is left alone.
type eepromStorage struct {
	dev *at24cx.Device
}

var _ core.Storage = (*eepromStorage)(nil)

// ReadByte returns the erased pattern on a failed read; the record
// layer sanitizes it to zero.
func (s *eepromStorage) ReadByte(addr uint16) byte {
	v, err := s.dev.ReadByte(addr)
	if err != nil {
		return 0xFF
	}
	return v
}

// WriteByte performs a read-before-write and skips identical cells.
// Failures are not retried; a lost byte costs one commit period at
// most.
func (s *eepromStorage) WriteByte(addr uint16, value byte) {
	cur, err := s.dev.ReadByte(addr)
	if err == nil && cur == value {
		return
	}
	_ = s.dev.WriteByte(addr, value)
}
