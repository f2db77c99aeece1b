//go:build rp2350

package main

import (
	"hourmeter/core"

	"tinygo.org/x/drivers/at24cx"
	"tinygo.org/x/drivers/hd44780i2c"
)

// eepromStorage adapts the AT24Cxx driver to the meter's storage
// interface. Same wear-aware read-before-write as the rp2040 board.
type eepromStorage struct {
	dev *at24cx.Device
}

var _ core.Storage = (*eepromStorage)(nil)

func (s *eepromStorage) ReadByte(addr uint16) byte {
	v, err := s.dev.ReadByte(addr)
	if err != nil {
		return 0xFF
	}
	return v
}

func (s *eepromStorage) WriteByte(addr uint16, value byte) {
	cur, err := s.dev.ReadByte(addr)
	if err == nil && cur == value {
		return
	}
	_ = s.dev.WriteByte(addr, value)
}

// charLCD adapts the HD44780 driver to the renderer's display
// interface. The basic board has no host monitor, so lines go only to
// the panel.
type charLCD struct {
	dev *hd44780i2c.Device
}

var _ core.Display = (*charLCD)(nil)

func (l *charLCD) WriteLine(row uint8, text string) {
	if err := l.dev.SetCursor(0, row); err != nil {
		return
	}
	_ = l.dev.Print([]byte(text))
}
