//go:build rp2040

package main

import (
	"machine"

	"hourmeter/core"

	"tinygo.org/x/drivers/hd44780i2c"
)

// charLCD adapts the HD44780 driver to the renderer's display
// interface.
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

// teeDisplay mirrors every rendered line to the USB console so the
// host-side monitor can follow what the panel shows. Lines go out as
// "<row>:<text>".
type teeDisplay struct {
	lcd core.Display
}

func (d *teeDisplay) WriteLine(row uint8, text string) {
	d.lcd.WriteLine(row, text)
	_, _ = machine.Serial.Write([]byte{'0' + row, ':'})
	_, _ = machine.Serial.Write([]byte(text))
	_ = machine.Serial.WriteByte('\n')
}
