//go:build rp2350

package main

import (
	"machine"
	"time"

	"hourmeter/core"

	"tinygo.org/x/drivers/at24cx"
	"tinygo.org/x/drivers/hd44780i2c"
)

// Basic board variant: uncalibrated oscillator, no previous-session
// readout, minute-granularity storage. Everything else is the shared
// core.

const lcdAddress = 0x3F

const setTotalWindow = 2 * time.Second

func main() {
	if err := machine.Serial.Configure(machine.UARTConfig{}); err != nil {
		return
	}

	err := machine.I2C0.Configure(machine.I2CConfig{
		Frequency: 100 * machine.KHz,
	})
	if err != nil {
		return
	}

	lcd := hd44780i2c.New(machine.I2C0, lcdAddress)
	if err := lcd.Configure(hd44780i2c.Config{Width: 16, Height: 2}); err != nil {
		return
	}

	eeprom := at24cx.New(machine.I2C0)
	eeprom.Configure(at24cx.Config{})

	clock := &hardwareClock{}
	mgr := core.NewManager(core.Config{
		CorrectionPPM: 0,
		TrackPrevious: false,
		StoreSeconds:  false,
	}, clock, &eepromStorage{dev: &eeprom}, &charLCD{dev: &lcd})

	mgr.Start()
	runSetTotalWindow(mgr)

	mgr.Run(func() {
		time.Sleep(time.Millisecond)
	})
}

// runSetTotalWindow accepts the administrative total override for a
// short period after power-on. Ignored once normal operation begins.
func runSetTotalWindow(mgr *core.Manager) {
	console := core.NewConsole(mgr)
	deadline := time.Now().Add(setTotalWindow)

	for time.Now().Before(deadline) {
		if machine.Serial.Buffered() == 0 {
			time.Sleep(time.Millisecond)
			continue
		}
		b, err := machine.Serial.ReadByte()
		if err != nil {
			continue
		}
		if console.ProcessByte(b) {
			return
		}
	}
}
