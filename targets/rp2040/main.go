//go:build rp2040

package main

import (
	"machine"
	"time"

	"hourmeter/core"

	"tinygo.org/x/drivers/at24cx"
	"tinygo.org/x/drivers/hd44780i2c"
)

// Measured oscillator rate error for this board revision: the crystal
// runs fast by about 4 seconds per hour.
const correctionPPM = 1111

// I2C addresses of the panel peripherals.
const (
	lcdAddress = 0x27
)

// How long after power-on the SET_TOTAL command is accepted on the USB
// console. Once the window closes, normal operation begins and the
// command is ignored.
const setTotalWindow = 2 * time.Second

func main() {
	// USB CDC console for the host monitor and the boot-time
	// SET_TOTAL intake.
	if err := machine.Serial.Configure(machine.UARTConfig{}); err != nil {
		return
	}

	// LCD and EEPROM share I2C0.
	err := machine.I2C0.Configure(machine.I2CConfig{
		Frequency: 400 * machine.KHz,
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
		CorrectionPPM: correctionPPM,
		TrackPrevious: true,
		StoreSeconds:  true,
	}, clock, &eepromStorage{dev: &eeprom}, &teeDisplay{lcd: &charLCD{dev: &lcd}})

	mgr.Start()
	runSetTotalWindow(mgr)

	// The loop timers fall behind during the boot window; the first
	// Poll snaps them forward instead of replaying the backlog.
	mgr.Run(func() {
		time.Sleep(time.Millisecond)
	})
}

// runSetTotalWindow accepts the administrative total override for a
// short period after power-on.
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
