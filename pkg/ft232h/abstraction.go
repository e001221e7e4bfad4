package ft232h

import (
	"fmt"

	"github.com/yunginnanet/ft232h"
)

// SetClockPin configures a C-bus GPIO pin as the PD_SCK output, driven low
// so the chip starts (or keeps) converting.
func (ft *FT232H) SetClockPin(pin uint) error {
	ft.clockPin = ft232h.CPin(pin)
	return ft.GPIO.ConfigPin(ft.clockPin, ft232h.Output, false)
}

// ClockPin returns the configured PD_SCK pin.
func (ft *FT232H) ClockPin() ft232h.CPin {
	return ft.clockPin
}

// SetDataPin configures a C-bus GPIO pin as the DOUT input.
func (ft *FT232H) SetDataPin(pin uint) error {
	ft.dataPin = ft232h.CPin(pin)
	return ft.GPIO.ConfigPin(ft.dataPin, ft232h.Input, true)
}

// DataPin returns the configured DOUT pin.
func (ft *FT232H) DataPin() ft232h.CPin {
	return ft.dataPin
}

// ClockLine exposes the PD_SCK pin as a fallible output line.
func (ft *FT232H) ClockLine() (*ClockLine, error) {
	if ft.clockPin == 0 {
		return nil, fmt.Errorf("clock pin not set")
	}
	return &ClockLine{ft: ft}, nil
}

// DataLine exposes the DOUT pin as a fallible input line.
func (ft *FT232H) DataLine() (*DataLine, error) {
	if ft.dataPin == 0 {
		return nil, fmt.Errorf("data pin not set")
	}
	return &DataLine{ft: ft}, nil
}

// ClockLine drives the configured PD_SCK pin.
type ClockLine struct {
	ft *FT232H
}

// SetHigh drives the clock pin high.
func (cl *ClockLine) SetHigh() error {
	if err := cl.ft.GPIO.Set(cl.ft.clockPin, true); err != nil {
		return fmt.Errorf("failed to set clock pin: %w", err)
	}
	return nil
}

// SetLow drives the clock pin low.
func (cl *ClockLine) SetLow() error {
	if err := cl.ft.GPIO.Set(cl.ft.clockPin, false); err != nil {
		return fmt.Errorf("failed to set clock pin: %w", err)
	}
	return nil
}

// DataLine reads the configured DOUT pin.
type DataLine struct {
	ft *FT232H
}

// IsHigh reads the data pin level.
func (dl *DataLine) IsHigh() (bool, error) {
	hl, err := dl.ft.GPIO.Get(dl.ft.dataPin)
	if err != nil {
		return false, fmt.Errorf("failed to read data pin: %w", err)
	}
	return hl, nil
}
