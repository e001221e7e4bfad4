package hx711

import (
	"fmt"

	"github.com/stianeikeland/go-rpio/v4"
)

// Raspberry Pi lines over memory-mapped GPIO. Once the range is mapped the
// pin operations cannot fail, so the adapters always return nil errors.

// RPiClockLine drives a BCM pin as the PD_SCK output.
type RPiClockLine struct {
	pin rpio.Pin
}

// NewRPiClockLine configures the given BCM pin as an output, driven low.
// The caller must have mapped the GPIO range with rpio.Open.
func NewRPiClockLine(pin int) RPiClockLine {
	p := rpio.Pin(pin)
	p.Output()
	p.Low()
	return RPiClockLine{pin: p}
}

// SetHigh drives the clock pin high.
func (cl RPiClockLine) SetHigh() error {
	cl.pin.High()
	return nil
}

// SetLow drives the clock pin low.
func (cl RPiClockLine) SetLow() error {
	cl.pin.Low()
	return nil
}

// RPiDataLine reads a BCM pin as the DOUT input.
type RPiDataLine struct {
	pin rpio.Pin
}

// NewRPiDataLine configures the given BCM pin as an input.
// The caller must have mapped the GPIO range with rpio.Open.
func NewRPiDataLine(pin int) RPiDataLine {
	p := rpio.Pin(pin)
	p.Input()
	return RPiDataLine{pin: p}
}

// IsHigh reads the data pin level.
func (dl RPiDataLine) IsHigh() (bool, error) {
	return dl.pin.Read() == rpio.High, nil
}

// NewRPi maps the Raspberry Pi GPIO range via rpio.Open and constructs a
// driver over the given BCM pin numbers. The mapping is process-wide; call
// rpio.Close once done with all pins.
func NewRPi(dataPin, clockPin int) (*HX711, error) {
	if err := rpio.Open(); err != nil {
		return nil, fmt.Errorf("failed to map gpio memory: %w", err)
	}
	return New(NewRPiDataLine(dataPin), NewRPiClockLine(clockPin))
}
