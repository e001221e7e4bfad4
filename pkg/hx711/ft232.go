package hx711

import (
	"errors"
	"fmt"

	"github.com/yunginnanet/gpio-hx711/pkg/ft232h"
)

// NewFT232H opens the FT232H selected by desc (the first device found when
// desc is empty), configures the given C-bus GPIO pins as DOUT and PD_SCK,
// and constructs a driver over them. The returned [ft232h.FT232H] handle is
// the caller's to Close.
func NewFT232H(dataPin, clockPin uint, desc ...ft232h.Descriptor) (*HX711, *ft232h.FT232H, error) {
	ft, err := ft232h.Connect(desc...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to FT232H: %w", err)
	}

	if err = ft.SetDataPin(dataPin); err != nil {
		return nil, nil, errors.Join(fmt.Errorf("failed to configure data pin: %w", err), ft.Close())
	}
	if err = ft.SetClockPin(clockPin); err != nil {
		return nil, nil, errors.Join(fmt.Errorf("failed to configure clock pin: %w", err), ft.Close())
	}

	data, err := ft.DataLine()
	if err != nil {
		return nil, nil, errors.Join(err, ft.Close())
	}
	clock, err := ft.ClockLine()
	if err != nil {
		return nil, nil, errors.Join(err, ft.Close())
	}

	hx, err := New(data, clock)
	if err != nil {
		return nil, nil, errors.Join(err, ft.Close())
	}
	return hx, ft, nil
}
