package hx711

import "errors"

// Timing from the datasheet. The delay source only guarantees minimums, so
// the constants sit at the low end of each window.
const (
	// PulseUs is the clock high and low time for one pulse, in microseconds.
	// The datasheet window for PD_SCK high is 0.2-50us; past the top of the
	// window the chip treats the held clock as a power-down request, so the
	// pulse must stay short.
	PulseUs = 1

	// SettleUs is the wait after the data line falls (conversion ready)
	// before the first clock pulse. Datasheet minimum is 0.1us; 1us keeps
	// coarse sleep sources portable.
	SettleUs = 1

	// PowerDownHoldUs is how long the clock line must stay high before the
	// chip is guaranteed to have entered its low-power state.
	PowerDownHoldUs = 60

	// PollUs is the sleep between readiness polls in RetrieveBlocking.
	PollUs = 100
)

const (
	// MaxValue is the largest conversion result (0x7FFFFF).
	MaxValue = 1<<23 - 1

	// MinValue is the magnitude of the most negative conversion result
	// (0x800000). Note the sign: the published constant is the magnitude,
	// not the negative code -8388608 itself.
	MinValue = 1 << 23
)

// ErrWouldBlock is returned by Retrieve when no conversion is ready yet.
// It is an expected transient, not a fault; retry later or use
// RetrieveBlocking.
var ErrWouldBlock = errors.New("hx711: conversion not ready")

// ErrInvalidMode is returned when a Mode outside the three selections the
// chip decodes is supplied.
var ErrInvalidMode = errors.New("hx711: invalid mode")
