package hx711

import (
	"context"
	"errors"
	"fmt"
)

// Retrieve polls for the latest conversion and returns it sign-extended to
// an int32. It never blocks: when the chip has no new sample the data line
// still reads high and Retrieve returns ErrWouldBlock immediately. The
// caller owns the retry policy; RetrieveBlocking wraps this in a poll loop
// for sequential callers.
//
// Any line fault aborts the read immediately and is returned wrapped; the
// partially shifted value is discarded.
func (hx *HX711) Retrieve() (int32, error) {
	hx.mu.Lock()
	code, err := hx.retrieve()
	hx.mu.Unlock()
	return code, err
}

// RetrieveBlocking retries Retrieve until a conversion is ready, sleeping
// PollUs between polls. Cancellation is honored only between polls: once a
// shift sequence starts it runs to completion, because stopping mid-sequence
// leaves the chip's shift register and gain selection in an unknown spot.
func (hx *HX711) RetrieveBlocking(ctx context.Context) (int32, error) {
	hx.mu.Lock()
	code, err := hx.retrieveBlocking(ctx)
	hx.mu.Unlock()
	return code, err
}

func (hx *HX711) retrieveBlocking(ctx context.Context) (int32, error) {
	for {
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		default:
		}

		code, err := hx.retrieve()
		if errors.Is(err, ErrWouldBlock) {
			hx.delay.DelayUs(PollUs)
			continue
		}
		return code, err
	}
}

func (hx *HX711) retrieve() (int32, error) {
	if err := hx.clock.SetLow(); err != nil {
		return 0, fmt.Errorf("failed to drive clock line low: %w", err)
	}

	high, err := hx.data.IsHigh()
	if err != nil {
		return 0, fmt.Errorf("failed to read data line: %w", err)
	}
	if high {
		// Conversion not ready yet.
		return 0, ErrWouldBlock
	}

	hx.delay.DelayUs(SettleUs)

	// 24 data bits, MSB first.
	var raw uint32
	for i := 0; i < 24; i++ {
		raw <<= 1
		bit, err := hx.pulse(true)
		if err != nil {
			return 0, err
		}
		if bit {
			raw |= 1
		}
	}

	// Trailing pulses program the channel/gain of the next conversion.
	// They do not affect the bits just shifted in.
	for i := 0; i < hx.mode.PulseCount(); i++ {
		if _, err = hx.pulse(false); err != nil {
			return 0, err
		}
	}

	return Convert24To32(raw), nil
}

// pulse drives one full clock cycle, PulseUs high then PulseUs low, sampling
// the data line at the top of the pulse when sample is set.
func (hx *HX711) pulse(sample bool) (bool, error) {
	if err := hx.clock.SetHigh(); err != nil {
		return false, fmt.Errorf("failed to drive clock line high: %w", err)
	}
	hx.delay.DelayUs(PulseUs)

	var bit bool
	if sample {
		var err error
		if bit, err = hx.data.IsHigh(); err != nil {
			// Leave the clock low on the way out; a clock stuck high
			// past the pulse window powers the chip down.
			return false, errors.Join(fmt.Errorf("failed to read data line: %w", err), hx.clock.SetLow())
		}
	}

	if err := hx.clock.SetLow(); err != nil {
		return false, fmt.Errorf("failed to drive clock line low: %w", err)
	}
	hx.delay.DelayUs(PulseUs)
	return bit, nil
}
