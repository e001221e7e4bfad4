package hx711

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// OutputLine interface allows for different clock line implementations.
type OutputLine interface {
	// SetHigh drives the line high.
	SetHigh() error

	// SetLow drives the line low.
	SetLow() error
}

// InputLine interface allows for different data line implementations.
type InputLine interface {
	// IsHigh reads the current line level.
	IsHigh() (bool, error)
}

// Delay is the microsecond timing source used to pace clock pulses.
// Implementations must block the calling goroutine for at least us microseconds.
type Delay interface {
	DelayUs(us int)
}

type sleepDelay struct{}

func (sleepDelay) DelayUs(us int) {
	time.Sleep(time.Duration(us) * time.Microsecond)
}

// DefaultDelay paces the protocol with [time.Sleep].
var DefaultDelay Delay = sleepDelay{}

// HX711 provides high-level control over an Avia Semiconductor HX711
// load cell amplifier and 24-bit ADC.
//
// The chip has no registers and no command opcodes; its entire control
// surface is the two wires. Data is shifted out MSB first against clock
// pulses the driver generates itself, and the count of trailing pulses
// after the 24 data bits selects the channel and gain of the *next*
// conversion. Holding the clock line high powers the chip down.
type HX711 struct {
	mu    sync.Mutex // Synchronize concurrent operations
	data  InputLine
	clock OutputLine
	delay Delay

	// channel/gain the trailing pulses of each read program into the chip
	mode Mode
}

// Config represents user-level configuration parameters.
type Config struct {
	// Mode is the channel/gain selection. The chip applies it only after
	// the trailing pulses of the next completed read.
	Mode Mode

	// Delay paces clock pulses and the power-down hold. Nil selects
	// [DefaultDelay].
	Delay Delay
}

// DefaultConfig provides default config. You can adjust as needed.
func DefaultConfig() Config {
	return Config{
		Mode:  ChAGain128,
		Delay: DefaultDelay,
	}
}

// New constructs an HX711 driver over the given data (DOUT) and clock
// (PD_SCK) lines with [DefaultConfig]. The clock line is driven low so the
// chip runs; no conversion is read and no reset pulse is issued.
func New(data InputLine, clock OutputLine) (*HX711, error) {
	return NewWithConfig(data, clock, DefaultConfig())
}

// NewWithConfig constructs an HX711 driver over the given data (DOUT) and
// clock (PD_SCK) lines.
func NewWithConfig(data InputLine, clock OutputLine, cfg Config) (*HX711, error) {
	if err := cfg.Mode.Validate(); err != nil {
		return nil, err
	}
	if cfg.Delay == nil {
		cfg.Delay = DefaultDelay
	}
	if err := clock.SetLow(); err != nil {
		return nil, fmt.Errorf("failed to drive clock line low: %w", err)
	}
	return &HX711{
		data:  data,
		clock: clock,
		delay: cfg.Delay,
		mode:  cfg.Mode,
	}, nil
}

// Mode returns the currently selected channel/gain.
func (hx *HX711) Mode() Mode {
	hx.mu.Lock()
	m := hx.mode
	hx.mu.Unlock()
	return m
}

// Enable drives the clock line low, resuming normal conversion if the chip
// was powered down. It does not block and has no minimum timing.
func (hx *HX711) Enable() error {
	hx.mu.Lock()
	err := hx.clock.SetLow()
	hx.mu.Unlock()
	if err != nil {
		return fmt.Errorf("failed to drive clock line low: %w", err)
	}
	return nil
}

// Disable drives the clock line high and holds it there for at least
// PowerDownHoldUs microseconds. The chip is guaranteed powered down when
// Disable returns nil. The next read after power-up uses ChAGain128
// regardless of the driver's recorded mode; call SetMode to reprogram.
func (hx *HX711) Disable() error {
	hx.mu.Lock()
	err := hx.clock.SetHigh()
	if err == nil {
		hx.delay.DelayUs(PowerDownHoldUs)
	}
	hx.mu.Unlock()
	if err != nil {
		return fmt.Errorf("failed to drive clock line high: %w", err)
	}
	return nil
}

// Close powers the chip down. The caller keeps ownership of the two lines.
func (hx *HX711) Close() error {
	return hx.Disable()
}

// SetMode stores the new channel/gain selection and forces one full blocking
// read, discarding its value. The chip only applies a new selection after the
// trailing pulses of a completed read, so skipping the dummy conversion would
// leave its internal setting stale.
func (hx *HX711) SetMode(ctx context.Context, mode Mode) error {
	if err := mode.Validate(); err != nil {
		return err
	}
	hx.mu.Lock()
	hx.mode = mode
	_, err := hx.retrieveBlocking(ctx)
	hx.mu.Unlock()
	if err != nil {
		return fmt.Errorf("failed to program mode %s: %w", mode, err)
	}
	return nil
}

// Reset forces the chip back to ChAGain128 the way pre-mode-tracking callers
// did at start of day: clock high, two data line reads, clock low.
//
// Constructing with a known mode and calling SetMode supersedes this; it is
// kept for callers talking to a chip in an unknown state.
func (hx *HX711) Reset() error {
	hx.mu.Lock()
	defer hx.mu.Unlock()

	if err := hx.clock.SetHigh(); err != nil {
		return fmt.Errorf("failed to drive clock line high: %w", err)
	}
	for i := 0; i < 2; i++ {
		if _, err := hx.data.IsHigh(); err != nil {
			return fmt.Errorf("failed to read data line: %w", err)
		}
	}
	if err := hx.clock.SetLow(); err != nil {
		return fmt.Errorf("failed to drive clock line low: %w", err)
	}
	hx.mode = ChAGain128
	return nil
}
