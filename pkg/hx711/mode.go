package hx711

import "fmt"

// Mode selects the input channel and gain of the chip's next conversion.
//
// The numeric value of a Mode is the count of trailing clock pulses issued
// after the 24 data bits of a read; that count is what the chip actually
// decodes. The gain factor in each name is nominal — the pulse count is the
// load-bearing part, and published documentation for this chip family
// disagrees on which gain the channel B counts map to.
type Mode int

const (
	// ChAGain128 selects channel A with gain factor 128 (1 trailing pulse).
	ChAGain128 Mode = 1
	// ChBGain32 selects channel B (2 trailing pulses).
	ChBGain32 Mode = 2
	// ChBGain64 selects channel B (3 trailing pulses).
	ChBGain64 Mode = 3
)

// PulseCount returns the number of trailing clock pulses the mode encodes.
func (m Mode) PulseCount() int {
	return int(m)
}

// Validate checks that m is one of the three selections the chip decodes.
func (m Mode) Validate() error {
	switch m {
	case ChAGain128, ChBGain32, ChBGain64:
		return nil
	default:
		return fmt.Errorf("%w: %d", ErrInvalidMode, int(m))
	}
}

func (m Mode) String() string {
	switch m {
	case ChAGain128:
		return "ChAGain128"
	case ChBGain32:
		return "ChBGain32"
	case ChBGain64:
		return "ChBGain64"
	default:
		return "(invalid mode)"
	}
}
