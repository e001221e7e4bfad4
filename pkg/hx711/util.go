package hx711

// Convert24To32 interprets the low 24 bits of raw as a two's complement
// value, MSB first as shifted in, and widens it to a 32-bit int.
func Convert24To32(raw uint32) int32 {
	raw &= 0xFFFFFF

	// sign extension
	if (raw & 0x800000) != 0 {
		raw |= 0xFF000000
	}
	return int32(raw)
}
