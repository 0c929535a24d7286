package isa

// WrappingAddSigned adds a signed delta to an unsigned 32-bit base, wrapping
// modulo 2^32 for either sign of delta. Used for PC arithmetic and for any
// register value treated as an address.
func WrappingAddSigned(base uint32, delta int32) uint32 {
	if delta >= 0 {
		return base + uint32(delta)
	}
	return base - uint32(-delta)
}
