package numrand

const (
	mantissaBits = 53
	mantissaMask = 1<<mantissaBits - 1
	ulp          = 0x1p-53
)

// Canonical maps the top 53 bits of a 64-bit word to a double in [0, 1).
// Canonical(0) is 0 and Canonical(2^64-1) is 1-2^-53.
func Canonical(bits uint64) float64 {
	return float64(bits>>(64-mantissaBits)) * ulp
}

// IncrementedCanonical maps the top 53 bits of a 64-bit word to a double in (0, 1].
// IncrementedCanonical(2^64-1) is exactly 1.
func IncrementedCanonical(bits uint64) float64 {
	return float64(bits>>(64-mantissaBits)+1) * ulp
}

// SymmetricCanonical maps a 64-bit word to a double in (-1, 1). Bit 63 is the sign and
// bits 10..62 form the 53-bit magnitude. Both signed zeros come out as +0.
func SymmetricCanonical(bits uint64) float64 {
	v := float64((bits>>(63-mantissaBits))&mantissaMask) * ulp
	if bits>>63 != 0 && v != 0 {
		return -v
	}
	return v
}
