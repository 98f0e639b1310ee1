package rgb2gray

// BT.601 luma weights in 16.16 fixed point. They sum to exactly 65536, so a
// weighted sum of 8-bit channels shifted right by 16 never exceeds 255.
const (
	weightR = 19595 // 0.299
	weightG = 38470 // 0.587
	weightB = 7471  // 0.114
)

// Luma returns the truncated BT.601 luminance of a blue, green, red triple.
func Luma(b, g, r uint8) uint8 {
	return uint8((uint32(r)*weightR + uint32(g)*weightG + uint32(b)*weightB) >> 16)
}
