package color

// RGBToYUV converts 8-bit RGB to BT.601 studio-swing YUV using 8.8 fixed point.
func RGBToYUV(r, g, b uint8) (y, u, v uint8) {
	ri, gi, bi := int(r), int(g), int(b)
	y = Clamp8(((66*ri + 129*gi + 25*bi + 128) >> 8) + 16)
	u = Clamp8(((-38*ri - 74*gi + 112*bi + 128) >> 8) + 128)
	v = Clamp8(((112*ri - 94*gi - 18*bi + 128) >> 8) + 128)
	return y, u, v
}

// YUVToRGB converts BT.601 studio-swing YUV back to 8-bit RGB.
//
// The coefficients are the fixed-point inverse of the RGBToYUV matrix, which
// keeps a full round trip within ±2 per channel.
func YUVToRGB(y, u, v uint8) (r, g, b uint8) {
	c := int(y) - 16
	d := int(u) - 128
	e := int(v) - 128
	r = Clamp8((298*c + 409*e + 128) >> 8)
	g = Clamp8((298*c - 100*d - 210*e + 128) >> 8)
	b = Clamp8((298*c + 519*d + 128) >> 8)
	return r, g, b
}

// Luma weights (BT.2020), scaled by 10000.
const (
	lumaR = 2627
	lumaG = 6780
	lumaB = 593
)

// Luma8 derives an 8-bit gray level from 8-bit RGB. The result truncates.
func Luma8(r, g, b uint8) uint8 {
	return uint8((lumaR*int(r) + lumaG*int(g) + lumaB*int(b)) / 10000)
}

// LumaF derives a gray level from normalized RGB and saturates it.
func LumaF(r, g, b float32) float32 {
	return Saturate(0.2627*r + 0.6780*g + 0.0593*b)
}
