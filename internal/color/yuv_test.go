package color

import "testing"

func TestRGBToYUV(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		y, u, v uint8
	}{
		{"black", 0, 0, 0, 16, 128, 128},
		{"white", 255, 255, 255, 235, 128, 128},
		{"red", 255, 0, 0, 82, 90, 240},
		{"green", 0, 255, 0, 144, 54, 34},
		{"blue", 0, 0, 255, 41, 240, 110},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			y, u, v := RGBToYUV(tt.r, tt.g, tt.b)
			if y != tt.y || u != tt.u || v != tt.v {
				t.Errorf("RGBToYUV(%d,%d,%d) = (%d,%d,%d), want (%d,%d,%d)",
					tt.r, tt.g, tt.b, y, u, v, tt.y, tt.u, tt.v)
			}
		})
	}
}

func TestYUVToRGB_Extremes(t *testing.T) {
	if r, g, b := YUVToRGB(16, 128, 128); r != 0 || g != 0 || b != 0 {
		t.Errorf("YUVToRGB(16,128,128) = (%d,%d,%d), want (0,0,0)", r, g, b)
	}
	if r, g, b := YUVToRGB(235, 128, 128); r != 255 || g != 255 || b != 255 {
		t.Errorf("YUVToRGB(235,128,128) = (%d,%d,%d), want (255,255,255)", r, g, b)
	}
	// Out of gamut inputs clamp instead of wrapping.
	if r, g, b := YUVToRGB(255, 255, 255); r != 255 || b != 255 {
		t.Errorf("YUVToRGB(255,255,255) = (%d,%d,%d), want r=255 b=255", r, g, b)
	}
}

// TestYUVRoundTrip checks every RGB triple survives RGB → YUV → RGB within ±2.
func TestYUVRoundTrip(t *testing.T) {
	step := 1
	if testing.Short() {
		step = 7
	}

	const tolerance = 2
	for r := 0; r < 256; r += step {
		for g := 0; g < 256; g += step {
			for b := 0; b < 256; b += step {
				y, u, v := RGBToYUV(uint8(r), uint8(g), uint8(b))
				r2, g2, b2 := YUVToRGB(y, u, v)
				if absDiff(r, int(r2)) > tolerance ||
					absDiff(g, int(g2)) > tolerance ||
					absDiff(b, int(b2)) > tolerance {
					t.Fatalf("round trip (%d,%d,%d) -> (%d,%d,%d) -> (%d,%d,%d)",
						r, g, b, y, u, v, r2, g2, b2)
				}
			}
		}
	}
}

func TestLuma8(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		want    uint8
	}{
		{"black", 0, 0, 0, 0},
		{"white", 255, 255, 255, 255},
		{"red", 255, 0, 0, 66},
		{"green", 0, 255, 0, 172},
		{"blue", 0, 0, 255, 15},
		{"gray", 128, 128, 128, 128},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Luma8(tt.r, tt.g, tt.b); got != tt.want {
				t.Errorf("Luma8(%d,%d,%d) = %d, want %d", tt.r, tt.g, tt.b, got, tt.want)
			}
		})
	}
}

func BenchmarkRGBToYUV(b *testing.B) {
	var y, u, v uint8
	for i := 0; i < b.N; i++ {
		y, u, v = RGBToYUV(uint8(i), uint8(i>>8), uint8(i>>16))
	}
	_, _, _ = y, u, v
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
