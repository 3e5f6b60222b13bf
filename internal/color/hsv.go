package color

// RGBToHSV converts 8-bit RGB to HSV with every component in [0, 255].
//
// The hue circle is split into six sectors of 43 units. Black yields
// h = s = 0 and any gray yields h = 0. The integer arithmetic matches the
// values stored by existing HSV buffers and must not be re-derived.
func RGBToHSV(r, g, b uint8) (h, s, v uint8) {
	ri, gi, bi := int(r), int(g), int(b)
	lo := min(ri, gi, bi)
	hi := max(ri, gi, bi)

	if hi == 0 {
		return 0, 0, 0
	}
	v = uint8(hi)

	delta := hi - lo
	s = uint8(255 * delta / hi)
	if s == 0 {
		return 0, 0, v
	}

	var hue int
	switch hi {
	case ri:
		hue = 43 * (gi - bi) / delta
	case gi:
		hue = 85 + 43*(bi-ri)/delta
	default:
		hue = 171 + 43*(ri-gi)/delta
	}
	// Negative hues in the red sector wrap around the circle.
	return uint8(hue & 0xFF), s, v
}

// HSVToRGB converts HSV with components in [0, 255] to 8-bit RGB.
func HSVToRGB(h, s, v uint8) (r, g, b uint8) {
	if s == 0 {
		return v, v, v
	}

	hi, si, vi := int(h), int(s), int(v)
	region := hi / 43
	remainder := (hi - region*43) * 6

	p := uint8((vi * (255 - si)) >> 8)
	q := uint8((vi * (255 - ((si * remainder) >> 8))) >> 8)
	t := uint8((vi * (255 - ((si * (255 - remainder)) >> 8))) >> 8)

	switch region {
	case 0:
		return v, t, p
	case 1:
		return q, v, p
	case 2:
		return p, v, t
	case 3:
		return p, q, v
	case 4:
		return t, p, v
	default:
		return v, p, q
	}
}
