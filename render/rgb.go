package render

import (
	"github.com/lixenwraith/globe/geo"
)

// RGB is an alias to geo.RGB so draw code and geometry records share one
// color type without a conversion layer
type RGB = geo.RGB

var RGBBlack = RGB{R: 0, G: 0, B: 0}

// clamp converts float to uint8 efficiently
func clamp(v float64) uint8 {
	if v >= 255.0 {
		return 255
	}
	if v <= 0.0 {
		return 0
	}
	return uint8(v)
}

// Blend performs standard alpha blending of src over dst
func Blend(dst, src RGB, alpha float64) RGB {
	if alpha <= 0 {
		return dst
	}
	if alpha >= 1 {
		return src
	}
	inv := 1.0 - alpha
	return RGB{
		R: clamp(float64(dst.R)*inv + float64(src.R)*alpha),
		G: clamp(float64(dst.G)*inv + float64(src.G)*alpha),
		B: clamp(float64(dst.B)*inv + float64(src.B)*alpha),
	}
}

// Add performs saturating additive blending, used for glow effects
func Add(dst, src RGB) RGB {
	return RGB{
		R: clamp(float64(dst.R) + float64(src.R)),
		G: clamp(float64(dst.G) + float64(src.G)),
		B: clamp(float64(dst.B) + float64(src.B)),
	}
}

// AddScaled adds src scaled by intensity, the additive-with-alpha path
func AddScaled(dst, src RGB, intensity float64) RGB {
	return RGB{
		R: clamp(float64(dst.R) + float64(src.R)*intensity),
		G: clamp(float64(dst.G) + float64(src.G)*intensity),
		B: clamp(float64(dst.B) + float64(src.B)*intensity),
	}
}

// Scale multiplies all channels by f
func Scale(c RGB, f float64) RGB {
	return RGB{
		R: clamp(float64(c.R) * f),
		G: clamp(float64(c.G) * f),
		B: clamp(float64(c.B) * f),
	}
}

// Lerp interpolates between two colors, t in [0,1]
func Lerp(a, b RGB, t float64) RGB {
	return RGB{
		R: clamp(float64(a.R) + (float64(b.R)-float64(a.R))*t),
		G: clamp(float64(a.G) + (float64(b.G)-float64(a.G))*t),
		B: clamp(float64(a.B) + (float64(b.B)-float64(a.B))*t),
	}
}
