package mathx

import "math"

const (
	f32OneBits uint32 = 0x3F80_0000
	f64OneBits uint64 = 0x3FF0_0000_0000_0000
)

func FloorDiv(a, b int) int {
	// b > 0
	q := a / b
	r := a % b
	if r < 0 {
		q--
	}
	return q
}

func Mod(a, b int) int {
	// b > 0
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}

// Rescale maps [oldMin, oldMax] onto [newMin, newMax].
func Rescale(oldMin, oldMax, newMin, newMax, x float64) float64 {
	ratio := (newMax - newMin) / (oldMax - oldMin)
	return math.FMA(x-oldMin, ratio, newMin)
}

// UnitToNegUnit maps [0, 1] onto [-1, 1].
func UnitToNegUnit(x float64) float64 {
	return math.FMA(x, 2, -1)
}

// NegUnitToUnit maps [-1, 1] onto [0, 1].
func NegUnitToUnit(x float64) float64 {
	return math.FMA(x, 0.5, 0.5)
}

func Lerp(bias, lhs, rhs float64) float64 {
	return math.FMA(rhs-lhs, bias, lhs)
}

// Cerp is cosine interpolation.
func Cerp(bias, lhs, rhs float64) float64 {
	bias = (1 - math.Cos(bias*math.Pi)) / 2
	return math.FMA(rhs-lhs, bias, lhs)
}

// F32FromMantissa turns raw bits into a float in [min, max). Every float in
// [1, 2) differs from 1.0 only in the mantissa, so the top 23 bits of the
// input are dropped into the mantissa of 1.0 and the result is rescaled.
// The float64 FMA of three float32 operands is exact, so the conversion back
// is the only rounding.
func F32FromMantissa(mantissa uint32, min, max float32) float32 {
	f := math.Float32frombits(f32OneBits ^ (mantissa >> 9))
	return float32(math.FMA(float64(f), float64(max-min), float64(min*2-max)))
}

// F64FromMantissa is the float64 version of F32FromMantissa.
func F64FromMantissa(mantissa uint64, min, max float64) float64 {
	f := math.Float64frombits(f64OneBits ^ (mantissa >> 12))
	return math.FMA(f, max-min, min*2-max)
}

// Smoothstep returns 6x^5 - 15x^4 + 10x^3, mapping [0, 1] onto [0, 1].
func Smoothstep(x float64) float64 {
	a := math.FMA(x, 6, -15)
	b := math.FMA(x, a, 10)
	return x * x * x * b
}

// NegSmoothstep is Smoothstep stretched over [-1, 1].
func NegSmoothstep(x float64) float64 {
	x = math.FMA(x, 0.5, 0.5)
	a := math.FMA(x, 12, -30)
	b := math.FMA(x, a, 20)
	return math.FMA(x*x*x, b, -1)
}

// Sigmoid maps [0, 1] onto [0, 1]. Negative beta keeps the input's
// orientation; positive beta flips it.
func Sigmoid(beta, x float64) float64 {
	return 1 / (1 + math.Pow(x/(1-x), beta))
}

// NegSigmoid is Sigmoid over [-1, 1].
func NegSigmoid(beta, x float64) float64 {
	return 2/(1+math.Pow((x+1)/(1-x), beta)) - 1
}

func Clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
