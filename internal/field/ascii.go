package field

import (
	"math"
	"strings"

	"github.com/rgaf/demiurge/internal/mathx"
)

// ramp runs from dark to bright.
const ramp = " .:-=+*#%@"

// RenderASCII draws w*h row-major samples in [0, 1] as one character each.
// Values outside the range are clamped; NaN renders as '?'.
func RenderASCII(samples []float64, w, h int) string {
	var b strings.Builder
	b.Grow((w + 1) * h)
	for z := 0; z < h; z++ {
		for x := 0; x < w; x++ {
			v := samples[z*w+x]
			if math.IsNaN(v) {
				b.WriteByte('?')
				continue
			}
			i := int(mathx.Clamp01(v) * float64(len(ramp)-1))
			b.WriteByte(ramp[i])
		}
		b.WriteByte('\n')
	}
	return b.String()
}
