package measure

import "math"

// Skinny scores how elongated the alpha hull's shape is: 1 −
// sqrt(4π·area)/perimeter, clamped to [0,1]; 1 when perimeter is
// degenerate.
func Skinny(area, perimeter float64) float64 {
	if perimeter <= 0 {
		return 1
	}
	score := 1 - math.Sqrt(4*math.Pi*area)/perimeter
	return clamp01(score)
}
