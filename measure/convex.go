package measure

// Convex scores how much of the convex hull's area the alpha hull fills:
// alphaArea / convexArea, clamped to [0,1]; 1 when convexArea is
// degenerate.
func Convex(convexArea, alphaArea float64) float64 {
	if convexArea <= 0 {
		return 1
	}
	return clamp01(alphaArea / convexArea)
}
