package colour

import "math"

// Dist is the perceptual colour difference: Euclidean distance over the
// three CAM16-UCS axes. This is the single point of truth for how different
// two colours are; no other package computes colour distance.
func Dist(a, b CAM16UCS) float64 {
	dj := a.J - b.J
	da := a.A - b.A
	db := a.B - b.B
	return math.Sqrt(dj*dj + da*da + db*db)
}

// DistWeighted blends the full metric with the pure lightness difference.
// w = 0 is Dist, w = 1 compares lightness only; intermediate weights drive
// the close-colour and greyscale-match views.
func DistWeighted(a, b CAM16UCS, w float64) float64 {
	return (1-w)*Dist(a, b) + w*math.Abs(a.J-b.J)
}
