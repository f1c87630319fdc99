package gauge

import "math"

// Point represents a 2D point in SVG user space (y grows downwards).
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Polar returns the point at radius r and angle deg around the origin.
// 0° points along +X and angles grow clockwise on screen.
func Polar(r, deg float64) Point {
	rad := deg * math.Pi / 180
	return Point{X: r * math.Cos(rad), Y: r * math.Sin(rad)}
}

// Round rounds both coordinates to the given number of decimal digits.
func (p Point) Round(digits int) Point {
	return Point{X: round(p.X, digits), Y: round(p.Y, digits)}
}
