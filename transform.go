package motion

import "math"

// identityMatrix is the identity affine matrix.
var identityMatrix = [6]float64{1, 0, 0, 1, 0, 0}

// Matrix returns the affine matrix that maps layer-local coordinates
// (origin at the layer's top-left, size from l) onto the canvas.
// Returns [a, b, c, d, tx, ty].
//
// Composition order:
//
//	Translate(-w/2, -h/2) -> Scale(ScaleX, ScaleY) -> Rotate -> Translate(X+w/2, Y+h/2)
func (t Transform) Matrix(l *Layer) [6]float64 {
	var w, h float64
	if l != nil {
		w, h = l.Width, l.Height
	}
	px, py := w/2, h/2
	sx, sy := t.ScaleX, t.ScaleY

	sin, cos := math.Sincos(t.Rotation * math.Pi / 180)

	// After Scale * Translate(-pivot):
	//   a=sx, b=0, c=0, d=sy, tx=-px*sx, ty=-py*sy
	preTx := -px * sx
	preTy := -py * sy

	// After Rotate:
	ra := cos * sx
	rb := sin * sx
	rc := -sin * sy
	rd := cos * sy
	rtx := cos*preTx - sin*preTy
	rty := sin*preTx + cos*preTy

	return [6]float64{ra, rb, rc, rd, rtx + t.X + px, rty + t.Y + py}
}

// Contains reports whether canvas point (x, y) falls inside the layer's
// transformed rectangle. Zero-scale layers contain nothing.
func (t Transform) Contains(l *Layer, x, y float64) bool {
	if l == nil || t.ScaleX == 0 || t.ScaleY == 0 {
		return false
	}
	lx, ly := transformPoint(invertAffine(t.Matrix(l)), x, y)
	return lx >= 0 && ly >= 0 && lx < l.Width && ly < l.Height
}

// multiplyAffine multiplies two 2D affine matrices: result = parent * child.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// invertAffine computes the inverse of a 2D affine matrix.
// Returns the identity matrix if the matrix is singular.
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityMatrix
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// ViewMatrix returns the matrix of a layer's output as seen through a
// viewport: section layers scroll with the viewport, stage layers do not.
// offset is the layer's section offset in scroll-container coordinates.
func ViewMatrix(t Transform, l *Layer, offset float64, vp *Viewport) [6]float64 {
	m := t.Matrix(l)
	if vp == nil {
		return m
	}
	scroll := [6]float64{1, 0, 0, 1, 0, offset - vp.Y}
	return multiplyAffine(scroll, m)
}
