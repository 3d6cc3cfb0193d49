package motion

import "math"

// PathSample is a position/rotation/scale sample along a motion path, in the
// path's authored absolute coordinate space.
type PathSample struct {
	X, Y     float64
	Rotation float64
	Scale    float64
}

// ResolvePath samples points at time ms. The path is split into len(points)-1
// equal-length segments; looping paths wrap time modulo duration, others clamp
// progress to [0, 1]. ok is false when the path is inert (fewer than two
// points or a non-positive duration).
//
// A point with zero Scale is treated as scale 1.
func ResolvePath(points []PathPoint, duration float64, loop bool, time float64) (s PathSample, ok bool) {
	if len(points) < 2 || duration <= 0 || invalid(time) {
		return PathSample{}, false
	}

	var progress float64
	if loop {
		progress = math.Mod(time, duration) / duration
		if progress < 0 {
			progress++
		}
	} else {
		progress = clamp01(time / duration)
	}

	segments := len(points) - 1
	pos := progress * float64(segments)
	idx := int(pos)
	if idx >= segments {
		idx = segments - 1
	}
	local := pos - float64(idx)

	a, b := &points[idx], &points[idx+1]
	return PathSample{
		X:        lerp(a.X, b.X, local),
		Y:        lerp(a.Y, b.Y, local),
		Rotation: lerp(a.Rotation, b.Rotation, local),
		Scale:    lerp(pointScale(a), pointScale(b), local),
	}, true
}

func pointScale(p *PathPoint) float64 {
	if p.Scale == 0 || invalid(p.Scale) {
		return 1
	}
	return p.Scale
}

// pathOffset converts the absolute path sample at time into a translation
// relative to the layer's static anchor. Inert paths contribute nothing.
func pathOffset(l *Layer, time float64) (dx, dy, rot, scale float64) {
	p := l.MotionPath
	if p == nil {
		return 0, 0, 0, 1
	}
	s, ok := ResolvePath(p.Points, p.Duration, p.Loop, time)
	if !ok {
		return 0, 0, 0, 1
	}
	return s.X - l.X, s.Y - l.Y, s.Rotation, s.Scale
}

// lerp performs linear interpolation between a and b. The two-product form
// returns a and b exactly at t=0 and t=1.
func lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

func clamp01(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
