package motion

// ResolveKeyframe returns the value of prop at localTime. Keyframes must be
// sorted ascending by time; entries for other properties are skipped. With no
// keyframes for prop, def is returned. Times outside the keyframed range clamp
// to the first or last value; in between, values are linearly interpolated.
func ResolveKeyframe(prop Property, keyframes []Keyframe, def, localTime float64) float64 {
	first, last := -1, -1
	for i := range keyframes {
		if keyframes[i].Property != prop {
			continue
		}
		if first < 0 {
			first = i
		}
		last = i
	}
	if first < 0 {
		return def
	}
	if localTime <= keyframes[first].Time {
		return keyframes[first].Value
	}
	if localTime >= keyframes[last].Time {
		return keyframes[last].Value
	}

	prev := first
	for i := first + 1; i <= last; i++ {
		kf := &keyframes[i]
		if kf.Property != prop {
			continue
		}
		if localTime < kf.Time {
			p := &keyframes[prev]
			span := kf.Time - p.Time
			if span <= 0 {
				return kf.Value
			}
			return p.Value + (kf.Value-p.Value)*(localTime-p.Time)/span
		}
		prev = i
	}
	return keyframes[last].Value
}

// keyframeValues holds the resolved base values of the keyframeable
// properties.
type keyframeValues struct {
	x, y, scale, rotation, opacity float64
}

// resolveKeyframes resolves every keyframeable property of l independently,
// falling back to the layer's static configuration.
func resolveKeyframes(l *Layer, base keyframeValues, localTime float64) keyframeValues {
	if len(l.Keyframes) == 0 {
		return base
	}
	kfs := l.Keyframes
	return keyframeValues{
		x:        ResolveKeyframe(PropX, kfs, base.x, localTime),
		y:        ResolveKeyframe(PropY, kfs, base.y, localTime),
		scale:    ResolveKeyframe(PropScale, kfs, base.scale, localTime),
		rotation: ResolveKeyframe(PropRotation, kfs, base.rotation, localTime),
		opacity:  ResolveKeyframe(PropOpacity, kfs, base.opacity, localTime),
	}
}
