package shooter

// Scroll tracks the auto-scrolling world offset. The offset only moves
// while the game steps it; pausing simply stops calling Advance, so the
// value is bit-for-bit stable across any number of paused ticks.
type Scroll struct {
	offset float64
	speed  float64
}

// NewScroll creates scroll state with the given base speed in world units
// per second.
func NewScroll(speed float64) *Scroll {
	return &Scroll{speed: speed}
}

// Advance moves the world by speed x multiplier x dt and returns the delta.
// The multiplier carries the difficulty ramp and must never shrink the
// offset; negative inputs are treated as zero.
func (s *Scroll) Advance(dt, multiplier float64) float64 {
	if dt <= 0 || multiplier <= 0 {
		return 0
	}
	delta := s.speed * multiplier * dt
	s.offset += delta
	return delta
}

// Offset returns the cumulative scroll distance.
func (s *Scroll) Offset() float64 {
	return s.offset
}

// Reset rewinds the offset to zero for a fresh run.
func (s *Scroll) Reset() {
	s.offset = 0
}

// Marker is a spawn threshold in world-scroll coordinates. Crossing is
// edge-triggered: one crossing fires once no matter how far a single tick
// jumps, and the marker re-arms past the current offset.
type Marker struct {
	next     float64
	interval float64
}

// NewMarker creates a marker that first fires after one interval of scroll.
func NewMarker(interval float64) *Marker {
	return &Marker{next: interval, interval: interval}
}

// SetInterval changes the distance between future firings. The already
// armed threshold is unaffected.
func (m *Marker) SetInterval(interval float64) {
	m.interval = interval
}

// Crossed reports whether the offset has passed the armed threshold, and if
// so re-arms the marker one interval beyond the current offset. A large dt
// that overshoots several intervals still yields a single firing.
func (m *Marker) Crossed(offset float64) bool {
	if offset <= m.next {
		return false
	}
	m.next = offset + m.interval
	return true
}

// Reset re-arms the marker relative to a zero offset.
func (m *Marker) Reset() {
	m.next = m.interval
}
