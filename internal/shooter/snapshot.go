package shooter

import "math"

// Snapshot captures the complete simulation state as flat primitive data.
// Float fields are stored as IEEE 754 bit patterns so two snapshots compare
// bit-for-bit, which the pause and determinism tests rely on.
type Snapshot struct {
	Tick   uint64
	State  string
	Score  int
	Coins  int
	Lives  int
	Cause  string
	Scroll uint64

	RNGState uint64

	// Entity state, 12 values per live entity:
	// index, gen, category, kind, posX, posY, velX, velY, rotation,
	// health, charges, ttl. Floats are bit patterns.
	EntityCount int
	EntityData  []uint64
}

const entityStride = 12

// Snapshot returns the current simulation state.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:     uint64(g.ticks), //#nosec G115 -- tick count is non-negative
		State:    g.state,
		Score:    g.score,
		Coins:    g.coins,
		Lives:    g.lives,
		Cause:    g.cause,
		Scroll:   math.Float64bits(g.scrl.Offset()),
		RNGState: g.rng.State(),
	}

	g.reg.ForEach(func(e *Entity) {
		snap.EntityCount++
		snap.EntityData = append(snap.EntityData,
			uint64(e.Handle.Index), //#nosec G115 -- arena index is non-negative
			uint64(e.Handle.Gen),
			uint64(e.Category),
			uint64(e.Kind),
			math.Float64bits(e.Pos.X),
			math.Float64bits(e.Pos.Y),
			math.Float64bits(e.Vel.X),
			math.Float64bits(e.Vel.Y),
			math.Float64bits(e.Rotation),
			uint64(e.Health),  //#nosec G115 -- hash input only
			uint64(e.Charges), //#nosec G115 -- hash input only
			math.Float64bits(e.TTL),
		)
	})

	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, c := range snap.State {
		h = h*31 + uint64(c)
	}
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Coins) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives) //#nosec G115 -- hash computation
	h = h*31 + snap.Scroll
	h = h*31 + snap.RNGState
	h = h*31 + uint64(snap.EntityCount) //#nosec G115 -- hash computation

	for _, v := range snap.EntityData {
		h = h*31 + v
	}

	return h
}

// Equal reports whether two snapshots are bit-for-bit identical.
func (snap *Snapshot) Equal(o *Snapshot) bool {
	if snap.Tick != o.Tick || snap.State != o.State ||
		snap.Score != o.Score || snap.Coins != o.Coins ||
		snap.Lives != o.Lives || snap.Cause != o.Cause ||
		snap.Scroll != o.Scroll || snap.RNGState != o.RNGState ||
		snap.EntityCount != o.EntityCount ||
		len(snap.EntityData) != len(o.EntityData) {
		return false
	}
	for i, v := range snap.EntityData {
		if o.EntityData[i] != v {
			return false
		}
	}
	return true
}
