package shooter

import (
	"github.com/vovakirdan/geo-shooter/internal/geometry"
)

// Category classifies an entity for collision filtering and event derivation.
type Category uint8

const (
	CategoryPlayer Category = iota
	CategoryPlayerBullet
	CategoryEnemy
	CategoryEnemyBullet
	CategoryShield
	CategoryPowerUp
)

// String returns a human-readable category name.
func (c Category) String() string {
	switch c {
	case CategoryPlayer:
		return "player"
	case CategoryPlayerBullet:
		return "player_bullet"
	case CategoryEnemy:
		return "enemy"
	case CategoryEnemyBullet:
		return "enemy_bullet"
	case CategoryShield:
		return "shield"
	case CategoryPowerUp:
		return "power_up"
	}
	return "unknown"
}

// Handle identifies a live entity: an arena index plus a generation counter.
// A handle whose generation no longer matches the slot is stale and resolves
// to nothing; the zero Handle never refers to an entity.
type Handle struct {
	Index int
	Gen   uint32
}

// NoHandle is the null entity reference, used for absent owners.
var NoHandle = Handle{}

// Valid reports whether the handle could ever refer to an entity.
func (h Handle) Valid() bool {
	return h.Gen != 0
}

// Less orders handles by arena index, then generation. Collision events are
// sorted with this so damage application is reproducible.
func (h Handle) Less(o Handle) bool {
	if h.Index != o.Index {
		return h.Index < o.Index
	}
	return h.Gen < o.Gen
}

// MovementKind selects how an enemy steers each tick.
type MovementKind uint8

const (
	MoveStraight MovementKind = iota
	MoveSine
)

// Movement holds per-entity steering parameters. Straight movers only use
// Speed; sine movers weave horizontally while descending.
type Movement struct {
	Kind      MovementKind
	Speed     float64
	Amplitude float64
	Frequency float64
	Age       float64
}

// Entity is one simulated object. Blueprints are shared read-only templates;
// everything else is per-entity state mutated by the tick pipeline.
type Entity struct {
	Handle    Handle
	Blueprint *geometry.Blueprint
	Pos       geometry.Vec2
	Vel       geometry.Vec2
	Rotation  float64
	Category  Category

	// Owner is a weak back-reference to the spawning entity (bullet →
	// shooter, shield → wearer). It may dangle once the owner despawns;
	// lookups simply miss.
	Owner Handle

	Health    int
	MaxHealth int
	Alive     bool

	// TTL is remaining life in seconds for transient entities. Negative
	// means no expiry.
	TTL float64

	// Enemy behavior.
	Kind          EnemyKind
	Movement      Movement
	ScoreValue    int
	ShootTimer    float64
	ShootInterval float64

	// Shield behavior: hits left before the shield breaks.
	Charges int
}

// Transform returns the entity's world-space transform for collision tests.
func (e *Entity) Transform() geometry.Transform {
	return geometry.Transform{
		Position: e.Pos,
		Rotation: e.Rotation,
		Scale:    e.Blueprint.Scale,
	}
}

type slot struct {
	ent  Entity
	gen  uint32
	live bool
}

// Registry is the arena that owns every live entity. Despawn is deferred:
// killing an entity only drops its Alive flag, and Sweep reclaims slots at
// the end of the tick so in-progress iteration never sees a hole.
type Registry struct {
	slots []slot
	free  []int
	count int
}

// NewRegistry creates an empty entity arena.
func NewRegistry() *Registry {
	return &Registry{}
}

// Spawn creates a new entity and returns its handle. The slot generation is
// bumped on every reuse, so handles issued for a previous occupant of the
// slot can never alias the new entity.
func (r *Registry) Spawn(bp *geometry.Blueprint, pos, vel geometry.Vec2, cat Category, owner Handle) Handle {
	var idx int
	if n := len(r.free); n > 0 {
		idx = r.free[n-1]
		r.free = r.free[:n-1]
	} else {
		idx = len(r.slots)
		r.slots = append(r.slots, slot{})
	}

	s := &r.slots[idx]
	s.gen++
	s.live = true
	s.ent = Entity{
		Handle:    Handle{Index: idx, Gen: s.gen},
		Blueprint: bp,
		Pos:       pos,
		Vel:       vel,
		Category:  cat,
		Owner:     owner,
		Alive:     true,
		TTL:       -1,
	}

	r.count++
	return s.ent.Handle
}

// Get resolves a handle to its entity. Stale or null handles return false.
func (r *Registry) Get(h Handle) (*Entity, bool) {
	if h.Index < 0 || h.Index >= len(r.slots) {
		return nil, false
	}
	s := &r.slots[h.Index]
	if !s.live || s.gen != h.Gen {
		return nil, false
	}
	return &s.ent, true
}

// Kill marks an entity for removal at the next Sweep. Killing an already
// dead or stale handle is a no-op.
func (r *Registry) Kill(h Handle) {
	if ent, ok := r.Get(h); ok {
		ent.Alive = false
	}
}

// ForEach visits every live entity in ascending arena-index order.
// The callback may mutate the entity but must not spawn or sweep.
func (r *Registry) ForEach(fn func(*Entity)) {
	for i := range r.slots {
		if r.slots[i].live {
			fn(&r.slots[i].ent)
		}
	}
}

// Count returns the number of live entities, including ones marked dead but
// not yet swept.
func (r *Registry) Count() int {
	return r.count
}

// CountCategory returns the number of live entities with the given category.
func (r *Registry) CountCategory(cat Category) int {
	n := 0
	r.ForEach(func(e *Entity) {
		if e.Category == cat {
			n++
		}
	})
	return n
}

// Sweep reclaims every entity whose Alive flag was dropped this tick.
// Runs once per tick after all mutation, so collision iteration earlier in
// the tick saw a stable population.
func (r *Registry) Sweep() {
	for i := range r.slots {
		s := &r.slots[i]
		if s.live && !s.ent.Alive {
			s.live = false
			r.free = append(r.free, i)
			r.count--
		}
	}
}

// Reset drops every entity and recycles the arena for a fresh run.
func (r *Registry) Reset() {
	r.slots = r.slots[:0]
	r.free = r.free[:0]
	r.count = 0
}
