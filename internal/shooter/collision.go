package shooter

import (
	"math"
	"sort"

	"github.com/vovakirdan/geo-shooter/internal/geometry"
)

// EventKind classifies a collision by the categories involved.
type EventKind uint8

const (
	// EventDamagePlayer: the player touched an enemy or an enemy bullet.
	EventDamagePlayer EventKind = iota
	// EventDamageEnemy: a player bullet hit an enemy.
	EventDamageEnemy
	// EventShieldBlock: an active shield absorbed an enemy or enemy bullet.
	EventShieldBlock
	// EventPickup: the player collected a power-up.
	EventPickup
)

// String returns a human-readable event kind name.
func (k EventKind) String() string {
	switch k {
	case EventDamagePlayer:
		return "damage_player"
	case EventDamageEnemy:
		return "damage_enemy"
	case EventShieldBlock:
		return "shield_block"
	case EventPickup:
		return "pickup"
	}
	return "unknown"
}

// Event reports one overlapping pair for the current tick. A is always the
// lower handle; events are emitted sorted by (A, B) so downstream damage
// application is deterministic regardless of broad-phase iteration order.
type Event struct {
	A, B Handle
	Kind EventKind
}

// eventFor maps an ordered category pair to an event kind. The bool is
// false for pairs that never produce an event (same category, or categories
// that pass through each other).
func eventFor(a, b Category) (EventKind, bool) {
	if a == b {
		return 0, false
	}
	// Normalize so the smaller category value comes first.
	if a > b {
		a, b = b, a
	}

	switch {
	case a == CategoryPlayer && (b == CategoryEnemy || b == CategoryEnemyBullet):
		return EventDamagePlayer, true
	case a == CategoryPlayerBullet && b == CategoryEnemy:
		return EventDamageEnemy, true
	case a == CategoryEnemy && b == CategoryShield,
		a == CategoryEnemyBullet && b == CategoryShield:
		return EventShieldBlock, true
	case a == CategoryPlayer && b == CategoryPowerUp:
		return EventPickup, true
	}
	return 0, false
}

// CollisionEngine finds overlapping entity pairs. The broad phase hashes
// entities into a uniform grid sized to the largest collision radius in
// play; the narrow phase runs the exact shape tests only on pairs sharing
// or adjacent to a cell.
type CollisionEngine struct {
	cells map[cellKey][]int
}

type cellKey struct {
	x, y int
}

// NewCollisionEngine creates a collision engine.
func NewCollisionEngine() *CollisionEngine {
	return &CollisionEngine{
		cells: make(map[cellKey][]int),
	}
}

// Detect returns every colliding pair for the current registry snapshot,
// sorted by ascending handle order of the first participant, then the
// second. Entities already marked dead are skipped.
func (c *CollisionEngine) Detect(reg *Registry) []Event {
	// Gather live entities and the largest bounding radius.
	var indices []int
	maxRadius := 1.0
	reg.ForEach(func(e *Entity) {
		if !e.Alive {
			return
		}
		indices = append(indices, e.Handle.Index)
		if r := e.Blueprint.BoundingRadius(); r > maxRadius {
			maxRadius = r
		}
	})

	cellSize := maxRadius * 2

	// Broad phase: bucket entity indices by grid cell.
	for k := range c.cells {
		delete(c.cells, k)
	}
	for _, idx := range indices {
		e := &reg.slots[idx].ent
		key := cellKey{
			x: int(math.Floor(e.Pos.X / cellSize)),
			y: int(math.Floor(e.Pos.Y / cellSize)),
		}
		c.cells[key] = append(c.cells[key], idx)
	}

	var events []Event
	seen := make(map[[2]int]struct{})

	// Narrow phase: for each entity, test against occupants of its own and
	// the eight neighboring cells. Iterating indices in ascending order and
	// only keeping i < j pairs makes the scan independent of map order.
	for _, i := range indices {
		a := &reg.slots[i].ent
		cx := int(math.Floor(a.Pos.X / cellSize))
		cy := int(math.Floor(a.Pos.Y / cellSize))

		for dx := -1; dx <= 1; dx++ {
			for dy := -1; dy <= 1; dy++ {
				bucket := c.cells[cellKey{x: cx + dx, y: cy + dy}]
				for _, j := range bucket {
					if j <= i {
						continue
					}
					pair := [2]int{i, j}
					if _, dup := seen[pair]; dup {
						continue
					}
					seen[pair] = struct{}{}

					b := &reg.slots[j].ent

					// Cheap category rejection before any geometry.
					kind, ok := eventFor(a.Category, b.Category)
					if !ok {
						continue
					}
					// A shield only protects its wearer; it ignores the
					// wearer itself.
					if a.Category == CategoryShield && a.Owner == b.Handle ||
						b.Category == CategoryShield && b.Owner == a.Handle {
						continue
					}

					if !geometry.Intersects(a.Blueprint.Collision, a.Transform(), b.Blueprint.Collision, b.Transform()) {
						continue
					}

					events = append(events, Event{A: a.Handle, B: b.Handle, Kind: kind})
				}
			}
		}
	}

	sort.Slice(events, func(x, y int) bool {
		if events[x].A != events[y].A {
			return events[x].A.Less(events[y].A)
		}
		return events[x].B.Less(events[y].B)
	})

	return events
}
