package shooter

import (
	"testing"

	"github.com/vovakirdan/geo-shooter/internal/geometry"
)

func circleBlueprint(r float64) *geometry.Blueprint {
	return &geometry.Blueprint{
		Name:      "circle_test",
		Collision: geometry.CollisionCircle(r),
		Scale:     1,
	}
}

func TestDetectReportsApproachingEnemy(t *testing.T) {
	// Player circle r=10 at the origin, enemy circle r=8 closing at 20
	// units per tick from x=30. After one motion step the distance is 10,
	// inside the 18-unit contact range.
	reg := NewRegistry()
	eng := NewCollisionEngine()

	player := reg.Spawn(circleBlueprint(10), geometry.V(0, 0), geometry.Vec2{}, CategoryPlayer, NoHandle)
	enemy := reg.Spawn(circleBlueprint(8), geometry.V(30, 0), geometry.V(-20, 0), CategoryEnemy, NoHandle)

	// Tick 0: 30 apart, no contact.
	if events := eng.Detect(reg); len(events) != 0 {
		t.Fatalf("tick 0: got %d events, want 0", len(events))
	}

	// One motion step.
	reg.ForEach(func(e *Entity) {
		e.Pos = e.Pos.Add(e.Vel)
	})

	events := eng.Detect(reg)
	if len(events) != 1 {
		t.Fatalf("tick 1: got %d events, want 1", len(events))
	}
	ev := events[0]
	if ev.Kind != EventDamagePlayer {
		t.Errorf("event kind = %v, want damage_player", ev.Kind)
	}
	if ev.A != player || ev.B != enemy {
		t.Errorf("event pair = %v/%v, want player/enemy in handle order", ev.A, ev.B)
	}
}

func TestDetectSameCategoryExcluded(t *testing.T) {
	reg := NewRegistry()
	eng := NewCollisionEngine()

	reg.Spawn(circleBlueprint(10), geometry.V(0, 0), geometry.Vec2{}, CategoryEnemy, NoHandle)
	reg.Spawn(circleBlueprint(10), geometry.V(5, 0), geometry.Vec2{}, CategoryEnemy, NoHandle)
	reg.Spawn(circleBlueprint(10), geometry.V(2, 2), geometry.Vec2{}, CategoryPlayerBullet, NoHandle)
	reg.Spawn(circleBlueprint(10), geometry.V(3, 1), geometry.Vec2{}, CategoryPlayerBullet, NoHandle)

	// Overlapping enemies and overlapping friendly bullets produce events
	// only for the Bullet x Enemy cross pairs.
	for _, ev := range eng.Detect(reg) {
		if ev.Kind != EventDamageEnemy {
			t.Errorf("unexpected event kind %v", ev.Kind)
		}
	}
}

func TestDetectOrderingStable(t *testing.T) {
	reg := NewRegistry()
	eng := NewCollisionEngine()

	// One bullet overlapping three enemies. Events must come back in
	// ascending handle order no matter how the broad phase buckets them.
	reg.Spawn(circleBlueprint(5), geometry.V(0, 0), geometry.Vec2{}, CategoryPlayerBullet, NoHandle)
	var enemies []Handle
	for i := 0; i < 3; i++ {
		enemies = append(enemies, reg.Spawn(circleBlueprint(5), geometry.V(float64(i), 1), geometry.Vec2{}, CategoryEnemy, NoHandle))
	}

	for run := 0; run < 10; run++ {
		events := eng.Detect(reg)
		if len(events) != 3 {
			t.Fatalf("run %d: got %d events, want 3", run, len(events))
		}
		for i, ev := range events {
			if ev.B != enemies[i] {
				t.Fatalf("run %d: event %d pairs %v, want enemy %v", run, i, ev.B, enemies[i])
			}
		}
	}
}

func TestDetectSkipsDeadEntities(t *testing.T) {
	reg := NewRegistry()
	eng := NewCollisionEngine()

	reg.Spawn(circleBlueprint(10), geometry.V(0, 0), geometry.Vec2{}, CategoryPlayer, NoHandle)
	enemy := reg.Spawn(circleBlueprint(10), geometry.V(5, 0), geometry.Vec2{}, CategoryEnemy, NoHandle)

	reg.Kill(enemy)

	if events := eng.Detect(reg); len(events) != 0 {
		t.Errorf("dead entity still produced %d events", len(events))
	}
}

func TestDetectDistantPairsRejected(t *testing.T) {
	reg := NewRegistry()
	eng := NewCollisionEngine()

	reg.Spawn(circleBlueprint(10), geometry.V(-200, -300), geometry.Vec2{}, CategoryPlayer, NoHandle)
	reg.Spawn(circleBlueprint(10), geometry.V(200, 300), geometry.Vec2{}, CategoryEnemy, NoHandle)

	if events := eng.Detect(reg); len(events) != 0 {
		t.Errorf("distant pair produced %d events", len(events))
	}
}

func TestDetectAcrossCellBoundary(t *testing.T) {
	reg := NewRegistry()
	eng := NewCollisionEngine()

	// Two big circles whose centers land in adjacent grid cells but whose
	// shapes overlap; the neighbor scan must still find the pair.
	reg.Spawn(circleBlueprint(30), geometry.V(-25, 0), geometry.Vec2{}, CategoryPlayer, NoHandle)
	reg.Spawn(circleBlueprint(30), geometry.V(25, 0), geometry.Vec2{}, CategoryEnemy, NoHandle)

	events := eng.Detect(reg)
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	if events[0].Kind != EventDamagePlayer {
		t.Errorf("event kind = %v, want damage_player", events[0].Kind)
	}
}

func TestEventForPairs(t *testing.T) {
	tests := []struct {
		name string
		a, b Category
		kind EventKind
		ok   bool
	}{
		{"player vs enemy", CategoryPlayer, CategoryEnemy, EventDamagePlayer, true},
		{"player vs enemy bullet", CategoryPlayer, CategoryEnemyBullet, EventDamagePlayer, true},
		{"bullet vs enemy", CategoryPlayerBullet, CategoryEnemy, EventDamageEnemy, true},
		{"enemy vs bullet reversed", CategoryEnemy, CategoryPlayerBullet, EventDamageEnemy, true},
		{"shield vs enemy", CategoryShield, CategoryEnemy, EventShieldBlock, true},
		{"shield vs enemy bullet", CategoryShield, CategoryEnemyBullet, EventShieldBlock, true},
		{"player vs power up", CategoryPlayer, CategoryPowerUp, EventPickup, true},
		{"same category", CategoryEnemy, CategoryEnemy, 0, false},
		{"bullet vs bullet", CategoryPlayerBullet, CategoryEnemyBullet, 0, false},
		{"bullet vs power up", CategoryPlayerBullet, CategoryPowerUp, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, ok := eventFor(tt.a, tt.b)
			if ok != tt.ok {
				t.Fatalf("eventFor(%v, %v) ok = %v, want %v", tt.a, tt.b, ok, tt.ok)
			}
			if ok && kind != tt.kind {
				t.Errorf("eventFor(%v, %v) = %v, want %v", tt.a, tt.b, kind, tt.kind)
			}
		})
	}
}
