package shooter

import (
	"math"

	"github.com/vovakirdan/geo-shooter/internal/config"
	"github.com/vovakirdan/geo-shooter/internal/geometry"
)

// EnemyKind selects an enemy archetype.
type EnemyKind uint8

const (
	EnemyNone EnemyKind = iota
	EnemyDiamond
	EnemyHexagon
	EnemyEliteScout
	EnemyEliteGunship
	EnemyEliteGuard
	BossDiamondKing
	BossHexFortress
	BossTriangleFighter
)

// enemyStats are the per-kind base attributes before difficulty scaling.
type enemyStats struct {
	blueprint     string
	health        int
	score         int
	shootInterval float64
	elite         bool
}

func statsFor(kind EnemyKind) enemyStats {
	switch kind {
	case EnemyHexagon:
		return enemyStats{geometry.BlueprintEnemyHexagon, 5, 300, 1.5, false}
	case EnemyEliteScout:
		return enemyStats{geometry.BlueprintEliteScout, 10, 900, 2.8, true}
	case EnemyEliteGunship:
		return enemyStats{geometry.BlueprintEliteGunship, 14, 1200, 3.2, true}
	case EnemyEliteGuard:
		return enemyStats{geometry.BlueprintEliteGuard, 18, 1500, 3.6, true}
	default:
		return enemyStats{geometry.BlueprintEnemyDiamond, 2, 100, 2.0, false}
	}
}

// bossStatsFor returns a boss's hull strength and bounty. Bosses do not use
// the difficulty scaling path; their stats are fixed per archetype.
func bossStatsFor(kind EnemyKind) enemyStats {
	switch kind {
	case BossHexFortress:
		return enemyStats{geometry.BlueprintBossHexFortress, 300, 3000, 0, false}
	case BossTriangleFighter:
		return enemyStats{geometry.BlueprintBossTriangle, 160, 1500, 0, false}
	default:
		return enemyStats{geometry.BlueprintBossDiamondKing, 200, 2000, 0, false}
	}
}

// Spawner decides which enemies enter the world when a scroll marker fires
// and builds their movement and firing behavior. All randomness flows
// through the game's seeded RNG so runs replay identically.
type Spawner struct {
	cfg config.ShooterConfig
	rng *SimpleRNG
}

// NewSpawner creates a spawner using the shared simulation RNG.
func NewSpawner(cfg config.ShooterConfig, rng *SimpleRNG) *Spawner {
	return &Spawner{cfg: cfg, rng: rng}
}

// Roll picks the next enemy kind. Elites appear with a small chance that
// grows with the difficulty level; heavier regulars also become more common.
func (s *Spawner) Roll(level float64) EnemyKind {
	eliteChance := math.Min(0.02+level*0.06, 0.08)
	if s.rng.Bool(eliteChance) {
		switch s.rng.Intn(3) {
		case 0:
			return EnemyEliteScout
		case 1:
			return EnemyEliteGunship
		default:
			return EnemyEliteGuard
		}
	}

	hexChance := math.Min(0.2+level*0.3, 0.5)
	if s.rng.Bool(hexChance) {
		return EnemyHexagon
	}
	return EnemyDiamond
}

// Spawn places a new enemy of the given kind just above the top edge at a
// random horizontal position and returns its handle.
func (s *Spawner) Spawn(reg *Registry, kind EnemyKind, level float64) Handle {
	st := statsFor(kind)
	bp := geometry.MustGet(st.blueprint)

	margin := s.cfg.Enemies.SpawnMargin
	x := s.rng.Range(-s.cfg.World.Width/2+margin, s.cfg.World.Width/2-margin)
	y := s.cfg.World.Height/2 + margin
	pos := geometry.V(x, y)

	// Difficulty scales health, score and descent speed.
	difficulty := 1.0 + level
	health := int(math.Ceil(float64(st.health) * difficulty))
	score := int(float64(st.score) * difficulty)

	speedMul := 1.0 + (difficulty-1.0)*0.5
	if st.elite {
		// Elites descend slowly but fire dense volleys.
		speedMul *= 0.2
	}

	movement := s.rollMovement(speedMul)

	h := reg.Spawn(bp, pos, geometry.V(0, -movement.Speed), CategoryEnemy, NoHandle)
	ent, _ := reg.Get(h)
	ent.Kind = kind
	ent.Health = health
	ent.MaxHealth = health
	ent.ScoreValue = score
	ent.Movement = movement
	ent.ShootInterval = math.Max(st.shootInterval/difficulty, 0.5)
	ent.ShootTimer = s.rng.Range(0, ent.ShootInterval)
	return h
}

// RollBoss picks which boss hull anchors the encounter.
func (s *Spawner) RollBoss() EnemyKind {
	switch s.rng.Intn(3) {
	case 0:
		return BossHexFortress
	case 1:
		return BossTriangleFighter
	default:
		return BossDiamondKing
	}
}

// SpawnBoss places the boss above the top edge, centered. The first volley
// is held back a full interval so the entrance is not an instant barrage.
func (s *Spawner) SpawnBoss(reg *Registry, kind EnemyKind) Handle {
	st := bossStatsFor(kind)
	bp := geometry.MustGet(st.blueprint)
	pos := geometry.V(0, s.cfg.World.Height/2+s.cfg.Enemies.SpawnMargin)

	h := reg.Spawn(bp, pos, geometry.V(0, -s.cfg.Boss.EntrySpeed), CategoryEnemy, NoHandle)
	ent, _ := reg.Get(h)
	ent.Kind = kind
	ent.Health = st.health
	ent.MaxHealth = st.health
	ent.ScoreValue = st.score
	ent.Movement = Movement{Kind: MoveSine, Speed: s.cfg.Boss.EntrySpeed, Frequency: 0.8}
	ent.ShootInterval = s.cfg.Boss.ShootInterval
	ent.ShootTimer = s.cfg.Boss.ShootInterval
	return h
}

// bossVolleyGap shortens the boss firing interval as its hull degrades, one
// notch per third of remaining health.
func bossVolleyGap(e *Entity, base float64) float64 {
	if e.MaxHealth <= 0 {
		return base
	}
	frac := float64(e.Health) / float64(e.MaxHealth)
	switch {
	case frac < 1.0/3.0:
		return base * 0.5
	case frac < 2.0/3.0:
		return base * 0.75
	}
	return base
}

func (s *Spawner) rollMovement(speedMul float64) Movement {
	base := s.cfg.Enemies.BaseSpeed
	switch s.rng.Intn(3) {
	case 1:
		return Movement{
			Kind:      MoveSine,
			Speed:     base * 0.8 * speedMul,
			Amplitude: s.rng.Range(50, 150),
			Frequency: s.rng.Range(1, 3),
		}
	case 0:
		return Movement{
			Kind:  MoveStraight,
			Speed: base * s.rng.Range(0.8, 1.2) * speedMul,
		}
	default:
		return Movement{
			Kind:  MoveStraight,
			Speed: base * speedMul,
		}
	}
}

// volleyRound describes one projectile of a volley before it is spawned.
type volleyRound struct {
	offset geometry.Vec2
	vel    geometry.Vec2
}

// volleyFor builds the firing pattern of an enemy kind. Regular enemies
// fire a single aimed-down shot; elites fire fans and rings.
func volleyFor(kind EnemyKind, bulletSpeed float64) []volleyRound {
	down := -math.Pi / 2

	switch kind {
	case EnemyEliteScout:
		// 3-way fan plus a faster center shot.
		rounds := make([]volleyRound, 0, 4)
		for _, p := range []struct {
			step float64
			mul  float64
		}{
			{-1, 0.55}, {0, 0.65}, {1, 0.55}, {0, 0.85},
		} {
			angle := down + p.step*0.18
			rounds = append(rounds, volleyRound{
				vel: geometry.V(math.Cos(angle), math.Sin(angle)).Scale(bulletSpeed * p.mul),
			})
		}
		return rounds

	case EnemyEliteGunship:
		// 5-way fan with two slower flanking shots.
		const count = 5
		const spread = 0.75
		rounds := make([]volleyRound, 0, count+2)
		for i := 0; i < count; i++ {
			t := (float64(i)/(count-1))*2 - 1
			angle := down + t*spread*0.5
			rounds = append(rounds, volleyRound{
				vel: geometry.V(math.Cos(angle), math.Sin(angle)).Scale(bulletSpeed * 0.6),
			})
		}
		for _, side := range []float64{-1, 1} {
			rounds = append(rounds, volleyRound{
				offset: geometry.V(side*14, 0),
				vel:    geometry.V(side*0.25, -1).Normalize().Scale(bulletSpeed * 0.5),
			})
		}
		return rounds

	case EnemyEliteGuard:
		// 10-shot arc covering the downward half circle.
		const count = 10
		rounds := make([]volleyRound, 0, count)
		for i := 0; i < count; i++ {
			t := float64(i) / (count - 1)
			angle := math.Pi*(0.15+0.7*t) + math.Pi
			rounds = append(rounds, volleyRound{
				vel: geometry.V(math.Cos(angle), math.Sin(angle)).Scale(bulletSpeed * 0.42),
			})
		}
		return rounds

	case BossDiamondKing:
		// Dense 9-shot arc over the downward half circle.
		const count = 9
		rounds := make([]volleyRound, 0, count)
		for i := 0; i < count; i++ {
			t := float64(i) / (count - 1)
			angle := math.Pi * (1.1 + 0.8*t)
			rounds = append(rounds, volleyRound{
				vel: geometry.V(math.Cos(angle), math.Sin(angle)).Scale(bulletSpeed * 0.5),
			})
		}
		return rounds

	case BossHexFortress:
		// Paired shots from two side emitters plus a 3-way center fan.
		rounds := make([]volleyRound, 0, 7)
		for _, side := range []float64{-1, 1} {
			for _, mul := range []float64{0.45, 0.65} {
				rounds = append(rounds, volleyRound{
					offset: geometry.V(side*40, 0),
					vel:    geometry.V(side*0.2, -1).Normalize().Scale(bulletSpeed * mul),
				})
			}
		}
		for _, step := range []float64{-1, 0, 1} {
			angle := down + step*0.25
			rounds = append(rounds, volleyRound{
				vel: geometry.V(math.Cos(angle), math.Sin(angle)).Scale(bulletSpeed * 0.55),
			})
		}
		return rounds

	case BossTriangleFighter:
		// Tight fast triple burst straight down.
		rounds := make([]volleyRound, 0, 3)
		for _, step := range []float64{-1, 0, 1} {
			rounds = append(rounds, volleyRound{
				offset: geometry.V(step*10, 0),
				vel:    geometry.V(0, -bulletSpeed*0.9),
			})
		}
		return rounds

	default:
		return []volleyRound{{vel: geometry.V(0, -bulletSpeed)}}
	}
}
