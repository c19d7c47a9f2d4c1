// Package shooter implements the simulation engine of the geometry shooter:
// the entity arena, collision detection, auto-scroll, spawn scheduling, and
// the menu/playing/paused/gameover state machine. The package is pure game
// logic driven by discrete command frames; the platform layer owns timing,
// input mapping, and terminal output.
package shooter

import (
	"math"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/geo-shooter/internal/config"
	"github.com/vovakirdan/geo-shooter/internal/core"
	"github.com/vovakirdan/geo-shooter/internal/geometry"
)

// Game states.
const (
	StateMenu     = "menu"
	StatePlaying  = "playing"
	StatePaused   = "paused"
	StateGameOver = "gameover"
)

// Game over causes recorded in the terminal snapshot.
const (
	CausePlayerDestroyed = "player_destroyed"
	CauseBossDefeated    = "boss_defeated"
)

// CreditEvent is a currency credit delivered by the recharge collaborator.
// It may arrive from any goroutine at any time, including while paused or
// in the menu; credits are buffered and folded into the balance at the next
// step boundary, outside the tick pipeline.
type CreditEvent struct {
	OrderID string
	Amount  int
	Success bool
}

// Game is the complete shooter simulation. All mutation happens inside
// Step, one full tick at a time; commands only take effect at tick
// boundaries.
type Game struct {
	cfg  core.RuntimeConfig
	game config.ShooterConfig
	diff *config.DifficultyManager

	state string
	reg   *Registry
	eng   *CollisionEngine
	scrl  *Scroll
	mark  *Marker
	spawn *Spawner
	rng   *SimpleRNG

	player Handle
	shield Handle
	boss   Handle

	bossSeen bool
	bossDown bool

	score      int
	coins      int
	lives      int
	ticks      int
	cause      string
	shootTimer float64
	invincible float64

	creditMu sync.Mutex
	credits  []CreditEvent
}

// New creates a game with the given tunables. Call Reset before stepping.
func New(gameCfg config.ShooterConfig) *Game {
	return &Game{
		game:  gameCfg,
		state: StateMenu,
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "geoshooter"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Geometry Shooter"
}

// Reset initializes the simulation. The game starts in the menu; a start
// command builds the first run.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = cfg
	g.state = StateMenu
	g.rng = NewSimpleRNG(cfg.Seed)
	g.reg = NewRegistry()
	g.eng = NewCollisionEngine()
	g.scrl = NewScroll(g.game.Scroll.Speed)
	g.spawn = NewSpawner(g.game, g.rng)
	g.diff = config.NewDifficultyManager(g.game.Difficulty)
	g.coins = 0
	g.clearRun()
}

// clearRun resets per-run state without touching the coin balance or RNG.
func (g *Game) clearRun() {
	g.reg.Reset()
	g.scrl.Reset()
	g.score = 0
	g.lives = g.game.Player.Lives
	g.ticks = 0
	g.cause = ""
	g.shootTimer = 0
	g.invincible = 0
	g.player = NoHandle
	g.shield = NoHandle
	g.boss = NoHandle
	g.bossSeen = false
	g.bossDown = false

	// First wave arrives after one spawn interval of scroll distance.
	g.mark = NewMarker(g.game.Enemies.SpawnInterval * g.game.Scroll.Speed)
}

// startRun discards any previous snapshot and enters Playing with a fresh
// registry and scroll state.
func (g *Game) startRun() {
	g.clearRun()

	bp := geometry.MustGet(geometry.BlueprintPlayer)
	pos := geometry.V(0, -g.game.World.Height/3)
	g.player = g.reg.Spawn(bp, pos, geometry.Vec2{}, CategoryPlayer, NoHandle)
	if ent, ok := g.reg.Get(g.player); ok {
		ent.Health = 1
	}

	g.state = StatePlaying
	log.Debug("run started", "seed", g.cfg.Seed)
}

// Step advances the simulation by one tick. Buffered recharge credits are
// applied first, in every state; the tick pipeline itself only runs while
// Playing.
func (g *Game) Step(in core.CommandFrame) core.StepResult {
	g.applyCredits()

	var record *core.RunRecord

	switch g.state {
	case StateMenu:
		if in.Has(core.CmdStart) {
			g.startRun()
		} else {
			g.rejectTransitions(in, core.CmdPause, core.CmdResume, core.CmdRestart)
		}

	case StatePlaying:
		if in.Has(core.CmdPause) {
			g.state = StatePaused
			break
		}
		g.rejectTransitions(in, core.CmdStart, core.CmdResume, core.CmdRestart)
		record = g.tick(in)

	case StatePaused:
		// Strict gate: nothing advances, only transition commands are read,
		// so the run snapshot stays untouched down to the last bit.
		if in.Has(core.CmdResume) || in.Has(core.CmdPause) {
			g.state = StatePlaying
		} else {
			g.rejectTransitions(in, core.CmdStart, core.CmdRestart)
		}

	case StateGameOver:
		switch {
		case in.Has(core.CmdRestart):
			g.startRun()
		case in.Has(core.CmdStart):
			g.state = StateMenu
		default:
			g.rejectTransitions(in, core.CmdPause, core.CmdResume)
		}
	}

	return core.StepResult{Status: g.Status(), Record: record}
}

// rejectTransitions logs commands that request a transition the current
// state does not define. They are ignored, never applied.
func (g *Game) rejectTransitions(in core.CommandFrame, cmds ...core.Command) {
	for _, cmd := range cmds {
		if in.Has(cmd) {
			log.Warn("ignoring invalid transition", "state", g.state, "command", cmd.String())
		}
	}
}

// tick runs the full per-tick pipeline: scroll, spawns, motion, firing,
// collision detection, event application, offscreen culling, sweep, and the
// end-of-tick game over check. Returns a terminal record on the game over
// tick, nil otherwise.
func (g *Game) tick(in core.CommandFrame) *core.RunRecord {
	dt := 1.0 / float64(g.cfg.TickRate)
	g.ticks++

	level := g.diff.Level(g.score, g.ticks)
	speedMul := 1.0 + level*g.game.Difficulty.Scaling.SpeedMultiplier

	// Scroll advances and may request spawns when a marker is crossed.
	g.scrl.Advance(dt, speedMul)
	g.mark.SetInterval(g.diff.SpawnInterval(g.game.Enemies.SpawnInterval, g.score, g.ticks) * g.game.Scroll.Speed * speedMul)
	if g.mark.Crossed(g.scrl.Offset()) {
		g.spawn.Spawn(g.reg, g.spawn.Roll(level), level)
	}
	g.maybeSpawnBoss()

	g.steerPlayer(in, dt)
	g.steerEnemies(dt, speedMul)
	g.firePlayer(in, dt)
	g.fireEnemies(dt)
	g.integrate(dt)

	events := g.eng.Detect(g.reg)
	g.applyEvents(events)

	g.cullOffscreen()
	g.reg.Sweep()

	if g.invincible > 0 {
		g.invincible = math.Max(0, g.invincible-dt)
	}

	// Run endings are detected after the sweep so the terminal snapshot is
	// fully settled. Player death wins a tie against the boss kill.
	if g.lives <= 0 {
		return g.endRun(CausePlayerDestroyed)
	}
	if g.bossDown {
		return g.endRun(CauseBossDefeated)
	}
	return nil
}

// endRun flips to game over and builds the terminal record.
func (g *Game) endRun(cause string) *core.RunRecord {
	g.state = StateGameOver
	g.cause = cause
	log.Info("game over", "cause", cause, "score", g.score, "ticks", g.ticks)
	return &core.RunRecord{
		Score:       g.score,
		DurationSec: float64(g.ticks) / float64(g.cfg.TickRate),
		Coins:       g.coins,
		Cause:       cause,
	}
}

// maybeSpawnBoss warps the boss in once the score threshold is crossed.
// One encounter per run; destroying the boss ends the run as a victory.
func (g *Game) maybeSpawnBoss() {
	if !g.game.Boss.Enabled || g.bossSeen || g.score < g.game.Boss.ScoreThreshold {
		return
	}
	g.bossSeen = true
	g.boss = g.spawn.SpawnBoss(g.reg, g.spawn.RollBoss())
	if b, ok := g.reg.Get(g.boss); ok {
		log.Info("boss inbound", "blueprint", b.Blueprint.Name, "health", b.Health)
	}
}

// bossAlive reports whether the boss encounter is in progress.
func (g *Game) bossAlive() bool {
	b, ok := g.reg.Get(g.boss)
	return ok && b.Alive
}

// steerPlayer converts held movement commands into the player's velocity
// and clamps the craft inside the world margins.
func (g *Game) steerPlayer(in core.CommandFrame, dt float64) {
	ent, ok := g.reg.Get(g.player)
	if !ok {
		return
	}

	var dir geometry.Vec2
	if in.Has(core.CmdMoveLeft) {
		dir.X -= 1
	}
	if in.Has(core.CmdMoveRight) {
		dir.X += 1
	}
	if in.Has(core.CmdMoveUp) {
		dir.Y += 1
	}
	if in.Has(core.CmdMoveDown) {
		dir.Y -= 1
	}

	ent.Vel = dir.Normalize().Scale(g.game.Player.Speed)

	halfW := g.game.World.Width/2 - g.game.Player.EdgeMargin
	halfH := g.game.World.Height/2 - g.game.Player.EdgeMargin
	next := ent.Pos.Add(ent.Vel.Scale(dt))
	next.X = core.ClampF(next.X, -halfW, halfW)
	next.Y = core.ClampF(next.Y, -halfH, halfH)

	// Position is applied here rather than in integrate so the clamp sees
	// the final value; velocity is zeroed to avoid double integration.
	ent.Pos = next
	ent.Vel = geometry.Vec2{}

	// The shield, if any, rides on the wearer.
	if sh, ok := g.reg.Get(g.shield); ok {
		sh.Pos = ent.Pos
	}
}

// steerEnemies updates per-enemy movement. Sine movers weave horizontally;
// everything drifts down with the scroll in addition to its own speed.
func (g *Game) steerEnemies(dt, speedMul float64) {
	scrollDrift := g.game.Scroll.Speed * speedMul
	g.reg.ForEach(func(e *Entity) {
		if e.Category != CategoryEnemy && e.Category != CategoryPowerUp {
			return
		}
		if e.Category == CategoryPowerUp {
			e.Vel = geometry.V(0, -scrollDrift)
			return
		}
		if e.Handle == g.boss {
			g.steerBoss(e, dt)
			return
		}

		m := &e.Movement
		switch m.Kind {
		case MoveSine:
			m.Age += dt
			e.Vel = geometry.V(
				math.Cos(m.Age*m.Frequency)*m.Amplitude,
				-(m.Speed + scrollDrift),
			)
		default:
			e.Vel = geometry.V(0, -(m.Speed + scrollDrift))
		}
	})
}

// steerBoss descends the boss to its hold line, then strafes it across the
// top of the arena. The boss ignores the world scroll.
func (g *Game) steerBoss(e *Entity, dt float64) {
	holdY := g.game.World.Height/2 - g.game.Boss.HoldDistance
	if e.Pos.Y > holdY {
		e.Vel = geometry.V(0, -g.game.Boss.EntrySpeed)
		return
	}
	m := &e.Movement
	m.Age += dt
	e.Vel = geometry.V(math.Sin(m.Age*m.Frequency)*g.game.Boss.StrafeSpeed, 0)
}

// firePlayer spawns a player bullet when fire is held and the cooldown has
// elapsed.
func (g *Game) firePlayer(in core.CommandFrame, dt float64) {
	g.shootTimer -= dt
	if !in.Has(core.CmdFire) || g.shootTimer > 0 {
		return
	}
	ent, ok := g.reg.Get(g.player)
	if !ok {
		return
	}

	g.shootTimer = g.game.Player.ShootCooldown
	bp := geometry.MustGet(geometry.BlueprintBullet)
	pos := ent.Pos.Add(geometry.V(0, 25))
	h := g.reg.Spawn(bp, pos, geometry.V(0, g.game.Player.BulletSpeed), CategoryPlayerBullet, g.player)
	if b, ok := g.reg.Get(h); ok {
		b.TTL = 3
	}
}

// fireEnemies counts down each enemy's shoot timer and spawns its volley
// when it expires.
func (g *Game) fireEnemies(dt float64) {
	type shot struct {
		pos  geometry.Vec2
		vel  geometry.Vec2
		from Handle
	}
	var shots []shot

	g.reg.ForEach(func(e *Entity) {
		if e.Category != CategoryEnemy || e.ShootInterval <= 0 {
			return
		}
		e.ShootTimer -= dt
		if e.ShootTimer > 0 {
			return
		}
		gap := e.ShootInterval
		if e.Handle == g.boss {
			gap = bossVolleyGap(e, gap)
		}
		e.ShootTimer = gap

		muzzle := e.Pos.Add(geometry.V(0, -24))
		for _, round := range volleyFor(e.Kind, g.game.Enemies.BulletSpeed) {
			shots = append(shots, shot{pos: muzzle.Add(round.offset), vel: round.vel, from: e.Handle})
		}
	})

	// Spawns happen after iteration so ForEach never observes arena growth.
	bp := geometry.MustGet(geometry.BlueprintEnemyBullet)
	for _, s := range shots {
		h := g.reg.Spawn(bp, s.pos, s.vel, CategoryEnemyBullet, s.from)
		if b, ok := g.reg.Get(h); ok {
			b.TTL = 6
		}
	}
}

// integrate applies velocity to every live entity and expires TTLs.
func (g *Game) integrate(dt float64) {
	g.reg.ForEach(func(e *Entity) {
		e.Pos = e.Pos.Add(e.Vel.Scale(dt))
		if e.TTL >= 0 {
			e.TTL -= dt
			if e.TTL < 0 {
				e.Alive = false
			}
		}
	})
}

// applyEvents walks the sorted collision events and mutates health, lives,
// charges, and the coin balance. Kills are deferred to the sweep; an event
// whose participant already died earlier this tick resolves as a no-op.
func (g *Game) applyEvents(events []Event) {
	shielded := g.shieldActive()

	for _, ev := range events {
		a, okA := g.reg.Get(ev.A)
		b, okB := g.reg.Get(ev.B)
		if !okA || !okB || !a.Alive || !b.Alive {
			continue
		}

		switch ev.Kind {
		case EventDamagePlayer:
			threat := other(a, b, CategoryPlayer)
			if shielded || g.invincible > 0 {
				continue
			}
			g.lives--
			g.invincible = g.game.Player.InvincibleTime
			if threat.Category == CategoryEnemyBullet {
				g.reg.Kill(threat.Handle)
			}
			log.Debug("player hit", "lives", g.lives, "by", threat.Category.String())

		case EventDamageEnemy:
			bullet := other(a, b, CategoryEnemy)
			enemy := other(a, b, CategoryPlayerBullet)
			g.damageEnemy(enemy, 1)
			if !g.game.Gameplay.MultiHitBullets {
				g.reg.Kill(bullet.Handle)
			}

		case EventShieldBlock:
			shield, threat := a, b
			if b.Category == CategoryShield {
				shield, threat = b, a
			}
			if shield.Charges <= 0 {
				continue
			}
			shield.Charges--
			if threat.Category == CategoryEnemyBullet {
				g.reg.Kill(threat.Handle)
			}
			if shield.Charges == 0 {
				g.reg.Kill(shield.Handle)
				g.shield = NoHandle
				shielded = false
				log.Debug("shield broken")
			}

		case EventPickup:
			pickup := other(a, b, CategoryPlayer)
			g.reg.Kill(pickup.Handle)
			if pickup.Blueprint.Name == geometry.BlueprintPowerUp {
				g.activateShield()
				shielded = g.shieldActive()
			} else {
				g.coins += g.game.Gameplay.PowerUpCoins
			}
		}
	}
}

// other returns whichever of a, b does not have the given category.
func other(a, b *Entity, not Category) *Entity {
	if a.Category == not {
		return b
	}
	return a
}

// damageEnemy applies damage and, on a kill, awards score and may drop a
// pickup. The shield roll goes first; an enemy never drops both.
func (g *Game) damageEnemy(enemy *Entity, dmg int) {
	enemy.Health -= dmg
	if enemy.Health > 0 {
		return
	}

	g.score += enemy.ScoreValue
	g.reg.Kill(enemy.Handle)

	if enemy.Handle == g.boss {
		g.boss = NoHandle
		g.bossDown = true
		log.Info("boss defeated", "score", g.score)
		return
	}

	// Minion kills during the boss fight yield score only.
	if g.bossAlive() {
		return
	}

	switch {
	case g.rng.Bool(g.game.Gameplay.ShieldDropChance):
		bp := geometry.MustGet(geometry.BlueprintPowerUp)
		g.reg.Spawn(bp, enemy.Pos, geometry.Vec2{}, CategoryPowerUp, NoHandle)
	case g.rng.Bool(g.game.Gameplay.CoinDropChance):
		bp := geometry.MustGet(geometry.BlueprintCoin)
		g.reg.Spawn(bp, enemy.Pos, geometry.Vec2{}, CategoryPowerUp, NoHandle)
	}
}

// activateShield attaches a fresh shield to the player, replacing any
// existing one.
func (g *Game) activateShield() {
	if sh, ok := g.reg.Get(g.shield); ok {
		sh.Alive = false
	}
	ent, ok := g.reg.Get(g.player)
	if !ok {
		return
	}
	bp := geometry.MustGet(geometry.BlueprintShield)
	g.shield = g.reg.Spawn(bp, ent.Pos, geometry.Vec2{}, CategoryShield, g.player)
	if sh, ok := g.reg.Get(g.shield); ok {
		sh.Charges = g.game.Player.ShieldCharges
	}
}

// shieldActive reports whether the player currently has a live shield with
// charges left.
func (g *Game) shieldActive() bool {
	sh, ok := g.reg.Get(g.shield)
	return ok && sh.Alive && sh.Charges > 0
}

// cullOffscreen marks entities past the despawn margins. Marking an entity
// that an event already killed this tick changes nothing.
func (g *Game) cullOffscreen() {
	bottom := -g.game.World.Height/2 - g.game.Enemies.DespawnMargin
	top := g.game.World.Height/2 + g.game.Enemies.DespawnMargin
	side := g.game.World.Width/2 + g.game.Enemies.DespawnMargin

	g.reg.ForEach(func(e *Entity) {
		if e.Category == CategoryPlayer || e.Category == CategoryShield || e.Handle == g.boss {
			return
		}
		if e.Pos.Y < bottom || e.Pos.Y > top || e.Pos.X < -side || e.Pos.X > side {
			e.Alive = false
		}
	})
}

// Credit buffers a currency credit from the recharge collaborator. Safe to
// call from any goroutine and in any game state; the balance change lands
// at the next Step boundary.
func (g *Game) Credit(ev CreditEvent) {
	g.creditMu.Lock()
	defer g.creditMu.Unlock()
	g.credits = append(g.credits, ev)
}

func (g *Game) applyCredits() {
	g.creditMu.Lock()
	pending := g.credits
	g.credits = nil
	g.creditMu.Unlock()

	for _, ev := range pending {
		if !ev.Success {
			log.Warn("recharge failed", "order", ev.OrderID)
			continue
		}
		g.coins += ev.Amount
		log.Info("recharge credited", "order", ev.OrderID, "amount", ev.Amount)
	}
}

// Status returns the externally visible game status.
func (g *Game) Status() core.Status {
	return core.Status{
		Score:    g.score,
		Coins:    g.coins,
		Lives:    g.lives,
		InMenu:   g.state == StateMenu,
		Paused:   g.state == StatePaused,
		GameOver: g.state == StateGameOver,
	}
}

// State returns the current state machine state.
func (g *Game) State() string {
	return g.state
}

// ScrollOffset returns the cumulative world scroll distance.
func (g *Game) ScrollOffset() float64 {
	return g.scrl.Offset()
}

// Registry exposes the entity arena read-only for rendering and tests.
func (g *Game) Registry() *Registry {
	return g.reg
}
