package shooter

import (
	"testing"

	"github.com/vovakirdan/geo-shooter/internal/config"
	"github.com/vovakirdan/geo-shooter/internal/core"
	"github.com/vovakirdan/geo-shooter/internal/geometry"
)

func newTestGame(seed int64) *Game {
	g := New(config.DefaultShooterConfig())
	cfg := core.DefaultConfig()
	cfg.Seed = seed
	g.Reset(cfg)
	return g
}

func frame(cmds ...core.Command) core.CommandFrame {
	f := core.NewCommandFrame()
	for _, c := range cmds {
		f.Set(c)
	}
	return f
}

func startPlaying(g *Game) {
	g.Step(frame(core.CmdStart))
}

func TestStartsInMenu(t *testing.T) {
	g := newTestGame(1)
	if g.State() != StateMenu {
		t.Fatalf("initial state = %q, want menu", g.State())
	}

	st := g.Step(frame()).Status
	if !st.InMenu {
		t.Error("status should report menu")
	}
}

func TestMenuToPlaying(t *testing.T) {
	g := newTestGame(1)
	startPlaying(g)

	if g.State() != StatePlaying {
		t.Fatalf("state = %q, want playing", g.State())
	}
	if g.Registry().CountCategory(CategoryPlayer) != 1 {
		t.Error("starting a run should spawn exactly one player")
	}
}

func TestInvalidTransitionsIgnored(t *testing.T) {
	g := newTestGame(1)

	// Resume, pause, restart are undefined in the menu.
	g.Step(frame(core.CmdResume))
	g.Step(frame(core.CmdPause))
	g.Step(frame(core.CmdRestart))
	if g.State() != StateMenu {
		t.Fatalf("state = %q after invalid commands, want menu", g.State())
	}

	startPlaying(g)
	g.Step(frame(core.CmdStart))
	if g.State() != StatePlaying {
		t.Errorf("start while playing should be ignored, state = %q", g.State())
	}

	// Resume while already playing is ignored; the tick still runs.
	ticks := g.ticks
	g.Step(frame(core.CmdResume))
	if g.State() != StatePlaying {
		t.Errorf("resume while playing should be ignored, state = %q", g.State())
	}
	if g.ticks != ticks+1 {
		t.Errorf("resume while playing must not skip the tick: %d -> %d", ticks, g.ticks)
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newTestGame(7)
	startPlaying(g)

	for i := 0; i < 120; i++ {
		g.Step(frame(core.CmdFire))
	}

	g.Step(frame(core.CmdPause))
	if g.State() != StatePaused {
		t.Fatalf("state = %q, want paused", g.State())
	}
	frozen := g.Snapshot()

	// Any number of paused ticks leaves the snapshot bit-for-bit intact,
	// movement and fire commands included.
	for i := 0; i < 50; i++ {
		g.Step(frame(core.CmdFire, core.CmdMoveLeft))
	}
	after := g.Snapshot()
	if !frozen.Equal(&after) {
		t.Error("paused snapshot drifted")
	}
}

func TestPauseResumeRoundTrip(t *testing.T) {
	g := newTestGame(7)
	startPlaying(g)
	for i := 0; i < 90; i++ {
		g.Step(frame(core.CmdFire))
	}

	before := g.Snapshot()

	g.Step(frame(core.CmdPause))
	for i := 0; i < 30; i++ {
		g.Step(frame())
	}
	g.Step(frame(core.CmdResume))

	// Resume itself does not tick; the pre-pause snapshot is reproduced
	// exactly before the next motion step.
	after := g.Snapshot()
	if !before.Equal(&after) {
		t.Error("pause/resume round trip altered the snapshot")
	}
	if g.State() != StatePlaying {
		t.Errorf("state = %q after resume, want playing", g.State())
	}
}

func TestDeterminism(t *testing.T) {
	script := func(i int) core.CommandFrame {
		f := core.NewCommandFrame()
		if i%3 == 0 {
			f.Set(core.CmdFire)
		}
		if i%7 < 3 {
			f.Set(core.CmdMoveLeft)
		} else {
			f.Set(core.CmdMoveRight)
		}
		return f
	}

	run := func() uint64 {
		g := newTestGame(42)
		startPlaying(g)
		for i := 0; i < 600; i++ {
			g.Step(script(i))
		}
		snap := g.Snapshot()
		return snap.Hash()
	}

	h1 := run()
	h2 := run()
	if h1 != h2 {
		t.Errorf("identical seed and input produced different hashes: %x vs %x", h1, h2)
	}
}

func TestScrollFrozenWhilePaused(t *testing.T) {
	g := newTestGame(3)
	startPlaying(g)
	for i := 0; i < 60; i++ {
		g.Step(frame())
	}

	g.Step(frame(core.CmdPause))
	offset := g.ScrollOffset()

	for i := 0; i < 100; i++ {
		g.Step(frame())
	}
	if g.ScrollOffset() != offset {
		t.Errorf("scroll moved while paused: %v -> %v", offset, g.ScrollOffset())
	}

	g.Step(frame(core.CmdResume))
	g.Step(frame())
	if g.ScrollOffset() <= offset {
		t.Error("scroll should advance again after resume")
	}
}

func TestGameOverAndRestart(t *testing.T) {
	g := newTestGame(5)
	startPlaying(g)
	g.Step(frame())

	// Drain lives directly; the end-of-tick check fires on the next step.
	g.lives = 0
	res := g.Step(frame())

	if g.State() != StateGameOver {
		t.Fatalf("state = %q, want gameover", g.State())
	}
	if res.Record == nil {
		t.Fatal("game over tick must emit a run record")
	}
	if res.Record.Cause != CausePlayerDestroyed {
		t.Errorf("record cause = %q", res.Record.Cause)
	}

	// Subsequent steps emit no further records.
	if res := g.Step(frame()); res.Record != nil {
		t.Error("record emitted twice")
	}

	// Restart discards the terminal snapshot entirely.
	g.Step(frame(core.CmdRestart))
	if g.State() != StatePlaying {
		t.Fatalf("state = %q after restart, want playing", g.State())
	}
	if g.ScrollOffset() != 0 {
		t.Errorf("scroll offset after restart = %v, want 0", g.ScrollOffset())
	}
	if n := g.Registry().CountCategory(CategoryEnemy); n != 0 {
		t.Errorf("restart left %d enemies", n)
	}
	if n := g.Registry().CountCategory(CategoryPlayerBullet); n != 0 {
		t.Errorf("restart left %d bullets", n)
	}
	if g.Status().Score != 0 {
		t.Errorf("restart left score %d", g.Status().Score)
	}
}

func TestGameOverToMenu(t *testing.T) {
	g := newTestGame(5)
	startPlaying(g)
	g.Step(frame())
	g.lives = 0
	g.Step(frame())

	g.Step(frame(core.CmdStart))
	if g.State() != StateMenu {
		t.Errorf("state = %q, want menu", g.State())
	}
}

func TestSingleHitBulletPolicy(t *testing.T) {
	g := newTestGame(9)
	startPlaying(g)

	bullet, e1, e2 := overlapBulletWithTwoEnemies(g)

	events := g.eng.Detect(g.Registry())
	g.applyEvents(events)
	g.Registry().Sweep()

	// Default policy: the bullet spends itself on the first enemy in
	// handle order and the second survives.
	if _, ok := g.Registry().Get(bullet); ok {
		t.Error("bullet should be consumed by its first hit")
	}
	if _, ok := g.Registry().Get(e1); ok {
		t.Error("first enemy should be destroyed")
	}
	if _, ok := g.Registry().Get(e2); !ok {
		t.Error("second enemy should survive a single-hit bullet")
	}
}

func TestMultiHitBulletPolicy(t *testing.T) {
	cfg := config.DefaultShooterConfig()
	cfg.Gameplay.MultiHitBullets = true
	g := New(cfg)
	rc := core.DefaultConfig()
	rc.Seed = 9
	g.Reset(rc)
	startPlaying(g)

	bullet, e1, e2 := overlapBulletWithTwoEnemies(g)

	events := g.eng.Detect(g.Registry())
	g.applyEvents(events)
	g.Registry().Sweep()

	if _, ok := g.Registry().Get(e1); ok {
		t.Error("first enemy should be destroyed")
	}
	if _, ok := g.Registry().Get(e2); ok {
		t.Error("multi-hit bullet should destroy the second enemy too")
	}
	// The bullet itself flies on until TTL or the world edge removes it.
	if _, ok := g.Registry().Get(bullet); !ok {
		t.Error("multi-hit bullet should not be consumed by impacts")
	}
}

// overlapBulletWithTwoEnemies plants a player bullet overlapping two
// one-health enemies far from the player.
func overlapBulletWithTwoEnemies(g *Game) (bullet, e1, e2 Handle) {
	reg := g.Registry()
	bp := geometry.MustGet(geometry.BlueprintBullet)
	ebp := geometry.MustGet(geometry.BlueprintEnemyDiamond)

	at := geometry.V(0, 200)
	bullet = reg.Spawn(bp, at, geometry.Vec2{}, CategoryPlayerBullet, NoHandle)
	e1 = reg.Spawn(ebp, at.Add(geometry.V(-3, 0)), geometry.Vec2{}, CategoryEnemy, NoHandle)
	e2 = reg.Spawn(ebp, at.Add(geometry.V(3, 0)), geometry.Vec2{}, CategoryEnemy, NoHandle)

	for _, h := range []Handle{e1, e2} {
		ent, _ := reg.Get(h)
		ent.Health = 1
		ent.ScoreValue = 100
	}
	return bullet, e1, e2
}

func TestScoreAwardedOnKill(t *testing.T) {
	g := newTestGame(11)
	startPlaying(g)

	_, _, _ = overlapBulletWithTwoEnemies(g)
	events := g.eng.Detect(g.Registry())
	g.applyEvents(events)

	if g.Status().Score != 100 {
		t.Errorf("score = %d, want 100 for one kill", g.Status().Score)
	}
}

// killOneEnemy plants a bullet on a one-health enemy far from the player
// and resolves the tick's collision phase.
func killOneEnemy(g *Game) geometry.Vec2 {
	reg := g.Registry()
	at := geometry.V(0, 200)
	reg.Spawn(geometry.MustGet(geometry.BlueprintBullet), at, geometry.Vec2{}, CategoryPlayerBullet, NoHandle)
	h := reg.Spawn(geometry.MustGet(geometry.BlueprintEnemyDiamond), at, geometry.Vec2{}, CategoryEnemy, NoHandle)
	if ent, ok := reg.Get(h); ok {
		ent.Health = 1
	}

	g.applyEvents(g.eng.Detect(reg))
	reg.Sweep()
	return at
}

func findCategory(g *Game, cat Category) *Entity {
	var found *Entity
	g.Registry().ForEach(func(e *Entity) {
		if e.Category == cat {
			found = e
		}
	})
	return found
}

func TestShieldDropsAndArmsOnPickup(t *testing.T) {
	cfg := config.DefaultShooterConfig()
	cfg.Gameplay.ShieldDropChance = 1.0
	cfg.Gameplay.CoinDropChance = 0
	g := New(cfg)
	g.Reset(core.DefaultConfig())
	startPlaying(g)

	killOneEnemy(g)

	drop := findCategory(g, CategoryPowerUp)
	if drop == nil {
		t.Fatal("guaranteed shield drop produced no pickup")
	}
	if drop.Blueprint.Name != geometry.BlueprintPowerUp {
		t.Fatalf("drop blueprint = %q, want %q", drop.Blueprint.Name, geometry.BlueprintPowerUp)
	}

	// Walk the drop onto the player; the pickup arms a shield, no coins.
	player, _ := g.Registry().Get(g.player)
	drop.Pos = player.Pos
	coins := g.Status().Coins
	g.applyEvents(g.eng.Detect(g.Registry()))
	g.Registry().Sweep()

	if !g.shieldActive() {
		t.Error("shield pickup should arm a shield")
	}
	if g.Status().Coins != coins {
		t.Errorf("shield pickup changed coins: %d -> %d", coins, g.Status().Coins)
	}
}

func TestCoinDropGrantsCoinsOnPickup(t *testing.T) {
	cfg := config.DefaultShooterConfig()
	cfg.Gameplay.ShieldDropChance = 0
	cfg.Gameplay.CoinDropChance = 1.0
	g := New(cfg)
	g.Reset(core.DefaultConfig())
	startPlaying(g)

	killOneEnemy(g)

	drop := findCategory(g, CategoryPowerUp)
	if drop == nil {
		t.Fatal("guaranteed coin drop produced no pickup")
	}
	if drop.Blueprint.Name != geometry.BlueprintCoin {
		t.Fatalf("drop blueprint = %q, want %q", drop.Blueprint.Name, geometry.BlueprintCoin)
	}

	player, _ := g.Registry().Get(g.player)
	drop.Pos = player.Pos
	g.applyEvents(g.eng.Detect(g.Registry()))
	g.Registry().Sweep()

	if g.shieldActive() {
		t.Error("coin pickup must not arm a shield")
	}
	if got := g.Status().Coins; got != cfg.Gameplay.PowerUpCoins {
		t.Errorf("coins = %d, want %d", got, cfg.Gameplay.PowerUpCoins)
	}
}

func TestCreditAppliedInAnyState(t *testing.T) {
	g := newTestGame(13)

	// Credit arriving in the menu.
	g.Credit(CreditEvent{OrderID: "a", Amount: 100, Success: true})
	st := g.Step(frame()).Status
	if st.Coins != 100 {
		t.Errorf("coins = %d after menu credit, want 100", st.Coins)
	}

	// Failed credits change nothing.
	g.Credit(CreditEvent{OrderID: "b", Amount: 50, Success: false})
	st = g.Step(frame()).Status
	if st.Coins != 100 {
		t.Errorf("coins = %d after failed credit, want 100", st.Coins)
	}

	// Credit arriving while paused lands without touching the run.
	startPlaying(g)
	for i := 0; i < 30; i++ {
		g.Step(frame())
	}
	g.Step(frame(core.CmdPause))
	g.Credit(CreditEvent{OrderID: "c", Amount: 25, Success: true})
	st = g.Step(frame()).Status
	if st.Coins != 125 {
		t.Errorf("coins = %d after paused credit, want 125", st.Coins)
	}
	if g.State() != StatePaused {
		t.Error("credit must not change game state")
	}
}

func TestPlayerHitGrantsInvincibility(t *testing.T) {
	g := newTestGame(17)
	startPlaying(g)

	player, _ := g.Registry().Get(g.player)
	ebp := geometry.MustGet(geometry.BlueprintEnemyBullet)

	// Park an enemy bullet on the player for two consecutive ticks. Only
	// the first contact costs a life; the grace period absorbs the rest.
	livesBefore := g.Status().Lives
	for i := 0; i < 2; i++ {
		g.Registry().Spawn(ebp, player.Pos, geometry.Vec2{}, CategoryEnemyBullet, NoHandle)
		events := g.eng.Detect(g.Registry())
		g.applyEvents(events)
		g.Registry().Sweep()
	}

	if got := g.Status().Lives; got != livesBefore-1 {
		t.Errorf("lives = %d, want %d (one hit, then grace)", got, livesBefore-1)
	}
}

func TestShieldBlocksAndBreaks(t *testing.T) {
	g := newTestGame(19)
	startPlaying(g)

	g.activateShield()
	if !g.shieldActive() {
		t.Fatal("shield should be active after activation")
	}
	sh, _ := g.Registry().Get(g.shield)
	charges := sh.Charges
	livesBefore := g.Status().Lives

	player, _ := g.Registry().Get(g.player)
	ebp := geometry.MustGet(geometry.BlueprintEnemyBullet)

	// Feed the shield one bullet per tick until it breaks.
	for i := 0; i < charges; i++ {
		g.Registry().Spawn(ebp, player.Pos, geometry.Vec2{}, CategoryEnemyBullet, NoHandle)
		events := g.eng.Detect(g.Registry())
		g.applyEvents(events)
		g.Registry().Sweep()
	}

	if g.shieldActive() {
		t.Error("shield should break after its last charge")
	}
	if g.Status().Lives != livesBefore {
		t.Errorf("lives = %d, blocked hits must not cost lives", g.Status().Lives)
	}
}

func TestBossWarpsInAtScoreThreshold(t *testing.T) {
	cfg := config.DefaultShooterConfig()
	cfg.Boss.ScoreThreshold = 500
	g := New(cfg)
	g.Reset(core.DefaultConfig())
	startPlaying(g)

	g.Step(frame())
	if g.bossAlive() {
		t.Fatal("boss appeared before the score threshold")
	}

	g.score = cfg.Boss.ScoreThreshold
	g.Step(frame())
	if !g.bossAlive() {
		t.Fatal("boss should warp in once the threshold is crossed")
	}

	boss, _ := g.Registry().Get(g.boss)
	if boss.MaxHealth <= 0 || boss.Health != boss.MaxHealth {
		t.Errorf("boss health = %d/%d, want a full fixed hull", boss.Health, boss.MaxHealth)
	}

	// One encounter per run: the warp-in never repeats.
	first := g.boss
	for i := 0; i < 10; i++ {
		g.Step(frame())
	}
	if g.boss != first {
		t.Error("boss respawned mid-encounter")
	}
}

func TestBossDefeatEndsRunAsVictory(t *testing.T) {
	cfg := config.DefaultShooterConfig()
	cfg.Boss.ScoreThreshold = 500
	g := New(cfg)
	g.Reset(core.DefaultConfig())
	startPlaying(g)

	g.score = cfg.Boss.ScoreThreshold
	g.Step(frame())
	boss, _ := g.Registry().Get(g.boss)
	bounty := boss.ScoreValue

	// Park a bullet on the one-hit-left boss and let the tick resolve it.
	boss.Health = 1
	g.Registry().Spawn(geometry.MustGet(geometry.BlueprintBullet), boss.Pos, geometry.Vec2{}, CategoryPlayerBullet, NoHandle)
	scoreBefore := g.Status().Score
	res := g.Step(frame())

	if g.State() != StateGameOver {
		t.Fatalf("state = %q after boss kill, want gameover", g.State())
	}
	if res.Record == nil {
		t.Fatal("boss defeat must emit a run record")
	}
	if res.Record.Cause != CauseBossDefeated {
		t.Errorf("record cause = %q, want %q", res.Record.Cause, CauseBossDefeated)
	}
	if res.Record.Score != scoreBefore+bounty {
		t.Errorf("record score = %d, want %d", res.Record.Score, scoreBefore+bounty)
	}
}

func TestNoDropsDuringBossFight(t *testing.T) {
	cfg := config.DefaultShooterConfig()
	cfg.Boss.ScoreThreshold = 500
	cfg.Gameplay.CoinDropChance = 1.0
	cfg.Gameplay.ShieldDropChance = 1.0
	g := New(cfg)
	g.Reset(core.DefaultConfig())
	startPlaying(g)

	g.score = cfg.Boss.ScoreThreshold
	g.Step(frame())
	if !g.bossAlive() {
		t.Fatal("boss should be in play")
	}

	killOneEnemy(g)
	if drop := findCategory(g, CategoryPowerUp); drop != nil {
		t.Errorf("minion dropped %q during the boss fight, want no drops", drop.Blueprint.Name)
	}
}

func TestRunRecordValues(t *testing.T) {
	g := newTestGame(23)
	startPlaying(g)

	for i := 0; i < 60; i++ {
		g.Step(frame())
	}
	g.score = 777
	g.lives = 0
	res := g.Step(frame())

	if res.Record == nil {
		t.Fatal("expected a run record")
	}
	if res.Record.Score != 777 {
		t.Errorf("record score = %d, want 777", res.Record.Score)
	}
	if res.Record.DurationSec <= 0 {
		t.Errorf("record duration = %v, want > 0", res.Record.DurationSec)
	}
}
