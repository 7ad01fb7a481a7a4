package systems

import (
	"testing"

	"github.com/automoto/stickybomb/components"
	cfg "github.com/automoto/stickybomb/config"
	"github.com/automoto/stickybomb/shared/gamemath"
)

func TestBombSpawnsAtRandomNode(t *testing.T) {
	e := newTestECS(t)
	setRand(e, fixedRand{f: 0.5, n: 2})
	bomb, obj := mustBomb(t, e)

	ticks := 0
	for !bomb.Active && ticks < 200 {
		UpdateBomb(e)
		ticks++
	}
	if ticks < 60 || ticks > 61 {
		t.Fatalf("spawned after %d ticks, want ~60", ticks)
	}
	if bomb.State != cfg.BombSpawning {
		t.Fatalf("state = %v, want spawning", bomb.State)
	}
	if c := obj.Center(); c != (gamemath.Vec2{X: 955, Y: 380}) {
		t.Fatalf("center = %+v, want node 2", c)
	}
	if bomb.SpawnTimer != cfg.Bomb.SpawnInterval {
		t.Fatalf("spawn timer = %v", bomb.SpawnTimer)
	}
	checkBombOwnership(t, bomb)
}

func TestBombPickup(t *testing.T) {
	e := newTestECS(t)
	setRand(e, fixedRand{f: 0.5, n: 2})
	bomb, obj := mustBomb(t, e)
	bomb.SpawnTimer = 0
	UpdateBomb(e)
	if !bomb.Active {
		t.Fatal("bomb not active")
	}

	p1 := mustPlayer(t, e, cfg.Player1)
	components.Object.Get(p1).CenterOn(gamemath.Vec2{X: 955, Y: 380})
	UpdateBomb(e)

	if bomb.State != cfg.BombHeld || bomb.Owner != cfg.Player1 {
		t.Fatalf("after pickup: state=%v owner=%d", bomb.State, bomb.Owner)
	}
	if bomb.Timer != cfg.Bomb.FuseTime {
		t.Fatalf("fuse = %v", bomb.Timer)
	}
	body := components.Object.Get(p1).Rect()
	if c := obj.Center(); c.X != body.Center().X || c.Y != body.Y-10 {
		t.Fatalf("held bomb at %+v, want above %+v", c, body)
	}
	checkBombOwnership(t, bomb)
}

func TestDeadPlayerCannotPickUp(t *testing.T) {
	e := newTestECS(t)
	bomb, obj := mustBomb(t, e)
	bomb.Active = true
	trackBody(e, obj)
	p1 := mustPlayer(t, e, cfg.Player1)
	obj.CenterOn(components.Object.Get(p1).Center())
	Kill(p1)

	UpdateBomb(e)

	if bomb.State != cfg.BombSpawning || bomb.Owner != cfg.NoPlayer {
		t.Fatalf("dead player picked up bomb: %v owner=%d", bomb.State, bomb.Owner)
	}
}

func TestThrowBomb(t *testing.T) {
	e := newTestECS(t)
	bomb := attachBomb(t, e, cfg.Player1, cfg.BombHeld)
	_, obj := mustBomb(t, e)
	p1 := mustPlayer(t, e, cfg.Player1)

	ThrowBomb(bomb, obj, p1)

	body := components.Object.Get(p1).Rect()
	if c := obj.Center(); c.X != body.Right() || c.Y != body.Y {
		t.Fatalf("thrown from %+v, want facing edge of %+v", c, body)
	}
	if bomb.Vel != (gamemath.Vec2{X: cfg.Bomb.ThrowSpeedX, Y: cfg.Bomb.ThrowSpeedY}) {
		t.Fatalf("vel = %+v", bomb.Vel)
	}
	if bomb.State != cfg.BombThrown || bomb.Owner != cfg.NoPlayer {
		t.Fatalf("state=%v owner=%d", bomb.State, bomb.Owner)
	}
	if bomb.StickCooldown != cfg.Bomb.StickDelay {
		t.Fatalf("stick cooldown = %v", bomb.StickCooldown)
	}
}

func TestThrowFacingLeft(t *testing.T) {
	e := newTestECS(t)
	bomb := attachBomb(t, e, cfg.Player2, cfg.BombHeld)
	_, obj := mustBomb(t, e)
	p2 := mustPlayer(t, e, cfg.Player2)

	ThrowBomb(bomb, obj, p2)

	if bomb.Vel.X != -cfg.Bomb.ThrowSpeedX {
		t.Fatalf("vel.x = %v, want %v", bomb.Vel.X, -cfg.Bomb.ThrowSpeedX)
	}
	if obj.Center().X != components.Object.Get(p2).X {
		t.Fatal("not thrown from the left edge")
	}
}

func TestThrowIntent(t *testing.T) {
	e := newTestECS(t)
	bomb := attachBomb(t, e, cfg.Player1, cfg.BombHeld)
	p1 := mustPlayer(t, e, cfg.Player1)
	p2 := mustPlayer(t, e, cfg.Player2)

	components.PlayerInput.Get(p2).Actions[cfg.ActionThrow].JustPressed = true
	UpdateBomb(e)
	if bomb.State != cfg.BombHeld {
		t.Fatalf("non-holder threw the bomb: %v", bomb.State)
	}
	if components.PlayerInput.Get(p2).Actions[cfg.ActionThrow].JustPressed {
		t.Fatal("non-holder throw not consumed")
	}

	components.PlayerInput.Get(p1).Actions[cfg.ActionThrow].JustPressed = true
	UpdateBomb(e)
	if bomb.State != cfg.BombThrown {
		t.Fatalf("holder throw ignored: %v", bomb.State)
	}
	// Gravity already applied once in the throw tick.
	if !near(bomb.Vel.Y, cfg.Bomb.ThrowSpeedY+cfg.Physics.Gravity) {
		t.Fatalf("vel.y = %v", bomb.Vel.Y)
	}
	checkBombOwnership(t, bomb)
}

func TestThrownBombHitsGround(t *testing.T) {
	e := newTestECS(t)
	bomb := launchBomb(t, e, gamemath.Vec2{X: 600, Y: 590}, gamemath.Vec2{Y: 5})

	UpdateBomb(e)

	if bomb.Active || bomb.State != cfg.BombSpawning {
		t.Fatalf("bomb did not poof: active=%v state=%v", bomb.Active, bomb.State)
	}
	if bomb.SpawnTimer != cfg.Bomb.SpawnInterval {
		t.Fatalf("spawn timer = %v", bomb.SpawnTimer)
	}
	if got := particleCount(e); got != cfg.Particles.PoofCount {
		t.Fatalf("particles = %d, want %d", got, cfg.Particles.PoofCount)
	}
	checkBombOwnership(t, bomb)
}

func TestThrownBombPassesOneWay(t *testing.T) {
	e := newTestECS(t)
	bomb := launchBomb(t, e, gamemath.Vec2{X: 300, Y: 405}, gamemath.Vec2{})

	UpdateBomb(e)

	if bomb.State != cfg.BombThrown || !bomb.Active {
		t.Fatalf("one-way platform stopped the bomb: %v", bomb.State)
	}
}

func TestThrownBombBelowArena(t *testing.T) {
	e := newTestECS(t)
	bomb := launchBomb(t, e, gamemath.Vec2{X: 80, Y: 715}, gamemath.Vec2{Y: 5})

	UpdateBomb(e)

	if bomb.State != cfg.BombSpawning || bomb.Active {
		t.Fatalf("bomb below the arena kept flying: %v", bomb.State)
	}
}

func TestThrownBombReflectsOffWalls(t *testing.T) {
	e := newTestECS(t)
	bomb := launchBomb(t, e, gamemath.Vec2{X: 45, Y: 300}, gamemath.Vec2{X: -10})

	UpdateBomb(e)
	if !near(bomb.Vel.X, 10*cfg.Bomb.WallDamping) {
		t.Fatalf("vel.x = %v, want reflected", bomb.Vel.X)
	}

	// Already heading back inside: no second reflection.
	UpdateBomb(e)
	if !near(bomb.Vel.X, 10*cfg.Bomb.WallDamping) {
		t.Fatalf("vel.x = %v after second tick", bomb.Vel.X)
	}

	bomb = launchBomb(t, e, gamemath.Vec2{X: 1235, Y: 300}, gamemath.Vec2{X: 10})
	UpdateBomb(e)
	if !near(bomb.Vel.X, -10*cfg.Bomb.WallDamping) {
		t.Fatalf("right wall vel.x = %v", bomb.Vel.X)
	}
}

func TestThrownBombSticks(t *testing.T) {
	e := newTestECS(t)
	center := centerOf(t, e, cfg.Player2)
	bomb := launchBomb(t, e, center, gamemath.Vec2{})
	bomb.Timer = cfg.Bomb.FuseTime

	UpdateBomb(e)

	if bomb.State != cfg.BombStuck || bomb.Owner != cfg.Player2 {
		t.Fatalf("state=%v owner=%d", bomb.State, bomb.Owner)
	}
	if bomb.Vel != (gamemath.Vec2{}) {
		t.Fatalf("stuck bomb moving: %+v", bomb.Vel)
	}
	_, obj := mustBomb(t, e)
	if obj.Center() != center {
		t.Fatalf("not centered on victim: %+v", obj.Center())
	}
	if bomb.Timer >= cfg.Bomb.FuseTime {
		t.Fatal("fuse did not start ticking")
	}
	checkBombOwnership(t, bomb)
}

func TestThrownBombStickDelay(t *testing.T) {
	e := newTestECS(t)
	bomb := launchBomb(t, e, centerOf(t, e, cfg.Player2), gamemath.Vec2{})
	bomb.StickCooldown = cfg.Bomb.StickDelay

	UpdateBomb(e)

	if bomb.State != cfg.BombThrown {
		t.Fatalf("stuck during stick delay: %v", bomb.State)
	}
}

func TestHotPotatoTransfer(t *testing.T) {
	e := newTestECS(t)
	bomb := attachBomb(t, e, cfg.Player1, cfg.BombStuck)
	bomb.TransferCooldown = 0
	p1 := mustPlayer(t, e, cfg.Player1)
	p2 := mustPlayer(t, e, cfg.Player2)
	components.Object.Get(p2).MoveTo(220, 500)

	UpdateBomb(e)

	if bomb.Owner != cfg.Player2 || bomb.State != cfg.BombStuck {
		t.Fatalf("no transfer: owner=%d state=%v", bomb.Owner, bomb.State)
	}
	if bomb.TransferCooldown != cfg.Bomb.TransferCooldown {
		t.Fatalf("cooldown = %v", bomb.TransferCooldown)
	}
	if got := components.Physics.Get(p1).SpeedX; got != -cfg.Bomb.TransferKnockback {
		t.Fatalf("old holder knockback = %v", got)
	}
	if got := components.Physics.Get(p2).SpeedX; got != cfg.Bomb.TransferKnockback {
		t.Fatalf("new holder knockback = %v", got)
	}
	_, obj := mustBomb(t, e)
	if obj.Center() != centerOf(t, e, cfg.Player2) {
		t.Fatal("bomb did not move to the new holder")
	}

	// Still overlapping, but the cooldown blocks an immediate pass back.
	UpdateBomb(e)
	if bomb.Owner != cfg.Player2 {
		t.Fatal("bomb bounced back during cooldown")
	}
	checkBombOwnership(t, bomb)
}

func TestFreshlyStuckBombDoesNotTransfer(t *testing.T) {
	e := newTestECS(t)
	bomb := attachBomb(t, e, cfg.Player1, cfg.BombStuck)
	bomb.TransferCooldown = cfg.Bomb.StuckTransferDelay
	components.Object.Get(mustPlayer(t, e, cfg.Player2)).MoveTo(220, 500)

	UpdateBomb(e)

	if bomb.Owner != cfg.Player1 {
		t.Fatal("transferred before the stuck delay")
	}
}

func TestExplosionDamages(t *testing.T) {
	e := newTestECS(t)
	bomb := attachBomb(t, e, cfg.Player2, cfg.BombStuck)
	bomb.TransferCooldown = 1
	bomb.Timer = cfg.C.DT() / 2
	p2 := mustPlayer(t, e, cfg.Player2)

	UpdateBomb(e)

	if got := components.Health.Get(p2).Current; got != cfg.Player.MaxHP-cfg.Bomb.ExplosionDamage {
		t.Fatalf("hp = %d", got)
	}
	if got := components.Physics.Get(p2).SpeedY; got != cfg.Bomb.ExplosionKnockback {
		t.Fatalf("knockback = %v", got)
	}
	if bomb.State != cfg.BombSpawning || bomb.Active || bomb.SpawnTimer != cfg.Bomb.SpawnInterval {
		t.Fatalf("bomb not reset: %+v", bomb)
	}
	if got := particleCount(e); got != cfg.Particles.ExplosionCount {
		t.Fatalf("particles = %d", got)
	}
	if p1, p2 := Scores(e); p1 != 0 || p2 != 0 {
		t.Fatalf("scores = %d-%d after a non-fatal blast", p1, p2)
	}
	checkBombOwnership(t, bomb)
}

func TestFatalExplosionScores(t *testing.T) {
	e := newTestECS(t)
	GetMatch(e).WinScore = 1
	overs := countGameOvers(e)
	p2 := mustPlayer(t, e, cfg.Player2)
	components.Health.Get(p2).Current = cfg.Bomb.ExplosionDamage

	bomb := attachBomb(t, e, cfg.Player2, cfg.BombStuck)
	bomb.TransferCooldown = 1
	bomb.Timer = cfg.C.DT() / 2
	UpdateBomb(e)
	ProcessEvents(e)

	if components.Health.Get(p2).Alive() {
		t.Fatal("victim survived")
	}
	if got := components.State.Get(p2).CurrentState; got != cfg.Dead {
		t.Fatalf("state = %v", got)
	}
	if got := components.Player.Get(p2).RespawnTimer; got != cfg.Player.RespawnTime {
		t.Fatalf("respawn timer = %v", got)
	}
	if p1, _ := Scores(e); p1 != 1 {
		t.Fatalf("player 1 score = %d", p1)
	}
	match := GetMatch(e)
	if match.IsRunning || match.Winner != cfg.WinnerOf(cfg.Player1) || match.Kills != 1 {
		t.Fatalf("match = %+v", match)
	}

	// A second kill after the end changes nothing.
	CreditKill(e, cfg.Player2)
	ProcessEvents(e)
	if len(*overs) != 1 {
		t.Fatalf("game over fired %d times", len(*overs))
	}
	if _, s2 := Scores(e); s2 != 0 {
		t.Fatal("kill credited after game over")
	}
}

func TestTransferThenExplodeHitsNewHolder(t *testing.T) {
	e := newTestECS(t)
	bomb := attachBomb(t, e, cfg.Player1, cfg.BombStuck)
	bomb.TransferCooldown = 0
	bomb.Timer = cfg.C.DT() / 2
	p1 := mustPlayer(t, e, cfg.Player1)
	p2 := mustPlayer(t, e, cfg.Player2)
	components.Object.Get(p2).MoveTo(220, 500)

	UpdateBomb(e)

	if got := components.Health.Get(p1).Current; got != cfg.Player.MaxHP {
		t.Fatalf("old holder hp = %d", got)
	}
	if got := components.Health.Get(p2).Current; got != cfg.Player.MaxHP-cfg.Bomb.ExplosionDamage {
		t.Fatalf("new holder hp = %d", got)
	}
}

func TestDeadOwnerDropsBomb(t *testing.T) {
	for _, state := range []cfg.BombStateID{cfg.BombHeld, cfg.BombStuck} {
		t.Run(state.String(), func(t *testing.T) {
			e := newTestECS(t)
			bomb := attachBomb(t, e, cfg.Player1, state)
			Kill(mustPlayer(t, e, cfg.Player1))

			UpdateBomb(e)

			if bomb.State != cfg.BombSpawning || bomb.Active || bomb.Owner != cfg.NoPlayer {
				t.Fatalf("bomb kept by a dead player: %+v", bomb)
			}
			checkBombOwnership(t, bomb)
		})
	}
}
