package systems

import (
	"log"

	"github.com/automoto/stickybomb/components"
	cfg "github.com/automoto/stickybomb/config"
	"github.com/automoto/stickybomb/shared/gamemath"
	"github.com/automoto/stickybomb/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBomb advances the bomb lifecycle by one tick. A state entered during
// the tick is processed in the same tick, so a bomb that sticks keeps ticking
// its fuse right away.
func UpdateBomb(ecs *ecs.ECS) {
	e, ok := tags.Bomb.First(ecs.World)
	if !ok {
		return
	}
	bomb := components.Bomb.Get(e)
	obj := components.Object.Get(e)
	dt := cfg.C.DT()

	if bomb.StickCooldown > 0 {
		bomb.StickCooldown -= dt
	}

	handleThrowIntents(ecs, bomb, obj)

	if bomb.State == cfg.BombSpawning {
		updateSpawning(ecs, bomb, obj, dt)
	}
	if bomb.State == cfg.BombHeld {
		updateHeld(ecs, bomb, obj)
	}
	if bomb.State == cfg.BombThrown {
		updateThrown(ecs, bomb, obj)
	}
	if bomb.State == cfg.BombStuck {
		updateStuck(ecs, bomb, obj, dt)
	}
}

// handleThrowIntents consumes every throw press of this tick. Only the
// living holder's press has an effect.
func handleThrowIntents(ecs *ecs.ECS, bomb *components.BombData, obj *components.ObjectData) {
	tags.Player.Each(ecs.World, func(p *donburi.Entry) {
		input := components.PlayerInput.Get(p)
		if !input.Consume(cfg.ActionThrow) {
			return
		}
		if bomb.State != cfg.BombHeld || !components.Health.Get(p).Alive() {
			return
		}
		if components.Player.Get(p).ID != bomb.Owner {
			return
		}
		ThrowBomb(bomb, obj, p)
	})
}

// ThrowBomb launches a held bomb from its owner's facing edge.
func ThrowBomb(bomb *components.BombData, obj *components.ObjectData, owner *donburi.Entry) {
	player := components.Player.Get(owner)
	body := components.Object.Get(owner).Rect()

	x := body.X
	if player.FacingRight {
		x = body.Right()
	}
	obj.CenterOn(gamemath.Vec2{X: x, Y: body.Y})

	bomb.State = cfg.BombThrown
	bomb.Owner = cfg.NoPlayer
	bomb.Vel = gamemath.Vec2{X: player.Facing() * cfg.Bomb.ThrowSpeedX, Y: cfg.Bomb.ThrowSpeedY}
	bomb.StickCooldown = cfg.Bomb.StickDelay
}

func updateSpawning(ecs *ecs.ECS, bomb *components.BombData, obj *components.ObjectData, dt float64) {
	if !bomb.Active {
		bomb.SpawnTimer -= dt
		if bomb.SpawnTimer > 0 {
			return
		}
		nodes := cfg.Arena.SpawnNodes
		node := nodes[GetRand(ecs).IntN(len(nodes))]
		trackBody(ecs, obj)
		obj.CenterOn(gamemath.Vec2{X: node.X, Y: node.Y})
		bomb.Active = true
		bomb.Vel = gamemath.Vec2{}
		bomb.SpawnTimer = cfg.Bomb.SpawnInterval
	}

	if p, ok := firstLivingOverlap(obj, cfg.NoPlayer); ok {
		bomb.State = cfg.BombHeld
		bomb.Owner = components.Player.Get(p).ID
		bomb.Timer = cfg.Bomb.FuseTime
	}
}

func updateHeld(ecs *ecs.ECS, bomb *components.BombData, obj *components.ObjectData) {
	owner, ok := livingPlayer(ecs, bomb.Owner)
	if !ok {
		releaseBomb(bomb, obj, bomb.SpawnTimer)
		return
	}
	body := components.Object.Get(owner).Rect()
	obj.CenterOn(gamemath.Vec2{X: body.Center().X, Y: body.Y - 10})
}

func updateThrown(ecs *ecs.ECS, bomb *components.BombData, obj *components.ObjectData) {
	bomb.Vel.Y += cfg.Physics.Gravity
	obj.MoveTo(obj.X+bomb.Vel.X, obj.Y+bomb.Vel.Y)

	center := obj.Center()
	bounds := cfg.Arena.Bounds
	if (center.X < bounds.Left && bomb.Vel.X < 0) || (center.X > bounds.Right && bomb.Vel.X > 0) {
		bomb.Vel.X *= -cfg.Bomb.WallDamping
	}

	if hitsGround(obj) {
		SpawnParticles(ecs, center, cfg.Particles.PoofColor, cfg.Particles.PoofCount)
		releaseBomb(bomb, obj, cfg.Bomb.SpawnInterval)
		return
	}

	if bomb.StickCooldown > 0 {
		return
	}
	if p, ok := firstLivingOverlap(obj, cfg.NoPlayer); ok {
		bomb.State = cfg.BombStuck
		bomb.Owner = components.Player.Get(p).ID
		bomb.Vel = gamemath.Vec2{}
		bomb.TransferCooldown = cfg.Bomb.StuckTransferDelay
	}
}

// hitsGround reports whether a thrown bomb reached the floor: below the
// bottom bound or touching a ground platform. One-way platforms never stop it.
func hitsGround(obj *components.ObjectData) bool {
	if obj.Center().Y > cfg.Arena.Bounds.Bottom {
		return true
	}
	return touchesSolid(obj)
}

func updateStuck(ecs *ecs.ECS, bomb *components.BombData, obj *components.ObjectData, dt float64) {
	victim, ok := livingPlayer(ecs, bomb.Owner)
	if !ok {
		log.Printf("[bomb] stuck owner %d missing or dead, dropping bomb", bomb.Owner)
		releaseBomb(bomb, obj, bomb.SpawnTimer)
		return
	}
	obj.CenterOn(components.Object.Get(victim).Center())
	bomb.Timer -= dt
	bomb.TransferCooldown -= dt

	if bomb.TransferCooldown <= 0 {
		if other, ok := firstLivingOverlap(components.Object.Get(victim), bomb.Owner); ok {
			vBody := components.Object.Get(victim).Rect()
			oBody := components.Object.Get(other).Rect()
			bomb.Owner = components.Player.Get(other).ID
			bomb.TransferCooldown = cfg.Bomb.TransferCooldown

			dir := 1.0
			if vBody.X < oBody.X {
				dir = -1
			}
			components.Physics.Get(victim).SpeedX = dir * cfg.Bomb.TransferKnockback
			components.Physics.Get(other).SpeedX = -dir * cfg.Bomb.TransferKnockback
			victim = other
			obj.CenterOn(components.Object.Get(victim).Center())
		}
	}

	if bomb.Timer <= 0 {
		explode(ecs, bomb, obj, victim)
	}
}

// explode damages the current holder and credits the other player when the
// blast is fatal.
func explode(ecs *ecs.ECS, bomb *components.BombData, obj *components.ObjectData, victim *donburi.Entry) {
	bomb.State = cfg.BombExploding

	health := components.Health.Get(victim)
	health.Damage(cfg.Bomb.ExplosionDamage)
	components.Physics.Get(victim).SpeedY = cfg.Bomb.ExplosionKnockback
	SpawnParticles(ecs, obj.Center(), cfg.Particles.ExplosionColor, cfg.Particles.ExplosionCount)

	if !health.Alive() {
		Kill(victim)
		CreditKill(ecs, bomb.Owner.Other())
	}

	releaseBomb(bomb, obj, cfg.Bomb.SpawnInterval)
}

// releaseBomb resets the bomb to spawning and takes it out of the collision
// space until it reappears.
func releaseBomb(bomb *components.BombData, obj *components.ObjectData, spawnIn float64) {
	bomb.Release(spawnIn)
	untrackBody(obj)
}

// firstLivingOverlap returns the first living player, in id order, whose
// hitbox overlaps obj. The excluded player is skipped.
func firstLivingOverlap(obj *components.ObjectData, exclude cfg.PlayerID) (*donburi.Entry, bool) {
	touching := touchingPlayers(obj)
	for _, id := range []cfg.PlayerID{cfg.Player1, cfg.Player2} {
		if id == exclude {
			continue
		}
		p, ok := touching[id]
		if !ok || !components.Health.Get(p).Alive() {
			continue
		}
		return p, true
	}
	return nil, false
}
