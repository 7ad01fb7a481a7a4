package systems

import (
	"log"
	"math"

	"github.com/automoto/stickybomb/components"
	cfg "github.com/automoto/stickybomb/config"
	"github.com/yohamta/donburi/ecs"
)

// GetMatch returns the match singleton.
func GetMatch(ecs *ecs.ECS) *components.MatchData {
	return components.Match.Get(components.Match.MustFirst(ecs.World))
}

// UpdateMatch counts the match clock down and ends the match when it runs out.
func UpdateMatch(ecs *ecs.ECS) {
	match := GetMatch(ecs)
	match.TimeLeft -= cfg.C.DT()

	if match.TimeLeft <= 0 {
		match.TimeLeft = 0
		reportTime(ecs, match)
		p1, p2 := Scores(ecs)
		EndMatch(ecs, components.Leader(p1, p2))
		return
	}
	reportTime(ecs, match)
}

// reportTime publishes a time update when the displayed whole second changes.
func reportTime(ecs *ecs.ECS, match *components.MatchData) {
	seconds := int(math.Ceil(match.TimeLeft))
	if seconds == match.LastWholeSecond {
		return
	}
	match.LastWholeSecond = seconds
	components.TimeUpdated.Publish(ecs.World, components.TimeUpdate{Seconds: seconds})
}

// StartMatch flips a freshly created match to running and announces it.
func StartMatch(ecs *ecs.ECS) {
	match := GetMatch(ecs)
	match.IsRunning = true
	match.Winner = cfg.WinnerPending

	publishScores(ecs)
	reportTime(ecs, match)
	components.GameStarted.Publish(ecs.World, components.GameStart{})
	log.Printf("[match] started: %.0fs, first to %d", match.Duration, match.WinScore)
}

// CreditKill awards one point to killer and ends the match when the win
// score is reached.
func CreditKill(ecs *ecs.ECS, killer cfg.PlayerID) {
	match := GetMatch(ecs)
	if !match.IsRunning {
		return
	}
	e, ok := FindPlayer(ecs, killer)
	if !ok {
		log.Printf("[match] kill credited to unknown player %d", killer)
		return
	}
	player := components.Player.Get(e)
	player.Score++
	match.Kills++
	publishScores(ecs)

	if player.Score >= match.WinScore {
		EndMatch(ecs, cfg.WinnerOf(killer))
	}
}

// EndMatch stops a running match. It reports whether this call ended it;
// later calls are no-ops so the game-over notification fires once.
func EndMatch(ecs *ecs.ECS, winner cfg.WinnerID) bool {
	match := GetMatch(ecs)
	if !match.IsRunning {
		return false
	}
	match.IsRunning = false
	match.Winner = winner
	components.GameEnded.Publish(ecs.World, components.GameOver{Winner: winner})
	log.Printf("[match] over: winner=%d time_left=%.2f", winner, match.TimeLeft)
	return true
}

// IsMatchRunning reports whether the match clock is live.
func IsMatchRunning(ecs *ecs.ECS) bool {
	e, ok := components.Match.First(ecs.World)
	return ok && components.Match.Get(e).IsRunning
}

// Scores returns both players' scores.
func Scores(ecs *ecs.ECS) (p1, p2 int) {
	if e, ok := FindPlayer(ecs, cfg.Player1); ok {
		p1 = components.Player.Get(e).Score
	}
	if e, ok := FindPlayer(ecs, cfg.Player2); ok {
		p2 = components.Player.Get(e).Score
	}
	return p1, p2
}

func publishScores(ecs *ecs.ECS) {
	p1, p2 := Scores(ecs)
	components.ScoreUpdated.Publish(ecs.World, components.ScoreUpdate{P1: p1, P2: p2})
}
