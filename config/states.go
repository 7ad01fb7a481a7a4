package config

// StateID is the derived movement state of a player.
type StateID int

const (
	StateNone StateID = iota
	Idle
	Running
	Jumping
	Falling
	Dead
)

func (s StateID) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Jumping:
		return "jumping"
	case Falling:
		return "falling"
	case Dead:
		return "dead"
	}
	return "none"
}

// BombStateID is the phase of the bomb lifecycle.
type BombStateID int

const (
	BombSpawning BombStateID = iota
	BombHeld
	BombThrown
	BombStuck
	BombExploding
)

func (s BombStateID) String() string {
	switch s {
	case BombSpawning:
		return "spawning"
	case BombHeld:
		return "held"
	case BombThrown:
		return "thrown"
	case BombStuck:
		return "stuck"
	case BombExploding:
		return "exploding"
	}
	return "unknown"
}

// Owned reports whether a bomb in this state must have an owner.
func (s BombStateID) Owned() bool {
	return s == BombHeld || s == BombStuck
}

// PlatformKind selects the collision rules of a platform.
type PlatformKind int

const (
	// PlatformGround is solid for landing and stops thrown bombs.
	PlatformGround PlatformKind = iota
	// PlatformOneWay can be dropped through and never stops a bomb.
	PlatformOneWay
)

func (k PlatformKind) String() string {
	switch k {
	case PlatformGround:
		return "ground"
	case PlatformOneWay:
		return "platform"
	}
	return "unknown"
}

// PlayerID identifies one of the two players.
type PlayerID int

const (
	NoPlayer PlayerID = iota
	Player1
	Player2
)

// Other returns the opposing player.
func (p PlayerID) Other() PlayerID {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	}
	return NoPlayer
}

// WinnerID is the outcome of a match: a player id, a draw, or pending.
type WinnerID int

const (
	WinnerPending WinnerID = -1
	WinnerDraw    WinnerID = 0
)

// WinnerOf converts a player id into a match outcome.
func WinnerOf(p PlayerID) WinnerID {
	return WinnerID(p)
}
