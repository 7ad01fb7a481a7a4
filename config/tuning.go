package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning is the subset of configuration that can be overridden from a YAML
// file. Keys missing from the file keep their base value.
type Tuning struct {
	Physics PhysicsConfig `yaml:"physics"`
	Bomb    BombConfig    `yaml:"bomb"`
	Match   MatchConfig   `yaml:"match"`
}

// CurrentTuning captures the active tunable values.
func CurrentTuning() Tuning {
	return Tuning{
		Physics: Physics,
		Bomb:    Bomb,
		Match:   Match,
	}
}

// ApplyTuning replaces the active tunable values.
func ApplyTuning(t Tuning) {
	Physics = t.Physics
	Bomb = t.Bomb
	Match = t.Match
}

// Settings returns the default match rules carried by the tuning.
func (t Tuning) Settings() Settings {
	return Settings{MatchDuration: t.Match.Duration, WinScore: t.Match.WinScore}
}

// ParseTuning decodes YAML overrides on top of base.
func ParseTuning(data []byte, base Tuning) (Tuning, error) {
	t := base
	if err := yaml.Unmarshal(data, &t); err != nil {
		return base, fmt.Errorf("tuning: unmarshal: %w", err)
	}
	if err := t.Validate(); err != nil {
		return base, fmt.Errorf("tuning: %w", err)
	}
	return t, nil
}

// LoadTuning reads a YAML overrides file on top of base.
func LoadTuning(path string, base Tuning) (Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("tuning: load %s: %w", path, err)
	}
	t, err := ParseTuning(data, base)
	if err != nil {
		return base, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Validate rejects values the simulation cannot run with.
func (t Tuning) Validate() error {
	var errs []error
	if t.Physics.Gravity <= 0 {
		errs = append(errs, errors.New("physics.gravity must be positive"))
	}
	if t.Physics.Friction <= 0 || t.Physics.Friction >= 1 {
		errs = append(errs, errors.New("physics.friction must be in (0, 1)"))
	}
	if t.Physics.MaxSpeed <= 0 {
		errs = append(errs, errors.New("physics.max_speed must be positive"))
	}
	if t.Physics.JumpForce >= 0 || t.Physics.DoubleJumpForce >= 0 {
		errs = append(errs, errors.New("jump forces must be negative"))
	}
	if t.Bomb.Radius <= 0 {
		errs = append(errs, errors.New("bomb.radius must be positive"))
	}
	if t.Bomb.FuseTime <= 0 || t.Bomb.SpawnInterval <= 0 {
		errs = append(errs, errors.New("bomb fuse and spawn interval must be positive"))
	}
	if t.Bomb.WallDamping <= 0 || t.Bomb.WallDamping >= 1 {
		errs = append(errs, errors.New("bomb.wall_damping must be in (0, 1)"))
	}
	if t.Bomb.ExplosionDamage <= 0 {
		errs = append(errs, errors.New("bomb.explosion_damage must be positive"))
	}
	s := t.Settings()
	if t.Match.Duration < t.Match.MinDuration || t.Match.Duration > t.Match.MaxDuration ||
		t.Match.WinScore < t.Match.MinWinScore || t.Match.WinScore > t.Match.MaxWinScore {
		errs = append(errs, fmt.Errorf("match defaults out of range: %+v", s))
	}
	return errors.Join(errs...)
}
