package config

import (
	"errors"
	"fmt"
)

var (
	ErrMatchDuration = errors.New("match duration out of range")
	ErrWinScore      = errors.New("win score out of range")
)

// Settings are the user-facing match rules. They only take effect when a
// fresh match starts.
type Settings struct {
	MatchDuration float64 `json:"matchDuration" yaml:"match_duration"`
	WinScore      int     `json:"winScore" yaml:"win_score"`
}

// DefaultSettings returns the configured default match rules.
func DefaultSettings() Settings {
	return Settings{
		MatchDuration: Match.Duration,
		WinScore:      Match.WinScore,
	}
}

// Validate reports whether the settings are inside the accepted ranges.
func (s Settings) Validate() error {
	var errs []error
	if s.MatchDuration < Match.MinDuration || s.MatchDuration > Match.MaxDuration {
		errs = append(errs, fmt.Errorf("%w: %v not in [%v, %v]",
			ErrMatchDuration, s.MatchDuration, Match.MinDuration, Match.MaxDuration))
	}
	if s.WinScore < Match.MinWinScore || s.WinScore > Match.MaxWinScore {
		errs = append(errs, fmt.Errorf("%w: %d not in [%d, %d]",
			ErrWinScore, s.WinScore, Match.MinWinScore, Match.MaxWinScore))
	}
	return errors.Join(errs...)
}

// Clamp forces the settings into the accepted ranges.
func (s Settings) Clamp() Settings {
	s.MatchDuration = min(max(s.MatchDuration, Match.MinDuration), Match.MaxDuration)
	s.WinScore = min(max(s.WinScore, Match.MinWinScore), Match.MaxWinScore)
	return s
}
