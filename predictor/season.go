package predictor

import (
	"errors"
	"strings"
)

// Season is a demand-context label. The set is closed; anything else is
// rejected by ParseSeason.
type Season string

const (
	SeasonSummer   Season = "Summer"
	SeasonWinter   Season = "Winter"
	SeasonMonsoon  Season = "Monsoon"
	SeasonRegular  Season = "Regular"
	SeasonDiwali   Season = "Diwali"
	SeasonHoli     Season = "Holi"
	SeasonNewYear  Season = "NewYear"
	SeasonFestival Season = "Festival"
)

var allSeasons = []Season{
	SeasonSummer,
	SeasonWinter,
	SeasonMonsoon,
	SeasonRegular,
	SeasonDiwali,
	SeasonHoli,
	SeasonNewYear,
	SeasonFestival,
}

// ErrInvalidSeason is returned when a season label is not in the closed set.
var ErrInvalidSeason = errors.New("invalid season")

// Seasons returns every valid season.
func Seasons() []Season {
	out := make([]Season, len(allSeasons))
	copy(out, allSeasons)
	return out
}

// ParseSeason matches a label against the closed season set,
// case-insensitively.
func ParseSeason(s string) (Season, error) {
	for _, season := range allSeasons {
		if strings.EqualFold(s, string(season)) {
			return season, nil
		}
	}
	return "", ErrInvalidSeason
}

// Valid reports whether s is in the closed season set.
func (s Season) Valid() bool {
	for _, season := range allSeasons {
		if s == season {
			return true
		}
	}
	return false
}
