package players

import (
	"strings"
	"time"
)

// Bio holds static per-player attributes.
type Bio struct {
	ID          string    `json:"id"`
	FirstName   string    `json:"firstName"`
	FamilyName  string    `json:"familyName"`
	HeightCM    float64   `json:"heightCm"`
	WeightKG    float64   `json:"weightKg"`
	DateOfBirth time.Time `json:"dateOfBirth"`
	Nationality string    `json:"nationality"`
}

// FullName joins first and family name.
func (b Bio) FullName() string {
	return strings.TrimSpace(b.FirstName + " " + b.FamilyName)
}

// RosterAssignment is a time-stamped team/position/jersey assignment.
// The current assignment for a player is the one with the latest EffectiveStart.
type RosterAssignment struct {
	PlayerID       string    `json:"playerId"`
	TeamID         string    `json:"teamId"`
	ShirtNumber    string    `json:"shirtNumber"`
	Position       string    `json:"position"`
	EffectiveStart time.Time `json:"effectiveStart"`
}
