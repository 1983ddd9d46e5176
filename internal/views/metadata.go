package views

import (
	"github.com/preston-bernstein/hoops-analytics-service/internal/domain/players"
	"github.com/preston-bernstein/hoops-analytics-service/internal/domain/teams"
)

// UnknownPosition is shown when a player has no roster assignment.
const UnknownPosition = "N/A"

// Metadata indexes the slow-changing player and team collections by id.
type Metadata struct {
	bios    map[string]players.Bio
	current map[string]players.RosterAssignment
	teams   map[string]string
}

// NewMetadata builds the lookups. The current roster assignment of a player is
// the one with the latest effective start; the first bio per id wins.
func NewMetadata(bios []players.Bio, rosters []players.RosterAssignment, catalog []teams.CatalogEntry) Metadata {
	m := Metadata{
		bios:    make(map[string]players.Bio, len(bios)),
		current: make(map[string]players.RosterAssignment, len(rosters)),
		teams:   make(map[string]string, len(catalog)),
	}
	for _, b := range bios {
		if _, ok := m.bios[b.ID]; !ok {
			m.bios[b.ID] = b
		}
	}
	for _, r := range rosters {
		prev, ok := m.current[r.PlayerID]
		if !ok || r.EffectiveStart.After(prev.EffectiveStart) {
			m.current[r.PlayerID] = r
		}
	}
	for _, t := range catalog {
		if _, ok := m.teams[t.ID]; !ok {
			m.teams[t.ID] = t.Name
		}
	}
	return m
}

// Bio returns the player's bio.
func (m Metadata) Bio(playerID string) (players.Bio, bool) {
	b, ok := m.bios[playerID]
	return b, ok
}

// CurrentRoster returns the latest roster assignment.
func (m Metadata) CurrentRoster(playerID string) (players.RosterAssignment, bool) {
	r, ok := m.current[playerID]
	return r, ok
}

// Position is the current playing position, or UnknownPosition.
func (m Metadata) Position(playerID string) string {
	if r, ok := m.current[playerID]; ok && r.Position != "" {
		return r.Position
	}
	return UnknownPosition
}

// Height is the player's height in cm, 0 when unknown.
func (m Metadata) Height(playerID string) float64 {
	return m.bios[playerID].HeightCM
}

// Weight is the player's weight in kg, 0 when unknown.
func (m Metadata) Weight(playerID string) float64 {
	return m.bios[playerID].WeightKG
}

// TeamName resolves a catalog id to its display name.
func (m Metadata) TeamName(teamID string) (string, bool) {
	name, ok := m.teams[teamID]
	return name, ok
}
