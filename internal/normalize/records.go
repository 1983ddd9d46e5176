package normalize

import (
	"github.com/preston-bernstein/hoops-analytics-service/internal/domain/games"
	"github.com/preston-bernstein/hoops-analytics-service/internal/domain/players"
	"github.com/preston-bernstein/hoops-analytics-service/internal/domain/teams"
)

// Record is one raw row as delivered by a data source, keyed by column name.
// Missing columns read as nil and default through the coercion helpers.
type Record map[string]any

// Upstream column names.
const (
	ColPlayerID   = "id_player"
	ColPlayerName = "Nombre"
	ColTeamName   = "equipo_nombre"
	ColGameID     = "id_abe"
	ColDate       = "Fecha"
	ColStarter    = "starter"
	ColOpponent   = "Opp_Name"
	ColTeamScore  = "Tm_Score"
	ColOppScore   = "Opp_Score"

	teamPrefix = "Tm_"
	oppPrefix  = "Opp_"
)

// StatLine converts a raw per-player game row.
func StatLine(rec Record) games.StatLine {
	return games.StatLine{
		PlayerID:   ID(rec[ColPlayerID]),
		PlayerName: String(rec[ColPlayerName]),
		Team:       TeamAlias(String(rec[ColTeamName])),
		GameID:     ID(rec[ColGameID]),
		Date:       Date(rec[ColDate]),
		Starter:    Bool(rec[ColStarter]),
		Box: games.BoxScore{
			Minutes:    Minutes(rec["sMinutes"]),
			Points:     Float(rec["sPoints"]),
			FGM:        Float(rec["sFieldGoalsMade"]),
			FGA:        Float(rec["sFieldGoalsAttempted"]),
			TwoPM:      Float(rec["sTwoPointersMade"]),
			TwoPA:      Float(rec["sTwoPointersAttempted"]),
			ThreePM:    Float(rec["sThreePointersMade"]),
			ThreePA:    Float(rec["sThreePointersAttempted"]),
			FTM:        Float(rec["sFreeThrowsMade"]),
			FTA:        Float(rec["sFreeThrowsAttempted"]),
			ORB:        Float(rec["sReboundsOffensive"]),
			DRB:        Float(rec["sReboundsDefensive"]),
			TRB:        Float(rec["sReboundsTotal"]),
			AST:        Float(rec["sAssists"]),
			TOV:        Float(rec["sTurnovers"]),
			STL:        Float(rec["sSteals"]),
			BLK:        Float(rec["sBlocks"]),
			PF:         Float(rec["sFoulsPersonal"]),
			FoulsDrawn: Float(rec["sFoulsOn"]),
		},
		TeamStats: sideTotals(rec, teamPrefix),
		OppStats:  sideTotals(rec, oppPrefix),
		Opponent:  Text(rec[ColOpponent]),
		TeamScore: Float(rec[ColTeamScore]),
		OppScore:  Float(rec[ColOppScore]),
	}
}

// TeamLine converts a raw per-team game row.
func TeamLine(rec Record) games.TeamGameLine {
	return games.TeamGameLine{
		GameID:    ID(rec[ColGameID]),
		Team:      TeamAlias(String(rec[ColTeamName])),
		Date:      Date(rec[ColDate]),
		TeamStats: sideTotals(rec, teamPrefix),
		OppStats:  sideTotals(rec, oppPrefix),
		TeamScore: Float(rec[ColTeamScore]),
		OppScore:  Float(rec[ColOppScore]),
	}
}

// DedupTeamLines keeps the first row for each (game, team) pair.
func DedupTeamLines(lines []games.TeamGameLine) []games.TeamGameLine {
	type key struct{ game, team string }
	seen := make(map[key]struct{}, len(lines))
	out := make([]games.TeamGameLine, 0, len(lines))
	for _, l := range lines {
		k := key{l.GameID, l.Team}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, l)
	}
	return out
}

// Bio converts a raw player row.
func Bio(rec Record) players.Bio {
	return players.Bio{
		ID:          ID(rec["player_id"]),
		FirstName:   String(rec["first_name"]),
		FamilyName:  String(rec["family_name"]),
		HeightCM:    Float(rec["height_cm"]),
		WeightKG:    Float(rec["weight_kg"]),
		DateOfBirth: Date(rec["date_of_birth"]),
		Nationality: String(rec["nationality"]),
	}
}

// Roster converts a raw roster assignment row.
func Roster(rec Record) players.RosterAssignment {
	return players.RosterAssignment{
		PlayerID:       ID(rec["player_id"]),
		TeamID:         ID(rec["equipo_id"]),
		ShirtNumber:    ID(rec["shirt_number"]),
		Position:       String(rec["playing_position"]),
		EffectiveStart: Date(rec["effective_start_date"]),
	}
}

// CatalogEntry converts a raw team catalog row.
func CatalogEntry(rec Record) teams.CatalogEntry {
	return teams.CatalogEntry{
		ID:   ID(rec["equipo_id"]),
		Name: String(rec["nombre"]),
	}
}

func sideTotals(rec Record, prefix string) games.TeamTotals {
	return games.TeamTotals{
		FG:      Float(rec[prefix+"FG"]),
		FGA:     Float(rec[prefix+"FGA"]),
		TwoPM:   Float(rec[prefix+"2PM"]),
		ThreePM: Float(rec[prefix+"3PM"]),
		ThreePA: Float(rec[prefix+"3PA"]),
		FTM:     Float(rec[prefix+"FTM"]),
		FTA:     Float(rec[prefix+"FTA"]),
		ORB:     Float(rec[prefix+"ORB"]),
		DRB:     Float(rec[prefix+"DRB"]),
		TRB:     Float(rec[prefix+"TRB"]),
		AST:     Float(rec[prefix+"AST"]),
		STL:     Float(rec[prefix+"STL"]),
		BLK:     Float(rec[prefix+"BLK"]),
		TOV:     Float(rec[prefix+"TOV"]),
		PF:      Float(rec[prefix+"PF"]),
		MIN:     Minutes(rec[prefix+"MIN"]),
	}
}
