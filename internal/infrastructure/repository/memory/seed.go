package memory

import (
	"time"

	"github.com/crickstack/scorecard-api/internal/domain/match"
	"github.com/crickstack/scorecard-api/internal/domain/player"
)

const (
	MatchIDIndNz  = "match-ind-nz-2026-01-28"
	MatchIDIndAus = "match-ind-aus-2026-02-01"
	MatchIDEngPak = "match-eng-pak-2026-02-03"
)

func SeedMatches() []match.Match {
	return []match.Match{
		{
			ID:                  MatchIDIndNz,
			Team1:               match.TeamRef{Name: "India", ShortName: "IND"},
			Team2:               match.TeamRef{Name: "New Zealand", ShortName: "NZ"},
			MatchDate:           time.Date(2026, 1, 28, 14, 0, 0, 0, time.UTC),
			Venue:               "Eden Gardens, Kolkata",
			Status:              match.StatusUpcoming,
			IsTeamSelectionOpen: true,
		},
		{
			ID:                  MatchIDIndAus,
			Team1:               match.TeamRef{Name: "India", ShortName: "IND"},
			Team2:               match.TeamRef{Name: "Australia", ShortName: "AUS"},
			MatchDate:           time.Date(2026, 2, 1, 14, 0, 0, 0, time.UTC),
			Venue:               "Wankhede Stadium, Mumbai",
			Status:              match.StatusUpcoming,
			IsTeamSelectionOpen: true,
		},
		{
			ID:                  MatchIDEngPak,
			Team1:               match.TeamRef{Name: "England", ShortName: "ENG"},
			Team2:               match.TeamRef{Name: "Pakistan", ShortName: "PAK"},
			MatchDate:           time.Date(2026, 2, 3, 18, 30, 0, 0, time.UTC),
			Venue:               "Lord's, London",
			Status:              match.StatusUpcoming,
			IsTeamSelectionOpen: true,
		},
	}
}

func SeedPlayers() []player.Player {
	return []player.Player{
		{ID: "ind-01", Name: "Rohit Sharma", ShortName: "R Sharma", Team: "IND", Role: player.RoleBatsman, IsActive: true},
		{ID: "ind-02", Name: "Virat Kohli", ShortName: "V Kohli", Team: "IND", Role: player.RoleBatsman, IsActive: true},
		{ID: "ind-03", Name: "Suryakumar Yadav", ShortName: "SKY", Team: "IND", Role: player.RoleBatsman, IsActive: true},
		{ID: "ind-04", Name: "Hardik Pandya", ShortName: "H Pandya", Team: "IND", Role: player.RoleAllRounder, IsActive: true},
		{ID: "ind-05", Name: "Rishabh Pant", ShortName: "R Pant", Team: "IND", Role: player.RoleWicketKeeper, IsActive: true},
		{ID: "ind-06", Name: "Jasprit Bumrah", ShortName: "J Bumrah", Team: "IND", Role: player.RoleBowler, IsActive: true},
		{ID: "ind-07", Name: "Kuldeep Yadav", ShortName: "K Yadav", Team: "IND", Role: player.RoleBowler, IsActive: true},
		{ID: "ind-08", Name: "Mohammed Siraj", ShortName: "M Siraj", Team: "IND", Role: player.RoleBowler, IsActive: true},
		{ID: "nz-01", Name: "Devon Conway", ShortName: "D Conway", Team: "NZ", Role: player.RoleWicketKeeper, IsActive: true},
		{ID: "nz-02", Name: "Kane Williamson", ShortName: "K Williamson", Team: "NZ", Role: player.RoleBatsman, IsActive: true},
		{ID: "nz-03", Name: "Rachin Ravindra", ShortName: "R Ravindra", Team: "NZ", Role: player.RoleAllRounder, IsActive: true},
		{ID: "nz-04", Name: "Glenn Phillips", ShortName: "G Phillips", Team: "NZ", Role: player.RoleBatsman, IsActive: true},
		{ID: "nz-05", Name: "Mitchell Santner", ShortName: "M Santner", Team: "NZ", Role: player.RoleAllRounder, IsActive: true},
		{ID: "nz-06", Name: "Trent Boult", ShortName: "T Boult", Team: "NZ", Role: player.RoleBowler, IsActive: true},
		{ID: "nz-07", Name: "Tim Southee", ShortName: "T Southee", Team: "NZ", Role: player.RoleBowler, IsActive: true},
		{ID: "aus-01", Name: "Travis Head", ShortName: "T Head", Team: "AUS", Role: player.RoleBatsman, IsActive: true},
		{ID: "aus-02", Name: "Glenn Maxwell", ShortName: "G Maxwell", Team: "AUS", Role: player.RoleAllRounder, IsActive: true},
		{ID: "aus-03", Name: "Pat Cummins", ShortName: "P Cummins", Team: "AUS", Role: player.RoleBowler, IsActive: true},
		{ID: "eng-01", Name: "Jos Buttler", ShortName: "J Buttler", Team: "ENG", Role: player.RoleWicketKeeper, IsActive: true},
		{ID: "eng-02", Name: "Harry Brook", ShortName: "H Brook", Team: "ENG", Role: player.RoleBatsman, IsActive: true},
		{ID: "pak-01", Name: "Babar Azam", ShortName: "B Azam", Team: "PAK", Role: player.RoleBatsman, IsActive: true},
		{ID: "pak-02", Name: "Shaheen Afridi", ShortName: "S Afridi", Team: "PAK", Role: player.RoleBowler, IsActive: true},
		// Retired, kept for historical scorecards; must never win a resolution.
		{ID: "ind-99", Name: "MS Dhoni", ShortName: "MS Dhoni", Team: "IND", Role: player.RoleWicketKeeper, IsActive: false},
	}
}
