package player

import "fmt"

const (
	RoleBatsman      = "batsman"
	RoleBowler       = "bowler"
	RoleAllRounder   = "all-rounder"
	RoleWicketKeeper = "wicket-keeper"
)

// Player is a stored cricketer that scorecard rows resolve against.
type Player struct {
	ID        string
	Name      string
	ShortName string
	Team      string
	Role      string
	IsActive  bool
}

func (p Player) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("player id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}
	if p.Team == "" {
		return fmt.Errorf("player team is required")
	}
	return nil
}
