package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/crickstack/scorecard-api/internal/infrastructure/repository/memory"
)

// BootstrapSeed loads the demo fixtures and squads into an empty database.
// A database that already holds matches is left alone.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM matches WHERE deleted_at IS NULL`); err != nil {
		return fmt.Errorf("count matches for bootstrap seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, m := range memory.SeedMatches() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO matches (public_id, team1_name, team1_short, team2_name, team2_short, match_date, venue, status, is_team_selection_open)
VALUES (:public_id, :team1_name, :team1_short, :team2_name, :team2_short, :match_date, :venue, :status, :is_team_selection_open)
ON CONFLICT (public_id) DO NOTHING`, map[string]any{
			"public_id":              m.ID,
			"team1_name":             m.Team1.Name,
			"team1_short":            m.Team1.ShortName,
			"team2_name":             m.Team2.Name,
			"team2_short":            m.Team2.ShortName,
			"match_date":             m.MatchDate.UTC(),
			"venue":                  m.Venue,
			"status":                 m.Status,
			"is_team_selection_open": m.IsTeamSelectionOpen,
		})
		if err != nil {
			return fmt.Errorf("bind seed match %s query: %w", m.ID, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed match %s: %w", m.ID, err)
		}
	}

	for _, p := range memory.SeedPlayers() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO players (public_id, name, short_name, team_short, role, is_active)
VALUES (:public_id, :name, :short_name, :team_short, :role, :is_active)
ON CONFLICT (public_id) DO NOTHING`, map[string]any{
			"public_id":  p.ID,
			"name":       p.Name,
			"short_name": p.ShortName,
			"team_short": p.Team,
			"role":       p.Role,
			"is_active":  p.IsActive,
		})
		if err != nil {
			return fmt.Errorf("bind seed player %s query: %w", p.ID, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed player %s: %w", p.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}

	return nil
}
