package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/crickstack/scorecard-api/internal/domain/player"
	qb "github.com/crickstack/scorecard-api/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) ListActive(ctx context.Context, teamShort string) ([]player.Player, error) {
	conditions := []qb.Condition{
		qb.Eq("is_active", true),
		qb.IsNull("deleted_at"),
	}
	if teamShort != "" {
		conditions = append(conditions, qb.Eq("team_short", teamShort))
	}

	query, args, err := qb.Select("*").From("players").
		Where(conditions...).
		OrderBy("name", "public_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select active players query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select active players: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, player.Player{
			ID:        row.PublicID,
			Name:      row.Name,
			ShortName: row.ShortName,
			Team:      row.TeamShort,
			Role:      row.Role,
			IsActive:  row.IsActive,
		})
	}
	return out, nil
}
