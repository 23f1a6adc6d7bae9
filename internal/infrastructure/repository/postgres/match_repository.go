package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/crickstack/scorecard-api/internal/domain/match"
	qb "github.com/crickstack/scorecard-api/internal/platform/querybuilder"
)

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) GetByID(ctx context.Context, id string) (match.Match, bool, error) {
	query, args, err := qb.Select("*").From("matches").
		Where(
			qb.Eq("public_id", id),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build get match by id query: %w", err)
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("get match by id: %w", err)
	}

	out, err := matchFromRow(row)
	if err != nil {
		return match.Match{}, false, err
	}
	return out, true, nil
}

func (r *MatchRepository) ListByDateRange(ctx context.Context, from, to time.Time) ([]match.Match, error) {
	query, args, err := qb.Select("*").From("matches").
		Where(
			qb.Expr("match_date >= ?", from),
			qb.Expr("match_date <= ?", to),
			qb.IsNull("deleted_at"),
		).
		OrderBy("match_date", "public_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select matches by date range query: %w", err)
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select matches by date range: %w", err)
	}

	return matchesFromRows(rows)
}

func (r *MatchRepository) LatestByTeamPairWithoutScorecard(ctx context.Context, shortA, shortB string) (match.Match, bool, error) {
	query, args, err := qb.Select("*").From("matches").
		Where(
			qb.Expr("((team1_short = ? AND team2_short = ?) OR (team1_short = ? AND team2_short = ?))",
				shortA, shortB, shortB, shortA),
			qb.IsNull("scorecard_public_id"),
			qb.IsNull("deleted_at"),
		).
		OrderBy("match_date DESC").
		Limit(1).
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build latest match by team pair query: %w", err)
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("get latest match by team pair: %w", err)
	}

	out, err := matchFromRow(row)
	if err != nil {
		return match.Match{}, false, err
	}
	return out, true, nil
}

func (r *MatchRepository) ListWithoutScorecard(ctx context.Context) ([]match.Match, error) {
	query, args, err := qb.Select("*").From("matches").
		Where(
			qb.IsNull("scorecard_public_id"),
			qb.IsNull("deleted_at"),
		).
		OrderBy("match_date DESC", "public_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select matches without scorecard query: %w", err)
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select matches without scorecard: %w", err)
	}

	return matchesFromRows(rows)
}

func (r *MatchRepository) ApplyImport(ctx context.Context, id string, update match.ImportUpdate) error {
	resultJSON, err := marshalJSONB(update.Result)
	if err != nil {
		return fmt.Errorf("marshal match result: %w", err)
	}
	statsJSON, err := marshalJSONB(update.StatsSnapshot)
	if err != nil {
		return fmt.Errorf("marshal match stats snapshot: %w", err)
	}

	query, args, err := qb.Update("matches").
		Set("scorecard_public_id", update.ScorecardID).
		Set("status", update.Status).
		Set("is_team_selection_open", update.IsTeamSelectionOpen).
		Set("result", resultJSON).
		Set("stats_snapshot", statsJSON).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("public_id", id),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build apply import update query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("apply import update to match %s: %w", id, err)
	}
	return nil
}

func (r *MatchRepository) ClearScorecardRef(ctx context.Context, id string) error {
	query, args, err := qb.Update("matches").
		SetExpr("scorecard_public_id", "NULL").
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("public_id", id),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build clear scorecard ref query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("clear scorecard ref on match %s: %w", id, err)
	}
	return nil
}

func matchFromRow(row matchTableModel) (match.Match, error) {
	out := match.Match{
		ID:                  row.PublicID,
		Team1:               match.TeamRef{Name: row.Team1Name, ShortName: row.Team1Short},
		Team2:               match.TeamRef{Name: row.Team2Name, ShortName: row.Team2Short},
		MatchDate:           row.MatchDate,
		Venue:               row.Venue,
		Status:              row.Status,
		IsTeamSelectionOpen: row.IsTeamSelectionOpen,
		ScorecardID:         row.ScorecardID.String,
	}
	if err := unmarshalJSONB(row.Result, &out.Result); err != nil {
		return match.Match{}, fmt.Errorf("unmarshal match %s result: %w", row.PublicID, err)
	}
	if err := unmarshalJSONB(row.StatsSnapshot, &out.StatsSnapshot); err != nil {
		return match.Match{}, fmt.Errorf("unmarshal match %s stats snapshot: %w", row.PublicID, err)
	}
	return out, nil
}

func matchesFromRows(rows []matchTableModel) ([]match.Match, error) {
	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		converted, err := matchFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, converted)
	}
	return out, nil
}
