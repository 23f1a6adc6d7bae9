package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/crickstack/scorecard-api/internal/domain/scorecard"
	qb "github.com/crickstack/scorecard-api/internal/platform/querybuilder"
)

type ScorecardRepository struct {
	db *sqlx.DB
}

func NewScorecardRepository(db *sqlx.DB) *ScorecardRepository {
	return &ScorecardRepository{db: db}
}

func (r *ScorecardRepository) Create(ctx context.Context, sc scorecard.Scorecard) error {
	insertModel, err := scorecardToInsertModel(sc)
	if err != nil {
		return err
	}

	query, args, err := qb.InsertModel("match_scorecards", insertModel, "")
	if err != nil {
		return fmt.Errorf("build insert scorecard query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		// The partial unique index on match_public_id settles concurrent
		// imports of the same match.
		if isUniqueViolation(err) {
			return scorecard.ErrDuplicateMatch
		}
		return fmt.Errorf("insert scorecard %s: %w", sc.ID, err)
	}
	return nil
}

func (r *ScorecardRepository) GetByID(ctx context.Context, id string) (scorecard.Scorecard, bool, error) {
	query, args, err := qb.Select("*").From("match_scorecards").
		Where(
			qb.Eq("public_id", id),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return scorecard.Scorecard{}, false, fmt.Errorf("build get scorecard by id query: %w", err)
	}

	var row scorecardTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return scorecard.Scorecard{}, false, nil
		}
		return scorecard.Scorecard{}, false, fmt.Errorf("get scorecard by id: %w", err)
	}

	out, err := scorecardFromRow(row)
	if err != nil {
		return scorecard.Scorecard{}, false, err
	}
	return out, true, nil
}

func (r *ScorecardRepository) GetByMatchID(ctx context.Context, matchID string) (scorecard.Scorecard, bool, error) {
	query, args, err := qb.Select("*").From("match_scorecards").
		Where(
			qb.Eq("match_public_id", matchID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return scorecard.Scorecard{}, false, fmt.Errorf("build get scorecard by match query: %w", err)
	}

	var row scorecardTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return scorecard.Scorecard{}, false, nil
		}
		return scorecard.Scorecard{}, false, fmt.Errorf("get scorecard by match: %w", err)
	}

	out, err := scorecardFromRow(row)
	if err != nil {
		return scorecard.Scorecard{}, false, err
	}
	return out, true, nil
}

func (r *ScorecardRepository) List(ctx context.Context) ([]scorecard.Scorecard, error) {
	query, args, err := qb.Select("*").From("match_scorecards").
		Where(qb.IsNull("deleted_at")).
		OrderBy("imported_at DESC", "public_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list scorecards query: %w", err)
	}

	var rows []scorecardTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list scorecards: %w", err)
	}

	out := make([]scorecard.Scorecard, 0, len(rows))
	for _, row := range rows {
		converted, err := scorecardFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, converted)
	}
	return out, nil
}

func (r *ScorecardRepository) Delete(ctx context.Context, id string) error {
	query, args, err := qb.Update("match_scorecards").
		SetExpr("deleted_at", "NOW()").
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("public_id", id),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete scorecard query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete scorecard %s: %w", id, err)
	}
	return nil
}

func scorecardToInsertModel(sc scorecard.Scorecard) (scorecardInsertModel, error) {
	matchInfo, err := marshalJSONB(sc.MatchInfo)
	if err != nil {
		return scorecardInsertModel{}, fmt.Errorf("marshal scorecard match info: %w", err)
	}
	firstInnings, err := marshalJSONB(sc.FirstInnings)
	if err != nil {
		return scorecardInsertModel{}, fmt.Errorf("marshal scorecard first innings: %w", err)
	}
	secondInnings, err := marshalJSONB(sc.SecondInnings)
	if err != nil {
		return scorecardInsertModel{}, fmt.Errorf("marshal scorecard second innings: %w", err)
	}
	computedStats, err := marshalJSONB(sc.ComputedStats)
	if err != nil {
		return scorecardInsertModel{}, fmt.Errorf("marshal scorecard computed stats: %w", err)
	}
	processingStatus, err := marshalJSONB(sc.ProcessingStatus)
	if err != nil {
		return scorecardInsertModel{}, fmt.Errorf("marshal scorecard processing status: %w", err)
	}

	return scorecardInsertModel{
		PublicID:          sc.ID,
		MatchID:           sc.MatchID,
		ExternalMatchCode: sc.ExternalMatchCode,
		MatchInfo:         matchInfo,
		FirstInnings:      firstInnings,
		SecondInnings:     secondInnings,
		ComputedStats:     computedStats,
		ProcessingStatus:  processingStatus,
		ImportedAt:        sc.ImportedAt,
		ImportedBy:        sc.ImportedBy,
	}, nil
}

func scorecardFromRow(row scorecardTableModel) (scorecard.Scorecard, error) {
	out := scorecard.Scorecard{
		ID:                row.PublicID,
		MatchID:           row.MatchID,
		ExternalMatchCode: row.ExternalMatchCode,
		ImportedAt:        row.ImportedAt,
		ImportedBy:        row.ImportedBy,
	}
	if err := unmarshalJSONB(row.MatchInfo, &out.MatchInfo); err != nil {
		return scorecard.Scorecard{}, fmt.Errorf("unmarshal scorecard %s match info: %w", row.PublicID, err)
	}
	if err := unmarshalJSONB(row.FirstInnings, &out.FirstInnings); err != nil {
		return scorecard.Scorecard{}, fmt.Errorf("unmarshal scorecard %s first innings: %w", row.PublicID, err)
	}
	if err := unmarshalJSONB(row.SecondInnings, &out.SecondInnings); err != nil {
		return scorecard.Scorecard{}, fmt.Errorf("unmarshal scorecard %s second innings: %w", row.PublicID, err)
	}
	if err := unmarshalJSONB(row.ComputedStats, &out.ComputedStats); err != nil {
		return scorecard.Scorecard{}, fmt.Errorf("unmarshal scorecard %s computed stats: %w", row.PublicID, err)
	}
	if err := unmarshalJSONB(row.ProcessingStatus, &out.ProcessingStatus); err != nil {
		return scorecard.Scorecard{}, fmt.Errorf("unmarshal scorecard %s processing status: %w", row.PublicID, err)
	}
	return out, nil
}
