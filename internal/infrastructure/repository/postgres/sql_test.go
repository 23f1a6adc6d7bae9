package postgres

import (
	"database/sql"
	"fmt"
	"testing"

	"github.com/lib/pq"
)

func TestIsNotFound(t *testing.T) {
	t.Run("matches sql.ErrNoRows", func(t *testing.T) {
		if !isNotFound(sql.ErrNoRows) {
			t.Fatalf("expected true for sql.ErrNoRows")
		}
	})

	t.Run("matches wrapped sql.ErrNoRows", func(t *testing.T) {
		if !isNotFound(fmt.Errorf("get scorecard: %w", sql.ErrNoRows)) {
			t.Fatalf("expected true for wrapped sql.ErrNoRows")
		}
	})

	t.Run("ignores unrelated error", func(t *testing.T) {
		if isNotFound(fmt.Errorf("connection refused")) {
			t.Fatalf("expected false for unrelated error")
		}
	})
}

func TestIsUniqueViolation(t *testing.T) {
	t.Run("matches 23505", func(t *testing.T) {
		err := &pq.Error{Code: "23505", Constraint: "match_scorecards_match_public_id_key"}
		if !isUniqueViolation(err) {
			t.Fatalf("expected true for unique violation")
		}
	})

	t.Run("matches wrapped 23505", func(t *testing.T) {
		err := fmt.Errorf("insert scorecard: %w", &pq.Error{Code: "23505"})
		if !isUniqueViolation(err) {
			t.Fatalf("expected true for wrapped unique violation")
		}
	})

	t.Run("ignores other pq codes", func(t *testing.T) {
		if isUniqueViolation(&pq.Error{Code: "23503"}) {
			t.Fatalf("expected false for foreign key violation")
		}
	})

	t.Run("ignores plain errors", func(t *testing.T) {
		if isUniqueViolation(fmt.Errorf("connection refused")) {
			t.Fatalf("expected false for plain error")
		}
	})
}

func TestScorecardJSONBRoundTrip(t *testing.T) {
	type payload struct {
		Name  string
		Count int
	}

	data, err := marshalJSONB(payload{Name: "Most Sixes", Count: 4})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var got payload
	if err := unmarshalJSONB(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Name != "Most Sixes" || got.Count != 4 {
		t.Fatalf("round trip mismatch: %+v", got)
	}

	var untouched payload
	if err := unmarshalJSONB(nil, &untouched); err != nil {
		t.Fatalf("nil column must be a no-op: %v", err)
	}
	if untouched != (payload{}) {
		t.Fatalf("nil column must leave the value untouched: %+v", untouched)
	}
}
