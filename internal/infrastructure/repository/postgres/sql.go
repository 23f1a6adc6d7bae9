package postgres

import (
	"database/sql"
	"errors"

	"github.com/bytedance/sonic"
	"github.com/lib/pq"
)

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}

// marshalJSONB renders a value for a jsonb column.
func marshalJSONB(v any) ([]byte, error) {
	return sonic.Marshal(v)
}

// unmarshalJSONB fills v from a jsonb column; NULL leaves v untouched.
func unmarshalJSONB(data []byte, v any) error {
	if len(data) == 0 {
		return nil
	}
	return sonic.Unmarshal(data, v)
}
