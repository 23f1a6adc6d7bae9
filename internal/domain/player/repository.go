package player

import "context"

// Repository describes player persistence needs from use cases.
type Repository interface {
	// ListActive returns active players, optionally filtered by team short
	// code when teamShort is non-empty.
	ListActive(ctx context.Context, teamShort string) ([]Player, error)
}
