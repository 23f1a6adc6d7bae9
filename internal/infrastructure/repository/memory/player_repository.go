package memory

import (
	"context"
	"sync"

	"github.com/crickstack/scorecard-api/internal/domain/player"
)

type PlayerRepository struct {
	mu      sync.RWMutex
	players []player.Player
}

func NewPlayerRepository(players []player.Player) *PlayerRepository {
	out := make([]player.Player, len(players))
	copy(out, players)
	return &PlayerRepository{players: out}
}

func (r *PlayerRepository) ListActive(_ context.Context, teamShort string) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0, len(r.players))
	for _, item := range r.players {
		if !item.IsActive {
			continue
		}
		if teamShort != "" && item.Team != teamShort {
			continue
		}
		out = append(out, item)
	}
	return out, nil
}
