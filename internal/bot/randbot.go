package bot

import (
	"context"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/lox/draftforbots/draft"
	"github.com/lox/draftforbots/internal/game"
)

// RandBot is a simple bot that submits a uniform random choice from the
// turn's legal moves.
type RandBot struct {
	rng    *rand.Rand
	logger *log.Logger
}

// NewRandBot creates a new RandBot instance
func NewRandBot(rng *rand.Rand, logger *log.Logger) *RandBot {
	return &RandBot{rng: rng, logger: logger}
}

func (b *RandBot) DecideTurn(ctx context.Context, req game.TurnRequest) (game.TurnDecision, error) {
	moves := playMoves(req)
	if m, ok := buildMove(req, req.Hand[b.rng.Intn(len(req.Hand))]); ok {
		moves = append(moves, m)
	}
	// Dropping is always legal, so the list is never empty.
	moves = append(moves, move{
		decision: game.TurnDecision{Action: game.Drop, Card: req.Hand[b.rng.Intn(len(req.Hand))]},
	})
	return moves[b.rng.Intn(len(moves))].decision, nil
}

func (b *RandBot) PickRecycle(ctx context.Context, req game.RecycleRequest) (*draft.Card, error) {
	if len(req.Discard) == 0 || b.rng.Intn(4) == 0 {
		return nil, nil
	}
	return req.Discard[b.rng.Intn(len(req.Discard))], nil
}

func (b *RandBot) PickCommunity(ctx context.Context, req game.CommunityRequest) (*draft.Card, error) {
	if len(req.Choices) == 0 {
		return nil, nil
	}
	return req.Choices[b.rng.Intn(len(req.Choices))], nil
}
