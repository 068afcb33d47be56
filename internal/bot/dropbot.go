package bot

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/lox/draftforbots/draft"
	"github.com/lox/draftforbots/internal/game"
)

// DropBot is a simple bot that banks the drop reward every turn and never
// constructs anything. Useful as a floor when benchmarking strategies.
type DropBot struct {
	logger *log.Logger
}

// NewDropBot creates a new DropBot instance
func NewDropBot(logger *log.Logger) *DropBot {
	return &DropBot{logger: logger}
}

func (d *DropBot) DecideTurn(ctx context.Context, req game.TurnRequest) (game.TurnDecision, error) {
	return game.TurnDecision{Action: game.Drop, Card: req.Hand[0]}, nil
}

func (d *DropBot) PickRecycle(ctx context.Context, req game.RecycleRequest) (*draft.Card, error) {
	return nil, nil
}

func (d *DropBot) PickCommunity(ctx context.Context, req game.CommunityRequest) (*draft.Card, error) {
	return nil, nil
}
