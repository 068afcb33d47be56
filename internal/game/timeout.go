package game

import (
	"context"
	"time"

	"github.com/coder/quartz"

	"github.com/lox/draftforbots/draft"
)

// TimeoutSource bounds how long an inner decision source may take. A turn
// decision that misses the deadline becomes a drop of the first hand card,
// the same default the orchestrator forces on a rule violation; recycle
// and community picks become declines. The clock is injectable so tests
// can advance time explicitly.
type TimeoutSource struct {
	inner   DecisionSource
	timeout time.Duration
	clock   quartz.Clock
}

// NewTimeoutSource wraps inner with a real-clock deadline.
func NewTimeoutSource(inner DecisionSource, timeout time.Duration) *TimeoutSource {
	return NewTimeoutSourceWithClock(inner, timeout, quartz.NewReal())
}

// NewTimeoutSourceWithClock wraps inner with an explicit clock.
func NewTimeoutSourceWithClock(inner DecisionSource, timeout time.Duration, clock quartz.Clock) *TimeoutSource {
	if inner == nil {
		panic("inner decision source is required")
	}
	return &TimeoutSource{inner: inner, timeout: timeout, clock: clock}
}

func (s *TimeoutSource) DecideTurn(ctx context.Context, req TurnRequest) (TurnDecision, error) {
	type result struct {
		dec TurnDecision
		err error
	}
	ch := make(chan result, 1)
	go func() {
		dec, err := s.inner.DecideTurn(ctx, req)
		ch <- result{dec: dec, err: err}
	}()

	expired := make(chan struct{})
	timer := s.clock.AfterFunc(s.timeout, func() {
		close(expired)
	})
	defer timer.Stop()

	select {
	case r := <-ch:
		return r.dec, r.err
	case <-expired:
		return TurnDecision{Action: Drop, Card: req.Hand[0]}, nil
	case <-ctx.Done():
		return TurnDecision{}, ctx.Err()
	}
}

func (s *TimeoutSource) PickRecycle(ctx context.Context, req RecycleRequest) (*draft.Card, error) {
	return s.pickWithDeadline(ctx, func() (*draft.Card, error) {
		return s.inner.PickRecycle(ctx, req)
	})
}

func (s *TimeoutSource) PickCommunity(ctx context.Context, req CommunityRequest) (*draft.Card, error) {
	return s.pickWithDeadline(ctx, func() (*draft.Card, error) {
		return s.inner.PickCommunity(ctx, req)
	})
}

func (s *TimeoutSource) pickWithDeadline(ctx context.Context, pick func() (*draft.Card, error)) (*draft.Card, error) {
	type result struct {
		card *draft.Card
		err  error
	}
	ch := make(chan result, 1)
	go func() {
		card, err := pick()
		ch <- result{card: card, err: err}
	}()

	expired := make(chan struct{})
	timer := s.clock.AfterFunc(s.timeout, func() {
		close(expired)
	})
	defer timer.Stop()

	select {
	case r := <-ch:
		return r.card, r.err
	case <-expired:
		return nil, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
