package shared

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
)

// InterruptContext returns a context cancelled by SIGINT or SIGTERM. Once
// it fires, default signal handling is restored, so a second interrupt
// kills the process outright.
func InterruptContext() context.Context {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	context.AfterFunc(ctx, stop)
	return ctx
}

// InterruptContextLogged is InterruptContext with a note in the log when
// the interrupt arrives, so an abandoned match is distinguishable from a
// finished one.
func InterruptContextLogged(logger zerolog.Logger) context.Context {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	context.AfterFunc(ctx, func() {
		logger.Info().Msg("interrupted, abandoning the match")
		stop()
	})
	return ctx
}
