// Package slog provides logging decorators for querymode service
// interfaces using the standard library's structured logger.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/mr-devs/querymode"
)

// Ensure LoggingGenerator implements querymode.Generator.
var _ querymode.Generator = (*LoggingGenerator)(nil)

// LoggingGenerator wraps a Generator with operation logging.
type LoggingGenerator struct {
	next   querymode.Generator
	logger *slog.Logger
}

// NewLoggingGenerator creates a new LoggingGenerator.
func NewLoggingGenerator(next querymode.Generator, logger *slog.Logger) *LoggingGenerator {
	return &LoggingGenerator{next: next, logger: logger}
}

// Generate delegates to the wrapped generator and logs the operation.
func (g *LoggingGenerator) Generate(ctx context.Context, question string, history []*querymode.Turn) (answer *querymode.GroundedAnswer, err error) {
	defer func(begin time.Time) {
		supports, chunks := 0, 0
		if answer != nil {
			supports, chunks = len(answer.Supports), len(answer.Chunks)
		}
		g.logger.Info("grounded generation",
			"history", len(history),
			"supports", supports,
			"chunks", chunks,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return g.next.Generate(ctx, question, history)
}
