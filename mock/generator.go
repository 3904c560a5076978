// Package mock provides function-field mock implementations of
// querymode service interfaces for tests.
package mock

import (
	"context"

	"github.com/mr-devs/querymode"
)

var _ querymode.Generator = (*Generator)(nil)

// Generator is a mock implementation of querymode.Generator.
type Generator struct {
	GenerateFn func(ctx context.Context, question string, history []*querymode.Turn) (*querymode.GroundedAnswer, error)
}

func (g *Generator) Generate(ctx context.Context, question string, history []*querymode.Turn) (*querymode.GroundedAnswer, error) {
	return g.GenerateFn(ctx, question, history)
}
