package calculation

import (
	"context"
	"fmt"
	"runtime"

	"github.com/google/uuid"
	"github.com/rgehrsitz/folha/internal/domain"
	"golang.org/x/sync/errgroup"
)

// Outcome pairs one batch input with its result
type Outcome struct {
	ID     uuid.UUID                 `json:"id" yaml:"id"`
	Index  int                       `json:"index" yaml:"index"`
	Input  domain.CompensationInput  `json:"input" yaml:"input"`
	Result domain.CompensationResult `json:"result" yaml:"result"`
}

// RunBatch computes every input concurrently. Outcomes keep the order of the
// inputs. The only error is the context's, when it is cancelled mid-batch.
func (e *Engine) RunBatch(ctx context.Context, inputs []domain.CompensationInput) ([]Outcome, error) {
	e = e.ready()
	out := make([]Outcome, len(inputs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i := range inputs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out[i] = Outcome{
				ID:     uuid.New(),
				Index:  i,
				Input:  inputs[i],
				Result: e.Compute(inputs[i]),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("batch cancelled: %w", err)
	}
	e.logger().Infof("computed %d records", len(out))
	return out, nil
}
