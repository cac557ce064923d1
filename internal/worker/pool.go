package worker

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"
)

// Job pairs one input with its outcome after the pool has run it.
type Job[T any, R any] struct {
	Input  T
	Result R
	Err    error
}

// Func processes a single input. Each invocation owns its result
// exclusively, so parse jobs never share a Translation or Tree.
type Func[T any, R any] func(ctx context.Context, input T) (R, error)

// Pool runs independent jobs with bounded concurrency.
type Pool[T any, R any] struct {
	workers int
	run     Func[T, R]
}

// NewPool creates a pool with the given worker count (minimum 1).
func NewPool[T any, R any](workers int, fn Func[T, R]) *Pool[T, R] {
	if workers < 1 {
		workers = 1
	}
	return &Pool[T, R]{workers: workers, run: fn}
}

// Execute runs all inputs and returns one Job per input, in input order.
// Cancelling ctx stops workers from picking up further inputs.
func (p *Pool[T, R]) Execute(ctx context.Context, inputs []T) []Job[T, R] {
	results := make([]Job[T, R], len(inputs))
	inputCh := make(chan int, len(inputs))

	var wg sync.WaitGroup
	for w := 0; w < p.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case idx, ok := <-inputCh:
					if !ok {
						return
					}
					result, err := p.run(ctx, inputs[idx])
					results[idx] = Job[T, R]{Input: inputs[idx], Result: result, Err: err}
					if err != nil {
						log.Error().Err(err).Int("index", idx).Msg("Job failed")
					}
				}
			}
		}()
	}

	for i := range inputs {
		select {
		case <-ctx.Done():
		case inputCh <- i:
		}
	}
	close(inputCh)

	wg.Wait()
	return results
}
