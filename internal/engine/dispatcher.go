package engine

import (
	"context"
	"sync"

	"github.com/rkollar/cawa/internal/models"
)

// indexedOutcome carries one command's outcome back from its goroutine
// along with its position in the definition.
type indexedOutcome struct {
	index   int
	outcome models.InvocationOutcome
}

// dispatchParallel spawns every command at once and joins on all of them.
// There is no fail-fast: constituents are independent, and each one runs to
// completion even when a sibling has already failed. Outcomes are
// reassembled in definition order so aggregation stays deterministic no
// matter which command finishes first.
func (e *Engine) dispatchParallel(ctx context.Context, commands []string) []models.InvocationOutcome {
	resultsCh := make(chan indexedOutcome, len(commands))

	var wg sync.WaitGroup
	for i, command := range commands {
		wg.Add(1)
		go func(index int, command string) {
			defer wg.Done()
			resultsCh <- indexedOutcome{index: index, outcome: e.invoke(ctx, command)}
		}(i, command)
	}

	go func() {
		wg.Wait()
		close(resultsCh)
	}()

	outcomes := make([]models.InvocationOutcome, len(commands))
	for res := range resultsCh {
		outcomes[res.index] = res.outcome
	}

	return outcomes
}
