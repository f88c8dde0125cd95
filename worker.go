package gridastar

import (
	"context"
	"sync"
)

// Query is one source/destination pair for SearchAll.
type Query struct {
	Source      Coordinate `json:"source"`
	Destination Coordinate `json:"destination"`
}

// BatchResult is the outcome of one Query. Err holds the error Search returned.
type BatchResult struct {
	Query  Query
	Result Result
	Err    error
}

// searchTask is a request from the dispatcher to the workers.
type searchTask struct {
	Index int
	Query Query
}

// SearchAll runs every query as an independent search over the shared,
// read-only grid. Results are returned in query order.
func SearchAll(contextObject context.Context, grid *Grid, queries []Query, options ...Option) ([]BatchResult, error) {
	if grid == nil {
		return nil, ErrNilGrid
	}
	searchOptions := applyOptions(options)
	results := make([]BatchResult, len(queries))

	taskChannel := make(chan searchTask)
	var wg sync.WaitGroup

	// --- Start worker pool ---
	workers := min(searchOptions.NumberOfWorkers, max(len(queries), 1))
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for task := range taskChannel {
				result, err := Search(grid, task.Query.Source, task.Query.Destination, WithHeuristic(searchOptions.Heuristic))
				results[task.Index] = BatchResult{Query: task.Query, Result: result, Err: err}
			}
		}()
	}

	// --- Dispatch ---
	var cancelled error
dispatch:
	for i, query := range queries {
		if err := contextObject.Err(); err != nil {
			cancelled = err
			break
		}
		select {
		case <-contextObject.Done():
			cancelled = contextObject.Err()
			break dispatch
		case taskChannel <- searchTask{Index: i, Query: query}:
		}
	}
	close(taskChannel)
	wg.Wait()

	if cancelled != nil {
		return nil, cancelled
	}
	return results, nil
}
