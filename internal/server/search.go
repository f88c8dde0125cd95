package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pdrpinto/gridastar"
	"github.com/pdrpinto/gridastar/internal/cache"
	"github.com/pdrpinto/gridastar/internal/logger"
)

// gridLimits validates client-supplied grids.
type gridLimits struct {
	maxCells int
}

// exceeds reports whether rows×cols is over the cell limit. Both must be positive.
func (l gridLimits) exceeds(rows, cols int) bool {
	return rows > l.maxCells/cols
}

func (l gridLimits) build(matrix [][]int) (*gridastar.Grid, error) {
	if len(matrix) > 0 && len(matrix[0]) > 0 && l.exceeds(len(matrix), len(matrix[0])) {
		return nil, fmt.Errorf("%w: grid larger than %d cells", gridastar.ErrInvalidDimensions, l.maxCells)
	}
	return gridastar.GridFromRows(matrix)
}

// SearchController serves one-shot and batch searches.
type SearchController struct {
	store   cache.Store
	log     *logger.Logger
	limits  gridLimits
	workers int
}

// NewSearchController initializes a SearchController.
func NewSearchController(store cache.Store, log *logger.Logger, limits gridLimits, workers int) *SearchController {
	return &SearchController{store: store, log: log, limits: limits, workers: workers}
}

// Register registers the search routes.
func (sc *SearchController) Register(route *gin.RouterGroup) {
	route.POST("/search", sc.search)
	route.POST("/batch", sc.batch)
}

func (sc *SearchController) search(ctx *gin.Context) {
	var request SearchRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	grid, err := sc.limits.build(request.Grid)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	heuristic, err := gridastar.HeuristicByName(request.Heuristic)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	start := time.Now()
	key := cache.Key(grid, request.Source, request.Destination, heuristicName(request.Heuristic))
	if resp, ok := sc.cached(ctx.Request.Context(), key); ok {
		resp.ExecutionTime = millisSince(start)
		ctx.JSON(http.StatusOK, resp)
		return
	}

	result, searchErr := gridastar.Search(grid, request.Source, request.Destination, gridastar.WithHeuristic(heuristic))
	resp := newSearchResponse(result, searchErr)
	resp.ExecutionTime = millisSince(start)
	sc.remember(ctx.Request.Context(), key, resp)

	ctx.JSON(http.StatusOK, resp)
}

func (sc *SearchController) batch(ctx *gin.Context) {
	var request BatchRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	grid, err := sc.limits.build(request.Grid)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	heuristic, err := gridastar.HeuristicByName(request.Heuristic)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	start := time.Now()
	results, err := gridastar.SearchAll(ctx.Request.Context(), grid, request.Queries,
		gridastar.WithHeuristic(heuristic), gridastar.WithWorkers(sc.workers))
	if err != nil {
		sc.log.Warning(fmt.Sprintf("Batch of %d queries aborted: %v", len(request.Queries), err))
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}

	resp := BatchResponse{Results: make([]SearchResponse, len(results))}
	for i, r := range results {
		resp.Results[i] = newSearchResponse(r.Result, r.Err)
	}
	resp.ExecutionTime = millisSince(start)
	ctx.JSON(http.StatusOK, resp)
}

func (sc *SearchController) cached(ctx context.Context, key string) (SearchResponse, bool) {
	raw, ok, err := sc.store.Get(ctx, key)
	if err != nil {
		sc.log.Warning(fmt.Sprintf("Cache read failed: %v", err))
		return SearchResponse{}, false
	}
	if !ok {
		return SearchResponse{}, false
	}
	var resp SearchResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		sc.log.Warning(fmt.Sprintf("Dropping undecodable cache entry: %v", err))
		return SearchResponse{}, false
	}
	resp.Cached = true
	return resp, true
}

func (sc *SearchController) remember(ctx context.Context, key string, resp SearchResponse) {
	raw, err := json.Marshal(resp)
	if err != nil {
		sc.log.Error(fmt.Sprintf("Encoding search response: %v", err))
		return
	}
	if err := sc.store.Set(ctx, key, raw); err != nil {
		sc.log.Warning(fmt.Sprintf("Cache write failed: %v", err))
	}
}

// heuristicName canonicalises the heuristic for cache keys.
func heuristicName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return "euclidean"
	}
	return name
}
