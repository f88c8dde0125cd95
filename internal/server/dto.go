package server

import (
	"github.com/pdrpinto/gridastar"
)

// SearchRequest asks for one path on a 0/1 grid (1 = passable).
type SearchRequest struct {
	Grid        [][]int              `json:"grid" binding:"required"`
	Source      gridastar.Coordinate `json:"source"`
	Destination gridastar.Coordinate `json:"destination"`
	Heuristic   string               `json:"heuristic"`
}

// SearchResponse reports one search.
type SearchResponse struct {
	Outcome       string                 `json:"outcome"`
	Path          []gridastar.Coordinate `json:"path,omitempty"`
	Steps         int                    `json:"steps"`
	ExpandedNodes int                    `json:"expandedNodes"`
	Message       string                 `json:"message,omitempty"`
	ExecutionTime float64                `json:"executionTimeMs"`
	Cached        bool                   `json:"cached"`
}

// BatchRequest asks for several paths on the same grid.
type BatchRequest struct {
	Grid      [][]int           `json:"grid" binding:"required"`
	Queries   []gridastar.Query `json:"queries" binding:"required"`
	Heuristic string            `json:"heuristic"`
}

// BatchResponse lists results in query order.
type BatchResponse struct {
	Results       []SearchResponse `json:"results"`
	ExecutionTime float64          `json:"executionTimeMs"`
}

// CreateSessionRequest starts a step-by-step search. Without a grid a random
// one is generated from Rows, Cols, Clusters, Walk and Density.
type CreateSessionRequest struct {
	Grid        [][]int               `json:"grid"`
	Source      *gridastar.Coordinate `json:"source"`
	Destination *gridastar.Coordinate `json:"destination"`
	Heuristic   string                `json:"heuristic"`
	Rows        int                   `json:"rows"`
	Cols        int                   `json:"cols"`
	Clusters    int                   `json:"clusters"`
	Walk        int                   `json:"walk"`
	Density     float64               `json:"density"`
	Seed        int64                 `json:"seed"`
}

// SessionResponse describes a created session.
type SessionResponse struct {
	ID          string               `json:"id"`
	Rows        int                  `json:"rows"`
	Cols        int                  `json:"cols"`
	Grid        [][]int              `json:"grid"`
	Source      gridastar.Coordinate `json:"source"`
	Destination gridastar.Coordinate `json:"destination"`
	Done        bool                 `json:"done"`
	Outcome     string               `json:"outcome,omitempty"`
}

// SnapshotResponse is one stepper iteration.
type SnapshotResponse struct {
	Step    int                    `json:"step"`
	Current gridastar.Coordinate   `json:"current"`
	Open    []gridastar.Coordinate `json:"open,omitempty"`
	Closed  []gridastar.Coordinate `json:"closed,omitempty"`
	Done    bool                   `json:"done"`
	Outcome string                 `json:"outcome,omitempty"`
	Path    []gridastar.Coordinate `json:"path,omitempty"`
}

func newSearchResponse(res gridastar.Result, err error) SearchResponse {
	resp := SearchResponse{
		Outcome:       res.Outcome.String(),
		Path:          res.Path,
		Steps:         res.Steps,
		ExpandedNodes: res.ExpandedNodes,
	}
	if err != nil {
		resp.Message = err.Error()
	}
	return resp
}

func newSnapshotResponse(snap gridastar.StepSnapshot) SnapshotResponse {
	resp := SnapshotResponse{
		Step:    snap.StepIndex,
		Current: snap.Current,
		Open:    snap.Open,
		Closed:  snap.Closed,
		Done:    snap.Done,
	}
	if snap.Done {
		resp.Outcome = snap.Outcome.String()
		resp.Path = snap.Path
	}
	return resp
}
