package server

import (
	"bytes"
	"fmt"
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pdrpinto/gridastar"
	"github.com/pdrpinto/gridastar/internal/logger"
	"github.com/pdrpinto/gridastar/internal/render"
)

// SessionController drives step-by-step searches for the visualiser.
type SessionController struct {
	sessions *sessionStore
	log      *logger.Logger
	limits   gridLimits
}

// NewSessionController initializes a SessionController.
func NewSessionController(sessions *sessionStore, log *logger.Logger, limits gridLimits) *SessionController {
	return &SessionController{sessions: sessions, log: log, limits: limits}
}

// Register registers the session routes.
func (sc *SessionController) Register(route *gin.RouterGroup) {
	sessions := route.Group("/sessions")
	{
		sessions.POST("", sc.create)
		sessions.POST("/:ID/step", sc.step)
		sessions.GET("/:ID/render.png", sc.render)
		sessions.DELETE("/:ID", sc.remove)
	}
}

func (sc *SessionController) create(ctx *gin.Context) {
	var request CreateSessionRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	heuristic, err := gridastar.HeuristicByName(request.Heuristic)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s, err := sc.newSession(request)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// A blocked endpoint leaves the stepper done; the client sees that in the response.
	stepper, err := gridastar.NewStepper(s.grid, s.source, s.destination, gridastar.WithHeuristic(heuristic))
	if stepper == nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.stepper = stepper

	id, evicted := sc.sessions.add(s)
	if evicted != uuid.Nil {
		sc.log.Info(fmt.Sprintf("Evicted session %s", evicted))
	}
	sc.log.Info(fmt.Sprintf("Created session %s (%dx%d)", id, s.grid.Rows(), s.grid.Cols()))

	resp := SessionResponse{
		ID:          id.String(),
		Rows:        s.grid.Rows(),
		Cols:        s.grid.Cols(),
		Grid:        s.grid.Rows2D(),
		Source:      s.source,
		Destination: s.destination,
		Done:        stepper.Done(),
	}
	if res, ok := stepper.Result(); ok {
		resp.Outcome = res.Outcome.String()
	}
	ctx.JSON(http.StatusCreated, resp)
}

func (sc *SessionController) newSession(request CreateSessionRequest) (*session, error) {
	s := &session{createdAt: time.Now()}
	if request.Grid != nil {
		grid, err := sc.limits.build(request.Grid)
		if err != nil {
			return nil, err
		}
		if request.Source == nil || request.Destination == nil {
			return nil, fmt.Errorf("source and destination are required with an explicit grid")
		}
		s.grid, s.source, s.destination = grid, *request.Source, *request.Destination
		return s, nil
	}

	rows, cols := orDefault(request.Rows, defaultRows), orDefault(request.Cols, defaultCols)
	if sc.limits.exceeds(rows, cols) {
		return nil, fmt.Errorf("%w: grid larger than %d cells", gridastar.ErrInvalidDimensions, sc.limits.maxCells)
	}
	seed := request.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	source, destination := randomEndpoints(rng, rows, cols)
	if request.Source != nil {
		source = *request.Source
	}
	if request.Destination != nil {
		destination = *request.Destination
	}
	density := request.Density
	if density <= 0 || density > 1 {
		density = defaultDensity
	}
	grid, err := randomGrid(rng, rows, cols,
		orDefault(request.Clusters, defaultClusters), orDefault(request.Walk, defaultWalk),
		density, source, destination)
	if err != nil {
		return nil, err
	}
	s.grid, s.source, s.destination = grid, source, destination
	return s, nil
}

func (sc *SessionController) lookup(ctx *gin.Context) (uuid.UUID, *session, bool) {
	id, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid session id"})
		return uuid.Nil, nil, false
	}
	s, err := sc.sessions.get(id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return uuid.Nil, nil, false
	}
	return id, s, true
}

func (sc *SessionController) step(ctx *gin.Context) {
	id, s, ok := sc.lookup(ctx)
	if !ok {
		return
	}
	s.mu.Lock()
	snap := s.stepper.Step()
	s.mu.Unlock()

	if snap.Done {
		sc.log.Debug(fmt.Sprintf("Session %s finished after %d steps: %s", id, snap.StepIndex, snap.Outcome))
	}
	ctx.JSON(http.StatusOK, newSnapshotResponse(snap))
}

func (sc *SessionController) render(ctx *gin.Context) {
	_, s, ok := sc.lookup(ctx)
	if !ok {
		return
	}
	scale := 12
	if v, err := strconv.Atoi(ctx.Query("scale")); err == nil && v > 0 && v <= 64 {
		scale = v
	}

	s.mu.Lock()
	snap := s.stepper.Snapshot()
	s.mu.Unlock()

	var buf bytes.Buffer
	err := render.PNG(&buf, render.Scene{
		Grid:        s.grid,
		Source:      s.source,
		Destination: s.destination,
		Path:        snap.Path,
		Open:        snap.Open,
		Closed:      snap.Closed,
	}, scale)
	if err != nil {
		sc.log.Error(fmt.Sprintf("Rendering session: %v", err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "render failed"})
		return
	}
	ctx.Data(http.StatusOK, "image/png", buf.Bytes())
}

func (sc *SessionController) remove(ctx *gin.Context) {
	id, _, ok := sc.lookup(ctx)
	if !ok {
		return
	}
	if err := sc.sessions.remove(id); err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	sc.log.Info(fmt.Sprintf("Removed session %s", id))
	ctx.Status(http.StatusNoContent)
}

func orDefault(v, def int) int {
	if v > 0 {
		return v
	}
	return def
}
