package httpadapter

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"pushworld/internal/app/ports"
	"pushworld/internal/app/solve"
	"pushworld/internal/domain/pushworld"
)

type Handler struct {
	SolveUC solve.UseCase
	Records ports.SolveRecordRepository
	KPI     kpiSnapshotProvider
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware())

	api := s.Group("/api")
	api.POST("/solve", h.solve)
	api.GET("/plans/:run_id", h.plan)
	api.GET("/plans", h.plansByPuzzle)

	s.GET("/ops/kpi", h.kpi)
}

type solveRequest struct {
	Puzzle     string `json:"puzzle"`
	PuzzleName string `json:"puzzle_name,omitempty"`
	Mode       string `json:"mode"`
}

type solveResponse struct {
	RunID         string `json:"run_id"`
	Solved        bool   `json:"solved"`
	Plan          string `json:"plan"`
	PlanLength    int    `json:"plan_length"`
	VisitedStates int    `json:"visited_states"`
	DurationMS    int64  `json:"duration_ms"`
}

func (h Handler) solve(c context.Context, ctx *app.RequestContext) {
	var body solveRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	if body.Puzzle == "" {
		writeErrorBody(ctx, consts.StatusBadRequest, "missing_puzzle", "puzzle text is required")
		return
	}

	resp, err := h.SolveUC.Execute(c, solve.Request{
		PuzzleText: body.Puzzle,
		PuzzleName: body.PuzzleName,
		Mode:       body.Mode,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(consts.StatusOK, solveResponse{
		RunID:         resp.RunID,
		Solved:        resp.Solved,
		Plan:          resp.Plan,
		PlanLength:    resp.PlanLength,
		VisitedStates: resp.VisitedStates,
		DurationMS:    resp.Duration.Milliseconds(),
	})
}

func (h Handler) plan(c context.Context, ctx *app.RequestContext) {
	if h.Records == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "record repository not configured")
		return
	}
	runID := string(ctx.Param("run_id"))
	record, err := h.Records.GetByRunID(c, runID)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, record)
}

func (h Handler) plansByPuzzle(c context.Context, ctx *app.RequestContext) {
	if h.Records == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "record repository not configured")
		return
	}
	puzzleName := string(ctx.Query("puzzle"))
	if puzzleName == "" {
		writeErrorBody(ctx, consts.StatusBadRequest, "missing_puzzle", "puzzle query parameter is required")
		return
	}
	limit := 20
	records, err := h.Records.ListByPuzzle(c, puzzleName, limit)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, records)
}

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi provider not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, errorBody{Code: code, Message: message})
}

func writeError(ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, pushworld.ErrInvalidPuzzle):
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_puzzle", err.Error())
	case errors.Is(err, solve.ErrUnknownMode):
		writeErrorBody(ctx, consts.StatusBadRequest, "unknown_mode", err.Error())
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", "not found")
	case errors.Is(err, ports.ErrConflict):
		writeErrorBody(ctx, consts.StatusConflict, "conflict", "conflict")
	default:
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}
