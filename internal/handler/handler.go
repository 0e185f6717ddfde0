package handler

import (
	"errors"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/valyala/fasthttp"

	"comp-engine/internal/engine"
	"comp-engine/internal/format"
	"comp-engine/internal/locale"
	"comp-engine/internal/model"
	"comp-engine/internal/scenario"
)

type Handler struct {
	rates     *locale.Registry
	scenarios *scenario.Store
}

func New(rates *locale.Registry, scenarios *scenario.Store) *Handler {
	return &Handler{rates: rates, scenarios: scenarios}
}

// Handle routes all API traffic.
func (h *Handler) Handle(ctx *fasthttp.RequestCtx) {
	path := string(ctx.Path())
	method := string(ctx.Method())

	switch {
	case path == "/api/convert" && method == fasthttp.MethodPost:
		h.convert(ctx)
	case path == "/api/project" && method == fasthttp.MethodPost:
		h.project(ctx)
	case path == "/api/scenarios" && method == fasthttp.MethodPost:
		h.saveScenario(ctx)
	case path == "/api/scenarios" && method == fasthttp.MethodGet:
		h.listScenarios(ctx)
	case path == "/api/scenarios" && method == fasthttp.MethodDelete:
		h.clearScenarios(ctx)
	default:
		writeError(ctx, fasthttp.StatusNotFound, "Not found")
	}
}

func (h *Handler) convert(ctx *fasthttp.RequestCtx) {
	start := time.Now()

	var req model.ConvertRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	params, source, target, err := h.rates.Resolve(req.SourceLocation, req.Overrides)
	if err != nil {
		writeJSON(ctx, fasthttp.StatusBadRequest, model.ConvertResponse{
			CalculationMetadata: metadata(start, model.OutcomeFailure),
			CalculationResult:   model.ConvertResult{Messages: failureMessages(err)},
		})
		return
	}

	targetPkg, trace, err := engine.Convert(req.Package, params)
	if err != nil {
		writeJSON(ctx, fasthttp.StatusBadRequest, model.ConvertResponse{
			CalculationMetadata: metadata(start, model.OutcomeFailure),
			CalculationResult:   model.ConvertResult{Messages: failureMessages(err)},
		})
		return
	}

	// Validated above alongside the conversion inputs, so neither call can
	// fail here.
	sourceMonthly, _ := engine.Monthly(req.Package, params.SourceTaxRate)
	targetMonthly, _ := engine.Monthly(targetPkg, params.TargetTaxRate)

	sourceTotal := req.Package.Total()
	targetTotal := targetPkg.Total()

	writeJSON(ctx, fasthttp.StatusOK, model.ConvertResponse{
		CalculationMetadata: metadata(start, model.OutcomeSuccess),
		CalculationResult: model.ConvertResult{
			Messages:           []model.CalculationMessage{},
			SourceLocation:     source.Name,
			TargetLocation:     target.Name,
			SourceCurrency:     source.Currency,
			TargetCurrency:     target.Currency,
			Parameters:         &params,
			SourcePackage:      &req.Package,
			TargetPackage:      &targetPkg,
			SourceTotal:        sourceTotal,
			TargetTotal:        targetTotal,
			SourceTotalDisplay: format.Amount(sourceTotal, source.Currency),
			TargetTotalDisplay: format.Amount(targetTotal, target.Currency),
			Trace:              trace,
			SourceMonthly:      &sourceMonthly,
			TargetMonthly:      &targetMonthly,
		},
	})
}

func (h *Handler) project(ctx *fasthttp.RequestCtx) {
	start := time.Now()

	var req model.ProjectRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	params, source, target, err := h.rates.Resolve(req.SourceLocation, req.Overrides)
	if err != nil {
		writeJSON(ctx, fasthttp.StatusBadRequest, model.ProjectResponse{
			CalculationMetadata: metadata(start, model.OutcomeFailure),
			CalculationResult:   model.ProjectResult{Messages: failureMessages(err)},
		})
		return
	}

	records, err := engine.Project(req.Package, params, req.Growth, req.Years)
	if err != nil {
		writeJSON(ctx, fasthttp.StatusBadRequest, model.ProjectResponse{
			CalculationMetadata: metadata(start, model.OutcomeFailure),
			CalculationResult:   model.ProjectResult{Messages: failureMessages(err)},
		})
		return
	}

	writeJSON(ctx, fasthttp.StatusOK, model.ProjectResponse{
		CalculationMetadata: metadata(start, model.OutcomeSuccess),
		CalculationResult: model.ProjectResult{
			Messages:       []model.CalculationMessage{},
			SourceLocation: source.Name,
			TargetLocation: target.Name,
			SourceCurrency: source.Currency,
			TargetCurrency: target.Currency,
			Parameters:     &params,
			Records:        records,
		},
	})
}

func (h *Handler) saveScenario(ctx *fasthttp.RequestCtx) {
	var req model.SaveScenarioRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	params, source, target, err := h.rates.Resolve(req.SourceLocation, req.Overrides)
	if err != nil {
		writeValidationError(ctx, err)
		return
	}

	targetPkg, _, err := engine.Convert(req.Package, params)
	if err != nil {
		writeValidationError(ctx, err)
		return
	}

	saved := h.scenarios.Save(scenario.Scenario{
		Label:          req.Label,
		SourceLocation: source.Name,
		TargetLocation: target.Name,
		SourceCurrency: source.Currency,
		TargetCurrency: target.Currency,
		Package:        req.Package,
		SourceTotal:    req.Package.Total(),
		TargetTotal:    targetPkg.Total(),
	})

	writeJSON(ctx, fasthttp.StatusCreated, saved)
}

func (h *Handler) listScenarios(ctx *fasthttp.RequestCtx) {
	writeJSON(ctx, fasthttp.StatusOK, h.scenarios.List())
}

func (h *Handler) clearScenarios(ctx *fasthttp.RequestCtx) {
	h.scenarios.Clear()
	ctx.SetStatusCode(fasthttp.StatusNoContent)
}

func metadata(start time.Time, outcome string) model.CalculationMetadata {
	completed := time.Now().UTC()
	return model.CalculationMetadata{
		CalculationID:          uuid.New().String(),
		CalculationStartedAt:   start.UTC().Format(time.RFC3339),
		CalculationCompletedAt: completed.Format(time.RFC3339),
		CalculationDurationMs:  time.Since(start).Milliseconds(),
		CalculationOutcome:     outcome,
	}
}

// failureMessages maps an engine validation error to the response message
// list.
func failureMessages(err error) []model.CalculationMessage {
	var ve *engine.ValidationError
	if errors.As(err, &ve) {
		return []model.CalculationMessage{{
			Level:   model.LevelCritical,
			Code:    ve.Code,
			Field:   ve.Field,
			Message: ve.Error(),
		}}
	}
	return []model.CalculationMessage{{
		Level:   model.LevelCritical,
		Code:    "INTERNAL",
		Message: err.Error(),
	}}
}

func writeValidationError(ctx *fasthttp.RequestCtx, err error) {
	msgs := failureMessages(err)
	writeJSON(ctx, fasthttp.StatusBadRequest, model.ErrorResponse{
		Status:  fasthttp.StatusBadRequest,
		Message: msgs[0].Message,
	})
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v interface{}) {
	body, err := json.Marshal(v)
	if err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, "Encoding failed: "+err.Error())
		return
	}
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	ctx.SetBody(body)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	body, _ := json.Marshal(model.ErrorResponse{Status: status, Message: message})
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	ctx.SetBody(body)
}
