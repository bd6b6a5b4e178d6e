package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/slatehealth/health-plan-backend/internal/agent"
	"github.com/slatehealth/health-plan-backend/internal/model"
	"github.com/slatehealth/health-plan-backend/internal/queue"
	"github.com/slatehealth/health-plan-backend/internal/repository"
)

// PlanStore is the storage surface the plan handlers need. It is satisfied
// by *repository.PlanRepo; tests substitute an in-memory fake.
type PlanStore interface {
	Create(ctx context.Context, planID string, planData, metadata json.RawMessage) (model.PlanRecord, error)
	GetByPlanID(ctx context.Context, planID string) (model.PlanRecord, error)
	ListActive(ctx context.Context) ([]model.PlanRecord, error)
	ListByCategory(ctx context.Context, category string) ([]model.PlanRecord, error)
	Update(ctx context.Context, planID string, planData, metadata json.RawMessage) error
	Deactivate(ctx context.Context, planID string) error
	Delete(ctx context.Context, planID string) error
}

// Generator runs the plan generation pipeline. Satisfied by
// *agent.Orchestrator.
type Generator interface {
	GeneratePlan(ctx context.Context, req model.PlanRequest) (agent.GeneratedPlan, error)
}

// PlanHandler serves the plan API. Publish may be nil when no broker is
// configured; publishing is best-effort and never blocks the response.
type PlanHandler struct {
	Store     PlanStore
	Generator Generator
	Publish   func(ctx context.Context, ev queue.PlanGeneratedEvent) error
}

// planEntry is a discovery payload value. Discovery returns the full plan
// documents keyed by plan_id so clients can index directly.
type planEntry struct {
	Plan      json.RawMessage `json:"plan"`
	Metadata  json.RawMessage `json:"metadata"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// planDetail is the full record returned when fetching a single plan.
type planDetail struct {
	PlanID    string          `json:"plan_id"`
	Plan      json.RawMessage `json:"plan"`
	Metadata  json.RawMessage `json:"metadata"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Generate handles POST /api/v1/plans/generate. The request either carries
// structured parameters (population plus goals) or a free-text prompt the
// pipeline turns into parameters. The generated plan is stored and the
// stored document echoed back together with its safety report.
func (h *PlanHandler) Generate(c echo.Context) error {
	ctx := c.Request().Context()

	var req model.PlanRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	if req.Prompt == "" && req.Population == "" {
		return fail(c, http.StatusBadRequest, "population or prompt is required")
	}
	if req.Prompt == "" && len(req.Goals) == 0 {
		return fail(c, http.StatusBadRequest, "at least one goal is required")
	}

	gen, err := h.Generator.GeneratePlan(ctx, req)
	if err != nil {
		log.Printf("handler: plan generation failed: %v", err)
		return fail(c, http.StatusInternalServerError, "plan generation failed")
	}

	planData, err := json.Marshal(gen.Plan)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "plan encoding failed")
	}
	metadata, err := json.Marshal(echo.Map{
		"category":         gen.Request.Population,
		"goals":            gen.Request.Goals,
		"timeline":         gen.Request.Timeline,
		"fitness_level":    gen.Request.FitnessLevel,
		"overall_safety":   gen.Safety.OverallSafety,
		"validation_score": gen.Safety.ValidationScore,
		"motivation":       gen.Motivation,
		"generated_at":     time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return fail(c, http.StatusInternalServerError, "metadata encoding failed")
	}

	rec, err := h.Store.Create(ctx, gen.PlanID, planData, metadata)
	if errors.Is(err, repository.ErrPlanExists) {
		// Slug collision with an existing plan: retry once with a unique suffix.
		rec, err = h.Store.Create(ctx, gen.PlanID+"_"+uuid.NewString()[:8], planData, metadata)
	}
	if err != nil {
		log.Printf("handler: plan store failed: %v", err)
		return fail(c, http.StatusInternalServerError, "database error")
	}

	h.publishGenerated(rec.PlanID, gen, c)

	return respond(c, http.StatusCreated, "plan generated successfully", planDetail{
		PlanID:    rec.PlanID,
		Plan:      rec.PlanData,
		Metadata:  rec.Metadata,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	})
}

// publishGenerated fires the plan.generated event in the background so a
// slow or absent broker never delays the HTTP response.
func (h *PlanHandler) publishGenerated(planID string, gen agent.GeneratedPlan, c echo.Context) {
	if h.Publish == nil {
		return
	}
	requestedBy, _ := c.Get("user_id").(string)
	ev := queue.PlanGeneratedEvent{
		PlanID:          planID,
		Population:      gen.Request.Population,
		Goals:           gen.Request.Goals,
		Timeline:        gen.Request.Timeline,
		FitnessLevel:    gen.Request.FitnessLevel,
		OverallSafety:   gen.Safety.OverallSafety,
		ValidationScore: gen.Safety.ValidationScore,
		RequestedBy:     requestedBy,
		GeneratedAt:     time.Now().UTC().Format(time.RFC3339),
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = h.Publish(ctx, ev)
	}()
}

// Discover handles GET /api/v1/plans/discover and returns every active plan
// document keyed by plan_id.
func (h *PlanHandler) Discover(c echo.Context) error {
	ctx := c.Request().Context()
	plans, err := h.Store.ListActive(ctx)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "database error")
	}
	return respond(c, http.StatusOK, "plans retrieved", planList(plans))
}

// ByCategory handles GET /api/v1/plans/categories/:category.
func (h *PlanHandler) ByCategory(c echo.Context) error {
	ctx := c.Request().Context()
	category := strings.TrimSpace(c.Param("category"))
	if category == "" {
		return fail(c, http.StatusBadRequest, "category is required")
	}
	plans, err := h.Store.ListByCategory(ctx, category)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "database error")
	}
	return respond(c, http.StatusOK, "plans retrieved", planList(plans))
}

// GetByID handles GET /api/v1/plans/:plan_id and returns the full plan
// document.
func (h *PlanHandler) GetByID(c echo.Context) error {
	ctx := c.Request().Context()
	planID := c.Param("plan_id")
	rec, err := h.Store.GetByPlanID(ctx, planID)
	if err != nil {
		if errors.Is(err, repository.ErrPlanNotFound) {
			return fail(c, http.StatusNotFound, "plan not found")
		}
		return fail(c, http.StatusInternalServerError, "database error")
	}
	return respond(c, http.StatusOK, "plan retrieved", planDetail{
		PlanID:    rec.PlanID,
		Plan:      rec.PlanData,
		Metadata:  rec.Metadata,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	})
}

// updateRequest is the body of PUT /api/v1/plans/:plan_id. Plan is required;
// metadata is merged in full when present.
type updateRequest struct {
	Plan     json.RawMessage `json:"plan"`
	Metadata json.RawMessage `json:"metadata,omitempty"`
}

// Update handles PUT /api/v1/plans/:plan_id (authenticated). The plan body
// is replaced wholesale; partial edits are a client concern.
func (h *PlanHandler) Update(c echo.Context) error {
	ctx := c.Request().Context()
	planID := c.Param("plan_id")

	var req updateRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	if len(req.Plan) == 0 || !json.Valid(req.Plan) {
		return fail(c, http.StatusBadRequest, "plan document is required")
	}
	if req.Metadata != nil && !json.Valid(req.Metadata) {
		return fail(c, http.StatusBadRequest, "metadata must be valid JSON")
	}

	if err := h.Store.Update(ctx, planID, req.Plan, req.Metadata); err != nil {
		if errors.Is(err, repository.ErrPlanNotFound) {
			return fail(c, http.StatusNotFound, "plan not found")
		}
		return fail(c, http.StatusInternalServerError, "database error")
	}
	return respond(c, http.StatusOK, "plan updated", echo.Map{"plan_id": planID})
}

// Deactivate handles POST /api/v1/plans/:plan_id/deactivate (authenticated).
// Deactivated plans disappear from discovery but stay in the table.
func (h *PlanHandler) Deactivate(c echo.Context) error {
	ctx := c.Request().Context()
	planID := c.Param("plan_id")
	if err := h.Store.Deactivate(ctx, planID); err != nil {
		if errors.Is(err, repository.ErrPlanNotFound) {
			return fail(c, http.StatusNotFound, "plan not found")
		}
		return fail(c, http.StatusInternalServerError, "database error")
	}
	return respond(c, http.StatusOK, "plan deactivated", echo.Map{"plan_id": planID})
}

// Delete handles DELETE /api/v1/plans/:plan_id (authenticated). Unlike
// deactivation this removes the record permanently.
func (h *PlanHandler) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	planID := c.Param("plan_id")
	if err := h.Store.Delete(ctx, planID); err != nil {
		if errors.Is(err, repository.ErrPlanNotFound) {
			return fail(c, http.StatusNotFound, "plan not found")
		}
		return fail(c, http.StatusInternalServerError, "database error")
	}
	return respond(c, http.StatusOK, "plan deleted", echo.Map{"plan_id": planID})
}

func planList(plans []model.PlanRecord) echo.Map {
	out := make(map[string]planEntry, len(plans))
	for _, p := range plans {
		out[p.PlanID] = planEntry{
			Plan:      p.PlanData,
			Metadata:  p.Metadata,
			CreatedAt: p.CreatedAt,
			UpdatedAt: p.UpdatedAt,
		}
	}
	return echo.Map{"plans": out, "total_plans": len(out)}
}
