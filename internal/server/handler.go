package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/san-kum/sonarlab/internal/catalog"
	"github.com/san-kum/sonarlab/internal/config"
	"github.com/san-kum/sonarlab/internal/formula"
	"github.com/san-kum/sonarlab/internal/observability"
	"github.com/san-kum/sonarlab/internal/storage"
	"github.com/san-kum/sonarlab/internal/sweep"
)

// maxSweepSteps bounds the work a single request can ask for.
const maxSweepSteps = 10000

type Handler struct {
	reg     *catalog.Registry
	cfg     *config.Config
	store   *storage.Store
	runner  *sweep.Runner
	log     logrus.FieldLogger
	metrics *observability.Metrics
}

// statusFor maps catalog errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, formula.ErrUnknownFormula), errors.Is(err, storage.ErrRunNotFound):
		return http.StatusNotFound
	case errors.Is(err, formula.ErrNoTableEntry):
		return http.StatusUnprocessableEntity
	case errors.Is(err, formula.ErrInvalidInput), errors.Is(err, sweep.ErrBadRequest):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) fail(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		h.log.WithError(err).Error("request failed")
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

type FormulaSummary struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Summary  string `json:"summary"`
	Unit     string `json:"unit"`
	Arity    int    `json:"arity"`
}

// ListFormulas handles GET /v1/formulas.
func (h *Handler) ListFormulas(c *gin.Context) {
	category := c.Query("category")
	out := make([]FormulaSummary, 0, h.reg.Len())
	for _, s := range h.reg.Specs() {
		if category != "" && s.Category != category {
			continue
		}
		out = append(out, FormulaSummary{
			Name:     s.Name,
			Category: s.Category,
			Summary:  s.Summary,
			Unit:     s.Unit(),
			Arity:    s.Arity(),
		})
	}
	c.JSON(http.StatusOK, gin.H{"formulas": out, "count": len(out)})
}

// GetFormula handles GET /v1/formulas/:name.
func (h *Handler) GetFormula(c *gin.Context) {
	s, err := h.reg.Lookup(c.Param("name"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

type EvaluateRequest struct {
	Args       []float64          `json:"args"`
	Params     map[string]float64 `json:"params"`
	Preset     string             `json:"preset"`
	Correction *float64           `json:"correction"`
}

type EvaluateResponse struct {
	Formula     string               `json:"formula"`
	Args        []float64            `json:"args"`
	Outputs     []formula.Output     `json:"outputs"`
	Values      []any                `json:"values"`
	Diagnostics []formula.Diagnostic `json:"diagnostics"`
}

// resolveArgs applies, in order: defaults, preset roles, named params. Positional
// args replace all of them.
func (h *Handler) resolveArgs(s *formula.Spec, req EvaluateRequest) ([]float64, error) {
	if req.Args != nil {
		if req.Params != nil || req.Preset != "" {
			return nil, fmt.Errorf("%w: args cannot be combined with params or preset", formula.ErrInvalidInput)
		}
		return req.Args, nil
	}
	var roles map[string]float64
	if req.Preset != "" {
		env, ok := h.cfg.Preset(req.Preset)
		if !ok {
			return nil, fmt.Errorf("%w: unknown preset %q", formula.ErrInvalidInput, req.Preset)
		}
		roles = env.Roles()
	}
	return catalog.BindWith(s, roles, req.Params)
}

// Evaluate handles POST /v1/formulas/:name/evaluate.
func (h *Handler) Evaluate(c *gin.Context) {
	name := c.Param("name")
	s, err := h.reg.Lookup(name)
	if err != nil {
		h.metrics.RecordEvaluation(name, formula.Result{}, err)
		h.fail(c, err)
		return
	}

	// an empty body evaluates at the default sample
	var req EvaluateRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid request body: %v", err)})
			return
		}
	}

	args, err := h.resolveArgs(s, req)
	if err != nil {
		h.fail(c, err)
		return
	}

	correction := formula.None()
	if req.Correction != nil {
		correction = formula.Constant(*req.Correction)
	}

	res, err := s.EvaluateCorrected(correction, args...)
	h.metrics.RecordEvaluation(s.Name, res, err)
	if err != nil {
		h.fail(c, err)
		return
	}
	observability.LogDiagnostics(h.log, res.Diagnostics)

	diags := res.Diagnostics
	if diags == nil {
		diags = []formula.Diagnostic{}
	}
	c.JSON(http.StatusOK, EvaluateResponse{
		Formula:     s.Name,
		Args:        args,
		Outputs:     s.Outputs,
		Values:      formula.JSONValues(res.Outputs),
		Diagnostics: diags,
	})
}

type SweepRequest struct {
	Param string             `json:"param" binding:"required"`
	From  float64            `json:"from"`
	To    float64            `json:"to"`
	Steps int                `json:"steps"`
	Fixed map[string]float64 `json:"fixed"`
	Save  bool               `json:"save"`
}

type SweepPoint struct {
	X           float64              `json:"x"`
	Values      []any                `json:"values"`
	Diagnostics []formula.Diagnostic `json:"diagnostics,omitempty"`
}

// Sweep handles POST /v1/formulas/:name/sweep.
func (h *Handler) Sweep(c *gin.Context) {
	var body SweepRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid request body: %v", err)})
		return
	}
	if body.Steps == 0 {
		body.Steps = h.cfg.Sweep.Steps
	}
	if body.Steps > maxSweepSteps {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("steps must not exceed %d", maxSweepSteps)})
		return
	}

	req := sweep.Request{
		Formula: c.Param("name"),
		Param:   body.Param,
		From:    body.From,
		To:      body.To,
		Steps:   body.Steps,
		Fixed:   body.Fixed,
	}
	start := time.Now()
	res, err := h.runner.Run(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.metrics.SweepDuration.Observe(time.Since(start).Seconds())
	h.metrics.SweepPoints.Add(float64(len(res.Points)))

	points := make([]SweepPoint, len(res.Points))
	for i, p := range res.Points {
		points[i] = SweepPoint{X: p.X, Values: formula.JSONValues(p.Outputs), Diagnostics: p.Diagnostics}
	}
	resp := gin.H{
		"formula":    res.Formula,
		"param":      res.Param,
		"param_unit": res.ParamUnit,
		"outputs":    res.Outputs,
		"points":     points,
	}

	if body.Save {
		if h.store == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "run storage is not configured"})
			return
		}
		id, err := h.store.Save(req, res)
		if err != nil {
			h.fail(c, err)
			return
		}
		resp["run_id"] = id
	}
	c.JSON(http.StatusOK, resp)
}

// ListPresets handles GET /v1/presets.
func (h *Handler) ListPresets(c *gin.Context) {
	out := make(map[string]config.Environment)
	for _, name := range h.cfg.ListPresets() {
		env, _ := h.cfg.Preset(name)
		out[name] = env
	}
	c.JSON(http.StatusOK, gin.H{"presets": out, "default": h.cfg.Environment})
}

// ListRuns handles GET /v1/runs.
func (h *Handler) ListRuns(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusOK, gin.H{"runs": []storage.RunMetadata{}})
		return
	}
	runs, err := h.store.List()
	if err != nil {
		h.fail(c, err)
		return
	}
	if limit, err := strconv.Atoi(c.DefaultQuery("limit", "0")); err == nil && limit > 0 && limit < len(runs) {
		runs = runs[:limit]
	}
	c.JSON(http.StatusOK, gin.H{"runs": runs})
}

// GetRun handles GET /v1/runs/:id.
func (h *Handler) GetRun(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "run storage is not configured"})
		return
	}
	c.Header("Content-Type", "application/json; charset=utf-8")
	if err := h.store.ExportJSON(c.Writer, c.Param("id")); err != nil {
		h.fail(c, err)
	}
}

// HealthCheck handles GET /health.
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"formulas": h.reg.Len(),
	})
}
