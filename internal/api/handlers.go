package api

import (
	"errors"
	"net/http"

	"github.com/aslearntocode/financial-health-sub000/internal/calculation"
	"github.com/aslearntocode/financial-health-sub000/internal/domain"
	"github.com/aslearntocode/financial-health-sub000/internal/session"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type impactRequest struct {
	Action    string           `json:"action"`
	Magnitude *decimal.Decimal `json:"magnitude"`
}

type recordRequest struct {
	Action       string           `json:"action"`
	CurrentValue *decimal.Decimal `json:"current_value"`
	NewValue     *decimal.Decimal `json:"new_value"`
}

type corpusRequest struct {
	domain.CorpusProjectionInput
	IncludeSchedule bool `json:"include_schedule"`
}

type corpusResponse struct {
	Projection domain.CorpusProjection `json:"projection"`
	Schedule   []domain.YearlyBalance  `json:"schedule,omitempty"`
}

type requiredSavingsRequest struct {
	Target                      decimal.Decimal `json:"target"`
	CurrentSavings              decimal.Decimal `json:"current_savings"`
	Years                       decimal.Decimal `json:"years"`
	ExpectedAnnualReturnPercent decimal.Decimal `json:"expected_annual_return_percent"`
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}

func (s *Server) sessionError(c *gin.Context, err error) {
	if errors.Is(err, session.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
	s.logger.Errorf("session store: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleActions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"max_score": domain.MaxScore,
		"actions":   calculation.ImpactWeights(),
	})
}

func (s *Server) handleImpact(c *gin.Context) {
	var req impactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	kind, err := domain.ParseActionKind(req.Action)
	if err != nil {
		badRequest(c, err.Error())
		return
	}
	if req.Magnitude == nil {
		badRequest(c, "magnitude is required")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"action":    kind,
		"magnitude": req.Magnitude,
		"impact":    calculation.CalculateImpact(kind, *req.Magnitude),
		"cap":       calculation.ImpactCap(kind),
	})
}

func (s *Server) handleCreateSession(c *gin.Context) {
	id, err := s.sessions.Create(c.Request.Context())
	if err != nil {
		s.sessionError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"session_id": id})
}

func (s *Server) handleGetSession(c *gin.Context) {
	base := decimal.Zero
	if raw := c.Query("base_score"); raw != "" {
		parsed, err := decimal.NewFromString(raw)
		if err != nil {
			badRequest(c, "base_score must be a number")
			return
		}
		base = parsed
	}

	report, err := s.sessions.Report(c.Request.Context(), c.Param("id"), base)
	if err != nil {
		s.sessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (s *Server) handleEndSession(c *gin.Context) {
	if err := s.sessions.End(c.Request.Context(), c.Param("id")); err != nil {
		s.sessionError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleRecord(c *gin.Context) {
	var req recordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	if req.NewValue == nil {
		badRequest(c, "new_value is required")
		return
	}
	current := decimal.Zero
	if req.CurrentValue != nil {
		current = *req.CurrentValue
	}
	step := domain.SimulationStep{Action: domain.ActionKind(req.Action), CurrentValue: current, NewValue: *req.NewValue}
	kind, err := s.parser.ValidateSimulationStep(step)
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	action, err := s.sessions.Record(c.Request.Context(), c.Param("id"), kind, current, *req.NewValue)
	if err != nil {
		s.sessionError(c, err)
		return
	}
	c.JSON(http.StatusCreated, action)
}

func (s *Server) handleClear(c *gin.Context) {
	if err := s.sessions.Clear(c.Request.Context(), c.Param("id")); err != nil {
		s.sessionError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleProjection(c *gin.Context) {
	var req corpusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	if err := s.parser.ValidateCorpusInput(req.CorpusProjectionInput); err != nil {
		badRequest(c, err.Error())
		return
	}

	resp := corpusResponse{Projection: calculation.ProjectCorpusDetailed(req.CorpusProjectionInput)}
	if req.IncludeSchedule {
		resp.Schedule = calculation.ProjectCorpusSchedule(req.CorpusProjectionInput)
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleRequiredSavings(c *gin.Context) {
	var req requiredSavingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	if !req.Target.IsPositive() {
		badRequest(c, "target must be positive")
		return
	}
	input := domain.CorpusProjectionInput{
		CurrentSavings:              req.CurrentSavings,
		Years:                       req.Years,
		ExpectedAnnualReturnPercent: req.ExpectedAnnualReturnPercent,
	}
	if err := s.parser.ValidateCorpusInput(input); err != nil {
		badRequest(c, err.Error())
		return
	}

	required, err := calculation.RequiredMonthlySavings(req.Target, req.CurrentSavings, req.Years, req.ExpectedAnnualReturnPercent)
	if err != nil {
		badRequest(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"target":                   req.Target,
		"required_monthly_savings": required,
	})
}
