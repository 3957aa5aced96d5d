package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/MabsIPCA/manalynxAPI-sub001/internal/core/domain"
	"github.com/MabsIPCA/manalynxAPI-sub001/internal/core/ports"
)

// PolicyHandler handles HTTP requests for policy operations.
type PolicyHandler struct {
	service ports.PolicyService
}

func NewPolicyHandler(service ports.PolicyService) *PolicyHandler {
	return &PolicyHandler{service: service}
}

// --- Request types ---

type coverageRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	CapitalEUR  float64 `json:"capital_eur" validate:"required,gt=0"`
}

type createPolicyRequest struct {
	ClientID   int64             `json:"client_id" validate:"required,gt=0"`
	Kind       string            `json:"kind" validate:"required,oneof=vida saude veiculo"`
	PremiumEUR float64           `json:"premium_eur" validate:"required,gt=0"`
	StartDate  time.Time         `json:"start_date" validate:"required"`
	EndDate    time.Time         `json:"end_date" validate:"required"`
	Coverages  []coverageRequest `json:"coverages" validate:"dive"`
}

type updatePolicyStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active cancelled expired"`
}

// List handles GET /policies. Cliente callers only see their own policies.
//
// @Summary      List policies
// @Tags         policies
// @Produce      json
// @Security     BearerAuth
// @Param        kind    query     string  false  "Filter by kind (vida|saude|veiculo)"
// @Param        status  query     string  false  "Filter by status"
// @Success      200     {array}   domain.Policy
// @Failure      401     {object}  errorResponse
// @Router       /policies [get]
func (h *PolicyHandler) List(c echo.Context) error {
	actor, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	filter := ports.PolicyFilter{
		Kind:   domain.PolicyKind(c.QueryParam("kind")),
		Status: domain.PolicyStatus(c.QueryParam("status")),
	}

	policies, err := h.service.List(c.Request().Context(), actor, filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, policies)
}

// Get handles GET /policies/:id.
//
// @Summary      Get a policy
// @Tags         policies
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Policy id"
// @Success      200  {object}  domain.Policy
// @Failure      404  {object}  errorResponse
// @Router       /policies/{id} [get]
func (h *PolicyHandler) Get(c echo.Context) error {
	actor, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	policy, err := h.service.Get(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, policy)
}

// Create handles POST /policies.
//
// @Summary      Create a policy
// @Tags         policies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPolicyRequest  true  "Policy details"
// @Success      201   {object}  domain.Policy
// @Failure      400   {object}  errorResponse
// @Router       /policies [post]
func (h *PolicyHandler) Create(c echo.Context) error {
	actor, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req createPolicyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input := ports.CreatePolicyInput{
		ClientID:   req.ClientID,
		Kind:       domain.PolicyKind(req.Kind),
		PremiumEUR: req.PremiumEUR,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
	}
	for _, cov := range req.Coverages {
		input.Coverages = append(input.Coverages, ports.CoverageInput{
			Name:        cov.Name,
			Description: cov.Description,
			CapitalEUR:  cov.CapitalEUR,
		})
	}

	policy, err := h.service.Create(c.Request().Context(), actor, input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, policy)
}

// UpdateStatus handles PATCH /policies/:id/status.
//
// @Summary      Update policy status
// @Tags         policies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                     true  "Policy id"
// @Param        body  body      updatePolicyStatusRequest  true  "New status"
// @Success      200   {object}  domain.Policy
// @Failure      422   {object}  errorResponse
// @Router       /policies/{id}/status [patch]
func (h *PolicyHandler) UpdateStatus(c echo.Context) error {
	actor, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req updatePolicyStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	policy, err := h.service.UpdateStatus(c.Request().Context(), actor, c.Param("id"), domain.PolicyStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, policy)
}

// Delete handles DELETE /policies/:id.
//
// @Summary      Delete a policy
// @Tags         policies
// @Security     BearerAuth
// @Param        id  path  string  true  "Policy id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /policies/{id} [delete]
func (h *PolicyHandler) Delete(c echo.Context) error {
	actor, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// AddCoverage handles POST /policies/:id/coverages.
//
// @Summary      Add a coverage item to a policy
// @Tags         policies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string           true  "Policy id"
// @Param        body  body      coverageRequest  true  "Coverage details"
// @Success      200   {object}  domain.Policy
// @Failure      400   {object}  errorResponse
// @Router       /policies/{id}/coverages [post]
func (h *PolicyHandler) AddCoverage(c echo.Context) error {
	actor, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req coverageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	policy, err := h.service.AddCoverage(c.Request().Context(), actor, c.Param("id"), ports.CoverageInput{
		Name:        req.Name,
		Description: req.Description,
		CapitalEUR:  req.CapitalEUR,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, policy)
}

// RemoveCoverage handles DELETE /policies/:id/coverages/:coverage_id.
//
// @Summary      Remove a coverage item from a policy
// @Tags         policies
// @Produce      json
// @Security     BearerAuth
// @Param        id           path      string  true  "Policy id"
// @Param        coverage_id  path      string  true  "Coverage id"
// @Success      200          {object}  domain.Policy
// @Failure      404          {object}  errorResponse
// @Router       /policies/{id}/coverages/{coverage_id} [delete]
func (h *PolicyHandler) RemoveCoverage(c echo.Context) error {
	actor, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	policy, err := h.service.RemoveCoverage(c.Request().Context(), actor, c.Param("id"), c.Param("coverage_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, policy)
}
