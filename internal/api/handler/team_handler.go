package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/MabsIPCA/manalynxAPI-sub001/internal/core/ports"
)

// TeamHandler handles HTTP requests for team management.
type TeamHandler struct {
	service ports.TeamService
}

func NewTeamHandler(service ports.TeamService) *TeamHandler {
	return &TeamHandler{service: service}
}

type teamRequest struct {
	Name      string  `json:"name" validate:"required"`
	ManagerID int64   `json:"manager_id" validate:"required,gt=0"`
	AgentIDs  []int64 `json:"agent_ids"`
}

func (h *TeamHandler) bind(c echo.Context) (*teamRequest, error) {
	var req teamRequest
	if err := c.Bind(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return &req, nil
}

// List handles GET /teams.
//
// @Summary      List teams
// @Tags         teams
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Team
// @Router       /teams [get]
func (h *TeamHandler) List(c echo.Context) error {
	teams, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, teams)
}

// Get handles GET /teams/:id.
//
// @Summary      Get a team
// @Tags         teams
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Team id"
// @Success      200  {object}  domain.Team
// @Failure      404  {object}  errorResponse
// @Router       /teams/{id} [get]
func (h *TeamHandler) Get(c echo.Context) error {
	team, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, team)
}

// Create handles POST /teams.
//
// @Summary      Create a team
// @Tags         teams
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      teamRequest  true  "Team details"
// @Success      201   {object}  domain.Team
// @Failure      400   {object}  errorResponse
// @Router       /teams [post]
func (h *TeamHandler) Create(c echo.Context) error {
	req, err := h.bind(c)
	if err != nil {
		return err
	}
	team, err := h.service.Create(c.Request().Context(), ports.TeamInput{
		Name:      req.Name,
		ManagerID: req.ManagerID,
		AgentIDs:  req.AgentIDs,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, team)
}

// Update handles PUT /teams/:id.
//
// @Summary      Update a team
// @Tags         teams
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string       true  "Team id"
// @Param        body  body      teamRequest  true  "Team details"
// @Success      200   {object}  domain.Team
// @Failure      404   {object}  errorResponse
// @Router       /teams/{id} [put]
func (h *TeamHandler) Update(c echo.Context) error {
	req, err := h.bind(c)
	if err != nil {
		return err
	}
	team, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.TeamInput{
		Name:      req.Name,
		ManagerID: req.ManagerID,
		AgentIDs:  req.AgentIDs,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, team)
}

// Delete handles DELETE /teams/:id.
//
// @Summary      Delete a team
// @Tags         teams
// @Security     BearerAuth
// @Param        id  path  string  true  "Team id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /teams/{id} [delete]
func (h *TeamHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
