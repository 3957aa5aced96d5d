package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/MabsIPCA/manalynxAPI-sub001/internal/core/ports"
)

// CatalogHandler handles HTTP requests for vehicle categories and diseases.
type CatalogHandler struct {
	service ports.CatalogService
}

func NewCatalogHandler(service ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

type refDataRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

func (h *CatalogHandler) bindRefData(c echo.Context) (*refDataRequest, error) {
	var req refDataRequest
	if err := c.Bind(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return &req, nil
}

// --- Vehicle categories ---

// ListCategories handles GET /vehicle-categories.
//
// @Summary      List vehicle categories
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.VehicleCategory
// @Router       /vehicle-categories [get]
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	cats, err := h.service.ListCategories(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cats)
}

// GetCategory handles GET /vehicle-categories/:id.
//
// @Summary      Get a vehicle category
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Category id"
// @Success      200  {object}  domain.VehicleCategory
// @Failure      404  {object}  errorResponse
// @Router       /vehicle-categories/{id} [get]
func (h *CatalogHandler) GetCategory(c echo.Context) error {
	cat, err := h.service.GetCategory(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cat)
}

// CreateCategory handles POST /vehicle-categories.
//
// @Summary      Create a vehicle category
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      refDataRequest  true  "Category details"
// @Success      201   {object}  domain.VehicleCategory
// @Failure      400   {object}  errorResponse
// @Router       /vehicle-categories [post]
func (h *CatalogHandler) CreateCategory(c echo.Context) error {
	req, err := h.bindRefData(c)
	if err != nil {
		return err
	}
	cat, err := h.service.CreateCategory(c.Request().Context(), ports.RefDataInput{Name: req.Name, Description: req.Description})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, cat)
}

// UpdateCategory handles PUT /vehicle-categories/:id.
//
// @Summary      Update a vehicle category
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Category id"
// @Param        body  body      refDataRequest  true  "Category details"
// @Success      200   {object}  domain.VehicleCategory
// @Failure      404   {object}  errorResponse
// @Router       /vehicle-categories/{id} [put]
func (h *CatalogHandler) UpdateCategory(c echo.Context) error {
	req, err := h.bindRefData(c)
	if err != nil {
		return err
	}
	cat, err := h.service.UpdateCategory(c.Request().Context(), c.Param("id"), ports.RefDataInput{Name: req.Name, Description: req.Description})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cat)
}

// DeleteCategory handles DELETE /vehicle-categories/:id.
//
// @Summary      Delete a vehicle category
// @Tags         catalog
// @Security     BearerAuth
// @Param        id  path  string  true  "Category id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /vehicle-categories/{id} [delete]
func (h *CatalogHandler) DeleteCategory(c echo.Context) error {
	if err := h.service.DeleteCategory(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// --- Diseases ---

// ListDiseases handles GET /diseases.
//
// @Summary      List diseases
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Disease
// @Router       /diseases [get]
func (h *CatalogHandler) ListDiseases(c echo.Context) error {
	diseases, err := h.service.ListDiseases(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, diseases)
}

// GetDisease handles GET /diseases/:id.
//
// @Summary      Get a disease
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Disease id"
// @Success      200  {object}  domain.Disease
// @Failure      404  {object}  errorResponse
// @Router       /diseases/{id} [get]
func (h *CatalogHandler) GetDisease(c echo.Context) error {
	d, err := h.service.GetDisease(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, d)
}

// CreateDisease handles POST /diseases.
//
// @Summary      Create a disease
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      refDataRequest  true  "Disease details"
// @Success      201   {object}  domain.Disease
// @Failure      400   {object}  errorResponse
// @Router       /diseases [post]
func (h *CatalogHandler) CreateDisease(c echo.Context) error {
	req, err := h.bindRefData(c)
	if err != nil {
		return err
	}
	d, err := h.service.CreateDisease(c.Request().Context(), ports.RefDataInput{Name: req.Name, Description: req.Description})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, d)
}

// UpdateDisease handles PUT /diseases/:id.
//
// @Summary      Update a disease
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Disease id"
// @Param        body  body      refDataRequest  true  "Disease details"
// @Success      200   {object}  domain.Disease
// @Failure      404   {object}  errorResponse
// @Router       /diseases/{id} [put]
func (h *CatalogHandler) UpdateDisease(c echo.Context) error {
	req, err := h.bindRefData(c)
	if err != nil {
		return err
	}
	d, err := h.service.UpdateDisease(c.Request().Context(), c.Param("id"), ports.RefDataInput{Name: req.Name, Description: req.Description})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, d)
}

// DeleteDisease handles DELETE /diseases/:id.
//
// @Summary      Delete a disease
// @Tags         catalog
// @Security     BearerAuth
// @Param        id  path  string  true  "Disease id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /diseases/{id} [delete]
func (h *CatalogHandler) DeleteDisease(c echo.Context) error {
	if err := h.service.DeleteDisease(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
