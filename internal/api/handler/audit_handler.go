package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/MabsIPCA/manalynxAPI-sub001/internal/core/ports"
)

// AuditHandler exposes the recent auth audit trail to administrators.
type AuditHandler struct {
	recorder ports.AuditRecorder
}

func NewAuditHandler(recorder ports.AuditRecorder) *AuditHandler {
	return &AuditHandler{recorder: recorder}
}

// Recent handles GET /audit.
//
// @Summary      List recent authentication and authorization events
// @Tags         audit
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query     int  false  "Maximum events to return (default 100)"
// @Success      200    {array}   ports.AuditEvent
// @Failure      401    {object}  errorResponse
// @Router       /audit [get]
func (h *AuditHandler) Recent(c echo.Context) error {
	limit, _ := strconv.ParseInt(c.QueryParam("limit"), 10, 64)

	events, err := h.recorder.Recent(c.Request().Context(), limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, events)
}
