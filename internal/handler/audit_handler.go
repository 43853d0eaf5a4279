package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rackline/consign-backend/internal/service"
)

type AuditHandler struct {
	svc service.AuditService
}

func NewAuditHandler(svc service.AuditService) *AuditHandler {
	return &AuditHandler{svc: svc}
}

type AuditEntryResponse struct {
	ID        uint64 `json:"id"`
	ItemID    string `json:"itemId"`
	ItemTitle string `json:"itemTitle"`
	Action    string `json:"action"`
	Detail    string `json:"detail"`
	Actor     string `json:"actor,omitempty"`
	CreatedAt string `json:"createdAt"`
}

func (h *AuditHandler) List(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	entries, err := h.svc.List(c.Request().Context(), c.QueryParam("itemId"), limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch audit log"))
	}
	resp := make([]AuditEntryResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, AuditEntryResponse{
			ID:        e.ID,
			ItemID:    e.ItemID,
			ItemTitle: e.ItemTitle,
			Action:    e.Action,
			Detail:    e.Detail,
			Actor:     e.Actor,
			CreatedAt: e.CreatedAt.Format(time.RFC3339),
		})
	}
	return c.JSON(http.StatusOK, resp)
}
