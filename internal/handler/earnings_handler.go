package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rackline/consign-backend/internal/service"
)

type EarningsHandler struct {
	svc service.EarningsService
}

func NewEarningsHandler(svc service.EarningsService) *EarningsHandler {
	return &EarningsHandler{svc: svc}
}

type EarningsResponse struct {
	AccountID  string  `json:"accountId"`
	Amount     float64 `json:"amount"`
	SalesCount int64   `json:"salesCount"`
}

func (h *EarningsHandler) Get(c echo.Context) error {
	ae, err := h.svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch earnings"))
	}
	return c.JSON(http.StatusOK, EarningsResponse{
		AccountID:  ae.AccountID,
		Amount:     float64(ae.AmountCents) / 100,
		SalesCount: ae.SalesCount,
	})
}
