package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rackline/consign-backend/internal/inventory"
	"github.com/rackline/consign-backend/internal/model"
	"github.com/rackline/consign-backend/internal/repository"
	"github.com/rackline/consign-backend/internal/service"
)

type LifecycleHandler struct {
	svc service.LifecycleService
}

func NewLifecycleHandler(svc service.LifecycleService) *LifecycleHandler {
	return &LifecycleHandler{svc: svc}
}

type TransitionRequest struct {
	Status string `json:"status"`
}

type BulkTransitionRequest struct {
	IDs    []string `json:"ids"`
	Status string   `json:"status"`
}

type BulkResultResponse struct {
	Results   []service.BatchResult `json:"results"`
	Succeeded int                   `json:"succeeded"`
	Failed    int                   `json:"failed"`
}

type SellRequest struct {
	SoldPrice         float64 `json:"soldPrice"`
	SaleType          string  `json:"saleType"`
	FulfillmentMethod string  `json:"fulfillmentMethod"`
	TransactionID     string  `json:"transactionId"`
	Buyer             struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Phone   string `json:"phone"`
		Address string `json:"address"`
	} `json:"buyer"`
}

type ShipRequest struct {
	TrackingNumber string `json:"trackingNumber"`
	LabelGenerated bool   `json:"labelGenerated"`
}

type DiscountRequest struct {
	Percentage float64 `json:"percentage"`
	Reason     string  `json:"reason"`
}

type ShelfDiscountRequest struct {
	ThresholdDays int     `json:"thresholdDays"`
	Percentage    float64 `json:"percentage"`
}

func (h *LifecycleHandler) Transition(c echo.Context) error {
	var req TransitionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	target := model.Status(req.Status)
	if !target.Valid() {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "unknown status"))
	}
	item, err := h.svc.Transition(c.Request().Context(), c.Param("id"), target)
	if err != nil {
		return mutationError(c, err)
	}
	return c.JSON(http.StatusOK, toItemResponse(item, time.Now()))
}

func (h *LifecycleHandler) TransitionMany(c echo.Context) error {
	var req BulkTransitionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	target := model.Status(req.Status)
	if !target.Valid() {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "unknown status"))
	}
	if len(req.IDs) == 0 {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "no item ids"))
	}
	results := h.svc.TransitionMany(c.Request().Context(), req.IDs, target)
	return c.JSON(http.StatusOK, toBulkResponse(results))
}

func (h *LifecycleHandler) Sell(c echo.Context) error {
	var req SellRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	if req.SoldPrice < 0 {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "soldPrice must not be negative"))
	}
	item, err := h.svc.Sell(c.Request().Context(), c.Param("id"), service.SaleData{
		SoldPrice:         req.SoldPrice,
		SaleType:          model.SaleType(req.SaleType),
		FulfillmentMethod: model.FulfillmentMethod(req.FulfillmentMethod),
		TransactionID:     req.TransactionID,
		Buyer: model.BuyerInfo{
			Name:    req.Buyer.Name,
			Email:   req.Buyer.Email,
			Phone:   req.Buyer.Phone,
			Address: req.Buyer.Address,
		},
	})
	if err != nil {
		return mutationError(c, err)
	}
	return c.JSON(http.StatusOK, toItemResponse(item, time.Now()))
}

func (h *LifecycleHandler) Ship(c echo.Context) error {
	var req ShipRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	item, err := h.svc.MarkShipped(c.Request().Context(), c.Param("id"), req.TrackingNumber, req.LabelGenerated)
	if err != nil {
		return mutationError(c, err)
	}
	return c.JSON(http.StatusOK, toItemResponse(item, time.Now()))
}

func (h *LifecycleHandler) Deliver(c echo.Context) error {
	item, err := h.svc.MarkDelivered(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mutationError(c, err)
	}
	return c.JSON(http.StatusOK, toItemResponse(item, time.Now()))
}

func (h *LifecycleHandler) Discount(c echo.Context) error {
	var req DiscountRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	item, err := h.svc.ApplyDiscount(c.Request().Context(), c.Param("id"), req.Percentage, req.Reason)
	if err != nil {
		return mutationError(c, err)
	}
	return c.JSON(http.StatusOK, toItemResponse(item, time.Now()))
}

func (h *LifecycleHandler) ShelfDiscount(c echo.Context) error {
	var req ShelfDiscountRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	if req.ThresholdDays <= 0 {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "thresholdDays must be positive"))
	}
	results, err := h.svc.ApplyShelfDiscount(c.Request().Context(), req.ThresholdDays, req.Percentage)
	if err != nil {
		return mutationError(c, err)
	}
	return c.JSON(http.StatusOK, toBulkResponse(results))
}

func toBulkResponse(results []service.BatchResult) BulkResultResponse {
	resp := BulkResultResponse{Results: results}
	for _, r := range results {
		if r.OK {
			resp.Succeeded++
		} else {
			resp.Failed++
		}
	}
	return resp
}

func mutationError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "item not found"))
	case errors.Is(err, inventory.ErrInvalidTransition):
		return c.JSON(http.StatusConflict, NewErrorResponse("invalid_transition", err.Error()))
	case errors.Is(err, repository.ErrStaleItem):
		return c.JSON(http.StatusConflict, NewErrorResponse("conflict", "item changed concurrently, reload and retry"))
	case errors.Is(err, inventory.ErrIncompleteSaleData),
		errors.Is(err, inventory.ErrInvalidDiscount),
		errors.Is(err, inventory.ErrItemNotEligible):
		return c.JSON(http.StatusUnprocessableEntity, NewErrorResponse("invalid_operation", err.Error()))
	default:
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "operation failed"))
	}
}
